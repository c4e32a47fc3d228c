package usecases

import (
	"context"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Token string
}

type VerifyEmailUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewVerifyEmailUseCase(accountRepo account.Repository, log logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		accountRepo: accountRepo,
		logger:      log,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) error {
	token, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return errors.NewTokenInvalidError("verification")
	}

	acc, err := uc.accountRepo.GetByVerificationTokenHash(ctx, token.Hash())
	if err != nil {
		return err
	}
	if acc == nil {
		return errors.NewTokenInvalidError("verification")
	}

	if err := acc.VerifyEmail(cmd.Token); err != nil {
		if err == account.ErrInvalidToken {
			return errors.NewTokenExpiredError("verification")
		}
		return errors.NewValidationError(err.Error())
	}

	// A provisioned account becomes active as soon as its email checks
	// out.
	acc.ActivateIfEligible()

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	uc.logger.Infow("email verified", "account_id", acc.ID())
	return nil
}
