package usecases

import (
	"context"

	"scholaris/internal/domain/account"
)

type GetAccountUseCase struct {
	accountRepo account.Repository
}

func NewGetAccountUseCase(accountRepo account.Repository) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, id uint) (*account.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

type ListAccountsUseCase struct {
	accountRepo account.Repository
}

func NewListAccountsUseCase(accountRepo account.Repository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

func (uc *ListAccountsUseCase) Execute(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return uc.accountRepo.List(ctx, filter)
}
