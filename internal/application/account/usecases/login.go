package usecases

import (
	"context"
	"fmt"
	"time"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type LoginCommand struct {
	Identifier string
	Password   string
	RememberMe bool
	IPAddress  string
	UserAgent  string
}

// LoginOutcome tags how a login attempt that passed credential
// verification concluded.
type LoginOutcome string

const (
	OutcomeSuccess             LoginOutcome = "success"
	OutcomeNeedsPasswordChange LoginOutcome = "needs_password_change"
)

// passwordChangeTokenTTL bounds the window between a deferred login and
// the forced password change completing it.
const passwordChangeTokenTTL = 15 * time.Minute

type LoginResult struct {
	Account      *account.Account
	Outcome      LoginOutcome
	SessionID    string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	// Redirect is the role-based landing route, overridden for accounts
	// that must change their password or still need verification.
	Redirect           string
	MustChangePassword bool
	// PasswordChangeToken is only set on the needs_password_change
	// outcome; it is the single-use credential for completing the change.
	PasswordChangeToken string
}

// LoginUseCase runs the full login pipeline: rate limit, single account
// lookup, state checks, password verification and transactional session
// establishment.
type LoginUseCase struct {
	accountRepo  account.Repository
	activityRepo account.ActivityRepository
	uow          account.UnitOfWork
	hasher       account.PasswordHasher
	tokens       TokenService
	limiter      LoginRateLimiter
	destinations *authorization.DestinationTable
	policy       *account.SecurityPolicy
	sessionCfg   config.SessionConfig
	logger       logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	activityRepo account.ActivityRepository,
	uow account.UnitOfWork,
	hasher account.PasswordHasher,
	tokens TokenService,
	limiter LoginRateLimiter,
	destinations *authorization.DestinationTable,
	policy *account.SecurityPolicy,
	sessionCfg config.SessionConfig,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo:  accountRepo,
		activityRepo: activityRepo,
		uow:          uow,
		hasher:       hasher,
		tokens:       tokens,
		limiter:      limiter,
		destinations: destinations,
		policy:       policy,
		sessionCfg:   sessionCfg,
		logger:       log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	allowed, retryAfter, err := uc.limiter.Allow(ctx, cmd.Identifier, cmd.IPAddress)
	if err != nil {
		// A limiter outage must not take logins down with it.
		uc.logger.Errorw("login rate limiter unavailable", "error", err)
	} else if !allowed {
		uc.appendActivity(nil, account.ActivitySecurityEvent, "login throttled", cmd)
		return nil, errors.NewRateLimitedError(int(retryAfter.Seconds()))
	}

	// One lookup strategy per request: the identifier's shape decides
	// whether it is matched against email or username, never both.
	var acc *account.Account
	if vo.LooksLikeEmail(cmd.Identifier) {
		acc, err = uc.accountRepo.GetByEmail(ctx, cmd.Identifier)
	} else {
		acc, err = uc.accountRepo.GetByUsername(ctx, cmd.Identifier)
	}
	if err != nil {
		uc.logger.Errorw("account lookup failed", "error", err)
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if acc == nil {
		uc.appendActivity(nil, account.ActivityLoginFailed, "unknown identifier", cmd)
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := acc.CanAuthenticate(); err != nil {
		return nil, uc.mapStateError(acc, err, cmd)
	}

	if err := acc.VerifyPassword(cmd.Password, uc.hasher, uc.policy); err != nil {
		// Persist the bumped counter (and any lock it produced) even
		// though the login fails.
		if saveErr := uc.accountRepo.Update(ctx, acc); saveErr != nil {
			uc.logger.Errorw("failed to persist failed-login counter", "error", saveErr, "account_id", acc.ID())
		}
		accountID := acc.ID()
		uc.appendActivity(&accountID, account.ActivityLoginFailed, "wrong password", cmd)
		return nil, errors.NewInvalidCredentialsError()
	}

	if acc.MustChangePassword() {
		return uc.deferToPasswordChange(ctx, acc, cmd)
	}

	result, err := finishLogin(ctx, uc.uow, uc.tokens, uc.destinations, uc.sessionCfg, acc, cmd)
	if err != nil {
		return nil, err
	}

	if err := uc.limiter.Clear(ctx, cmd.Identifier, cmd.IPAddress); err != nil {
		uc.logger.Warnw("failed to clear login rate limit", "error", err)
	}

	uc.logger.Infow("login succeeded",
		"account_id", acc.ID(),
		"session_id", result.SessionID,
		"role", acc.Role().String())
	return result, nil
}

// deferToPasswordChange withholds the session from an account flagged for
// a forced change. The caller gets a short-lived single-use token instead;
// ForcedPasswordChangeUseCase consumes it and establishes the session once
// the password is replaced.
func (uc *LoginUseCase) deferToPasswordChange(ctx context.Context, acc *account.Account, cmd LoginCommand) (*LoginResult, error) {
	token, err := acc.GeneratePasswordResetToken(passwordChangeTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password change token: %w", err)
	}
	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to persist password change token: %w", err)
	}

	if err := uc.limiter.Clear(ctx, cmd.Identifier, cmd.IPAddress); err != nil {
		uc.logger.Warnw("failed to clear login rate limit", "error", err)
	}

	accountID := acc.ID()
	uc.appendActivity(&accountID, account.ActivitySecurityEvent, "password change required before login", cmd)

	uc.logger.Infow("login deferred to password change", "account_id", acc.ID())
	return &LoginResult{
		Account:             acc,
		Outcome:             OutcomeNeedsPasswordChange,
		Redirect:            "/change-password",
		MustChangePassword:  true,
		PasswordChangeToken: token.Value(),
	}, nil
}

// finishLogin commits the account mutation, the session row and the audit
// entry in one transaction. It is shared by the direct login path and the
// forced-password-change completion.
func finishLogin(
	ctx context.Context,
	uow account.UnitOfWork,
	tokens TokenService,
	destinations *authorization.DestinationTable,
	sessionCfg config.SessionConfig,
	acc *account.Account,
	cmd LoginCommand,
) (*LoginResult, error) {
	duration := time.Duration(sessionCfg.DefaultExpDays) * 24 * time.Hour
	if cmd.RememberMe {
		duration = time.Duration(sessionCfg.RememberExpDays) * 24 * time.Hour
	}

	session, err := account.NewSession(acc.ID(), cmd.IPAddress, cmd.UserAgent, account.LoginMethodPassword, time.Now().Add(duration))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	pair, err := tokens.Generate(acc.ID(), session.ID, acc.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	session.TokenHash = tokens.Hash(pair.AccessToken)
	session.RefreshTokenHash = tokens.Hash(pair.RefreshToken)

	acc.MarkLoggedIn()
	activated := acc.ActivateIfEligible()

	err = uow.Do(ctx, func(repos account.TxRepos) error {
		if err := repos.Accounts.Update(ctx, acc); err != nil {
			return err
		}
		if err := repos.Sessions.Create(session); err != nil {
			return err
		}
		accountID := acc.ID()
		entry := account.NewActivityEntry(&accountID, account.ActivityLoginSuccess, "login", cmd.IPAddress, cmd.UserAgent, map[string]any{
			"session_id": session.ID,
			"activated":  activated,
		})
		return repos.Activity.Append(entry)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	return &LoginResult{
		Account:            acc,
		Outcome:            OutcomeSuccess,
		SessionID:          session.ID,
		AccessToken:        pair.AccessToken,
		RefreshToken:       pair.RefreshToken,
		ExpiresIn:          pair.ExpiresIn,
		Redirect:           redirectFor(destinations, acc),
		MustChangePassword: acc.MustChangePassword(),
	}, nil
}

func redirectFor(destinations *authorization.DestinationTable, acc *account.Account) string {
	if !acc.IsEmailVerified() {
		return destinations.VerificationNotice()
	}
	return destinations.DestinationFor(acc.Role())
}

// mapStateError converts domain state rejections into user-facing auth
// errors. Provisioning gaps stay indistinguishable from bad credentials.
func (uc *LoginUseCase) mapStateError(acc *account.Account, err error, cmd LoginCommand) error {
	accountID := acc.ID()

	if lockedErr, ok := account.IsLockedError(err); ok {
		uc.appendActivity(&accountID, account.ActivitySecurityEvent, "login attempt on locked account", cmd)
		return errors.NewAccountLockedError(lockedErr.RemainingMinutes())
	}

	switch err {
	case account.ErrSuspended:
		uc.appendActivity(&accountID, account.ActivityLoginFailed, "suspended account", cmd)
		return errors.NewAccountSuspendedError()
	case account.ErrInactive:
		uc.appendActivity(&accountID, account.ActivityLoginFailed, "inactive account", cmd)
		return errors.NewAccountInactiveError()
	case account.ErrEmailUnverified:
		uc.appendActivity(&accountID, account.ActivityLoginFailed, "unverified email", cmd)
		return errors.NewEmailUnverifiedError()
	default:
		uc.appendActivity(&accountID, account.ActivityLoginFailed, "account not eligible", cmd)
		return errors.NewInvalidCredentialsError()
	}
}

// appendActivity writes the audit entry outside any transaction; failures
// are logged, never surfaced.
func (uc *LoginUseCase) appendActivity(accountID *uint, activityType account.ActivityType, description string, cmd LoginCommand) {
	entry := account.NewActivityEntry(accountID, activityType, description, cmd.IPAddress, cmd.UserAgent, nil)
	if err := uc.activityRepo.Append(entry); err != nil {
		uc.logger.Warnw("failed to append activity entry", "error", err)
	}
}
