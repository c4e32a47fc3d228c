package usecases

import (
	"context"
	"fmt"
	"time"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/authorization"
)

type mockAccountRepository struct {
	CreateFunc                     func(ctx context.Context, acc *account.Account) error
	GetByIDFunc                    func(ctx context.Context, id uint) (*account.Account, error)
	GetByEmailFunc                 func(ctx context.Context, email string) (*account.Account, error)
	GetByUsernameFunc              func(ctx context.Context, username string) (*account.Account, error)
	GetByResetTokenHashFunc        func(ctx context.Context, tokenHash string) (*account.Account, error)
	GetByVerificationTokenHashFunc func(ctx context.Context, tokenHash string) (*account.Account, error)
	UpdateFunc                     func(ctx context.Context, acc *account.Account) error
	ListFunc                       func(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*account.Account, error) {
	if m.GetByResetTokenHashFunc != nil {
		return m.GetByResetTokenHashFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*account.Account, error) {
	if m.GetByVerificationTokenHashFunc != nil {
		return m.GetByVerificationTokenHashFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockAccountRepository) Update(ctx context.Context, acc *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockSessionRepository struct {
	CreateFunc                func(session *account.Session) error
	GetByIDFunc               func(sessionID string) (*account.Session, error)
	GetActiveByIDFunc         func(sessionID string) (*account.Session, error)
	GetByAccountIDFunc        func(accountID uint) ([]*account.Session, error)
	GetByRefreshTokenHashFunc func(refreshTokenHash string) (*account.Session, error)
	UpdateFunc                func(session *account.Session) error
	EndByAccountIDFunc        func(accountID uint, reason account.EndReason) error
	EndExpiredFunc            func() (int64, error)
}

func (m *mockSessionRepository) Create(session *account.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(session)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(sessionID string) (*account.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepository) GetActiveByID(sessionID string) (*account.Session, error) {
	if m.GetActiveByIDFunc != nil {
		return m.GetActiveByIDFunc(sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepository) GetByAccountID(accountID uint) ([]*account.Session, error) {
	if m.GetByAccountIDFunc != nil {
		return m.GetByAccountIDFunc(accountID)
	}
	return nil, nil
}

func (m *mockSessionRepository) GetByRefreshTokenHash(refreshTokenHash string) (*account.Session, error) {
	if m.GetByRefreshTokenHashFunc != nil {
		return m.GetByRefreshTokenHashFunc(refreshTokenHash)
	}
	return nil, nil
}

func (m *mockSessionRepository) Update(session *account.Session) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(session)
	}
	return nil
}

func (m *mockSessionRepository) EndByAccountID(accountID uint, reason account.EndReason) error {
	if m.EndByAccountIDFunc != nil {
		return m.EndByAccountIDFunc(accountID, reason)
	}
	return nil
}

func (m *mockSessionRepository) EndExpired() (int64, error) {
	if m.EndExpiredFunc != nil {
		return m.EndExpiredFunc()
	}
	return 0, nil
}

type mockActivityRepository struct {
	entries        []*account.ActivityEntry
	AppendFunc     func(entry *account.ActivityEntry) error
	ListByIDFunc   func(accountID uint, limit int) ([]*account.ActivityEntry, error)
	ListRecentFunc func(limit int) ([]*account.ActivityEntry, error)
}

func (m *mockActivityRepository) Append(entry *account.ActivityEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(entry)
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityRepository) ListByAccountID(accountID uint, limit int) ([]*account.ActivityEntry, error) {
	if m.ListByIDFunc != nil {
		return m.ListByIDFunc(accountID, limit)
	}
	return m.entries, nil
}

func (m *mockActivityRepository) ListRecent(limit int) ([]*account.ActivityEntry, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(limit)
	}
	return m.entries, nil
}

// mockUnitOfWork hands the same mocks to the transactional callback, so
// tests observe exactly what would have been committed.
type mockUnitOfWork struct {
	accounts *mockAccountRepository
	sessions *mockSessionRepository
	activity *mockActivityRepository
	DoErr    error
}

func (m *mockUnitOfWork) Do(ctx context.Context, fn func(repos account.TxRepos) error) error {
	if m.DoErr != nil {
		return m.DoErr
	}
	return fn(account.TxRepos{
		Accounts: m.accounts,
		Sessions: m.sessions,
		Activity: m.activity,
	})
}

type mockTokenService struct {
	GenerateFunc func(accountID uint, sessionID string, role authorization.UserRole) (*TokenPair, error)
	VerifyFunc   func(token string) (*TokenClaims, error)
}

func (m *mockTokenService) Generate(accountID uint, sessionID string, role authorization.UserRole) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountID, sessionID, role)
	}
	return &TokenPair{
		AccessToken:  fmt.Sprintf("access-%d-%s", accountID, sessionID),
		RefreshToken: fmt.Sprintf("refresh-%d-%s", accountID, sessionID),
		ExpiresIn:    900,
	}, nil
}

func (m *mockTokenService) Verify(token string) (*TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return nil, fmt.Errorf("invalid token")
}

func (m *mockTokenService) Hash(token string) string {
	return "hash:" + token
}

type mockLoginLimiter struct {
	allowed    bool
	retryAfter time.Duration
	allowErr   error
	clearCalls int
}

func (m *mockLoginLimiter) Allow(ctx context.Context, identifier, ip string) (bool, time.Duration, error) {
	if m.allowErr != nil {
		return false, 0, m.allowErr
	}
	return m.allowed, m.retryAfter, nil
}

func (m *mockLoginLimiter) Clear(ctx context.Context, identifier, ip string) error {
	m.clearCalls++
	return nil
}

type mockEmailSender struct {
	verificationSent    int
	resetSent           int
	passwordChangedSent int
	lastToken           string
}

func (m *mockEmailSender) SendVerificationEmail(to, token string) error {
	m.verificationSent++
	m.lastToken = token
	return nil
}

func (m *mockEmailSender) SendPasswordResetEmail(to, token string) error {
	m.resetSent++
	m.lastToken = token
	return nil
}

func (m *mockEmailSender) SendPasswordChangedEmail(to string) error {
	m.passwordChangedSent++
	return nil
}

// fakeHasher avoids bcrypt cost in tests; the hash is a reversible tag.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}
