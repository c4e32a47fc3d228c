package account

import "context"

// ListFilter narrows account listings.
type ListFilter struct {
	Role   string
	Status string
	Search string
	Offset int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	// GetByEmail and GetByUsername return (nil, nil) when no account
	// matches; the caller decides how to surface that.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	// GetByResetTokenHash resolves the account holding a reset token by
	// its indexed hash column.
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*Account, error)
	GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*Account, error)
	Update(ctx context.Context, account *Account) error
	List(ctx context.Context, filter ListFilter) ([]*Account, int64, error)
}

// TxRepos bundles the repositories participating in one transaction.
type TxRepos struct {
	Accounts Repository
	Sessions SessionRepository
	Activity ActivityRepository
}

/// UnitOfWork runs fn atomically: every repository in TxRepos operates on
// the same storage transaction, so account mutation, session row and audit
// entry commit or roll back together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos TxRepos) error) error
}
