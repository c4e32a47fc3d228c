package repository

import (
	"context"

	"gorm.io/gorm"

	"scholaris/internal/domain/account"
)

// GormUnitOfWork binds the account, session and activity repositories to
// one transaction so a login commits its session row, counter reset and
// audit entry atomically.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) account.UnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Do(ctx context.Context, fn func(repos account.TxRepos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(account.TxRepos{
			Accounts: NewAccountRepository(tx),
			Sessions: NewSessionRepository(tx),
			Activity: NewActivityRepository(tx),
		})
	})
}
