// internal/database/uow.go
package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxFromContext returns the transaction carried by ctx, or fallback when no
// transaction is active. Repositories route every call through this so that
// writes inside a unit-of-work scope see the transaction.
func TxFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// UnitOfWork coordinates multi-repository writes into one database
// transaction. Aggregate commands follow begin -> (validate -> write)* ->
// commit, rolling back on any error.
type UnitOfWork interface {
	// Begin opens a transaction and returns a context carrying it. Calling
	// Begin inside an active transaction is a no-op returning ctx unchanged.
	Begin(ctx context.Context) (context.Context, error)
	// Commit commits the active transaction. A commit failure rolls back
	// and returns the error.
	Commit(ctx context.Context) error
	// Rollback is tolerant of being called with no active transaction.
	Rollback(ctx context.Context)
	// Save reports any pending transaction error. Statements execute
	// eagerly, so generated identifiers are available right after an Add;
	// Save is the checkpoint handlers call before creating dependent rows.
	Save(ctx context.Context) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return ctx, nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, tx.Error
	}
	return context.WithValue(ctx, txKey{}, tx), nil
}

func (u *gormUnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok {
		return nil
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

func (u *gormUnitOfWork) Rollback(ctx context.Context) {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		tx.Rollback()
	}
}

func (u *gormUnitOfWork) Save(ctx context.Context) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.Error
	}
	return nil
}
