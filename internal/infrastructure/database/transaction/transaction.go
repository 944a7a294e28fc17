package transaction

import (
	"context"

	"gorm.io/gorm"
)

type transactionContextKey struct{}

// WithTx binds a transaction to the context so nested repository calls join
// it instead of opening their own.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, transactionContextKey{}, tx)
}

// Database hands repositories either the ambient transaction from the
// context or the root connection.
type Database struct {
	db *gorm.DB
}

// NewDatabase wraps a gorm connection.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db}
}

// GetTx returns the transaction carried by ctx, or the root connection.
func (d *Database) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(transactionContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.db
}

// Transaction runs fn inside a single transaction; every repository call made
// through the ctx passed to fn joins it. Used to apply a message edit's
// content update and attachment delta as one atomic unit.
func (d *Database) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.GetTx(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
