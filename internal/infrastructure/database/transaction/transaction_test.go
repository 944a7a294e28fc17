package transaction_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"messaging-server/internal/infrastructure/database/transaction"
)

func TestGetTxFallsBackToRoot(t *testing.T) {
	root := &gorm.DB{}
	db := transaction.NewDatabase(root)

	assert.Same(t, root, db.GetTx(context.Background()))
}

func TestGetTxPrefersContextTransaction(t *testing.T) {
	root := &gorm.DB{}
	tx := &gorm.DB{}
	db := transaction.NewDatabase(root)

	ctx := transaction.WithTx(context.Background(), tx)

	assert.Same(t, tx, db.GetTx(ctx))
	assert.Same(t, root, db.GetTx(context.Background()), "other contexts keep the root connection")
}
