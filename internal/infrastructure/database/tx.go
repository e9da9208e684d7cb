package database

import (
	"context"

	"github.com/Swastik2002/TrustMed/internal/domain/repository"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor implements repository.Transactor on top of gorm. The opened
// transaction is stashed in the context so that every repository call made
// inside the callback resolves the same *gorm.DB and joins the transaction.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

var _ repository.Transactor = (*Transactor)(nil)

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// TxFromContext returns the transaction opened by WithinTransaction, if the
// context carries one.
func TxFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok
}

// Conn resolves the handle repositories should use: the in-flight
// transaction when present, otherwise the base connection bound to ctx.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db.WithContext(ctx)
}
