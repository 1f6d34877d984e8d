package dbx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// WithTx stores a transaction in the context
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// FromContext returns the executor repositories should run on: the
// per-request transaction when one is attached to the context, the
// pooled database otherwise.
func FromContext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
