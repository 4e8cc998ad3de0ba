package repository

import (
	"context"

	"github.com/gymstack/accounting-service/internal/domain/entity"
)

type SyncedTransactionRepository interface {
	// Exists reports whether the payment already has a synced transaction for
	// the provider. This pre-check is an optimization; the uniqueness
	// constraint enforced by Create is the real guard.
	Exists(ctx context.Context, paymentID int64, provider string) (bool, error)
	// Create inserts the row and returns domain ErrAlreadySynced when the
	// (payment_id, provider) uniqueness constraint is violated.
	Create(ctx context.Context, txn *entity.SyncedTransaction) error
}
