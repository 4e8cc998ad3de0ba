package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)
	GetByProviderIntentID(ctx context.Context, intentID string) (*entity.Payment, error)
	// GetUnsynced returns up to limit payments not yet marked synced for the
	// gym, oldest first.
	GetUnsynced(ctx context.Context, gymID uuid.UUID, limit int) ([]*entity.Payment, error)
	MarkSynced(ctx context.Context, paymentID int64, at time.Time) error
	// MarkSyncedBefore flags all unsynced payments created before the cutoff
	// and returns the number of rows touched. Used by the backfill CLI.
	MarkSyncedBefore(ctx context.Context, gymID uuid.UUID, cutoff time.Time) (int64, error)
}
