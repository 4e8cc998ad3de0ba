package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
)

type SyncLogRepository interface {
	Create(ctx context.Context, log *entity.SyncLog) error
	// Finalize writes the completion fields (counts, status, error detail,
	// ended_at) exactly once. The row is immutable afterwards.
	Finalize(ctx context.Context, log *entity.SyncLog) error
	// GetByID returns nil, nil when the log does not exist for the gym.
	GetByID(ctx context.Context, gymID uuid.UUID, id uuid.UUID) (*entity.SyncLog, error)
}
