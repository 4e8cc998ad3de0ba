package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
)

type IntegrationRepository interface {
	List(ctx context.Context, gymID uuid.UUID) ([]*entity.Integration, error)
	// GetByProvider returns nil, nil when no integration row exists.
	GetByProvider(ctx context.Context, gymID uuid.UUID, provider string) (*entity.Integration, error)
}
