package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
)

type AccountMappingRepository interface {
	List(ctx context.Context, gymID uuid.UUID) ([]*entity.AccountMapping, error)
	ListByProvider(ctx context.Context, gymID uuid.UUID, provider string) ([]*entity.AccountMapping, error)
	// Upsert creates or replaces the mapping keyed on
	// (gym_id, provider, revenue_category).
	Upsert(ctx context.Context, mapping *entity.AccountMapping) error
}
