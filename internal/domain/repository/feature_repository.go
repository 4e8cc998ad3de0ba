package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
)

type FeatureRepository interface {
	ListFeatures(ctx context.Context) ([]*entity.Feature, error)
	// ListEnabled returns the set of feature keys enabled for the gym.
	ListEnabled(ctx context.Context, gymID uuid.UUID) (map[string]bool, error)
	SetEnabled(ctx context.Context, gymID uuid.UUID, featureKey string, enabled bool) error
}
