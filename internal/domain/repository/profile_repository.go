package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
)

type ProfileRepository interface {
	// GetByUserID returns nil, nil when no profile row exists.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
