package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/model"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"gorm.io/gorm"
)

type integrationRepository struct {
	db *gorm.DB
}

func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{
		db: db,
	}
}

func (r *integrationRepository) modelToEntity(m *model.AccountingIntegration) *entity.Integration {
	if m == nil {
		return nil
	}
	return &entity.Integration{
		ID:          m.ID,
		GymID:       m.GymID.String(),
		Provider:    m.Provider,
		Active:      m.Active,
		RealmID:     m.RealmID,
		TenantID:    m.TenantID,
		AccessToken: m.AccessToken,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *integrationRepository) List(ctx context.Context, gymID uuid.UUID) ([]*entity.Integration, error) {
	var models []model.AccountingIntegration
	err := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("provider").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}

	integrations := make([]*entity.Integration, len(models))
	for i := range models {
		integrations[i] = r.modelToEntity(&models[i])
	}
	return integrations, nil
}

func (r *integrationRepository) GetByProvider(ctx context.Context, gymID uuid.UUID, provider string) (*entity.Integration, error) {
	var m model.AccountingIntegration
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND provider = ?", gymID, provider).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get integration: %w", err)
	}
	return r.modelToEntity(&m), nil
}
