package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/model"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountMappingRepository struct {
	db *gorm.DB
}

func NewAccountMappingRepository(db *gorm.DB) repository.AccountMappingRepository {
	return &accountMappingRepository{
		db: db,
	}
}

func (r *accountMappingRepository) modelToEntity(m *model.AccountMapping) *entity.AccountMapping {
	if m == nil {
		return nil
	}
	return &entity.AccountMapping{
		ID:                  m.ID,
		GymID:               m.GymID.String(),
		Provider:            m.Provider,
		RevenueCategory:     entity.RevenueCategory(m.RevenueCategory),
		ExternalAccountID:   m.ExternalAccountID,
		ExternalAccountName: m.ExternalAccountName,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func (r *accountMappingRepository) entityToModel(e *entity.AccountMapping) (*model.AccountMapping, error) {
	if e == nil {
		return nil, nil
	}

	gymUUID, err := uuid.Parse(e.GymID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym id: %w", err)
	}

	return &model.AccountMapping{
		ID:                  e.ID,
		GymID:               gymUUID,
		Provider:            e.Provider,
		RevenueCategory:     string(e.RevenueCategory),
		ExternalAccountID:   e.ExternalAccountID,
		ExternalAccountName: e.ExternalAccountName,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}, nil
}

func (r *accountMappingRepository) List(ctx context.Context, gymID uuid.UUID) ([]*entity.AccountMapping, error) {
	var models []model.AccountMapping
	err := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("provider, revenue_category").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list account mappings: %w", err)
	}

	mappings := make([]*entity.AccountMapping, len(models))
	for i := range models {
		mappings[i] = r.modelToEntity(&models[i])
	}
	return mappings, nil
}

func (r *accountMappingRepository) ListByProvider(ctx context.Context, gymID uuid.UUID, provider string) ([]*entity.AccountMapping, error) {
	var models []model.AccountMapping
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND provider = ?", gymID, provider).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list account mappings: %w", err)
	}

	mappings := make([]*entity.AccountMapping, len(models))
	for i := range models {
		mappings[i] = r.modelToEntity(&models[i])
	}
	return mappings, nil
}

func (r *accountMappingRepository) Upsert(ctx context.Context, mapping *entity.AccountMapping) error {
	m, err := r.entityToModel(mapping)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "gym_id"},
				{Name: "provider"},
				{Name: "revenue_category"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"external_account_id",
				"external_account_name",
				"updated_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("failed to upsert account mapping: %w", err)
	}

	mapping.ID = m.ID
	return nil
}
