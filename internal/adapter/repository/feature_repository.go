package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/model"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type featureRepository struct {
	db *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) repository.FeatureRepository {
	return &featureRepository{
		db: db,
	}
}

func (r *featureRepository) ListFeatures(ctx context.Context) ([]*entity.Feature, error) {
	var models []model.Feature
	err := r.db.WithContext(ctx).Order("key").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}

	features := make([]*entity.Feature, len(models))
	for i := range models {
		features[i] = &entity.Feature{
			Key:         models[i].Key,
			Name:        models[i].Name,
			Description: models[i].Description,
			DependsOn:   models[i].DependsOn,
		}
	}
	return features, nil
}

func (r *featureRepository) ListEnabled(ctx context.Context, gymID uuid.UUID) (map[string]bool, error) {
	var models []model.GymFeature
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND enabled = ?", gymID, true).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled features: %w", err)
	}

	enabled := make(map[string]bool, len(models))
	for i := range models {
		enabled[models[i].FeatureKey] = true
	}
	return enabled, nil
}

func (r *featureRepository) SetEnabled(ctx context.Context, gymID uuid.UUID, featureKey string, enabled bool) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "gym_id"},
				{Name: "feature_key"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
		}).
		Create(&model.GymFeature{
			GymID:      gymID,
			FeatureKey: featureKey,
			Enabled:    enabled,
			UpdatedAt:  time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to set feature state: %w", err)
	}
	return nil
}
