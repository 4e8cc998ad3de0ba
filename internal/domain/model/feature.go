package model

import (
	"time"

	"github.com/google/uuid"
)

// Feature is a platform-defined toggleable capability. DependsOn names the
// feature key that must be enabled before this one can be.
type Feature struct {
	Key         string    `gorm:"primaryKey;size:50" json:"key"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	DependsOn   *string   `gorm:"size:50" json:"depends_on,omitempty"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Feature) TableName() string {
	return "features"
}

// GymFeature is a gym's enablement state for one feature.
type GymFeature struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GymID      uuid.UUID `gorm:"column:gym_id;type:uuid;not null;uniqueIndex:uniq_gym_feature" json:"gym_id"`
	FeatureKey string    `gorm:"size:50;not null;uniqueIndex:uniq_gym_feature" json:"feature_key"`
	Enabled    bool      `gorm:"not null;default:false" json:"enabled"`
	UpdatedAt  time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (GymFeature) TableName() string {
	return "gym_features"
}
