package database

import (
	"fmt"

	"github.com/gymstack/accounting-service/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs schema migrations and seeds the platform feature catalog.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&model.Gym{},
		&model.Profile{},
		&model.Payment{},
		&model.AccountingIntegration{},
		&model.AccountMapping{},
		&model.SyncLog{},
		&model.SyncedTransaction{},
		&model.Feature{},
		&model.GymFeature{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Partial index backing the unsynced-payment scan. AutoMigrate cannot
	// express partial indexes.
	err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_payments_unsynced
		ON payments (gym_id, created_at) WHERE synced = false`).Error
	if err != nil {
		return fmt.Errorf("failed to create unsynced payments index: %w", err)
	}

	if err := seedFeatures(db); err != nil {
		return fmt.Errorf("failed to seed features: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}

func strPtr(s string) *string { return &s }

// seedFeatures inserts the platform feature catalog, skipping keys that
// already exist so operator edits survive restarts.
func seedFeatures(db *gorm.DB) error {
	features := []model.Feature{
		{
			Key:         "payments",
			Name:        "Payments",
			Description: "Member payment capture via the payment processor",
		},
		{
			Key:         "accounting_sync",
			Name:        "Accounting Sync",
			Description: "Export captured payments to the gym's accounting system",
			DependsOn:   strPtr("payments"),
		},
		{
			Key:         "accounting_auto_sync",
			Name:        "Scheduled Accounting Sync",
			Description: "Run accounting sync automatically on a schedule",
			DependsOn:   strPtr("accounting_sync"),
		},
		{
			Key:         "member_bookings",
			Name:        "Member Bookings",
			Description: "Specialty class and service booking",
		},
	}

	for _, f := range features {
		var count int64
		if err := db.Model(&model.Feature{}).Where("key = ?", f.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&f).Error; err != nil {
			return err
		}
	}
	return nil
}
