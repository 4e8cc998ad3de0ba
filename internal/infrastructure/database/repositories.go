package database

import (
	adapterRepo "github.com/gymstack/accounting-service/internal/adapter/repository"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories bundles every repository implementation behind one
// constructor for wiring.
type Repositories struct {
	Payments           repository.PaymentRepository
	AccountMappings    repository.AccountMappingRepository
	Integrations       repository.IntegrationRepository
	SyncLogs           repository.SyncLogRepository
	SyncedTransactions repository.SyncedTransactionRepository
	Profiles           repository.ProfileRepository
	Features           repository.FeatureRepository
}

// NewRepositories creates all repositories over one connection.
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Payments:           adapterRepo.NewPaymentRepository(db, logger),
		AccountMappings:    adapterRepo.NewAccountMappingRepository(db),
		Integrations:       adapterRepo.NewIntegrationRepository(db),
		SyncLogs:           adapterRepo.NewSyncLogRepository(db, logger),
		SyncedTransactions: adapterRepo.NewSyncedTransactionRepository(db, logger),
		Profiles:           adapterRepo.NewProfileRepository(db),
		Features:           adapterRepo.NewFeatureRepository(db),
	}
}
