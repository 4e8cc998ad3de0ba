package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/model"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type syncedTransactionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSyncedTransactionRepository creates a new synced transaction repository
func NewSyncedTransactionRepository(db *gorm.DB, logger *zap.Logger) repository.SyncedTransactionRepository {
	return &syncedTransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncedTransactionRepository) Exists(ctx context.Context, paymentID int64, provider string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SyncedTransaction{}).
		Where("payment_id = ? AND provider = ?", paymentID, provider).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check synced transaction: %w", err)
	}
	return count > 0, nil
}

func (r *syncedTransactionRepository) Create(ctx context.Context, txn *entity.SyncedTransaction) error {
	gymUUID, err := uuid.Parse(txn.GymID)
	if err != nil {
		return fmt.Errorf("invalid gym id: %w", err)
	}

	m := &model.SyncedTransaction{
		GymID:                     gymUUID,
		PaymentID:                 txn.PaymentID,
		Provider:                  txn.Provider,
		SyncLogID:                 txn.SyncLogID,
		ExternalTransactionID:     txn.ExternalTransactionID,
		ExternalTransactionNumber: txn.ExternalTransactionNumber,
		RevenueCategory:           string(txn.RevenueCategory),
		AmountCents:               txn.AmountCents,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// The (payment_id, provider) unique index is the idempotency guard;
		// a duplicate key means another run already exported this payment.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainErrors.ErrAlreadySynced
		}
		r.logger.Error("Failed to create synced transaction",
			zap.Int64("payment_id", txn.PaymentID),
			zap.String("provider", txn.Provider),
			zap.Error(err))
		return fmt.Errorf("failed to create synced transaction: %w", err)
	}

	txn.ID = m.ID
	return nil
}
