package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/model"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) repository.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentRepository) modelToEntity(m *model.Payment) *entity.Payment {
	if m == nil {
		return nil
	}

	e := &entity.Payment{
		ID:          m.ID,
		GymID:       m.GymID.String(),
		MemberName:  m.MemberName,
		MemberEmail: m.MemberEmail,
		Type:        entity.PaymentType(m.Type),
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		Status:      entity.PaymentStatus(m.Status),
		Synced:      m.Synced,
		SyncedAt:    m.SyncedAt,
		PaidAt:      m.PaidAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.MemberID != nil {
		e.MemberID = m.MemberID.String()
	}
	if m.ProviderPaymentIntentID != nil {
		e.ProviderPaymentIntentID = *m.ProviderPaymentIntentID
	}
	return e
}

func (r *paymentRepository) entityToModel(e *entity.Payment) (*model.Payment, error) {
	if e == nil {
		return nil, nil
	}

	gymUUID, err := uuid.Parse(e.GymID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym id: %w", err)
	}

	m := &model.Payment{
		ID:          e.ID,
		GymID:       gymUUID,
		MemberName:  e.MemberName,
		MemberEmail: e.MemberEmail,
		Type:        string(e.Type),
		AmountCents: e.AmountCents,
		Currency:    e.Currency,
		Status:      string(e.Status),
		Synced:      e.Synced,
		SyncedAt:    e.SyncedAt,
		PaidAt:      e.PaidAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.MemberID != "" {
		memberUUID, err := uuid.Parse(e.MemberID)
		if err != nil {
			return nil, fmt.Errorf("invalid member id: %w", err)
		}
		m.MemberID = &memberUUID
	}
	if e.ProviderPaymentIntentID != "" {
		intentID := e.ProviderPaymentIntentID
		m.ProviderPaymentIntentID = &intentID
	}
	return m, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	m, err := r.entityToModel(payment)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to create payment",
			zap.String("gym_id", payment.GymID),
			zap.Error(err))
		return fmt.Errorf("failed to create payment: %w", err)
	}

	payment.ID = m.ID
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	var m model.Payment
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return r.modelToEntity(&m), nil
}

func (r *paymentRepository) GetByProviderIntentID(ctx context.Context, intentID string) (*entity.Payment, error) {
	var m model.Payment
	err := r.db.WithContext(ctx).
		Where("provider_payment_intent_id = ?", intentID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment by intent id: %w", err)
	}
	return r.modelToEntity(&m), nil
}

func (r *paymentRepository) GetUnsynced(ctx context.Context, gymID uuid.UUID, limit int) ([]*entity.Payment, error) {
	var models []model.Payment
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND synced = ?", gymID, false).
		Order("created_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to get unsynced payments",
			zap.String("gym_id", gymID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get unsynced payments: %w", err)
	}

	payments := make([]*entity.Payment, len(models))
	for i := range models {
		payments[i] = r.modelToEntity(&models[i])
	}
	return payments, nil
}

func (r *paymentRepository) MarkSynced(ctx context.Context, paymentID int64, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ?", paymentID).
		Updates(map[string]interface{}{
			"synced":     true,
			"synced_at":  at,
			"updated_at": at,
		}).Error
	if err != nil {
		r.logger.Error("Failed to mark payment synced",
			zap.Int64("payment_id", paymentID),
			zap.Error(err))
		return fmt.Errorf("failed to mark payment synced: %w", err)
	}
	return nil
}

func (r *paymentRepository) MarkSyncedBefore(ctx context.Context, gymID uuid.UUID, cutoff time.Time) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("gym_id = ? AND synced = ? AND created_at < ?", gymID, false, cutoff).
		Updates(map[string]interface{}{
			"synced":     true,
			"synced_at":  now,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to backfill synced flag: %w", result.Error)
	}
	return result.RowsAffected, nil
}
