package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/model"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type syncLogRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSyncLogRepository creates a new sync log repository
func NewSyncLogRepository(db *gorm.DB, logger *zap.Logger) repository.SyncLogRepository {
	return &syncLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncLogRepository) modelToEntity(m *model.SyncLog) *entity.SyncLog {
	if m == nil {
		return nil
	}

	e := &entity.SyncLog{
		ID:          m.ID,
		GymID:       m.GymID.String(),
		Provider:    m.Provider,
		TriggerType: entity.SyncTrigger(m.TriggerType),
		Status:      entity.SyncStatus(m.Status),
		Attempted:   m.Attempted,
		Succeeded:   m.Succeeded,
		Failed:      m.Failed,
		StartedAt:   m.StartedAt,
		EndedAt:     m.EndedAt,
	}
	if m.ErrorSummary != nil {
		e.ErrorSummary = *m.ErrorSummary
	}
	for _, d := range m.ErrorDetail {
		e.Errors = append(e.Errors, entity.SyncError{
			PaymentID: d.PaymentID,
			Error:     d.Error,
		})
	}
	return e
}

func (r *syncLogRepository) entityToModel(e *entity.SyncLog) (*model.SyncLog, error) {
	if e == nil {
		return nil, nil
	}

	gymUUID, err := uuid.Parse(e.GymID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym id: %w", err)
	}

	m := &model.SyncLog{
		ID:          e.ID,
		GymID:       gymUUID,
		Provider:    e.Provider,
		TriggerType: string(e.TriggerType),
		Status:      string(e.Status),
		Attempted:   e.Attempted,
		Succeeded:   e.Succeeded,
		Failed:      e.Failed,
		StartedAt:   e.StartedAt,
		EndedAt:     e.EndedAt,
	}
	if e.ErrorSummary != "" {
		m.ErrorSummary = &e.ErrorSummary
	}
	for _, se := range e.Errors {
		m.ErrorDetail = append(m.ErrorDetail, model.SyncErrorEntry{
			PaymentID: se.PaymentID,
			Error:     se.Error,
		})
	}
	return m, nil
}

func (r *syncLogRepository) Create(ctx context.Context, log *entity.SyncLog) error {
	m, err := r.entityToModel(log)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to create sync log",
			zap.String("gym_id", log.GymID),
			zap.String("provider", log.Provider),
			zap.Error(err))
		return fmt.Errorf("failed to create sync log: %w", err)
	}
	return nil
}

func (r *syncLogRepository) Finalize(ctx context.Context, log *entity.SyncLog) error {
	m, err := r.entityToModel(log)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Model(&model.SyncLog{}).
		Where("id = ? AND status = ?", m.ID, string(entity.SyncStatusRunning)).
		Updates(map[string]interface{}{
			"status":        m.Status,
			"attempted":     m.Attempted,
			"succeeded":     m.Succeeded,
			"failed":        m.Failed,
			"error_summary": m.ErrorSummary,
			"error_detail":  m.ErrorDetail,
			"ended_at":      m.EndedAt,
		}).Error
	if err != nil {
		r.logger.Error("Failed to finalize sync log",
			zap.String("sync_log_id", log.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to finalize sync log: %w", err)
	}
	return nil
}

func (r *syncLogRepository) GetByID(ctx context.Context, gymID uuid.UUID, id uuid.UUID) (*entity.SyncLog, error) {
	var m model.SyncLog
	err := r.db.WithContext(ctx).
		Where("id = ? AND gym_id = ?", id, gymID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync log: %w", err)
	}
	return r.modelToEntity(&m), nil
}
