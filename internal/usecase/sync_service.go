package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
	"github.com/gymstack/accounting-service/internal/domain/provider"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"github.com/gymstack/accounting-service/pkg/messaging"
	"go.uber.org/zap"
)

const (
	defaultSyncLimit = 50
	maxSyncLimit     = 200

	syncCompletedChannel = "accounting.sync.completed"
)

// ProviderFactory resolves the accounting provider for an integration row.
type ProviderFactory interface {
	GetProvider(integration *entity.Integration) (provider.AccountingProvider, error)
}

// SyncService orchestrates one payment-to-ledger reconciliation run.
// Everything is sequential within a single request; per-payment failures are
// isolated and reported, never thrown up.
type SyncService struct {
	payments     repository.PaymentRepository
	mappings     repository.AccountMappingRepository
	integrations repository.IntegrationRepository
	syncLogs     repository.SyncLogRepository
	syncedTxns   repository.SyncedTransactionRepository
	providers    ProviderFactory
	publisher    messaging.RedisClient
	logger       *zap.Logger
}

// NewSyncService creates a new sync service. publisher may be nil when event
// publishing is not configured.
func NewSyncService(
	payments repository.PaymentRepository,
	mappings repository.AccountMappingRepository,
	integrations repository.IntegrationRepository,
	syncLogs repository.SyncLogRepository,
	syncedTxns repository.SyncedTransactionRepository,
	providers ProviderFactory,
	publisher messaging.RedisClient,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		payments:     payments,
		mappings:     mappings,
		integrations: integrations,
		syncLogs:     syncLogs,
		syncedTxns:   syncedTxns,
		providers:    providers,
		publisher:    publisher,
		logger:       logger,
	}
}

// ManualSync validates the provider configuration, then exports the gym's
// unsynced payments one by one. No payment is mutated before all validation
// has passed.
func (s *SyncService) ManualSync(ctx context.Context, gymID uuid.UUID, providerName string, limit int) (*entity.SyncSummary, error) {
	providerType := provider.ProviderType(providerName)
	if !providerType.Valid() {
		return nil, domainErrors.ErrInvalidProvider
	}

	integration, err := s.integrations.GetByProvider(ctx, gymID, providerName)
	if err != nil {
		return nil, fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil {
		return nil, domainErrors.ErrProviderNotConfigured
	}
	if !integration.Active {
		return nil, domainErrors.ErrProviderNotActive
	}

	mappingsByCategory, err := s.loadMappings(ctx, gymID, providerName)
	if err != nil {
		return nil, err
	}

	adapter, err := s.providers.GetProvider(integration)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultSyncLimit
	} else if limit > maxSyncLimit {
		limit = maxSyncLimit
	}

	syncLog := &entity.SyncLog{
		ID:          uuid.New(),
		GymID:       gymID.String(),
		Provider:    providerName,
		TriggerType: entity.SyncTriggerManual,
		Status:      entity.SyncStatusRunning,
		StartedAt:   time.Now(),
	}
	if err := s.syncLogs.Create(ctx, syncLog); err != nil {
		return nil, err
	}

	unsynced, err := s.payments.GetUnsynced(ctx, gymID, limit)
	if err != nil {
		s.finalize(ctx, syncLog, 0, nil, "failed to load payments")
		return nil, err
	}

	var (
		succeeded int
		failures  []entity.SyncError
	)

	for _, payment := range unsynced {
		categorized, err := Categorize(payment)
		if err != nil {
			failures = append(failures, entity.SyncError{
				PaymentID: payment.ID,
				Error:     err.Error(),
			})
			syncPaymentsTotal.WithLabelValues(providerName, "failed").Inc()
			continue
		}

		// Pre-dispatch idempotency check. The uniqueness constraint on the
		// synced-transactions insert below is the authoritative guard.
		exists, err := s.syncedTxns.Exists(ctx, payment.ID, providerName)
		if err != nil {
			failures = append(failures, entity.SyncError{
				PaymentID: payment.ID,
				Error:     err.Error(),
			})
			syncPaymentsTotal.WithLabelValues(providerName, "failed").Inc()
			continue
		}
		if exists {
			syncPaymentsTotal.WithLabelValues(providerName, "skipped").Inc()
			continue
		}

		result, exportErr := s.exportOne(ctx, adapter, categorized, mappingsByCategory)
		if exportErr != nil {
			failures = append(failures, entity.SyncError{
				PaymentID: payment.ID,
				Error:     exportErr.Error(),
			})
			syncPaymentsTotal.WithLabelValues(providerName, "failed").Inc()
			continue
		}

		recordErr := s.recordSuccess(ctx, gymID, syncLog.ID, providerName, categorized, result)
		if errors.Is(recordErr, domainErrors.ErrAlreadySynced) {
			// Another run exported this payment between the check and the
			// insert; treat it as skipped.
			syncPaymentsTotal.WithLabelValues(providerName, "skipped").Inc()
			continue
		}
		if recordErr != nil {
			failures = append(failures, entity.SyncError{
				PaymentID: payment.ID,
				Error:     recordErr.Error(),
			})
			syncPaymentsTotal.WithLabelValues(providerName, "failed").Inc()
			continue
		}

		succeeded++
		syncPaymentsTotal.WithLabelValues(providerName, "succeeded").Inc()
	}

	summary := s.finalize(ctx, syncLog, succeeded, failures, "")
	syncRunsTotal.WithLabelValues(providerName, string(summary.Status)).Inc()
	s.publishCompleted(ctx, syncLog, summary)

	return summary, nil
}

// loadMappings returns the provider's mappings keyed by category, failing
// when any required revenue category is unmapped.
func (s *SyncService) loadMappings(ctx context.Context, gymID uuid.UUID, providerName string) (map[entity.RevenueCategory]*entity.AccountMapping, error) {
	mappings, err := s.mappings.ListByProvider(ctx, gymID, providerName)
	if err != nil {
		return nil, fmt.Errorf("failed to load account mappings: %w", err)
	}

	byCategory := make(map[entity.RevenueCategory]*entity.AccountMapping, len(mappings))
	for _, m := range mappings {
		byCategory[m.RevenueCategory] = m
	}

	var missing []string
	for _, required := range entity.RequiredCategories {
		if _, ok := byCategory[required]; !ok {
			missing = append(missing, string(required))
		}
	}
	if len(missing) > 0 {
		return nil, &domainErrors.MissingMappingsError{
			Provider:   providerName,
			Categories: missing,
		}
	}
	return byCategory, nil
}

func (s *SyncService) exportOne(
	ctx context.Context,
	adapter provider.AccountingProvider,
	categorized *entity.CategorizedPayment,
	mappings map[entity.RevenueCategory]*entity.AccountMapping,
) (*provider.ExportResult, error) {
	mapping, ok := mappings[categorized.Category]
	if !ok {
		return nil, fmt.Errorf("no account mapping for category %s", categorized.Category)
	}

	payment := categorized.Payment
	req := &provider.ExportRequest{
		PaymentID:   payment.ID,
		MemberName:  payment.MemberName,
		MemberEmail: payment.MemberEmail,
		Category:    string(categorized.Category),
		Description: categorized.Description,
		AmountCents: payment.AmountCents,
		Currency:    payment.Currency,
		AccountID:   mapping.ExternalAccountID,
		AccountName: mapping.ExternalAccountName,
		Refund:      categorized.Category == entity.CategoryRefund,
		PaidAt:      payment.PaidAt,
	}

	return adapter.ExportPayment(ctx, req)
}

// recordSuccess inserts the synced-transaction row and flips the payment's
// synced flag. The insert carries the idempotency constraint, so it runs
// first.
func (s *SyncService) recordSuccess(
	ctx context.Context,
	gymID uuid.UUID,
	syncLogID uuid.UUID,
	providerName string,
	categorized *entity.CategorizedPayment,
	result *provider.ExportResult,
) error {
	payment := categorized.Payment

	err := s.syncedTxns.Create(ctx, &entity.SyncedTransaction{
		GymID:                     gymID.String(),
		PaymentID:                 payment.ID,
		Provider:                  providerName,
		SyncLogID:                 syncLogID,
		ExternalTransactionID:     result.ExternalID,
		ExternalTransactionNumber: result.ExternalNumber,
		RevenueCategory:           categorized.Category,
		AmountCents:               payment.AmountCents,
	})
	if err != nil {
		return err
	}

	if err := s.payments.MarkSynced(ctx, payment.ID, time.Now()); err != nil {
		// The export happened and the synced-transaction row exists, so the
		// idempotency guard will keep this payment out of future runs even
		// though its flag is stale.
		s.logger.Error("Failed to mark payment synced after export",
			zap.Int64("payment_id", payment.ID),
			zap.Error(err))
	}
	return nil
}

// finalize writes the completion fields to the sync log and builds the
// returned summary. attempted = succeeded + failed by construction.
func (s *SyncService) finalize(ctx context.Context, syncLog *entity.SyncLog, succeeded int, failures []entity.SyncError, summaryOverride string) *entity.SyncSummary {
	failed := len(failures)
	attempted := succeeded + failed

	var status entity.SyncStatus
	switch {
	case summaryOverride != "":
		status = entity.SyncStatusFailed
	case failed == 0:
		status = entity.SyncStatusCompleted
	case succeeded == 0:
		status = entity.SyncStatusFailed
	default:
		status = entity.SyncStatusPartial
	}

	errorSummary := summaryOverride
	if errorSummary == "" && failed > 0 {
		errorSummary = fmt.Sprintf("%d of %d payments failed", failed, attempted)
	}

	now := time.Now()
	syncLog.Status = status
	syncLog.Attempted = attempted
	syncLog.Succeeded = succeeded
	syncLog.Failed = failed
	syncLog.ErrorSummary = errorSummary
	syncLog.Errors = failures
	syncLog.EndedAt = &now

	if err := s.syncLogs.Finalize(ctx, syncLog); err != nil {
		s.logger.Error("Failed to finalize sync log",
			zap.String("sync_log_id", syncLog.ID.String()),
			zap.Error(err))
	}

	return &entity.SyncSummary{
		SyncLogID: syncLog.ID,
		Status:    status,
		Attempted: attempted,
		Succeeded: succeeded,
		Failed:    failed,
		Errors:    failures,
	}
}

func (s *SyncService) publishCompleted(ctx context.Context, syncLog *entity.SyncLog, summary *entity.SyncSummary) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"sync_log_id": syncLog.ID.String(),
		"gym_id":      syncLog.GymID,
		"provider":    syncLog.Provider,
		"status":      summary.Status,
		"attempted":   summary.Attempted,
		"succeeded":   summary.Succeeded,
		"failed":      summary.Failed,
	}
	if err := s.publisher.Publish(ctx, syncCompletedChannel, event); err != nil {
		s.logger.Warn("Failed to publish sync completed event",
			zap.String("sync_log_id", syncLog.ID.String()),
			zap.Error(err))
	}
}

// SyncStatus returns the sync log row, including per-payment failure detail.
func (s *SyncService) SyncStatus(ctx context.Context, gymID uuid.UUID, syncLogID uuid.UUID) (*entity.SyncLog, error) {
	log, err := s.syncLogs.GetByID(ctx, gymID, syncLogID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, domainErrors.ErrSyncLogNotFound
	}
	return log, nil
}
