package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/provider"
	"github.com/stretchr/testify/mock"
)

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) GetByProviderIntentID(ctx context.Context, intentID string) (*entity.Payment, error) {
	args := m.Called(ctx, intentID)
	if p := args.Get(0); p != nil {
		return p.(*entity.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) GetUnsynced(ctx context.Context, gymID uuid.UUID, limit int) ([]*entity.Payment, error) {
	args := m.Called(ctx, gymID, limit)
	if p := args.Get(0); p != nil {
		return p.([]*entity.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) MarkSynced(ctx context.Context, paymentID int64, at time.Time) error {
	args := m.Called(ctx, paymentID, at)
	return args.Error(0)
}

func (m *mockPaymentRepo) MarkSyncedBefore(ctx context.Context, gymID uuid.UUID, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, gymID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type mockMappingRepo struct {
	mock.Mock
}

func (m *mockMappingRepo) List(ctx context.Context, gymID uuid.UUID) ([]*entity.AccountMapping, error) {
	args := m.Called(ctx, gymID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.AccountMapping), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMappingRepo) ListByProvider(ctx context.Context, gymID uuid.UUID, providerName string) ([]*entity.AccountMapping, error) {
	args := m.Called(ctx, gymID, providerName)
	if v := args.Get(0); v != nil {
		return v.([]*entity.AccountMapping), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMappingRepo) Upsert(ctx context.Context, mapping *entity.AccountMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

type mockIntegrationRepo struct {
	mock.Mock
}

func (m *mockIntegrationRepo) List(ctx context.Context, gymID uuid.UUID) ([]*entity.Integration, error) {
	args := m.Called(ctx, gymID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Integration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIntegrationRepo) GetByProvider(ctx context.Context, gymID uuid.UUID, providerName string) (*entity.Integration, error) {
	args := m.Called(ctx, gymID, providerName)
	if v := args.Get(0); v != nil {
		return v.(*entity.Integration), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSyncLogRepo struct {
	mock.Mock
}

func (m *mockSyncLogRepo) Create(ctx context.Context, log *entity.SyncLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockSyncLogRepo) Finalize(ctx context.Context, log *entity.SyncLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockSyncLogRepo) GetByID(ctx context.Context, gymID uuid.UUID, id uuid.UUID) (*entity.SyncLog, error) {
	args := m.Called(ctx, gymID, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.SyncLog), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSyncedTxnRepo struct {
	mock.Mock
}

func (m *mockSyncedTxnRepo) Exists(ctx context.Context, paymentID int64, providerName string) (bool, error) {
	args := m.Called(ctx, paymentID, providerName)
	return args.Bool(0), args.Error(1)
}

func (m *mockSyncedTxnRepo) Create(ctx context.Context, txn *entity.SyncedTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

type mockFeatureRepo struct {
	mock.Mock
}

func (m *mockFeatureRepo) ListFeatures(ctx context.Context) ([]*entity.Feature, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Feature), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeatureRepo) ListEnabled(ctx context.Context, gymID uuid.UUID) (map[string]bool, error) {
	args := m.Called(ctx, gymID)
	if v := args.Get(0); v != nil {
		return v.(map[string]bool), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeatureRepo) SetEnabled(ctx context.Context, gymID uuid.UUID, featureKey string, enabled bool) error {
	args := m.Called(ctx, gymID, featureKey, enabled)
	return args.Error(0)
}

type mockProviderFactory struct {
	mock.Mock
}

func (m *mockProviderFactory) GetProvider(integration *entity.Integration) (provider.AccountingProvider, error) {
	args := m.Called(integration)
	if v := args.Get(0); v != nil {
		return v.(provider.AccountingProvider), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProvider struct {
	mock.Mock
	name      string
	supported bool
}

func (m *mockProvider) Name() string    { return m.name }
func (m *mockProvider) Supported() bool { return m.supported }

func (m *mockProvider) ExportPayment(ctx context.Context, req *provider.ExportRequest) (*provider.ExportResult, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*provider.ExportResult), args.Error(1)
	}
	return nil, args.Error(1)
}
