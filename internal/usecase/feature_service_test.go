package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

// payments <- accounting_sync <- accounting_auto_sync, plus an unrelated
// member_bookings feature.
func featureCatalog() []*entity.Feature {
	return []*entity.Feature{
		{Key: "payments", Name: "Payments"},
		{Key: "accounting_sync", Name: "Accounting Sync", DependsOn: strPtr("payments")},
		{Key: "accounting_auto_sync", Name: "Scheduled Accounting Sync", DependsOn: strPtr("accounting_sync")},
		{Key: "member_bookings", Name: "Member Bookings"},
	}
}

func TestFeatureList(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	repo.On("ListFeatures", mock.Anything).Return(featureCatalog(), nil)
	repo.On("ListEnabled", mock.Anything, gymID).Return(map[string]bool{
		"payments":        true,
		"accounting_sync": true,
	}, nil)

	states, err := service.List(context.Background(), gymID)
	require.NoError(t, err)
	require.Len(t, states, 4)

	byKey := map[string]bool{}
	for _, s := range states {
		byKey[s.Key] = s.Enabled
	}
	assert.True(t, byKey["payments"])
	assert.True(t, byKey["accounting_sync"])
	assert.False(t, byKey["accounting_auto_sync"])
	assert.False(t, byKey["member_bookings"])
}

func TestFeatureEnableCascadesUpDependencyChain(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	repo.On("ListFeatures", mock.Anything).Return(featureCatalog(), nil)
	repo.On("ListEnabled", mock.Anything, gymID).Return(map[string]bool{}, nil)
	repo.On("SetEnabled", mock.Anything, gymID, mock.Anything, true).Return(nil)

	changed, err := service.SetEnabled(context.Background(), gymID, "accounting_auto_sync", true)
	require.NoError(t, err)

	// Dependencies come first so a partial write never leaves a gap.
	assert.Equal(t, []string{"payments", "accounting_sync", "accounting_auto_sync"}, changed)
}

func TestFeatureEnableStopsAtEnabledDependency(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	repo.On("ListFeatures", mock.Anything).Return(featureCatalog(), nil)
	repo.On("ListEnabled", mock.Anything, gymID).Return(map[string]bool{
		"payments": true,
	}, nil)
	repo.On("SetEnabled", mock.Anything, gymID, mock.Anything, true).Return(nil)

	changed, err := service.SetEnabled(context.Background(), gymID, "accounting_auto_sync", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"accounting_sync", "accounting_auto_sync"}, changed)
	repo.AssertNotCalled(t, "SetEnabled", mock.Anything, gymID, "payments", true)
}

func TestFeatureDisableCascadesToDependents(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	repo.On("ListFeatures", mock.Anything).Return(featureCatalog(), nil)
	repo.On("ListEnabled", mock.Anything, gymID).Return(map[string]bool{
		"payments":             true,
		"accounting_sync":      true,
		"accounting_auto_sync": true,
		"member_bookings":      true,
	}, nil)
	repo.On("SetEnabled", mock.Anything, gymID, mock.Anything, false).Return(nil)

	changed, err := service.SetEnabled(context.Background(), gymID, "payments", false)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"payments", "accounting_sync", "accounting_auto_sync"}, changed)
	repo.AssertNotCalled(t, "SetEnabled", mock.Anything, gymID, "member_bookings", false)
}

func TestFeatureDisableSkipsDisabledDependents(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	repo.On("ListFeatures", mock.Anything).Return(featureCatalog(), nil)
	repo.On("ListEnabled", mock.Anything, gymID).Return(map[string]bool{
		"payments":        true,
		"accounting_sync": true,
	}, nil)
	repo.On("SetEnabled", mock.Anything, gymID, mock.Anything, false).Return(nil)

	changed, err := service.SetEnabled(context.Background(), gymID, "accounting_sync", false)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"accounting_sync"}, changed)
}

func TestFeatureEnableSkipsDanglingDependencyKey(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	// accounting_sync declares a dependency whose key is absent from the
	// catalog; enabling must never write the dangling key.
	repo.On("ListFeatures", mock.Anything).Return([]*entity.Feature{
		{Key: "accounting_sync", Name: "Accounting Sync", DependsOn: strPtr("legacy_gate")},
	}, nil)
	repo.On("ListEnabled", mock.Anything, gymID).Return(map[string]bool{}, nil)
	repo.On("SetEnabled", mock.Anything, gymID, "accounting_sync", true).Return(nil)

	changed, err := service.SetEnabled(context.Background(), gymID, "accounting_sync", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"accounting_sync"}, changed)
	repo.AssertNotCalled(t, "SetEnabled", mock.Anything, gymID, "legacy_gate", true)
}

func TestFeatureNotFound(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	repo.On("ListFeatures", mock.Anything).Return(featureCatalog(), nil)

	_, err := service.SetEnabled(context.Background(), gymID, "nonexistent", true)
	assert.ErrorIs(t, err, domainErrors.ErrFeatureNotFound)
}

func TestFeatureDependencyCycleDetected(t *testing.T) {
	repo := new(mockFeatureRepo)
	service := NewFeatureService(repo, zap.NewNop())
	gymID := uuid.New()

	// a -> b -> a, which a sane catalog never contains.
	repo.On("ListFeatures", mock.Anything).Return([]*entity.Feature{
		{Key: "a", DependsOn: strPtr("b")},
		{Key: "b", DependsOn: strPtr("a")},
	}, nil)
	repo.On("ListEnabled", mock.Anything, gymID).Return(map[string]bool{}, nil)

	_, err := service.SetEnabled(context.Background(), gymID, "a", true)
	assert.ErrorIs(t, err, domainErrors.ErrDependencyCycle)
	repo.AssertNotCalled(t, "SetEnabled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
