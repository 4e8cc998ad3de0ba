package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSyncHandler(syncLogs *mockSyncLogRepo, integrations *mockIntegrationRepo, mappings *mockMappingRepo) *SyncHandler {
	service := usecase.NewSyncService(nil, mappings, integrations, syncLogs, nil, nil, nil, zap.NewNop())
	return NewSyncHandler(service, zap.NewNop())
}

func TestManualSyncRejectsInvalidProvider(t *testing.T) {
	h := newSyncHandler(new(mockSyncLogRepo), new(mockIntegrationRepo), new(mockMappingRepo))
	gymID := uuid.New()

	c, rec := newTestContext(http.MethodPost, "/api/v1/accounting/sync/manual",
		`{"provider":"freshbooks"}`, adminProfile(gymID))

	require.NoError(t, h.ManualSync(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_PROVIDER", body["code"])
}

func TestManualSyncRequiresProviderField(t *testing.T) {
	h := newSyncHandler(new(mockSyncLogRepo), new(mockIntegrationRepo), new(mockMappingRepo))
	gymID := uuid.New()

	c, rec := newTestContext(http.MethodPost, "/api/v1/accounting/sync/manual",
		`{"limit":10}`, adminProfile(gymID))

	require.NoError(t, h.ManualSync(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManualSyncProviderNotConfiguredIsBadRequest(t *testing.T) {
	integrations := new(mockIntegrationRepo)
	h := newSyncHandler(new(mockSyncLogRepo), integrations, new(mockMappingRepo))
	gymID := uuid.New()

	integrations.On("GetByProvider", mock.Anything, gymID, "quickbooks").Return(nil, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/accounting/sync/manual",
		`{"provider":"quickbooks"}`, adminProfile(gymID))

	require.NoError(t, h.ManualSync(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PROVIDER_NOT_CONFIGURED", body["code"])
}

func TestManualSyncMissingMappingsListsCategories(t *testing.T) {
	integrations := new(mockIntegrationRepo)
	mappings := new(mockMappingRepo)
	h := newSyncHandler(new(mockSyncLogRepo), integrations, mappings)
	gymID := uuid.New()

	integrations.On("GetByProvider", mock.Anything, gymID, "quickbooks").
		Return(&entity.Integration{GymID: gymID.String(), Provider: "quickbooks", Active: true, RealmID: "r", AccessToken: "t"}, nil)
	mappings.On("ListByProvider", mock.Anything, gymID, "quickbooks").
		Return([]*entity.AccountMapping{}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/accounting/sync/manual",
		`{"provider":"quickbooks"}`, adminProfile(gymID))

	require.NoError(t, h.ManualSync(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code              string   `json:"code"`
		MissingCategories []string `json:"missing_categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_MAPPINGS", body.Code)
	assert.ElementsMatch(t,
		[]string{"day_pass", "service_booking", "subscription", "refund"},
		body.MissingCategories)
}

func TestSyncStatusRequiresQueryParam(t *testing.T) {
	h := newSyncHandler(new(mockSyncLogRepo), new(mockIntegrationRepo), new(mockMappingRepo))
	gymID := uuid.New()

	c, rec := newTestContext(http.MethodGet, "/api/v1/accounting/sync/status", "", adminProfile(gymID))

	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncStatusRejectsMalformedID(t *testing.T) {
	h := newSyncHandler(new(mockSyncLogRepo), new(mockIntegrationRepo), new(mockMappingRepo))
	gymID := uuid.New()

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/accounting/sync/status?syncLogId=not-a-uuid", "", adminProfile(gymID))

	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncStatusNotFound(t *testing.T) {
	syncLogs := new(mockSyncLogRepo)
	h := newSyncHandler(syncLogs, new(mockIntegrationRepo), new(mockMappingRepo))
	gymID := uuid.New()
	logID := uuid.New()

	syncLogs.On("GetByID", mock.Anything, gymID, logID).Return(nil, nil)

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/accounting/sync/status?syncLogId="+logID.String(), "", adminProfile(gymID))

	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncStatusReturnsLog(t *testing.T) {
	syncLogs := new(mockSyncLogRepo)
	h := newSyncHandler(syncLogs, new(mockIntegrationRepo), new(mockMappingRepo))
	gymID := uuid.New()
	logID := uuid.New()

	syncLogs.On("GetByID", mock.Anything, gymID, logID).Return(&entity.SyncLog{
		ID:        logID,
		GymID:     gymID.String(),
		Provider:  "quickbooks",
		Status:    entity.SyncStatusPartial,
		Attempted: 3,
		Succeeded: 2,
		Failed:    1,
		Errors:    []entity.SyncError{{PaymentID: 7, Error: "rate limited"}},
	}, nil)

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/accounting/sync/status?syncLogId="+logID.String(), "", adminProfile(gymID))

	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body entity.SyncLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entity.SyncStatusPartial, body.Status)
	assert.Equal(t, 3, body.Attempted)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, int64(7), body.Errors[0].PaymentID)
}
