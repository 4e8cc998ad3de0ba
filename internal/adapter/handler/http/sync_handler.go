package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
	"github.com/gymstack/accounting-service/internal/middleware/auth"
	"github.com/gymstack/accounting-service/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SyncHandler exposes the manual sync trigger and sync status lookup.
type SyncHandler struct {
	syncService *usecase.SyncService
	logger      *zap.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *usecase.SyncService, logger *zap.Logger) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		logger:      logger,
	}
}

type manualSyncRequest struct {
	Provider string `json:"provider" validate:"required"`
	Limit    int    `json:"limit"`
}

// ManualSync handles POST /api/v1/accounting/sync/manual
func (h *SyncHandler) ManualSync(c echo.Context) error {
	profile, err := auth.GetProfileFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	var req manualSyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "provider is required",
			"code":  "INVALID_REQUEST",
		})
	}

	summary, err := h.syncService.ManualSync(c.Request().Context(), profile.GymID, req.Provider, req.Limit)
	if err != nil {
		return h.mapSyncError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// SyncStatus handles GET /api/v1/accounting/sync/status?syncLogId=<uuid>
func (h *SyncHandler) SyncStatus(c echo.Context) error {
	profile, err := auth.GetProfileFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	rawID := c.QueryParam("syncLogId")
	if rawID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "syncLogId query parameter is required",
			"code":  "INVALID_REQUEST",
		})
	}
	syncLogID, err := uuid.Parse(rawID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "syncLogId must be a valid UUID",
			"code":  "INVALID_REQUEST",
		})
	}

	syncLog, err := h.syncService.SyncStatus(c.Request().Context(), profile.GymID, syncLogID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrSyncLogNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "sync log not found",
				"code":  "NOT_FOUND",
			})
		}
		h.logger.Error("Failed to get sync status",
			zap.String("sync_log_id", rawID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(http.StatusOK, syncLog)
}

func (h *SyncHandler) mapSyncError(c echo.Context, err error) error {
	var missingMappings *domainErrors.MissingMappingsError
	switch {
	case errors.Is(err, domainErrors.ErrInvalidProvider):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
			"code":  "INVALID_PROVIDER",
		})
	case errors.Is(err, domainErrors.ErrProviderNotConfigured):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
			"code":  "PROVIDER_NOT_CONFIGURED",
		})
	case errors.Is(err, domainErrors.ErrProviderNotActive):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
			"code":  "PROVIDER_NOT_ACTIVE",
		})
	case errors.As(err, &missingMappings):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":              missingMappings.Error(),
			"code":               "MISSING_MAPPINGS",
			"missing_categories": missingMappings.Categories,
		})
	default:
		h.logger.Error("Manual sync failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
		})
	}
}
