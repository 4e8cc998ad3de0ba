package http

import (
	"errors"
	"net/http"

	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
	"github.com/gymstack/accounting-service/internal/middleware/auth"
	"github.com/gymstack/accounting-service/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FeatureHandler manages per-gym feature toggles.
type FeatureHandler struct {
	featureService *usecase.FeatureService
	logger         *zap.Logger
}

// NewFeatureHandler creates a new feature handler
func NewFeatureHandler(featureService *usecase.FeatureService, logger *zap.Logger) *FeatureHandler {
	return &FeatureHandler{
		featureService: featureService,
		logger:         logger,
	}
}

type setFeatureRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// List handles GET /api/v1/features
func (h *FeatureHandler) List(c echo.Context) error {
	profile, err := auth.GetProfileFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	states, err := h.featureService.List(c.Request().Context(), profile.GymID)
	if err != nil {
		h.logger.Error("Failed to list features",
			zap.String("gym_id", profile.GymID.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"features": states,
	})
}

// SetEnabled handles PUT /api/v1/features/:key
func (h *FeatureHandler) SetEnabled(c echo.Context) error {
	profile, err := auth.GetProfileFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "feature key is required",
			"code":  "INVALID_REQUEST",
		})
	}

	var req setFeatureRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "enabled is required",
			"code":  "INVALID_REQUEST",
		})
	}

	changed, err := h.featureService.SetEnabled(c.Request().Context(), profile.GymID, key, *req.Enabled)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrFeatureNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "feature not found",
				"code":  "NOT_FOUND",
			})
		case errors.Is(err, domainErrors.ErrDependencyCycle):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": err.Error(),
				"code":  "DEPENDENCY_CYCLE",
			})
		default:
			h.logger.Error("Failed to set feature state",
				zap.String("gym_id", profile.GymID.String()),
				zap.String("feature", key),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "internal server error",
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"feature": key,
		"enabled": *req.Enabled,
		"changed": changed,
	})
}
