package http

import (
	"net/http"

	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/provider"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"github.com/gymstack/accounting-service/internal/middleware/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MappingHandler manages a gym's revenue-category-to-account mappings.
type MappingHandler struct {
	mappings repository.AccountMappingRepository
	logger   *zap.Logger
}

// NewMappingHandler creates a new mapping handler
func NewMappingHandler(mappings repository.AccountMappingRepository, logger *zap.Logger) *MappingHandler {
	return &MappingHandler{
		mappings: mappings,
		logger:   logger,
	}
}

type upsertMappingRequest struct {
	Provider            string `json:"provider" validate:"required"`
	RevenueCategory     string `json:"revenue_category" validate:"required"`
	ExternalAccountID   string `json:"external_account_id" validate:"required"`
	ExternalAccountName string `json:"external_account_name"`
}

// List handles GET /api/v1/accounting/mappings
func (h *MappingHandler) List(c echo.Context) error {
	profile, err := auth.GetProfileFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	mappings, err := h.mappings.List(c.Request().Context(), profile.GymID)
	if err != nil {
		h.logger.Error("Failed to list account mappings",
			zap.String("gym_id", profile.GymID.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"mappings":            mappings,
		"required_categories": entity.RequiredCategories,
	})
}

// Upsert handles PUT /api/v1/accounting/mappings
func (h *MappingHandler) Upsert(c echo.Context) error {
	profile, err := auth.GetProfileFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	var req upsertMappingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "provider, revenue_category and external_account_id are required",
			"code":  "INVALID_REQUEST",
		})
	}

	if !provider.ProviderType(req.Provider).Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid accounting provider",
			"code":  "INVALID_PROVIDER",
		})
	}
	category := entity.RevenueCategory(req.RevenueCategory)
	if !entity.KnownCategory(category) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "unknown revenue category",
			"code":  "INVALID_CATEGORY",
		})
	}

	mapping := &entity.AccountMapping{
		GymID:               profile.GymID.String(),
		Provider:            req.Provider,
		RevenueCategory:     category,
		ExternalAccountID:   req.ExternalAccountID,
		ExternalAccountName: req.ExternalAccountName,
	}
	if err := h.mappings.Upsert(c.Request().Context(), mapping); err != nil {
		h.logger.Error("Failed to upsert account mapping",
			zap.String("gym_id", profile.GymID.String()),
			zap.String("provider", req.Provider),
			zap.String("category", req.RevenueCategory),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(http.StatusOK, mapping)
}
