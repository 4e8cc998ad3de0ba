package http

import (
	"net/http"

	"github.com/gymstack/accounting-service/internal/domain/provider"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"github.com/gymstack/accounting-service/internal/middleware/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// IntegrationHandler exposes read-only views of the gym's accounting
// integrations and the platform's provider capabilities.
type IntegrationHandler struct {
	integrations repository.IntegrationRepository
	logger       *zap.Logger
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(integrations repository.IntegrationRepository, logger *zap.Logger) *IntegrationHandler {
	return &IntegrationHandler{
		integrations: integrations,
		logger:       logger,
	}
}

// List handles GET /api/v1/accounting/integrations. Credentials never appear
// in the response; AccessToken carries a json:"-" tag.
func (h *IntegrationHandler) List(c echo.Context) error {
	profile, err := auth.GetProfileFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}

	integrations, err := h.integrations.List(c.Request().Context(), profile.GymID)
	if err != nil {
		h.logger.Error("Failed to list integrations",
			zap.String("gym_id", profile.GymID.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"integrations": integrations,
	})
}

// Providers handles GET /api/v1/accounting/providers
func (h *IntegrationHandler) Providers(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"providers": provider.Capabilities(),
	})
}
