package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminMiddleware resolves the caller's profile row and rejects anyone whose
// role column is not admin. It must run after JWTMiddleware.
func AdminMiddleware(profiles repository.ProfileRepository, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := GetUserFromContext(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authentication required",
					"code":  "AUTH_REQUIRED",
				})
			}

			userUUID, err := uuid.Parse(user.UserID)
			if err != nil {
				logger.Warn("Invalid user id in token",
					zap.String("user_id", user.UserID),
					zap.Error(err))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "Admin role required",
					"code":  "ADMIN_REQUIRED",
				})
			}

			profile, err := profiles.GetByUserID(c.Request().Context(), userUUID)
			if err != nil {
				logger.Error("Failed to load profile",
					zap.String("user_id", user.UserID),
					zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"error": "internal server error",
				})
			}

			if profile == nil || !profile.IsAdmin() {
				logger.Warn("Admin access denied",
					zap.String("user_id", user.UserID))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "Admin role required",
					"code":  "ADMIN_REQUIRED",
				})
			}

			ctx := context.WithValue(c.Request().Context(), profileContextKey, profile)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// SetProfile stores a profile on the request context the same way
// AdminMiddleware does. Useful when invoking handlers outside the middleware
// chain.
func SetProfile(c echo.Context, profile *entity.Profile) {
	ctx := context.WithValue(c.Request().Context(), profileContextKey, profile)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetProfileFromContext extracts the caller's profile from the request
// context. Only available behind AdminMiddleware.
func GetProfileFromContext(c echo.Context) (*entity.Profile, error) {
	profile, ok := c.Request().Context().Value(profileContextKey).(*entity.Profile)
	if !ok || profile == nil {
		return nil, fmt.Errorf("no profile found in context")
	}
	return profile, nil
}
