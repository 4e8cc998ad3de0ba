package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	handler "github.com/gymstack/accounting-service/internal/adapter/handler/http"
	"github.com/gymstack/accounting-service/internal/config"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"github.com/gymstack/accounting-service/internal/middleware/auth"
	apperrors "github.com/gymstack/accounting-service/pkg/errors"
	pkglogger "github.com/gymstack/accounting-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// requestValidator wires go-playground/validator into Echo's c.Validate.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// newErrorHandler routes uncaught errors through the application error
// mapping so AppError codes pick the HTTP status, and logs the rest as 500s
// without leaking internals to the client.
func newErrorHandler(e *echo.Echo, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		httpErr := apperrors.ToHTTPError(err)
		if httpErr.Code >= http.StatusInternalServerError {
			apperrors.LogError(logger, err, "unhandled request error",
				zap.String("path", c.Request().URL.Path))
			httpErr = echo.NewHTTPError(httpErr.Code, "internal server error")
		}
		e.DefaultHTTPErrorHandler(httpErr, c)
	}
}

// Server is the HTTP transport for the accounting service.
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger *zap.Logger
}

// Handlers groups the route handlers the server mounts.
type Handlers struct {
	Sync        *handler.SyncHandler
	Mapping     *handler.MappingHandler
	Integration *handler.IntegrationHandler
	Feature     *handler.FeatureHandler
	Webhook     *handler.WebhookHandler
}

// NewServer creates the Echo server with middleware and routes wired.
func NewServer(cfg *config.Config, handlers *Handlers, profiles repository.ProfileRepository, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = newErrorHandler(e, logger)

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(pkglogger.NewEchoRequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"service": cfg.Service.Name,
			"version": cfg.Service.Version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// The payment processor signs webhook requests; they bypass JWT auth.
	e.POST("/webhook", handlers.Webhook.HandleStripeWebhook)

	api := e.Group("/api/v1")
	api.Use(auth.JWTMiddleware(auth.JWTConfig{
		Secret: cfg.Service.Supabase.JWTSecret,
		Logger: logger,
	}))

	admin := api.Group("", auth.AdminMiddleware(profiles, logger))

	accounting := admin.Group("/accounting")
	accounting.POST("/sync/manual", handlers.Sync.ManualSync)
	accounting.GET("/sync/status", handlers.Sync.SyncStatus)
	accounting.GET("/mappings", handlers.Mapping.List)
	accounting.PUT("/mappings", handlers.Mapping.Upsert)
	accounting.GET("/integrations", handlers.Integration.List)
	accounting.GET("/providers", handlers.Integration.Providers)

	admin.GET("/features", handlers.Feature.List)
	admin.PUT("/features/:key", handlers.Feature.SetEnabled)

	return &Server{
		echo:   e,
		config: cfg,
		logger: logger,
	}
}

// Start blocks serving HTTP until the listener fails or is shut down.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("HTTP server starting", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
