package http

import (
	"testing"

	handler "github.com/gymstack/accounting-service/internal/adapter/handler/http"
	"github.com/gymstack/accounting-service/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestServerRouteTable(t *testing.T) {
	log := zap.NewNop()
	handlers := &Handlers{
		Sync:        handler.NewSyncHandler(nil, log),
		Mapping:     handler.NewMappingHandler(nil, log),
		Integration: handler.NewIntegrationHandler(nil, log),
		Feature:     handler.NewFeatureHandler(nil, log),
		Webhook:     handler.NewWebhookHandler(nil, "", log),
	}
	s := NewServer(&config.Config{}, handlers, nil, log)

	registered := map[string]bool{}
	for _, r := range s.echo.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /metrics",
		"POST /webhook",
		"POST /api/v1/accounting/sync/manual",
		"GET /api/v1/accounting/sync/status",
		"GET /api/v1/accounting/mappings",
		"PUT /api/v1/accounting/mappings",
		"GET /api/v1/accounting/integrations",
		"GET /api/v1/accounting/providers",
		"GET /api/v1/features",
		"PUT /api/v1/features/:key",
	}
	for _, route := range want {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}
