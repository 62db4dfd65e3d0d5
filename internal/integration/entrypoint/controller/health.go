// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// HealthCheck probes one dependency of the API.
type HealthCheck func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	checks map[string]HealthCheck
	clock  adapter.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(clock adapter.Clock, checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		checks: checks,
		clock:  clock,
	}
}

// Check handles GET /health requests.
// It returns 503 when any dependency is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	code := http.StatusOK
	dependencies := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			slog.Warn("Health check failed", "dependency", name, "error", err)
			dependencies[name] = "disconnected"
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		dependencies[name] = "connected"
	}

	c.JSON(code, HealthResponse{
		Status:       status,
		Dependencies: dependencies,
		Timestamp:    h.clock.Now().UTC().Format(time.RFC3339),
	})
}
