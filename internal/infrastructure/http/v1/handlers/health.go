package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"crmdesk/internal/infrastructure/storage/postgres"
)

// Pinger is anything whose liveness can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	pool *postgres.Pool
	kv   Pinger
}

// NewHealthHandler creates a new health handler. kv may be nil when the
// ledger runs on the in-memory store.
func NewHealthHandler(pool *postgres.Pool, kv Pinger) *HealthHandler {
	return &HealthHandler{pool: pool, kv: kv}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := map[string]string{}
	healthy := true

	if err := h.pool.Ping(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "healthy"
	}

	if h.kv != nil {
		if err := h.kv.Ping(ctx); err != nil {
			checks["kv"] = "unhealthy: " + err.Error()
			healthy = false
		} else {
			checks["kv"] = "healthy"
		}
	}

	status := http.StatusOK
	state := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "error"
	}

	c.JSON(status, gin.H{
		"status": state,
		"checks": checks,
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	stat := h.pool.Stat()

	c.JSON(http.StatusOK, gin.H{
		"app":     "crmdesk",
		"version": "0.1.0",
		"database": map[string]any{
			"total_conns":    stat.TotalConns(),
			"acquired_conns": stat.AcquiredConns(),
			"idle_conns":     stat.IdleConns(),
			"max_conns":      stat.MaxConns(),
		},
	})
}
