package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

// Pinger проверяет доступность хранилища (storage.Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// ClientCounter сообщает число WebSocket подключений (ws.Hub).
type ClientCounter interface {
	ClientCount() int
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	store   Pinger
	hub     ClientCounter
	driver  string
	clock   clock.Clock
	timeout time.Duration
}

// NewHealthHandler создаёт новый health handler; hub может быть nil.
func NewHealthHandler(store Pinger, driver string, hub ClientCounter, clk clock.Clock) *HealthHandler {
	return &HealthHandler{
		store:   store,
		hub:     hub,
		driver:  driver,
		clock:   clk,
		timeout: 5 * time.Second,
	}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	WSClients int               `json:"wsClients"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := map[string]string{"store_driver": h.driver}
	status := "healthy"

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		checks["store"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["store"] = "healthy"
	}

	resp := HealthResponse{
		Status:    status,
		Timestamp: h.clock.Now(),
		Checks:    checks,
	}
	if h.hub != nil {
		resp.WSClients = h.hub.ClientCount()
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, resp)
}
