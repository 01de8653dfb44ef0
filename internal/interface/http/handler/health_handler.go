package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
)

// ConnectionCounter сообщает число WebSocket подключений.
type ConnectionCounter interface {
	ClientCount() int
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	catalog   repository.CatalogRepository
	proposals repository.ProposalRepository
	hub       ConnectionCounter
	startedAt time.Time
}

func NewHealthHandler(catalog repository.CatalogRepository, proposals repository.ProposalRepository, hub ConnectionCounter) *HealthHandler {
	return &HealthHandler{catalog: catalog, proposals: proposals, hub: hub, startedAt: time.Now()}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	services, err := h.catalog.List(ctx)
	switch {
	case err != nil:
		checks["catalog"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	case len(services) == 0:
		checks["catalog"] = "unhealthy: каталог пуст"
		status = "unhealthy"
	default:
		checks["catalog"] = "healthy: " + strconv.Itoa(len(services)) + " services"
	}

	if proposals, err := h.proposals.List(ctx); err != nil {
		checks["proposals"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["proposals"] = "healthy: " + strconv.Itoa(len(proposals)) + " proposals"
	}

	if h.hub != nil {
		checks["websocket"] = strconv.Itoa(h.hub.ClientCount()) + " clients"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Checks:    checks,
	})
}
