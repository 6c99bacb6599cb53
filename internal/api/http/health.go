package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check probes one dependency. A nil Check reports "disabled".
type Check func(ctx context.Context) error

const (
	statusOK          = "ok"
	statusDegraded    = "degraded"
	statusUnavailable = "unavailable"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthHandler reports store and cache reachability. The store is required:
// when it is down the endpoint answers 503 so a load balancer stops routing
// here. The project cache is optional, so losing it only degrades.
type HealthHandler struct {
	serviceName string
	version     string
	db          Check
	cache       Check
}

func NewHealthHandler(serviceName, version string, db, cache Check) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		cache:       cache,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	dbState := probe(ctx, h.db)
	cacheState := probe(ctx, h.cache)

	code, status := http.StatusOK, statusOK
	switch {
	case dbState == "down":
		code, status = http.StatusServiceUnavailable, statusUnavailable
	case cacheState == "down":
		status = statusDegraded
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Service:   h.serviceName,
		Version:   h.version,
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{"db": dbState, "cache": cacheState},
	})
}

func probe(ctx context.Context, check Check) string {
	if check == nil {
		return "disabled"
	}
	if err := check(ctx); err != nil {
		return "down"
	}
	return "up"
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
