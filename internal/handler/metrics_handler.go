package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type prometheusExporter interface {
	Handler() http.Handler
}

type readinessChecker interface {
	Ready() bool
}

type pinger interface {
	Ping(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics prometheusExporter
	catalog readinessChecker
	cache   pinger
}

// NewMetricsHandler constructs a metrics handler. cache may be nil when Redis is
// not configured.
func NewMetricsHandler(metrics prometheusExporter, catalog readinessChecker, cache pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, catalog: catalog, cache: cache}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness probes.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the catalog is loaded and the cache reachable. A cache
// outage degrades the service but does not make it unready.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.catalog == nil || !h.catalog.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "catalog": "not loaded"})
		return
	}
	cacheStatus := "disabled"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "degraded"
		} else {
			cacheStatus = "ok"
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "catalog": "loaded", "cache": cacheStatus})
}
