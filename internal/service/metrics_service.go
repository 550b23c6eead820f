package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP layer, the
// verdict cache and the catalog.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	verdicts        *prometheus.CounterVec
	evaluations     *prometheus.HistogramVec
	catalogCourses  prometheus.Gauge
	catalogUnis     prometheus.Gauge
	catalogIssues   prometheus.Gauge
	catalogLoad     *prometheus.HistogramVec

	cacheHitCount  uint64
	cacheMissCount uint64
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	verdicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eligibility_verdicts_total",
		Help: "Verdicts produced, by category",
	}, []string{"category"})

	evaluations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eligibility_evaluation_duration_seconds",
		Help:    "Duration of uncached eligibility evaluations",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"operation"})

	catalogCourses := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_courses",
		Help: "Number of courses in the loaded catalog",
	})

	catalogUnis := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_universities",
		Help: "Number of universities in the registry",
	})

	catalogIssues := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_issues",
		Help: "Authoring issues found when the catalog was loaded",
	})

	catalogLoad := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_load_duration_seconds",
		Help:    "Duration of catalog loads",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite, cacheHitRatio, cacheHits, cacheMisses,
		verdicts, evaluations, catalogCourses, catalogUnis, catalogIssues, catalogLoad, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		verdicts:        verdicts,
		evaluations:     evaluations,
		catalogCourses:  catalogCourses,
		catalogUnis:     catalogUnis,
		catalogIssues:   catalogIssues,
		catalogLoad:     catalogLoad,
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records cache hit/miss metrics and updates the hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	total := hits + atomic.LoadUint64(&m.cacheMissCount)
	if total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration of cache writes.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveEvaluation records how long an uncached evaluation took.
func (m *MetricsService) ObserveEvaluation(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordVerdicts counts verdicts by category.
func (m *MetricsService) RecordVerdicts(verdicts ...models.Verdict) {
	if m == nil {
		return
	}
	for _, v := range verdicts {
		m.verdicts.WithLabelValues(string(v.Category)).Inc()
	}
}

// ObserveCatalogLoad records the size of a freshly loaded catalog.
func (m *MetricsService) ObserveCatalogLoad(source string, universities, courses, issues int, duration time.Duration) {
	if m == nil {
		return
	}
	m.catalogLoad.WithLabelValues(source).Observe(duration.Seconds())
	m.catalogUnis.Set(float64(universities))
	m.catalogCourses.Set(float64(courses))
	m.catalogIssues.Set(float64(issues))
}

// CacheHitRatio returns the share of cache lookups that hit.
func (m *MetricsService) CacheHitRatio() float64 {
	if m == nil {
		return 0
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	total := hits + atomic.LoadUint64(&m.cacheMissCount)
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
