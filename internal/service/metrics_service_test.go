package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

func TestMetricsServiceRecordsVerdictsAndCatalog(t *testing.T) {
	m := NewMetricsService()
	m.RecordVerdicts(
		models.Verdict{Category: models.CategoryEligible},
		models.Verdict{Category: models.CategoryEligible},
		models.Verdict{Category: models.CategoryUnknown},
	)
	m.ObserveCatalogLoad("static", 26, 28, 0, time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/universities", http.StatusOK, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.verdicts.WithLabelValues("eligible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verdicts.WithLabelValues("unknown")))
	assert.Equal(t, 28.0, testutil.ToFloat64(m.catalogCourses))
	assert.Equal(t, 26.0, testutil.ToFloat64(m.catalogUnis))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/api/v1/universities", "200")))
}

func TestMetricsServiceHandler(t *testing.T) {
	m := NewMetricsService()
	m.RecordCacheOperation(true, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cache_hits_total 1")

	var nilMetrics *MetricsService
	nilMetrics.RecordVerdicts(models.Verdict{})
	rec = httptest.NewRecorder()
	nilMetrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
