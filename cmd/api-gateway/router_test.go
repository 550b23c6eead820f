package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-eligibility-api/internal/service"
	"github.com/noah-isme/aps-eligibility-api/pkg/config"
)

func newTestRouter(t *testing.T, exportsEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:       config.EnvDevelopment,
		APIPrefix: "/api/v1",
		Metrics:   config.MetricsConfig{Enabled: true},
	}
	metrics := service.NewMetricsService()
	catalogSvc := service.NewCatalogService(service.CatalogServiceParams{Metrics: metrics})
	require.NoError(t, catalogSvc.Load(context.Background()))
	eligibilitySvc := service.NewEligibilityService(service.EligibilityServiceParams{Catalog: catalogSvc, Metrics: metrics})
	return newRouter(routerDeps{
		cfg:         cfg,
		logger:      zap.NewNop(),
		catalog:     catalogSvc,
		eligibility: eligibilitySvc,
		exports:     service.NewExportService(eligibilitySvc, nil, nil, nil, exportsEnabled),
		metrics:     metrics,
	})
}

type envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func serve(t *testing.T, r http.Handler, method, target string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRouterListsUniversities(t *testing.T) {
	r := newTestRouter(t, false)
	rec, env := serve(t, r, http.MethodGet, "/api/v1/universities", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Universities []map[string]interface{} `json:"universities"`
		Faculties    []string                 `json:"faculties"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Universities, 26)
	assert.Equal(t, "uct", data.Universities[0]["id"])
	assert.NotEmpty(t, data.Faculties)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterProgramsSortedByAPS(t *testing.T) {
	r := newTestRouter(t, false)
	rec, env := serve(t, r, http.MethodGet, "/api/v1/universities/UP/programs?aps=30&sort=aps", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		UserAPS  int `json:"userAPS"`
		Programs []struct {
			RequiredAPS int `json:"requiredAPS"`
			Verdict     struct {
				University string `json:"university"`
				Confidence int    `json:"confidence"`
			} `json:"verdict"`
		} `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 30, data.UserAPS)
	require.NotEmpty(t, data.Programs)
	for i := 1; i < len(data.Programs); i++ {
		assert.LessOrEqual(t, data.Programs[i-1].RequiredAPS, data.Programs[i].RequiredAPS)
	}
	for _, p := range data.Programs {
		assert.Equal(t, "up", p.Verdict.University)
		assert.Equal(t, 75, p.Verdict.Confidence)
	}
	assert.Equal(t, false, env.Meta["cache_hit"])
}

func TestRouterNegativeAPSFallsBackToUnknown(t *testing.T) {
	r := newTestRouter(t, false)
	rec, env := serve(t, r, http.MethodGet, "/api/v1/universities/up/programs?aps=-5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		UserAPS  int `json:"userAPS"`
		Programs []struct {
			Verdict struct {
				Category string `json:"category"`
			} `json:"verdict"`
		} `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 0, data.UserAPS)
	require.NotEmpty(t, data.Programs)
	for _, p := range data.Programs {
		assert.Equal(t, "unknown", p.Verdict.Category)
	}
}

func TestRouterUnknownUniversity(t *testing.T) {
	r := newTestRouter(t, false)
	rec, env := serve(t, r, http.MethodGet, "/api/v1/universities/oxford/programs", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error["code"])
}

func TestRouterEvaluateAndSummary(t *testing.T) {
	r := newTestRouter(t, false)
	profile := []byte(`{"profile":{"subjects":[
		{"name":"Mathematics","marks":82},{"name":"English","marks":75},
		{"name":"Physical Sciences","marks":71},{"name":"Life Sciences","marks":68},
		{"name":"Geography","marks":66},{"name":"History","marks":60}]}}`)

	rec, env := serve(t, r, http.MethodPost, "/api/v1/universities/wits/eligibility", profile)
	require.Equal(t, http.StatusOK, rec.Code)
	var report struct {
		UserAPS int `json:"userAPS"`
		Stats   struct {
			HasProfile bool `json:"hasProfile"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, 34, report.UserAPS)
	assert.True(t, report.Stats.HasProfile)

	rec, env = serve(t, r, http.MethodPost, "/api/v1/eligibility", profile)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		Matches []json.RawMessage `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Len(t, summary.Matches, 26)

	rec, _ = serve(t, r, http.MethodPost, "/api/v1/eligibility", []byte(`{"profile":{"totalAPS":99}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterCourseAndCalculator(t *testing.T) {
	r := newTestRouter(t, false)

	rec, _ := serve(t, r, http.MethodGet, "/api/v1/courses/BSc%20Computer%20Science/eligibility?aps=30", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := serve(t, r, http.MethodPost, "/api/v1/aps/calculate", []byte(`{"subjects":[{"name":"Mathematics","marks":80},{"name":"Life Orientation","marks":99}]}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var calc struct {
		TotalAPS int `json:"totalAPS"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &calc))
	assert.Equal(t, 7, calc.TotalAPS)
}

func TestRouterExports(t *testing.T) {
	rec, env := serve(t, newTestRouter(t, false), http.MethodGet, "/api/v1/universities/uct/programs/export", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FEATURE_DISABLED", env.Error["code"])

	rec, _ = serve(t, newTestRouter(t, true), http.MethodGet, "/api/v1/universities/uct/programs/export?format=csv&aps=32", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Programme,Faculty")
}

func TestRouterOperationalEndpoints(t *testing.T) {
	r := newTestRouter(t, false)

	rec, _ := serve(t, r, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cache":"disabled"`)

	rec, _ = serve(t, r, http.MethodGet, "/api/v1/catalog/issues", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_courses")
}
