package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aps-eligibility-api/internal/catalog"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
	"github.com/noah-isme/aps-eligibility-api/internal/service"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
)

type fakeCatalogSrv struct {
	err error
}

func (f fakeCatalogSrv) Universities(context.Context) ([]models.University, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.University{{ID: "uct", Abbreviation: "UCT"}, {ID: "tut", Abbreviation: "TUT"}}, nil
}

func (f fakeCatalogSrv) Faculties(context.Context) ([]string, error) {
	return []string{"Law", "Science"}, f.err
}

func (f fakeCatalogSrv) Status(context.Context) (*service.CatalogStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &service.CatalogStatus{
		Source:   "postgres",
		LoadedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Courses:  12,
		Issues:   []catalog.Issue{{Course: "BCom", Field: "universityOverrides", Message: `unknown university "mit"`}},
	}, nil
}

func TestCatalogHandlerUniversities(t *testing.T) {
	h := NewCatalogHandler(fakeCatalogSrv{})
	c, rec := newTestContext(http.MethodGet, "/universities", nil)
	h.Universities(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data["universities"], 2)
	assert.Equal(t, []interface{}{"Law", "Science"}, envelope.Data["faculties"])
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestCatalogHandlerUnavailable(t *testing.T) {
	h := NewCatalogHandler(fakeCatalogSrv{err: appErrors.ErrCatalogUnavailable})
	c, rec := newTestContext(http.MethodGet, "/universities", nil)
	h.Universities(c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCatalogHandlerIssues(t *testing.T) {
	h := NewCatalogHandler(fakeCatalogSrv{})
	c, rec := newTestContext(http.MethodGet, "/catalog/issues", nil)
	h.Issues(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "postgres", envelope.Data["source"])
	issues, ok := envelope.Data["issues"].([]interface{})
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, `unknown university "mit"`, issues[0].(map[string]interface{})["message"])
}
