package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aps-eligibility-api/internal/dto"
	"github.com/noah-isme/aps-eligibility-api/internal/service"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
)

type fakeExportSrv struct {
	err   error
	query dto.ExportQuery
}

func (f *fakeExportSrv) UniversityReport(_ context.Context, ref string, q dto.ExportQuery) (*service.ExportFile, error) {
	f.query = q
	if f.err != nil {
		return nil, f.err
	}
	return &service.ExportFile{Filename: ref + "_programs.csv", ContentType: "text/csv", Payload: []byte("Programme\n")}, nil
}

func TestExportHandlerStreamsFile(t *testing.T) {
	srv := &fakeExportSrv{}
	h := NewExportHandler(srv)
	c, rec := newTestContext(http.MethodGet, "/universities/uct/programs/export?format=csv&aps=30&faculty=Law", nil)
	c.Params = gin.Params{{Key: "id", Value: "uct"}}
	h.Programs(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="uct_programs.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Programme\n", rec.Body.String())
	assert.Equal(t, "csv", srv.query.Format)
	require.NotNil(t, srv.query.APS)
	assert.Equal(t, 30.0, *srv.query.APS)
	assert.Equal(t, "Law", srv.query.Faculty)
}

func TestExportHandlerDisabled(t *testing.T) {
	h := NewExportHandler(&fakeExportSrv{err: appErrors.ErrFeatureDisabled})
	c, rec := newTestContext(http.MethodGet, "/universities/uct/programs/export", nil)
	c.Params = gin.Params{{Key: "id", Value: "uct"}}
	h.Programs(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
