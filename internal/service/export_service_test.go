package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-eligibility-api/internal/dto"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
	"github.com/noah-isme/aps-eligibility-api/pkg/export"
)

type failingRenderer struct{}

func (failingRenderer) Render(export.Dataset) ([]byte, error) {
	return nil, assert.AnError
}

func newExportServiceForTest(t *testing.T, enabled bool) *ExportService {
	t.Helper()
	svc := NewExportService(newEligibilityServiceForTest(t, nil), nil, nil, zap.NewNop(), enabled)
	svc.now = func() time.Time { return time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportServiceCSV(t *testing.T) {
	svc := newExportServiceForTest(t, true)

	file, err := svc.UniversityReport(context.Background(), "up", dto.ExportQuery{
		ProgramListQuery: dto.ProgramListQuery{APS: apsPtr(28), ProgramQuery: dto.ProgramQuery{PageSize: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "up_programs_20260115.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	body := string(file.Payload)
	assert.Contains(t, body, "Programme,Faculty,Duration,Required APS,Status")
	assert.Contains(t, body, "BSc Computer Science,Science,3 years,25,Eligible,0,75%")
	assert.Contains(t, body, "BCom Accounting")
}

func TestExportServicePDF(t *testing.T) {
	svc := newExportServiceForTest(t, true)

	file, err := svc.UniversityReport(context.Background(), "UCT", dto.ExportQuery{Format: "PDF"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "uct_programs_20260115.pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))
}

func TestExportServiceErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newExportServiceForTest(t, false).UniversityReport(ctx, "up", dto.ExportQuery{})
	assert.True(t, errors.Is(err, appErrors.ErrFeatureDisabled))

	svc := newExportServiceForTest(t, true)
	_, err = svc.UniversityReport(ctx, "up", dto.ExportQuery{Format: "xlsx"})
	assert.True(t, errors.Is(err, appErrors.ErrUnsupportedFormat))

	_, err = svc.UniversityReport(ctx, "oxford", dto.ExportQuery{})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	svc.csv = failingRenderer{}
	_, err = svc.UniversityReport(ctx, "up", dto.ExportQuery{})
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
