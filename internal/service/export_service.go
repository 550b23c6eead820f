package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/aps-eligibility-api/internal/dto"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
	"github.com/noah-isme/aps-eligibility-api/pkg/export"
)

// ExportFormat enumerates the supported document formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type programEvaluator interface {
	ProgramsByAPS(ctx context.Context, ref string, q dto.ProgramListQuery) (*dto.UniversityEligibilityResponse, *models.Pagination, bool, error)
}

// ExportFile is a rendered document ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders a university programme report as CSV or PDF.
type ExportService struct {
	programs programEvaluator
	csv      renderer
	pdf      renderer
	logger   *zap.Logger
	enabled  bool
	now      func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the
// bundled exporters.
func NewExportService(programs programEvaluator, csv, pdf renderer, logger *zap.Logger, enabled bool) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{programs: programs, csv: csv, pdf: pdf, logger: logger, enabled: enabled, now: time.Now}
}

// UniversityReport evaluates the university's programmes for the queried APS and
// renders the listing.
func (s *ExportService) UniversityReport(ctx context.Context, ref string, q dto.ExportQuery) (*ExportFile, error) {
	if !s.enabled {
		return nil, appErrors.ErrFeatureDisabled
	}
	format := ExportFormat(strings.ToLower(strings.TrimSpace(q.Format)))
	if format == "" {
		format = ExportFormatCSV
	}
	var r renderer
	contentType := ""
	switch format {
	case ExportFormatCSV:
		r, contentType = s.csv, "text/csv"
	case ExportFormatPDF:
		r, contentType = s.pdf, "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", q.Format))
	}

	// Exports always carry the full listing.
	list := q.ProgramListQuery
	list.Page, list.PageSize = 0, 0
	report, _, _, err := s.programs.ProgramsByAPS(ctx, ref, list)
	if err != nil {
		return nil, err
	}

	payload, err := r.Render(buildReportDataset(report))
	if err != nil {
		s.logger.Error("render export", zap.String("university", ref), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render export")
	}
	filename := fmt.Sprintf("%s_programs_%s.%s", report.University.ID, s.now().UTC().Format("20060102"), format)
	return &ExportFile{Filename: filename, ContentType: contentType, Payload: payload}, nil
}

var reportHeaders = []string{"Programme", "Faculty", "Duration", "Required APS", "Status", "APS Gap", "Confidence", "Recommendations"}

func buildReportDataset(report *dto.UniversityEligibilityResponse) export.Dataset {
	university := report.University
	notes := []string{
		fmt.Sprintf("%s (%s), %s", university.Name, university.Abbreviation, university.Province),
		fmt.Sprintf("Programmes: %d, eligible: %d, almost eligible: %d", report.Stats.TotalPrograms, report.Stats.EligibleCount, report.Stats.AlmostEligibleCount),
	}
	if report.Stats.HasProfile {
		notes = append(notes, fmt.Sprintf("Your APS: %d, eligibility rate: %.1f%%", report.UserAPS, report.Stats.EligibilityRate))
	} else {
		notes = append(notes, "No APS supplied; requirements only")
	}

	rows := make([]map[string]string, 0, len(report.Programs))
	for _, p := range report.Programs {
		rows = append(rows, map[string]string{
			"Programme":       p.Name,
			"Faculty":         p.Faculty,
			"Duration":        p.DurationLabel,
			"Required APS":    strconv.Itoa(p.RequiredAPS),
			"Status":          statusLabel(p.Verdict.Category),
			"APS Gap":         strconv.Itoa(p.Verdict.APSGap),
			"Confidence":      strconv.Itoa(p.Verdict.Confidence) + "%",
			"Recommendations": strings.Join(p.Verdict.Recommendations, "; "),
		})
	}
	return export.Dataset{
		Title:   university.Name + " programme eligibility",
		Notes:   notes,
		Headers: reportHeaders,
		Rows:    rows,
	}
}

func statusLabel(c models.Category) string {
	switch c {
	case models.CategoryEligible:
		return "Eligible"
	case models.CategoryAlmostEligible:
		return "Almost eligible"
	case models.CategoryNotEligible:
		return "Not eligible"
	default:
		return "Enter APS"
	}
}
