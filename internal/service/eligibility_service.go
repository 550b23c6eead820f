package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-eligibility-api/internal/catalog"
	"github.com/noah-isme/aps-eligibility-api/internal/dto"
	"github.com/noah-isme/aps-eligibility-api/internal/eligibility"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
)

const eligibilityCachePrefix = "eligibility:"

type catalogProvider interface {
	Catalog() *catalog.Catalog
}

// EligibilityConfig holds the service wide evaluation defaults.
type EligibilityConfig struct {
	Tolerance          int
	CompetitiveAPS     int
	MaxRecommendations int
	CacheTTL           time.Duration
}

// EligibilityServiceParams groups the dependencies of EligibilityService.
type EligibilityServiceParams struct {
	Catalog   catalogProvider
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    EligibilityConfig
}

// EligibilityService validates student input, runs the eligibility core against
// the loaded catalog and memoizes the results.
type EligibilityService struct {
	catalog   catalogProvider
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       EligibilityConfig
}

// NewEligibilityService constructs the service.
func NewEligibilityService(params EligibilityServiceParams) *EligibilityService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := params.Config
	if cfg.Tolerance < 0 {
		cfg.Tolerance = 0
	}
	if cfg.CompetitiveAPS <= 0 {
		cfg.CompetitiveAPS = eligibility.DefaultCompetitiveAPS
	}
	if cfg.MaxRecommendations <= 0 {
		cfg.MaxRecommendations = eligibility.DefaultMaxRecommendations
	}
	return &EligibilityService{
		catalog:   params.Catalog,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *EligibilityService) current() (*catalog.Catalog, error) {
	if s.catalog == nil {
		return nil, appErrors.ErrCatalogUnavailable
	}
	cat := s.catalog.Catalog()
	if cat == nil {
		return nil, appErrors.ErrCatalogUnavailable
	}
	return cat, nil
}

func (s *EligibilityService) validate(req any) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload")
	}
	return nil
}

func (s *EligibilityService) tolerance(override *int) int {
	if override != nil && *override >= 0 {
		return *override
	}
	return s.cfg.Tolerance
}

func (s *EligibilityService) options(q dto.ProgramQuery) eligibility.Options {
	return eligibility.Options{
		Tolerance:          s.tolerance(q.Tolerance),
		CompetitiveAPS:     s.cfg.CompetitiveAPS,
		MaxRecommendations: s.cfg.MaxRecommendations,
		Sort:               eligibility.ParseSortKey(q.Sort),
		Filter: models.ProgramFilter{
			Faculty:         strings.TrimSpace(q.Faculty),
			EligibleOnly:    q.EligibleOnly,
			CompetitiveOnly: q.Competitive,
		},
	}
}

// UniversityPrograms evaluates every programme a university offers against the
// profile in req. The boolean reports a cache hit.
func (s *EligibilityService) UniversityPrograms(ctx context.Context, ref string, req dto.UniversityEligibilityRequest) (*dto.UniversityEligibilityResponse, *models.Pagination, bool, error) {
	if err := s.validate(req); err != nil {
		return nil, nil, false, err
	}
	cat, err := s.current()
	if err != nil {
		return nil, nil, false, err
	}
	university, ok := cat.University(ref)
	if !ok {
		return nil, nil, false, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("university %q not found", ref))
	}

	opts := s.options(req.ProgramQuery)
	key := cacheKey("university:"+university.ID.String(), req.Profile, opts)

	var report models.UniversityReport
	hit, err := s.cache.Get(ctx, key, &report)
	if err != nil {
		hit = false
	}
	if !hit {
		start := time.Now()
		report, _ = eligibility.EvaluateUniversity(cat, university.ID.String(), req.Profile, opts)
		s.metrics.ObserveEvaluation("university", time.Since(start))
		for _, p := range report.Programs {
			s.metrics.RecordVerdicts(p.Verdict)
		}
		_ = s.cache.Set(ctx, key, report, s.cfg.CacheTTL)
	}

	pagination := paginate(&report, req.Page, req.PageSize)
	return &dto.UniversityEligibilityResponse{UniversityReport: report, Tolerance: opts.Tolerance}, pagination, hit, nil
}

// ProgramsByAPS is the query string variant of UniversityPrograms. Only a numeric
// APS is known, so verdicts carry APS-only confidence.
func (s *EligibilityService) ProgramsByAPS(ctx context.Context, ref string, q dto.ProgramListQuery) (*dto.UniversityEligibilityResponse, *models.Pagination, bool, error) {
	req := dto.UniversityEligibilityRequest{ProgramQuery: q.ProgramQuery}
	if q.APS != nil {
		req.Profile = &models.StudentProfile{TotalAPS: *q.APS}
	}
	return s.UniversityPrograms(ctx, ref, req)
}

// Summary counts eligible programmes at every university.
func (s *EligibilityService) Summary(ctx context.Context, req dto.MatchSummaryRequest) (*models.MatchSummary, bool, error) {
	if err := s.validate(req); err != nil {
		return nil, false, err
	}
	cat, err := s.current()
	if err != nil {
		return nil, false, err
	}
	opts := eligibility.Options{
		Tolerance:          s.tolerance(req.Tolerance),
		CompetitiveAPS:     s.cfg.CompetitiveAPS,
		MaxRecommendations: s.cfg.MaxRecommendations,
	}
	key := cacheKey("summary", &req.Profile, opts)

	var summary models.MatchSummary
	hit, err := s.cache.Get(ctx, key, &summary)
	if err != nil {
		hit = false
	}
	if !hit {
		start := time.Now()
		summary = eligibility.EvaluateAll(cat, &req.Profile, opts)
		s.metrics.ObserveEvaluation("summary", time.Since(start))
		_ = s.cache.Set(ctx, key, summary, s.cfg.CacheTTL)
	}
	return &summary, hit, nil
}

// Course returns verdicts for the named course at every university offering it.
func (s *EligibilityService) Course(_ context.Context, name string, aps *float64) (*dto.CourseEligibilityResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course name is required")
	}
	if aps != nil && *aps > 60 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "aps must not exceed 60")
	}
	cat, err := s.current()
	if err != nil {
		return nil, err
	}

	var profile *models.StudentProfile
	if aps != nil {
		profile = &models.StudentProfile{TotalAPS: *aps}
	}
	opts := eligibility.Options{Tolerance: s.cfg.Tolerance, MaxRecommendations: s.cfg.MaxRecommendations}

	start := time.Now()
	reports := eligibility.EvaluateCourse(cat, name, profile, opts)
	s.metrics.ObserveEvaluation("course", time.Since(start))
	if len(reports) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("course %q not found", name))
	}
	for _, r := range reports {
		s.metrics.RecordVerdicts(r.Verdicts...)
	}
	return &dto.CourseEligibilityResponse{
		Query:   name,
		UserAPS: eligibility.ProfileAPS(profile),
		Courses: reports,
	}, nil
}

// CalculateAPS scores a subject list the way admissions offices do.
func (s *EligibilityService) CalculateAPS(_ context.Context, req dto.APSCalculationRequest) (*dto.APSCalculationResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	scores, total := eligibility.ScoreSubjects(req.Subjects)
	resp := &dto.APSCalculationResponse{
		TotalAPS: total,
		Subjects: make([]dto.SubjectPoints, len(scores)),
		MaxAPS:   eligibility.MaxCountedSubjects * eligibility.MaxLevel,
	}
	for i, score := range scores {
		resp.Subjects[i] = dto.SubjectPoints{
			Name:    score.Subject.Name,
			Marks:   score.Subject.Marks,
			Level:   score.Level,
			Counted: score.Counted,
		}
	}
	return resp, nil
}

// cacheKey derives a stable key from the evaluation inputs. The profile is hashed
// so subject names never appear in Redis keys.
func cacheKey(scope string, profile *models.StudentProfile, opts eligibility.Options) string {
	payload, err := json.Marshal(struct {
		Profile *models.StudentProfile `json:"p"`
		Options eligibility.Options    `json:"o"`
	}{profile, opts})
	if err != nil {
		return eligibilityCachePrefix + scope + ":uncacheable"
	}
	sum := sha256.Sum256(payload)
	return eligibilityCachePrefix + scope + ":" + hex.EncodeToString(sum[:12])
}

// paginate trims report.Programs to the requested page. A zero page size keeps
// the full listing and returns no pagination.
func paginate(report *models.UniversityReport, page, pageSize int) *models.Pagination {
	if pageSize <= 0 {
		return nil
	}
	if page <= 0 {
		page = 1
	}
	total := len(report.Programs)
	from := (page - 1) * pageSize
	if from > total {
		from = total
	}
	to := from + pageSize
	if to > total {
		to = total
	}
	report.Programs = report.Programs[from:to]
	return &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}
}
