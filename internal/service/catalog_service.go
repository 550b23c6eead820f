package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/aps-eligibility-api/internal/catalog"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
)

// CatalogSource supplies raw catalog data. repository.CatalogRepository reads it
// from Postgres; StaticCatalogSource serves the bundled data.
type CatalogSource interface {
	ListUniversities(ctx context.Context) ([]models.University, error)
	ListCourseDefinitions(ctx context.Context) ([]catalog.CourseDefinition, error)
}

// StaticCatalogSource serves the catalog compiled into the binary.
type StaticCatalogSource struct{}

// ListUniversities implements CatalogSource.
func (StaticCatalogSource) ListUniversities(context.Context) ([]models.University, error) {
	return catalog.DefaultUniversities(), nil
}

// ListCourseDefinitions implements CatalogSource.
func (StaticCatalogSource) ListCourseDefinitions(context.Context) ([]catalog.CourseDefinition, error) {
	return catalog.DefaultCourses(), nil
}

// CatalogService owns the loaded catalog. The catalog itself is immutable; Load
// swaps in a freshly built one and drops memoized results.
type CatalogService struct {
	source     CatalogSource
	sourceName string
	cache      *CacheService
	metrics    *MetricsService
	logger     *zap.Logger

	mu       sync.RWMutex
	catalog  *catalog.Catalog
	issues   []catalog.Issue
	loadedAt time.Time
}

// CatalogServiceParams groups the dependencies of CatalogService.
type CatalogServiceParams struct {
	Source     CatalogSource
	SourceName string
	Cache      *CacheService
	Metrics    *MetricsService
	Logger     *zap.Logger
}

// NewCatalogService constructs the service. A nil source falls back to the static catalog.
func NewCatalogService(params CatalogServiceParams) *CatalogService {
	source := params.Source
	name := params.SourceName
	if source == nil {
		source = StaticCatalogSource{}
		name = "static"
	}
	if name == "" {
		name = "custom"
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		source:     source,
		sourceName: name,
		cache:      params.Cache,
		metrics:    params.Metrics,
		logger:     logger,
	}
}

// Load reads the source, builds the catalog and records authoring issues. Unknown
// university references are logged and dropped rather than failing the load.
func (s *CatalogService) Load(ctx context.Context) error {
	start := time.Now()
	universities, err := s.source.ListUniversities(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "load universities")
	}
	if len(universities) == 0 {
		return appErrors.Clone(appErrors.ErrCatalogUnavailable, fmt.Sprintf("%s catalog has no universities", s.sourceName))
	}
	defs, err := s.source.ListCourseDefinitions(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "load courses")
	}

	registry := catalog.NewRegistry(universities)
	issues := catalog.Validate(registry, defs)
	built := catalog.New(registry, defs)

	for _, issue := range issues {
		s.logger.Warn("catalog issue",
			zap.String("course", issue.Course),
			zap.String("faculty", issue.Faculty),
			zap.String("field", issue.Field),
			zap.String("message", issue.Message),
		)
	}

	s.mu.Lock()
	previous := s.catalog
	s.catalog = built
	s.issues = issues
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	s.metrics.ObserveCatalogLoad(s.sourceName, registry.Len(), built.Len(), len(issues), time.Since(start))
	s.logger.Info("catalog loaded",
		zap.String("source", s.sourceName),
		zap.Int("universities", registry.Len()),
		zap.Int("courses", built.Len()),
		zap.Int("issues", len(issues)),
		zap.Bool("reload", previous != nil),
	)

	if err := s.cache.Invalidate(ctx, eligibilityCachePrefix+"*"); err != nil {
		s.logger.Warn("drop memoized eligibility", zap.Error(err))
	}
	return nil
}

// Catalog returns the current catalog or nil before the first Load.
func (s *CatalogService) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Ready reports whether a catalog has been loaded.
func (s *CatalogService) Ready() bool {
	return s.Catalog() != nil
}

func (s *CatalogService) current() (*catalog.Catalog, error) {
	cat := s.Catalog()
	if cat == nil {
		return nil, appErrors.ErrCatalogUnavailable
	}
	return cat, nil
}

// Universities lists the registry in display order.
func (s *CatalogService) Universities(context.Context) ([]models.University, error) {
	cat, err := s.current()
	if err != nil {
		return nil, err
	}
	return cat.Universities(), nil
}

// Faculties lists the distinct faculties of the catalog.
func (s *CatalogService) Faculties(context.Context) ([]string, error) {
	cat, err := s.current()
	if err != nil {
		return nil, err
	}
	return cat.Faculties(), nil
}

// University resolves an identifier or abbreviation.
func (s *CatalogService) University(_ context.Context, ref string) (*models.University, error) {
	cat, err := s.current()
	if err != nil {
		return nil, err
	}
	university, ok := cat.University(ref)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("university %q not found", ref))
	}
	return &university, nil
}

// CatalogStatus describes the loaded catalog.
type CatalogStatus struct {
	Source   string
	LoadedAt time.Time
	Courses  int
	Issues   []catalog.Issue
}

// Status returns the source, load time and authoring issues of the current catalog.
func (s *CatalogService) Status(context.Context) (*CatalogStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, appErrors.ErrCatalogUnavailable
	}
	issues := make([]catalog.Issue, len(s.issues))
	copy(issues, s.issues)
	return &CatalogStatus{
		Source:   s.sourceName,
		LoadedAt: s.loadedAt,
		Courses:  s.catalog.Len(),
		Issues:   issues,
	}, nil
}
