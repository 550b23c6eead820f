package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-eligibility-api/internal/catalog"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
)

type fakeCatalogSource struct {
	universities []models.University
	courses      []catalog.CourseDefinition
	err          error
}

func (f fakeCatalogSource) ListUniversities(context.Context) ([]models.University, error) {
	return f.universities, f.err
}

func (f fakeCatalogSource) ListCourseDefinitions(context.Context) ([]catalog.CourseDefinition, error) {
	return f.courses, nil
}

func fixtureSource() fakeCatalogSource {
	return fakeCatalogSource{
		universities: []models.University{
			{ID: "uct", Abbreviation: "UCT", Name: "University of Cape Town", Province: "Western Cape"},
			{ID: "up", Abbreviation: "UP", Name: "University of Pretoria", Province: "Gauteng"},
			{ID: "tut", Abbreviation: "TUT", Name: "Tshwane University of Technology", Province: "Gauteng"},
		},
		courses: []catalog.CourseDefinition{
			{
				Name: "BSc Computer Science", Faculty: "Science", DurationYears: 3, DefaultAPS: 30,
				Overrides: map[string]int{"UP": 25},
				Rule:      catalog.RuleDefinition{Kind: models.RuleExclude, Universities: []string{"tut"}},
				Subjects:  []models.SubjectRequirement{{Name: "Mathematics", MinLevel: 5, Required: true}},
			},
			{
				Name: "Diploma in IT", Faculty: "ICT", DurationYears: 3, DefaultAPS: 22,
				Rule: catalog.RuleDefinition{Kind: models.RuleIncludeOnly, Universities: []string{"TUT"}},
			},
			{
				Name: "BCom Accounting", Faculty: "Commerce", DurationYears: 3, DefaultAPS: 34,
				Overrides: map[string]int{"harvard": 40},
				Rule:      catalog.RuleDefinition{Kind: models.RuleAll},
			},
		},
	}
}

func loadedCatalogService(t *testing.T, cache *CacheService) *CatalogService {
	t.Helper()
	svc := NewCatalogService(CatalogServiceParams{Source: fixtureSource(), SourceName: "fixture", Cache: cache, Logger: zap.NewNop()})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestCatalogServiceLoadsStaticByDefault(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewCatalogService(CatalogServiceParams{Metrics: metrics})
	assert.False(t, svc.Ready())

	require.NoError(t, svc.Load(context.Background()))
	assert.True(t, svc.Ready())

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static", status.Source)
	assert.Empty(t, status.Issues)
	assert.Equal(t, catalog.Default().Len(), status.Courses)
	assert.WithinDuration(t, time.Now(), status.LoadedAt, time.Minute)
}

func TestCatalogServiceRecordsIssuesAndInvalidatesCache(t *testing.T) {
	repo := &stubCacheRepo{store: map[string][]byte{"eligibility:summary:x": []byte("{}")}}
	svc := loadedCatalogService(t, NewCacheService(repo, nil, time.Minute, nil, true))

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, status.Issues, 1)
	assert.Equal(t, "BCom Accounting", status.Issues[0].Course)
	assert.Equal(t, []string{"eligibility:*"}, repo.invalidated)
	assert.Empty(t, repo.store)
}

func TestCatalogServiceUniversityLookup(t *testing.T) {
	svc := loadedCatalogService(t, nil)
	ctx := context.Background()

	uni, err := svc.University(ctx, "Up")
	require.NoError(t, err)
	assert.Equal(t, models.UniversityID("up"), uni.ID)

	_, err = svc.University(ctx, "oxford")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	universities, err := svc.Universities(ctx)
	require.NoError(t, err)
	assert.Len(t, universities, 3)

	faculties, err := svc.Faculties(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Commerce", "ICT", "Science"}, faculties)
}

func TestCatalogServiceBeforeLoad(t *testing.T) {
	svc := NewCatalogService(CatalogServiceParams{Source: fixtureSource()})
	_, err := svc.Universities(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrCatalogUnavailable))
	_, err = svc.Status(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrCatalogUnavailable))
}

func TestCatalogServiceLoadFailures(t *testing.T) {
	failing := NewCatalogService(CatalogServiceParams{Source: fakeCatalogSource{err: assert.AnError}, SourceName: "postgres"})
	err := failing.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrCatalogUnavailable))
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, failing.Ready())

	empty := NewCatalogService(CatalogServiceParams{Source: fakeCatalogSource{}, SourceName: "postgres"})
	err = empty.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres catalog has no universities")
}
