package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/aps-eligibility-api/internal/catalog"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// CatalogRepository reads the course catalog from Postgres. The schema lives in
// migrations/000001_catalog.up.sql.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs the repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type courseRow struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Faculty       string         `db:"faculty"`
	DurationYears int            `db:"duration_years"`
	DurationLabel string         `db:"duration_label"`
	DefaultAPS    int            `db:"default_aps"`
	RuleKind      string         `db:"rule_kind"`
	Description   string         `db:"description"`
	Careers       pq.StringArray `db:"careers"`
}

type overrideRow struct {
	CourseID      int64  `db:"course_id"`
	UniversityRef string `db:"university_ref"`
	APS           int    `db:"aps"`
}

type ruleRow struct {
	CourseID      int64  `db:"course_id"`
	UniversityRef string `db:"university_ref"`
}

type subjectRow struct {
	CourseID int64 `db:"course_id"`
	models.SubjectRequirement
}

// ListUniversities returns the registry rows in display order.
func (r *CatalogRepository) ListUniversities(ctx context.Context) ([]models.University, error) {
	const query = `SELECT id, abbreviation, name, province, type FROM universities ORDER BY sort_order ASC, id ASC`
	var universities []models.University
	if err := r.db.SelectContext(ctx, &universities, query); err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	return universities, nil
}

// ListCourseDefinitions returns every course with its overrides, assignment rule
// references and subject requirements. University references are returned as
// stored; the catalog resolves them against the registry.
func (r *CatalogRepository) ListCourseDefinitions(ctx context.Context) ([]catalog.CourseDefinition, error) {
	const coursesQuery = `SELECT id, name, faculty, duration_years, duration_label, default_aps, rule_kind, description, careers
FROM courses ORDER BY sort_order ASC, id ASC`
	var courses []courseRow
	if err := r.db.SelectContext(ctx, &courses, coursesQuery); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if len(courses) == 0 {
		return nil, nil
	}

	const overridesQuery = `SELECT course_id, university_ref, aps FROM course_aps_overrides ORDER BY course_id ASC, university_ref ASC`
	var overrides []overrideRow
	if err := r.db.SelectContext(ctx, &overrides, overridesQuery); err != nil {
		return nil, fmt.Errorf("list course overrides: %w", err)
	}

	const rulesQuery = `SELECT course_id, university_ref FROM course_rule_universities ORDER BY course_id ASC, position ASC`
	var rules []ruleRow
	if err := r.db.SelectContext(ctx, &rules, rulesQuery); err != nil {
		return nil, fmt.Errorf("list course rules: %w", err)
	}

	const subjectsQuery = `SELECT course_id, name, min_level, required FROM course_subjects ORDER BY course_id ASC, position ASC`
	var subjects []subjectRow
	if err := r.db.SelectContext(ctx, &subjects, subjectsQuery); err != nil {
		return nil, fmt.Errorf("list course subjects: %w", err)
	}

	defs := make([]catalog.CourseDefinition, len(courses))
	index := make(map[int64]int, len(courses))
	for i, row := range courses {
		index[row.ID] = i
		defs[i] = catalog.CourseDefinition{
			Name:          row.Name,
			Faculty:       row.Faculty,
			DurationYears: row.DurationYears,
			DurationLabel: row.DurationLabel,
			DefaultAPS:    row.DefaultAPS,
			Rule:          catalog.RuleDefinition{Kind: models.RuleKind(row.RuleKind)},
			Description:   row.Description,
			Careers:       []string(row.Careers),
		}
	}
	for _, o := range overrides {
		i, ok := index[o.CourseID]
		if !ok {
			continue
		}
		if defs[i].Overrides == nil {
			defs[i].Overrides = make(map[string]int)
		}
		defs[i].Overrides[o.UniversityRef] = o.APS
	}
	for _, rule := range rules {
		if i, ok := index[rule.CourseID]; ok {
			defs[i].Rule.Universities = append(defs[i].Rule.Universities, rule.UniversityRef)
		}
	}
	for _, s := range subjects {
		if i, ok := index[s.CourseID]; ok {
			defs[i].Subjects = append(defs[i].Subjects, s.SubjectRequirement)
		}
	}
	return defs, nil
}
