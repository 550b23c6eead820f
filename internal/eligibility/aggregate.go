package eligibility

import (
	"math"
	"strings"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// DefaultCompetitiveAPS is the requirement from which a programme counts as
// highly competitive.
const DefaultCompetitiveAPS = 32

// Catalog is the read-only course and university data the aggregation layer
// evaluates. *catalog.Catalog satisfies it.
type Catalog interface {
	Courses() []models.Course
	UniversityIDs() []models.UniversityID
	Universities() []models.University
	University(ref string) (models.University, bool)
	FindCourses(name string) []models.Course
}

// Options are the caller controlled knobs of an evaluation. Tolerance is the one
// place the almost-eligible window is decided.
type Options struct {
	Tolerance          int
	CompetitiveAPS     int
	MaxRecommendations int
	Sort               models.SortKey
	Filter             models.ProgramFilter
}

func (o Options) competitiveAPS() int {
	if o.CompetitiveAPS <= 0 {
		return DefaultCompetitiveAPS
	}
	return o.CompetitiveAPS
}

// evaluator holds the per call values shared by every course of one evaluation.
type evaluator struct {
	known    []models.UniversityID
	userAPS  int
	subjects []models.StudentSubject
	opts     Options
}

func newEvaluator(cat Catalog, profile *models.StudentProfile, opts Options) evaluator {
	e := evaluator{known: cat.UniversityIDs(), userAPS: ProfileAPS(profile), opts: opts}
	if profile != nil {
		e.subjects = profile.Subjects
	}
	return e
}

func (e evaluator) verdict(course models.Course, id models.UniversityID) models.Verdict {
	v := Classify(Input{
		RequiredAPS:        ResolveRequiredAPS(course, id),
		UserAPS:            float64(e.userAPS),
		Subjects:           e.subjects,
		CourseSubjects:     course.Subjects,
		Tolerance:          e.opts.Tolerance,
		MaxRecommendations: e.opts.MaxRecommendations,
	})
	v.Course = course.Name
	v.University = id
	return v
}

// EvaluateUniversity builds the programme report for one university. The boolean
// is false when ref names no known university. A nil profile yields unknown
// verdicts and zeroed rates.
func EvaluateUniversity(cat Catalog, ref string, profile *models.StudentProfile, opts Options) (models.UniversityReport, bool) {
	university, ok := cat.University(ref)
	if !ok {
		return models.UniversityReport{}, false
	}
	e := newEvaluator(cat, profile, opts)
	competitive := opts.competitiveAPS()

	courses := cat.Courses()
	programs := make([]models.Program, 0, len(courses))
	requirementSum := 0
	for _, course := range courses {
		required := ResolveRequiredAPS(course, university.ID)
		requirementSum += required
		if !Offers(course.Rule, e.known, university.ID) {
			continue
		}
		programs = append(programs, models.Program{
			Name:          course.Name,
			Faculty:       course.Faculty,
			DurationLabel: course.DurationLabel,
			RequiredAPS:   required,
			Competitive:   required >= competitive,
			Subjects:      course.Subjects,
			Verdict:       e.verdict(course, university.ID),
		})
	}

	stats := Summarize(programs, e.userAPS > 0)
	if len(courses) > 0 {
		stats.AverageRequiredAPS = round1(float64(requirementSum) / float64(len(courses)))
	}

	listed := FilterPrograms(programs, opts.Filter, competitive)
	SortPrograms(listed, opts.Sort)
	stats.MatchingPrograms = len(listed)

	return models.UniversityReport{
		University: university,
		UserAPS:    e.userAPS,
		Programs:   listed,
		Stats:      stats,
	}, true
}

// Summarize counts verdict categories over programs. Rates are zero without a
// profile or without programmes.
func Summarize(programs []models.Program, hasProfile bool) models.UniversityStats {
	stats := models.UniversityStats{TotalPrograms: len(programs), HasProfile: hasProfile}
	for _, p := range programs {
		switch p.Verdict.Category {
		case models.CategoryEligible:
			stats.EligibleCount++
		case models.CategoryAlmostEligible:
			stats.AlmostEligibleCount++
		}
		if p.Competitive {
			stats.CompetitivePrograms++
		}
	}
	if hasProfile && stats.TotalPrograms > 0 {
		stats.EligibilityRate = round1(float64(stats.EligibleCount) / float64(stats.TotalPrograms) * 100)
	}
	return stats
}

// EvaluateAll counts, for every university in registry order, how many offered
// programmes the student is eligible or almost eligible for.
func EvaluateAll(cat Catalog, profile *models.StudentProfile, opts Options) models.MatchSummary {
	e := newEvaluator(cat, profile, opts)
	courses := cat.Courses()
	summary := models.MatchSummary{UserAPS: e.userAPS}

	for _, university := range cat.Universities() {
		match := models.UniversityMatch{University: university}
		for _, course := range courses {
			if !Offers(course.Rule, e.known, university.ID) {
				continue
			}
			match.Offered++
			switch e.verdict(course, university.ID).Category {
			case models.CategoryEligible:
				match.Eligible++
			case models.CategoryAlmostEligible:
				match.AlmostEligible++
			}
		}
		summary.TotalEligible += match.Eligible
		summary.TotalAlmostEligible += match.AlmostEligible
		if match.Eligible > 0 {
			summary.UniversitiesWithMatches++
		}
		summary.Matches = append(summary.Matches, match)
	}
	return summary
}

// EvaluateCourse returns verdicts for every university offering the named course.
// One report is produced per catalog entry with that name.
func EvaluateCourse(cat Catalog, name string, profile *models.StudentProfile, opts Options) []models.CourseReport {
	e := newEvaluator(cat, profile, opts)
	courses := cat.FindCourses(strings.TrimSpace(name))
	reports := make([]models.CourseReport, 0, len(courses))
	for _, course := range courses {
		offered := ResolveUniversities(course.Rule, e.known)
		report := models.CourseReport{
			Name:         course.Name,
			Faculty:      course.Faculty,
			DefaultAPS:   course.DefaultAPS,
			OfferedCount: len(offered),
			Verdicts:     make([]models.Verdict, 0, len(offered)),
		}
		for _, id := range offered {
			report.Verdicts = append(report.Verdicts, e.verdict(course, id))
		}
		reports = append(reports, report)
	}
	return reports
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
