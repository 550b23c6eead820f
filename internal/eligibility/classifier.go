package eligibility

import (
	"fmt"
	"strings"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

const (
	// FullConfidence is reported when a subject list backs the verdict.
	FullConfidence = 100
	// APSOnlyPenalty is subtracted when only a numeric APS was available.
	APSOnlyPenalty = 25
	// DefaultMaxRecommendations caps the advice attached to a verdict.
	DefaultMaxRecommendations = 3
)

// Input carries everything Classify needs for one course at one university.
type Input struct {
	RequiredAPS int
	// UserAPS may be NaN or negative while a form is being filled in; it is
	// treated as zero.
	UserAPS float64
	// Subjects is nil when the caller only has an APS number. The subject gate is
	// skipped and confidence is reduced.
	Subjects       []models.StudentSubject
	CourseSubjects []models.SubjectRequirement
	// Tolerance is the APS shortfall still classified as almost eligible.
	Tolerance          int
	MaxRecommendations int
}

// Classify produces the verdict for one course at one university. Course and
// University on the result are left for the caller to fill in. It never fails.
func Classify(in Input) models.Verdict {
	required := in.RequiredAPS
	if required < 0 {
		required = 0
	}
	user := NormalizeAPS(in.UserAPS)
	tolerance := in.Tolerance
	if tolerance < 0 {
		tolerance = 0
	}
	limit := in.MaxRecommendations
	if limit <= 0 {
		limit = DefaultMaxRecommendations
	}

	gap := required - user
	if gap < 0 {
		gap = 0
	}

	requiredSubjects := requiredOnly(in.CourseSubjects)
	subjectsSupplied := in.Subjects != nil
	var missing []models.SubjectRequirement
	if subjectsSupplied && len(requiredSubjects) > 0 {
		missing = missingSubjects(requiredSubjects, in.Subjects)
	}

	category := categorize(user, required, gap, tolerance, len(missing) == 0)

	verdict := models.Verdict{
		IsEligible:  category == models.CategoryEligible,
		Category:    category,
		APSGap:      gap,
		Confidence:  Confidence(category, subjectsSupplied),
		RequiredAPS: required,
		UserAPS:     user,
	}
	for _, m := range missing {
		verdict.MissingSubjects = append(verdict.MissingSubjects, m.Name)
	}
	verdict.Recommendations = recommend(category, required, gap, missing, !subjectsSupplied && len(requiredSubjects) > 0, limit)
	return verdict
}

func categorize(user, required, gap, tolerance int, subjectsMet bool) models.Category {
	if user == 0 {
		return models.CategoryUnknown
	}
	meetsAPS := user >= required
	switch {
	case meetsAPS && subjectsMet:
		return models.CategoryEligible
	case meetsAPS:
		return models.CategoryAlmostEligible
	case gap <= tolerance:
		return models.CategoryAlmostEligible
	default:
		return models.CategoryNotEligible
	}
}

// Confidence scores how complete the evidence behind a verdict is. Unknown
// verdicts carry no confidence.
func Confidence(category models.Category, subjectsSupplied bool) int {
	if category == models.CategoryUnknown {
		return 0
	}
	if subjectsSupplied {
		return FullConfidence
	}
	return FullConfidence - APSOnlyPenalty
}

func requiredOnly(subjects []models.SubjectRequirement) []models.SubjectRequirement {
	var out []models.SubjectRequirement
	for _, s := range subjects {
		if s.Required {
			out = append(out, s)
		}
	}
	return out
}

// missingSubjects returns the requirements no student subject satisfies, in
// course order. Names compare case-insensitively.
func missingSubjects(required []models.SubjectRequirement, subjects []models.StudentSubject) []models.SubjectRequirement {
	var missing []models.SubjectRequirement
	for _, req := range required {
		met := false
		for _, s := range subjects {
			if strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(req.Name)) && SubjectLevel(s) >= req.MinLevel {
				met = true
				break
			}
		}
		if !met {
			missing = append(missing, req)
		}
	}
	return missing
}

// recommend lists APS advice before subject advice, capped at limit.
func recommend(category models.Category, required, gap int, missing []models.SubjectRequirement, subjectsUnchecked bool, limit int) []string {
	recs := make([]string, 0, limit)
	if category == models.CategoryUnknown {
		return append(recs, "Enter your subject marks to calculate your APS")
	}

	if gap > 0 {
		if category == models.CategoryAlmostEligible {
			recs = append(recs, fmt.Sprintf("You are %s short of the required APS of %d; improving one subject by a level could close the gap", points(gap), required))
		} else {
			recs = append(recs, fmt.Sprintf("Improve your APS by %s to reach the required %d", points(gap), required))
		}
	}
	for _, m := range missing {
		recs = append(recs, fmt.Sprintf("Achieve at least level %d in %s", m.MinLevel, m.Name))
	}
	if subjectsUnchecked {
		recs = append(recs, "Add your subjects to confirm the subject requirements")
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func points(n int) string {
	if n == 1 {
		return "1 point"
	}
	return fmt.Sprintf("%d points", n)
}
