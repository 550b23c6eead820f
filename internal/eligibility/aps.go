package eligibility

import (
	"math"
	"sort"
	"strings"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

const (
	// MaxCountedSubjects is how many subjects contribute to the APS total.
	MaxCountedSubjects = 6
	// MaxLevel is the highest NSC achievement level.
	MaxLevel = 7

	lifeOrientation = "life orientation"
)

// PointsForMark converts a percentage to its NSC achievement level. Malformed
// marks (NaN, negative) score zero; marks above 100 are capped.
func PointsForMark(mark float64) int {
	if math.IsNaN(mark) || mark < 0 {
		return 0
	}
	switch {
	case mark >= 80:
		return 7
	case mark >= 70:
		return 6
	case mark >= 60:
		return 5
	case mark >= 50:
		return 4
	case mark >= 40:
		return 3
	case mark >= 30:
		return 2
	default:
		return 1
	}
}

// SubjectLevel returns the explicit level of a subject, or the level derived from
// its mark when none was given.
func SubjectLevel(s models.StudentSubject) int {
	if s.Level >= 1 && s.Level <= MaxLevel {
		return s.Level
	}
	return PointsForMark(s.Marks)
}

// SubjectScore is the contribution of one subject to the APS total.
type SubjectScore struct {
	Subject models.StudentSubject
	Level   int
	Counted bool
}

// ScoreSubjects levels every subject and marks the best MaxCountedSubjects as
// counted. Life Orientation never counts. Equal levels keep input order.
func ScoreSubjects(subjects []models.StudentSubject) ([]SubjectScore, int) {
	scores := make([]SubjectScore, len(subjects))
	candidates := make([]int, 0, len(subjects))
	for i, s := range subjects {
		scores[i] = SubjectScore{Subject: s, Level: SubjectLevel(s)}
		if scores[i].Level > 0 && !strings.EqualFold(strings.TrimSpace(s.Name), lifeOrientation) {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]].Level > scores[candidates[b]].Level
	})
	if len(candidates) > MaxCountedSubjects {
		candidates = candidates[:MaxCountedSubjects]
	}
	total := 0
	for _, i := range candidates {
		scores[i].Counted = true
		total += scores[i].Level
	}
	return scores, total
}

// CalculateAPS sums the levels of the best MaxCountedSubjects subjects.
func CalculateAPS(subjects []models.StudentSubject) int {
	_, total := ScoreSubjects(subjects)
	return total
}

// NormalizeAPS coerces a computed APS to a non-negative integer. NaN, infinities
// and negative values become zero.
func NormalizeAPS(aps float64) int {
	if math.IsNaN(aps) || math.IsInf(aps, 0) || aps < 0 {
		return 0
	}
	return int(math.Floor(aps))
}

// ProfileAPS returns the APS for a profile: the supplied total when positive,
// otherwise the total calculated from the subjects. A nil profile scores zero.
func ProfileAPS(profile *models.StudentProfile) int {
	if profile == nil {
		return 0
	}
	if aps := NormalizeAPS(profile.TotalAPS); aps > 0 {
		return aps
	}
	return CalculateAPS(profile.Subjects)
}
