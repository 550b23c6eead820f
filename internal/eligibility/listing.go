package eligibility

import (
	"sort"
	"strings"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// categoryRank orders categories for the eligibility sort; lower comes first.
func categoryRank(c models.Category) int {
	switch c {
	case models.CategoryEligible:
		return 0
	case models.CategoryAlmostEligible:
		return 1
	case models.CategoryNotEligible:
		return 2
	default:
		return 3
	}
}

// SortPrograms orders programs in place. Every key is a stable sort, so entries
// that compare equal keep their catalog order. An empty or unknown key leaves the
// order untouched.
//   - SortByEligibility: eligible, almost-eligible, not-eligible, unknown
//   - SortByAPS: ascending requirement
//   - SortByName: case-insensitive lexicographic name, then exact name
func SortPrograms(programs []models.Program, key models.SortKey) {
	switch key {
	case models.SortByEligibility:
		sort.SliceStable(programs, func(i, j int) bool {
			return categoryRank(programs[i].Verdict.Category) < categoryRank(programs[j].Verdict.Category)
		})
	case models.SortByAPS:
		sort.SliceStable(programs, func(i, j int) bool {
			return programs[i].RequiredAPS < programs[j].RequiredAPS
		})
	case models.SortByName:
		sort.SliceStable(programs, func(i, j int) bool {
			a, b := strings.ToLower(programs[i].Name), strings.ToLower(programs[j].Name)
			if a != b {
				return a < b
			}
			return programs[i].Name < programs[j].Name
		})
	}
}

// ParseSortKey maps user input onto a sort key, defaulting to eligibility order.
func ParseSortKey(raw string) models.SortKey {
	switch models.SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case models.SortByAPS:
		return models.SortByAPS
	case models.SortByName:
		return models.SortByName
	default:
		return models.SortByEligibility
	}
}

// FilterPrograms returns the programmes matching every set criterion. The input
// slice is not modified.
func FilterPrograms(programs []models.Program, filter models.ProgramFilter, competitiveAPS int) []models.Program {
	faculty := strings.ToLower(strings.TrimSpace(filter.Faculty))
	if competitiveAPS <= 0 {
		competitiveAPS = DefaultCompetitiveAPS
	}
	out := make([]models.Program, 0, len(programs))
	for _, p := range programs {
		if faculty != "" && !strings.Contains(strings.ToLower(p.Faculty), faculty) {
			continue
		}
		if filter.EligibleOnly && p.Verdict.Category != models.CategoryEligible {
			continue
		}
		if filter.CompetitiveOnly && p.RequiredAPS < competitiveAPS {
			continue
		}
		out = append(out, p)
	}
	return out
}
