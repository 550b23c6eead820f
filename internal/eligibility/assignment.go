package eligibility

import "github.com/noah-isme/aps-eligibility-api/internal/models"

// ResolveUniversities returns the universities that offer a course under rule,
// restricted to known. The result follows the order of known and holds no
// duplicates. Identifiers in the rule that are not known are ignored. A nil rule
// offers the course nowhere.
func ResolveUniversities(rule models.AssignmentRule, known []models.UniversityID) []models.UniversityID {
	out := make([]models.UniversityID, 0, len(known))
	seen := make(map[models.UniversityID]struct{}, len(known))
	keep := func(id models.UniversityID) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	switch r := rule.(type) {
	case models.AllUniversities:
		for _, id := range known {
			keep(id)
		}
	case models.ExcludeUniversities:
		excluded := toSet(r.IDs)
		for _, id := range known {
			if _, skip := excluded[id]; !skip {
				keep(id)
			}
		}
	case models.IncludeOnlyUniversities:
		included := toSet(r.IDs)
		for _, id := range known {
			if _, ok := included[id]; ok {
				keep(id)
			}
		}
	}
	return out
}

// Offers reports whether a course with rule is offered at university id.
func Offers(rule models.AssignmentRule, known []models.UniversityID, id models.UniversityID) bool {
	for _, offered := range ResolveUniversities(rule, known) {
		if offered == id {
			return true
		}
	}
	return false
}

func toSet(ids []models.UniversityID) map[models.UniversityID]struct{} {
	set := make(map[models.UniversityID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
