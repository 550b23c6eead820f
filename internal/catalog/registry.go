package catalog

import (
	"strings"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// Registry is the fixed mapping between display abbreviations and internal
// university identifiers. It is the single source of truth for which
// universities exist.
type Registry struct {
	universities []models.University
	byID         map[models.UniversityID]int
	byAbbrev     map[string]models.UniversityID
}

// NewRegistry builds a registry. Identifiers are lowercased; entries repeating an
// identifier or abbreviation already seen are ignored so the mapping stays bijective.
// An abbreviation may only equal an identifier when both belong to the same entry.
func NewRegistry(universities []models.University) *Registry {
	r := &Registry{
		byID:     make(map[models.UniversityID]int, len(universities)),
		byAbbrev: make(map[string]models.UniversityID, len(universities)),
	}
	for _, u := range universities {
		id := models.UniversityID(strings.ToLower(strings.TrimSpace(string(u.ID))))
		abbrev := strings.ToLower(strings.TrimSpace(u.Abbreviation))
		if id == "" {
			continue
		}
		if _, dup := r.byID[id]; dup {
			continue
		}
		if _, taken := r.byAbbrev[string(id)]; taken {
			continue
		}
		if abbrev != "" && abbrev != string(id) {
			if _, taken := r.byID[models.UniversityID(abbrev)]; taken {
				continue
			}
		}
		if abbrev != "" {
			if _, dup := r.byAbbrev[abbrev]; dup {
				continue
			}
			r.byAbbrev[abbrev] = id
		}
		u.ID = id
		r.byID[id] = len(r.universities)
		r.universities = append(r.universities, u)
	}
	return r
}

// Universities returns every registered university in registration order.
func (r *Registry) Universities() []models.University {
	out := make([]models.University, len(r.universities))
	copy(out, r.universities)
	return out
}

// IDs returns every identifier in registration order.
func (r *Registry) IDs() []models.UniversityID {
	out := make([]models.UniversityID, len(r.universities))
	for i, u := range r.universities {
		out[i] = u.ID
	}
	return out
}

// Len reports the number of universities.
func (r *Registry) Len() int {
	return len(r.universities)
}

// Get returns the university for an identifier.
func (r *Registry) Get(id models.UniversityID) (models.University, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return models.University{}, false
	}
	return r.universities[idx], true
}

// Resolve maps an identifier or display abbreviation, in any case, to the
// canonical identifier.
func (r *Registry) Resolve(ref string) (models.UniversityID, bool) {
	key := strings.ToLower(strings.TrimSpace(ref))
	if key == "" {
		return "", false
	}
	if _, ok := r.byID[models.UniversityID(key)]; ok {
		return models.UniversityID(key), true
	}
	id, ok := r.byAbbrev[key]
	return id, ok
}

// Abbreviation returns the display abbreviation for an identifier, or the
// identifier itself when unknown.
func (r *Registry) Abbreviation(id models.UniversityID) string {
	if u, ok := r.Get(id); ok && u.Abbreviation != "" {
		return u.Abbreviation
	}
	return string(id)
}
