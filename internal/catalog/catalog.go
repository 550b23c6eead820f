package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// Catalog is the read-only registry of course definitions. It is constructed once
// at process start and shared by reference; nothing mutates it afterwards.
type Catalog struct {
	registry *Registry
	courses  []models.Course
	byName   map[string][]int
}

// New builds a catalog from definitions. Override keys and rule identifiers that the
// registry does not know are dropped so a single bad entry cannot affect the rest of
// the catalog. Use Validate to surface those authoring mistakes.
func New(registry *Registry, defs []CourseDefinition) *Catalog {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	c := &Catalog{
		registry: registry,
		courses:  make([]models.Course, 0, len(defs)),
		byName:   make(map[string][]int, len(defs)),
	}
	for _, def := range defs {
		course := c.build(def)
		key := nameKey(course.Name)
		c.byName[key] = append(c.byName[key], len(c.courses))
		c.courses = append(c.courses, course)
	}
	return c
}

// Default returns the catalog built from the bundled static data.
func Default() *Catalog {
	return New(NewRegistry(DefaultUniversities()), DefaultCourses())
}

func (c *Catalog) build(def CourseDefinition) models.Course {
	course := models.Course{
		Name:          strings.TrimSpace(def.Name),
		Faculty:       strings.TrimSpace(def.Faculty),
		DurationYears: def.DurationYears,
		DurationLabel: def.DurationLabel,
		DefaultAPS:    def.DefaultAPS,
		Description:   def.Description,
		Careers:       append([]string(nil), def.Careers...),
		Subjects:      append([]models.SubjectRequirement(nil), def.Subjects...),
	}
	if course.DurationLabel == "" && def.DurationYears > 0 {
		course.DurationLabel = durationLabel(def.DurationYears)
	}
	for ref, aps := range def.Overrides {
		id, ok := c.registry.Resolve(ref)
		if !ok {
			continue
		}
		if course.UniversityOverrides == nil {
			course.UniversityOverrides = make(map[models.UniversityID]int, len(def.Overrides))
		}
		course.UniversityOverrides[id] = aps
	}
	course.Rule = c.buildRule(def.Rule)
	return course
}

// buildRule resolves a rule definition. An unrecognised kind offers the course
// nowhere so a typo can never widen its scope.
func (c *Catalog) buildRule(def RuleDefinition) models.AssignmentRule {
	switch def.Kind {
	case models.RuleAll, "":
		return models.AllUniversities{}
	case models.RuleExclude:
		return models.ExcludeUniversities{IDs: c.resolveRefs(def.Universities)}
	case models.RuleIncludeOnly:
		return models.IncludeOnlyUniversities{IDs: c.resolveRefs(def.Universities)}
	default:
		return models.IncludeOnlyUniversities{}
	}
}

func (c *Catalog) resolveRefs(refs []string) []models.UniversityID {
	if len(refs) == 0 {
		return nil
	}
	ids := make([]models.UniversityID, 0, len(refs))
	seen := make(map[models.UniversityID]struct{}, len(refs))
	for _, ref := range refs {
		id, ok := c.registry.Resolve(ref)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Registry exposes the university registry backing the catalog.
func (c *Catalog) Registry() *Registry {
	return c.registry
}

// Courses returns every course in catalog order. The slice is a copy; the course
// values share read-only maps and slices with the catalog.
func (c *Catalog) Courses() []models.Course {
	out := make([]models.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len reports the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// UniversityIDs returns the known identifier set in registry order.
func (c *Catalog) UniversityIDs() []models.UniversityID {
	return c.registry.IDs()
}

// Universities returns every registered university.
func (c *Catalog) Universities() []models.University {
	return c.registry.Universities()
}

// University resolves an identifier or abbreviation to a registered university.
func (c *Catalog) University(ref string) (models.University, bool) {
	id, ok := c.registry.Resolve(ref)
	if !ok {
		return models.University{}, false
	}
	return c.registry.Get(id)
}

// FindCourses returns every course with the given name, compared case-insensitively.
// Several faculties may list a course under the same name.
func (c *Catalog) FindCourses(name string) []models.Course {
	idx := c.byName[nameKey(name)]
	out := make([]models.Course, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.courses[i])
	}
	return out
}

// Faculties returns the distinct faculty labels sorted alphabetically.
func (c *Catalog) Faculties() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, course := range c.courses {
		if _, ok := seen[course.Faculty]; ok || course.Faculty == "" {
			continue
		}
		seen[course.Faculty] = struct{}{}
		out = append(out, course.Faculty)
	}
	sort.Strings(out)
	return out
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func durationLabel(years int) string {
	if years == 1 {
		return "1 year"
	}
	return strconv.Itoa(years) + " years"
}
