package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

func fixtureRegistry() *Registry {
	return NewRegistry([]models.University{
		{ID: "uct", Abbreviation: "UCT", Name: "University of Cape Town"},
		{ID: "wits", Abbreviation: "Wits", Name: "University of the Witwatersrand"},
		{ID: "ufh", Abbreviation: "UFH", Name: "University of Fort Hare"},
		{ID: "unisa", Abbreviation: "UNISA", Name: "University of South Africa"},
	})
}

func TestRegistryResolve(t *testing.T) {
	r := fixtureRegistry()

	cases := map[string]models.UniversityID{
		"uct":    "uct",
		"UCT":    "uct",
		" wits ": "wits",
		"WITS":   "wits",
		"Unisa":  "unisa",
	}
	for ref, want := range cases {
		got, ok := r.Resolve(ref)
		require.True(t, ok, ref)
		assert.Equal(t, want, got, ref)
	}

	_, ok := r.Resolve("harvard")
	assert.False(t, ok)
	_, ok = r.Resolve("")
	assert.False(t, ok)
}

func TestRegistryKeepsBijection(t *testing.T) {
	r := NewRegistry([]models.University{
		{ID: "UCT", Abbreviation: "UCT"},
		{ID: "uct", Abbreviation: "Other"},
		{ID: "cpt", Abbreviation: "uct"},
		{ID: "", Abbreviation: "EMPTY"},
	})

	assert.Equal(t, []models.UniversityID{"uct"}, r.IDs())
	assert.Equal(t, "UCT", r.Abbreviation("uct"))
	assert.Equal(t, "nowhere", r.Abbreviation("nowhere"))
}

func TestRegistryRejectsAbbreviationIDCollisions(t *testing.T) {
	r := NewRegistry([]models.University{
		{ID: "x", Abbreviation: "Y"},
		{ID: "y", Abbreviation: "Z"},
		{ID: "z", Abbreviation: "X"},
		{ID: "w", Abbreviation: "W"},
	})

	assert.Equal(t, []models.UniversityID{"x", "w"}, r.IDs())
	got, ok := r.Resolve("Y")
	require.True(t, ok)
	assert.Equal(t, models.UniversityID("x"), got)
	got, ok = r.Resolve("W")
	require.True(t, ok)
	assert.Equal(t, models.UniversityID("w"), got)
	_, ok = r.Resolve("Z")
	assert.False(t, ok)
}

func TestNewDropsUnknownReferences(t *testing.T) {
	c := New(fixtureRegistry(), []CourseDefinition{
		{
			Name:       "BSc Computer Science",
			Faculty:    "Science",
			DefaultAPS: 30,
			Overrides:  map[string]int{"UCT": 38, "mit": 45},
			Rule:       includeOnly("uct", "Wits", "mit", "UCT"),
		},
	})

	courses := c.Courses()
	require.Len(t, courses, 1)
	course := courses[0]

	assert.Equal(t, map[models.UniversityID]int{"uct": 38}, course.UniversityOverrides)
	rule, ok := course.Rule.(models.IncludeOnlyUniversities)
	require.True(t, ok)
	assert.Equal(t, []models.UniversityID{"uct", "wits"}, rule.IDs)
}

func TestNewBuildsRuleVariants(t *testing.T) {
	c := New(fixtureRegistry(), []CourseDefinition{
		{Name: "A", Rule: all()},
		{Name: "B", Rule: exclude("UFH", "UNISA")},
		{Name: "C", Rule: includeOnly()},
		{Name: "D"},
	})
	courses := c.Courses()

	assert.Equal(t, models.RuleAll, courses[0].Rule.Kind())
	assert.Equal(t, models.ExcludeUniversities{IDs: []models.UniversityID{"ufh", "unisa"}}, courses[1].Rule)
	assert.Equal(t, models.RuleIncludeOnly, courses[2].Rule.Kind())
	assert.Empty(t, models.RuleUniversities(courses[2].Rule))
	assert.Equal(t, models.RuleAll, courses[3].Rule.Kind())
}

func TestNewOffersUnknownRuleKindNowhere(t *testing.T) {
	registry := NewRegistry([]models.University{
		{ID: "uct", Abbreviation: "UCT"},
		{ID: "wits", Abbreviation: "Wits"},
		{ID: "tut", Abbreviation: "TUT"},
	})
	c := New(registry, []CourseDefinition{
		{Name: "Diploma in Engineering", Rule: RuleDefinition{Kind: "include-only", Universities: []string{"tut"}}},
		{Name: "BA", Rule: RuleDefinition{Kind: "includeOnly"}},
	})

	for _, course := range c.Courses() {
		assert.Equal(t, models.IncludeOnlyUniversities{}, course.Rule, course.Name)
		assert.Empty(t, models.RuleUniversities(course.Rule), course.Name)
	}
}

func TestFindCoursesAndFaculties(t *testing.T) {
	c := New(fixtureRegistry(), []CourseDefinition{
		{Name: "Bachelor of Arts", Faculty: "Humanities", DurationYears: 3},
		{Name: "bachelor of arts", Faculty: "Education", DurationYears: 1},
		{Name: "BCom", Faculty: "Commerce"},
	})

	found := c.FindCourses("BACHELOR OF ARTS")
	require.Len(t, found, 2)
	assert.Equal(t, "3 years", found[0].DurationLabel)
	assert.Equal(t, "1 year", found[1].DurationLabel)
	assert.Empty(t, c.FindCourses("unknown"))
	assert.Equal(t, []string{"Commerce", "Education", "Humanities"}, c.Faculties())
}

func TestCoursesReturnsCopy(t *testing.T) {
	c := New(fixtureRegistry(), []CourseDefinition{{Name: "A"}})
	courses := c.Courses()
	courses[0].Name = "changed"

	assert.Equal(t, "A", c.Courses()[0].Name)
}

func TestUniversityLookup(t *testing.T) {
	c := New(fixtureRegistry(), nil)

	u, ok := c.University("WITS")
	require.True(t, ok)
	assert.Equal(t, models.UniversityID("wits"), u.ID)

	_, ok = c.University("oxford")
	assert.False(t, ok)
	assert.Len(t, c.UniversityIDs(), 4)
}

func TestDefaultCatalogIsConsistent(t *testing.T) {
	registry := NewRegistry(DefaultUniversities())
	assert.Equal(t, 26, registry.Len())
	assert.Empty(t, Validate(registry, DefaultCourses()))

	c := Default()
	assert.Equal(t, len(DefaultCourses()), c.Len())
	for _, course := range c.Courses() {
		for id := range course.UniversityOverrides {
			_, ok := registry.Get(id)
			assert.True(t, ok, "%s override %s", course.Name, id)
		}
	}
}
