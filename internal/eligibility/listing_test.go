package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

func program(name, faculty string, aps int, category models.Category) models.Program {
	return models.Program{Name: name, Faculty: faculty, RequiredAPS: aps, Verdict: models.Verdict{Category: category}}
}

func listing() []models.Program {
	return []models.Program{
		program("zoology", "Science", 28, models.CategoryNotEligible),
		program("Accounting", "Commerce", 34, models.CategoryEligible),
		program("Medicine", "Health Sciences", 40, models.CategoryUnknown),
		program("Law", "Law", 32, models.CategoryAlmostEligible),
		program("Botany", "Science", 28, models.CategoryEligible),
	}
}

func TestSortProgramsByEligibilityIsStable(t *testing.T) {
	programs := listing()
	SortPrograms(programs, models.SortByEligibility)
	assert.Equal(t, []string{"Accounting", "Botany", "Law", "zoology", "Medicine"}, programNames(programs))
}

func TestSortProgramsByAPS(t *testing.T) {
	programs := listing()
	SortPrograms(programs, models.SortByAPS)
	assert.Equal(t, []string{"zoology", "Botany", "Law", "Accounting", "Medicine"}, programNames(programs))
}

func TestSortProgramsByName(t *testing.T) {
	programs := listing()
	SortPrograms(programs, models.SortByName)
	assert.Equal(t, []string{"Accounting", "Botany", "Law", "Medicine", "zoology"}, programNames(programs))
}

func TestSortProgramsUnknownKeyKeepsOrder(t *testing.T) {
	programs := listing()
	SortPrograms(programs, "")
	assert.Equal(t, programNames(listing()), programNames(programs))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, models.SortByAPS, ParseSortKey(" APS "))
	assert.Equal(t, models.SortByName, ParseSortKey("name"))
	assert.Equal(t, models.SortByEligibility, ParseSortKey("eligibility"))
	assert.Equal(t, models.SortByEligibility, ParseSortKey("popularity"))
}

func TestFilterPrograms(t *testing.T) {
	programs := listing()

	assert.Equal(t, []string{"zoology", "Medicine", "Botany"}, programNames(FilterPrograms(programs, models.ProgramFilter{Faculty: "scien"}, 0)))
	assert.Equal(t, []string{"Medicine"}, programNames(FilterPrograms(programs, models.ProgramFilter{Faculty: "HEALTH"}, 0)))
	assert.Equal(t, []string{"Accounting", "Botany"}, programNames(FilterPrograms(programs, models.ProgramFilter{EligibleOnly: true}, 0)))
	assert.Equal(t, []string{"Accounting", "Medicine", "Law"}, programNames(FilterPrograms(programs, models.ProgramFilter{CompetitiveOnly: true}, 0)))
	assert.Equal(t, []string{"Accounting", "Medicine"}, programNames(FilterPrograms(programs, models.ProgramFilter{CompetitiveOnly: true}, 33)))
	assert.Equal(t, []string{"Botany"}, programNames(FilterPrograms(programs, models.ProgramFilter{Faculty: "science", EligibleOnly: true}, 0)))
	assert.Len(t, FilterPrograms(programs, models.ProgramFilter{}, 0), 5)
	assert.Equal(t, programNames(listing()), programNames(programs))
}
