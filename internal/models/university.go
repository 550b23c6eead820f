package models

// UniversityID is the canonical lowercase identifier of a university, e.g. "uct".
// Values are issued by the catalog registry; overrides and assignment rules only
// ever hold identifiers the registry knows.
type UniversityID string

// String implements fmt.Stringer.
func (id UniversityID) String() string {
	return string(id)
}

// UniversityType groups institutions by their academic profile.
type UniversityType string

const (
	UniversityTypeTraditional   UniversityType = "traditional"
	UniversityTypeComprehensive UniversityType = "comprehensive"
	UniversityTypeTechnology    UniversityType = "technology"
)

// University is one entry of the identifier registry.
type University struct {
	ID           UniversityID   `db:"id" json:"id"`
	Abbreviation string         `db:"abbreviation" json:"abbreviation"`
	Name         string         `db:"name" json:"name"`
	Province     string         `db:"province" json:"province"`
	Type         UniversityType `db:"type" json:"type"`
}
