package models

// RuleKind names the variant of an AssignmentRule.
type RuleKind string

const (
	RuleAll         RuleKind = "all"
	RuleExclude     RuleKind = "exclude"
	RuleIncludeOnly RuleKind = "include_only"
)

// AssignmentRule decides which universities offer a course. The set of
// implementations is closed: AllUniversities, ExcludeUniversities and
// IncludeOnlyUniversities.
type AssignmentRule interface {
	Kind() RuleKind
	assignmentRule()
}

// AllUniversities offers the course at every known university.
type AllUniversities struct{}

// ExcludeUniversities offers the course everywhere except the listed universities.
type ExcludeUniversities struct {
	IDs []UniversityID
}

// IncludeOnlyUniversities offers the course only at the listed universities.
type IncludeOnlyUniversities struct {
	IDs []UniversityID
}

func (AllUniversities) Kind() RuleKind         { return RuleAll }
func (ExcludeUniversities) Kind() RuleKind     { return RuleExclude }
func (IncludeOnlyUniversities) Kind() RuleKind { return RuleIncludeOnly }

func (AllUniversities) assignmentRule()         {}
func (ExcludeUniversities) assignmentRule()     {}
func (IncludeOnlyUniversities) assignmentRule() {}

// RuleUniversities returns the identifiers a rule lists, nil for AllUniversities.
func RuleUniversities(rule AssignmentRule) []UniversityID {
	switch r := rule.(type) {
	case ExcludeUniversities:
		return r.IDs
	case IncludeOnlyUniversities:
		return r.IDs
	default:
		return nil
	}
}

// SubjectRequirement is one school subject a course lists. MinLevel is the NSC
// achievement level (1-7).
type SubjectRequirement struct {
	Name     string `db:"name" json:"name"`
	MinLevel int    `db:"min_level" json:"minLevel"`
	Required bool   `db:"required" json:"required"`
}

// Course is an immutable catalog entry. UniversityOverrides is sparse; use
// Override to read it.
type Course struct {
	Name                string               `json:"name"`
	Faculty             string               `json:"faculty"`
	DurationYears       int                  `json:"durationYears"`
	DurationLabel       string               `json:"durationLabel"`
	DefaultAPS          int                  `json:"defaultAps"`
	UniversityOverrides map[UniversityID]int `json:"universityOverrides,omitempty"`
	Rule                AssignmentRule       `json:"-"`
	Subjects            []SubjectRequirement `json:"subjects"`
	Description         string               `json:"description,omitempty"`
	Careers             []string             `json:"careers,omitempty"`
}

// Override returns the university specific APS for the course when one exists.
func (c Course) Override(id UniversityID) (int, bool) {
	aps, ok := c.UniversityOverrides[id]
	return aps, ok
}

// RequiredSubjects returns the subset of subjects flagged as required.
func (c Course) RequiredSubjects() []SubjectRequirement {
	var out []SubjectRequirement
	for _, s := range c.Subjects {
		if s.Required {
			out = append(out, s)
		}
	}
	return out
}
