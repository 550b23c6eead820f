package models

// Category is the three-way eligibility classification plus the indeterminate state
// used when no APS has been entered.
type Category string

const (
	CategoryEligible       Category = "eligible"
	CategoryAlmostEligible Category = "almost-eligible"
	CategoryNotEligible    Category = "not-eligible"
	CategoryUnknown        Category = "unknown"
)

// StudentSubject is one subject on a student's profile. Level is optional; when it
// is zero the level is derived from Marks.
type StudentSubject struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Marks float64 `json:"marks" validate:"lte=100"`
	Level int     `json:"level,omitempty" validate:"gte=0,lte=7"`
}

// StudentProfile is supplied per call by the APS calculator front-end. A nil Subjects
// slice means only the numeric APS is known.
type StudentProfile struct {
	TotalAPS float64          `json:"totalAPS" validate:"lte=60"`
	Subjects []StudentSubject `json:"subjects" validate:"omitempty,max=20,dive"`
}

// Verdict is the per course, per university, per student classification. It is
// recomputed on every query and never stored.
type Verdict struct {
	Course          string       `json:"course"`
	University      UniversityID `json:"university"`
	IsEligible      bool         `json:"isEligible"`
	Category        Category     `json:"category"`
	APSGap          int          `json:"apsGap"`
	Confidence      int          `json:"confidence"`
	RequiredAPS     int          `json:"requiredAPS"`
	UserAPS         int          `json:"userAPS"`
	Recommendations []string     `json:"recommendations"`
	MissingSubjects []string     `json:"missingSubjects,omitempty"`
}
