package models

// SortKey selects the ordering of a programme listing.
type SortKey string

const (
	SortByEligibility SortKey = "eligibility"
	SortByAPS         SortKey = "aps"
	SortByName        SortKey = "name"
)

// ProgramFilter narrows a programme listing. Zero value keeps everything.
type ProgramFilter struct {
	Faculty         string `json:"faculty,omitempty"`
	EligibleOnly    bool   `json:"eligibleOnly,omitempty"`
	CompetitiveOnly bool   `json:"competitiveOnly,omitempty"`
}

// Program is a course as offered by one university together with its verdict.
type Program struct {
	Name          string               `json:"name"`
	Faculty       string               `json:"faculty"`
	DurationLabel string               `json:"durationLabel"`
	RequiredAPS   int                  `json:"requiredAPS"`
	Competitive   bool                 `json:"competitive"`
	Subjects      []SubjectRequirement `json:"subjects"`
	Verdict       Verdict              `json:"verdict"`
}

// UniversityStats summarises the programmes a university offers.
type UniversityStats struct {
	TotalPrograms       int     `json:"totalPrograms"`
	MatchingPrograms    int     `json:"matchingPrograms"`
	EligibleCount       int     `json:"eligibleCount"`
	AlmostEligibleCount int     `json:"almostEligibleCount"`
	EligibilityRate     float64 `json:"eligibilityRate"`
	AverageRequiredAPS  float64 `json:"averageRequiredAps"`
	CompetitivePrograms int     `json:"competitivePrograms"`
	HasProfile          bool    `json:"hasProfile"`
}

// UniversityReport is the programme listing for one university.
type UniversityReport struct {
	University University      `json:"university"`
	UserAPS    int             `json:"userAPS"`
	Programs   []Program       `json:"programs"`
	Stats      UniversityStats `json:"stats"`
}

// UniversityMatch counts the programmes one university offers a student.
type UniversityMatch struct {
	University     University `json:"university"`
	Offered        int        `json:"offered"`
	Eligible       int        `json:"eligible"`
	AlmostEligible int        `json:"almostEligible"`
}

// MatchSummary rolls matches up across every university.
type MatchSummary struct {
	UserAPS                 int               `json:"userAPS"`
	Matches                 []UniversityMatch `json:"matches"`
	TotalEligible           int               `json:"totalEligible"`
	TotalAlmostEligible     int               `json:"totalAlmostEligible"`
	UniversitiesWithMatches int               `json:"universitiesWithMatches"`
}

// CourseReport lists verdicts for a single course at every university offering it.
type CourseReport struct {
	Name         string    `json:"name"`
	Faculty      string    `json:"faculty"`
	DefaultAPS   int       `json:"defaultAps"`
	Verdicts     []Verdict `json:"verdicts"`
	OfferedCount int       `json:"offeredCount"`
}

// Pagination describes a page of results.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
