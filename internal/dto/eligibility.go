package dto

import "github.com/noah-isme/aps-eligibility-api/internal/models"

// ProgramQuery carries the listing options shared by the GET and POST programme
// endpoints. Tolerance overrides the configured almost-eligible window when set.
type ProgramQuery struct {
	Sort         string `json:"sort" form:"sort" validate:"omitempty,max=20"`
	Faculty      string `json:"faculty" form:"faculty" validate:"omitempty,max=100"`
	EligibleOnly bool   `json:"eligibleOnly" form:"eligibleOnly"`
	Competitive  bool   `json:"competitive" form:"competitive"`
	Tolerance    *int   `json:"tolerance" form:"tolerance" validate:"omitempty,gte=0,lte=20"`
	Page         int    `json:"page" form:"page" validate:"gte=0"`
	PageSize     int    `json:"pageSize" form:"pageSize" validate:"gte=0,lte=200"`
}

// ProgramListQuery is the query string of GET /universities/:id/programs. Only a
// numeric APS is known, so verdicts carry the reduced APS-only confidence.
type ProgramListQuery struct {
	APS *float64 `form:"aps" validate:"omitempty,lte=60"`
	ProgramQuery
}

// UniversityEligibilityRequest is the POST /universities/:id/eligibility payload.
// A missing profile yields unknown verdicts for every programme.
type UniversityEligibilityRequest struct {
	Profile *models.StudentProfile `json:"profile" validate:"omitempty"`
	ProgramQuery
}

// UniversityEligibilityResponse wraps a programme report.
type UniversityEligibilityResponse struct {
	models.UniversityReport
	Tolerance int `json:"tolerance"`
}

// MatchSummaryRequest is the POST /eligibility payload.
type MatchSummaryRequest struct {
	Profile   models.StudentProfile `json:"profile"`
	Tolerance *int                  `json:"tolerance" validate:"omitempty,gte=0,lte=20"`
}

// CourseEligibilityResponse lists every catalog entry sharing the requested name.
type CourseEligibilityResponse struct {
	Query   string                `json:"query"`
	UserAPS int                   `json:"userAPS"`
	Courses []models.CourseReport `json:"courses"`
}

// APSCalculationRequest is the POST /aps/calculate payload.
type APSCalculationRequest struct {
	Subjects []models.StudentSubject `json:"subjects" validate:"required,min=1,max=20,dive"`
}

// SubjectPoints reports how a single subject contributed to the APS.
type SubjectPoints struct {
	Name    string  `json:"name"`
	Marks   float64 `json:"marks"`
	Level   int     `json:"level"`
	Counted bool    `json:"counted"`
}

// APSCalculationResponse is the result of the APS calculator.
type APSCalculationResponse struct {
	TotalAPS int             `json:"totalAPS"`
	Subjects []SubjectPoints `json:"subjects"`
	MaxAPS   int             `json:"maxAPS"`
}
