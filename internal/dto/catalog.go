package dto

import (
	"time"

	"github.com/noah-isme/aps-eligibility-api/internal/catalog"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// UniversityListResponse is the registry listing.
type UniversityListResponse struct {
	Universities []models.University `json:"universities"`
	Faculties    []string            `json:"faculties"`
}

// CatalogIssuesResponse reports authoring issues found when the catalog was loaded.
type CatalogIssuesResponse struct {
	Source   string          `json:"source"`
	LoadedAt time.Time       `json:"loadedAt"`
	Courses  int             `json:"courses"`
	Issues   []catalog.Issue `json:"issues"`
}

// ExportQuery selects the export format of a programme report.
type ExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
	ProgramListQuery
}
