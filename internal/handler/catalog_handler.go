package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-eligibility-api/internal/dto"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
	"github.com/noah-isme/aps-eligibility-api/internal/service"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
	"github.com/noah-isme/aps-eligibility-api/pkg/response"
)

type catalogService interface {
	Universities(ctx context.Context) ([]models.University, error)
	Faculties(ctx context.Context) ([]string, error)
	Status(ctx context.Context) (*service.CatalogStatus, error)
}

// CatalogHandler exposes the university registry and catalog diagnostics.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Universities godoc
// @Summary List universities
// @Description Registry of universities with the faculties present in the catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /universities [get]
func (h *CatalogHandler) Universities(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	universities, err := h.service.Universities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	faculties, err := h.service.Faculties(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.UniversityListResponse{Universities: universities, Faculties: faculties}, nil)
}

// Issues godoc
// @Summary Catalog authoring issues
// @Description Unknown university references, duplicates and invalid requirements found when the catalog was loaded
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/issues [get]
func (h *CatalogHandler) Issues(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	status, err := h.service.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.CatalogIssuesResponse{
		Source:   status.Source,
		LoadedAt: status.LoadedAt,
		Courses:  status.Courses,
		Issues:   status.Issues,
	}, nil)
}
