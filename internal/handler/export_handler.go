package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-eligibility-api/internal/dto"
	"github.com/noah-isme/aps-eligibility-api/internal/service"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
	"github.com/noah-isme/aps-eligibility-api/pkg/response"
)

type exportService interface {
	UniversityReport(ctx context.Context, ref string, q dto.ExportQuery) (*service.ExportFile, error)
}

// ExportHandler streams rendered programme reports.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Programs godoc
// @Summary Export a university programme report
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "University id or abbreviation"
// @Param format query string false "csv or pdf"
// @Param aps query number false "Student APS"
// @Param sort query string false "eligibility, aps or name"
// @Param faculty query string false "Faculty substring"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /universities/{id}/programs/export [get]
func (h *ExportHandler) Programs(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var q dto.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	file, err := h.service.UniversityReport(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Payload)
}
