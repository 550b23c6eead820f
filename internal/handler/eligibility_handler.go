package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-eligibility-api/internal/dto"
	"github.com/noah-isme/aps-eligibility-api/internal/middleware"
	"github.com/noah-isme/aps-eligibility-api/internal/models"
	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
	"github.com/noah-isme/aps-eligibility-api/pkg/response"
)

type eligibilityService interface {
	UniversityPrograms(ctx context.Context, ref string, req dto.UniversityEligibilityRequest) (*dto.UniversityEligibilityResponse, *models.Pagination, bool, error)
	ProgramsByAPS(ctx context.Context, ref string, q dto.ProgramListQuery) (*dto.UniversityEligibilityResponse, *models.Pagination, bool, error)
	Summary(ctx context.Context, req dto.MatchSummaryRequest) (*models.MatchSummary, bool, error)
	Course(ctx context.Context, name string, aps *float64) (*dto.CourseEligibilityResponse, error)
	CalculateAPS(ctx context.Context, req dto.APSCalculationRequest) (*dto.APSCalculationResponse, error)
}

// EligibilityHandler exposes programme eligibility endpoints.
type EligibilityHandler struct {
	service eligibilityService
}

// NewEligibilityHandler constructs the handler.
func NewEligibilityHandler(service eligibilityService) *EligibilityHandler {
	return &EligibilityHandler{service: service}
}

// Programs godoc
// @Summary Programmes offered by a university
// @Description Evaluates every programme against a numeric APS. Without a subject list verdicts carry reduced confidence.
// @Tags Eligibility
// @Produce json
// @Param id path string true "University id or abbreviation"
// @Param aps query number false "Student APS"
// @Param sort query string false "eligibility, aps or name"
// @Param faculty query string false "Faculty substring"
// @Param eligibleOnly query bool false "Only eligible programmes"
// @Param competitive query bool false "Only highly competitive programmes"
// @Param tolerance query int false "Almost-eligible APS window"
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /universities/{id}/programs [get]
func (h *EligibilityHandler) Programs(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var q dto.ProgramListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	start := time.Now()
	report, pagination, cacheHit, err := h.service.ProgramsByAPS(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, start, cacheHit, report, pagination)
}

// Evaluate godoc
// @Summary Evaluate a student profile at one university
// @Tags Eligibility
// @Accept json
// @Produce json
// @Param id path string true "University id or abbreviation"
// @Param payload body dto.UniversityEligibilityRequest true "Profile and listing options"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /universities/{id}/eligibility [post]
func (h *EligibilityHandler) Evaluate(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.UniversityEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload"))
		return
	}
	start := time.Now()
	report, pagination, cacheHit, err := h.service.UniversityPrograms(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, start, cacheHit, report, pagination)
}

// Summary godoc
// @Summary Match counts at every university
// @Tags Eligibility
// @Accept json
// @Produce json
// @Param payload body dto.MatchSummaryRequest true "Student profile"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /eligibility [post]
func (h *EligibilityHandler) Summary(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.MatchSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload"))
		return
	}
	start := time.Now()
	summary, cacheHit, err := h.service.Summary(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, start, cacheHit, summary, nil)
}

// Course godoc
// @Summary Course detail across universities
// @Tags Eligibility
// @Produce json
// @Param name path string true "Course name"
// @Param aps query number false "Student APS"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{name}/eligibility [get]
func (h *EligibilityHandler) Course(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var aps *float64
	if raw := strings.TrimSpace(c.Query("aps")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "aps must be a number"))
			return
		}
		aps = &value
	}
	result, err := h.service.Course(c.Request.Context(), c.Param("name"), aps)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// CalculateAPS godoc
// @Summary Calculate an APS from subject marks
// @Tags Eligibility
// @Accept json
// @Produce json
// @Param payload body dto.APSCalculationRequest true "Subjects"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /aps/calculate [post]
func (h *EligibilityHandler) CalculateAPS(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.APSCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload"))
		return
	}
	result, err := h.service.CalculateAPS(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

func respondWithMeta(c *gin.Context, start time.Time, cacheHit bool, data interface{}, pagination *models.Pagination) {
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, data, pagination, meta)
}
