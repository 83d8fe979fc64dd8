package safety

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Report a user or listing
// @Tags safety
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	report, err := h.repo.CreateReport(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Created(c, report)
}

// List godoc
// @Summary List reports
// @Description Admin-only. Filter with ?status=pending|resolved|dismissed.
// @Tags safety
// @Produce json
// @Security BearerAuth
// @Param status query string false "Report status"
// @Success 200 {object} response.SuccessResponse
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	reports, err := h.repo.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, reports)
}

// UpdateStatus godoc
// @Summary Resolve or dismiss a report
// @Description Admin-only. Timing out the reported user is a separate call.
// @Tags safety
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateReportStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	report, err := h.repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, report)
}
