package notifications

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

// List godoc
// @Summary List the caller's notifications
// @Description Unread notifications sort first, then newest.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 50)"
// @Param unreadOnly query bool false "Only unread notifications"
// @Success 200 {object} response.PaginatedResponse
// @Router /notifications/ [get]
func (h *Handler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	list, total, err := h.repo.ListByUser(c.Request.Context(), c.GetString("userID"), query.UnreadOnly, query.Page, query.Limit)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Paginated(c, list, total, query.Limit, query.Page)
}

// UnreadCount godoc
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.repo.CountUnread(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, UnreadCountResponse{UnreadCount: count})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Description Idempotent; marking twice has no further effect.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *Handler) MarkRead(c *gin.Context) {
	notification, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	if notification.UserID != c.GetString("userID") {
		response.Forbidden(c, "Cannot read another user's notifications")
		return
	}

	if err := h.repo.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}

	notification.Read = true
	response.Success(c, notification)
}

// MarkAllRead godoc
// @Summary Mark all of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /notifications/read-all [put]
func (h *Handler) MarkAllRead(c *gin.Context) {
	count, err := h.repo.MarkAllAsRead(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, MarkAllReadResponse{MarkedCount: count})
}
