package users

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/pkg/response"
)

type Handler struct {
	repo   *Repository
	purger *Purger
}

func NewHandler(repo *Repository, purger *Purger) *Handler {
	return &Handler{repo: repo, purger: purger}
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.repo.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, user)
}

// Get godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	user, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, user)
}

// List godoc
// @Summary List all users (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /users/ [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, list)
}

// Timeout godoc
// @Summary Place a moderation timeout on a user (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body TimeoutRequest false "Timeout duration in days (default 30)"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/timeout [post]
func (h *Handler) Timeout(c *gin.Context) {
	var req TimeoutRequest
	_ = c.ShouldBindJSON(&req)
	if req.Days <= 0 {
		req.Days = DefaultTimeoutDays
	}

	until := time.Now().AddDate(0, 0, req.Days)
	if err := h.repo.TimeoutUser(c.Request.Context(), c.Param("id"), until); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, map[string]interface{}{"timeoutUntil": until})
}

// LiftTimeout godoc
// @Summary Remove a user's moderation timeout (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/timeout [delete]
func (h *Handler) LiftTimeout(c *gin.Context) {
	if err := h.repo.LiftTimeout(c.Request.Context(), c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, map[string]string{"message": "Timeout lifted"})
}

// ClearExpiredTimeouts godoc
// @Summary Clear all expired moderation timeouts (admin maintenance)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /users/timeouts/expired [delete]
func (h *Handler) ClearExpiredTimeouts(c *gin.Context) {
	count, err := h.repo.ClearExpiredTimeouts(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, ClearTimeoutsResponse{ClearedCount: count})
}

// Delete godoc
// @Summary Delete a user account and all owned data
// @Description Users can delete their own account; admins can delete any.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	targetID := c.Param("id")
	if targetID != c.GetString("userID") && c.GetString("role") != RoleAdmin {
		response.Forbidden(c, "Cannot delete another user's account")
		return
	}

	if err := h.purger.PurgeUser(c.Request.Context(), targetID); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, map[string]string{"message": "Account deleted"})
}
