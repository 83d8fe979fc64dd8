package karma

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/pkg/response"
)

type Handler struct {
	repo       *Repository
	aggregator *Aggregator
}

func NewHandler(repo *Repository, aggregator *Aggregator) *Handler {
	return &Handler{repo: repo, aggregator: aggregator}
}

// Leaderboard godoc
// @Summary Get the karma leaderboard
// @Description Ranks every user by total karma, descending.
// @Tags karma
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /karma/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	board, err := h.aggregator.ComputeLeaderboard(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, board)
}

// History godoc
// @Summary Get the caller's karma history
// @Tags karma
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /karma/me [get]
func (h *Handler) History(c *gin.Context) {
	entries, err := h.repo.ListByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, entries)
}
