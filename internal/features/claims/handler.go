package claims

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SetClaim godoc
// @Summary Claim or release a found item
// @Description Records a claim transition on a found item, awarding karma to the finder. Only the item's owner or an admin may do this. Omitting claimedBy releases the claim and reverses the award.
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Found item ID"
// @Param request body ClaimRequest true "Claim state"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /claims/{itemId} [put]
func (h *Handler) SetClaim(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	actor := Actor{
		ID:      c.GetString("userID"),
		IsAdmin: c.GetString("role") == "admin",
	}

	item, err := h.service.SetClaim(c.Request.Context(), c.Param("itemId"), req.ClaimedBy, actor)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, item)
}
