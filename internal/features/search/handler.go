package search

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/features/items"
	"github.com/xyz-asif/foundly/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Items godoc
// @Summary Search items by text
// @Description Full-text search over item names and descriptions of one report kind.
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Param kind query string false "found or lost" default(found)
// @Param category query string false "Restrict to one category"
// @Param sort query string false "relevant or recent" default(relevant)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} response.PaginatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /search/items [get]
func (h *Handler) Items(c *gin.Context) {
	var query ItemSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid search query", "INVALID_QUERY")
		return
	}

	kind, err := items.ParseKind(query.Kind)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	docs, total, err := h.repo.SearchItems(c.Request.Context(), kind, query.Q, query.Category, query.Sort, query.Page, query.Limit)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Paginated(c, docs, total, query.Limit, query.Page)
}

// Categories godoc
// @Summary Autocomplete item categories
// @Description Returns categories matching a prefix with usage counts.
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string true "Category prefix"
// @Param kind query string false "found or lost" default(found)
// @Success 200 {object} response.SuccessResponse
// @Router /search/categories [get]
func (h *Handler) Categories(c *gin.Context) {
	var query CategorySearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid search query", "INVALID_QUERY")
		return
	}

	kind, err := items.ParseKind(query.Kind)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	results, err := h.repo.SearchCategories(c.Request.Context(), kind, query.Q)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, results)
}
