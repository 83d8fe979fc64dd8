package items

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/foundly/internal/pkg/logger"
	"github.com/xyz-asif/foundly/internal/pkg/response"
)

// TimeoutGate blocks item submissions from users under a moderation timeout.
type TimeoutGate interface {
	AssertNotTimedOut(ctx context.Context, userID string) error
}

// StatsRecorder tracks the per-user found-items counter.
type StatsRecorder interface {
	IncrementFoundItems(ctx context.Context, userID string, delta int) error
}

// Matcher scans lost items for candidates matching a new found item.
type Matcher interface {
	MatchFoundItem(ctx context.Context, item *Item) (int, error)
}

type Handler struct {
	repo    *Repository
	gate    TimeoutGate
	stats   StatsRecorder
	matcher Matcher
}

func NewHandler(repo *Repository, gate TimeoutGate, stats StatsRecorder, matcher Matcher) *Handler {
	return &Handler{repo: repo, gate: gate, stats: stats, matcher: matcher}
}

// Create godoc
// @Summary Report a found or lost item
// @Description Creates a listing. Posting a found item triggers a scan of
// @Description unclaimed lost items and notifies owners of likely matches.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(found, lost)
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Account timed out"
// @Failure 422 {object} response.ErrorResponse
// @Router /items/{kind} [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	kind, err := ParseKind(c.Param("kind"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := h.gate.AssertNotTimedOut(c.Request.Context(), userID); err != nil {
		response.DomainError(c, err)
		return
	}

	item, err := h.repo.Create(c.Request.Context(), kind, userID, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	if kind == KindFound {
		if err := h.stats.IncrementFoundItems(c.Request.Context(), userID, 1); err != nil {
			logger.Error("failed to bump foundItems for user %s: %v", userID, err)
		}

		// The item is committed at this point; match failures must not
		// surface as a creation failure.
		if matched, err := h.matcher.MatchFoundItem(c.Request.Context(), item); err != nil {
			logger.Error("match scan for item %s completed with errors (%d notified): %v",
				item.ID.Hex(), matched, err)
		}
	}

	response.Created(c, item)
}

// Get godoc
// @Summary Get an item by ID
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(found, lost)
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{kind}/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	kind, err := ParseKind(c.Param("kind"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, item)
}

// List godoc
// @Summary List items
// @Description Filter by owner, claim status or category overlap.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(found, lost)
// @Param owner query string false "Owner user ID, or \"me\""
// @Param unclaimedOnly query bool false "Only unclaimed items"
// @Param categories query string false "Comma-separated category filter"
// @Param limit query int false "Maximum results (default 50, max 100)"
// @Success 200 {object} response.SuccessResponse
// @Router /items/{kind} [get]
func (h *Handler) List(c *gin.Context) {
	kind, err := ParseKind(c.Param("kind"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	ctx := c.Request.Context()

	if owner := c.Query("owner"); owner != "" {
		if owner == "me" {
			owner = c.GetString("userID")
		}
		list, err := h.repo.ListByOwner(ctx, kind, owner)
		if err != nil {
			response.DomainError(c, err)
			return
		}
		response.Success(c, list)
		return
	}

	if raw := c.Query("categories"); raw != "" {
		categories := strings.Split(raw, ",")
		unclaimedOnly, _ := strconv.ParseBool(c.Query("unclaimedOnly"))
		list, err := h.repo.ListByCategoryOverlap(ctx, kind, categories, unclaimedOnly)
		if err != nil {
			response.DomainError(c, err)
			return
		}
		response.Success(c, list)
		return
	}

	if unclaimedOnly, _ := strconv.ParseBool(c.Query("unclaimedOnly")); unclaimedOnly {
		list, err := h.repo.ListUnclaimed(ctx, kind)
		if err != nil {
			response.DomainError(c, err)
			return
		}
		response.Success(c, list)
		return
	}

	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	list, err := h.repo.List(ctx, kind, limit)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, list)
}

// Update godoc
// @Summary Update an item
// @Description Only the item's owner can edit it. Editing never re-triggers
// @Description the match scan.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(found, lost)
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Fields to update"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{kind}/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	kind, err := ParseKind(c.Param("kind"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateUpdateItem(&req); err != nil {
		response.DomainError(c, err)
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	if existing.OwnerID != c.GetString("userID") {
		response.Forbidden(c, "Only the item's owner can edit it")
		return
	}

	patch := bson.M{}
	if req.ItemName != nil {
		patch["itemName"] = *req.ItemName
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Categories != nil {
		patch["categories"] = req.Categories
	}
	if req.Location != nil {
		patch["location"] = req.Location
	}
	if req.ClearLocation {
		patch["location"] = nil
	}
	if req.Images != nil {
		patch["images"] = req.Images
	}

	if len(patch) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	item, err := h.repo.Update(c.Request.Context(), kind, c.Param("id"), patch)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, item)
}

// Delete godoc
// @Summary Delete an item
// @Description Owners delete their own items; admins can delete any.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(found, lost)
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{kind}/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	kind, err := ParseKind(c.Param("kind"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	if existing.OwnerID != c.GetString("userID") && c.GetString("role") != "admin" {
		response.Forbidden(c, "Only the item's owner can delete it")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, map[string]string{"message": "Item deleted"})
}
