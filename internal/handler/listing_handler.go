package handler

import (
	"net/http"
	"strconv"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/middleware"
	"github.com/boilermarket/boilermarket-backend/internal/repository"
	"github.com/boilermarket/boilermarket-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ListingHandler handles listing endpoints
type ListingHandler struct {
	listingService service.ListingService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// ListListings browses available listings
//
// @Summary      Browse listings
// @Tags         listings
// @Param        keyword    query string false "search in title/description"
// @Param        category   query string false "category slug"
// @Param        condition  query string false "item condition"
// @Param        seller_id  query string false "filter by seller"
// @Param        min_price  query number false "minimum price"
// @Param        max_price  query number false "maximum price"
// @Param        page       query int    false "page number"
// @Param        limit      query int    false "page size"
// @Success      200 {object} common.APIResponse
// @Router       /listings [get]
func (h *ListingHandler) ListListings(c *gin.Context) {
	page, limit := parsePagination(c)
	params := &repository.ListingListParams{
		Keyword:   c.Query("keyword"),
		SellerID:  c.Query("seller_id"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      page,
		Limit:     limit,
	}

	if category := c.Query("category"); category != "" && category != "all" {
		cat := domain.ListingCategory(category)
		params.Category = &cat
	}
	if condition := c.Query("condition"); condition != "" && condition != "all" {
		cond := domain.ListingCondition(condition)
		params.Condition = &cond
	}
	if minPrice, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		params.MinPrice = &minPrice
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		params.MaxPrice = &maxPrice
	}

	listings, meta, err := h.listingService.ListListings(params)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch listings", err)
		return
	}

	common.SuccessResponse(c, listings, meta)
}

// GetListing handles GET /api/v1/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	id := c.Param("id")

	var viewerID *string
	if userID := middleware.GetUserID(c); userID != "" {
		viewerID = &userID
	}

	listing, err := h.listingService.GetListing(id, viewerID)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to fetch listing", err)
		return
	}

	common.SuccessResponse(c, listing, nil)
}

// CreateListing handles POST /api/v1/listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	listing, err := h.listingService.CreateListing(userID, &req)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to create listing", err)
		return
	}

	common.CreatedResponse(c, listing)
}

// UpdateListing handles PUT /api/v1/listings/:id
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req domain.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	listing, err := h.listingService.UpdateListing(id, userID, &req)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to update listing", err)
		return
	}

	common.SuccessResponse(c, listing, nil)
}

// DeleteListing handles DELETE /api/v1/listings/:id
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	if err := h.listingService.DeleteListing(id, userID); err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to delete listing", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMyListings handles GET /api/v1/me/listings
func (h *ListingHandler) ListMyListings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	page, limit := parsePagination(c)

	listings, meta, err := h.listingService.ListMyListings(userID, page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch listings", err)
		return
	}

	common.SuccessResponse(c, listings, meta)
}

// SetAvailability handles PATCH /api/v1/listings/:id/availability
// (mark sold / relist)
func (h *ListingHandler) SetAvailability(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.listingService.SetAvailability(id, userID, *req.IsAvailable); err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to update availability", err)
		return
	}

	c.Status(http.StatusNoContent)
}
