// internal/handlers/listing/listing_handler.go
package listing

import (
	"net/http"

	"gari-service/internal/domain/listing"
	"gari-service/internal/middleware"
	"gari-service/internal/pkg/response"
	service "gari-service/internal/service/listing"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingService *service.ListingService
}

func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Home retrieves the landing-page previews
func (h *ListingHandler) Home(c *gin.Context) {
	result, err := h.listingService.Home(c.Request.Context())
	if err != nil {
		response.FromServiceError(c, "failed to load home", err)
		return
	}

	response.Success(c, http.StatusOK, "home retrieved", result)
}

// List retrieves the filtered listing collection. Malformed numeric
// filter values are treated as absent, never rejected.
func (h *ListingHandler) List(c *gin.Context) {
	filters := listing.ParseFilters(c.Request.URL.Query())
	h.list(c, &filters)
}

// ListNew retrieves the collection with car_type preset to "new"
func (h *ListingHandler) ListNew(c *gin.Context) {
	filters := listing.ParseFilters(c.Request.URL.Query())
	filters.CarType = listing.CarTypeNew
	h.list(c, &filters)
}

// ListReconditioned retrieves the collection with car_type preset to
// "reconditioned"
func (h *ListingHandler) ListReconditioned(c *gin.Context) {
	filters := listing.ParseFilters(c.Request.URL.Query())
	filters.CarType = listing.CarTypeReconditioned
	h.list(c, &filters)
}

func (h *ListingHandler) list(c *gin.Context, filters *listing.Filters) {
	result, err := h.listingService.List(c.Request.Context(), filters)
	if err != nil {
		response.FromServiceError(c, "failed to list listings", err)
		return
	}

	response.Success(c, http.StatusOK, "listings retrieved", result)
}

// Get retrieves a listing detail by slug
func (h *ListingHandler) Get(c *gin.Context) {
	result, err := h.listingService.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromServiceError(c, "listing not found", err)
		return
	}

	response.Success(c, http.StatusOK, "listing retrieved", result)
}

// Create posts a new listing; the caller becomes the seller
func (h *ListingHandler) Create(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	var req listing.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.listingService.Create(c.Request.Context(), sellerID, &req)
	if err != nil {
		response.FromServiceError(c, "failed to create listing", err)
		return
	}

	response.Success(c, http.StatusCreated, "listing created successfully", result)
}

// Update rewrites an owned listing
func (h *ListingHandler) Update(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	var req listing.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.listingService.Update(c.Request.Context(), sellerID, c.Param("slug"), &req)
	if err != nil {
		response.FromServiceError(c, "failed to update listing", err)
		return
	}

	response.Success(c, http.StatusOK, "listing updated successfully", result)
}

// MarkSold flags an owned listing as sold
func (h *ListingHandler) MarkSold(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	if err := h.listingService.MarkSold(c.Request.Context(), sellerID, c.Param("slug")); err != nil {
		response.FromServiceError(c, "failed to mark listing sold", err)
		return
	}

	response.Success(c, http.StatusOK, "listing marked as sold", nil)
}

// Delete removes an owned listing
func (h *ListingHandler) Delete(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	if err := h.listingService.Delete(c.Request.Context(), sellerID, c.Param("slug")); err != nil {
		response.FromServiceError(c, "failed to delete listing", err)
		return
	}

	response.Success(c, http.StatusOK, "listing deleted successfully", nil)
}

// MyListings retrieves the caller's own listings, sold included
func (h *ListingHandler) MyListings(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	listings, err := h.listingService.MyListings(c.Request.Context(), sellerID)
	if err != nil {
		response.FromServiceError(c, "failed to list your listings", err)
		return
	}

	response.Success(c, http.StatusOK, "listings retrieved", listings)
}
