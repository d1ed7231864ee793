package handlers

import (
	"net/http"
	"strconv"

	listingRepo "tolet/database/repository/listing"
	"tolet/errs"
	"tolet/models"
	"tolet/services/listing"
	"tolet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes the listing endpoints.
type ListingHandler struct {
	Service listing.ListingService
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{Service: svc}
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string) (*int, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, errs.ValidationField(name, name+" must be an integer")
	}
	return &n, nil
}

// queryFloat parses an optional numeric query parameter.
func queryFloat(c *gin.Context, name string) (*float64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errs.ValidationField(name, name+" must be a number")
	}
	return &f, nil
}

// parseSearchCriteria maps the query parameters 1:1 onto the search filters.
// Absent parameters impose no constraint; malformed numeric parameters are
// rejected rather than dropped.
func parseSearchCriteria(c *gin.Context) (listingRepo.SearchCriteria, error) {
	criteria := listingRepo.SearchCriteria{
		City:         c.Query("city"),
		PropertyType: c.Query("propertyType"),
		OwnerID:      c.Query("owner"),
		Search:       c.Query("search"),
		Featured:     c.Query("featured") == "true",
	}

	var err error
	if criteria.Bedrooms, err = queryInt(c, "bedrooms"); err != nil {
		return criteria, err
	}
	if criteria.Bathrooms, err = queryInt(c, "bathrooms"); err != nil {
		return criteria, err
	}
	if criteria.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return criteria, err
	}
	if criteria.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return criteria, err
	}

	page, err := queryInt(c, "page")
	if err != nil {
		return criteria, err
	}
	if page != nil {
		criteria.Page = *page
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return criteria, err
	}
	if limit != nil {
		criteria.Limit = *limit
	}

	return criteria, nil
}

// SearchListingsHandler handles GET /api/listings.
func (h *ListingHandler) SearchListingsHandler(c *gin.Context) {
	criteria, err := parseSearchCriteria(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.Service.Search(criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	listings := result.Listings
	if listings == nil {
		listings = []models.Listing{}
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"pagination": gin.H{
			"current": result.Page,
			"pages":   result.Pages,
			"total":   result.Total,
		},
	})
}

// GetListingHandler handles GET /api/listings/:id.
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	found, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// CreateListingHandler handles POST /api/listings.
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	ownerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input models.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("Invalid create listing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := h.Service.Create(ownerID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"listing": created,
	})
}

// UpdateListingHandler handles PUT /api/listings/:id.
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	requesterID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var patch models.ListingInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn("Invalid update listing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updated, err := h.Service.Update(c.Param("id"), requesterID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": updated,
	})
}

// DeleteListingHandler handles DELETE /api/listings/:id.
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	if err := h.Service.Delete(c.Param("id"), requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}
