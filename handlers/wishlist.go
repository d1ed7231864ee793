package handlers

import (
	"net/http"

	"tolet/services/wishlist"
	"tolet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WishlistHandler exposes the wishlist endpoints.
type WishlistHandler struct {
	Service wishlist.WishlistService
}

// NewWishlistHandler creates a WishlistHandler.
func NewWishlistHandler(svc wishlist.WishlistService) *WishlistHandler {
	return &WishlistHandler{Service: svc}
}

// AddToWishlistHandler handles POST /api/listings/wishlist.
func (h *WishlistHandler) AddToWishlistHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req struct {
		ListingID string `json:"listingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("Invalid wishlist add request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "listingId is required"})
		return
	}

	if err := h.Service.Add(userID, req.ListingID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist successfully"})
}

// RemoveFromWishlistHandler handles DELETE /api/listings/wishlist/:listingId.
func (h *WishlistHandler) RemoveFromWishlistHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	if err := h.Service.Remove(userID, c.Param("listingId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist successfully"})
}

// GetWishlistHandler handles GET /api/listings/wishlist/user.
func (h *WishlistHandler) GetWishlistHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	listings, err := h.Service.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}
