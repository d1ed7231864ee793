package routes

import (
	"net/http"
	"time"

	"tolet/handlers"
	"tolet/middleware"
	"tolet/models"
	"tolet/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/profile", hb.User.GetProfileHandler)
		api.PUT("/profile", hb.User.UpdateProfileHandler)
		api.DELETE("/logout", hb.User.LogoutUserHandler)
	}
}

// RegisterListingRoutes registers listing search, wishlist, and owner
// management endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		// Public browse endpoints.
		api.GET("", hb.Listing.SearchListingsHandler)

		// Wishlist endpoints require authentication. These are registered
		// before the :id route so the static /wishlist segment wins.
		wl := api.Group("/wishlist")
		wl.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		wl.POST("", hb.Wishlist.AddToWishlistHandler)
		wl.DELETE("/:listingId", hb.Wishlist.RemoveFromWishlistHandler)
		wl.GET("/user", hb.Wishlist.GetWishlistHandler)

		api.GET("/:id", hb.Listing.GetListingHandler)

		// Mutations require an authenticated owner.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleOwner))
		protected.POST("", hb.Listing.CreateListingHandler)
		protected.PUT("/:id", hb.Listing.UpdateListingHandler)
		protected.DELETE("/:id", hb.Listing.DeleteListingHandler)
	}
}

// RegisterFeedbackRoutes registers feedback submission and moderation
// endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedback")
	{
		api.POST("", hb.Feedback.SubmitFeedbackHandler)
		api.GET("/public", hb.Feedback.GetPublicFeedbackHandler)

		// Moderation endpoints require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/all", hb.Feedback.GetAllFeedbackHandler)
		protected.PUT("/:id/status", hb.Feedback.UpdateFeedbackStatusHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints. Skipped entirely
// when no storage backend is configured.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Storage == nil {
		return
	}
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/upload", hb.Storage.UploadFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
