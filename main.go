// File: tolet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tolet/config"
	"tolet/database"
	feedbackRepoPkg "tolet/database/repository/feedback"
	listingRepoPkg "tolet/database/repository/listing"
	userRepoPkg "tolet/database/repository/user"
	wishlistRepoPkg "tolet/database/repository/wishlist"
	"tolet/handlers"
	"tolet/middleware"
	"tolet/routes"
	"tolet/services/feedback"
	"tolet/services/listing"
	"tolet/services/mailer"
	"tolet/services/storage"
	"tolet/services/user"
	"tolet/services/wishlist"
	"tolet/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	wishlistRepo := wishlistRepoPkg.NewMongoWishlistRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	listingService := &listing.DefaultListingService{
		Repo:   listingRepo,
		Users:  userRepo,
		Mailer: mailer.NewSMTPMailer(),
	}

	wishlistService := &wishlist.DefaultWishlistService{
		Repo:     wishlistRepo,
		Listings: listingRepo,
		Users:    userRepo,
	}

	feedbackService := &feedback.DefaultFeedbackService{
		Repo:  feedbackRepo,
		Cache: utils.CacheClient,
	}

	// Image storage is optional; the upload routes are skipped when no
	// Cloudinary URL is configured.
	var storageHandler *handlers.StorageHandler
	if config.AppConfig.CloudinaryURL != "" {
		storageService, err := storage.NewCloudinaryStorageService(config.AppConfig.CloudinaryURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
		}
		storageHandler = handlers.NewStorageHandler(storageService)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Listing:  handlers.NewListingHandler(listingService),
		Wishlist: handlers.NewWishlistHandler(wishlistService),
		Feedback: handlers.NewFeedbackHandler(feedbackService),
		User:     handlers.NewUserHandler(userService),
		Storage:  storageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	healthInterval := time.Duration(config.AppConfig.HealthCheckSec) * time.Second
	utils.StartHealthMonitor(healthInterval, utils.CacheClient, utils.AuthCacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
