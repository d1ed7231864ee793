package listing

import (
	listingRepo "tolet/database/repository/listing"
	userRepo "tolet/database/repository/user"
	"tolet/models"
	"tolet/services/mailer"
)

// SearchResult is a page of listings plus the pagination envelope.
type SearchResult struct {
	Listings []models.Listing `json:"listings"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	Total    int64            `json:"total"`
}

// ListingService defines business logic for listing operations.
type ListingService interface {
	// Search returns the matching page of available listings with owners
	// populated, plus the total match count.
	Search(criteria listingRepo.SearchCriteria) (*SearchResult, error)
	// GetByID retrieves a single listing with its owner populated.
	GetByID(id string) (*models.Listing, error)
	// Create validates and persists a new listing owned by ownerID.
	Create(ownerID string, input models.ListingInput) (*models.Listing, error)
	// Update applies a patch to a listing after existence and ownership checks.
	Update(id, requesterID string, patch models.ListingInput) (*models.Listing, error)
	// Delete removes a listing after existence and ownership checks.
	Delete(id, requesterID string) error
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Repo   listingRepo.ListingRepository
	Users  userRepo.UserRepository
	Mailer mailer.Mailer // optional; nil disables notifications
}
