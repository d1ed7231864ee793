package wishlist

import (
	listingRepo "tolet/database/repository/listing"
	userRepo "tolet/database/repository/user"
	wishlistRepo "tolet/database/repository/wishlist"
	"tolet/models"
)

// WishlistService defines business logic for wishlist operations.
type WishlistService interface {
	// Add saves a listing to the user's wishlist. Fails with NotFound when
	// the listing does not exist and with Conflict on a duplicate pair.
	Add(userID, listingID string) error
	// Remove deletes the entry; fails with NotFound when absent.
	Remove(userID, listingID string) error
	// List returns every listing referenced by the user's wishlist entries,
	// owners populated. Entries whose listing was deleted are skipped.
	List(userID string) ([]models.Listing, error)
}

// DefaultWishlistService is the production implementation.
type DefaultWishlistService struct {
	Repo     wishlistRepo.WishlistRepository
	Listings listingRepo.ListingRepository
	Users    userRepo.UserRepository
}
