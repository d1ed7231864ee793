package wishlistRepo

import "tolet/models"

// WishlistRepository defines methods for wishlist data access.
type WishlistRepository interface {
	// Add inserts a wishlist entry. Returns a Conflict error when an entry
	// for the same (user, listing) pair already exists; the unique index
	// makes concurrent duplicate inserts resolve to exactly one winner.
	Add(entry *models.WishlistEntry) error
	// Remove deletes the entry for the pair. Returns a NotFound error when
	// no such entry exists.
	Remove(userID, listingID string) error
	// ListByUser returns the user's wishlist entries in insertion order.
	ListByUser(userID string) ([]models.WishlistEntry, error)
}
