package models

import "time"

// WishlistEntry is a join record expressing a user's interest in a listing.
// The (userId, listingId) pair is unique across the collection.
type WishlistEntry struct {
	UserID    string    `bson:"userId" json:"userId"`
	ListingID string    `bson:"listingId" json:"listingId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
