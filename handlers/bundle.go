package handlers

import (
	userRepo "tolet/database/repository/user"
)

// HandlerBundle groups the handlers and shared dependencies passed to route
// registration.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's token-hash lookups.
	UserRepo userRepo.UserRepository

	Listing  *ListingHandler
	Wishlist *WishlistHandler
	Feedback *FeedbackHandler
	User     *UserHandler
	Storage  *StorageHandler // nil when no storage backend is configured
}
