package wishlist

import (
	"tolet/errs"
	"tolet/models"
	"tolet/utils"

	"go.uber.org/zap"
)

// Add saves a listing to the user's wishlist. The uniqueness of the
// (user, listing) pair is enforced by the store, not by a check-then-insert.
func (s *DefaultWishlistService) Add(userID, listingID string) error {
	logger := utils.GetLogger()

	found, err := s.Listings.GetByID(listingID)
	if err != nil {
		logger.Error("Wishlist add: listing lookup failed", zap.String("listingID", listingID), zap.Error(err))
		return err
	}
	if found == nil {
		return errs.New(errs.NotFound, "listing not found")
	}

	entry := models.WishlistEntry{
		UserID:    userID,
		ListingID: listingID,
	}
	return s.Repo.Add(&entry)
}

// Remove deletes the user's wishlist entry for the listing.
func (s *DefaultWishlistService) Remove(userID, listingID string) error {
	return s.Repo.Remove(userID, listingID)
}

// List returns the listings saved by the user, owners populated. Deleting a
// listing does not cascade into the wishlist store, so entries that no longer
// resolve are skipped here instead of surfacing as gaps.
func (s *DefaultWishlistService) List(userID string) ([]models.Listing, error) {
	entries, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []models.Listing{}, nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ListingID)
	}

	found, err := s.Listings.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Listing, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	// Preserve the join store's insertion order.
	listings := make([]models.Listing, 0, len(entries))
	for _, e := range entries {
		if l, ok := byID[e.ListingID]; ok {
			listings = append(listings, l)
		}
	}

	if err := s.populateOwners(listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *DefaultWishlistService) populateOwners(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var ids []string
	for _, l := range listings {
		if !seen[l.OwnerID] {
			seen[l.OwnerID] = true
			ids = append(ids, l.OwnerID)
		}
	}

	profiles, err := s.Users.GetPublicProfiles(ids)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve wishlist owners", zap.Error(err))
		return err
	}

	for i := range listings {
		if p, ok := profiles[listings[i].OwnerID]; ok {
			owner := p
			listings[i].Owner = &owner
		}
	}
	return nil
}
