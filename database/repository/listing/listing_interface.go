package listingRepo

import "tolet/models"

// SearchCriteria holds the optional filters for a listing search. Nil pointer
// fields and empty strings mean "no constraint". Availability is implicit:
// every search only matches listings with isAvailable true.
type SearchCriteria struct {
	City         string   // substring, case-insensitive
	PropertyType string   // exact enum match, no coercion
	Bedrooms     *int     // exact
	Bathrooms    *int     // exact
	MinPrice     *float64 // inclusive lower bound
	MaxPrice     *float64 // inclusive upper bound
	Featured     bool     // filters to featured listings only when true
	OwnerID      string   // exact
	Search       string   // free text against the text index
	Page         int      // 1-indexed; defaults to 1
	Limit        int      // defaults to 10
}

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// Create inserts a new listing record.
	Create(listing *models.Listing) error
	// GetByID retrieves a listing by its unique ID, or (nil, nil) when absent.
	GetByID(id string) (*models.Listing, error)
	// Update replaces the stored fields of an existing listing.
	Update(listing *models.Listing) error
	// Delete removes a listing record by its ID.
	Delete(id string) error
	// Search returns the page of listings matching the criteria, newest
	// first, along with the total match count ignoring pagination.
	Search(criteria SearchCriteria) ([]models.Listing, int64, error)
	// GetByIDs retrieves the listings with the given IDs; missing IDs are
	// silently skipped.
	GetByIDs(ids []string) ([]models.Listing, error)
}
