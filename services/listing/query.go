package listing

import (
	listingRepo "tolet/database/repository/listing"
	"tolet/errs"
	"tolet/models"
	"tolet/utils"

	"go.uber.org/zap"
)

// Search returns the matching page of available listings, newest first, with
// each owner's public profile attached.
func (s *DefaultListingService) Search(criteria listingRepo.SearchCriteria) (*SearchResult, error) {
	listings, total, err := s.Repo.Search(criteria)
	if err != nil {
		utils.GetLogger().Error("Listing search failed", zap.Error(err))
		return nil, err
	}

	if err := s.populateOwners(listings); err != nil {
		return nil, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	limit := criteria.Limit
	if limit < 1 {
		limit = 10
	}
	pages := int((total + int64(limit) - 1) / int64(limit))

	return &SearchResult{
		Listings: listings,
		Page:     page,
		Pages:    pages,
		Total:    total,
	}, nil
}

// GetByID retrieves a single listing with its owner populated.
func (s *DefaultListingService) GetByID(id string) (*models.Listing, error) {
	found, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errs.New(errs.NotFound, "listing not found")
	}

	one := []models.Listing{*found}
	if err := s.populateOwners(one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// populateOwners attaches each owner's public profile by batch lookup.
func (s *DefaultListingService) populateOwners(listings []models.Listing) error {
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
		utils.GetLogger().Error("Failed to resolve listing owners", zap.Error(err))
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
