package listing

import (
	"tolet/errs"
	"tolet/models"
	"tolet/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the input, persists a new listing owned by ownerID and
// returns it with the owner populated. New listings are available by default.
func (s *DefaultListingService) Create(ownerID string, input models.ListingInput) (*models.Listing, error) {
	logger := utils.GetLogger()

	newListing := models.Listing{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		IsAvailable: true,
	}
	input.ApplyTo(&newListing)

	if err := newListing.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(&newListing); err != nil {
		logger.Error("Failed to create listing", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}

	s.notifyOwner(&newListing)

	return s.GetByID(newListing.ID)
}

// Update applies the recognized patch fields after existence and ownership
// checks, re-validates, persists and returns the updated listing.
func (s *DefaultListingService) Update(id, requesterID string, patch models.ListingInput) (*models.Listing, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errs.New(errs.NotFound, "listing not found")
	}
	if existing.OwnerID != requesterID {
		return nil, errs.New(errs.Forbidden, "not authorized to update this listing")
	}

	patch.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(existing); err != nil {
		logger.Error("Failed to update listing", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a listing after existence and ownership checks. Wishlist
// entries referencing the listing are left in place; they are skipped when
// the wishlist is read.
func (s *DefaultListingService) Delete(id, requesterID string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.New(errs.NotFound, "listing not found")
	}
	if existing.OwnerID != requesterID {
		return errs.New(errs.Forbidden, "not authorized to delete this listing")
	}

	return s.Repo.Delete(id)
}

// notifyOwner sends the listing-created email in the background. Failures are
// logged and never surfaced to the caller.
func (s *DefaultListingService) notifyOwner(l *models.Listing) {
	if s.Mailer == nil {
		return
	}

	owner, err := s.Users.GetByID(l.OwnerID)
	if err != nil || owner == nil {
		utils.GetLogger().Warn("Skipping listing notification, owner lookup failed",
			zap.String("ownerID", l.OwnerID), zap.Error(err))
		return
	}

	go func(email, title string) {
		if err := s.Mailer.SendListingCreated(email, title); err != nil {
			utils.GetLogger().Warn("Failed to send listing notification",
				zap.String("email", email), zap.Error(err))
		}
	}(owner.Email, l.Title)
}
