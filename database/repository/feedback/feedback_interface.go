package feedbackRepo

import "tolet/models"

// ListCriteria holds the filters for the authenticated feedback listing.
type ListCriteria struct {
	Status string // exact match; empty means no constraint
	Page   int    // 1-indexed; defaults to 1
	Limit  int    // defaults to 10
}

// FeedbackRepository defines methods for feedback data access.
type FeedbackRepository interface {
	// Create inserts a new feedback record.
	Create(feedback *models.Feedback) error
	// ListPublic returns up to limit resolved, public entries, newest first.
	ListPublic(limit int) ([]models.Feedback, error)
	// List returns the page of entries matching the criteria, newest first,
	// plus the total match count ignoring pagination.
	List(criteria ListCriteria) ([]models.Feedback, int64, error)
	// UpdateStatus sets status and/or visibility and returns the updated
	// record, or a NotFound error when absent.
	UpdateStatus(id string, status *string, isPublic *bool) (*models.Feedback, error)
}
