package models

import "time"

// Feedback status values. Status is free-form; "resolved" is the only value
// with public-visibility significance.
const (
	FeedbackStatusPending  = "pending"
	FeedbackStatusResolved = "resolved"
)

// Feedback is a visitor submission. Only entries with status "resolved" and
// isPublic true are served by the public endpoint.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Rating    int       `bson:"rating" json:"rating"`
	Status    string    `bson:"status" json:"status,omitempty"`
	IsPublic  bool      `bson:"isPublic" json:"isPublic"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicView strips the fields withheld from the public testimonial listing.
func (f Feedback) PublicView() Feedback {
	return Feedback{
		ID:        f.ID,
		Name:      f.Name,
		Subject:   f.Subject,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt,
	}
}

// FeedbackInput is the unauthenticated submission payload.
type FeedbackInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	Rating  *int   `json:"rating"`
}
