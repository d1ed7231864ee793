package models

import "time"

// Account roles. Only owner accounts may create or mutate listings.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
)

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"`
	Preferences  []string  `bson:"preferences,omitempty" json:"preferences,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OwnerProfile is the owner's public profile attached to listing responses.
type OwnerProfile struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// UserRegistration is the signup payload.
type UserRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// UserUpdate carries the mutable profile fields.
type UserUpdate struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Preferences []string `json:"preferences"`
}
