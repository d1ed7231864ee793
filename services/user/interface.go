package user

import (
	userRepo "tolet/database/repository/user"
	"tolet/models"
)

// UserService defines business logic for account operations.
type UserService interface {
	// Register validates the registration details and creates a new account.
	Register(req models.UserRegistration) (*AuthResponse, error)
	// Authenticate verifies credentials and returns a fresh token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves an account (safe view) by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdateUser updates the mutable profile fields.
	UpdateUser(userID string, update models.UserUpdate) (*models.User, error)
	// RevokeAuthToken invalidates the account's current token (logout).
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the account's ID, token, and public details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}
