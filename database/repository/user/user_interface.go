package userRepo

import (
	"tolet/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID, or (nil, nil) when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record. Returns a Conflict error when the
	// email is already registered.
	Create(user *models.User) error
	// UpdateWithDocument applies a partial $set update to a user record.
	UpdateWithDocument(id string, set bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetPublicProfiles returns the public owner profiles for the given IDs,
	// keyed by account ID.
	GetPublicProfiles(ids []string) (map[string]models.OwnerProfile, error)
}
