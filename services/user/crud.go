package user

import (
	"tolet/errs"
	"tolet/models"
	"tolet/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves an account by ID, excluding sensitive fields.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	projection := bson.M{"passwordHash": 0, "tokenHash": 0}
	usr, err := s.Repo.GetByIDWithProjection(userID, projection)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, errs.New(errs.NotFound, "user not found")
	}
	return usr, nil
}

// UpdateUser updates non-empty profile fields using a partial update.
func (s *DefaultUserService) UpdateUser(userID string, update models.UserUpdate) (*models.User, error) {
	logger := utils.GetLogger()

	set := bson.M{}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Phone != "" {
		set["phone"] = update.Phone
	}
	if update.Preferences != nil {
		set["preferences"] = update.Preferences
	}

	if len(set) == 0 {
		return nil, errs.New(errs.Validation, "no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(userID, set); err != nil {
		logger.Error("Failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return s.GetUserByID(userID)
}
