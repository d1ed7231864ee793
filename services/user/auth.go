package user

import (
	"context"

	"tolet/errs"
	"tolet/models"
	"tolet/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the registration details, creates the account and
// returns a signed token. Duplicate emails are rejected by the store's
// unique index.
func (s *DefaultUserService) Register(req models.UserRegistration) (*AuthResponse, error) {
	logger := utils.GetLogger()

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleOwner {
		return nil, errs.ValidationField("role", "role must be 'user' or 'owner'")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, errs.Wrap(errs.Internal, "registration failed, please try again", err)
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Phone:        req.Phone,
		Role:         role,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role)
	if err != nil {
		logger.Error("Register: failed to generate auth token", zap.Error(err))
		return nil, errs.Wrap(errs.Internal, "registration failed, please try again", err)
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		if errs.KindOf(err) != errs.Conflict {
			logger.Error("Register: failed to create user", zap.Error(err))
		}
		return nil, err
	}

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Email: userObj.Email,
		Phone: userObj.Phone,
		Role:  userObj.Role,
	}, nil
}

// Authenticate verifies credentials, rotates the stored token hash and
// returns a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, errs.Wrap(errs.Internal, "authentication failed, please try again", err)
	}
	if userRec == nil {
		return nil, errs.New(errs.Unauthenticated, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, errs.New(errs.Unauthenticated, "invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role)
	if err != nil {
		logger.Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, errs.Wrap(errs.Internal, "authentication failed, please try again", err)
	}

	if err := s.Repo.UpdateWithDocument(userRec.ID, bson.M{"tokenHash": utils.HashToken(token)}); err != nil {
		logger.Error("Authenticate: failed to rotate token hash", zap.Error(err))
		return nil, errs.Wrap(errs.Internal, "authentication failed, please try again", err)
	}

	// Drop any stale cache entry so the old token stops working immediately.
	s.clearAuthCache(userRec.ID)

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
		Phone: userRec.Phone,
		Role:  userRec.Role,
	}, nil
}

// RevokeAuthToken clears the account's token hash and auth cache entry.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateWithDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		utils.GetLogger().Error("Failed to revoke auth token", zap.String("userID", userID), zap.Error(err))
		return errs.Wrap(errs.Internal, "failed to logout, please try again", err)
	}
	s.clearAuthCache(userID)
	return nil
}

func (s *DefaultUserService) clearAuthCache(userID string) {
	authCache := utils.AuthCacheClient
	if authCache == nil {
		return
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
	}
}
