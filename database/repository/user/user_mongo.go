package userRepo

import (
	"context"
	"fmt"
	"time"

	"tolet/database"
	"tolet/errs"
	"tolet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.DB().Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a user by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errs.Wrap(errs.Internal, fmt.Sprintf("failed to fetch user with id %s", id), err)
	}
	return &user, nil
}

// GetByID retrieves a user by its unique ID (full document).
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errs.Wrap(errs.Internal, fmt.Sprintf("failed to fetch user with email %s", email), err)
	}
	return &user, nil
}

// Create inserts a new user document. The unique email index rejects
// duplicate registrations atomically.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.New(errs.Conflict, "a user with this email already exists")
		}
		return errs.Wrap(errs.Internal, "failed to create user", err)
	}
	return nil
}

// UpdateWithDocument applies a partial $set update to a user record.
func (r *MongoUserRepo) UpdateWithDocument(id string, set bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return errs.Wrap(errs.Internal, fmt.Sprintf("failed to update user with id %s", id), err)
	}
	if result.MatchedCount == 0 {
		return errs.Newf(errs.NotFound, "user with id %s not found", id)
	}
	return nil
}

// Delete removes a user document by its ID.
func (r *MongoUserRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errs.Wrap(errs.Internal, fmt.Sprintf("failed to delete user with id %s", id), err)
	}
	if result.DeletedCount == 0 {
		return errs.Newf(errs.NotFound, "user with id %s not found", id)
	}
	return nil
}

// GetPublicProfiles returns the public owner profiles for the given IDs.
func (r *MongoUserRepo) GetPublicProfiles(ids []string) (map[string]models.OwnerProfile, error) {
	if len(ids) == 0 {
		return map[string]models.OwnerProfile{}, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{
		"id":    1,
		"name":  1,
		"email": 1,
		"phone": 1,
	})
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to retrieve owner profiles", err)
	}
	defer cursor.Close(ctx)

	profiles := make(map[string]models.OwnerProfile, len(ids))
	for cursor.Next(ctx) {
		var p models.OwnerProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, errs.Wrap(errs.Internal, "failed to decode owner profile", err)
		}
		profiles[p.ID] = p
	}
	return profiles, nil
}
