package wishlistRepo

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

// MongoWishlistRepo implements WishlistRepository using MongoDB.
type MongoWishlistRepo struct {
	coll *mongo.Collection
}

// NewMongoWishlistRepo creates a new instance of WishlistRepository using MongoDB.
func NewMongoWishlistRepo() WishlistRepository {
	coll := database.DB().Collection("wishlists")
	repo := &MongoWishlistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique compound index that enforces at most one
// entry per (user, listing) pair.
func (r *MongoWishlistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "listingId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Add inserts a wishlist entry. The unique index rejects duplicates
// atomically, so concurrent adds for the same pair leave one entry and one
// Conflict error.
func (r *MongoWishlistRepo) Add(entry *models.WishlistEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.New(errs.Conflict, "listing already in wishlist")
		}
		return errs.Wrap(errs.Internal, "failed to add wishlist entry", err)
	}
	return nil
}

// Remove deletes the entry for the given (user, listing) pair.
func (r *MongoWishlistRepo) Remove(userID, listingID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "listingId": listingID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return errs.Wrap(errs.Internal, "failed to remove wishlist entry", err)
	}
	if result.DeletedCount == 0 {
		return errs.New(errs.NotFound, "listing not found in wishlist")
	}
	return nil
}

// ListByUser returns the user's wishlist entries.
func (r *MongoWishlistRepo) ListByUser(userID string) ([]models.WishlistEntry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to retrieve wishlist", err)
	}
	defer cursor.Close(ctx)

	var entries []models.WishlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to decode wishlist entries", err)
	}
	return entries, nil
}
