package listingRepo

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

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	coll := database.DB().Collection("listings")
	repo := &MongoListingRepo{coll: coll}

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
func (r *MongoListingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Text index backing the free-text search filter.
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "city", Value: "text"},
		}},
		// Compound index covering the common filter predicates.
		{Keys: bson.D{
			{Key: "city", Value: 1},
			{Key: "price", Value: 1},
			{Key: "propertyType", Value: 1},
			{Key: "isAvailable", Value: 1},
		}},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new listing document.
func (r *MongoListingRepo) Create(listing *models.Listing) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return errs.Wrap(errs.Internal, "failed to create listing", err)
	}
	return nil
}

// GetByID retrieves a listing by its unique ID. Returns (nil, nil) when absent.
func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errs.Wrap(errs.Internal, fmt.Sprintf("failed to fetch listing with id %s", id), err)
	}
	return &listing, nil
}

// Update replaces the stored fields of an existing listing document.
func (r *MongoListingRepo) Update(listing *models.Listing) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	listing.UpdatedAt = time.Now()
	filter := bson.M{"id": listing.ID}
	update := bson.M{"$set": listing}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return errs.Wrap(errs.Internal, fmt.Sprintf("failed to update listing with id %s", listing.ID), err)
	}
	if result.MatchedCount == 0 {
		return errs.Newf(errs.NotFound, "listing with id %s not found", listing.ID)
	}
	return nil
}

// Delete removes a listing document by its ID.
func (r *MongoListingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errs.Wrap(errs.Internal, fmt.Sprintf("failed to delete listing with id %s", id), err)
	}
	if result.DeletedCount == 0 {
		return errs.Newf(errs.NotFound, "listing with id %s not found", id)
	}
	return nil
}

// GetByIDs retrieves the listings with the given IDs.
func (r *MongoListingRepo) GetByIDs(ids []string) ([]models.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to retrieve listings", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to decode listings", err)
	}
	return listings, nil
}
