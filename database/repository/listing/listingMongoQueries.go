// File: database/repository/listing/listingMongoQueries.go
package listingRepo

import (
	"time"

	"tolet/errs"
	"tolet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// normalizePaging applies the pagination defaults and returns skip/limit.
// Pages are 1-indexed.
func normalizePaging(page, limit int) (skip int64, lim int64) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return int64((page - 1) * limit), int64(limit)
}

// buildSearchFilter translates criteria into a Mongo filter document. Every
// search is implicitly restricted to available listings; absent criteria add
// no constraint. Contradictory price bounds produce a filter that matches
// nothing rather than an error.
func buildSearchFilter(c SearchCriteria) bson.M {
	filter := bson.M{"isAvailable": true}

	if c.City != "" {
		filter["city"] = bson.M{"$regex": primitive.Regex{Pattern: c.City, Options: "i"}}
	}
	if c.PropertyType != "" {
		filter["propertyType"] = c.PropertyType
	}
	if c.Bedrooms != nil {
		filter["bedrooms"] = *c.Bedrooms
	}
	if c.Bathrooms != nil {
		filter["bathrooms"] = *c.Bathrooms
	}
	if c.Featured {
		filter["isFeatured"] = true
	}
	if c.OwnerID != "" {
		filter["ownerId"] = c.OwnerID
	}

	if c.MinPrice != nil || c.MaxPrice != nil {
		price := bson.M{}
		if c.MinPrice != nil {
			price["$gte"] = *c.MinPrice
		}
		if c.MaxPrice != nil {
			price["$lte"] = *c.MaxPrice
		}
		filter["price"] = price
	}

	if c.Search != "" {
		filter["$text"] = bson.M{"$search": c.Search}
	}

	return filter
}

// Search returns the requested page of matching listings sorted by creation
// time descending, plus the total match count ignoring pagination.
func (r *MongoListingRepo) Search(criteria SearchCriteria) ([]models.Listing, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := buildSearchFilter(criteria)
	skip, limit := normalizePaging(criteria.Page, criteria.Limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errs.Wrap(errs.Internal, "listing search failed", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, errs.Wrap(errs.Internal, "failed to decode listings", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errs.Wrap(errs.Internal, "failed to count listings", err)
	}

	return listings, total, nil
}
