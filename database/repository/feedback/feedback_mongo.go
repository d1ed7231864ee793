package feedbackRepo

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

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	coll := database.DB().Collection("feedback")
	repo := &MongoFeedbackRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "isPublic", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, feedback); err != nil {
		return errs.Wrap(errs.Internal, "failed to create feedback", err)
	}
	return nil
}

// ListPublic returns up to limit resolved, public entries, newest first,
// projected to the public fields.
func (r *MongoFeedbackRepo) ListPublic(limit int) ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if limit < 1 {
		limit = 10
	}

	filter := bson.M{
		"status":   models.FeedbackStatusResolved,
		"isPublic": true,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"id":        1,
			"name":      1,
			"subject":   1,
			"message":   1,
			"rating":    1,
			"createdAt": 1,
		})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to retrieve public feedback", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to decode feedback", err)
	}
	return feedbacks, nil
}

// List returns the page of entries matching the criteria plus the total count.
func (r *MongoFeedbackRepo) List(criteria ListCriteria) ([]models.Feedback, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Status != "" {
		filter["status"] = criteria.Status
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	limit := criteria.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errs.Wrap(errs.Internal, "failed to retrieve feedback", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, 0, errs.Wrap(errs.Internal, "failed to decode feedback", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errs.Wrap(errs.Internal, "failed to count feedback", err)
	}

	return feedbacks, total, nil
}

// UpdateStatus sets status and/or visibility and returns the updated record.
func (r *MongoFeedbackRepo) UpdateStatus(id string, status *string, isPublic *bool) (*models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if status != nil {
		set["status"] = *status
	}
	if isPublic != nil {
		set["isPublic"] = *isPublic
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Feedback
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.Newf(errs.NotFound, "feedback with id %s not found", id)
		}
		return nil, errs.Wrap(errs.Internal, fmt.Sprintf("failed to update feedback with id %s", id), err)
	}
	return &updated, nil
}
