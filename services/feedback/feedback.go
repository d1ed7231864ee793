package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	feedbackRepo "tolet/database/repository/feedback"
	"tolet/errs"
	"tolet/models"
	"tolet/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cached public testimonial pages, keyed by limit. Pages expire on their own
// and are dropped eagerly whenever moderation changes an entry, so a revoked
// entry is never served past the change.
const (
	publicCacheKeyPrefix = "feedback:public:"
	publicCacheTTL       = 60 * time.Second
)

// FeedbackPage is a page of feedback plus the pagination envelope.
type FeedbackPage struct {
	Feedbacks []models.Feedback `json:"feedbacks"`
	Page      int               `json:"page"`
	Pages     int               `json:"pages"`
	Total     int64             `json:"total"`
}

// FeedbackService defines business logic for feedback operations.
type FeedbackService interface {
	// Submit records a visitor submission; rating defaults to 5 when absent.
	Submit(input models.FeedbackInput) (*models.Feedback, error)
	// ListPublic returns up to limit resolved, public entries, newest first.
	ListPublic(limit int) ([]models.Feedback, error)
	// ListAll returns the authenticated moderation view.
	ListAll(status string, page, limit int) (*FeedbackPage, error)
	// UpdateStatus sets status and/or visibility on a record.
	UpdateStatus(id string, status *string, isPublic *bool) (*models.Feedback, error)
}

// DefaultFeedbackService is the production implementation.
type DefaultFeedbackService struct {
	Repo  feedbackRepo.FeedbackRepository
	Cache *redis.Client // optional; nil disables public-list caching
}

// Submit records a visitor submission. Submissions start pending and private.
func (s *DefaultFeedbackService) Submit(input models.FeedbackInput) (*models.Feedback, error) {
	rating := 5
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, errs.ValidationField("rating", "rating must be between 1 and 5")
		}
		rating = *input.Rating
	}

	fb := models.Feedback{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		Rating:   rating,
		Status:   models.FeedbackStatusPending,
		IsPublic: false,
	}

	if err := s.Repo.Create(&fb); err != nil {
		utils.GetLogger().Error("Failed to create feedback", zap.Error(err))
		return nil, err
	}
	return &fb, nil
}

// ListPublic returns the public testimonial view, served from the cache when
// a fresh page is available.
func (s *DefaultFeedbackService) ListPublic(limit int) ([]models.Feedback, error) {
	if limit < 1 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("%s%d", publicCacheKeyPrefix, limit)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(context.Background(), cacheKey).Result(); err == nil {
			var feedbacks []models.Feedback
			if json.Unmarshal([]byte(cached), &feedbacks) == nil {
				return feedbacks, nil
			}
		}
	}

	feedbacks, err := s.Repo.ListPublic(limit)
	if err != nil {
		return nil, err
	}

	public := make([]models.Feedback, 0, len(feedbacks))
	for _, fb := range feedbacks {
		public = append(public, fb.PublicView())
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(public); err == nil {
			_ = s.Cache.Set(context.Background(), cacheKey, payload, publicCacheTTL).Err()
		}
	}
	return public, nil
}

// ListAll returns the moderation view with the shared pagination contract.
func (s *DefaultFeedbackService) ListAll(status string, page, limit int) (*FeedbackPage, error) {
	feedbacks, total, err := s.Repo.List(feedbackRepo.ListCriteria{
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	pages := int((total + int64(limit) - 1) / int64(limit))

	return &FeedbackPage{
		Feedbacks: feedbacks,
		Page:      page,
		Pages:     pages,
		Total:     total,
	}, nil
}

// UpdateStatus sets status and/or visibility on a record. Status transitions
// are free-form. Cached public pages are dropped so the change is visible on
// the next read.
func (s *DefaultFeedbackService) UpdateStatus(id string, status *string, isPublic *bool) (*models.Feedback, error) {
	updated, err := s.Repo.UpdateStatus(id, status, isPublic)
	if err != nil {
		return nil, err
	}

	s.invalidatePublicCache()
	return updated, nil
}

// invalidatePublicCache deletes every cached public page. Failures are logged
// only; the pages still expire on their TTL.
func (s *DefaultFeedbackService) invalidatePublicCache() {
	if s.Cache == nil {
		return
	}

	ctx := context.Background()
	keys, err := s.Cache.Keys(ctx, publicCacheKeyPrefix+"*").Result()
	if err != nil {
		utils.GetLogger().Warn("Failed to scan public feedback cache", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate public feedback cache", zap.Error(err))
	}
}
