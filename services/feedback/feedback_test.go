package feedback

import (
	"testing"

	feedbackRepo "tolet/database/repository/feedback"
	"tolet/errs"
	"tolet/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	created      []models.Feedback
	publicResult []models.Feedback
	publicCalls  int
	listResult   []models.Feedback
	listTotal    int64
	lastCriteria feedbackRepo.ListCriteria
}

func (f *fakeFeedbackRepo) Create(fb *models.Feedback) error {
	f.created = append(f.created, *fb)
	return nil
}

func (f *fakeFeedbackRepo) ListPublic(limit int) ([]models.Feedback, error) {
	f.publicCalls++
	if limit < len(f.publicResult) {
		return f.publicResult[:limit], nil
	}
	return f.publicResult, nil
}

func (f *fakeFeedbackRepo) List(criteria feedbackRepo.ListCriteria) ([]models.Feedback, int64, error) {
	f.lastCriteria = criteria
	return f.listResult, f.listTotal, nil
}

func (f *fakeFeedbackRepo) UpdateStatus(id string, status *string, isPublic *bool) (*models.Feedback, error) {
	for _, fb := range f.created {
		if fb.ID == id {
			if status != nil {
				fb.Status = *status
			}
			if isPublic != nil {
				fb.IsPublic = *isPublic
			}
			return &fb, nil
		}
	}
	return nil, errs.New(errs.NotFound, "feedback not found")
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func newTestCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func validFeedbackInput() models.FeedbackInput {
	return models.FeedbackInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Great platform",
		Message: "Found a flat within a week.",
	}
}

func TestSubmitDefaults(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := &DefaultFeedbackService{Repo: repo}

	fb, err := svc.Submit(validFeedbackInput())
	require.NoError(t, err)

	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, 5, fb.Rating)
	assert.Equal(t, models.FeedbackStatusPending, fb.Status)
	assert.False(t, fb.IsPublic)
	require.Len(t, repo.created, 1)
}

func TestSubmitExplicitRating(t *testing.T) {
	svc := &DefaultFeedbackService{Repo: &fakeFeedbackRepo{}}

	input := validFeedbackInput()
	input.Rating = intPtr(3)

	fb, err := svc.Submit(input)
	require.NoError(t, err)
	assert.Equal(t, 3, fb.Rating)
}

func TestListPublicStripsPrivateFields(t *testing.T) {
	repo := &fakeFeedbackRepo{
		publicResult: []models.Feedback{{
			ID:       "f1",
			Name:     "Ravi",
			Email:    "ravi@example.com",
			Subject:  "Great platform",
			Message:  "Found a flat within a week.",
			Rating:   5,
			Status:   models.FeedbackStatusResolved,
			IsPublic: true,
		}},
	}
	svc := &DefaultFeedbackService{Repo: repo}

	feedbacks, err := svc.ListPublic(10)
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)

	fb := feedbacks[0]
	assert.Equal(t, "Ravi", fb.Name)
	assert.Equal(t, 5, fb.Rating)
	assert.Empty(t, fb.Email)
	assert.Empty(t, fb.Status)
	assert.False(t, fb.IsPublic)
}

func TestListPublicDefaultsLimit(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := &DefaultFeedbackService{Repo: repo}

	feedbacks, err := svc.ListPublic(0)
	require.NoError(t, err)
	assert.Empty(t, feedbacks)
}

func TestListAllPaginationEnvelope(t *testing.T) {
	repo := &fakeFeedbackRepo{listTotal: 21}
	svc := &DefaultFeedbackService{Repo: repo}

	page, err := svc.ListAll("pending", 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, "pending", repo.lastCriteria.Status)
}

func TestListAllDefaults(t *testing.T) {
	repo := &fakeFeedbackRepo{listTotal: 4}
	svc := &DefaultFeedbackService{Repo: repo}

	page, err := svc.ListAll("", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Pages)
}

func TestSubmitRejectsOutOfRangeRating(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := &DefaultFeedbackService{Repo: repo}

	for _, rating := range []int{0, -3, 6, 42} {
		input := validFeedbackInput()
		input.Rating = intPtr(rating)

		_, err := svc.Submit(input)
		require.Error(t, err)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
		assert.Equal(t, "rating", errs.FieldOf(err))
	}
	assert.Empty(t, repo.created)
}

func TestSubmitAcceptsBoundaryRatings(t *testing.T) {
	svc := &DefaultFeedbackService{Repo: &fakeFeedbackRepo{}}

	for _, rating := range []int{1, 5} {
		input := validFeedbackInput()
		input.Rating = intPtr(rating)

		fb, err := svc.Submit(input)
		require.NoError(t, err)
		assert.Equal(t, rating, fb.Rating)
	}
}

func TestListPublicServesFromCache(t *testing.T) {
	repo := &fakeFeedbackRepo{
		publicResult: []models.Feedback{{ID: "f1", Name: "Ravi", Status: models.FeedbackStatusResolved, IsPublic: true}},
	}
	svc := &DefaultFeedbackService{Repo: repo, Cache: newTestCache(t)}

	first, err := svc.ListPublic(10)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListPublic(10)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, repo.publicCalls)
}

func TestModerationDropsCachedPublicPages(t *testing.T) {
	entry := models.Feedback{
		ID:       "f1",
		Name:     "Ravi",
		Subject:  "Great platform",
		Message:  "Found a flat within a week.",
		Rating:   5,
		Status:   models.FeedbackStatusResolved,
		IsPublic: true,
	}
	repo := &fakeFeedbackRepo{
		created:      []models.Feedback{entry},
		publicResult: []models.Feedback{entry},
	}
	svc := &DefaultFeedbackService{Repo: repo, Cache: newTestCache(t)}

	first, err := svc.ListPublic(10)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A moderator revokes the entry. The store stops matching it and the
	// cached page must not outlive the change.
	repo.publicResult = nil
	_, err = svc.UpdateStatus("f1", nil, boolPtr(false))
	require.NoError(t, err)

	after, err := svc.ListPublic(10)
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestModerationDropsCachedPagesForEveryLimit(t *testing.T) {
	entry := models.Feedback{ID: "f1", Name: "Ravi", Status: models.FeedbackStatusResolved, IsPublic: true}
	repo := &fakeFeedbackRepo{
		created:      []models.Feedback{entry},
		publicResult: []models.Feedback{entry},
	}
	svc := &DefaultFeedbackService{Repo: repo, Cache: newTestCache(t)}

	// Warm caches at two different limits.
	_, err := svc.ListPublic(5)
	require.NoError(t, err)
	_, err = svc.ListPublic(10)
	require.NoError(t, err)

	repo.publicResult = nil
	status := models.FeedbackStatusPending
	_, err = svc.UpdateStatus("f1", &status, nil)
	require.NoError(t, err)

	for _, limit := range []int{5, 10} {
		after, err := svc.ListPublic(limit)
		require.NoError(t, err)
		assert.Empty(t, after)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc := &DefaultFeedbackService{Repo: &fakeFeedbackRepo{}}

	status := models.FeedbackStatusResolved
	_, err := svc.UpdateStatus("missing", &status, nil)
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestUpdateStatusPartial(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := &DefaultFeedbackService{Repo: repo}

	fb, err := svc.Submit(validFeedbackInput())
	require.NoError(t, err)

	public := true
	updated, err := svc.UpdateStatus(fb.ID, nil, &public)
	require.NoError(t, err)

	assert.True(t, updated.IsPublic)
	assert.Equal(t, models.FeedbackStatusPending, updated.Status)
}
