package core_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

// fakeReviewRepo mirrors the transactional repository: every insert updates
// the parent aggregate with NextAverage.
type fakeReviewRepo struct {
	parent  *models.PublicBusiness
	reviews []*models.Review
}

func (r *fakeReviewRepo) List(_ context.Context, _ string) ([]*models.Review, error) {
	return r.reviews, nil
}

func (r *fakeReviewRepo) CreateWithAggregate(_ context.Context, businessID string, review *models.Review) (string, error) {
	if r.parent == nil || r.parent.ID != businessID {
		return "", db.ErrNotFound
	}
	r.parent.Rating = models.NextAverage(r.parent.Rating, r.parent.ReviewCount, review.Rating)
	r.parent.ReviewCount++
	id := fmt.Sprintf("rev-%d", len(r.reviews)+1)
	review.ID = id
	r.reviews = append(r.reviews, review)
	return id, nil
}

func TestAddReviewUpdatesAggregate(t *testing.T) {
	repo := &fakeReviewRepo{parent: &models.PublicBusiness{ID: "biz-1", Rating: 4.0, ReviewCount: 2}}
	audit := &fakeAuditService{}
	svc := core.NewReviewService(repo, audit, zap.NewNop())

	review, err := svc.AddReview(context.Background(), "uid-9", "Ana", "biz-1", models.CreateReviewRequest{
		Rating:  5,
		Comment: "Excelente servicio",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", review.AuthorName)
	assert.Equal(t, 4.3, repo.parent.Rating)
	assert.Equal(t, 3, repo.parent.ReviewCount)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "REVIEW_ADD", audit.entries[0].Action)
}

func TestAddReviewInvalidRating(t *testing.T) {
	repo := &fakeReviewRepo{parent: &models.PublicBusiness{ID: "biz-1"}}
	svc := core.NewReviewService(repo, nil, zap.NewNop())

	_, err := svc.AddReview(context.Background(), "uid-9", "", "biz-1", models.CreateReviewRequest{Rating: 0})
	assert.ErrorIs(t, err, core.ErrInvalidRating)

	_, err = svc.AddReview(context.Background(), "uid-9", "", "biz-1", models.CreateReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, core.ErrInvalidRating)
}

func TestAddReviewUnknownBusiness(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := core.NewReviewService(repo, nil, zap.NewNop())

	_, err := svc.AddReview(context.Background(), "uid-9", "", "biz-404", models.CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, core.ErrBusinessNotFound)
}

func TestListReviewsNeverNil(t *testing.T) {
	svc := core.NewReviewService(&fakeReviewRepo{parent: &models.PublicBusiness{ID: "biz-1"}}, nil, zap.NewNop())

	reviews, err := svc.ListReviews(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
