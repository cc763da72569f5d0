package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

type reviewService struct {
	reviewRepo   db.ReviewRepository
	auditService AuditService
	logger       *zap.Logger
}

// NewReviewService creates a ReviewService.
func NewReviewService(rr db.ReviewRepository, as AuditService, logger *zap.Logger) ReviewService {
	return &reviewService{reviewRepo: rr, auditService: as, logger: logger}
}

func (s *reviewService) ListReviews(ctx context.Context, businessID string) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for '%s': %w", businessID, err)
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}
	return reviews, nil
}

// AddReview stores the review and folds its rating into the parent's
// running average. Repository handles both writes transactionally.
func (s *reviewService) AddReview(ctx context.Context, authorID, authorName, businessID string, req models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	review := &models.Review{
		AuthorID:   authorID,
		AuthorName: authorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if _, err := s.reviewRepo.CreateWithAggregate(ctx, businessID, review); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrBusinessNotFound, businessID)
		}
		return nil, fmt.Errorf("failed to add review for '%s': %w", businessID, err)
	}

	if s.auditService != nil {
		entry := models.AuditLog{
			UserID:     authorID,
			Action:     "REVIEW_ADD",
			TargetType: "BUSINESS",
			TargetID:   businessID,
			Details:    map[string]interface{}{"rating": req.Rating},
		}
		if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
			s.logger.Warn("failed to write audit log", zap.String("action", "REVIEW_ADD"), zap.Error(err))
		}
	}
	return review, nil
}
