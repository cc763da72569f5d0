package core

import (
	"context"
	"fmt"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

type portfolioService struct {
	portfolioRepo db.PortfolioRepository
}

// NewPortfolioService creates a PortfolioService.
func NewPortfolioService(pr db.PortfolioRepository) PortfolioService {
	return &portfolioService{portfolioRepo: pr}
}

func (s *portfolioService) ListPosts(ctx context.Context, businessID string) ([]*models.PortfolioPost, error) {
	posts, err := s.portfolioRepo.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio for '%s': %w", businessID, err)
	}
	if posts == nil {
		posts = []*models.PortfolioPost{}
	}
	return posts, nil
}

func (s *portfolioService) AddPost(ctx context.Context, ownerID string, req models.CreatePortfolioPostRequest) (*models.PortfolioPost, error) {
	post := &models.PortfolioPost{
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		ServiceID: req.ServiceID,
	}
	if _, err := s.portfolioRepo.Create(ctx, ownerID, post); err != nil {
		return nil, fmt.Errorf("failed to add portfolio post for '%s': %w", ownerID, err)
	}
	return post, nil
}

func (s *portfolioService) DeletePost(ctx context.Context, ownerID, postID string) error {
	if err := s.portfolioRepo.Delete(ctx, ownerID, postID); err != nil {
		return fmt.Errorf("failed to delete portfolio post '%s': %w", postID, err)
	}
	return nil
}
