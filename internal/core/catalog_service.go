package core

import (
	"context"
	"errors"
	"fmt"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

type catalogService struct {
	serviceRepo db.ServiceRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(sr db.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: sr}
}

func (s *catalogService) ListServices(ctx context.Context, businessID string) ([]*models.Service, error) {
	services, err := s.serviceRepo.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for '%s': %w", businessID, err)
	}
	if services == nil {
		services = []*models.Service{}
	}
	return services, nil
}

func (s *catalogService) AddService(ctx context.Context, ownerID string, req models.CreateServiceRequest) (*models.Service, error) {
	if len(req.Images) > models.MaxServiceImages {
		return nil, ErrTooManyImages
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	currency := req.Currency
	if currency == "" {
		currency = "HNL"
	}

	svc := &models.Service{
		Name:            req.Name,
		NameLocalized:   req.NameLocalized,
		Price:           req.Price,
		Currency:        currency,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Active:          active,
		Extra:           req.Extra,
		Images:          req.Images,
	}
	if _, err := s.serviceRepo.Create(ctx, ownerID, svc); err != nil {
		return nil, fmt.Errorf("failed to add service for '%s': %w", ownerID, err)
	}
	return svc, nil
}

func (s *catalogService) UpdateService(ctx context.Context, ownerID, serviceID string, req models.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, ownerID, serviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrServiceNotFound, serviceID)
		}
		return nil, fmt.Errorf("failed to load service '%s': %w", serviceID, err)
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.NameLocalized != nil {
		svc.NameLocalized = *req.NameLocalized
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Currency != nil {
		svc.Currency = *req.Currency
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if req.Extra != nil {
		svc.Extra = *req.Extra
	}
	if req.Images != nil {
		if len(*req.Images) > models.MaxServiceImages {
			return nil, ErrTooManyImages
		}
		svc.Images = *req.Images
	}

	if err := s.serviceRepo.Update(ctx, ownerID, svc); err != nil {
		return nil, fmt.Errorf("failed to update service '%s': %w", serviceID, err)
	}
	return svc, nil
}

func (s *catalogService) DeleteService(ctx context.Context, ownerID, serviceID string) error {
	if err := s.serviceRepo.Delete(ctx, ownerID, serviceID); err != nil {
		return fmt.Errorf("failed to delete service '%s': %w", serviceID, err)
	}
	return nil
}
