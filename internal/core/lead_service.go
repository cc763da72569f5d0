package core

import (
	"context"
	"fmt"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

type leadService struct {
	leadRepo db.LeadRepository
	notifier AdminNotifier
}

// NewLeadService creates a LeadService. notifier may be nil.
func NewLeadService(lr db.LeadRepository, notifier AdminNotifier) LeadService {
	return &leadService{leadRepo: lr, notifier: notifier}
}

// SubmitLead stores the contact request and fires an admin notification.
// The notification is best effort; only the database write can fail the
// call.
func (s *leadService) SubmitLead(ctx context.Context, req models.CreateLeadRequest) (*models.Lead, error) {
	lead := &models.Lead{
		BusinessID: req.BusinessID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Source:     req.Source,
	}
	if _, err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to store lead: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyAdmin(
			"Nuevo lead recibido",
			fmt.Sprintf("%s dejó una solicitud de contacto.", lead.Name),
			map[string]string{"leadId": lead.ID, "businessId": lead.BusinessID},
		)
	}
	return lead, nil
}
