package core

import (
	"context"
	"fmt"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

type auditService struct {
	auditRepo db.AuditRepository
}

// NewAuditService creates an AuditService.
func NewAuditService(auditRepo db.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if err := s.auditRepo.Create(ctx, logEntry); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// WatchAuditLog streams appended entries until ctx is cancelled.
func (s *auditService) WatchAuditLog(ctx context.Context) (<-chan models.AuditLog, error) {
	feed, err := s.auditRepo.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start audit feed: %w", err)
	}
	return feed, nil
}
