package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

const dayMillis = 24 * 60 * 60 * 1000

type trialService struct {
	planRepo db.PlanRepository
}

// NewTrialService creates a TrialService.
func NewTrialService(pr db.PlanRepository) TrialService {
	return &trialService{planRepo: pr}
}

// GetTrialStatusForUser derives status from the stored plan document;
// nothing derived is persisted.
func (s *trialService) GetTrialStatusForUser(ctx context.Context, userID string) (*models.TrialStatus, error) {
	doc, err := s.planRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrBusinessNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get plan for '%s': %w", userID, err)
	}
	status := ComputeTrialStatus(doc.PlanData, time.Now().UTC())
	return &status, nil
}

// ComputeTrialStatus is the pure derivation over a plan-data value.
// Day counts come from millisecond arithmetic on the stored start
// timestamp. A CRM override disables all trial gating regardless of
// dates.
func ComputeTrialStatus(plan models.PlanData, now time.Time) models.TrialStatus {
	status := models.TrialStatus{
		Plan:            plan.Plan,
		OverriddenByCRM: plan.OverriddenByCRM,
	}
	if plan.OverriddenByCRM {
		return status
	}
	if plan.Plan != models.PlanTrial && plan.Plan != "" {
		// Paid plans carry no trial window.
		return status
	}

	start, err := time.Parse(time.RFC3339, plan.TrialStartAt)
	if err != nil {
		// No usable start date; treat as not in trial rather than
		// locking the business out.
		return status
	}

	elapsedMillis := now.UnixMilli() - start.UnixMilli()
	daysUsed := int(elapsedMillis / dayMillis)
	if daysUsed < 0 {
		daysUsed = 0
	}

	status.DaysUsed = daysUsed
	status.DaysLeft = models.TrialDays - daysUsed
	if status.DaysLeft < 0 {
		status.DaysLeft = 0
	}
	status.IsExpired = daysUsed >= models.TrialDays
	status.IsInTrial = !status.IsExpired
	status.ShowReminderBanner = status.IsInTrial && status.DaysLeft <= 1
	return status
}
