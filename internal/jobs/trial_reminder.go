// Package jobs holds the scheduled background work. The only job today is
// the trial reminder sweep; trial status itself stays computed on read.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/db"
)

// TrialReminder periodically finds businesses whose trial window is about
// to close and notifies the admin once per sweep.
type TrialReminder struct {
	planRepo db.PlanRepository
	notifier core.AdminNotifier
	logger   *zap.Logger
	cron     *cron.Cron
}

// NewTrialReminder creates the sweep. notifier may be nil, in which case
// the sweep only logs.
func NewTrialReminder(pr db.PlanRepository, notifier core.AdminNotifier, logger *zap.Logger) *TrialReminder {
	return &TrialReminder{planRepo: pr, notifier: notifier, logger: logger}
}

// Start registers the sweep under the given cron spec and starts the
// scheduler.
func (t *TrialReminder) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, t.sweep); err != nil {
		return fmt.Errorf("failed to schedule trial reminder: %w", err)
	}
	c.Start()
	t.cron = c
	t.logger.Info("trial reminder sweep scheduled", zap.String("spec", spec))
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (t *TrialReminder) Stop() {
	if t.cron != nil {
		<-t.cron.Stop().Done()
	}
}

func (t *TrialReminder) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	now := time.Now().UTC()
	from := now.Format(time.RFC3339)
	until := now.AddDate(0, 0, 1).Format(time.RFC3339)
	ending, err := t.planRepo.ListTrialsEndingBetween(ctx, from, until)
	if err != nil {
		t.logger.Error("trial reminder sweep failed", zap.Error(err))
		return
	}
	if len(ending) == 0 {
		return
	}

	t.logger.Info("trials ending within a day", zap.Int("count", len(ending)))
	if t.notifier == nil {
		return
	}
	for _, doc := range ending {
		t.notifier.NotifyAdmin(
			"Prueba por vencer",
			fmt.Sprintf("La prueba del negocio %s vence el %s.", doc.ID, doc.PlanData.TrialEndAt),
			map[string]string{"businessId": doc.ID},
		)
	}
}
