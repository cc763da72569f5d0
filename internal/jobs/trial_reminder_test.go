package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vecino-backend-go/internal/models"
)

// fakePlanRepo serves trial docs and applies the same inclusive window
// filter as the Firestore query, comparing RFC3339 strings lexically.
type fakePlanRepo struct {
	docs  []*models.BusinessDoc
	calls int
}

func (f *fakePlanRepo) Get(ctx context.Context, businessID string) (*models.BusinessDoc, error) {
	for _, d := range f.docs {
		if d.ID == businessID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) ListTrialsEndingBetween(ctx context.Context, from, until string) ([]*models.BusinessDoc, error) {
	f.calls++
	var out []*models.BusinessDoc
	for _, d := range f.docs {
		if d.PlanData.Plan != models.PlanTrial || d.PlanData.OverriddenByCRM {
			continue
		}
		if d.PlanData.TrialEndAt >= from && d.PlanData.TrialEndAt <= until {
			out = append(out, d)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	subjects []string
	metas    []map[string]string
}

func (r *recordingNotifier) NotifyAdmin(subject, body string, meta map[string]string) {
	r.subjects = append(r.subjects, subject)
	r.metas = append(r.metas, meta)
}

func trialDoc(id string, endAt time.Time) *models.BusinessDoc {
	return &models.BusinessDoc{
		ID: id,
		PlanData: models.PlanData{
			Plan:       models.PlanTrial,
			TrialEndAt: endAt.UTC().Format(time.RFC3339),
		},
	}
}

func TestSweepNotifiesTrialEndingWithinDay(t *testing.T) {
	repo := &fakePlanRepo{docs: []*models.BusinessDoc{
		trialDoc("biz-soon", time.Now().Add(6*time.Hour)),
	}}
	notifier := &recordingNotifier{}
	reminder := NewTrialReminder(repo, notifier, zap.NewNop())

	reminder.sweep()

	require.Len(t, notifier.subjects, 1)
	assert.Equal(t, "Prueba por vencer", notifier.subjects[0])
	assert.Equal(t, "biz-soon", notifier.metas[0]["businessId"])
}

func TestSweepIgnoresExpiredAndDistantTrials(t *testing.T) {
	repo := &fakePlanRepo{docs: []*models.BusinessDoc{
		trialDoc("biz-long-expired", time.Now().AddDate(0, -3, 0)),
		trialDoc("biz-just-expired", time.Now().Add(-time.Hour)),
		trialDoc("biz-far-out", time.Now().AddDate(0, 0, 3)),
	}}
	notifier := &recordingNotifier{}
	reminder := NewTrialReminder(repo, notifier, zap.NewNop())

	// Repeated sweeps must stay silent for trials outside the window, so
	// an expired trial is never re-notified day after day.
	reminder.sweep()
	reminder.sweep()

	assert.Equal(t, 2, repo.calls)
	assert.Empty(t, notifier.subjects)
}

func TestSweepSkipsCRMOverriddenTrials(t *testing.T) {
	doc := trialDoc("biz-crm", time.Now().Add(2*time.Hour))
	doc.PlanData.OverriddenByCRM = true
	repo := &fakePlanRepo{docs: []*models.BusinessDoc{doc}}
	notifier := &recordingNotifier{}
	reminder := NewTrialReminder(repo, notifier, zap.NewNop())

	reminder.sweep()

	assert.Empty(t, notifier.subjects)
}

func TestSweepWithNilNotifierOnlyLogs(t *testing.T) {
	repo := &fakePlanRepo{docs: []*models.BusinessDoc{
		trialDoc("biz-soon", time.Now().Add(6*time.Hour)),
	}}
	reminder := NewTrialReminder(repo, nil, zap.NewNop())

	assert.NotPanics(t, func() { reminder.sweep() })
}
