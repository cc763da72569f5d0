package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

type fakeLeadRepo struct {
	leads []*models.Lead
	err   error
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *models.Lead) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	lead.ID = "lead-1"
	r.leads = append(r.leads, lead)
	return lead.ID, nil
}

func TestSubmitLead(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := &fakeNotifier{}
	svc := core.NewLeadService(repo, notifier)

	lead, err := svc.SubmitLead(context.Background(), models.CreateLeadRequest{
		BusinessID: "biz-1",
		Name:       "Carlos",
		Phone:      "+504 9999-9999",
		Message:    "Quiero una cita",
	})
	require.NoError(t, err)
	assert.Equal(t, "lead-1", lead.ID)
	assert.Len(t, repo.leads, 1)
	assert.Equal(t, []string{"Nuevo lead recibido"}, notifier.subjects)
}

func TestSubmitLeadStoreFailure(t *testing.T) {
	repo := &fakeLeadRepo{err: errors.New("write refused")}
	notifier := &fakeNotifier{}
	svc := core.NewLeadService(repo, notifier)

	_, err := svc.SubmitLead(context.Background(), models.CreateLeadRequest{Name: "Carlos"})
	require.Error(t, err)
	assert.Empty(t, notifier.subjects, "no notification on a failed write")
}

func TestSubmitLeadNilNotifier(t *testing.T) {
	svc := core.NewLeadService(&fakeLeadRepo{}, nil)

	lead, err := svc.SubmitLead(context.Background(), models.CreateLeadRequest{Name: "Carlos"})
	require.NoError(t, err)
	assert.NotNil(t, lead)
}
