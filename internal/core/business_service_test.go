package core_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/geo"
	"vecino-backend-go/internal/models"
)

// fakeBusinessRepo keeps both partitions and the plan doc in memory and
// applies merge maps the way the Firestore repository would.
type fakeBusinessRepo struct {
	pubs    map[string]*models.PublicBusiness
	privs   map[string]*models.PrivateBusiness
	plans   map[string]*models.BusinessDoc
	listErr error
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{
		pubs:  map[string]*models.PublicBusiness{},
		privs: map[string]*models.PrivateBusiness{},
		plans: map[string]*models.BusinessDoc{},
	}
}

func (r *fakeBusinessRepo) CreateProfile(_ context.Context, pub *models.PublicBusiness, priv *models.PrivateBusiness, plan *models.BusinessDoc) error {
	r.pubs[pub.ID] = pub
	r.privs[priv.ID] = priv
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakeBusinessRepo) GetPublic(_ context.Context, id string) (*models.PublicBusiness, error) {
	if pub, ok := r.pubs[id]; ok {
		return pub, nil
	}
	return nil, db.ErrNotFound
}

func (r *fakeBusinessRepo) GetPrivate(_ context.Context, id string) (*models.PrivateBusiness, error) {
	if priv, ok := r.privs[id]; ok {
		return priv, nil
	}
	return nil, db.ErrNotFound
}

func (r *fakeBusinessRepo) ListPublic(_ context.Context, countryCode string) ([]*models.PublicBusiness, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*models.PublicBusiness
	for _, pub := range r.pubs {
		if countryCode != "" && pub.Country != countryCode {
			continue
		}
		out = append(out, pub)
	}
	return out, nil
}

func (r *fakeBusinessRepo) UpdateProfile(_ context.Context, id string, pubFields, privFields map[string]interface{}) error {
	pub, ok := r.pubs[id]
	if !ok {
		return db.ErrNotFound
	}
	for key, value := range pubFields {
		switch key {
		case "businessName":
			pub.Name = value.(string)
		case "city":
			pub.City = value.(string)
		case "department":
			pub.Department = value.(string)
		case "country":
			pub.Country = value.(string)
		case "coverImage":
			pub.CoverImage = value.(string)
		case "location":
			pub.Location = value.(models.GeoPoint)
		}
	}
	priv := r.privs[id]
	for key, value := range privFields {
		switch key {
		case "images":
			priv.Images = value.([]string)
		case "address":
			priv.Address = value.(string)
		case "description":
			priv.Description = value.(string)
		}
	}
	return nil
}

type fakeAuditService struct {
	entries []models.AuditLog
}

func (a *fakeAuditService) CreateAuditLog(_ context.Context, entry models.AuditLog) error {
	a.entries = append(a.entries, entry)
	return nil
}

func (a *fakeAuditService) WatchAuditLog(context.Context) (<-chan models.AuditLog, error) {
	ch := make(chan models.AuditLog)
	close(ch)
	return ch, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(context.Context, string) (*models.User, error) { return nil, db.ErrNotFound }
func (fakeUserRepo) Create(context.Context, *models.User) error           { return nil }
func (fakeUserRepo) Update(context.Context, *models.User) error           { return nil }

type fakeNotifier struct {
	subjects []string
}

func (n *fakeNotifier) NotifyAdmin(subject, _ string, _ map[string]string) {
	n.subjects = append(n.subjects, subject)
}

// geocoderForTest answers every lookup with a fixed point and counts hits.
func geocoderForTest(t *testing.T, hits *int) *geo.Geocoder {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"15.5047","lon":"-88.0250"}]`))
	}))
	t.Cleanup(srv.Close)
	return geo.NewGeocoder(srv.URL, "test-agent", nil, zap.NewNop())
}

func newTestBusinessService(t *testing.T, repo *fakeBusinessRepo, hits *int) (core.BusinessService, *fakeAuditService, *fakeNotifier) {
	t.Helper()
	audit := &fakeAuditService{}
	notifier := &fakeNotifier{}
	svc := core.NewBusinessService(repo, fakeUserRepo{}, geocoderForTest(t, hits), audit, notifier, zap.NewNop())
	return svc, audit, notifier
}

func validCreateRequest() models.CreateProfileRequest {
	return models.CreateProfileRequest{
		Name:       "Barbería El Corte",
		Category:   "beauty",
		Modality:   models.ModalityInShop,
		City:       "San Pedro Sula",
		Department: "Cortés",
		Country:    "Honduras",
		Images:     []string{"first.jpg", "second.jpg"},
	}
}

func TestCreateProfile(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, audit, notifier := newTestBusinessService(t, repo, &hits)

	profile, err := svc.CreateProfile(context.Background(), "uid-1", validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "uid-1", profile.ID)
	assert.Equal(t, models.StatusActive, profile.Status)
	assert.Equal(t, "HN", profile.Country, "legacy country name normalized")
	assert.Equal(t, "first.jpg", profile.CoverImage, "cover defaults to the first image")
	assert.True(t, profile.Location.IsValid(), "geocoded location is set")
	assert.Positive(t, hits, "city/department trigger a geocoding lookup")

	// The plan doc opens a seven-day trial.
	plan := repo.plans["uid-1"]
	require.NotNil(t, plan)
	assert.Equal(t, models.PlanTrial, plan.PlanData.Plan)
	start, err := time.Parse(time.RFC3339, plan.PlanData.TrialStartAt)
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, plan.PlanData.TrialEndAt)
	require.NoError(t, err)
	assert.Equal(t, float64(models.TrialDays), end.Sub(start).Hours()/24)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "PROFILE_CREATE", audit.entries[0].Action)
	assert.Equal(t, []string{"Nuevo negocio registrado"}, notifier.subjects)
}

func TestCreateProfileExactLocationWins(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	req := validCreateRequest()
	req.Location = &models.GeoPoint{Lat: 14.5, Lng: -87.5}

	profile, err := svc.CreateProfile(context.Background(), "uid-1", req)
	require.NoError(t, err)
	assert.Equal(t, models.GeoPoint{Lat: 14.5, Lng: -87.5}, profile.Location)
	assert.Zero(t, hits, "exact coordinates skip the geocoder")
}

func TestCreateProfileExplicitCoverPreserved(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	req := validCreateRequest()
	req.CoverImage = "chosen.jpg"

	profile, err := svc.CreateProfile(context.Background(), "uid-1", req)
	require.NoError(t, err)
	assert.Equal(t, "chosen.jpg", profile.CoverImage)
}

func TestCreateProfileMissingRequiredFields(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	req := validCreateRequest()
	req.Category = "  "

	_, err := svc.CreateProfile(context.Background(), "uid-1", req)
	assert.ErrorIs(t, err, core.ErrMissingRequiredFields)
}

func TestCreateProfileDuplicate(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	_, err := svc.CreateProfile(context.Background(), "uid-1", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.CreateProfile(context.Background(), "uid-1", validCreateRequest())
	assert.ErrorIs(t, err, core.ErrProfileExists)
}

func TestGetProfileToleratesMissingPrivatePartition(t *testing.T) {
	repo := newFakeBusinessRepo()
	repo.pubs["uid-1"] = &models.PublicBusiness{ID: "uid-1", Name: "Solo Público"}
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	profile, err := svc.GetProfile(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Solo Público", profile.Name)
	assert.Empty(t, profile.ContactEmail)

	_, err = svc.GetProfile(context.Background(), "uid-missing")
	assert.ErrorIs(t, err, core.ErrProfileNotFound)
}

func TestUpdateProfileImagesPromoteCover(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)
	_, err := svc.CreateProfile(context.Background(), "uid-1", validCreateRequest())
	require.NoError(t, err)

	images := []string{"new-first.jpg", "new-second.jpg"}
	profile, err := svc.UpdateProfile(context.Background(), "uid-1", models.ProfilePatch{Images: &images})
	require.NoError(t, err)
	assert.Equal(t, "new-first.jpg", profile.CoverImage)
	assert.Equal(t, images, profile.Images)
}

func TestUpdateProfileExplicitCoverNotOverridden(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)
	_, err := svc.CreateProfile(context.Background(), "uid-1", validCreateRequest())
	require.NoError(t, err)

	images := []string{"gallery.jpg"}
	cover := "explicit.jpg"
	profile, err := svc.UpdateProfile(context.Background(), "uid-1", models.ProfilePatch{
		Images:     &images,
		CoverImage: &cover,
	})
	require.NoError(t, err)
	assert.Equal(t, "explicit.jpg", profile.CoverImage)
}

func TestUpdateProfileGeocodesOnlyOnLocationChange(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)
	_, err := svc.CreateProfile(context.Background(), "uid-1", validCreateRequest())
	require.NoError(t, err)
	hitsAfterCreate := hits

	// Renaming does not touch the geocoder.
	name := "Barbería Renombrada"
	_, err = svc.UpdateProfile(context.Background(), "uid-1", models.ProfilePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, hitsAfterCreate, hits)

	// Changing the city does.
	city := "La Ceiba"
	_, err = svc.UpdateProfile(context.Background(), "uid-1", models.ProfilePatch{City: &city})
	require.NoError(t, err)
	assert.Greater(t, hits, hitsAfterCreate)
}

func TestUpdateProfileExactLocationSkipsGeocoder(t *testing.T) {
	repo := newFakeBusinessRepo()
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)
	_, err := svc.CreateProfile(context.Background(), "uid-1", validCreateRequest())
	require.NoError(t, err)
	hitsAfterCreate := hits

	city := "La Ceiba"
	pin := models.GeoPoint{Lat: 15.78, Lng: -86.79}
	profile, err := svc.UpdateProfile(context.Background(), "uid-1", models.ProfilePatch{
		City:     &city,
		Location: &pin,
	})
	require.NoError(t, err)
	assert.Equal(t, pin, profile.Location)
	assert.Equal(t, hitsAfterCreate, hits)
}

func TestGetPublicBusinessesFiltersAndNormalizes(t *testing.T) {
	repo := newFakeBusinessRepo()
	repo.pubs["ok"] = &models.PublicBusiness{
		ID: "ok", Name: "Visible", Status: models.StatusActive,
		Country: "HN", Department: "Atlántida",
	}
	repo.pubs["suspended"] = &models.PublicBusiness{
		ID: "suspended", Name: "Oculto", Status: models.StatusSuspended, Country: "HN",
	}
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	listing, err := svc.GetPublicBusinesses(context.Background(), "HN")
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "ok", listing[0].ID)
	// Zero coordinates were replaced with the department centroid.
	assert.InDelta(t, 15.6680, listing[0].Location.Lat, 0.0001)
}

func TestGetPublicBusinessesErrorDegradesToEmpty(t *testing.T) {
	repo := newFakeBusinessRepo()
	repo.listErr = errors.New("backend down")
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	listing, err := svc.GetPublicBusinesses(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, listing)
	assert.Empty(t, listing)
}

func TestGetPublicBusinessSuspendedHidden(t *testing.T) {
	repo := newFakeBusinessRepo()
	repo.pubs["uid-1"] = &models.PublicBusiness{ID: "uid-1", Status: models.StatusSuspended}
	var hits int
	svc, _, _ := newTestBusinessService(t, repo, &hits)

	_, err := svc.GetPublicBusiness(context.Background(), "uid-1")
	assert.ErrorIs(t, err, core.ErrBusinessNotFound)

	_, err = svc.GetPublicBusiness(context.Background(), "uid-404")
	assert.ErrorIs(t, err, core.ErrBusinessNotFound)
}
