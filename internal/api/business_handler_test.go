package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

type stubBusinessService struct {
	listing []*models.PublicBusiness
	profile *models.BusinessProfile
	err     error
}

func (s *stubBusinessService) CreateProfile(_ context.Context, userID string, _ models.CreateProfileRequest) (*models.BusinessProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BusinessProfile{ID: userID}, nil
}

func (s *stubBusinessService) GetProfile(context.Context, string) (*models.BusinessProfile, error) {
	return s.profile, s.err
}

func (s *stubBusinessService) UpdateProfile(context.Context, string, models.ProfilePatch) (*models.BusinessProfile, error) {
	return s.profile, s.err
}

func (s *stubBusinessService) GetPublicBusinesses(context.Context, string) ([]*models.PublicBusiness, error) {
	return s.listing, s.err
}

func (s *stubBusinessService) GetPublicBusiness(_ context.Context, id string) (*models.PublicBusiness, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, b := range s.listing {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", core.ErrBusinessNotFound, id)
}

func newTestRouter(svc core.BusinessService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewBusinessHandler(svc, nil, zap.NewNop())
	router := gin.New()
	router.GET("/api/v1/businesses", handler.ListBusinesses)
	router.GET("/api/v1/businesses/:businessId", handler.GetBusiness)
	router.POST("/api/v1/profile", func(c *gin.Context) {
		c.Set("userID", "uid-1")
		handler.CreateProfile(c)
	})
	return router
}

func TestListBusinessesWithSearch(t *testing.T) {
	svc := &stubBusinessService{listing: []*models.PublicBusiness{
		{ID: "a", Name: "Barbería El Corte", Category: "beauty"},
		{ID: "b", Name: "Taller Méndez", Category: "automotive"},
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses?q=corte", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.PublicBusiness
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestGetBusinessNotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(&stubBusinessService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "business not found")
}

func TestCreateProfileValidation(t *testing.T) {
	router := newTestRouter(&stubBusinessService{})

	// Binding rejects a payload without the three required fields.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile", strings.NewReader(`{"city":"Tela"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A complete payload creates.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/profile",
		strings.NewReader(`{"businessName":"Barbería","category":"beauty","modality":"in_shop"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateProfileConflictMapsTo409(t *testing.T) {
	router := newTestRouter(&stubBusinessService{err: core.ErrProfileExists})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile",
		strings.NewReader(`{"businessName":"Barbería","category":"beauty","modality":"in_shop"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMapCoreErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{core.ErrProfileNotFound, http.StatusNotFound},
		{core.ErrServiceNotFound, http.StatusNotFound},
		{core.ErrMissingRequiredFields, http.StatusBadRequest},
		{core.ErrInvalidRating, http.StatusBadRequest},
		{core.ErrTooManyImages, http.StatusBadRequest},
		{core.ErrProfileExists, http.StatusConflict},
		{core.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", core.ErrBusinessNotFound), http.StatusNotFound},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	gin.SetMode(gin.TestMode)
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		mapCoreErrorToStatus(c, zap.NewNop(), tc.err)
		assert.Equal(t, tc.want, w.Code, "error %v", tc.err)
	}
}
