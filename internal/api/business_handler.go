package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

// BusinessHandler handles the public directory endpoints and the owner's
// profile endpoints.
type BusinessHandler struct {
	businessService core.BusinessService
	trialService    core.TrialService
	logger          *zap.Logger
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(bs core.BusinessService, ts core.TrialService, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{businessService: bs, trialService: ts, logger: logger}
}

// mapCoreErrorToStatus maps errors from the core services to HTTP status
// codes and an ErrorResponse body. Shared by every handler in this package.
func mapCoreErrorToStatus(c *gin.Context, logger *zap.Logger, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrProfileNotFound),
		errors.Is(err, core.ErrBusinessNotFound),
		errors.Is(err, core.ErrServiceNotFound),
		errors.Is(err, core.ErrEmployeeNotFound),
		errors.Is(err, core.ErrPostNotFound),
		errors.Is(err, core.ErrUserNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: err.Error()}
	case errors.Is(err, core.ErrMissingRequiredFields),
		errors.Is(err, core.ErrTooManyImages),
		errors.Is(err, core.ErrInvalidRating):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: err.Error()}
	case errors.Is(err, core.ErrProfileExists):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrProfileExists.Error()}
	case errors.Is(err, core.ErrStorageUnavailable):
		statusCode = http.StatusServiceUnavailable
		errResponse = ErrorResponse{Error: core.ErrStorageUnavailable.Error()}
	default:
		logger.Error("unhandled service error", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// requireUserID pulls the authenticated user's UID out of the Gin context.
// Returns false after writing a 401 when the auth middleware did not run.
func requireUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	return userID.(string), true
}

// ListBusinesses handles GET /businesses. Supports ?country= to scope the
// listing and ?q= for free-text search over the returned page.
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	country := c.Query("country")
	term := c.Query("q")

	businesses, err := h.businessService.GetPublicBusinesses(c.Request.Context(), country)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	if term != "" {
		businesses = core.FilterBySearch(businesses, term)
	}
	c.JSON(http.StatusOK, businesses)
}

// GetBusiness handles GET /businesses/:businessId.
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	businessID := c.Param("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Business ID is required"})
		return
	}

	business, err := h.businessService.GetPublicBusiness(c.Request.Context(), businessID)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

// CreateProfile handles POST /profile.
func (h *BusinessHandler) CreateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrMissingRequiredFields.Error(), Details: err.Error()})
		return
	}

	profile, err := h.businessService.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetProfile handles GET /profile.
func (h *BusinessHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.businessService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PATCH /profile.
func (h *BusinessHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	profile, err := h.businessService.UpdateProfile(c.Request.Context(), userID, patch)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetTrialStatus handles GET /profile/trial.
func (h *BusinessHandler) GetTrialStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	status, err := h.trialService.GetTrialStatusForUser(c.Request.Context(), userID)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
