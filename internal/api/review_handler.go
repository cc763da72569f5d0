package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

// ReviewHandler handles the review endpoints. Listing is public; submitting
// a review requires an authenticated reviewer.
type ReviewHandler struct {
	reviewService core.ReviewService
	logger        *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(rs core.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: rs, logger: logger}
}

// ListReviews handles GET /businesses/:businessId/reviews.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	businessID := c.Param("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Business ID is required"})
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), businessID)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AddReview handles POST /businesses/:businessId/reviews.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	authorID, ok := requireUserID(c)
	if !ok {
		return
	}
	businessID := c.Param("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Business ID is required"})
		return
	}

	authorName := ""
	if name, exists := c.Get("userDisplayName"); exists {
		authorName, _ = name.(string)
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidRating.Error(), Details: err.Error()})
		return
	}

	review, err := h.reviewService.AddReview(c.Request.Context(), authorID, authorName, businessID, req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
