package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

// PortfolioHandler handles the showcase post endpoints.
type PortfolioHandler struct {
	portfolioService core.PortfolioService
	logger           *zap.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(ps core.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps, logger: logger}
}

// ListPosts handles GET /businesses/:businessId/portfolio.
func (h *PortfolioHandler) ListPosts(c *gin.Context) {
	businessID := c.Param("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Business ID is required"})
		return
	}

	posts, err := h.portfolioService.ListPosts(c.Request.Context(), businessID)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// AddPost handles POST /profile/portfolio.
func (h *PortfolioHandler) AddPost(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreatePortfolioPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	post, err := h.portfolioService.AddPost(c.Request.Context(), ownerID, req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeletePost handles DELETE /profile/portfolio/:postId.
func (h *PortfolioHandler) DeletePost(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	postID := c.Param("postId")

	if err := h.portfolioService.DeletePost(c.Request.Context(), ownerID, postID); err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Portfolio post deleted successfully"})
}
