package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

// CatalogHandler handles the service catalog endpoints. Listing is public;
// mutations apply to the authenticated owner's own catalog.
type CatalogHandler struct {
	catalogService core.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs core.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: cs, logger: logger}
}

// ListServices handles GET /businesses/:businessId/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	businessID := c.Param("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Business ID is required"})
		return
	}

	services, err := h.catalogService.ListServices(c.Request.Context(), businessID)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// AddService handles POST /profile/services.
func (h *CatalogHandler) AddService(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	service, err := h.catalogService.AddService(c.Request.Context(), ownerID, req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateService handles PATCH /profile/services/:serviceId.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	serviceID := c.Param("serviceId")

	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), ownerID, serviceID, req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService handles DELETE /profile/services/:serviceId.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	serviceID := c.Param("serviceId")

	if err := h.catalogService.DeleteService(c.Request.Context(), ownerID, serviceID); err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Service deleted successfully"})
}
