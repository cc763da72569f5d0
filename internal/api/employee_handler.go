package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

// EmployeeHandler handles the team endpoints.
type EmployeeHandler struct {
	employeeService core.EmployeeService
	logger          *zap.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(es core.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{employeeService: es, logger: logger}
}

// ListEmployees handles GET /businesses/:businessId/employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	businessID := c.Param("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Business ID is required"})
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), businessID)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// AddEmployee handles POST /profile/employees.
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	employee, err := h.employeeService.AddEmployee(c.Request.Context(), ownerID, req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles PATCH /profile/employees/:employeeId.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	employeeID := c.Param("employeeId")

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), ownerID, employeeID, req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /profile/employees/:employeeId.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	employeeID := c.Param("employeeId")

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), ownerID, employeeID); err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Employee deleted successfully"})
}
