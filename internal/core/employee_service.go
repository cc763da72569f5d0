package core

import (
	"context"
	"errors"
	"fmt"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/models"
)

type employeeService struct {
	employeeRepo db.EmployeeRepository
}

// NewEmployeeService creates an EmployeeService.
func NewEmployeeService(er db.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: er}
}

func (s *employeeService) ListEmployees(ctx context.Context, businessID string) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for '%s': %w", businessID, err)
	}
	if employees == nil {
		employees = []*models.Employee{}
	}
	return employees, nil
}

func (s *employeeService) AddEmployee(ctx context.Context, ownerID string, req models.CreateEmployeeRequest) (*models.Employee, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	emp := &models.Employee{
		Name:       req.Name,
		Role:       req.Role,
		Title:      req.Title,
		Active:     active,
		ServiceIDs: req.ServiceIDs,
		Schedule:   req.Schedule,
		PhotoURL:   req.PhotoURL,
	}
	if _, err := s.employeeRepo.Create(ctx, ownerID, emp); err != nil {
		return nil, fmt.Errorf("failed to add employee for '%s': %w", ownerID, err)
	}
	return emp, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, ownerID, employeeID string, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, ownerID, employeeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrEmployeeNotFound, employeeID)
		}
		return nil, fmt.Errorf("failed to load employee '%s': %w", employeeID, err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.Title != nil {
		emp.Title = *req.Title
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	if req.ServiceIDs != nil {
		emp.ServiceIDs = *req.ServiceIDs
	}
	if req.Schedule != nil {
		emp.Schedule = *req.Schedule
	}
	if req.PhotoURL != nil {
		emp.PhotoURL = *req.PhotoURL
	}

	if err := s.employeeRepo.Update(ctx, ownerID, emp); err != nil {
		return nil, fmt.Errorf("failed to update employee '%s': %w", employeeID, err)
	}
	return emp, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, ownerID, employeeID string) error {
	if err := s.employeeRepo.Delete(ctx, ownerID, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee '%s': %w", employeeID, err)
	}
	return nil
}
