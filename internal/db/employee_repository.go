package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vecino-backend-go/internal/models"
)

const employeesSubcollection = "employees"

type firestoreEmployeeRepository struct {
	client *firestore.Client
}

// NewFirestoreEmployeeRepository creates a Firestore-backed
// EmployeeRepository over businesses_public/{id}/employees.
func NewFirestoreEmployeeRepository(client *firestore.Client) EmployeeRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for EmployeeRepository.")
	}
	return &firestoreEmployeeRepository{client: client}
}

func (r *firestoreEmployeeRepository) collection(businessID string) *firestore.CollectionRef {
	return r.client.Collection(publicCollection).Doc(businessID).Collection(employeesSubcollection)
}

func (r *firestoreEmployeeRepository) List(ctx context.Context, businessID string) ([]*models.Employee, error) {
	if businessID == "" {
		return nil, errors.New("businessID cannot be empty")
	}
	iter := r.collection(businessID).Documents(ctx)
	defer iter.Stop()

	var employees []*models.Employee
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate employees for '%s': %w", businessID, err)
		}

		var emp models.Employee
		if err := doc.DataTo(&emp); err != nil {
			log.Printf("Error decoding employee (ID: %s) for '%s': %v. Skipping.", doc.Ref.ID, businessID, err)
			continue
		}
		emp.ID = doc.Ref.ID
		employees = append(employees, &emp)
	}
	return employees, nil
}

func (r *firestoreEmployeeRepository) GetByID(ctx context.Context, businessID, employeeID string) (*models.Employee, error) {
	if businessID == "" || employeeID == "" {
		return nil, errors.New("businessID and employeeID cannot be empty")
	}
	docSnap, err := r.collection(businessID).Doc(employeeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("employee '%s' not found: %w", employeeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee '%s': %w", employeeID, err)
	}

	var emp models.Employee
	if err := docSnap.DataTo(&emp); err != nil {
		return nil, fmt.Errorf("failed to decode employee '%s': %w", employeeID, err)
	}
	emp.ID = docSnap.Ref.ID
	return &emp, nil
}

func (r *firestoreEmployeeRepository) Create(ctx context.Context, businessID string, employee *models.Employee) (string, error) {
	if businessID == "" {
		return "", errors.New("businessID cannot be empty")
	}
	docRef := r.collection(businessID).NewDoc()
	employee.ID = docRef.ID
	if _, err := docRef.Create(ctx, employee); err != nil {
		return "", fmt.Errorf("failed to create employee for '%s': %w", businessID, err)
	}
	return docRef.ID, nil
}

func (r *firestoreEmployeeRepository) Update(ctx context.Context, businessID string, employee *models.Employee) error {
	if businessID == "" || employee.ID == "" {
		return errors.New("businessID and employee ID cannot be empty")
	}
	if _, err := r.collection(businessID).Doc(employee.ID).Set(ctx, employee); err != nil {
		return fmt.Errorf("failed to update employee '%s': %w", employee.ID, err)
	}
	return nil
}

func (r *firestoreEmployeeRepository) Delete(ctx context.Context, businessID, employeeID string) error {
	if businessID == "" || employeeID == "" {
		return errors.New("businessID and employeeID cannot be empty")
	}
	if _, err := r.collection(businessID).Doc(employeeID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete employee '%s': %w", employeeID, err)
	}
	return nil
}
