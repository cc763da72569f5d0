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

const servicesSubcollection = "services"

type firestoreServiceRepository struct {
	client *firestore.Client
}

// NewFirestoreServiceRepository creates a Firestore-backed
// ServiceRepository over businesses_public/{id}/services.
func NewFirestoreServiceRepository(client *firestore.Client) ServiceRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ServiceRepository.")
	}
	return &firestoreServiceRepository{client: client}
}

func (r *firestoreServiceRepository) collection(businessID string) *firestore.CollectionRef {
	return r.client.Collection(publicCollection).Doc(businessID).Collection(servicesSubcollection)
}

// List reads the whole subcollection; there is no cursoring.
func (r *firestoreServiceRepository) List(ctx context.Context, businessID string) ([]*models.Service, error) {
	if businessID == "" {
		return nil, errors.New("businessID cannot be empty")
	}
	iter := r.collection(businessID).Documents(ctx)
	defer iter.Stop()

	var services []*models.Service
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate services for '%s': %w", businessID, err)
		}

		var svc models.Service
		if err := doc.DataTo(&svc); err != nil {
			log.Printf("Error decoding service (ID: %s) for '%s': %v. Skipping.", doc.Ref.ID, businessID, err)
			continue
		}
		svc.ID = doc.Ref.ID
		services = append(services, &svc)
	}
	return services, nil
}

func (r *firestoreServiceRepository) GetByID(ctx context.Context, businessID, serviceID string) (*models.Service, error) {
	if businessID == "" || serviceID == "" {
		return nil, errors.New("businessID and serviceID cannot be empty")
	}
	docSnap, err := r.collection(businessID).Doc(serviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("service '%s' not found: %w", serviceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service '%s': %w", serviceID, err)
	}

	var svc models.Service
	if err := docSnap.DataTo(&svc); err != nil {
		return nil, fmt.Errorf("failed to decode service '%s': %w", serviceID, err)
	}
	svc.ID = docSnap.Ref.ID
	return &svc, nil
}

func (r *firestoreServiceRepository) Create(ctx context.Context, businessID string, service *models.Service) (string, error) {
	if businessID == "" {
		return "", errors.New("businessID cannot be empty")
	}
	docRef := r.collection(businessID).NewDoc()
	service.ID = docRef.ID
	if _, err := docRef.Create(ctx, service); err != nil {
		return "", fmt.Errorf("failed to create service for '%s': %w", businessID, err)
	}
	return docRef.ID, nil
}

func (r *firestoreServiceRepository) Update(ctx context.Context, businessID string, service *models.Service) error {
	if businessID == "" || service.ID == "" {
		return errors.New("businessID and service ID cannot be empty")
	}
	if _, err := r.collection(businessID).Doc(service.ID).Set(ctx, service); err != nil {
		return fmt.Errorf("failed to update service '%s': %w", service.ID, err)
	}
	return nil
}

func (r *firestoreServiceRepository) Delete(ctx context.Context, businessID, serviceID string) error {
	if businessID == "" || serviceID == "" {
		return errors.New("businessID and serviceID cannot be empty")
	}
	if _, err := r.collection(businessID).Doc(serviceID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete service '%s': %w", serviceID, err)
	}
	return nil
}
