package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"vecino-backend-go/internal/models"
)

const leadsCollection = "leads"

type firestoreLeadRepository struct {
	client *firestore.Client
}

// NewFirestoreLeadRepository creates a Firestore-backed LeadRepository.
func NewFirestoreLeadRepository(client *firestore.Client) LeadRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for LeadRepository.")
	}
	return &firestoreLeadRepository{client: client}
}

func (r *firestoreLeadRepository) Create(ctx context.Context, lead *models.Lead) (string, error) {
	docRef := r.client.Collection(leadsCollection).NewDoc()
	lead.ID = docRef.ID
	if _, err := docRef.Create(ctx, lead); err != nil {
		return "", fmt.Errorf("failed to create lead: %w", err)
	}
	return docRef.ID, nil
}
