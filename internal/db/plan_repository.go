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

type firestorePlanRepository struct {
	client *firestore.Client
}

// NewFirestorePlanRepository creates a Firestore-backed PlanRepository over
// the businesses collection.
func NewFirestorePlanRepository(client *firestore.Client) PlanRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for PlanRepository.")
	}
	return &firestorePlanRepository{client: client}
}

func (r *firestorePlanRepository) Get(ctx context.Context, businessID string) (*models.BusinessDoc, error) {
	if businessID == "" {
		return nil, errors.New("businessID cannot be empty")
	}
	docSnap, err := r.client.Collection(plansCollection).Doc(businessID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("plan document for '%s' not found: %w", businessID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get plan document for '%s': %w", businessID, err)
	}

	var doc models.BusinessDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode plan document for '%s': %w", businessID, err)
	}
	doc.ID = docSnap.Ref.ID
	return &doc, nil
}

// ListTrialsEndingBetween returns trial businesses whose window closes
// inside [from, until]. RFC3339 strings order lexicographically, so a
// string range query works. The lower bound keeps trials that already
// expired out of the result.
func (r *firestorePlanRepository) ListTrialsEndingBetween(ctx context.Context, from, until string) ([]*models.BusinessDoc, error) {
	iter := r.client.Collection(plansCollection).
		Where("planData.plan", "==", models.PlanTrial).
		Where("planData.trialEndAt", ">=", from).
		Where("planData.trialEndAt", "<=", until).
		Documents(ctx)
	defer iter.Stop()

	var docs []*models.BusinessDoc
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate trial documents: %w", err)
		}

		var doc models.BusinessDoc
		if err := snap.DataTo(&doc); err != nil {
			log.Printf("Error decoding plan document (ID: %s): %v. Skipping.", snap.Ref.ID, err)
			continue
		}
		if doc.PlanData.OverriddenByCRM {
			continue
		}
		doc.ID = snap.Ref.ID
		docs = append(docs, &doc)
	}
	return docs, nil
}
