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

const (
	publicCollection  = "businesses_public"
	privateCollection = "businesses_private"
	plansCollection   = "businesses"
	usersCollection   = "users"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

type firestoreBusinessRepository struct {
	client *firestore.Client
}

// NewFirestoreBusinessRepository creates a Firestore-backed
// BusinessRepository.
func NewFirestoreBusinessRepository(client *firestore.Client) BusinessRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for BusinessRepository.")
	}
	return &firestoreBusinessRepository{client: client}
}

// CreateProfile writes both partitions, the trial-plan doc and the user's
// hasBusiness flag in one WriteBatch. Batches commit atomically, so the
// cross-collection invariant (shared ID, plan doc present) holds or
// nothing is written.
func (r *firestoreBusinessRepository) CreateProfile(ctx context.Context, pub *models.PublicBusiness, priv *models.PrivateBusiness, plan *models.BusinessDoc) error {
	if pub == nil || priv == nil || plan == nil {
		return errors.New("public, private and plan documents are all required")
	}
	if pub.ID == "" || pub.ID != priv.ID || pub.ID != plan.ID {
		return errors.New("public, private and plan documents must share the same ID")
	}

	batch := r.client.Batch()
	batch.Set(r.client.Collection(publicCollection).Doc(pub.ID), pub)
	batch.Set(r.client.Collection(privateCollection).Doc(priv.ID), priv)
	batch.Set(r.client.Collection(plansCollection).Doc(plan.ID), plan)
	batch.Set(r.client.Collection(usersCollection).Doc(pub.ID), map[string]interface{}{
		"hasBusiness": true,
		"updatedAt":   firestore.ServerTimestamp,
	}, firestore.MergeAll)

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profile creation batch for '%s': %w", pub.ID, err)
	}
	return nil
}

func (r *firestoreBusinessRepository) GetPublic(ctx context.Context, businessID string) (*models.PublicBusiness, error) {
	if businessID == "" {
		return nil, errors.New("businessID cannot be empty")
	}
	docSnap, err := r.client.Collection(publicCollection).Doc(businessID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("public profile '%s' not found: %w", businessID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get public profile '%s': %w", businessID, err)
	}

	var pub models.PublicBusiness
	if err := docSnap.DataTo(&pub); err != nil {
		return nil, fmt.Errorf("failed to decode public profile '%s': %w", businessID, err)
	}
	pub.ID = docSnap.Ref.ID
	return &pub, nil
}

func (r *firestoreBusinessRepository) GetPrivate(ctx context.Context, businessID string) (*models.PrivateBusiness, error) {
	if businessID == "" {
		return nil, errors.New("businessID cannot be empty")
	}
	docSnap, err := r.client.Collection(privateCollection).Doc(businessID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("private profile '%s' not found: %w", businessID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get private profile '%s': %w", businessID, err)
	}

	var priv models.PrivateBusiness
	if err := docSnap.DataTo(&priv); err != nil {
		return nil, fmt.Errorf("failed to decode private profile '%s': %w", businessID, err)
	}
	priv.ID = docSnap.Ref.ID
	return &priv, nil
}

// ListPublic reads the whole public collection. There is no pagination;
// the marketplace front end consumes the full listing.
func (r *firestoreBusinessRepository) ListPublic(ctx context.Context, countryCode string) ([]*models.PublicBusiness, error) {
	query := r.client.Collection(publicCollection).Query
	if countryCode != "" {
		query = query.Where("country", "==", countryCode)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var businesses []*models.PublicBusiness
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate public businesses: %w", err)
		}

		var pub models.PublicBusiness
		if err := doc.DataTo(&pub); err != nil {
			log.Printf("Error decoding public business (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		pub.ID = doc.Ref.ID
		businesses = append(businesses, &pub)
	}
	return businesses, nil
}

// UpdateProfile merges the given field maps into their partitions in one
// batch. Callers route each changed field to the right map.
func (r *firestoreBusinessRepository) UpdateProfile(ctx context.Context, businessID string, pubFields, privFields map[string]interface{}) error {
	if businessID == "" {
		return errors.New("businessID cannot be empty")
	}
	if len(pubFields) == 0 && len(privFields) == 0 {
		return nil
	}

	batch := r.client.Batch()
	if len(pubFields) > 0 {
		pubFields["updatedAt"] = firestore.ServerTimestamp
		batch.Set(r.client.Collection(publicCollection).Doc(businessID), pubFields, firestore.MergeAll)
	}
	if len(privFields) > 0 {
		privFields["updatedAt"] = firestore.ServerTimestamp
		batch.Set(r.client.Collection(privateCollection).Doc(businessID), privFields, firestore.MergeAll)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profile update batch for '%s': %w", businessID, err)
	}
	return nil
}
