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

const reviewsSubcollection = "reviews"

type firestoreReviewRepository struct {
	client *firestore.Client
}

// NewFirestoreReviewRepository creates a Firestore-backed ReviewRepository
// over businesses_public/{id}/reviews.
func NewFirestoreReviewRepository(client *firestore.Client) ReviewRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReviewRepository.")
	}
	return &firestoreReviewRepository{client: client}
}

func (r *firestoreReviewRepository) List(ctx context.Context, businessID string) ([]*models.Review, error) {
	if businessID == "" {
		return nil, errors.New("businessID cannot be empty")
	}
	iter := r.client.Collection(publicCollection).Doc(businessID).
		Collection(reviewsSubcollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var reviews []*models.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reviews for '%s': %w", businessID, err)
		}

		var review models.Review
		if err := doc.DataTo(&review); err != nil {
			log.Printf("Error decoding review (ID: %s) for '%s': %v. Skipping.", doc.Ref.ID, businessID, err)
			continue
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, &review)
	}
	return reviews, nil
}

// CreateWithAggregate inserts the review and recomputes the parent's
// rating average and count in a single transaction, so concurrent
// submissions can no longer lose updates.
func (r *firestoreReviewRepository) CreateWithAggregate(ctx context.Context, businessID string, review *models.Review) (string, error) {
	if businessID == "" {
		return "", errors.New("businessID cannot be empty")
	}

	parentRef := r.client.Collection(publicCollection).Doc(businessID)
	reviewRef := parentRef.Collection(reviewsSubcollection).NewDoc()
	review.ID = reviewRef.ID

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		parentSnap, err := tx.Get(parentRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("business '%s' not found: %w", businessID, ErrNotFound)
			}
			return err
		}

		var pub models.PublicBusiness
		if err := parentSnap.DataTo(&pub); err != nil {
			return fmt.Errorf("failed to decode business '%s': %w", businessID, err)
		}

		newAverage := models.NextAverage(pub.Rating, pub.ReviewCount, review.Rating)

		if err := tx.Create(reviewRef, review); err != nil {
			return err
		}
		return tx.Update(parentRef, []firestore.Update{
			{Path: "rating", Value: newAverage},
			{Path: "reviewCount", Value: pub.ReviewCount + 1},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to create review for '%s': %w", businessID, err)
	}
	return reviewRef.ID, nil
}
