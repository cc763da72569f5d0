package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"vecino-backend-go/internal/models"
)

const portfolioSubcollection = "portfolio_posts"

type firestorePortfolioRepository struct {
	client *firestore.Client
}

// NewFirestorePortfolioRepository creates a Firestore-backed
// PortfolioRepository over businesses_public/{id}/portfolio_posts.
func NewFirestorePortfolioRepository(client *firestore.Client) PortfolioRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for PortfolioRepository.")
	}
	return &firestorePortfolioRepository{client: client}
}

func (r *firestorePortfolioRepository) collection(businessID string) *firestore.CollectionRef {
	return r.client.Collection(publicCollection).Doc(businessID).Collection(portfolioSubcollection)
}

func (r *firestorePortfolioRepository) List(ctx context.Context, businessID string) ([]*models.PortfolioPost, error) {
	if businessID == "" {
		return nil, errors.New("businessID cannot be empty")
	}
	iter := r.collection(businessID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var posts []*models.PortfolioPost
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate portfolio for '%s': %w", businessID, err)
		}

		var post models.PortfolioPost
		if err := doc.DataTo(&post); err != nil {
			log.Printf("Error decoding portfolio post (ID: %s) for '%s': %v. Skipping.", doc.Ref.ID, businessID, err)
			continue
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}
	return posts, nil
}

func (r *firestorePortfolioRepository) Create(ctx context.Context, businessID string, post *models.PortfolioPost) (string, error) {
	if businessID == "" {
		return "", errors.New("businessID cannot be empty")
	}
	docRef := r.collection(businessID).NewDoc()
	post.ID = docRef.ID
	if _, err := docRef.Create(ctx, post); err != nil {
		return "", fmt.Errorf("failed to create portfolio post for '%s': %w", businessID, err)
	}
	return docRef.ID, nil
}

func (r *firestorePortfolioRepository) Delete(ctx context.Context, businessID, postID string) error {
	if businessID == "" || postID == "" {
		return errors.New("businessID and postID cannot be empty")
	}
	if _, err := r.collection(businessID).Doc(postID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete portfolio post '%s': %w", postID, err)
	}
	return nil
}
