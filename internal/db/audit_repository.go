package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"vecino-backend-go/internal/models"
)

const auditCollection = "audit_logs"

type firestoreAuditRepository struct {
	client *firestore.Client
}

// NewFirestoreAuditRepository creates a Firestore-backed AuditRepository.
func NewFirestoreAuditRepository(client *firestore.Client) AuditRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AuditRepository.")
	}
	return &firestoreAuditRepository{client: client}
}

func (r *firestoreAuditRepository) Create(ctx context.Context, logEntry models.AuditLog) error {
	if _, _, err := r.client.Collection(auditCollection).Add(ctx, logEntry); err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}
	return nil
}

// Watch registers a snapshot listener on the audit collection and streams
// newly appended entries. Cancelling ctx stops the iterator and closes the
// channel; that unsubscribe is the only teardown needed.
func (r *firestoreAuditRepository) Watch(ctx context.Context) (<-chan models.AuditLog, error) {
	snapshots := r.client.Collection(auditCollection).
		OrderBy("timestamp", firestore.Asc).
		Snapshots(ctx)

	out := make(chan models.AuditLog, 16)
	go func() {
		defer close(out)
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				// ctx cancellation surfaces here as an error; either way
				// the feed is over.
				if ctx.Err() == nil {
					log.Printf("Audit feed listener stopped: %v", err)
				}
				return
			}
			for _, change := range snap.Changes {
				if change.Kind != firestore.DocumentAdded {
					continue
				}
				var entry models.AuditLog
				if err := change.Doc.DataTo(&entry); err != nil {
					log.Printf("Error decoding audit entry (ID: %s): %v. Skipping.", change.Doc.Ref.ID, err)
					continue
				}
				entry.ID = change.Doc.Ref.ID
				select {
				case out <- entry:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
