package models

import "time"

// Lead is an inbound contact request from the marketplace front end,
// stored in the top-level leads collection.
type Lead struct {
	ID         string    `json:"id" firestore:"-"`
	BusinessID string    `json:"businessId,omitempty" firestore:"businessId,omitempty"`
	Name       string    `json:"name" firestore:"name"`
	Email      string    `json:"email,omitempty" firestore:"email,omitempty"`
	Phone      string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Message    string    `json:"message,omitempty" firestore:"message,omitempty"`
	Source     string    `json:"source,omitempty" firestore:"source,omitempty"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
