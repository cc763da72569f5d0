package models

import "time"

// User represents a platform user, stored at users/{uid} with the Firebase
// Auth UID as the document ID.
type User struct {
	ID          string    `json:"id" firestore:"-"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	HasBusiness bool      `json:"hasBusiness" firestore:"hasBusiness"`
	Locale      string    `json:"locale,omitempty" firestore:"locale,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
