package models

import (
	"math"
	"time"
)

// Review is a customer review document under
// businesses_public/{id}/reviews. The parent document keeps a denormalized
// running average (Rating/ReviewCount) maintained transactionally.
type Review struct {
	ID         string    `json:"id" firestore:"-"`
	AuthorID   string    `json:"authorId" firestore:"authorId"`
	AuthorName string    `json:"authorName,omitempty" firestore:"authorName,omitempty"`
	Rating     int       `json:"rating" firestore:"rating"` // 1..5
	Comment    string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// NextAverage folds a new rating into the running average, rounded to one
// decimal place. e.g. avg 4.0 over 2 reviews plus a 5 yields 4.3.
func NextAverage(currentAvg float64, currentCount int, rating int) float64 {
	next := (currentAvg*float64(currentCount) + float64(rating)) / float64(currentCount+1)
	return math.Round(next*10) / 10
}

// PortfolioPost is a showcase entry under
// businesses_public/{id}/portfolio_posts.
type PortfolioPost struct {
	ID        string    `json:"id" firestore:"-"`
	ImageURL  string    `json:"imageUrl" firestore:"imageUrl"`
	Caption   string    `json:"caption,omitempty" firestore:"caption,omitempty"`
	ServiceID string    `json:"serviceId,omitempty" firestore:"serviceId,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
