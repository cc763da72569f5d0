package models

import "time"

// MaxServiceImages caps the image URLs stored per service.
const MaxServiceImages = 10

// LocalizedText carries a label in the three supported locales. Empty
// variants fall back to the Spanish value at display time.
type LocalizedText struct {
	ES string `json:"es,omitempty" firestore:"es,omitempty"`
	EN string `json:"en,omitempty" firestore:"en,omitempty"`
	PT string `json:"pt,omitempty" firestore:"pt,omitempty"`
}

// Resolve returns the variant for the given locale, falling back to Spanish.
func (t LocalizedText) Resolve(locale string) string {
	switch locale {
	case "en":
		if t.EN != "" {
			return t.EN
		}
	case "pt":
		if t.PT != "" {
			return t.PT
		}
	}
	return t.ES
}

// Service is an offering sold by a business, stored in the
// businesses_public/{id}/services subcollection.
type Service struct {
	ID              string        `json:"id" firestore:"-"`
	Name            string        `json:"name" firestore:"name"`
	NameLocalized   LocalizedText `json:"nameLocalized,omitempty" firestore:"nameLocalized,omitempty"`
	Price           float64       `json:"price" firestore:"price"`
	Currency        string        `json:"currency" firestore:"currency"`
	DurationMinutes int           `json:"durationMinutes" firestore:"durationMinutes"`
	Category        string        `json:"category,omitempty" firestore:"category,omitempty"`
	Active          bool          `json:"active" firestore:"active"`
	Extra           bool          `json:"extra" firestore:"extra"`
	Images          []string      `json:"images,omitempty" firestore:"images,omitempty"`
	CreatedAt       time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt       time.Time     `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// DurationLabel renders the duration the way listings show it: "45 min",
// "1 h", "1 h 30 min".
func (s Service) DurationLabel() string {
	return FormatDuration(s.DurationMinutes)
}
