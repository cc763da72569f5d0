package models

import "time"

// Plan tiers stored on the businesses/{id} document.
const (
	PlanTrial = "TRIAL"
	PlanBasic = "BASIC"
	PlanPro   = "PRO"
)

// TrialDays is the length of the free trial window.
const TrialDays = 7

// PlanData is the subscription/trial state embedded on businesses/{id}.
// Trial timestamps are stored as RFC3339 strings, matching what the rest of
// the platform writes.
type PlanData struct {
	Plan            string `json:"plan" firestore:"plan"`
	TrialStartAt    string `json:"trialStartAt,omitempty" firestore:"trialStartAt,omitempty"`
	TrialEndAt      string `json:"trialEndAt,omitempty" firestore:"trialEndAt,omitempty"`
	OverriddenByCRM bool   `json:"overriddenByCRM" firestore:"overriddenByCRM"`
}

// BusinessDoc is the businesses/{id} document. Only plan fields are owned
// by this backend; the rest of the document belongs to other tools.
type BusinessDoc struct {
	ID        string    `json:"id" firestore:"-"`
	PlanData  PlanData  `json:"planData" firestore:"planData"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// TrialStatus is derived from PlanData on every read; nothing here is
// persisted.
type TrialStatus struct {
	Plan               string `json:"plan"`
	IsInTrial          bool   `json:"isInTrial"`
	IsExpired          bool   `json:"isExpired"`
	DaysUsed           int    `json:"daysUsed"`
	DaysLeft           int    `json:"daysLeft"`
	ShowReminderBanner bool   `json:"showReminderBanner"`
	OverriddenByCRM    bool   `json:"overriddenByCRM"`
}
