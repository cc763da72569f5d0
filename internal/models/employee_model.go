package models

import "time"

// EmployeeRole classifies a team member. The free-text Title field carries
// whatever the owner actually calls the position.
type EmployeeRole string

const (
	RoleOwner      EmployeeRole = "owner"
	RoleManager    EmployeeRole = "manager"
	RoleStaff      EmployeeRole = "staff"
	RoleApprentice EmployeeRole = "apprentice"
)

// DaySchedule is one weekday's working window for an employee.
type DaySchedule struct {
	Working bool   `json:"working" firestore:"working"`
	Start   string `json:"start,omitempty" firestore:"start,omitempty"` // "HH:MM"
	End     string `json:"end,omitempty" firestore:"end,omitempty"`
}

// WeeklySchedule maps lowercase weekday names to a working window.
type WeeklySchedule map[string]DaySchedule

// Employee is a team member document under
// businesses_public/{id}/employees.
type Employee struct {
	ID         string         `json:"id" firestore:"-"`
	Name       string         `json:"name" firestore:"name"`
	Role       EmployeeRole   `json:"role" firestore:"role"`
	Title      string         `json:"title,omitempty" firestore:"title,omitempty"`
	Active     bool           `json:"active" firestore:"active"`
	ServiceIDs []string       `json:"serviceIds,omitempty" firestore:"serviceIds,omitempty"`
	Schedule   WeeklySchedule `json:"schedule,omitempty" firestore:"schedule,omitempty"`
	PhotoURL   string         `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt  time.Time      `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt  time.Time      `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
