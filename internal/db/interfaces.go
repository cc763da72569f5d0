package db

import (
	"context"

	"vecino-backend-go/internal/models"
)

// BusinessRepository routes profile data between the public and private
// partitions. Both documents share the owning user's UID as document ID.
type BusinessRepository interface {
	// CreateProfile writes the public profile, private profile, the user's
	// hasBusiness flag and the trial-plan document in one atomic batch.
	CreateProfile(ctx context.Context, pub *models.PublicBusiness, priv *models.PrivateBusiness, plan *models.BusinessDoc) error
	GetPublic(ctx context.Context, businessID string) (*models.PublicBusiness, error)
	GetPrivate(ctx context.Context, businessID string) (*models.PrivateBusiness, error)
	// ListPublic reads the full public collection, optionally filtered by
	// the indexed country field.
	ListPublic(ctx context.Context, countryCode string) ([]*models.PublicBusiness, error)
	// UpdateProfile merges partial field maps into both partitions in one
	// batch. Either map may be empty.
	UpdateProfile(ctx context.Context, businessID string, pubFields, privFields map[string]interface{}) error
}

// ServiceRepository is the CRUD wrapper over the services subcollection.
type ServiceRepository interface {
	List(ctx context.Context, businessID string) ([]*models.Service, error)
	GetByID(ctx context.Context, businessID, serviceID string) (*models.Service, error)
	Create(ctx context.Context, businessID string, service *models.Service) (string, error)
	Update(ctx context.Context, businessID string, service *models.Service) error
	Delete(ctx context.Context, businessID, serviceID string) error
}

// EmployeeRepository is the CRUD wrapper over the employees subcollection.
type EmployeeRepository interface {
	List(ctx context.Context, businessID string) ([]*models.Employee, error)
	GetByID(ctx context.Context, businessID, employeeID string) (*models.Employee, error)
	Create(ctx context.Context, businessID string, employee *models.Employee) (string, error)
	Update(ctx context.Context, businessID string, employee *models.Employee) error
	Delete(ctx context.Context, businessID, employeeID string) error
}

// PortfolioRepository is the CRUD wrapper over the portfolio_posts
// subcollection.
type PortfolioRepository interface {
	List(ctx context.Context, businessID string) ([]*models.PortfolioPost, error)
	Create(ctx context.Context, businessID string, post *models.PortfolioPost) (string, error)
	Delete(ctx context.Context, businessID, postID string) error
}

// ReviewRepository stores reviews and keeps the parent's denormalized
// rating aggregate consistent.
type ReviewRepository interface {
	List(ctx context.Context, businessID string) ([]*models.Review, error)
	// CreateWithAggregate inserts the review and updates the parent's
	// rating average and count inside a single transaction.
	CreateWithAggregate(ctx context.Context, businessID string, review *models.Review) (string, error)
}

// PlanRepository reads and writes the plan fields on businesses/{id}.
type PlanRepository interface {
	Get(ctx context.Context, businessID string) (*models.BusinessDoc, error)
	// ListTrialsEndingBetween returns businesses whose trial ends inside
	// the given RFC3339 window (inclusive) and that are not CRM-overridden.
	// Already-expired trials fall before the lower bound and are excluded.
	ListTrialsEndingBetween(ctx context.Context, from, until string) ([]*models.BusinessDoc, error)
}

// UserRepository stores platform users keyed by Firebase Auth UID.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// LeadRepository appends inbound contact requests.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) (string, error)
}

// AuditRepository appends audit entries and exposes the live feed.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
	// Watch streams audit entries as they are appended until ctx is
	// cancelled; cancellation tears the listener down.
	Watch(ctx context.Context) (<-chan models.AuditLog, error)
}
