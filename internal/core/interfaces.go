package core

import (
	"context"
	"mime/multipart"

	"vecino-backend-go/internal/models"
)

// BusinessService shapes and routes profile data between the public and
// private partitions, and supplies the public listing/detail read path.
type BusinessService interface {
	CreateProfile(ctx context.Context, userID string, req models.CreateProfileRequest) (*models.BusinessProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.BusinessProfile, error)
	UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*models.BusinessProfile, error)
	GetPublicBusinesses(ctx context.Context, countryCode string) ([]*models.PublicBusiness, error)
	GetPublicBusiness(ctx context.Context, businessID string) (*models.PublicBusiness, error)
}

// CatalogService manages the services a business offers.
type CatalogService interface {
	ListServices(ctx context.Context, businessID string) ([]*models.Service, error)
	AddService(ctx context.Context, ownerID string, req models.CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, ownerID, serviceID string, req models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, ownerID, serviceID string) error
}

// EmployeeService manages a business's team members.
type EmployeeService interface {
	ListEmployees(ctx context.Context, businessID string) ([]*models.Employee, error)
	AddEmployee(ctx context.Context, ownerID string, req models.CreateEmployeeRequest) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, ownerID, employeeID string, req models.UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, ownerID, employeeID string) error
}

// PortfolioService manages showcase posts.
type PortfolioService interface {
	ListPosts(ctx context.Context, businessID string) ([]*models.PortfolioPost, error)
	AddPost(ctx context.Context, ownerID string, req models.CreatePortfolioPostRequest) (*models.PortfolioPost, error)
	DeletePost(ctx context.Context, ownerID, postID string) error
}

// ReviewService manages customer reviews and the denormalized rating
// aggregate on the parent profile.
type ReviewService interface {
	ListReviews(ctx context.Context, businessID string) ([]*models.Review, error)
	AddReview(ctx context.Context, authorID, authorName, businessID string, req models.CreateReviewRequest) (*models.Review, error)
}

// TrialService derives trial status from stored plan data.
type TrialService interface {
	GetTrialStatusForUser(ctx context.Context, userID string) (*models.TrialStatus, error)
}

// UserService handles platform user profiles.
type UserService interface {
	GetOrCreate(ctx context.Context, userID, email, displayName, photoURL string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// LeadService records inbound contact requests.
type LeadService interface {
	SubmitLead(ctx context.Context, req models.CreateLeadRequest) (*models.Lead, error)
}

// StorageService uploads business images to object storage.
type StorageService interface {
	// UploadImages stores the files one at a time under
	// businesses/{businessID}/{subresource}/ and returns the download URL
	// of each successful upload. Per-file failures are collected, not
	// fatal.
	UploadImages(ctx context.Context, businessID, subresource string, files []*multipart.FileHeader) (urls []string, failed []string, err error)
}

// AuditService appends audit entries and exposes the live feed.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
	WatchAuditLog(ctx context.Context) (<-chan models.AuditLog, error)
}
