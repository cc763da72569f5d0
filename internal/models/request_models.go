package models

// CreateProfileRequest is the request body for the business setup submit.
// Name, Category and Modality are the three required fields; everything else
// is optional at creation time.
type CreateProfileRequest struct {
	Name          string       `json:"businessName" binding:"required"`
	Category      string       `json:"category" binding:"required"`
	Modality      Modality     `json:"modality" binding:"required"`
	Subcategory   string       `json:"subcategory,omitempty"`
	Subcategories []string     `json:"subcategories,omitempty"`
	Specialties   []string     `json:"specialties,omitempty"`
	City          string       `json:"city,omitempty"`
	Department    string       `json:"department,omitempty"`
	Country       string       `json:"country,omitempty"`
	Address       string       `json:"address,omitempty"`
	Location      *GeoPoint    `json:"location,omitempty"` // exact coordinates win over geocoding
	Description   string       `json:"description,omitempty"`
	ContactEmail  string       `json:"contactEmail,omitempty"`
	ContactPhone  string       `json:"contactPhone,omitempty"`
	CoverImage    string       `json:"coverImage,omitempty"`
	LogoImage     string       `json:"logoImage,omitempty"`
	Images        []string     `json:"images,omitempty"`
	OpeningHours  OpeningHours `json:"openingHours,omitempty"`
	SocialMedia   *SocialMedia `json:"socialMedia,omitempty"`
	AcceptsCard   *bool        `json:"acceptsCard,omitempty"`
	AcceptsCash   *bool        `json:"acceptsCash,omitempty"`
}

// ProfilePatch is a partial profile update. Pointers distinguish "not
// provided" from an explicit empty value, so each field can be routed to its
// partition only when the caller actually sent it.
type ProfilePatch struct {
	Name          *string       `json:"businessName,omitempty"`
	Category      *string       `json:"category,omitempty"`
	Subcategory   *string       `json:"subcategory,omitempty"`
	Subcategories *[]string     `json:"subcategories,omitempty"`
	Specialties   *[]string     `json:"specialties,omitempty"`
	City          *string       `json:"city,omitempty"`
	Department    *string       `json:"department,omitempty"`
	Country       *string       `json:"country,omitempty"`
	Address       *string       `json:"address,omitempty"`
	Location      *GeoPoint     `json:"location,omitempty"`
	Modality      *Modality     `json:"modality,omitempty"`
	Description   *string       `json:"description,omitempty"`
	ContactEmail  *string       `json:"contactEmail,omitempty"`
	ContactPhone  *string       `json:"contactPhone,omitempty"`
	CoverImage    *string       `json:"coverImage,omitempty"`
	LogoImage     *string       `json:"logoImage,omitempty"`
	Images        *[]string     `json:"images,omitempty"`
	OpeningHours  *OpeningHours `json:"openingHours,omitempty"`
	SocialMedia   *SocialMedia  `json:"socialMedia,omitempty"`
	AcceptsCard   *bool         `json:"acceptsCard,omitempty"`
	AcceptsCash   *bool         `json:"acceptsCash,omitempty"`
}

// TouchesLocation reports whether the patch changes any field that feeds
// the geocoder.
func (p ProfilePatch) TouchesLocation() bool {
	return p.Address != nil || p.City != nil || p.Department != nil || p.Country != nil
}

// CreateServiceRequest is the request body for adding a service.
type CreateServiceRequest struct {
	Name            string        `json:"name" binding:"required"`
	NameLocalized   LocalizedText `json:"nameLocalized,omitempty"`
	Price           float64       `json:"price"`
	Currency        string        `json:"currency,omitempty"`
	DurationMinutes int           `json:"durationMinutes"`
	Category        string        `json:"category,omitempty"`
	Active          *bool         `json:"active,omitempty"`
	Extra           bool          `json:"extra,omitempty"`
	Images          []string      `json:"images,omitempty"`
}

// UpdateServiceRequest is a partial service update.
type UpdateServiceRequest struct {
	Name            *string        `json:"name,omitempty"`
	NameLocalized   *LocalizedText `json:"nameLocalized,omitempty"`
	Price           *float64       `json:"price,omitempty"`
	Currency        *string        `json:"currency,omitempty"`
	DurationMinutes *int           `json:"durationMinutes,omitempty"`
	Category        *string        `json:"category,omitempty"`
	Active          *bool          `json:"active,omitempty"`
	Extra           *bool          `json:"extra,omitempty"`
	Images          *[]string      `json:"images,omitempty"`
}

// CreateEmployeeRequest is the request body for adding a team member.
type CreateEmployeeRequest struct {
	Name       string         `json:"name" binding:"required"`
	Role       EmployeeRole   `json:"role" binding:"required"`
	Title      string         `json:"title,omitempty"`
	Active     *bool          `json:"active,omitempty"`
	ServiceIDs []string       `json:"serviceIds,omitempty"`
	Schedule   WeeklySchedule `json:"schedule,omitempty"`
	PhotoURL   string         `json:"photoURL,omitempty"`
}

// UpdateEmployeeRequest is a partial employee update.
type UpdateEmployeeRequest struct {
	Name       *string         `json:"name,omitempty"`
	Role       *EmployeeRole   `json:"role,omitempty"`
	Title      *string         `json:"title,omitempty"`
	Active     *bool           `json:"active,omitempty"`
	ServiceIDs *[]string       `json:"serviceIds,omitempty"`
	Schedule   *WeeklySchedule `json:"schedule,omitempty"`
	PhotoURL   *string         `json:"photoURL,omitempty"`
}

// CreatePortfolioPostRequest is the request body for a portfolio entry.
type CreatePortfolioPostRequest struct {
	ImageURL  string `json:"imageUrl" binding:"required"`
	Caption   string `json:"caption,omitempty"`
	ServiceID string `json:"serviceId,omitempty"`
}

// CreateReviewRequest is the request body for submitting a review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// CreateLeadRequest is the request body for a contact request.
type CreateLeadRequest struct {
	BusinessID string `json:"businessId,omitempty"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message,omitempty"`
	Source     string `json:"source,omitempty"`
}

// AdminNotification is the payload posted to the notify-admin endpoint.
type AdminNotification struct {
	Subject string            `json:"subject" binding:"required"`
	Body    string            `json:"body,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
}
