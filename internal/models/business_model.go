package models

import "time"

// Modality describes where a business serves its customers.
type Modality string

const (
	ModalityInShop Modality = "in_shop" // customers come to a fixed location
	ModalityAtHome Modality = "at_home" // the business travels to the customer
	ModalityBoth   Modality = "both"
)

// BusinessStatus is the moderation state of a public profile.
type BusinessStatus string

const (
	StatusActive    BusinessStatus = "active"
	StatusPending   BusinessStatus = "pending"
	StatusSuspended BusinessStatus = "suspended"
)

// GeoPoint is a lat/lng coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// IsValid reports whether the point carries usable coordinates.
// Zero/zero is treated as "never geocoded".
func (p GeoPoint) IsValid() bool {
	if p.Lat == 0 && p.Lng == 0 {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// TimeRange is one open interval within a day, "HH:MM" 24h strings.
type TimeRange struct {
	Open  string `json:"open" firestore:"open"`
	Close string `json:"close" firestore:"close"`
}

// OpeningHours maps a lowercase weekday name ("monday"..."sunday") to its
// open intervals. A missing day means closed.
type OpeningHours map[string][]TimeRange

// SocialMedia holds the profile's social links as explicit fields rather
// than a loosely typed bag.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty" firestore:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" firestore:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty" firestore:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
	Website   string `json:"website,omitempty" firestore:"website,omitempty"`
}

// PublicBusiness is the world-readable partition of a business profile,
// stored at businesses_public/{ownerUID}. The document ID is the owning
// user's Firebase Auth UID and must match the private partition's ID.
type PublicBusiness struct {
	ID            string         `json:"id" firestore:"-"`
	Name          string         `json:"businessName" firestore:"businessName"`
	Category      string         `json:"category" firestore:"category"`
	Subcategory   string         `json:"subcategory,omitempty" firestore:"subcategory,omitempty"`
	Subcategories []string       `json:"subcategories,omitempty" firestore:"subcategories,omitempty"`
	Specialties   []string       `json:"specialties,omitempty" firestore:"specialties,omitempty"`
	City          string         `json:"city,omitempty" firestore:"city,omitempty"`
	Department    string         `json:"department,omitempty" firestore:"department,omitempty"`
	Country       string         `json:"country,omitempty" firestore:"country,omitempty"`
	Rating        float64        `json:"rating" firestore:"rating"`
	ReviewCount   int            `json:"reviewCount" firestore:"reviewCount"`
	CoverImage    string         `json:"coverImage,omitempty" firestore:"coverImage,omitempty"`
	LogoImage     string         `json:"logoImage,omitempty" firestore:"logoImage,omitempty"`
	Location      GeoPoint       `json:"location" firestore:"location"`
	Modality      Modality       `json:"modality" firestore:"modality"`
	Status        BusinessStatus `json:"status" firestore:"status"`
	OpeningHours  OpeningHours   `json:"openingHours,omitempty" firestore:"openingHours,omitempty"`
	CreatedAt     time.Time      `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt     time.Time      `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// PrivateBusiness is the access-controlled partition, stored at
// businesses_private/{ownerUID}. Holds contact data and anything not meant
// for the public listing.
type PrivateBusiness struct {
	ID           string       `json:"id" firestore:"-"`
	Description  string       `json:"description,omitempty" firestore:"description,omitempty"`
	ContactEmail string       `json:"contactEmail,omitempty" firestore:"contactEmail,omitempty"`
	ContactPhone string       `json:"contactPhone,omitempty" firestore:"contactPhone,omitempty"`
	Address      string       `json:"address,omitempty" firestore:"address,omitempty"`
	Images       []string     `json:"images,omitempty" firestore:"images,omitempty"`
	SocialMedia  SocialMedia  `json:"socialMedia,omitempty" firestore:"socialMedia,omitempty"`
	AcceptsCard  bool         `json:"acceptsCard" firestore:"acceptsCard"`
	AcceptsCash  bool         `json:"acceptsCash" firestore:"acceptsCash"`
	CreatedAt    time.Time    `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time    `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// BusinessProfile is the merged logical view of both partitions, the shape
// the owner edits against.
type BusinessProfile struct {
	ID            string         `json:"id"`
	Name          string         `json:"businessName"`
	Category      string         `json:"category"`
	Subcategory   string         `json:"subcategory,omitempty"`
	Subcategories []string       `json:"subcategories,omitempty"`
	Specialties   []string       `json:"specialties,omitempty"`
	City          string         `json:"city,omitempty"`
	Department    string         `json:"department,omitempty"`
	Country       string         `json:"country,omitempty"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	CoverImage    string         `json:"coverImage,omitempty"`
	LogoImage     string         `json:"logoImage,omitempty"`
	Location      GeoPoint       `json:"location"`
	Modality      Modality       `json:"modality"`
	Status        BusinessStatus `json:"status"`
	OpeningHours  OpeningHours   `json:"openingHours,omitempty"`
	Description   string         `json:"description,omitempty"`
	ContactEmail  string         `json:"contactEmail,omitempty"`
	ContactPhone  string         `json:"contactPhone,omitempty"`
	Address       string         `json:"address,omitempty"`
	Images        []string       `json:"images,omitempty"`
	SocialMedia   SocialMedia    `json:"socialMedia,omitempty"`
	AcceptsCard   bool           `json:"acceptsCard"`
	AcceptsCash   bool           `json:"acceptsCash"`
}

// MergeProfile combines both partitions into the editable view. The public
// partition wins on the shared ID.
func MergeProfile(pub *PublicBusiness, priv *PrivateBusiness) *BusinessProfile {
	if pub == nil {
		return nil
	}
	profile := &BusinessProfile{
		ID:            pub.ID,
		Name:          pub.Name,
		Category:      pub.Category,
		Subcategory:   pub.Subcategory,
		Subcategories: pub.Subcategories,
		Specialties:   pub.Specialties,
		City:          pub.City,
		Department:    pub.Department,
		Country:       pub.Country,
		Rating:        pub.Rating,
		ReviewCount:   pub.ReviewCount,
		CoverImage:    pub.CoverImage,
		LogoImage:     pub.LogoImage,
		Location:      pub.Location,
		Modality:      pub.Modality,
		Status:        pub.Status,
		OpeningHours:  pub.OpeningHours,
	}
	if priv != nil {
		profile.Description = priv.Description
		profile.ContactEmail = priv.ContactEmail
		profile.ContactPhone = priv.ContactPhone
		profile.Address = priv.Address
		profile.Images = priv.Images
		profile.SocialMedia = priv.SocialMedia
		profile.AcceptsCard = priv.AcceptsCard
		profile.AcceptsCash = priv.AcceptsCash
	}
	return profile
}
