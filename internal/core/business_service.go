package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/geo"
	"vecino-backend-go/internal/models"
)

// AdminNotifier delivers fire-and-forget admin notifications. Failures are
// swallowed by the implementation.
type AdminNotifier interface {
	NotifyAdmin(subject, body string, meta map[string]string)
}

type businessService struct {
	businessRepo db.BusinessRepository
	userRepo     db.UserRepository
	geocoder     *geo.Geocoder
	auditService AuditService
	notifier     AdminNotifier
	logger       *zap.Logger
}

// NewBusinessService creates a BusinessService. notifier may be nil.
func NewBusinessService(
	br db.BusinessRepository,
	ur db.UserRepository,
	geocoder *geo.Geocoder,
	as AuditService,
	notifier AdminNotifier,
	logger *zap.Logger,
) BusinessService {
	return &businessService{
		businessRepo: br,
		userRepo:     ur,
		geocoder:     geocoder,
		auditService: as,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateProfile validates the three required fields, resolves a location
// (exact coordinates win over geocoding) and writes both partitions, the
// trial-plan doc and the user role flag in one atomic batch.
func (s *businessService) CreateProfile(ctx context.Context, userID string, req models.CreateProfileRequest) (*models.BusinessProfile, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" || req.Modality == "" {
		return nil, ErrMissingRequiredFields
	}

	if existing, err := s.businessRepo.GetPublic(ctx, userID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: user '%s'", ErrProfileExists, userID)
	}

	location := s.resolveLocation(ctx, req.Location, geo.Query{
		Address:    req.Address,
		City:       req.City,
		Department: req.Department,
		Country:    req.Country,
	})

	coverImage := req.CoverImage
	if coverImage == "" && len(req.Images) > 0 {
		coverImage = req.Images[0]
	}

	now := time.Now().UTC()
	pub := &models.PublicBusiness{
		ID:            userID,
		Name:          req.Name,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Subcategories: req.Subcategories,
		Specialties:   req.Specialties,
		City:          req.City,
		Department:    req.Department,
		Country:       geo.NormalizeCountry(req.Country),
		CoverImage:    coverImage,
		LogoImage:     req.LogoImage,
		Location:      location,
		Modality:      req.Modality,
		Status:        models.StatusActive,
		OpeningHours:  req.OpeningHours,
	}
	priv := &models.PrivateBusiness{
		ID:           userID,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		Images:       req.Images,
	}
	if req.SocialMedia != nil {
		priv.SocialMedia = *req.SocialMedia
	}
	if req.AcceptsCard != nil {
		priv.AcceptsCard = *req.AcceptsCard
	}
	if req.AcceptsCash != nil {
		priv.AcceptsCash = *req.AcceptsCash
	}
	plan := &models.BusinessDoc{
		ID: userID,
		PlanData: models.PlanData{
			Plan:         models.PlanTrial,
			TrialStartAt: now.Format(time.RFC3339),
			TrialEndAt:   now.AddDate(0, 0, models.TrialDays).Format(time.RFC3339),
		},
	}

	if err := s.businessRepo.CreateProfile(ctx, pub, priv, plan); err != nil {
		return nil, fmt.Errorf("failed to create business profile for '%s': %w", userID, err)
	}

	s.audit(ctx, userID, "PROFILE_CREATE", userID, map[string]interface{}{
		"businessName": pub.Name,
		"category":     pub.Category,
	})
	if s.notifier != nil {
		s.notifier.NotifyAdmin(
			"Nuevo negocio registrado",
			fmt.Sprintf("El negocio %q se registró en la categoría %s.", pub.Name, pub.Category),
			map[string]string{"businessId": userID},
		)
	}

	return models.MergeProfile(pub, priv), nil
}

// GetProfile merges both partitions into the editable shape.
func (s *businessService) GetProfile(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	pub, err := s.businessRepo.GetPublic(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get public partition for '%s': %w", userID, err)
	}

	priv, err := s.businessRepo.GetPrivate(ctx, userID)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("failed to get private partition for '%s': %w", userID, err)
		}
		// A public doc without its private sibling is legacy data; the
		// merge tolerates it.
		priv = nil
	}

	return models.MergeProfile(pub, priv), nil
}

// UpdateProfile routes each supplied field to its partition and writes both
// in one batch. Coordinates are re-geocoded only when the caller did not
// supply an exact location and some location-relevant field changed.
func (s *businessService) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*models.BusinessProfile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	pubFields, privFields := routePatch(patch)

	if patch.Location != nil && patch.Location.IsValid() {
		pubFields["location"] = *patch.Location
	} else if patch.TouchesLocation() {
		merged := geo.Query{
			Address:    pick(patch.Address, current.Address),
			City:       pick(patch.City, current.City),
			Department: pick(patch.Department, current.Department),
			Country:    pick(patch.Country, current.Country),
		}
		point := s.geocoder.Resolve(ctx, merged)
		pubFields["location"] = models.GeoPoint{Lat: point.Lat, Lng: point.Lng}
	}

	// Images supplied without an explicit cover promote the first image.
	if patch.Images != nil && patch.CoverImage == nil && len(*patch.Images) > 0 {
		pubFields["coverImage"] = (*patch.Images)[0]
	}

	if err := s.businessRepo.UpdateProfile(ctx, userID, pubFields, privFields); err != nil {
		return nil, fmt.Errorf("failed to update business profile for '%s': %w", userID, err)
	}

	s.audit(ctx, userID, "PROFILE_UPDATE", userID, nil)
	return s.GetProfile(ctx, userID)
}

// GetPublicBusinesses reads the public collection and normalizes it for
// the marketplace: legacy country names become ISO codes, zero/invalid
// coordinates get a centroid substitute and suspended businesses are
// dropped. Backend errors degrade to an empty listing.
func (s *businessService) GetPublicBusinesses(ctx context.Context, countryCode string) ([]*models.PublicBusiness, error) {
	businesses, err := s.businessRepo.ListPublic(ctx, geo.NormalizeCountry(countryCode))
	if err != nil {
		s.logger.Error("failed to list public businesses", zap.Error(err))
		return []*models.PublicBusiness{}, nil
	}

	visible := make([]*models.PublicBusiness, 0, len(businesses))
	for _, b := range businesses {
		if b.Status == models.StatusSuspended {
			continue
		}
		NormalizeListing(b)
		visible = append(visible, b)
	}
	return visible, nil
}

// GetPublicBusiness is the marketplace detail read path.
func (s *businessService) GetPublicBusiness(ctx context.Context, businessID string) (*models.PublicBusiness, error) {
	pub, err := s.businessRepo.GetPublic(ctx, businessID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrBusinessNotFound, businessID)
		}
		return nil, fmt.Errorf("failed to get business '%s': %w", businessID, err)
	}
	if pub.Status == models.StatusSuspended {
		return nil, fmt.Errorf("%w: '%s'", ErrBusinessNotFound, businessID)
	}
	NormalizeListing(pub)
	return pub, nil
}

func (s *businessService) resolveLocation(ctx context.Context, exact *models.GeoPoint, query geo.Query) models.GeoPoint {
	if exact != nil && exact.IsValid() {
		return *exact
	}
	point := s.geocoder.Resolve(ctx, query)
	return models.GeoPoint{Lat: point.Lat, Lng: point.Lng}
}

func (s *businessService) audit(ctx context.Context, userID, action, targetID string, details map[string]interface{}) {
	if s.auditService == nil {
		return
	}
	entry := models.AuditLog{
		UserID:     userID,
		Action:     action,
		TargetType: "BUSINESS",
		TargetID:   targetID,
		Details:    details,
	}
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}

// NormalizeListing fixes inconsistent legacy documents in place: full
// country names become ISO-2 codes and missing coordinates fall back to
// the static centroid for the business's department/country.
func NormalizeListing(b *models.PublicBusiness) {
	b.Country = geo.NormalizeCountry(b.Country)
	if !b.Location.IsValid() {
		point := geo.LocationFallback(b.Department, b.Country)
		b.Location = models.GeoPoint{Lat: point.Lat, Lng: point.Lng}
	}
}

// routePatch splits a profile patch into per-partition field maps.
func routePatch(patch models.ProfilePatch) (pubFields, privFields map[string]interface{}) {
	pubFields = map[string]interface{}{}
	privFields = map[string]interface{}{}

	if patch.Name != nil {
		pubFields["businessName"] = *patch.Name
	}
	if patch.Category != nil {
		pubFields["category"] = *patch.Category
	}
	if patch.Subcategory != nil {
		pubFields["subcategory"] = *patch.Subcategory
	}
	if patch.Subcategories != nil {
		pubFields["subcategories"] = *patch.Subcategories
	}
	if patch.Specialties != nil {
		pubFields["specialties"] = *patch.Specialties
	}
	if patch.City != nil {
		pubFields["city"] = *patch.City
	}
	if patch.Department != nil {
		pubFields["department"] = *patch.Department
	}
	if patch.Country != nil {
		pubFields["country"] = geo.NormalizeCountry(*patch.Country)
	}
	if patch.Modality != nil {
		pubFields["modality"] = *patch.Modality
	}
	if patch.CoverImage != nil {
		pubFields["coverImage"] = *patch.CoverImage
	}
	if patch.LogoImage != nil {
		pubFields["logoImage"] = *patch.LogoImage
	}
	if patch.OpeningHours != nil {
		pubFields["openingHours"] = *patch.OpeningHours
	}

	if patch.Description != nil {
		privFields["description"] = *patch.Description
	}
	if patch.ContactEmail != nil {
		privFields["contactEmail"] = *patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		privFields["contactPhone"] = *patch.ContactPhone
	}
	if patch.Address != nil {
		privFields["address"] = *patch.Address
	}
	if patch.Images != nil {
		privFields["images"] = *patch.Images
	}
	if patch.SocialMedia != nil {
		privFields["socialMedia"] = *patch.SocialMedia
	}
	if patch.AcceptsCard != nil {
		privFields["acceptsCard"] = *patch.AcceptsCard
	}
	if patch.AcceptsCash != nil {
		privFields["acceptsCash"] = *patch.AcceptsCash
	}
	return pubFields, privFields
}

func pick(patched *string, current string) string {
	if patched != nil {
		return *patched
	}
	return current
}
