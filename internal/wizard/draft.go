// Package wizard models the business setup flow as an explicit draft value
// with pure step-validity predicates, instead of implicit transient form
// state. The draft accumulates across steps; each step has a predicate over
// the whole draft, and navigation only moves forward past valid steps.
package wizard

import (
	"vecino-backend-go/internal/models"
	"vecino-backend-go/internal/taxonomy"
)

// Step identifies one screen of the setup flow.
type Step int

const (
	StepIdentity Step = iota // name, category, modality
	StepTaxonomy             // subcategories + specialties
	StepLocation             // city, department, country, address
	StepDetails              // description, contact, images, hours
	StepConfirm
)

// steps in display order.
var steps = []Step{StepIdentity, StepTaxonomy, StepLocation, StepDetails, StepConfirm}

// Draft is the accumulated setup form state.
type Draft struct {
	Name          string
	Category      string
	Modality      models.Modality
	Subcategory   string
	Subcategories []string
	Specialties   []string
	City          string
	Department    string
	Country       string
	Address       string
	Location      *models.GeoPoint
	Description   string
	ContactEmail  string
	ContactPhone  string
	Images        []string
	CoverImage    string
	LogoImage     string
	OpeningHours  models.OpeningHours
}

// StepValid is the validity predicate for a single step.
func (d Draft) StepValid(step Step) bool {
	switch step {
	case StepIdentity:
		if d.Name == "" || d.Modality == "" {
			return false
		}
		_, ok := taxonomy.FindCategory(d.Category)
		return ok
	case StepTaxonomy:
		if len(d.Subcategories) > taxonomy.MaxExtraCategories {
			return false
		}
		if len(d.Specialties) > taxonomy.MaxSpecialties {
			return false
		}
		for _, sp := range d.Specialties {
			if !taxonomy.ValidSpecialty(d.Category, sp) {
				return false
			}
		}
		return true
	case StepLocation:
		// An exact pin is enough; otherwise at least a city or department is
		// needed for the geocoder to have something to work with.
		if d.Location != nil && d.Location.IsValid() {
			return true
		}
		return d.City != "" || d.Department != ""
	case StepDetails:
		// Everything on this step is optional.
		return true
	case StepConfirm:
		return d.Complete()
	}
	return false
}

// Complete reports whether every step preceding confirmation is valid.
func (d Draft) Complete() bool {
	for _, s := range steps {
		if s == StepConfirm {
			return true
		}
		if !d.StepValid(s) {
			return false
		}
	}
	return true
}

// Next returns the step after current if current is valid, otherwise stays
// put. Moving past the last step stays on the last step.
func (d Draft) Next(current Step) Step {
	if !d.StepValid(current) {
		return current
	}
	for i, s := range steps {
		if s == current && i+1 < len(steps) {
			return steps[i+1]
		}
	}
	return current
}

// Prev returns the step before current; backward navigation never blocks.
func (d Draft) Prev(current Step) Step {
	for i, s := range steps {
		if s == current && i > 0 {
			return steps[i-1]
		}
	}
	return current
}

// ToCreateRequest maps a complete draft onto the profile-creation payload.
func (d Draft) ToCreateRequest() models.CreateProfileRequest {
	return models.CreateProfileRequest{
		Name:          d.Name,
		Category:      d.Category,
		Modality:      d.Modality,
		Subcategory:   d.Subcategory,
		Subcategories: d.Subcategories,
		Specialties:   d.Specialties,
		City:          d.City,
		Department:    d.Department,
		Country:       d.Country,
		Address:       d.Address,
		Location:      d.Location,
		Description:   d.Description,
		ContactEmail:  d.ContactEmail,
		ContactPhone:  d.ContactPhone,
		CoverImage:    d.CoverImage,
		LogoImage:     d.LogoImage,
		Images:        d.Images,
		OpeningHours:  d.OpeningHours,
	}
}
