package core

import (
	"strings"

	"vecino-backend-go/internal/geo"
	"vecino-backend-go/internal/models"
)

// MatchesSearch reports whether a business matches a free-text search
// term. Matching is accent-insensitive substring over name, category,
// subcategories, specialties and city; an empty term matches everything.
func MatchesSearch(b *models.PublicBusiness, term string) bool {
	needle := geo.FoldAccents(term)
	if needle == "" {
		return true
	}

	haystacks := []string{b.Name, b.Category, b.Subcategory, b.City, b.Department}
	haystacks = append(haystacks, b.Subcategories...)
	haystacks = append(haystacks, b.Specialties...)

	for _, h := range haystacks {
		if strings.Contains(geo.FoldAccents(h), needle) {
			return true
		}
	}
	return false
}

// FilterBySearch returns the businesses matching the term, preserving
// order.
func FilterBySearch(businesses []*models.PublicBusiness, term string) []*models.PublicBusiness {
	if strings.TrimSpace(term) == "" {
		return businesses
	}
	matched := make([]*models.PublicBusiness, 0, len(businesses))
	for _, b := range businesses {
		if MatchesSearch(b, term) {
			matched = append(matched, b)
		}
	}
	return matched
}
