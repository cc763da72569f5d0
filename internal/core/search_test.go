package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
)

func sampleBusiness() *models.PublicBusiness {
	return &models.PublicBusiness{
		ID:          "biz-1",
		Name:        "Barbería El Corte",
		Category:    "beauty",
		Subcategory: "barbershop",
		City:        "San Pedro Sula",
		Department:  "Cortés",
		Specialties: []string{"fade", "classic_cut"},
	}
}

func TestMatchesSearch(t *testing.T) {
	b := sampleBusiness()

	assert.True(t, core.MatchesSearch(b, "corte"))
	assert.True(t, core.MatchesSearch(b, "barberia"))   // accent-insensitive
	assert.True(t, core.MatchesSearch(b, "BARBERÍA"))   // case-insensitive
	assert.True(t, core.MatchesSearch(b, "san pedro"))  // city
	assert.True(t, core.MatchesSearch(b, "fade"))       // specialty
	assert.True(t, core.MatchesSearch(b, ""))           // empty matches all
	assert.True(t, core.MatchesSearch(b, "   "))        // whitespace folds to empty
	assert.False(t, core.MatchesSearch(b, "zzz"))
	assert.False(t, core.MatchesSearch(b, "restaurante"))
}

func TestFilterBySearch(t *testing.T) {
	barberia := sampleBusiness()
	taller := &models.PublicBusiness{
		ID:       "biz-2",
		Name:     "Taller Méndez",
		Category: "automotive",
		City:     "Tegucigalpa",
	}
	all := []*models.PublicBusiness{barberia, taller}

	matched := core.FilterBySearch(all, "mendez")
	assert.Len(t, matched, 1)
	assert.Equal(t, "biz-2", matched[0].ID)

	assert.Len(t, core.FilterBySearch(all, ""), 2)
	assert.Empty(t, core.FilterBySearch(all, "panadería"))
}
