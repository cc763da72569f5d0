package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecino-backend-go/internal/taxonomy"
)

func TestCategoriesTree(t *testing.T) {
	cats := taxonomy.Categories()
	require.NotEmpty(t, cats)

	ids := make(map[string]bool)
	for _, c := range cats {
		assert.False(t, ids[c.ID], "duplicate category id %q", c.ID)
		ids[c.ID] = true
		assert.NotEmpty(t, c.Subcategories, "category %q has no subcategories", c.ID)
		for _, sub := range c.Subcategories {
			assert.NotEmpty(t, sub.Label.ES, "subcategory %q lacks a Spanish label", sub.ID)
		}
	}
	assert.True(t, ids["beauty"])
	assert.True(t, ids["automotive"])
}

func TestFindCategory(t *testing.T) {
	cat, ok := taxonomy.FindCategory("beauty")
	require.True(t, ok)
	assert.Equal(t, "Belleza", cat.Label.ES)

	_, ok = taxonomy.FindCategory("nonexistent")
	assert.False(t, ok)
}

func TestFindSubcategory(t *testing.T) {
	sub, ok := taxonomy.FindSubcategory("beauty", "barbershop")
	require.True(t, ok)
	assert.Equal(t, "Barbería", sub.Label.ES)

	_, ok = taxonomy.FindSubcategory("beauty", "dentist")
	assert.False(t, ok)
	_, ok = taxonomy.FindSubcategory("nonexistent", "barbershop")
	assert.False(t, ok)
}

func TestValidSpecialty(t *testing.T) {
	assert.True(t, taxonomy.ValidSpecialty("beauty", "fade"))
	assert.True(t, taxonomy.ValidSpecialty("beauty", "manicure"))
	assert.False(t, taxonomy.ValidSpecialty("beauty", "orthodontics"))
	assert.False(t, taxonomy.ValidSpecialty("nonexistent", "fade"))
}

func TestLabelResolve(t *testing.T) {
	cat, ok := taxonomy.FindCategory("health")
	require.True(t, ok)
	assert.Equal(t, "Salud", cat.Label.Resolve("es"))
	assert.Equal(t, "Health", cat.Label.Resolve("en"))
	assert.Equal(t, "Saúde", cat.Label.Resolve("pt"))
	// Unknown locales fall back to Spanish.
	assert.Equal(t, "Salud", cat.Label.Resolve("fr"))
}
