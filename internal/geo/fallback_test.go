package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vecino-backend-go/internal/geo"
)

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "atlantida", geo.FoldAccents("Atlántida"))
	assert.Equal(t, "francisco morazan", geo.FoldAccents("  Francisco Morazán "))
	assert.Equal(t, "nino", geo.FoldAccents("Niño"))
	assert.Equal(t, "", geo.FoldAccents("   "))
}

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "HN", geo.NormalizeCountry("hn"))
	assert.Equal(t, "HN", geo.NormalizeCountry("Honduras"))
	assert.Equal(t, "US", geo.NormalizeCountry("Estados Unidos"))
	assert.Equal(t, "ES", geo.NormalizeCountry("España"))
	// Unknown long-form values come back unchanged.
	assert.Equal(t, "Atlantis", geo.NormalizeCountry("Atlantis"))
}

func TestLocationFallbackDepartmentBeatsCountry(t *testing.T) {
	point := geo.LocationFallback("Atlántida", "HN")
	assert.InDelta(t, 15.6680, point.Lat, 0.0001)
	assert.InDelta(t, -87.1422, point.Lng, 0.0001)
}

func TestLocationFallbackPartialDepartmentName(t *testing.T) {
	// Abbreviated department names stored by older clients still match.
	point := geo.LocationFallback("Francisco Morazan", "Honduras")
	assert.InDelta(t, 14.0723, point.Lat, 0.0001)

	point = geo.LocationFallback("Islas de la Bahía", "HN")
	assert.InDelta(t, 16.3244, point.Lat, 0.0001)
}

func TestLocationFallbackCountryCentroid(t *testing.T) {
	point := geo.LocationFallback("", "GT")
	assert.InDelta(t, 14.6349, point.Lat, 0.0001)
	assert.InDelta(t, -90.5069, point.Lng, 0.0001)

	// Departments outside Honduras are ignored.
	point = geo.LocationFallback("Quetzaltenango", "GT")
	assert.InDelta(t, 14.6349, point.Lat, 0.0001)
}

func TestLocationFallbackAlwaysReturnsPoint(t *testing.T) {
	// Unknown country, unknown department: land on the Honduras default.
	point := geo.LocationFallback("Nowhere", "ZZ")
	assert.NotZero(t, point.Lat)
	assert.NotZero(t, point.Lng)

	point = geo.LocationFallback("", "")
	assert.InDelta(t, 14.0723, point.Lat, 0.0001)
}
