package geo

import "strings"

// Centroid coordinates used when geocoding fails or a business was stored
// without usable coordinates. Department-level entries exist for Honduras
// only; everywhere else resolves to the country centroid.

var hondurasDepartments = map[string]Point{
	"atlantida":         {Lat: 15.6680, Lng: -87.1422},
	"choluteca":         {Lat: 13.3007, Lng: -87.1908},
	"colon":             {Lat: 15.6425, Lng: -85.5200},
	"comayagua":         {Lat: 14.4603, Lng: -87.6430},
	"copan":             {Lat: 14.9360, Lng: -88.8650},
	"cortes":            {Lat: 15.5047, Lng: -88.0250},
	"el paraiso":        {Lat: 13.8587, Lng: -86.5650},
	"francisco morazan": {Lat: 14.0723, Lng: -87.1921},
	"gracias a dios":    {Lat: 15.3418, Lng: -84.6060},
	"intibuca":          {Lat: 14.3170, Lng: -88.1760},
	"islas de la bahia": {Lat: 16.3244, Lng: -86.5301},
	"la paz":            {Lat: 14.3178, Lng: -87.6770},
	"lempira":           {Lat: 14.5833, Lng: -88.5833},
	"ocotepeque":        {Lat: 14.4370, Lng: -89.1830},
	"olancho":           {Lat: 14.8067, Lng: -85.7667},
	"santa barbara":     {Lat: 14.9190, Lng: -88.2360},
	"valle":             {Lat: 13.5333, Lng: -87.5833},
	"yoro":              {Lat: 15.1380, Lng: -87.1250},
}

var countryCentroids = map[string]Point{
	"HN": {Lat: 14.0723, Lng: -87.1921}, // Tegucigalpa
	"GT": {Lat: 14.6349, Lng: -90.5069},
	"SV": {Lat: 13.6929, Lng: -89.2182},
	"NI": {Lat: 12.1150, Lng: -86.2362},
	"CR": {Lat: 9.9281, Lng: -84.0907},
	"PA": {Lat: 8.9824, Lng: -79.5199},
	"MX": {Lat: 19.4326, Lng: -99.1332},
	"US": {Lat: 39.8283, Lng: -98.5795},
	"ES": {Lat: 40.4168, Lng: -3.7038},
}

var countryNames = map[string]string{
	"honduras":       "HN",
	"guatemala":      "GT",
	"el salvador":    "SV",
	"nicaragua":      "NI",
	"costa rica":     "CR",
	"panama":         "PA",
	"mexico":         "MX",
	"estados unidos": "US",
	"united states":  "US",
	"espana":         "ES",
	"spain":          "ES",
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ä", "a", "ë", "e", "ï", "i", "ö", "o", "ü", "u",
	"ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"Ñ", "n",
)

// FoldAccents lowercases and strips the Spanish accents and ñ, so that
// "Atlántida" and "atlantida" compare equal.
func FoldAccents(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// NormalizeCountry maps legacy country values (full names in either
// language) onto ISO-2 codes. Already-normalized codes pass through
// uppercased; unknown values come back unchanged.
func NormalizeCountry(country string) string {
	trimmed := strings.TrimSpace(country)
	if len(trimmed) == 2 {
		return strings.ToUpper(trimmed)
	}
	if code, ok := countryNames[FoldAccents(trimmed)]; ok {
		return code
	}
	return trimmed
}

// LocationFallback resolves a static centroid for the given place. For
// Honduras a department match (accent-insensitive, tolerant of partial
// names like "Fco. Morazan" vs "Francisco Morazán") beats the country
// centroid. A point is always returned; unknown countries land on the
// Honduras default since that is where the marketplace operates.
func LocationFallback(department, country string) Point {
	code := NormalizeCountry(country)
	if code == "" {
		code = "HN"
	}
	if code == "HN" && department != "" {
		needle := FoldAccents(department)
		for name, point := range hondurasDepartments {
			if strings.HasPrefix(name, needle) || strings.Contains(needle, name) || strings.Contains(name, needle) {
				return point
			}
		}
	}
	if point, ok := countryCentroids[code]; ok {
		return point
	}
	return countryCentroids["HN"]
}
