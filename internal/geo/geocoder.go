// Package geo resolves business locations. Lookups go to a Nominatim-style
// geocoding API with a descending-specificity query chain; when every HTTP
// attempt fails or returns nothing the static centroid tables take over, so
// a caller always ends up with usable coordinates.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Point is a resolved coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Query is the structured input to a geocoding attempt.
type Query struct {
	Address    string
	City       string
	Department string
	Country    string
}

// Cache stores geocoding results keyed by the rendered query string. A nil
// cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) (Point, bool)
	Set(ctx context.Context, key string, p Point)
}

// Geocoder wraps the external geocoding HTTP API.
type Geocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      Cache
	logger     *zap.Logger
}

// NewGeocoder creates a Geocoder. cache may be nil.
func NewGeocoder(baseURL, userAgent string, cache Cache, logger *zap.Logger) *Geocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	if userAgent == "" {
		userAgent = "vecino-backend/1.0"
	}
	return &Geocoder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 8 * time.Second},
		cache:      cache,
		logger:     logger,
	}
}

// nominatimResult is one element of the search response array; only the
// first element's lat/lon are consumed.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve runs the fallback chain: most-specific query first, static
// centroid tables last. It never returns a zero point for a non-empty
// query.
func (g *Geocoder) Resolve(ctx context.Context, q Query) Point {
	for _, candidate := range g.queryChain(q) {
		point, err := g.search(ctx, candidate)
		if err != nil {
			if g.logger != nil {
				g.logger.Warn("geocoding attempt failed", zap.String("query", candidate), zap.Error(err))
			}
			continue
		}
		if point != nil {
			return *point
		}
	}
	return LocationFallback(q.Department, q.Country)
}

// queryChain builds the descending-specificity query list:
// address+city+state → city+state → city → state, each suffixed with the
// country when present.
func (g *Geocoder) queryChain(q Query) []string {
	country := strings.TrimSpace(q.Country)
	join := func(parts ...string) string {
		var kept []string
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				kept = append(kept, s)
			}
		}
		if country != "" {
			kept = append(kept, country)
		}
		return strings.Join(kept, ", ")
	}

	var chain []string
	seen := map[string]bool{}
	for _, candidate := range []string{
		join(q.Address, q.City, q.Department),
		join(q.City, q.Department),
		join(q.City),
		join(q.Department),
	} {
		if candidate == "" || candidate == country || seen[candidate] {
			continue
		}
		seen[candidate] = true
		chain = append(chain, candidate)
	}
	return chain
}

// search issues one geocoding request. A nil point with nil error means the
// API answered with no results.
func (g *Geocoder) search(ctx context.Context, query string) (*Point, error) {
	if g.cache != nil {
		if point, ok := g.cache.Get(ctx, query); ok {
			return &point, nil
		}
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", g.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lat in geocoding response: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lon in geocoding response: %w", err)
	}

	point := Point{Lat: lat, Lng: lng}
	if g.cache != nil {
		g.cache.Set(ctx, query, point)
	}
	return &point, nil
}
