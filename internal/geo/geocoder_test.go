package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vecino-backend-go/internal/geo"
)

type memoryCache struct {
	mu    sync.Mutex
	store map[string]geo.Point
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string]geo.Point{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (geo.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.store[key]
	return p, ok
}

func (c *memoryCache) Set(_ context.Context, key string, p geo.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = p
}

func TestResolveMostSpecificQueryWins(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"15.5047","lon":"-88.0250"}]`))
	}))
	defer srv.Close()

	g := geo.NewGeocoder(srv.URL, "test-agent", nil, zap.NewNop())
	point := g.Resolve(context.Background(), geo.Query{
		Address:    "Barrio Río de Piedras",
		City:       "San Pedro Sula",
		Department: "Cortés",
		Country:    "HN",
	})

	require.Len(t, queries, 1)
	assert.Equal(t, "Barrio Río de Piedras, San Pedro Sula, Cortés, HN", queries[0])
	assert.InDelta(t, 15.5047, point.Lat, 0.0001)
	assert.InDelta(t, -88.0250, point.Lng, 0.0001)
}

func TestResolveFallsBackThroughChain(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		if len(queries) < 3 {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"lat":"15.5","lon":"-88.0"}]`))
	}))
	defer srv.Close()

	g := geo.NewGeocoder(srv.URL, "test-agent", nil, zap.NewNop())
	point := g.Resolve(context.Background(), geo.Query{
		Address:    "Calle Principal",
		City:       "San Pedro Sula",
		Department: "Cortés",
		Country:    "HN",
	})

	require.Len(t, queries, 3)
	assert.Equal(t, "Calle Principal, San Pedro Sula, Cortés, HN", queries[0])
	assert.Equal(t, "San Pedro Sula, Cortés, HN", queries[1])
	assert.Equal(t, "San Pedro Sula, HN", queries[2])
	assert.InDelta(t, 15.5, point.Lat, 0.0001)
}

func TestResolveCentroidWhenAPIEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := geo.NewGeocoder(srv.URL, "test-agent", nil, zap.NewNop())
	point := g.Resolve(context.Background(), geo.Query{
		City:       "Tela",
		Department: "Atlántida",
		Country:    "HN",
	})

	// The Atlántida centroid, not a zero point.
	assert.InDelta(t, 15.6680, point.Lat, 0.0001)
	assert.InDelta(t, -87.1422, point.Lng, 0.0001)
}

func TestResolveCentroidWhenAPIDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := geo.NewGeocoder(srv.URL, "test-agent", nil, zap.NewNop())
	point := g.Resolve(context.Background(), geo.Query{Department: "Choluteca", Country: "HN"})
	assert.InDelta(t, 13.3007, point.Lat, 0.0001)
}

func TestResolveUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"14.1","lon":"-87.2"}]`))
	}))
	defer srv.Close()

	cache := newMemoryCache()
	g := geo.NewGeocoder(srv.URL, "test-agent", cache, zap.NewNop())
	q := geo.Query{City: "Tegucigalpa", Country: "HN"}

	first := g.Resolve(context.Background(), q)
	second := g.Resolve(context.Background(), q)

	assert.Equal(t, 1, hits)
	assert.Equal(t, first, second)
}
