package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hempdb/entities"
)

func countingServer(t *testing.T, hits *int32, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListResponsesAreCached(t *testing.T) {
	var hits int32
	srv := countingServer(t, &hits, http.StatusOK, []entities.Industry{{ID: 1, Name: "Textiles"}})

	c := New(srv.URL)
	clock := time.Now()
	c.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		got, err := c.Industries()
		require.NoError(t, err)
		require.Len(t, got, 1)
	}
	assert.EqualValues(t, 1, hits)

	// past the staleness window the next read refetches
	clock = clock.Add(listTTL + time.Second)
	_, err := c.Industries()
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits)
}

func TestSearchUsesShorterWindow(t *testing.T) {
	var hits int32
	srv := countingServer(t, &hits, http.StatusOK, []entities.HempProduct{})

	c := New(srv.URL)
	clock := time.Now()
	c.now = func() time.Time { return clock }

	_, err := c.SearchProducts("hempcrete")
	require.NoError(t, err)
	_, err = c.SearchProducts("hempcrete")
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits)

	clock = clock.Add(searchTTL + time.Second)
	_, err = c.SearchProducts("hempcrete")
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits)
}

func TestShortQueriesNeverHitTheNetwork(t *testing.T) {
	var hits int32
	srv := countingServer(t, &hits, http.StatusOK, []entities.HempProduct{})
	c := New(srv.URL)

	for _, q := range []string{"", "a", "ab", "  ab "} {
		got, err := c.SearchProducts(q)
		require.NoError(t, err, "query %q", q)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
	papers, err := c.SearchResearchPapers("xy")
	require.NoError(t, err)
	assert.Empty(t, papers)
	assert.Zero(t, hits)
}

func TestErrorsAreNotCachedOrConflated(t *testing.T) {
	var hits int32
	fail := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"Failed to fetch industries"}`))
			return
		}
		_ = json.NewEncoder(w).Encode([]entities.Industry{{ID: 1, Name: "Paper"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Industries()
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Failed to fetch industries", apiErr.Message)

	// recovery is visible immediately: the failure was not cached
	fail = false
	got, err := c.Industries()
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 2, hits)
}

func TestAPIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		_ = json.NewEncoder(w).Encode([]entities.PlantType{})
	}))
	defer srv.Close()

	c := New(srv.URL, WithAPIKey("k-123"))
	_, err := c.PlantTypes()
	require.NoError(t, err)
	assert.Equal(t, "k-123", gotKey)
}

func TestInvalidateDropsCache(t *testing.T) {
	var hits int32
	srv := countingServer(t, &hits, http.StatusOK, []entities.PlantType{{ID: 1, Name: "Fiber Hemp"}})
	c := New(srv.URL)

	_, err := c.PlantTypes()
	require.NoError(t, err)
	_, err = c.PlantTypes()
	require.NoError(t, err)
	require.EqualValues(t, 1, hits)

	c.Invalidate()
	_, err = c.PlantTypes()
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits)
}

func TestProductsPageEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("pagination"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"products":[{"id":6,"name":"P6","description":"d","plantPartId":1,"industryId":1}],
			"pagination":{"page":2,"limit":5,"total":11,"pages":3}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	pg, err := c.ProductsPage(2, 5, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, pg.Products, 1)
	assert.EqualValues(t, 11, pg.Pagination.Total)
	assert.EqualValues(t, 3, pg.Pagination.Pages)
}
