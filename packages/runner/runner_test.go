package runner

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandev/coman/packages/collection"
	"github.com/comandev/coman/packages/http"
	"github.com/comandev/coman/packages/repo"
	"github.com/comandev/coman/packages/store"
)

func TestRunCollectionSequential(t *testing.T) {
	var order []string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		order = append(order, r.URL.Path)
		if r.URL.Path == "/fail" {
			w.WriteHeader(500)
		}
	}))
	defer server.Close()

	m := repo.New(store.New(filepath.Join(t.TempDir(), "coman.json")))
	require.NoError(t, m.AddCollection("api", server.URL, nil))
	require.NoError(t, m.AddEndpoint("api", "one", "/one", collection.Get, nil, nil))
	require.NoError(t, m.AddEndpoint("api", "fail", "/fail", collection.Get, nil, nil))
	require.NoError(t, m.AddEndpoint("api", "two", "/two", collection.Get, nil, nil))

	var results []EndpointResult
	r := New(m, http.NewClient(), WithReporter(func(res EndpointResult) {
		results = append(results, res)
	}))

	summary, err := r.RunCollection(context.Background(), "api")
	require.NoError(t, err)

	assert.Equal(t, []string{"/one", "/fail", "/two"}, order)
	assert.Equal(t, 3, summary.Total)
	// A 500 is a completed request, not a batch failure.
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, results, 3)
	assert.Equal(t, 500, results[1].Response.StatusCode)
	assert.Positive(t, summary.Max)
}

func TestRunCollectionPartialFailure(t *testing.T) {
	// Nothing listens on port 1, so every request fails at the
	// transport level; the batch must still visit every endpoint.
	m := repo.New(store.New(filepath.Join(t.TempDir(), "coman.json")))
	require.NoError(t, m.AddCollection("dead", "http://127.0.0.1:1", nil))
	require.NoError(t, m.AddEndpoint("dead", "x", "/x", collection.Get, nil, nil))
	require.NoError(t, m.AddEndpoint("dead", "y", "/y", collection.Get, nil, nil))

	var results []EndpointResult
	r := New(m, http.NewClient(), WithReporter(func(res EndpointResult) {
		results = append(results, res)
	}))

	summary, err := r.RunCollection(context.Background(), "dead")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, results, 2)
	assert.True(t, results[0].Failed())
	assert.True(t, results[1].Failed())
}

func TestRunCollectionMissing(t *testing.T) {
	m := repo.New(store.New(filepath.Join(t.TempDir(), "coman.json")))
	r := New(m, http.NewClient())
	_, err := r.RunCollection(context.Background(), "nope")
	var notFound *repo.CollectionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRunCollectionWithRate(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	defer server.Close()

	m := repo.New(store.New(filepath.Join(t.TempDir(), "coman.json")))
	require.NoError(t, m.AddCollection("api", server.URL, nil))
	require.NoError(t, m.AddEndpoint("api", "a", "/a", collection.Get, nil, nil))
	require.NoError(t, m.AddEndpoint("api", "b", "/b", collection.Get, nil, nil))

	r := New(m, http.NewClient(), WithRate(1000))
	summary, err := r.RunCollection(context.Background(), "api")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
}
