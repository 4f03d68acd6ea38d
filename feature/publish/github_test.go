package publish_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"search-sync/feature/publish"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func githubConfig() publish.GitHubConfig {
	return publish.GitHubConfig{
		Token:  "t",
		Owner:  "acme",
		Repo:   "site",
		Branch: "main",
		Path:   "public/search-index.json",
	}
}

// newGitHubTarget points a target at a fake API server.
func newGitHubTarget(t *testing.T, srv *httptest.Server) *publish.GitHubTarget {
	t.Helper()

	client := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return publish.NewGitHubTarget(client, githubConfig(), zap.NewNop())
}

const contentsPath = "/repos/acme/site/contents/public/search-index.json"

func TestGitHubPublishUpdatesExistingFile(t *testing.T) {
	var update map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, contentsPath, r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "main", r.URL.Query().Get("ref"))
			_, _ = w.Write([]byte(`{"type":"file","path":"public/search-index.json","sha":"oldsha"}`))
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
			_, _ = w.Write([]byte(`{"content":{"sha":"newsha"}}`))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	err := newGitHubTarget(t, srv).Publish(context.Background(), []byte(`{"totalItems":0}`))
	require.NoError(t, err)

	// The stored revision marker rides along on the update
	assert.Equal(t, "oldsha", update["sha"])
	assert.Equal(t, "main", update["branch"])
	assert.NotEmpty(t, update["content"])
}

func TestGitHubPublishCreatesMissingFile(t *testing.T) {
	var create map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&create))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"content":{"sha":"newsha"}}`))
		}
	}))
	defer srv.Close()

	err := newGitHubTarget(t, srv).Publish(context.Background(), []byte(`{}`))
	require.NoError(t, err)

	// Fresh create carries no revision marker
	_, hasSHA := create["sha"]
	assert.False(t, hasSHA)
}

func TestGitHubPublishProceedsWhenMarkerFetchFails(t *testing.T) {
	put := false

	// The SHA probe fails with a non-404; the upload still goes out as a
	// fresh create instead of aborting.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"oops"}`))
		case http.MethodPut:
			put = true
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"content":{"sha":"newsha"}}`))
		}
	}))
	defer srv.Close()

	err := newGitHubTarget(t, srv).Publish(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.True(t, put)
}

func TestGitHubPublishRejectedWrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		case http.MethodPut:
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"rejected"}`))
		}
	}))
	defer srv.Close()

	err := newGitHubTarget(t, srv).Publish(context.Background(), []byte(`{}`))
	assert.Error(t, err)
}
