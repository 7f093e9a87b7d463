package search_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/cdnpin/pkg/search"
	"gitlab.com/tozd/go/errors"
)

type item struct {
	Path       string `json:"path"`
	Repository struct {
		Name     string `json:"name"`
		CloneURL string `json:"clone_url,omitempty"`
		HTMLURL  string `json:"html_url,omitempty"`
	} `json:"repository"`
}

func newItem(repo, path string) item {
	var it item
	it.Path = path
	it.Repository.Name = repo
	it.Repository.CloneURL = "https://github.com/auth0/" + repo + ".git"
	it.Repository.HTMLURL = "https://github.com/auth0/" + repo
	return it
}

// 🧪 fakeSearch serves paginated code search results per query
func fakeSearch(t *testing.T, pages map[string][][]item, totals map[string]int) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/code" {
			http.NotFound(w, r)
			return
		}

		q := r.URL.Query().Get("q")
		qp, ok := pages[q]
		if !ok {
			http.Error(w, `{"message":"unexpected query"}`, http.StatusUnprocessableEntity)
			return
		}

		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			var err error
			page, err = strconv.Atoi(p)
			assert.NoError(t, err)
		}

		if page < len(qp) {
			next := fmt.Sprintf("%s/search/code?q=%s&page=%d", srv.URL, r.URL.Query().Get("q"), page+1)
			w.Header().Set("Link", fmt.Sprintf(`<%s>; rel="next"`, next))
		}

		total, ok := totals[q]
		if !ok {
			for _, p := range qp {
				total += len(p)
			}
		}

		items := []item{}
		if page <= len(qp) {
			items = qp[page-1]
		}

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"total_count":        total,
			"incomplete_results": false,
			"items":              items,
		}))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestClient_Search(t *testing.T) {
	t.Run("paginates_and_keeps_query_order", func(t *testing.T) {
		srv := fakeSearch(t, map[string][][]item{
			"first":  {{newItem("a", "index.html"), newItem("b", "login.html")}, {newItem("c", "app.js")}},
			"second": {{newItem("d", "public/index.html")}},
		}, nil)

		client, err := search.New(search.WithBaseURL(srv.URL), search.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		hits, err := client.Search(testContext(t), []search.Query{{Q: "first"}, {Q: "second"}})
		require.NoError(t, err)

		assert.Equal(t, []search.Hit{
			{Repository: "a", CloneURL: "https://github.com/auth0/a.git", Path: "index.html"},
			{Repository: "b", CloneURL: "https://github.com/auth0/b.git", Path: "login.html"},
			{Repository: "c", CloneURL: "https://github.com/auth0/c.git", Path: "app.js"},
			{Repository: "d", CloneURL: "https://github.com/auth0/d.git", Path: "public/index.html"},
		}, hits)
	})

	t.Run("falls_back_to_html_url", func(t *testing.T) {
		it := newItem("a", "index.html")
		it.Repository.CloneURL = ""
		srv := fakeSearch(t, map[string][][]item{"q": {{it}}}, nil)

		client, err := search.New(search.WithBaseURL(srv.URL+"/"), search.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		hits, err := client.Search(testContext(t), []search.Query{{Q: "q"}})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "https://github.com/auth0/a", hits[0].CloneURL)
	})

	t.Run("count_mismatch_is_incomplete", func(t *testing.T) {
		srv := fakeSearch(t, map[string][][]item{"q": {{newItem("a", "index.html")}}}, map[string]int{"q": 5})

		client, err := search.New(search.WithBaseURL(srv.URL), search.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		_, err = client.Search(testContext(t), []search.Query{{Q: "q"}})
		require.Error(t, err)

		var incomplete *search.IncompleteError
		require.True(t, errors.As(err, &incomplete))
		assert.Equal(t, 5, incomplete.Total)
		assert.Equal(t, 1, incomplete.Got)
	})

	t.Run("api_error_fails_search", func(t *testing.T) {
		srv := fakeSearch(t, map[string][][]item{"ok": {{newItem("a", "index.html")}}}, nil)

		client, err := search.New(search.WithBaseURL(srv.URL), search.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		_, err = client.Search(testContext(t), []search.Query{{Q: "ok"}, {Q: "broken"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `searching "broken"`)
	})

	t.Run("sends_token", func(t *testing.T) {
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total_count":0,"incomplete_results":false,"items":[]}`))
		}))
		t.Cleanup(srv.Close)

		client, err := search.New(search.WithToken("s3cret"), search.WithBaseURL(srv.URL), search.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		hits, err := client.Search(testContext(t), []search.Query{{Q: "anything"}})
		require.NoError(t, err)
		assert.Empty(t, hits)
		assert.Equal(t, "Bearer s3cret", auth)
	})

	t.Run("no_queries", func(t *testing.T) {
		client, err := search.New()
		require.NoError(t, err)

		hits, err := client.Search(testContext(t), nil)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := search.New(search.WithBaseURL("://bad"))
	require.Error(t, err)
}

func TestDefaultQueries(t *testing.T) {
	queries := search.DefaultQueries()
	require.Len(t, queries, 2)
	for _, q := range queries {
		assert.Contains(t, q.Q, "user:auth0")
		assert.Equal(t, "created", q.Sort)
		assert.Equal(t, "asc", q.Order)
	}
}
