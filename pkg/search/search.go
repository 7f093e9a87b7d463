// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search finds files that reference stale assets using GitHub code search
package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const perPage = 100

// 🔎 Query is a single code search query
type Query struct {
	Q     string
	Sort  string
	Order string
}

// DefaultQueries returns the queries that locate legacy auth0 CDN references
func DefaultQueries() []Query {
	return []Query{
		{Q: "cdn.auth0.com/w2/auth0 user:auth0", Sort: "created", Order: "asc"},
		{Q: "d19p4zemcycm7a.cloudfront.net user:auth0", Sort: "created", Order: "asc"},
	}
}

// 📄 Hit is a file returned by code search
type Hit struct {
	Repository string
	CloneURL   string
	Path       string
}

// IncompleteError is returned when a query yields fewer results than it reported
type IncompleteError struct {
	Query string
	Total int
	Got   int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("query %q reported %d results but returned %d", e.Query, e.Total, e.Got)
}

// 🔧 Option configures a Client
type Option func(*options)

type options struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// WithToken authenticates requests with a GitHub token
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithBaseURL points the client at a different API root, e.g. GitHub Enterprise or a test server
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// 🌐 Client runs code search queries
type Client struct {
	gh *github.Client
}

// 🏭 New creates a search client
func New(opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if o.token != "" {
		ctx := context.Background()
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.token}))
	}

	gh := github.NewClient(httpClient)

	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, errors.Errorf("parsing base url %q: %w", o.baseURL, err)
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

// 🚀 Search runs every query concurrently and returns the hits in query order.
// The first failing query fails the search.
func (c *Client) Search(ctx context.Context, queries []Query) ([]Hit, error) {
	results := make([][]Hit, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			hits, err := c.query(ctx, q)
			if err != nil {
				return errors.Errorf("searching %q: %w", q.Q, err)
			}
			results[i] = hits
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Hit
	for _, hits := range results {
		all = append(all, hits...)
	}
	return all, nil
}

func (c *Client) query(ctx context.Context, q Query) ([]Hit, error) {
	logger := zerolog.Ctx(ctx).With().Str("query", q.Q).Logger()

	opts := &github.SearchOptions{
		Sort:        q.Sort,
		Order:       q.Order,
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var (
		hits  []Hit
		total int
	)
	for {
		res, resp, err := c.gh.Search.Code(ctx, q.Q, opts)
		if err != nil {
			return nil, errors.Errorf("fetching page %d: %w", max(opts.Page, 1), err)
		}

		total = res.GetTotal()
		for _, r := range res.CodeResults {
			hits = append(hits, toHit(r))
		}

		logger.Debug().Int("page", max(opts.Page, 1)).Int("results", len(res.CodeResults)).Int("total", total).Msg("fetched search page")

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if len(hits) != total {
		return nil, &IncompleteError{Query: q.Q, Total: total, Got: len(hits)}
	}

	return hits, nil
}

func toHit(r *github.CodeResult) Hit {
	repo := r.GetRepository()
	cloneURL := repo.GetCloneURL()
	if cloneURL == "" {
		cloneURL = repo.GetHTMLURL()
	}
	return Hit{
		Repository: repo.GetName(),
		CloneURL:   cloneURL,
		Path:       r.GetPath(),
	}
}
