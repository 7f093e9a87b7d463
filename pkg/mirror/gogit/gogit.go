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

// Package gogit implements mirror.Git on top of go-git, without shelling out to a git binary.
package gogit

import (
	"context"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/rs/zerolog"
	"github.com/walteh/cdnpin/pkg/mirror"
	"gitlab.com/tozd/go/errors"
)

var _ mirror.Git = (*Client)(nil)

// 🎯 Client opens and clones repositories with go-git
type Client struct {
	token    string
	progress io.Writer
}

// Option configures a Client
type Option func(*Client)

// 🔑 WithToken authenticates https remotes with a GitHub style access token
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithProgress streams remote progress messages to w
func WithProgress(w io.Writer) Option {
	return func(c *Client) {
		c.progress = w
	}
}

// 🏭 New creates a go-git client
func New(opts ...Option) *Client {
	c := &Client{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// authFor returns basic auth for https urls when a token is configured
func (c *Client) authFor(url string) transport.AuthMethod {
	if c.token == "" || !strings.HasPrefix(url, "https://") {
		return nil
	}
	return &githttp.BasicAuth{
		Username: "x-access-token",
		Password: c.token,
	}
}

// 📂 Open loads the clone at path. Parent directories are not searched for a .git.
func (c *Client) Open(ctx context.Context, path string) (mirror.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: false})
	if err != nil {
		return nil, errors.Errorf("opening repository: %w", err)
	}
	return &Repository{client: c, repo: repo}, nil
}

// 📥 Clone clones url into path with a working tree of the default branch
func (c *Client) Clone(ctx context.Context, url, path string) (mirror.Repository, error) {
	zerolog.Ctx(ctx).Debug().Str("url", url).Str("path", path).Msg("git clone")

	repo, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:        url,
		RemoteName: mirror.Origin,
		Auth:       c.authFor(url),
		Progress:   c.progress,
	})
	if err != nil {
		return nil, errors.Errorf("cloning repository: %w", err)
	}
	return &Repository{client: c, repo: repo}, nil
}

// 📦 Repository wraps an opened go-git repository
type Repository struct {
	client *Client
	repo   *git.Repository
}

// Root returns the working tree root
func (r *Repository) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", errors.Errorf("getting worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// 🔃 Fetch downloads objects and refs from remote
func (r *Repository) Fetch(ctx context.Context, remote string) error {
	rem, err := r.repo.Remote(remote)
	if err != nil {
		return errors.Errorf("getting remote %s: %w", remote, err)
	}

	var url string
	if urls := rem.Config().URLs; len(urls) > 0 {
		url = urls[0]
	}

	err = r.repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remote,
		Auth:       r.client.authFor(url),
		Progress:   r.client.progress,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return errors.Errorf("fetching %s: %w", remote, err)
	}
	return nil
}

// ⏪ Reset moves the checked out branch and working tree to the fetched remote branch
func (r *Repository) Reset(ctx context.Context, remote string) error {
	head, err := r.repo.Head()
	if err != nil {
		return errors.Errorf("resolving HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return errors.Errorf("HEAD is detached at %s", head.Hash())
	}

	remoteRef := plumbing.NewRemoteReferenceName(remote, head.Name().Short())
	ref, err := r.repo.Reference(remoteRef, true)
	if err != nil {
		return errors.Errorf("resolving %s: %w", remoteRef, err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return errors.Errorf("getting worktree: %w", err)
	}

	if err := wt.Reset(&git.ResetOptions{Commit: ref.Hash(), Mode: git.HardReset}); err != nil {
		return errors.Errorf("resetting to %s: %w", remoteRef, err)
	}

	zerolog.Ctx(ctx).Debug().Str("ref", remoteRef.String()).Str("commit", ref.Hash().String()).Msg("reset worktree")

	return nil
}
