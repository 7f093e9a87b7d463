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

package mirror

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🗄️ Store is a directory holding one clone per repository, named after the repository
type Store struct {
	root  string
	git   Git
	limit int
}

// 🏭 NewStore creates a store rooted at root, made absolute against the working
// directory. limit bounds how many mirrors are opened at once; zero or less
// means no bound.
func NewStore(root string, git Git, limit int) *Store {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = filepath.Clean(root)
	}
	return &Store{
		root:  abs,
		git:   git,
		limit: limit,
	}
}

// Root returns the store directory
func (s *Store) Root() string {
	return s.root
}

// 📍 Path returns the directory a mirror called name lives in
func (s *Store) Path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// ValidateName rejects repository names that cannot be used as a single store subdirectory
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return errors.Errorf("invalid repository name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return errors.Errorf("repository name %q must not contain a path separator", name)
	}
	return nil
}

// 📋 List opens every mirror in the store, creating the store if it does not exist.
// Any subdirectory that is not a valid repository fails the listing.
func (s *Store) List(ctx context.Context) (map[string]*Mirror, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(s.root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debug().Str("store", s.root).Msg("creating mirror store")
		if err := os.MkdirAll(s.root, 0o755); err != nil {
			return nil, errors.Errorf("creating mirror store: %w", err)
		}
		return map[string]*Mirror{}, nil
	case err != nil:
		return nil, errors.Errorf("checking mirror store: %w", err)
	case !info.IsDir():
		return nil, &ConfigurationError{Path: s.root}
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.Errorf("reading mirror store: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}

	opened := make([]*Mirror, len(names))

	var g errgroup.Group
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			dir := filepath.Join(s.root, name)
			repo, err := s.git.Open(ctx, dir)
			if err != nil {
				return &InvalidMirrorError{Name: name, Path: dir, Err: err}
			}

			m, err := newMirror(name, dir, repo, false)
			if err != nil {
				return &InvalidMirrorError{Name: name, Path: dir, Err: err}
			}

			opened[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	mirrors := make(map[string]*Mirror, len(opened))
	for _, m := range opened {
		mirrors[m.Name] = m
	}

	logger.Debug().Str("store", s.root).Int("mirrors", len(mirrors)).Msg("listed mirrors")

	return mirrors, nil
}
