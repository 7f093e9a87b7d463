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
)

// Origin is the remote every mirror is updated from
const Origin = "origin"

// 🔌 Git is the version control collaborator the store and syncer depend on
type Git interface {
	// Open loads an existing clone at path
	Open(ctx context.Context, path string) (Repository, error)
	// Clone clones url into path, which must not exist yet
	Clone(ctx context.Context, url, path string) (Repository, error)
}

// 📦 Repository is an opened local clone
type Repository interface {
	// Root returns the working tree root
	Root() (string, error)
	// Fetch downloads new objects and refs from remote. Being up to date is not an error.
	Fetch(ctx context.Context, remote string) error
	// Reset hard resets the working tree to the fetched remote branch that HEAD tracks
	Reset(ctx context.Context, remote string) error
}

// 🪞 Mirror is a local clone of one repository inside the store
type Mirror struct {
	Name string
	// Path is the store subdirectory holding the clone
	Path string
	// Root is the working tree root files are resolved against
	Root string
	Repo Repository
	// Cloned is true when the mirror was created during this run
	Cloned bool
}

func newMirror(name, path string, repo Repository, cloned bool) (*Mirror, error) {
	root, err := repo.Root()
	if err != nil {
		return nil, err
	}
	return &Mirror{
		Name:   name,
		Path:   path,
		Root:   root,
		Repo:   repo,
		Cloned: cloned,
	}, nil
}
