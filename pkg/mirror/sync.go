package mirror

import (
	"context"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔧 SyncOptions configures a Syncer
type SyncOptions struct {
	// Concurrency bounds the tasks running at once in each phase. Zero means no bound.
	Concurrency int
	// ResetWorktree hard resets every mirror to its fetched remote branch after fetching
	ResetWorktree bool
}

// 🔄 Syncer makes sure every required repository has an up to date mirror
type Syncer struct {
	store *Store
	opts  SyncOptions
}

// 🏭 NewSyncer creates a syncer over store. Missing mirrors are cloned with
// the same Git the store opens mirrors with.
func NewSyncer(store *Store, opts SyncOptions) *Syncer {
	return &Syncer{
		store: store,
		opts:  opts,
	}
}

// 🏃 Sync clones every required repository missing from the store, then
// updates every mirror, old and new, from its origin remote.
//
// Both phases run their tasks concurrently and fail on the first task error.
// Siblings are not cancelled; their results are dropped. Cloning always
// finishes before the first update starts.
func (s *Syncer) Sync(ctx context.Context, requirements map[string]string) (map[string]*Mirror, error) {
	logger := zerolog.Ctx(ctx)

	for name := range requirements {
		if err := ValidateName(name); err != nil {
			return nil, errors.Errorf("validating requirements: %w", err)
		}
	}

	existing, err := s.store.List(ctx)
	if err != nil {
		return nil, errors.Errorf("listing mirrors: %w", err)
	}

	var missing []string
	for name := range requirements {
		if _, ok := existing[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	logger.Debug().
		Int("required", len(requirements)).
		Int("existing", len(existing)).
		Int("missing", len(missing)).
		Msg("syncing mirrors")

	cloned, err := s.cloneAll(ctx, missing, requirements)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*Mirror, len(existing)+len(cloned))
	for name, m := range existing {
		merged[name] = m
	}
	for _, m := range cloned {
		merged[m.Name] = m
	}

	if err := s.updateAll(ctx, merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// 📥 cloneAll clones names concurrently
func (s *Syncer) cloneAll(ctx context.Context, names []string, urls map[string]string) ([]*Mirror, error) {
	results := make([]*Mirror, len(names))

	var g errgroup.Group
	if s.opts.Concurrency > 0 {
		g.SetLimit(s.opts.Concurrency)
	}

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			m, err := s.clone(ctx, name, urls[name])
			if err != nil {
				return err
			}
			results[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Syncer) clone(ctx context.Context, name, url string) (*Mirror, error) {
	logger := zerolog.Ctx(ctx).With().Str("repository", name).Str("url", url).Logger()

	dir, err := s.store.Path(name)
	if err != nil {
		return nil, &CloneError{Name: name, URL: url, Err: err}
	}

	if _, err := os.Lstat(dir); err == nil {
		return nil, &CloneError{Name: name, URL: url, Err: errors.Errorf("%s already exists and is not a mirror", dir)}
	}

	logger.Debug().Str("path", dir).Msg("cloning repository")

	repo, err := s.store.git.Clone(ctx, url, dir)
	if err != nil {
		// a half written clone would fail the next listing as an invalid mirror
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", dir).Msg("removing partial clone")
		}
		return nil, &CloneError{Name: name, URL: url, Err: err}
	}

	m, err := newMirror(name, dir, repo, true)
	if err != nil {
		return nil, &CloneError{Name: name, URL: url, Err: err}
	}

	logger.Debug().Msg("cloned repository")

	return m, nil
}

// 🔃 updateAll fetches every mirror concurrently
func (s *Syncer) updateAll(ctx context.Context, mirrors map[string]*Mirror) error {
	var g errgroup.Group
	if s.opts.Concurrency > 0 {
		g.SetLimit(s.opts.Concurrency)
	}

	for _, m := range mirrors {
		m := m
		g.Go(func() error {
			return s.update(ctx, m)
		})
	}

	return g.Wait()
}

func (s *Syncer) update(ctx context.Context, m *Mirror) error {
	logger := zerolog.Ctx(ctx).With().Str("repository", m.Name).Logger()

	// no deadline is put on ctx, remote connections may wait indefinitely
	logger.Debug().Msg("fetching from origin")
	if err := m.Repo.Fetch(ctx, Origin); err != nil {
		return &UpdateError{Name: m.Name, Err: err}
	}

	if s.opts.ResetWorktree {
		logger.Debug().Msg("resetting worktree to origin")
		if err := m.Repo.Reset(ctx, Origin); err != nil {
			return &UpdateError{Name: m.Name, Err: err}
		}
	}

	return nil
}
