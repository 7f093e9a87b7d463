// Package pipeline remediates stale references across a fleet of repositories
package pipeline

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/cdnpin/pkg/mirror"
	"github.com/walteh/cdnpin/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔌 Syncer brings a mirror up to date for every required repository
type Syncer interface {
	Sync(ctx context.Context, requirements map[string]string) (map[string]*mirror.Mirror, error)
}

// 📄 Candidate is a file that may hold a stale reference
type Candidate struct {
	Repository string
	CloneURL   string
	// Path is relative to the repository root
	Path string
}

// 🔧 Options contains configuration for the pipeline
type Options struct {
	// Syncer provides the mirrors candidates are resolved against
	Syncer Syncer
	// Rewriter applies the rule set to each candidate
	Rewriter *rewrite.Rewriter
	// Concurrency bounds concurrent rewrites. Zero means no bound.
	Concurrency int
}

// 🚚 Pipeline syncs mirrors and rewrites candidate files
type Pipeline struct {
	syncer   Syncer
	rewriter *rewrite.Rewriter
	limit    int
}

// 🏭 New creates a pipeline with the given options
func New(opts Options) (*Pipeline, error) {
	if opts.Syncer == nil {
		return nil, errors.Errorf("syncer is required")
	}
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.Concurrency < 0 {
		return nil, errors.Errorf("concurrency must not be negative")
	}
	return &Pipeline{
		syncer:   opts.Syncer,
		rewriter: opts.Rewriter,
		limit:    opts.Concurrency,
	}, nil
}

// 📋 Requirements maps each repository name to a clone URL. Later candidates win.
func Requirements(candidates []Candidate) map[string]string {
	reqs := make(map[string]string, len(candidates))
	for _, c := range candidates {
		reqs[c.Repository] = c.CloneURL
	}
	return reqs
}

// resolveAll maps candidates to files on disk, dropping files already seen
func resolveAll(mirrors map[string]*mirror.Mirror, candidates []Candidate) ([]string, error) {
	seen := make(map[string]struct{}, len(candidates))
	files := make([]string, 0, len(candidates))
	for _, c := range candidates {
		m, ok := mirrors[c.Repository]
		if !ok {
			return nil, errors.Errorf("no mirror for repository %q", c.Repository)
		}

		path, err := Resolve(m, c.Path)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	return files, nil
}

// unique drops repeated (repository, path) pairs, keeping the first
func unique(candidates []Candidate) []Candidate {
	type key struct{ repo, path string }
	seen := make(map[key]struct{}, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		k := key{c.Repository, filepath.Clean(filepath.FromSlash(c.Path))}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}

// 📍 Resolve joins rel onto the working tree root of m, refusing paths that leave it.
// Symbolic links are followed and the file they point to is returned, which
// must also live inside the working tree. Paths that do not exist are
// returned unresolved.
func Resolve(m *mirror.Mirror, rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if escapes(clean) {
		return "", errors.Errorf("path %q escapes repository %s", rel, m.Name)
	}
	path := filepath.Join(m.Root, clean)

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		return "", errors.Errorf("resolving %q in repository %s: %w", rel, m.Name, err)
	}

	root, err := filepath.EvalSymlinks(m.Root)
	if err != nil {
		return "", errors.Errorf("resolving root of repository %s: %w", m.Name, err)
	}

	inside, err := filepath.Rel(root, target)
	if err != nil || escapes(inside) || inside == "." {
		return "", errors.Errorf("path %q links to %s outside repository %s", rel, target, m.Name)
	}

	return filepath.Join(m.Root, inside), nil
}

func escapes(clean string) bool {
	return filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

// 🏃 Run syncs every repository the candidates live in, then rewrites each
// candidate concurrently. It returns the changed files in candidate order.
// Candidates that resolve to the same file are rewritten once.
// The first failure of either step fails the run.
func (p *Pipeline) Run(ctx context.Context, candidates []Candidate) ([]rewrite.Outcome, error) {
	logger := zerolog.Ctx(ctx)

	if len(candidates) == 0 {
		logger.Debug().Msg("no candidates, nothing to do")
		return []rewrite.Outcome{}, nil
	}

	mirrors, err := p.syncer.Sync(ctx, Requirements(candidates))
	if err != nil {
		return nil, errors.Errorf("syncing mirrors: %w", err)
	}

	files, err := resolveAll(mirrors, unique(candidates))
	if err != nil {
		return nil, err
	}
	outcomes := make([]rewrite.Outcome, len(files))

	var g errgroup.Group
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			out, err := p.rewriter.Rewrite(ctx, path)
			if err != nil {
				return errors.Errorf("rewriting %s: %w", path, err)
			}

			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	changed := make([]rewrite.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Changed {
			changed = append(changed, o)
		}
	}

	logger.Debug().
		Int("candidates", len(candidates)).
		Int("files", len(files)).
		Int("changed", len(changed)).
		Msg("pipeline complete")

	return changed, nil
}
