package commands

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/walteh/cdnpin/cmd/cdnpin/opts"
	"github.com/walteh/cdnpin/pkg/log"
	"github.com/walteh/cdnpin/pkg/mirror"
	"github.com/walteh/cdnpin/pkg/mirror/gogit"
	"github.com/walteh/cdnpin/pkg/pipeline"
	"github.com/walteh/cdnpin/pkg/search"
	"gitlab.com/tozd/go/errors"
)

// 🔎 findCandidates runs the configured code search queries
func findCandidates(ctx context.Context, o *opts.RootOpts) ([]pipeline.Candidate, error) {
	client, err := search.New(search.WithToken(o.Config.Token()))
	if err != nil {
		return nil, errors.Errorf("creating search client: %w", err)
	}

	hits, err := client.Search(ctx, o.Config.SearchQueries())
	if err != nil {
		return nil, errors.Errorf("searching: %w", err)
	}

	return candidates(hits), nil
}

func candidates(hits []search.Hit) []pipeline.Candidate {
	out := make([]pipeline.Candidate, 0, len(hits))
	for _, h := range hits {
		out = append(out, pipeline.Candidate{
			Repository: h.Repository,
			CloneURL:   h.CloneURL,
			Path:       h.Path,
		})
	}
	return out
}

// newSyncer wires the mirror store to go-git
func newSyncer(o *opts.RootOpts, reset bool) *mirror.Syncer {
	gitOpts := []gogit.Option{gogit.WithToken(o.Config.Token())}
	if o.Debug {
		gitOpts = append(gitOpts, gogit.WithProgress(os.Stderr))
	}
	client := gogit.New(gitOpts...)

	store := mirror.NewStore(o.Config.Store, client, o.Config.Concurrency)
	return mirror.NewSyncer(store, mirror.SyncOptions{
		Concurrency:   o.Config.Concurrency,
		ResetWorktree: reset || o.Config.ResetWorktree,
	})
}

// 📣 reportingSyncer prints every mirror once a sync completes
type reportingSyncer struct {
	syncer  pipeline.Syncer
	console *log.Logger
}

func (r *reportingSyncer) Sync(ctx context.Context, requirements map[string]string) (map[string]*mirror.Mirror, error) {
	mirrors, err := r.syncer.Sync(ctx, requirements)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(mirrors))
	for name := range mirrors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := mirrors[name]
		r.console.LogRepoOperation(ctx, log.RepoOperation{Name: m.Name, Path: m.Path, Cloned: m.Cloned})
	}

	return mirrors, nil
}

// splitStorePath turns an absolute path inside the store into its repository and relative path
func splitStorePath(store, path string) (string, string) {
	rel, err := filepath.Rel(store, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", path
	}
	repo, rest, ok := strings.Cut(filepath.ToSlash(rel), "/")
	if !ok {
		return "", rel
	}
	return repo, rest
}
