package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/cdnpin/cmd/cdnpin/opts"
	"github.com/walteh/cdnpin/gen/mockery"
	"github.com/walteh/cdnpin/pkg/config"
	"github.com/walteh/cdnpin/pkg/log"
	"github.com/walteh/cdnpin/pkg/mirror"
	"github.com/walteh/cdnpin/pkg/pipeline"
	"github.com/walteh/cdnpin/pkg/search"
)

func testOpts(t *testing.T, console *bytes.Buffer) (*opts.RootOpts, context.Context) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	o := &opts.RootOpts{
		Config:  config.Default(),
		Console: log.New(console, zerolog.Disabled),
	}
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	return o, log.NewContext(ctx, o.Console)
}

func TestCandidates(t *testing.T) {
	got := candidates([]search.Hit{
		{Repository: "a", CloneURL: "https://github.com/auth0/a.git", Path: "index.html"},
		{Repository: "b", CloneURL: "https://github.com/auth0/b.git", Path: "docs/login.html"},
	})

	assert.Equal(t, []pipeline.Candidate{
		{Repository: "a", CloneURL: "https://github.com/auth0/a.git", Path: "index.html"},
		{Repository: "b", CloneURL: "https://github.com/auth0/b.git", Path: "docs/login.html"},
	}, got)
}

func TestSplitStorePath(t *testing.T) {
	store := filepath.Join("/srv", "repositories")

	tests := []struct {
		name     string
		path     string
		wantRepo string
		wantRel  string
	}{
		{name: "nested", path: filepath.Join(store, "site", "public", "index.html"), wantRepo: "site", wantRel: "public/index.html"},
		{name: "top_level", path: filepath.Join(store, "site", "index.html"), wantRepo: "site", wantRel: "index.html"},
		{name: "outside_store", path: filepath.Join("/tmp", "index.html"), wantRepo: "", wantRel: filepath.Join("/tmp", "index.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, rel := splitStorePath(store, tt.path)
			assert.Equal(t, tt.wantRepo, repo)
			assert.Equal(t, tt.wantRel, rel)
		})
	}
}

func TestReportingSyncer(t *testing.T) {
	console := &bytes.Buffer{}
	o, ctx := testOpts(t, console)

	inner := mockery.NewMockSyncer_pipeline(t)
	inner.EXPECT().Sync(mock.Anything, map[string]string{"b": "u/b", "a": "u/a"}).Return(map[string]*mirror.Mirror{
		"b": {Name: "b", Path: "/store/b"},
		"a": {Name: "a", Path: "/store/a", Cloned: true},
	}, nil).Once()

	s := &reportingSyncer{syncer: inner, console: o.Console}
	mirrors, err := s.Sync(ctx, map[string]string{"b": "u/b", "a": "u/a"})
	require.NoError(t, err)
	assert.Len(t, mirrors, 2)

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	assert.Equal(t, []string{
		"◆ a • cloned /store/a",
		"◆ b • updated /store/b",
	}, lines)
}

func TestReportingSyncer_Error(t *testing.T) {
	console := &bytes.Buffer{}
	o, ctx := testOpts(t, console)

	inner := mockery.NewMockSyncer_pipeline(t)
	inner.EXPECT().Sync(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	s := &reportingSyncer{syncer: inner, console: o.Console}
	_, err := s.Sync(ctx, map[string]string{"a": "u/a"})
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, console.String())
}

func TestRewriteCmd(t *testing.T) {
	console := &bytes.Buffer{}
	o, ctx := testOpts(t, console)

	dir := t.TempDir()
	stale := filepath.Join(dir, "index.html")
	clean := filepath.Join(dir, "about.html")
	require.NoError(t, os.WriteFile(stale, []byte(`<script src="https://cdn.auth0.com/w2/auth0-1.6.4.min.js"></script>`), 0o644))
	require.NoError(t, os.WriteFile(clean, []byte(`<p>nothing to see</p>`), 0o644))

	stdout := &bytes.Buffer{}
	cmd := NewRewriteCmd(o)
	cmd.SetContext(ctx)
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{stale, clean})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, stale+"\n", stdout.String())
	assert.Contains(t, console.String(), "1 of 2 files rewritten")

	got, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, `<script src="https://cdn.auth0.com/w2/auth0-2.0.15.js"></script>`, string(got))
}

func TestRewriteCmd_MissingFile(t *testing.T) {
	o, ctx := testOpts(t, &bytes.Buffer{})

	cmd := NewRewriteCmd(o)
	cmd.SetContext(ctx)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.html")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.html")
}

func TestRewriteCmd_DryRun(t *testing.T) {
	o, ctx := testOpts(t, &bytes.Buffer{})

	dir := t.TempDir()
	stale := `<script src="//cdn.auth0.com/w2/auth0-1.3.js"></script>`
	p := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(p, []byte(stale), 0o644))

	stdout := &bytes.Buffer{}
	cmd := NewRewriteCmd(o)
	cmd.SetContext(ctx)
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dry-run", p})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), p+"\n")
	assert.Contains(t, stdout.String(), "[-")
	assert.Contains(t, stdout.String(), "2.0.15")

	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, stale, string(got))
}

func TestWordDiff(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	assert.Equal(t, "load [-old-]{+new+} script", wordDiff("load old script", "load new script"))
	assert.Equal(t, "unchanged", wordDiff("unchanged", "unchanged"))
}
