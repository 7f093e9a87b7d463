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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/cdnpin/pkg/rewrite"
	"github.com/walteh/cdnpin/pkg/search"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	custom := func(t *testing.T, cfg *Config) {
		assert.Equal(t, "mirrors", cfg.Store, "store should match")
		assert.Equal(t, 4, cfg.Concurrency, "concurrency should match")
		assert.True(t, cfg.ResetWorktree, "reset_worktree should match")
		assert.Equal(t, "MY_TOKEN", cfg.TokenEnv, "token_env should match")
		assert.Equal(t, []Query{{Q: "cdn.example.com user:acme", Sort: "indexed", Order: "desc"}}, cfg.Queries)
		assert.Equal(t, []Rule{{Pattern: `cdn\.example\.com/lib-[0-9.]+js`, Replacement: "cdn.example.com/lib-2.0.js", Files: []string{"*.html"}}}, cfg.Rules)
	}

	tests := []struct {
		name        string
		file        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml",
			file: "cdnpin.yaml",
			config: `
store: mirrors
concurrency: 4
reset_worktree: true
token_env: MY_TOKEN
queries:
  - q: "cdn.example.com user:acme"
    sort: indexed
    order: desc
rules:
  - pattern: 'cdn\.example\.com/lib-[0-9.]+js'
    replacement: cdn.example.com/lib-2.0.js
    files: ["*.html"]
`,
			check: custom,
		},
		{
			name: "json",
			file: "cdnpin.json",
			config: `{
  "store": "mirrors",
  "concurrency": 4,
  "reset_worktree": true,
  "token_env": "MY_TOKEN",
  "queries": [{"q": "cdn.example.com user:acme", "sort": "indexed", "order": "desc"}],
  "rules": [{"pattern": "cdn\\.example\\.com/lib-[0-9.]+js", "replacement": "cdn.example.com/lib-2.0.js", "files": ["*.html"]}]
}`,
			check: custom,
		},
		{
			name: "hcl",
			file: "cdnpin.hcl",
			config: `
store          = "mirrors"
concurrency    = 4
reset_worktree = true
token_env      = "MY_TOKEN"

query {
  q     = "cdn.example.com user:acme"
  sort  = "indexed"
  order = "desc"
}

rule {
  pattern     = "cdn\\.example\\.com/lib-[0-9.]+js"
  replacement = "cdn.example.com/lib-2.0.js"
  files       = ["*.html"]
}
`,
			check: custom,
		},
		{
			name: "toml",
			file: "cdnpin.toml",
			config: `
store = "mirrors"
concurrency = 4
reset_worktree = true
token_env = "MY_TOKEN"

[[queries]]
q = "cdn.example.com user:acme"
sort = "indexed"
order = "desc"

[[rules]]
pattern = 'cdn\.example\.com/lib-[0-9.]+js'
replacement = "cdn.example.com/lib-2.0.js"
files = ["*.html"]
`,
			check: custom,
		},
		{
			name:   "empty_yaml_takes_defaults",
			file:   "cdnpin.yml",
			config: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name:   "omitted_sections_take_defaults",
			file:   "cdnpin.yaml",
			config: "concurrency: 2\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2, cfg.Concurrency)
				assert.Equal(t, DefaultStore, cfg.Store)
				assert.Equal(t, DefaultTokenEnv, cfg.TokenEnv)
				assert.Len(t, cfg.Queries, len(search.DefaultQueries()))
				assert.Len(t, cfg.Rules, len(rewrite.DefaultRules()))
			},
		},
		{
			name:        "unknown_yaml_field",
			file:        "cdnpin.yaml",
			config:      "stores: mirrors\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        "cdnpin.json",
			config:      `{"stores": "mirrors"}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_toml_key",
			file:        "cdnpin.toml",
			config:      "stores = \"mirrors\"\n",
			wantErr:     true,
			errContains: "unknown keys stores",
		},
		{
			name:        "unknown_hcl_attribute",
			file:        "cdnpin.hcl",
			config:      "stores = \"mirrors\"\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "negative_concurrency",
			file:        "cdnpin.yaml",
			config:      "concurrency: -1\n",
			wantErr:     true,
			errContains: "concurrency must not be negative",
		},
		{
			name: "invalid_pattern_names_rule",
			file: "cdnpin.yaml",
			config: `
rules:
  - pattern: 'ok'
    replacement: fine
  - pattern: '([unclosed'
    replacement: broken
`,
			wantErr:     true,
			errContains: "rules[1]",
		},
		{
			name: "invalid_order",
			file: "cdnpin.yaml",
			config: `
queries:
  - q: something
    order: sideways
`,
			wantErr:     true,
			errContains: "order must be asc or desc",
		},
		{
			name:        "unsupported_extension",
			file:        "cdnpin.ini",
			config:      "store=mirrors",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			path := writeConfig(t, tt.file, tt.config)

			cfg, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_HCLEnvironment(t *testing.T) {
	t.Setenv("CDNPIN_TEST_ROOT", "/srv/cdnpin")
	path := writeConfig(t, "cdnpin.hcl", `store = "${env.CDNPIN_TEST_ROOT}/repositories"`)

	cfg, err := Load(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/srv/cdnpin/repositories"), cfg.Store)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	rules, err := cfg.RuleSet()
	require.NoError(t, err)

	defaults := rewrite.DefaultRules()
	require.Len(t, rules, len(defaults))
	for i := range rules {
		assert.Equal(t, defaults[i].String(), rules[i].String())
	}

	assert.Equal(t, search.DefaultQueries(), cfg.SearchQueries())
}

func TestConfig_Token(t *testing.T) {
	t.Setenv("CDNPIN_TEST_TOKEN", "abc123")
	cfg := Default()
	cfg.TokenEnv = "CDNPIN_TEST_TOKEN"
	assert.Equal(t, "abc123", cfg.Token())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "default", mutate: func(cfg *Config) {}},
		{name: "empty_store", mutate: func(cfg *Config) { cfg.Store = "" }, wantErr: "store is required"},
		{name: "empty_query", mutate: func(cfg *Config) { cfg.Queries = []Query{{}} }, wantErr: "queries[0]: q is required"},
		{name: "empty_pattern", mutate: func(cfg *Config) { cfg.Rules = []Rule{{Replacement: "x"}} }, wantErr: "pattern is required"},
		{name: "bad_glob", mutate: func(cfg *Config) { cfg.Rules = []Rule{{Pattern: "x", Files: []string{"[a"}}} }, wantErr: "invalid file glob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
