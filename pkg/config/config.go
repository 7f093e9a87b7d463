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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/cdnpin/pkg/rewrite"
	"github.com/walteh/cdnpin/pkg/search"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultStore    = "repositories"
	DefaultTokenEnv = "GITHUB_TOKEN"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔎 Query is a code search query
type Query struct {
	Q     string `json:"q" yaml:"q" toml:"q"`
	Sort  string `json:"sort,omitempty" yaml:"sort,omitempty" toml:"sort,omitempty"`
	Order string `json:"order,omitempty" yaml:"order,omitempty" toml:"order,omitempty"`
}

// 🔄 Rule is a rewrite rule before compilation
type Rule struct {
	Pattern     string   `json:"pattern" yaml:"pattern" toml:"pattern"`
	Replacement string   `json:"replacement" yaml:"replacement" toml:"replacement"`
	Files       []string `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Store         string  `json:"store" yaml:"store" toml:"store"`
	Concurrency   int     `json:"concurrency,omitempty" yaml:"concurrency,omitempty" toml:"concurrency,omitempty"`
	ResetWorktree bool    `json:"reset_worktree,omitempty" yaml:"reset_worktree,omitempty" toml:"reset_worktree,omitempty"`
	TokenEnv      string  `json:"token_env,omitempty" yaml:"token_env,omitempty" toml:"token_env,omitempty"`
	Queries       []Query `json:"queries,omitempty" yaml:"queries,omitempty" toml:"queries,omitempty"`
	Rules         []Rule  `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}

// 🏭 Default returns the built-in configuration for the auth0 CDN migration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Store == "" {
		cfg.Store = DefaultStore
	}
	if cfg.TokenEnv == "" {
		cfg.TokenEnv = DefaultTokenEnv
	}
	if len(cfg.Queries) == 0 {
		for _, q := range search.DefaultQueries() {
			cfg.Queries = append(cfg.Queries, Query{Q: q.Q, Sort: q.Sort, Order: q.Order})
		}
	}
	if len(cfg.Rules) == 0 {
		for _, r := range rewrite.DefaultRules() {
			cfg.Rules = append(cfg.Rules, Rule{Pattern: r.Pattern.String(), Replacement: r.Replacement, Files: r.Files})
		}
	}
}

// 🎯 Load loads the configuration from a file. Omitted settings fall back to Default.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Store == "" {
		return errors.Errorf("store is required")
	}
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}

	for i, q := range cfg.Queries {
		if q.Q == "" {
			return errors.Errorf("queries[%d]: q is required", i)
		}
		switch q.Order {
		case "", "asc", "desc":
		default:
			return errors.Errorf("queries[%d]: order must be asc or desc, got %q", i, q.Order)
		}
	}

	if _, err := cfg.RuleSet(); err != nil {
		return err
	}

	cfg.Store = filepath.Clean(cfg.Store)

	return nil
}

// 📚 RuleSet compiles the configured rules in order
func (cfg *Config) RuleSet() (rewrite.RuleSet, error) {
	rules := make(rewrite.RuleSet, 0, len(cfg.Rules))
	for i, r := range cfg.Rules {
		rule, err := rewrite.NewRule(r.Pattern, r.Replacement, r.Files...)
		if err != nil {
			return nil, errors.Errorf("rules[%d]: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// SearchQueries converts the configured queries for the search client
func (cfg *Config) SearchQueries() []search.Query {
	out := make([]search.Query, 0, len(cfg.Queries))
	for _, q := range cfg.Queries {
		out = append(out, search.Query{Q: q.Q, Sort: q.Sort, Order: q.Order})
	}
	return out
}

// Token reads the GitHub token from the configured environment variable
func (cfg *Config) Token() string {
	return os.Getenv(cfg.TokenEnv)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("store=%s queries=%d rules=%d concurrency=%d", cfg.Store, len(cfg.Queries), len(cfg.Rules), cfg.Concurrency)
}
