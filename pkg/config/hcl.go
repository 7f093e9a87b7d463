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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files.
// Environment variables are available to expressions as env.NAME.
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Store         string `hcl:"store,optional"`
		Concurrency   int    `hcl:"concurrency,optional"`
		ResetWorktree bool   `hcl:"reset_worktree,optional"`
		TokenEnv      string `hcl:"token_env,optional"`
		Queries       []struct {
			Q     string `hcl:"q"`
			Sort  string `hcl:"sort,optional"`
			Order string `hcl:"order,optional"`
		} `hcl:"query,block"`
		Rules []struct {
			Pattern     string   `hcl:"pattern"`
			Replacement string   `hcl:"replacement"`
			Files       []string `hcl:"files,optional"`
		} `hcl:"rule,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Store:         hclCfg.Store,
		Concurrency:   hclCfg.Concurrency,
		ResetWorktree: hclCfg.ResetWorktree,
		TokenEnv:      hclCfg.TokenEnv,
	}
	for _, q := range hclCfg.Queries {
		cfg.Queries = append(cfg.Queries, Query{Q: q.Q, Sort: q.Sort, Order: q.Order})
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, Rule{Pattern: r.Pattern, Replacement: r.Replacement, Files: r.Files})
	}

	return cfg, nil
}

func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !hclIdent(k) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(vars)
}

// hclIdent reports whether s can be used as an attribute name in a traversal
func hclIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}
