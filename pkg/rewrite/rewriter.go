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

package rewrite

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// 📄 Outcome is the result of applying a rule set to one file
type Outcome struct {
	Path         string
	Changed      bool
	Replacements int
}

// ❌ IOError reports a failure reading, writing or replacing a file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ✏️ Rewriter applies a fixed rule set to files on disk
type Rewriter struct {
	rules RuleSet
}

// 🏭 New creates a rewriter for rules. The slice is copied.
func New(rules RuleSet) *Rewriter {
	return &Rewriter{rules: append(RuleSet(nil), rules...)}
}

// Rules returns the rule set in application order
func (r *Rewriter) Rules() RuleSet {
	return append(RuleSet(nil), r.rules...)
}

// 📋 Plan is the effect the rule set would have on one file
type Plan struct {
	Outcome
	Before string
	After  string
}

// Plan reads the file at path and applies the rule set in memory without writing anything
func (r *Rewriter) Plan(ctx context.Context, path string) (Plan, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, &IOError{Op: "read", Path: path, Err: err}
	}

	before := string(content)
	after, count, changed := r.rules.Apply(path, before)

	return Plan{
		Outcome: Outcome{Path: path, Changed: changed, Replacements: count},
		Before:  before,
		After:   after,
	}, nil
}

// 🏃 Rewrite applies the rule set to the file at path. Files that no rule
// changes are never written, so their bytes, mtime and inode stay intact.
func (r *Rewriter) Rewrite(ctx context.Context, path string) (Outcome, error) {
	logger := zerolog.Ctx(ctx)

	plan, err := r.Plan(ctx, path)
	if err != nil {
		return Outcome{}, err
	}

	if !plan.Changed {
		logger.Trace().Str("path", path).Msg("no rule matched")
		return Outcome{Path: path}, nil
	}

	if err := WriteFileAtomic(path, []byte(plan.After)); err != nil {
		return Outcome{}, err
	}

	logger.Debug().Str("path", path).Int("replacements", plan.Replacements).Msg("rewrote file")

	return plan.Outcome, nil
}
