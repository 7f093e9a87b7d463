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
	"path"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule rewrites every match of Pattern to the literal Replacement
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
	// Files optionally scopes the rule with doublestar globs. An empty list
	// applies the rule to every file.
	Files []string
}

// 🏭 NewRule compiles pattern and validates the file globs
func NewRule(pattern, replacement string, files ...string) (Rule, error) {
	if pattern == "" {
		return Rule{}, errors.New("pattern is required")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, errors.Errorf("compiling pattern %q: %w", pattern, err)
	}

	for _, g := range files {
		if !doublestar.ValidatePattern(g) {
			return Rule{}, errors.Errorf("invalid file glob %q", g)
		}
	}

	return Rule{
		Pattern:     re,
		Replacement: replacement,
		Files:       files,
	}, nil
}

// MustRule is like NewRule but panics on error. Only use it for rules known at compile time.
func MustRule(pattern, replacement string, files ...string) Rule {
	r, err := NewRule(pattern, replacement, files...)
	if err != nil {
		panic(err)
	}
	return r
}

// 🔍 AppliesTo reports whether the rule is scoped to the named file.
// Globs are matched against the base name and the full slash separated path.
func (r Rule) AppliesTo(name string) bool {
	if len(r.Files) == 0 {
		return true
	}

	slashed := filepath.ToSlash(name)
	base := path.Base(slashed)
	for _, g := range r.Files {
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, slashed); ok {
			return true
		}
	}
	return false
}

// String returns the pattern and replacement for logging
func (r Rule) String() string {
	return r.Pattern.String() + " -> " + r.Replacement
}

// 📚 RuleSet is an ordered list of rules. Each rule operates on the output of the previous one.
type RuleSet []Rule

// 🎯 Apply runs every rule scoped to name against content in order.
// It returns the resulting text, the number of replacements that changed
// the text, and whether anything changed at all. A rule whose matches
// already equal the replacement is a no-op, so applying a set to its own
// output reports no change.
func (rs RuleSet) Apply(name, content string) (string, int, bool) {
	current := content
	count := 0
	for _, rule := range rs {
		if !rule.AppliesTo(name) {
			continue
		}

		matches := rule.Pattern.FindAllString(current, -1)
		if len(matches) == 0 {
			continue
		}

		for _, m := range matches {
			if m != rule.Replacement {
				count++
			}
		}

		current = rule.Pattern.ReplaceAllLiteralString(current, rule.Replacement)
	}

	return current, count, current != content
}

const (
	auth0Pinned       = "cdn.auth0.com/w2/auth0-2.0.15.js"
	auth0WidgetPinned = "cdn.auth0.com/w2/auth0-widget-3.0.12.js"
	auth0NgPinned     = "cdn.auth0.com/w2/auth0-angular-0.2.0.js"
)

// 📌 DefaultRules pins the legacy auth0 CDN script URLs.
// Cloudfront rules come first so their output is normalised by the cdn rules.
func DefaultRules() RuleSet {
	return RuleSet{
		MustRule(`d19p4zemcycm7a\.cloudfront\.net/w2/auth0-([0-9]{1,2}\.)+(min\.)?js`, auth0Pinned),
		MustRule(`cdn\.auth0\.com/w2/auth0-([0-9]{1,2}\.)+(min\.)?js`, auth0Pinned),
		MustRule(`d19p4zemcycm7a\.cloudfront\.net/w2/auth0-widget-([0-9]{1,2}\.)+(min\.)?js`, auth0WidgetPinned),
		MustRule(`cdn\.auth0\.com/w2/auth0-widget-([0-9]{1,2}\.)+(min\.)?js`, auth0WidgetPinned),
		MustRule(`cdn\.auth0\.com/w2/auth0-angular-([0-9]{1,2}\.)+(min\.)?js`, auth0NgPinned),
	}
}
