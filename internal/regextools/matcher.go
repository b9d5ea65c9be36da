// Package regextools contains tools for use with regular expressions.
package regextools

import (
	"regexp"
	"strings"

	"explorer/internal/errors"
)

// Flag adjusts how a ListMatcher compiles its patterns.
type Flag string

// Flags accepted by NewListMatcher.
const (
	// CaseInsensitive makes every pattern match without regard to case.
	CaseInsensitive Flag = "i"
)

// ListMatcher matches a string against a large list of regular
// expressions in a single engine pass, for callers that do not need to
// know which expression matched.
//
// Most expressions match in O(N) where N is the length of the input, so
// testing M expressions one by one is O(N*M). Compiling the list into
// one alternation keeps the whole test at O(N).
type ListMatcher struct {
	patterns []string
	search   *regexp.Regexp
	prefix   *regexp.Regexp
	full     *regexp.Regexp
}

// NewListMatcher compiles the given expression strings into a single
// matcher. A malformed expression fails construction; the matcher never
// silently degrades.
func NewListMatcher(expressions []string, flags ...Flag) (*ListMatcher, error) {
	// Validate individually so the error names the offending pattern.
	for _, expression := range expressions {
		if _, err := regexp.Compile(expression); err != nil {
			return nil, errors.NewPatternError("invalid expression", expression, err)
		}
	}

	m := &ListMatcher{patterns: append([]string(nil), expressions...)}
	if len(expressions) == 0 {
		// No patterns: matches nothing.
		return m, nil
	}

	groups := make([]string, 0, len(expressions))
	for _, expression := range expressions {
		groups = append(groups, "(?:"+expression+")")
	}
	joined := "(?:" + strings.Join(groups, "|") + ")"
	for _, flag := range flags {
		joined = "(?" + string(flag) + ")" + joined
	}

	var err error
	if m.search, err = regexp.Compile(joined); err != nil {
		return nil, errors.NewPatternError("invalid expression list", joined, err)
	}
	// The anchored variants share the engine pass guarantee.
	m.prefix = regexp.MustCompile(`\A` + joined)
	m.full = regexp.MustCompile(`\A` + joined + `\z`)
	return m, nil
}

// Patterns returns the expression strings the matcher was built from.
func (m *ListMatcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Search reports a match anywhere in the string.
func (m *ListMatcher) Search(s string) bool {
	return m.search != nil && m.search.MatchString(s)
}

// Match reports a match at the start of the string.
func (m *ListMatcher) Match(s string) bool {
	return m.prefix != nil && m.prefix.MatchString(s)
}

// Fullmatch reports whether at least one of the constituent patterns
// matches the entire string.
func (m *ListMatcher) Fullmatch(s string) bool {
	return m.full != nil && m.full.MatchString(s)
}
