package expr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArityMismatch is returned when the pattern and replacement lists given
// to Substitute differ in length.
var ErrArityMismatch = errors.New("patterns and replacements differ in length")

// Substitute applies each (pattern, replacement) pair to s in declaration
// order. Every pair rewrites the text produced by the previous one, so later
// patterns observe earlier replacements; ordering is semantically significant.
// Matching is literal, not regular-expression based.
func Substitute(s string, patterns, replacements []string) (string, error) {
	if len(patterns) != len(replacements) {
		return "", fmt.Errorf("%w: %d patterns, %d replacements",
			ErrArityMismatch, len(patterns), len(replacements))
	}
	for i, pattern := range patterns {
		s = strings.ReplaceAll(s, pattern, replacements[i])
	}
	return s, nil
}

// SubstituteAll applies the same ordered substitution plan to every string in
// the input slice. The input slice is never mutated.
func SubstituteAll(in []string, patterns, replacements []string) ([]string, error) {
	out := make([]string, len(in))
	for i, s := range in {
		rewritten, err := Substitute(s, patterns, replacements)
		if err != nil {
			return nil, err
		}
		out[i] = rewritten
	}
	return out, nil
}
