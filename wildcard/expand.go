// Package wildcard expands the "." wildcard marker inside causal-query
// expressions into every concrete 0/1 assignment.
package wildcard

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/causalab/nodal/expr"
	"github.com/causalab/nodal/grid"
)

// Marker is the wildcard symbol standing in for "both values" of a variable.
const Marker = "."

// wildcardAssign matches one "<var>=." assignment, tolerating spaces around
// the equals sign. Group 1 captures the variable name.
var wildcardAssign = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*=\s*\.`)

// Options controls expansion.
type Options struct {
	// Join is the operator inserted between a span's variants in joined mode.
	Join string
	// Cartesian switches to the cross product of all spans' variant lists,
	// producing one output string per combination; Join is ignored.
	Cartesian bool
	// Logger, when non-nil, receives each span's variants as debug output.
	Logger *zap.Logger
}

// DefaultOptions joins variants with the disjunction operator.
func DefaultOptions() Options {
	return Options{Join: "|"}
}

// Expand rewrites every wildcard assignment ("var=.") in the expression into
// its concrete 0/1 forms.
//
// Parenthesized groups are expanded independently; when the expression has no
// parenthesized group, the whole expression is treated as a single group. In
// joined mode (the default) each group's variants are joined with
// " <op> " in place, yielding one string. In Cartesian mode the result is one
// string per combination of group variants.
//
// An expression without a wildcard marker is returned unchanged.
func Expand(expression string, opts Options) ([]string, error) {
	if !opts.Cartesian && opts.Join == "" {
		opts.Join = "|"
	}

	spans := spanTexts(expression)
	if opts.Logger != nil && len(spans) == 1 && spans[0] == expression {
		opts.Logger.Debug("no parenthesized group; expanding whole expression",
			zap.String("expression", expression))
	}

	// Mask each span with a placeholder so the surrounding structure
	// survives the rewrite. Placeholders are built from control characters,
	// which cannot occur in the expression vocabulary.
	placeholders := make([]string, len(spans))
	for i := range spans {
		placeholders[i] = fmt.Sprintf("\x01%d\x02", i)
	}
	skeleton, err := expr.Substitute(expression, spans, placeholders)
	if err != nil {
		return nil, err
	}

	variants := make([][]string, len(spans))
	for i, span := range spans {
		variants[i], err = expandSpan(span)
		if err != nil {
			return nil, err
		}
		if opts.Logger != nil && len(variants[i]) > 1 {
			opts.Logger.Debug("expanded wildcard span",
				zap.String("span", span),
				zap.Strings("variants", variants[i]))
		}
	}

	if opts.Cartesian {
		return combine(skeleton, placeholders, variants)
	}
	return join(skeleton, placeholders, variants, opts.Join)
}

// spanTexts extracts the parenthesized groups of the expression, falling back
// to the whole expression when none exist.
func spanTexts(expression string) []string {
	spans := expr.ExtractSpans(expression, "(", ")", 0, 0)
	if len(spans) == 0 {
		return []string{expression}
	}
	texts := make([]string, len(spans))
	for i, s := range spans {
		texts[i] = s.Text
	}
	return texts
}

// expandSpan produces every concrete variant of one span: 2^m strings for m
// distinct wildcard variables, in grid enumeration order. A span without a
// wildcard yields itself as its only variant.
func expandSpan(span string) ([]string, error) {
	matches := wildcardAssign.FindAllStringSubmatchIndex(span, -1)
	if len(matches) == 0 {
		return []string{span}, nil
	}

	// Distinct variables in order of first appearance, each with the literal
	// occurrence forms of its wildcard assignment (spacing included).
	var vars []string
	forms := make(map[string][]string)
	for _, m := range matches {
		name := span[m[2]:m[3]]
		literal := span[m[0]:m[1]]
		if _, seen := forms[name]; !seen {
			vars = append(vars, name)
		}
		forms[name] = appendUnique(forms[name], literal)
	}

	rows := grid.Binary(len(vars))
	out := make([]string, len(rows))
	for r, row := range rows {
		var patterns, replacements []string
		for i, name := range vars {
			concrete := fmt.Sprintf("%s=%d", name, row[i])
			for _, literal := range forms[name] {
				patterns = append(patterns, literal)
				replacements = append(replacements, concrete)
			}
		}
		// Substitution starts from the original span for every row.
		rewritten, err := expr.Substitute(span, patterns, replacements)
		if err != nil {
			return nil, err
		}
		out[r] = rewritten
	}
	return out, nil
}

// join substitutes each span's variants, joined by the operator, back into
// the skeleton, returning a single expression.
func join(skeleton string, placeholders []string, variants [][]string, op string) ([]string, error) {
	joined := make([]string, len(variants))
	for i, vs := range variants {
		joined[i] = vs[0]
		for _, v := range vs[1:] {
			joined[i] += " " + op + " " + v
		}
	}
	result, err := expr.Substitute(skeleton, placeholders, joined)
	if err != nil {
		return nil, err
	}
	return []string{result}, nil
}

// combine builds the cross product of all spans' variant lists, one output
// string per combination. The first span's variants cycle fastest, matching
// the grid enumeration order.
func combine(skeleton string, placeholders []string, variants [][]string) ([]string, error) {
	maxima := make([]int, len(variants))
	for i, vs := range variants {
		maxima[i] = len(vs) - 1
	}

	rows := grid.Combinations(maxima)
	out := make([]string, len(rows))
	for r, row := range rows {
		chosen := make([]string, len(variants))
		for i, vs := range variants {
			chosen[i] = vs[row[i]]
		}
		result, err := expr.Substitute(skeleton, placeholders, chosen)
		if err != nil {
			return nil, err
		}
		out[r] = result
	}
	return out, nil
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
