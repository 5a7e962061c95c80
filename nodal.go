// Package nodal fronts the causal-query expression engine: interpretation of
// nodal-type digit positions and wildcard expansion of query expressions.
//
// The two entry points mirror the operations the surrounding causal-model
// tooling calls: InterpretType answers "what does this digit position (or
// this value condition) mean for this node", ExpandWildcard rewrites a query
// containing the "." wildcard into its concrete enumerated forms.
package nodal

import (
	"github.com/causalab/nodal/interpret"
	"github.com/causalab/nodal/model"
	"github.com/causalab/nodal/wildcard"
)

// InterpretType resolves a position or condition query against the model's
// node → parents mapping. See the interpret package for query construction.
func InterpretType(m *model.Model, q interpret.Query) (interpret.Result, error) {
	return interpret.Interpret(m, q)
}

// ExpandWildcard expands every wildcard assignment in the expression and
// joins the variants of each parenthesized group with the given operator,
// returning a single concrete expression. An empty joinBy defaults to "|".
func ExpandWildcard(expression, joinBy string) (string, error) {
	opts := wildcard.DefaultOptions()
	if joinBy != "" {
		opts.Join = joinBy
	}
	out, err := wildcard.Expand(expression, opts)
	if err != nil {
		return "", err
	}
	return out[0], nil
}

// ExpandWildcardAll expands the expression in Cartesian mode: one concrete
// expression per combination of the parenthesized groups' variants.
func ExpandWildcardAll(expression string) ([]string, error) {
	return wildcard.Expand(expression, wildcard.Options{Cartesian: true})
}
