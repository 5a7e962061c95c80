// Package interpret translates digit positions of nodal-type codes into
// parent-value statements and matches value conditions back to positions.
package interpret

import (
	"errors"
	"fmt"
	"strings"

	"github.com/causalab/nodal/grid"
	"github.com/causalab/nodal/model"
)

// ErrConflictingQuery is returned when a query carries both position requests
// and condition strings.
var ErrConflictingQuery = errors.New("interpret: query may set positions or conditions, not both")

// UnknownNodeError reports a requested node that the model does not declare.
type UnknownNodeError struct {
	Node string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("interpret: unknown node %q", e.Node)
}

// PositionRangeError reports a digit position outside [1, 2^k] for a node
// with k parents.
type PositionRangeError struct {
	Node     string
	Position int
	Max      int
}

func (e *PositionRangeError) Error() string {
	return fmt.Sprintf("interpret: position %d out of range [1, %d] for node %q",
		e.Position, e.Max, e.Node)
}

// Interpret resolves a query against the model's node → parents mapping.
//
// With position requests, each requested position of each requested node is
// translated into an Interpretation. With condition strings, each node's full
// interpretation set is filtered down to records whose constraint set
// contains the condition's constraints; nodes left with no records are
// omitted. With an empty query, every node is interpreted at every position.
func Interpret(m *model.Model, q Query) (Result, error) {
	if len(q.Positions) > 0 && len(q.Conditions) > 0 {
		return nil, ErrConflictingQuery
	}

	switch {
	case len(q.Positions) > 0:
		return byPositions(m, q.Positions)
	case len(q.Conditions) > 0:
		return byConditions(m, q.Conditions)
	default:
		return allNodes(m)
	}
}

func byPositions(m *model.Model, reqs []PositionRequest) (Result, error) {
	var result Result
	for _, req := range reqs {
		parents, ok := m.Parents(req.Node)
		if !ok {
			return nil, &UnknownNodeError{Node: req.Node}
		}
		table := nodeTable(req.Node, parents)

		records := table
		// Parentless nodes have only the two trivial positions; both are
		// reported whatever positions were asked for.
		if len(parents) > 0 && len(req.Positions) > 0 {
			records = make([]Interpretation, 0, len(req.Positions))
			for _, pos := range req.Positions {
				if pos < 1 || pos > len(table) {
					return nil, &PositionRangeError{Node: req.Node, Position: pos, Max: len(table)}
				}
				records = append(records, table[pos-1])
			}
		}
		result = append(result, NodeInterpretations{Node: req.Node, Records: records})
	}
	return result, nil
}

func byConditions(m *model.Model, conditions []string) (Result, error) {
	var result Result
	index := make(map[string]int)

	for _, raw := range conditions {
		cond, err := parseCondition(raw)
		if err != nil {
			return nil, err
		}
		parents, ok := m.Parents(cond.node)
		if !ok {
			return nil, &UnknownNodeError{Node: cond.node}
		}

		var matched []Interpretation
		for _, rec := range nodeTable(cond.node, parents) {
			if containsAll(rec.Constraints, cond.constraints) {
				matched = append(matched, rec)
			}
		}
		if len(matched) == 0 {
			// node silently omitted from the result
			continue
		}

		if i, seen := index[cond.node]; seen {
			result[i].Records = mergeRecords(result[i].Records, matched)
			continue
		}
		index[cond.node] = len(result)
		result = append(result, NodeInterpretations{Node: cond.node, Records: matched})
	}
	return result, nil
}

func allNodes(m *model.Model) (Result, error) {
	var result Result
	for _, name := range m.Nodes() {
		parents, _ := m.Parents(name)
		result = append(result, NodeInterpretations{Node: name, Records: nodeTable(name, parents)})
	}
	return result, nil
}

// nodeTable builds the full interpretation table of a node: one record per
// digit position, in grid enumeration order.
func nodeTable(node string, parents []string) []Interpretation {
	if len(parents) == 0 {
		return []Interpretation{
			{
				Node:           node,
				Position:       1,
				Display:        displayMask(node, 1, 2),
				Interpretation: node + " = 0",
				Constraints:    map[string]int{},
			},
			{
				Node:           node,
				Position:       2,
				Display:        displayMask(node, 2, 2),
				Interpretation: node + " = 1",
				Constraints:    map[string]int{},
			},
		}
	}

	rows := grid.Binary(len(parents))
	records := make([]Interpretation, len(rows))
	for r, row := range rows {
		constraints := make(map[string]int, len(parents))
		clauses := make([]string, len(parents))
		for i, parent := range parents {
			constraints[parent] = row[i]
			clauses[i] = fmt.Sprintf("%s = %d", parent, row[i])
		}
		records[r] = Interpretation{
			Node:           node,
			Position:       r + 1,
			Display:        displayMask(node, r+1, len(rows)),
			Interpretation: node + " | " + strings.Join(clauses, " & "),
			Constraints:    constraints,
		}
	}
	return records
}

// displayMask renders the node name followed by an asterisk mask of the given
// length with the 1-based position wrapped as [*], e.g. ("Y", 2, 4) → "Y*[*]**".
func displayMask(node string, position, length int) string {
	var b strings.Builder
	b.WriteString(node)
	for i := 1; i <= length; i++ {
		if i == position {
			b.WriteString("[*]")
		} else {
			b.WriteByte('*')
		}
	}
	return b.String()
}

// containsAll reports whether set contains every assignment in subset.
func containsAll(set, subset map[string]int) bool {
	for k, v := range subset {
		got, ok := set[k]
		if !ok || got != v {
			return false
		}
	}
	return true
}

// mergeRecords appends records not already present, keyed by position.
func mergeRecords(existing, extra []Interpretation) []Interpretation {
	seen := make(map[int]bool, len(existing))
	for _, rec := range existing {
		seen[rec.Position] = true
	}
	for _, rec := range extra {
		if !seen[rec.Position] {
			existing = append(existing, rec)
			seen[rec.Position] = true
		}
	}
	return existing
}
