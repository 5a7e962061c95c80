package interpret

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/causalab/nodal/expr"
)

// condition is a parsed value-condition query such as "Y | X=1 & M=0":
// a node plus the parent assignments a matching record must contain.
type condition struct {
	node        string
	constraints map[string]int
}

// parseCondition decomposes a condition string. Whitespace is insignificant
// and constraint order does not matter.
func parseCondition(raw string) (condition, error) {
	normalized, err := expr.Substitute(raw, []string{" ", "\t"}, []string{"", ""})
	if err != nil {
		return condition{}, err
	}
	if normalized == "" {
		return condition{}, fmt.Errorf("interpret: empty condition")
	}

	node, rest, hasConstraints := strings.Cut(normalized, "|")
	if node == "" {
		return condition{}, fmt.Errorf("interpret: condition %q has no node", raw)
	}

	cond := condition{node: node, constraints: map[string]int{}}
	if !hasConstraints {
		return cond, nil
	}

	for _, clause := range strings.Split(rest, "&") {
		parent, value, ok := strings.Cut(clause, "=")
		if !ok || parent == "" {
			return condition{}, fmt.Errorf("interpret: malformed constraint %q in condition %q", clause, raw)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return condition{}, fmt.Errorf("interpret: non-numeric value in constraint %q of condition %q", clause, raw)
		}
		cond.constraints[parent] = v
	}
	return cond, nil
}
