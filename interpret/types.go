package interpret

// Interpretation describes one digit position of a node's nodal type: which
// parent-value combination that position stands for.
type Interpretation struct {
	// Node is the interpreted node.
	Node string
	// Position is the 1-based digit position inside the nodal-type code.
	Position int
	// Display renders the position inside an asterisk mask, e.g. "Y*[*]**".
	Display string
	// Interpretation is the human-readable statement, e.g.
	// "Y | X = 1 & M = 0" or, for a parentless node, "X = 0".
	Interpretation string
	// Constraints is the parent → value assignment the position encodes.
	// Empty for parentless nodes.
	Constraints map[string]int
}

// NodeInterpretations groups the surviving records of one node.
type NodeInterpretations struct {
	Node    string
	Records []Interpretation
}

// Result is an ordered node → records mapping. Order follows the request
// (position requests or condition strings) or, for a full interpretation,
// model declaration order.
type Result []NodeInterpretations

// Get returns the records for a node, if present.
func (r Result) Get(node string) ([]Interpretation, bool) {
	for _, n := range r {
		if n.Node == node {
			return n.Records, true
		}
	}
	return nil, false
}

// PositionRequest asks for specific 1-based digit positions of one node.
// An empty Positions slice means every position of that node.
type PositionRequest struct {
	Node      string
	Positions []int
}

// Query selects what to interpret. At most one of Positions and Conditions
// may be set; with neither set, every node is interpreted at every position.
type Query struct {
	Positions  []PositionRequest
	Conditions []string
}

// ByPosition builds a position query.
func ByPosition(reqs ...PositionRequest) Query {
	return Query{Positions: reqs}
}

// ByCondition builds a condition query. Each condition string has the form
// "<node> | <parent>=<value> & <parent>=<value>".
func ByCondition(conditions ...string) Query {
	return Query{Conditions: conditions}
}

// All interprets every node of the model at every position.
func All() Query {
	return Query{}
}
