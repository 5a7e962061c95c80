// Package model holds the node → parents mapping consumed by the expression
// engine. The mapping is read-only once constructed; the engine never mutates
// it during a call.
package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Node is one declared node and its ordered list of parent nodes.
type Node struct {
	Name    string   `yaml:"name"`
	Parents []string `yaml:"parents,omitempty"`
}

// File is the on-disk YAML shape of a model:
//
//	nodes:
//	  - name: X
//	  - name: M
//	    parents: [X]
//	  - name: Y
//	    parents: [X, M]
type File struct {
	Nodes []Node `yaml:"nodes"`
}

// Model is an immutable node → ordered parents mapping.
type Model struct {
	order   []string
	parents map[string][]string
}

// New builds a Model from declared nodes. Every parent must itself be a
// declared node and node names must be unique.
func New(nodes []Node) (*Model, error) {
	m := &Model{
		order:   make([]string, 0, len(nodes)),
		parents: make(map[string][]string, len(nodes)),
	}
	for _, n := range nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("model: node with empty name")
		}
		if _, dup := m.parents[n.Name]; dup {
			return nil, fmt.Errorf("model: duplicate node %q", n.Name)
		}
		m.order = append(m.order, n.Name)
		m.parents[n.Name] = append([]string(nil), n.Parents...)
	}
	for _, name := range m.order {
		for _, p := range m.parents[name] {
			if _, ok := m.parents[p]; !ok {
				return nil, fmt.Errorf("model: node %q references undeclared parent %q", name, p)
			}
		}
	}
	return m, nil
}

// Parse builds a Model from YAML bytes.
func Parse(data []byte) (*Model, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("model: parsing yaml: %w", err)
	}
	return New(f.Nodes)
}

// Load reads and parses a model YAML file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Nodes returns node names in declaration order.
func (m *Model) Nodes() []string {
	return append([]string(nil), m.order...)
}

// Parents returns the ordered parent list of a node and whether the node is
// declared. The returned slice must not be mutated by callers.
func (m *Model) Parents(name string) ([]string, bool) {
	p, ok := m.parents[name]
	return p, ok
}

// HasNode reports whether the node is declared in the model.
func (m *Model) HasNode(name string) bool {
	_, ok := m.parents[name]
	return ok
}
