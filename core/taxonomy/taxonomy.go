// Package taxonomy holds the immutable System/Node reference data.
// A Store is built once at startup, validated, and queried read-only
// thereafter; it is safe for concurrent use without locking.
package taxonomy

import (
	"modcheck/core/determinism"
	"modcheck/core/types"
	"modcheck/internal/errors"
)

// System is a top-level vehicle subsystem
type System struct {
	// Key is the unique system key (e.g. "powertrain")
	Key types.SystemKey `json:"key"`

	// Name is the display name
	Name string `json:"name"`

	// Description explains what the system covers
	Description string `json:"description,omitempty"`
}

// Node is a single measurable or controllable attribute of a system
type Node struct {
	// Key is the unique namespaced key, system.attribute
	Key types.NodeKey `json:"key"`

	// System is the owning system key; must match the key prefix
	System types.SystemKey `json:"system"`

	// Name is the display name
	Name string `json:"name"`

	// Description explains what the node measures
	Description string `json:"description,omitempty"`

	// Unit is the measurement unit, if any
	Unit string `json:"unit,omitempty"`

	// ApplicableEngines restricts the node to engine archetypes.
	// Empty means the node applies to every engine.
	ApplicableEngines []string `json:"applicable_engines,omitempty"`
}

// AppliesTo reports whether the node is meaningful for an engine archetype.
// An empty restriction list applies to every archetype.
func (n Node) AppliesTo(engine string) bool {
	if len(n.ApplicableEngines) == 0 {
		return true
	}
	for _, e := range n.ApplicableEngines {
		if e == engine {
			return true
		}
	}
	return false
}

// Store is the immutable taxonomy of systems and nodes
type Store struct {
	systems map[types.SystemKey]System
	nodes   map[types.NodeKey]Node
}

// NewStore builds and validates a taxonomy store.
// Every node key must have the system.attribute form, its prefix must match
// its declared system, and that system must be defined.
func NewStore(systems []System, nodes []Node) (*Store, error) {
	s := &Store{
		systems: make(map[types.SystemKey]System, len(systems)),
		nodes:   make(map[types.NodeKey]Node, len(nodes)),
	}

	for _, sys := range systems {
		if sys.Key == "" {
			return nil, errors.Data("system with empty key")
		}
		if _, dup := s.systems[sys.Key]; dup {
			return nil, errors.Dataf("duplicate system key %q", sys.Key)
		}
		s.systems[sys.Key] = sys
	}

	for _, n := range nodes {
		if !n.Key.IsValid() {
			return nil, errors.Dataf("node key %q is not of the form system.attribute", n.Key)
		}
		if n.System == "" {
			n.System = n.Key.System()
		}
		if n.Key.System() != n.System {
			return nil, errors.Dataf("node %q declares system %q but is namespaced under %q",
				n.Key, n.System, n.Key.System())
		}
		if _, ok := s.systems[n.System]; !ok {
			return nil, errors.Dataf("node %q references undefined system %q", n.Key, n.System)
		}
		if _, dup := s.nodes[n.Key]; dup {
			return nil, errors.Dataf("duplicate node key %q", n.Key)
		}
		s.nodes[n.Key] = n
	}

	return s, nil
}

// System returns a system by key
func (s *Store) System(key types.SystemKey) (System, bool) {
	sys, ok := s.systems[key]
	return sys, ok
}

// Node returns a node by key
func (s *Store) Node(key types.NodeKey) (Node, bool) {
	n, ok := s.nodes[key]
	return n, ok
}

// HasNode reports whether the node key is defined
func (s *Store) HasNode(key types.NodeKey) bool {
	_, ok := s.nodes[key]
	return ok
}

// SystemOf resolves a node key to its owning system key.
// Unknown node keys resolve to false rather than an error; stale
// configuration may reference nodes removed in a later revision.
func (s *Store) SystemOf(key types.NodeKey) (types.SystemKey, bool) {
	n, ok := s.nodes[key]
	if !ok {
		return "", false
	}
	return n.System, true
}

// NodeName returns a node's display name, falling back to the raw key
// string when the node is not defined.
func (s *Store) NodeName(key types.NodeKey) string {
	if n, ok := s.nodes[key]; ok {
		return n.Name
	}
	return key.String()
}

// Systems returns all systems sorted by key
func (s *Store) Systems() []System {
	out := make([]System, 0, len(s.systems))
	for _, k := range determinism.SortedKeys(s.systems) {
		out = append(out, s.systems[k])
	}
	return out
}

// Nodes returns all nodes sorted by key
func (s *Store) Nodes() []Node {
	out := make([]Node, 0, len(s.nodes))
	for _, k := range determinism.SortedKeys(s.nodes) {
		out = append(out, s.nodes[k])
	}
	return out
}

// NodesOf returns the nodes belonging to a system, sorted by key
func (s *Store) NodesOf(system types.SystemKey) []Node {
	var out []Node
	for _, k := range determinism.SortedKeys(s.nodes) {
		if s.nodes[k].System == system {
			out = append(out, s.nodes[k])
		}
	}
	return out
}

// Len returns the number of defined nodes
func (s *Store) Len() int {
	return len(s.nodes)
}
