// Package effect maps upgrade keys to the node-level effects they produce,
// and answers the structural queries built on that mapping: what an upgrade
// touches, which systems a selection affects, and a display-resolved summary.
package effect

import (
	"modcheck/core/determinism"
	"modcheck/core/taxonomy"
	"modcheck/core/types"
	"modcheck/internal/errors"
)

// Set is the per-upgrade record of node effects and cross-upgrade
// dependencies. A zero Set is the valid "no modeled effects" shape.
type Set struct {
	// Improves lists nodes the upgrade directly benefits
	Improves []types.NodeKey `json:"improves,omitempty"`

	// Modifies lists nodes the upgrade changes without a clear direction
	Modifies []types.NodeKey `json:"modifies,omitempty"`

	// Stresses lists nodes whose load or capacity demand increases
	Stresses []types.NodeKey `json:"stresses,omitempty"`

	// Invalidates lists nodes forced into recalibration
	Invalidates []types.NodeKey `json:"invalidates,omitempty"`

	// Compromises lists nodes put at safety or quality risk
	Compromises []types.NodeKey `json:"compromises,omitempty"`

	// Requires lists upgrade keys that must also be selected.
	// Absence is a hard validation failure caught by the surrounding
	// application, not by this engine.
	Requires []types.UpgradeKey `json:"requires,omitempty"`

	// Recommends lists upgrade keys that should also be selected
	Recommends []types.UpgradeKey `json:"recommends,omitempty"`
}

// Nodes returns the union of all five effect lists, sorted and deduplicated
func (s Set) Nodes() []types.NodeKey {
	all := make([]types.NodeKey, 0,
		len(s.Improves)+len(s.Modifies)+len(s.Stresses)+len(s.Invalidates)+len(s.Compromises))
	all = append(all, s.Improves...)
	all = append(all, s.Modifies...)
	all = append(all, s.Stresses...)
	all = append(all, s.Invalidates...)
	all = append(all, s.Compromises...)
	return determinism.DedupSorted(all)
}

// IsZero reports whether the set models no effects at all
func (s Set) IsZero() bool {
	return len(s.Improves) == 0 && len(s.Modifies) == 0 && len(s.Stresses) == 0 &&
		len(s.Invalidates) == 0 && len(s.Compromises) == 0 &&
		len(s.Requires) == 0 && len(s.Recommends) == 0
}

// Summary is a Set with node keys resolved to display names for
// presentation. Unresolvable keys fall back to the raw key string.
type Summary struct {
	Upgrade     types.UpgradeKey   `json:"upgrade"`
	Improves    []string           `json:"improves,omitempty"`
	Modifies    []string           `json:"modifies,omitempty"`
	Stresses    []string           `json:"stresses,omitempty"`
	Invalidates []string           `json:"invalidates,omitempty"`
	Compromises []string           `json:"compromises,omitempty"`
	Requires    []types.UpgradeKey `json:"requires,omitempty"`
	Recommends  []types.UpgradeKey `json:"recommends,omitempty"`
}

// Map is the immutable upgrade-to-effects mapping
type Map struct {
	effects map[types.UpgradeKey]Set
}

// NewMap builds and validates an effect map against a taxonomy.
// Node keys must resolve at load time so that a typo surfaces here rather
// than silently reading as "no effect" at query time.
func NewMap(tax *taxonomy.Store, entries map[types.UpgradeKey]Set) (*Map, error) {
	m := &Map{effects: make(map[types.UpgradeKey]Set, len(entries))}

	for upgrade, set := range entries {
		if upgrade == "" {
			return nil, errors.Data("effect entry with empty upgrade key")
		}
		for _, n := range set.Nodes() {
			if !tax.HasNode(n) {
				return nil, errors.Dataf("upgrade %q references undefined node %q", upgrade, n)
			}
		}
		m.effects[upgrade] = set
	}

	return m, nil
}

// Effects returns the effect set for an upgrade.
// Upgrades absent from the map report a zero Set and false; an upgrade
// with no modeled effects is valid (e.g. cosmetic items).
func (m *Map) Effects(upgrade types.UpgradeKey) (Set, bool) {
	s, ok := m.effects[upgrade]
	return s, ok
}

// Upgrades returns all mapped upgrade keys in sorted order
func (m *Map) Upgrades() []types.UpgradeKey {
	return determinism.SortedKeys(m.effects)
}

// AffectedSystems resolves every node touched by the selection to its
// owning system and unions the result. Unknown upgrade keys contribute
// nothing; node keys missing from the taxonomy are skipped, since config
// data may reference nodes removed in a later revision. Output is sorted, so equal
// selections always produce identical results regardless of input order.
func (m *Map) AffectedSystems(tax *taxonomy.Store, sel types.Selection) []types.SystemKey {
	seen := make(map[types.SystemKey]struct{})
	for _, upgrade := range sel {
		set, ok := m.effects[upgrade]
		if !ok {
			continue
		}
		for _, n := range set.Nodes() {
			if sys, ok := tax.SystemOf(n); ok {
				seen[sys] = struct{}{}
			}
		}
	}
	return determinism.SortedKeys(seen)
}

// Summarize resolves an upgrade's effect set to display names.
// Returns the zero-effect summary for upgrades absent from the map;
// the boolean mirrors Effects.
func (m *Map) Summarize(tax *taxonomy.Store, upgrade types.UpgradeKey) (Summary, bool) {
	set, ok := m.effects[upgrade]
	return Summary{
		Upgrade:     upgrade,
		Improves:    resolveNames(tax, set.Improves),
		Modifies:    resolveNames(tax, set.Modifies),
		Stresses:    resolveNames(tax, set.Stresses),
		Invalidates: resolveNames(tax, set.Invalidates),
		Compromises: resolveNames(tax, set.Compromises),
		Requires:    set.Requires,
		Recommends:  set.Recommends,
	}, ok
}

func resolveNames(tax *taxonomy.Store, keys []types.NodeKey) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = tax.NodeName(k)
	}
	return out
}
