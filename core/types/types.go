// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// the selection value type every engine operation consumes.
package types

import "strings"

// SystemKey identifies a top-level vehicle subsystem (e.g. "powertrain").
type SystemKey string

// String returns the string representation
func (k SystemKey) String() string {
	return string(k)
}

// NodeKey identifies a single measurable attribute within a system.
// Format: system.attribute (e.g. "powertrain.boost_level").
type NodeKey string

// String returns the string representation
func (k NodeKey) String() string {
	return string(k)
}

// System returns the owning system key (the first path segment).
// Returns an empty key if the node key is not namespaced.
func (k NodeKey) System() SystemKey {
	s := string(k)
	i := strings.IndexByte(s, '.')
	if i <= 0 {
		return ""
	}
	return SystemKey(s[:i])
}

// IsValid checks that the key has the system.attribute form
func (k NodeKey) IsValid() bool {
	s := string(k)
	i := strings.IndexByte(s, '.')
	return i > 0 && i < len(s)-1
}

// UpgradeKey identifies a single upgrade in the upgrade catalog.
type UpgradeKey string

// String returns the string representation
func (k UpgradeKey) String() string {
	return string(k)
}

// Severity classifies advisories, conflicts and relationship types
// for default display styling. The engine never branches on it.
type Severity string

const (
	// SeverityCritical blocks a build until addressed
	SeverityCritical Severity = "critical"

	// SeverityWarning flags reliability risk without blocking
	SeverityWarning Severity = "warning"

	// SeverityInfo is informational only
	SeverityInfo Severity = "info"

	// SeveritySafety flags a safety risk
	SeveritySafety Severity = "safety"

	// SeverityPositive marks a beneficial relationship
	SeverityPositive Severity = "positive"
)

// IsValid checks if the severity is a known class
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo, SeveritySafety, SeverityPositive:
		return true
	default:
		return false
	}
}

// Selection is the caller-supplied set of selected upgrade keys.
// It preserves first-occurrence order but carries no duplicates;
// all engine operations treat it as an unordered set.
type Selection []UpgradeKey

// NewSelection builds a Selection from raw keys, dropping duplicates
// while keeping the first occurrence of each key.
func NewSelection(keys ...UpgradeKey) Selection {
	seen := make(map[UpgradeKey]struct{}, len(keys))
	out := make(Selection, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Contains reports whether the selection includes the key
func (s Selection) Contains(key UpgradeKey) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the selection includes any of the keys
func (s Selection) ContainsAny(keys []UpgradeKey) bool {
	for _, k := range keys {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the selection includes every key
func (s Selection) ContainsAll(keys []UpgradeKey) bool {
	for _, k := range keys {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the selection
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	copy(out, s)
	return out
}

// With returns a copy of the selection with the key appended.
// A no-op copy is returned if the key is already present.
func (s Selection) With(key UpgradeKey) Selection {
	if s.Contains(key) {
		return s.Clone()
	}
	out := make(Selection, 0, len(s)+1)
	out = append(out, s...)
	return append(out, key)
}

// Without returns a copy of the selection with every listed key removed
func (s Selection) Without(keys ...UpgradeKey) Selection {
	drop := make(map[UpgradeKey]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(Selection, 0, len(s))
	for _, k := range s {
		if _, skip := drop[k]; skip {
			continue
		}
		out = append(out, k)
	}
	return out
}

// Intersect returns the keys of the given set present in the selection,
// in the order of the given set.
func (s Selection) Intersect(keys []UpgradeKey) []UpgradeKey {
	var out []UpgradeKey
	for _, k := range keys {
		if s.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}
