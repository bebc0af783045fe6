// Package relation models the typed, directed relationship graph between
// taxonomy nodes. The graph is structural reference data: it answers "what
// touches what" and stores threshold magnitudes for explanation, but never
// evaluates them itself.
package relation

import "modcheck/core/types"

// Type is the kind of relationship an edge carries
type Type string

const (
	// Requires is a hard dependency of the source change on the target
	Requires Type = "requires"

	// Stresses means the source change increases load on the target
	Stresses Type = "stresses"

	// Invalidates means the source change forces recalibration of the target
	Invalidates Type = "invalidates"

	// PairsWell is an informational synergy
	PairsWell Type = "pairs_well"

	// Compromises means the source change risks the target's safety or quality
	Compromises Type = "compromises"

	// Improves is a direct positive effect on the target
	Improves Type = "improves"

	// Recommends is a soft suggestion toward the target
	Recommends Type = "recommends"
)

// IsValid checks if the type is a known relationship kind
func (t Type) IsValid() bool {
	switch t {
	case Requires, Stresses, Invalidates, PairsWell, Compromises, Improves, Recommends:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (t Type) String() string {
	return string(t)
}

// SeverityOf maps a relationship type to its fixed display severity class.
// The mapping exists only for presentation; engine logic never branches on it.
func SeverityOf(t Type) types.Severity {
	switch t {
	case Requires:
		return types.SeverityCritical
	case Stresses, Invalidates:
		return types.SeverityWarning
	case PairsWell, Recommends:
		return types.SeverityInfo
	case Compromises:
		return types.SeveritySafety
	case Improves:
		return types.SeverityPositive
	default:
		return types.SeverityInfo
	}
}
