package api

import (
	"modcheck/core/conflict"
	"modcheck/core/effect"
	"modcheck/core/engine"
	"modcheck/core/types"
)

// CheckRequest asks for a full analysis of a build selection
type CheckRequest struct {
	// Selection is the list of selected upgrade keys
	Selection []types.UpgradeKey `json:"selection"`
}

// ConflictRequest asks whether adding one upgrade to a selection conflicts
type ConflictRequest struct {
	// Candidate is the upgrade being added
	Candidate types.UpgradeKey `json:"candidate"`

	// Selection is the current build
	Selection []types.UpgradeKey `json:"selection"`
}

// ConflictResponse carries the conflict verdict; Conflict is null when
// the addition is clean
type ConflictResponse struct {
	Candidate types.UpgradeKey   `json:"candidate"`
	Conflict  *conflict.Conflict `json:"conflict"`
}

// ResolveRequest asks for a selection with the candidate applied
type ResolveRequest struct {
	Candidate types.UpgradeKey   `json:"candidate"`
	Selection []types.UpgradeKey `json:"selection"`

	// AutoRemoveLowerTunes strips superseded tunes before adding a tune
	AutoRemoveLowerTunes bool `json:"auto_remove_lower_tunes"`
}

// ResolveResponse carries the resolved selection
type ResolveResponse struct {
	Selection []types.UpgradeKey `json:"selection"`
}

// UpgradeResponse describes one upgrade: catalog metadata, static
// conflicts, and its modeled effects
type UpgradeResponse struct {
	engine.UpgradeDetail
	Effects effect.Summary `json:"effects"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine code and a human message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
