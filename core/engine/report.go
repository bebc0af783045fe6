package engine

import (
	"modcheck/core/conflict"
	"modcheck/core/rules"
	"modcheck/core/types"
)

// Report aggregates everything the engine has to say about one
// selection: the advisories of live scenario rules, every pairwise
// conflict, and the vehicle systems the build touches.
type Report struct {
	Selection       types.Selection     `json:"selection"`
	Advisories      []rules.Advisory    `json:"advisories"`
	Conflicts       []conflict.Conflict `json:"conflicts"`
	AffectedSystems []types.SystemKey   `json:"affected_systems"`
}

// HasFindings reports whether the build produced any advisory or conflict
func (r *Report) HasFindings() bool {
	return len(r.Advisories) > 0 || len(r.Conflicts) > 0
}

// HardConflicts returns only the conflicts that require user action
func (r *Report) HardConflicts() []conflict.Conflict {
	var out []conflict.Conflict
	for _, c := range r.Conflicts {
		if c.Hard {
			out = append(out, c)
		}
	}
	return out
}

// Check runs the full analysis pipeline over a selection
func (e *Engine) Check(sel types.Selection) *Report {
	return &Report{
		Selection:       sel,
		Advisories:      e.Evaluate(sel),
		Conflicts:       e.AllConflicts(sel),
		AffectedSystems: e.AffectedSystems(sel),
	}
}

// UpgradeDetail describes one catalog upgrade for inspection output
type UpgradeDetail struct {
	Key           types.UpgradeKey   `json:"key"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	Category      string             `json:"category"`
	Tier          string             `json:"tier"`
	ConflictsWith []types.UpgradeKey `json:"conflicts_with,omitempty"`
}

// Inspect resolves catalog metadata and static conflicts for an upgrade.
// Requires a configured catalog.
func (e *Engine) Inspect(key types.UpgradeKey) (UpgradeDetail, bool) {
	if e.catalog == nil {
		return UpgradeDetail{}, false
	}
	entry, ok := e.catalog.Get(key)
	if !ok {
		return UpgradeDetail{}, false
	}
	return UpgradeDetail{
		Key:           entry.Key,
		Name:          entry.Name,
		Description:   entry.Description,
		Category:      string(entry.Category),
		Tier:          entry.Tier.String(),
		ConflictsWith: e.ConflictingUpgrades(key),
	}, true
}
