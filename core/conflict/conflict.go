// Package conflict decides whether adding an upgrade to a selection
// produces a hard conflict (mutually exclusive parts, redundant or
// superseded tunes, piggyback-vs-flash) or a soft informational overlap,
// and resolves hard conflicts against a caller-supplied selection.
package conflict

import (
	"fmt"
	"strings"

	"modcheck/core/determinism"
	"modcheck/core/types"
	"modcheck/internal/errors"
)

// Type classifies a detected conflict
type Type string

const (
	// TypeExclusive - candidate and selection share a mutually exclusive group
	TypeExclusive Type = "exclusive"

	// TypeRedundant - candidate tune adds nothing over an existing tune
	TypeRedundant Type = "redundant"

	// TypeUpgrade - candidate tune supersedes every existing tune
	TypeUpgrade Type = "upgrade"

	// TypeIncompatible - piggyback controller and flash tune cannot coexist
	TypeIncompatible Type = "incompatible"

	// TypeOverlap - an existing tune's calibration already assumes the
	// candidate hardware; informational only, never requires removal
	TypeOverlap Type = "overlap"
)

// Conflict is the result of checking one candidate against a selection.
// Hard means the caller must remove ConflictsWith before or while adding
// the candidate; overlap conflicts are never hard and list nothing.
type Conflict struct {
	Type          Type               `json:"type"`
	Severity      types.Severity     `json:"severity"`
	Message       string             `json:"message"`
	ConflictsWith []types.UpgradeKey `json:"conflicts_with"`
	Hard          bool               `json:"is_hard_conflict"`
}

// Tune describes one ranked tune in the hierarchy
type Tune struct {
	// Priority ranks calibration comprehensiveness; higher supersedes lower
	Priority int `json:"priority"`

	// Calibrated lists hardware upgrades this tune's calibration already
	// assumes; selecting them afterwards is an informational overlap
	Calibrated []types.UpgradeKey `json:"calibrated,omitempty"`
}

// Policy is the immutable conflict configuration
type Policy struct {
	groups    map[string][]types.UpgradeKey
	groupOf   map[types.UpgradeKey]string
	tunes     map[types.UpgradeKey]Tune
	piggyback types.UpgradeKey
}

// NewPolicy builds and validates a conflict policy.
// Group members must be unique across groups, every group needs at least
// two members, and the piggyback key must not be a ranked tune.
func NewPolicy(groups map[string][]types.UpgradeKey, tunes map[types.UpgradeKey]Tune, piggyback types.UpgradeKey) (*Policy, error) {
	p := &Policy{
		groups:    make(map[string][]types.UpgradeKey, len(groups)),
		groupOf:   make(map[types.UpgradeKey]string),
		tunes:     make(map[types.UpgradeKey]Tune, len(tunes)),
		piggyback: piggyback,
	}

	for _, name := range determinism.SortedKeys(groups) {
		members := groups[name]
		if len(members) < 2 {
			return nil, errors.Dataf("exclusivity group %q needs at least two members", name)
		}
		for _, m := range members {
			if prev, dup := p.groupOf[m]; dup {
				return nil, errors.Dataf("upgrade %q appears in exclusivity groups %q and %q", m, prev, name)
			}
			p.groupOf[m] = name
		}
		p.groups[name] = members
	}

	for key, t := range tunes {
		if t.Priority <= 0 {
			return nil, errors.Dataf("tune %q has non-positive priority %d", key, t.Priority)
		}
		p.tunes[key] = t
	}

	if piggyback != "" {
		if _, ranked := p.tunes[piggyback]; ranked {
			return nil, errors.Dataf("piggyback key %q must not carry a tune priority", piggyback)
		}
	}

	return p, nil
}

// Tune returns the ranked-tune entry for an upgrade
func (p *Policy) Tune(key types.UpgradeKey) (Tune, bool) {
	t, ok := p.tunes[key]
	return t, ok
}

// IsTune reports whether the upgrade is a ranked tune or the piggyback
func (p *Policy) IsTune(key types.UpgradeKey) bool {
	if key == p.piggyback && key != "" {
		return true
	}
	_, ok := p.tunes[key]
	return ok
}

// GroupOf returns the exclusivity group containing the upgrade
func (p *Policy) GroupOf(key types.UpgradeKey) (string, []types.UpgradeKey, bool) {
	name, ok := p.groupOf[key]
	if !ok {
		return "", nil, false
	}
	return name, p.groups[name], true
}

// Detector evaluates conflicts against an immutable policy
type Detector struct {
	policy *Policy
}

// NewDetector creates a detector over a policy
func NewDetector(policy *Policy) *Detector {
	return &Detector{policy: policy}
}

// Check decides whether adding candidate to sel conflicts. Categories are
// evaluated in strict priority order and the first match short-circuits:
// exclusivity group, tune hierarchy, piggyback-vs-flash, calibration
// overlap. Returns nil when nothing matches. A candidate already present
// in the selection never conflicts with itself.
func (d *Detector) Check(candidate types.UpgradeKey, sel types.Selection) *Conflict {
	if c := d.checkExclusive(candidate, sel); c != nil {
		return c
	}
	if c := d.checkTuneHierarchy(candidate, sel); c != nil {
		return c
	}
	if c := d.checkPiggyback(candidate, sel); c != nil {
		return c
	}
	return d.checkOverlap(candidate, sel)
}

// checkExclusive reports members of the candidate's exclusivity group
// that are already selected. These are physically incompatible part
// choices: at most one can be installed.
func (d *Detector) checkExclusive(candidate types.UpgradeKey, sel types.Selection) *Conflict {
	_, members, ok := d.policy.GroupOf(candidate)
	if !ok {
		return nil
	}
	var others []types.UpgradeKey
	for _, m := range members {
		if m != candidate && sel.Contains(m) {
			others = append(others, m)
		}
	}
	if len(others) == 0 {
		return nil
	}
	return &Conflict{
		Type:          TypeExclusive,
		Severity:      types.SeverityCritical,
		Message:       fmt.Sprintf("%s cannot be installed alongside %s; only one option from this group fits.", candidate, joinKeys(others)),
		ConflictsWith: others,
		Hard:          true,
	}
}

// checkTuneHierarchy compares a ranked candidate tune against the ranked
// tunes already selected.
func (d *Detector) checkTuneHierarchy(candidate types.UpgradeKey, sel types.Selection) *Conflict {
	cand, ok := d.policy.Tune(candidate)
	if !ok {
		return nil
	}

	var existing []types.UpgradeKey
	highest := types.UpgradeKey("")
	highestPriority := 0
	for _, k := range sel {
		if k == candidate {
			continue
		}
		t, ranked := d.policy.Tune(k)
		if !ranked {
			continue
		}
		existing = append(existing, k)
		if t.Priority > highestPriority {
			highest = k
			highestPriority = t.Priority
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if cand.Priority <= highestPriority {
		return &Conflict{
			Type:          TypeRedundant,
			Severity:      types.SeverityWarning,
			Message:       fmt.Sprintf("%s adds nothing beyond the already selected %s.", candidate, highest),
			ConflictsWith: []types.UpgradeKey{highest},
			Hard:          true,
		}
	}
	// Hard here means the caller should offer replacement of the
	// superseded tunes, not that user action is required.
	determinism.SortStrings(existing)
	return &Conflict{
		Type:          TypeUpgrade,
		Severity:      types.SeverityInfo,
		Message:       fmt.Sprintf("%s supersedes %s.", candidate, joinKeys(existing)),
		ConflictsWith: existing,
		Hard:          true,
	}
}

// checkPiggyback models that a piggyback controller and an ECU flash tune
// cannot coexist regardless of relative priority.
func (d *Detector) checkPiggyback(candidate types.UpgradeKey, sel types.Selection) *Conflict {
	piggy := d.policy.piggyback
	if piggy == "" {
		return nil
	}

	var others []types.UpgradeKey
	switch {
	case candidate == piggy:
		for _, k := range sel {
			if k == candidate {
				continue
			}
			if _, ranked := d.policy.Tune(k); ranked {
				others = append(others, k)
			}
		}
	default:
		if _, ranked := d.policy.Tune(candidate); ranked && sel.Contains(piggy) {
			others = append(others, piggy)
		}
	}
	if len(others) == 0 {
		return nil
	}
	determinism.SortStrings(others)
	return &Conflict{
		Type:          TypeIncompatible,
		Severity:      types.SeverityCritical,
		Message:       fmt.Sprintf("%s cannot run together with %s; a piggyback controller and a flash tune fight over the same signals.", candidate, joinKeys(others)),
		ConflictsWith: others,
		Hard:          true,
	}
}

// checkOverlap reports when an already-selected tune's calibration
// assumes the candidate hardware. Gains will not fully stack; addition
// proceeds without removal.
func (d *Detector) checkOverlap(candidate types.UpgradeKey, sel types.Selection) *Conflict {
	for _, k := range sel {
		if k == candidate {
			continue
		}
		t, ranked := d.policy.Tune(k)
		if !ranked {
			continue
		}
		for _, hw := range t.Calibrated {
			if hw == candidate {
				return &Conflict{
					Type:          TypeOverlap,
					Severity:      types.SeverityInfo,
					Message:       fmt.Sprintf("%s is already assumed by the %s calibration; gains will not fully stack.", candidate, k),
					ConflictsWith: []types.UpgradeKey{},
					Hard:          false,
				}
			}
		}
	}
	return nil
}

// ResolveOptions controls Resolve behavior
type ResolveOptions struct {
	// AutoRemoveLowerTunes strips every selected tune whose priority is
	// lower than or equal to a candidate tune before appending it
	AutoRemoveLowerTunes bool
}

// Resolve returns a new selection with the candidate applied. If the
// candidate is already present the selection is returned unchanged (as a
// copy). The caller's input selection is never mutated.
func (d *Detector) Resolve(candidate types.UpgradeKey, sel types.Selection, opts ResolveOptions) types.Selection {
	if sel.Contains(candidate) {
		return sel.Clone()
	}

	out := sel.Clone()
	if opts.AutoRemoveLowerTunes {
		if cand, ok := d.policy.Tune(candidate); ok {
			var drop []types.UpgradeKey
			for _, k := range out {
				if t, ranked := d.policy.Tune(k); ranked && t.Priority <= cand.Priority {
					drop = append(drop, k)
				}
			}
			out = out.Without(drop...)
		}
	}
	return append(out, candidate)
}

// StaticConflicts returns the upgrades that always conflict with the
// given key regardless of selection: the other members of its exclusivity
// group, and for tunes the rest of the hierarchy plus the piggyback.
// Used for UI pre-highlighting. Output is sorted.
func (d *Detector) StaticConflicts(key types.UpgradeKey) []types.UpgradeKey {
	seen := make(map[types.UpgradeKey]struct{})

	if _, members, ok := d.policy.GroupOf(key); ok {
		for _, m := range members {
			if m != key {
				seen[m] = struct{}{}
			}
		}
	}

	piggy := d.policy.piggyback
	if _, ranked := d.policy.Tune(key); ranked {
		for _, other := range determinism.SortedKeys(d.policy.tunes) {
			if other != key {
				seen[other] = struct{}{}
			}
		}
		if piggy != "" {
			seen[piggy] = struct{}{}
		}
	} else if key == piggy && key != "" {
		for _, other := range determinism.SortedKeys(d.policy.tunes) {
			seen[other] = struct{}{}
		}
	}

	return determinism.SortedKeys(seen)
}

// All applies Check pairwise across a full selection and collects every
// resulting conflict, for validating a saved build rather than a single
// add-event. Upgrades are checked in sorted key order so identical
// selections always report identically.
func (d *Detector) All(sel types.Selection) []Conflict {
	keys := make([]types.UpgradeKey, len(sel))
	copy(keys, sel)
	determinism.SortStrings(keys)

	var out []Conflict
	for _, k := range keys {
		if c := d.Check(k, sel.Without(k)); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

func joinKeys(keys []types.UpgradeKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
