// Package rules provides the scenario rule evaluator.
// Rules are plain data - a kind tag plus the upgrade sets it compares -
// evaluated by a single interpreter, so a rule set can be loaded from
// configuration and property-tested without embedding executable logic.
package rules

import (
	"modcheck/core/types"
	"modcheck/internal/errors"
)

// Kind is the discriminant selecting how a rule's sets are interpreted
type Kind string

const (
	// KindMissingSupport fires when a trigger upgrade is selected and none
	// of the Supporting upgrades is
	KindMissingSupport Kind = "missing_support"

	// KindPairing fires when a trigger upgrade is selected and any of the
	// Recommends upgrades is absent; only the absent ones are recommended
	KindPairing Kind = "pairing"

	// KindCombinedStress fires when a trigger upgrade and any Companion
	// upgrade are selected together, unless a Supporting upgrade mitigates
	KindCombinedStress Kind = "combined_stress"
)

// IsValid checks if the kind is known to the interpreter
func (k Kind) IsValid() bool {
	switch k {
	case KindMissingSupport, KindPairing, KindCombinedStress:
		return true
	default:
		return false
	}
}

// Rule is one scenario rule. It is live only when Trigger intersects the
// selection; the interpreter then inspects the full selection, because
// whether a warning still applies can depend on upgrades beyond the
// triggering subset.
type Rule struct {
	// ID is the unique rule identifier
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Kind selects the interpretation of the sets below
	Kind Kind `json:"kind"`

	// Trigger is the any-of set that makes the rule live
	Trigger []types.UpgradeKey `json:"trigger"`

	// Supporting is the any-of set whose presence satisfies
	// missing_support rules and mitigates combined_stress rules
	Supporting []types.UpgradeKey `json:"supporting,omitempty"`

	// Companions is the any-of second set for combined_stress rules
	Companions []types.UpgradeKey `json:"companions,omitempty"`

	// Recommends is the suggested upgrade set carried on the advisory
	Recommends []types.UpgradeKey `json:"recommends,omitempty"`

	// Severity classifies the advisory
	Severity types.Severity `json:"severity"`

	// Message is the human-readable advisory text
	Message string `json:"message"`
}

// Advisory is a non-fatal warning or recommendation produced for a
// selection. Ephemeral: computed per evaluation, never persisted.
type Advisory struct {
	RuleID     string             `json:"rule_id"`
	RuleName   string             `json:"rule_name"`
	Severity   types.Severity     `json:"severity"`
	Message    string             `json:"message"`
	Recommends []types.UpgradeKey `json:"recommends,omitempty"`
}

// Set is the immutable rule registry, evaluated in registration order
type Set struct {
	rules []Rule
	byID  map[string]int
}

// NewSet builds and validates a rule set
func NewSet(rules []Rule) (*Set, error) {
	s := &Set{
		rules: make([]Rule, 0, len(rules)),
		byID:  make(map[string]int, len(rules)),
	}

	for _, r := range rules {
		if r.ID == "" {
			return nil, errors.Data("rule with empty id")
		}
		if _, dup := s.byID[r.ID]; dup {
			return nil, errors.Dataf("duplicate rule id %q", r.ID)
		}
		if !r.Kind.IsValid() {
			return nil, errors.Dataf("rule %q has unknown kind %q", r.ID, r.Kind)
		}
		if len(r.Trigger) == 0 {
			return nil, errors.Dataf("rule %q has an empty trigger set", r.ID)
		}
		if !r.Severity.IsValid() {
			return nil, errors.Dataf("rule %q has unknown severity %q", r.ID, r.Severity)
		}
		if r.Kind == KindMissingSupport && len(r.Supporting) == 0 {
			return nil, errors.Dataf("missing_support rule %q needs a supporting set", r.ID)
		}
		if r.Kind == KindPairing && len(r.Recommends) == 0 {
			return nil, errors.Dataf("pairing rule %q needs a recommends set", r.ID)
		}
		if r.Kind == KindCombinedStress && len(r.Companions) == 0 {
			return nil, errors.Dataf("combined_stress rule %q needs a companions set", r.ID)
		}
		s.byID[r.ID] = len(s.rules)
		s.rules = append(s.rules, r)
	}

	return s, nil
}

// Rules returns the rules in registration order
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Rule returns a rule by id
func (s *Set) Rule(id string) (Rule, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Rule{}, false
	}
	return s.rules[i], true
}

// Len returns the number of registered rules
func (s *Set) Len() int {
	return len(s.rules)
}

// Evaluate runs every live rule against the full selection and collects
// all non-nil advisories in registration order. No early exit, no
// inter-rule priority, no suppression of duplicate-looking advisories.
// The selection is a set: input order never changes the result.
func (s *Set) Evaluate(sel types.Selection) []Advisory {
	var out []Advisory
	for _, r := range s.rules {
		if !sel.ContainsAny(r.Trigger) {
			continue
		}
		if a := interpret(r, sel); a != nil {
			out = append(out, *a)
		}
	}
	return out
}

// interpret applies one live rule to the full selection
func interpret(r Rule, sel types.Selection) *Advisory {
	switch r.Kind {
	case KindMissingSupport:
		if sel.ContainsAny(r.Supporting) {
			return nil
		}
		return advisory(r, r.Recommends)

	case KindPairing:
		var missing []types.UpgradeKey
		for _, k := range r.Recommends {
			if !sel.Contains(k) {
				missing = append(missing, k)
			}
		}
		if len(missing) == 0 {
			return nil
		}
		return advisory(r, missing)

	case KindCombinedStress:
		if !sel.ContainsAny(r.Companions) {
			return nil
		}
		if len(r.Supporting) > 0 && sel.ContainsAny(r.Supporting) {
			return nil
		}
		return advisory(r, r.Recommends)

	default:
		// unreachable: NewSet rejects unknown kinds
		return nil
	}
}

func advisory(r Rule, recommends []types.UpgradeKey) *Advisory {
	return &Advisory{
		RuleID:     r.ID,
		RuleName:   r.Name,
		Severity:   r.Severity,
		Message:    r.Message,
		Recommends: recommends,
	}
}
