package types_test

import (
	"testing"

	"modcheck/core/types"
)

func TestNodeKeySystem(t *testing.T) {
	tests := []struct {
		key  types.NodeKey
		want types.SystemKey
	}{
		{"powertrain.boost_level", "powertrain"},
		{"drivetrain.clutch_capacity", "drivetrain"},
		{"noseparator", ""},
		{".leadingdot", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := tt.key.System(); got != tt.want {
			t.Errorf("System(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNodeKeyIsValid(t *testing.T) {
	tests := []struct {
		key   types.NodeKey
		valid bool
	}{
		{"powertrain.boost_level", true},
		{"a.b", true},
		{"noseparator", false},
		{"trailing.", false},
		{".leading", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.key.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tt.key, got, tt.valid)
		}
	}
}

func TestSeverityIsValid(t *testing.T) {
	for _, s := range []types.Severity{
		types.SeverityCritical, types.SeverityWarning, types.SeverityInfo,
		types.SeveritySafety, types.SeverityPositive,
	} {
		if !s.IsValid() {
			t.Errorf("severity %q should be valid", s)
		}
	}
	if types.Severity("fatal").IsValid() {
		t.Error("unknown severity should be invalid")
	}
}

func TestNewSelectionNormalizes(t *testing.T) {
	sel := types.NewSelection("intake", "headers", "intake", "", "headers", "ecu-tune")

	want := []types.UpgradeKey{"intake", "headers", "ecu-tune"}
	if len(sel) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(sel), len(want), sel)
	}
	for i, k := range want {
		if sel[i] != k {
			t.Errorf("sel[%d] = %q, want %q", i, sel[i], k)
		}
	}
}

func TestSelectionMembership(t *testing.T) {
	sel := types.NewSelection("intake", "headers")

	if !sel.Contains("intake") {
		t.Error("Contains should find intake")
	}
	if sel.Contains("big-turbo") {
		t.Error("Contains should not find big-turbo")
	}
	if !sel.ContainsAny([]types.UpgradeKey{"big-turbo", "headers"}) {
		t.Error("ContainsAny should match headers")
	}
	if sel.ContainsAny([]types.UpgradeKey{"big-turbo"}) {
		t.Error("ContainsAny should not match")
	}
	if !sel.ContainsAll([]types.UpgradeKey{"intake", "headers"}) {
		t.Error("ContainsAll should match both")
	}
	if sel.ContainsAll([]types.UpgradeKey{"intake", "big-turbo"}) {
		t.Error("ContainsAll should fail on missing key")
	}
}

func TestSelectionWithIsNonMutating(t *testing.T) {
	sel := types.NewSelection("intake")
	grown := sel.With("headers")

	if len(sel) != 1 {
		t.Errorf("original selection mutated: %v", sel)
	}
	if len(grown) != 2 || grown[1] != "headers" {
		t.Errorf("With did not append: %v", grown)
	}

	same := sel.With("intake")
	if len(same) != 1 {
		t.Errorf("With on present key should be a no-op copy: %v", same)
	}
}

func TestSelectionWithout(t *testing.T) {
	sel := types.NewSelection("intake", "headers", "ecu-tune")
	got := sel.Without("headers", "missing")

	if len(got) != 2 || got[0] != "intake" || got[1] != "ecu-tune" {
		t.Errorf("Without = %v", got)
	}
	if len(sel) != 3 {
		t.Errorf("original selection mutated: %v", sel)
	}
}

func TestSelectionIntersect(t *testing.T) {
	sel := types.NewSelection("intake", "headers", "ecu-tune")
	got := sel.Intersect([]types.UpgradeKey{"ecu-tune", "big-turbo", "intake"})

	if len(got) != 2 || got[0] != "ecu-tune" || got[1] != "intake" {
		t.Errorf("Intersect = %v", got)
	}
}
