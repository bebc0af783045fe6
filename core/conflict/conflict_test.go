package conflict_test

import (
	"reflect"
	"testing"

	"modcheck/core/conflict"
	"modcheck/core/types"
)

func detector(t *testing.T) *conflict.Detector {
	t.Helper()
	return conflict.Default()
}

func TestNewPolicyValidation(t *testing.T) {
	tests := []struct {
		name      string
		groups    map[string][]types.UpgradeKey
		tunes     map[types.UpgradeKey]conflict.Tune
		piggyback types.UpgradeKey
	}{
		{
			name:   "single-member group",
			groups: map[string][]types.UpgradeKey{"g": {"only"}},
		},
		{
			name: "upgrade in two groups",
			groups: map[string][]types.UpgradeKey{
				"a": {"x", "y"},
				"b": {"x", "z"},
			},
		},
		{
			name:  "non-positive priority",
			tunes: map[types.UpgradeKey]conflict.Tune{"t": {Priority: 0}},
		},
		{
			name:      "piggyback ranked as tune",
			tunes:     map[types.UpgradeKey]conflict.Tune{"piggy": {Priority: 1}},
			piggyback: "piggy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := conflict.NewPolicy(tt.groups, tt.tunes, tt.piggyback); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTuneUpgradeConflict(t *testing.T) {
	d := detector(t)

	c := d.Check("stage3-tune", types.NewSelection("stage2-tune"))
	if c == nil {
		t.Fatal("expected a conflict")
	}
	if c.Type != conflict.TypeUpgrade {
		t.Errorf("Type = %s, want upgrade", c.Type)
	}
	if !reflect.DeepEqual(c.ConflictsWith, []types.UpgradeKey{"stage2-tune"}) {
		t.Errorf("ConflictsWith = %v", c.ConflictsWith)
	}
	if !c.Hard {
		t.Error("upgrade conflicts stay hard so callers offer replacement")
	}
}

func TestTuneRedundantConflict(t *testing.T) {
	d := detector(t)

	c := d.Check("stage1-tune", types.NewSelection("stage3-tune"))
	if c == nil {
		t.Fatal("expected a conflict")
	}
	if c.Type != conflict.TypeRedundant {
		t.Errorf("Type = %s, want redundant", c.Type)
	}
	if !reflect.DeepEqual(c.ConflictsWith, []types.UpgradeKey{"stage3-tune"}) {
		t.Errorf("ConflictsWith = %v", c.ConflictsWith)
	}
	if !c.Hard {
		t.Error("redundant conflicts are hard")
	}
	if c.Severity != types.SeverityWarning {
		t.Errorf("Severity = %s, want warning", c.Severity)
	}
}

func TestPiggybackIncompatible(t *testing.T) {
	d := detector(t)

	c := d.Check("piggyback-tuner", types.NewSelection("ecu-tune"))
	if c == nil {
		t.Fatal("expected a conflict")
	}
	if c.Type != conflict.TypeIncompatible || !c.Hard {
		t.Errorf("got %+v, want hard incompatible", c)
	}

	// also in the other direction
	c = d.Check("stage2-tune", types.NewSelection("piggyback-tuner"))
	if c == nil || c.Type != conflict.TypeIncompatible {
		t.Errorf("flash tune onto piggyback should be incompatible, got %+v", c)
	}
}

func TestCalibrationOverlap(t *testing.T) {
	d := detector(t)

	c := d.Check("intake", types.NewSelection("stage2-tune"))
	if c == nil {
		t.Fatal("expected an overlap")
	}
	if c.Type != conflict.TypeOverlap {
		t.Errorf("Type = %s, want overlap", c.Type)
	}
	if c.Hard {
		t.Error("overlap must never be hard")
	}
	if len(c.ConflictsWith) != 0 {
		t.Errorf("overlap must not require removal, got %v", c.ConflictsWith)
	}
	if c.Severity != types.SeverityInfo {
		t.Errorf("Severity = %s, want info", c.Severity)
	}
}

func TestExclusivitySymmetry(t *testing.T) {
	d := detector(t)

	pairs := [][2]types.UpgradeKey{
		{"coilovers-street", "coilovers-track"},
		{"coilovers-track", "lowering-springs"},
		{"brake-pads-street", "brake-pads-track"},
		{"big-turbo", "supercharger-kit"},
		{"cat-back-exhaust", "axle-back-exhaust"},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		ca := d.Check(a, types.NewSelection(b))
		cb := d.Check(b, types.NewSelection(a))
		if ca == nil || cb == nil {
			t.Fatalf("%s/%s: expected conflicts both ways", a, b)
		}
		if ca.Type != conflict.TypeExclusive || cb.Type != conflict.TypeExclusive {
			t.Errorf("%s/%s: types %s and %s", a, b, ca.Type, cb.Type)
		}
		if !reflect.DeepEqual(ca.ConflictsWith, []types.UpgradeKey{b}) {
			t.Errorf("adding %s should report %s, got %v", a, b, ca.ConflictsWith)
		}
		if !reflect.DeepEqual(cb.ConflictsWith, []types.UpgradeKey{a}) {
			t.Errorf("adding %s should report %s, got %v", b, a, cb.ConflictsWith)
		}
	}
}

func TestExclusiveBeatsTuneAndOverlap(t *testing.T) {
	d := detector(t)

	// coilovers-track is exclusive with lowering-springs; exclusivity is
	// checked before any other category
	c := d.Check("coilovers-track", types.NewSelection("lowering-springs", "stage2-tune"))
	if c == nil || c.Type != conflict.TypeExclusive {
		t.Errorf("exclusive should win, got %+v", c)
	}
}

func TestTuneHierarchyBeatsOverlap(t *testing.T) {
	d := detector(t)

	// stage1-tune is redundant next to stage2-tune; redundancy must be
	// reported even though stage2's calibration questions never arise
	c := d.Check("stage1-tune", types.NewSelection("stage2-tune", "intake"))
	if c == nil || c.Type != conflict.TypeRedundant {
		t.Errorf("tune hierarchy should win, got %+v", c)
	}
}

func TestNoConflict(t *testing.T) {
	d := detector(t)

	if c := d.Check("intake", types.NewSelection("headers")); c != nil {
		t.Errorf("unrelated parts should not conflict: %+v", c)
	}
	if c := d.Check("big-turbo", nil); c != nil {
		t.Errorf("empty selection should never conflict: %+v", c)
	}
	if c := d.Check("intake", types.NewSelection("intake")); c != nil {
		t.Errorf("candidate must not conflict with itself: %+v", c)
	}
}

func TestTuneMonotonicity(t *testing.T) {
	d := detector(t)
	ranked := []types.UpgradeKey{"ecu-tune", "stage1-tune", "stage2-tune", "stage3-tune"}

	for i, lower := range ranked {
		for _, higher := range ranked[i+1:] {
			up := d.Check(higher, types.NewSelection(lower))
			if up == nil || up.Type != conflict.TypeUpgrade {
				t.Errorf("%s onto %s: got %+v, want upgrade", higher, lower, up)
				continue
			}
			if !reflect.DeepEqual(up.ConflictsWith, []types.UpgradeKey{lower}) {
				t.Errorf("%s onto %s: ConflictsWith = %v", higher, lower, up.ConflictsWith)
			}

			down := d.Check(lower, types.NewSelection(higher))
			if down == nil || down.Type != conflict.TypeRedundant {
				t.Errorf("%s onto %s: got %+v, want redundant", lower, higher, down)
				continue
			}
			if !reflect.DeepEqual(down.ConflictsWith, []types.UpgradeKey{higher}) {
				t.Errorf("%s onto %s: ConflictsWith = %v", lower, higher, down.ConflictsWith)
			}
		}
	}
}

func TestResolveAppendsCandidate(t *testing.T) {
	d := detector(t)

	sel := types.NewSelection("intake", "headers")
	got := d.Resolve("ecu-tune", sel, conflict.ResolveOptions{})
	want := types.Selection{"intake", "headers", "ecu-tune"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
	if len(sel) != 2 {
		t.Errorf("input selection mutated: %v", sel)
	}
}

func TestResolveIdempotent(t *testing.T) {
	d := detector(t)
	opts := conflict.ResolveOptions{AutoRemoveLowerTunes: true}

	once := d.Resolve("stage2-tune", types.NewSelection("ecu-tune", "intake"), opts)
	twice := d.Resolve("stage2-tune", once, opts)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("resolve not idempotent: %v vs %v", once, twice)
	}
}

func TestResolveAutoRemovesSupersededTunes(t *testing.T) {
	d := detector(t)

	got := d.Resolve("stage3-tune", types.NewSelection("ecu-tune", "intake", "stage1-tune"),
		conflict.ResolveOptions{AutoRemoveLowerTunes: true})
	want := types.Selection{"intake", "stage3-tune"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveKeepsTunesWithoutOption(t *testing.T) {
	d := detector(t)

	got := d.Resolve("stage3-tune", types.NewSelection("ecu-tune"), conflict.ResolveOptions{})
	want := types.Selection{"ecu-tune", "stage3-tune"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestStaticConflicts(t *testing.T) {
	d := detector(t)

	got := d.StaticConflicts("coilovers-track")
	want := []types.UpgradeKey{"coilovers-street", "lowering-springs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StaticConflicts(coilovers-track) = %v, want %v", got, want)
	}

	got = d.StaticConflicts("stage2-tune")
	want = []types.UpgradeKey{"ecu-tune", "piggyback-tuner", "stage1-tune", "stage3-tune"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StaticConflicts(stage2-tune) = %v, want %v", got, want)
	}

	got = d.StaticConflicts("piggyback-tuner")
	want = []types.UpgradeKey{"ecu-tune", "stage1-tune", "stage2-tune", "stage3-tune"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StaticConflicts(piggyback-tuner) = %v, want %v", got, want)
	}

	if got := d.StaticConflicts("intake"); len(got) != 0 {
		t.Errorf("StaticConflicts(intake) = %v, want none", got)
	}
}

func TestAllConflictsDeterministic(t *testing.T) {
	d := detector(t)

	a := d.All(types.NewSelection("coilovers-track", "lowering-springs", "stage2-tune", "intake"))
	b := d.All(types.NewSelection("intake", "stage2-tune", "lowering-springs", "coilovers-track"))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("All is order dependent:\n%v\n%v", a, b)
	}
	if len(a) == 0 {
		t.Fatal("expected conflicts in a contradictory build")
	}
}
