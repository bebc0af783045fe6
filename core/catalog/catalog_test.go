package catalog_test

import (
	"testing"

	"modcheck/core/catalog"
)

func TestTierRoundTrip(t *testing.T) {
	tests := []struct {
		tier catalog.Tier
		str  string
	}{
		{catalog.TierStreet, "street"},
		{catalog.TierSport, "sport"},
		{catalog.TierTrack, "track"},
		{catalog.TierRace, "race"},
	}

	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.str {
			t.Errorf("String(%d) = %q, want %q", tt.tier, got, tt.str)
		}
		if got := catalog.ParseTier(tt.str); got != tt.tier {
			t.Errorf("ParseTier(%q) = %d, want %d", tt.str, got, tt.tier)
		}
	}

	if got := catalog.ParseTier("bananas"); got != catalog.TierStreet {
		t.Errorf("ParseTier on unknown input = %d, want street default", got)
	}
}

func TestRegisterAndLookup(t *testing.T) {
	c := catalog.New()
	c.Register(catalog.Entry{
		Key:      "big-turbo",
		Name:     "Big Turbo Kit",
		Category: catalog.CategoryEngine,
		Tier:     catalog.TierRace,
	})

	if !c.Has("big-turbo") {
		t.Error("Has(big-turbo) = false")
	}
	entry, ok := c.Get("big-turbo")
	if !ok || entry.Name != "Big Turbo Kit" {
		t.Errorf("Get = %+v, ok=%v", entry, ok)
	}
	if c.Has("unknown") {
		t.Error("Has(unknown) = true")
	}
}

func TestNameFallsBackToKey(t *testing.T) {
	c := catalog.Default()
	if got := c.Name("big-turbo"); got == "big-turbo" || got == "" {
		t.Errorf("built-in name not resolved: %q", got)
	}
	if got := c.Name("not-a-part"); got != "not-a-part" {
		t.Errorf("fallback name = %q", got)
	}
}

func TestKeysSorted(t *testing.T) {
	c := catalog.Default()
	keys := c.Keys()
	if len(keys) == 0 {
		t.Fatal("built-in catalog is empty")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}

func TestByCategory(t *testing.T) {
	c := catalog.Default()
	entries := c.ByCategory(catalog.CategoryTuning)
	if len(entries) == 0 {
		t.Fatal("no tuning entries in built-in catalog")
	}
	for _, e := range entries {
		if e.Category != catalog.CategoryTuning {
			t.Errorf("entry %q has category %q", e.Key, e.Category)
		}
	}
}
