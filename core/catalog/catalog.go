// Package catalog - Authoritative upgrade catalog
// Defines the canonical list of upgrade keys with display metadata.
// This is the source of truth for "does this upgrade key exist at all";
// the engine itself tolerates unknown keys and reports them as unmapped.
package catalog

import (
	"modcheck/core/determinism"
	"modcheck/core/types"
)

// Tier classifies upgrades by intended use
type Tier int

const (
	// TierStreet - daily-drivable, no supporting mods assumed
	TierStreet Tier = iota
	// TierSport - spirited street use, light supporting mods
	TierSport
	// TierTrack - track-day oriented, assumes supporting mods
	TierTrack
	// TierRace - competition only
	TierRace
)

// String returns string representation
func (t Tier) String() string {
	switch t {
	case TierStreet:
		return "street"
	case TierSport:
		return "sport"
	case TierTrack:
		return "track"
	case TierRace:
		return "race"
	default:
		return "unknown"
	}
}

// ParseTier parses a tier name, defaulting to street
func ParseTier(s string) Tier {
	switch s {
	case "sport":
		return TierSport
	case "track":
		return TierTrack
	case "race":
		return TierRace
	default:
		return TierStreet
	}
}

// Category groups upgrades for browsing
type Category string

const (
	CategoryTuning     Category = "tuning"
	CategoryEngine     Category = "engine"
	CategoryFueling    Category = "fueling"
	CategoryIntake     Category = "intake"
	CategoryExhaust    Category = "exhaust"
	CategoryCooling    Category = "cooling"
	CategoryDrivetrain Category = "drivetrain"
	CategorySuspension Category = "suspension"
	CategoryBrakes     Category = "brakes"
	CategoryWheels     Category = "wheels"
	CategoryExterior   Category = "exterior"
)

// Entry is a catalog entry for one upgrade
type Entry struct {
	Key         types.UpgradeKey `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    Category         `json:"category"`
	Tier        Tier             `json:"tier"`
}

// Catalog is the authoritative upgrade catalog
type Catalog struct {
	entries *determinism.StableMap[types.UpgradeKey, Entry]
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		entries: determinism.NewStableMap[types.UpgradeKey, Entry](),
	}
}

// Register adds an upgrade to the catalog
func (c *Catalog) Register(entry Entry) {
	c.entries.Set(entry.Key, entry)
}

// Get returns a catalog entry
func (c *Catalog) Get(key types.UpgradeKey) (Entry, bool) {
	return c.entries.Get(key)
}

// Has reports whether the upgrade key exists
func (c *Catalog) Has(key types.UpgradeKey) bool {
	_, ok := c.entries.Get(key)
	return ok
}

// Name returns the display name, falling back to the raw key string
func (c *Catalog) Name(key types.UpgradeKey) string {
	if e, ok := c.entries.Get(key); ok {
		return e.Name
	}
	return key.String()
}

// Keys returns all upgrade keys in sorted order
func (c *Catalog) Keys() []types.UpgradeKey {
	return c.entries.Keys()
}

// ByCategory returns the entries of one category in sorted key order
func (c *Catalog) ByCategory(cat Category) []Entry {
	var out []Entry
	c.entries.Range(func(_ types.UpgradeKey, e Entry) bool {
		if e.Category == cat {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return c.entries.Len()
}
