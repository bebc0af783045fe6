package conflict

import "modcheck/core/types"

// PiggybackKey identifies the plug-in signal controller that cannot
// coexist with any flash tune.
const PiggybackKey = types.UpgradeKey("piggyback-tuner")

// DefaultGroups returns the built-in mutually exclusive upgrade groups.
// Members of one group occupy the same physical slot on the car.
func DefaultGroups() map[string][]types.UpgradeKey {
	return map[string][]types.UpgradeKey{
		"suspension-type": {
			"coilovers-street",
			"coilovers-track",
			"lowering-springs",
		},
		"brake-pad-compound": {
			"brake-pads-street",
			"brake-pads-track",
		},
		"camshaft-profile": {
			"camshaft-street",
			"camshaft-race",
		},
		"forced-induction": {
			"big-turbo",
			"supercharger-kit",
		},
		"rear-exhaust-section": {
			"cat-back-exhaust",
			"axle-back-exhaust",
		},
	}
}

// DefaultTunes returns the built-in flash tune hierarchy. Priority
// ranks calibration comprehensiveness; Calibrated lists the hardware a
// tune's map already assumes.
func DefaultTunes() map[types.UpgradeKey]Tune {
	return map[types.UpgradeKey]Tune{
		"ecu-tune": {
			Priority: 1,
		},
		"stage1-tune": {
			Priority:   2,
			Calibrated: []types.UpgradeKey{"intake"},
		},
		"stage2-tune": {
			Priority:   3,
			Calibrated: []types.UpgradeKey{"intake", "downpipe"},
		},
		"stage3-tune": {
			Priority:   4,
			Calibrated: []types.UpgradeKey{"intake", "downpipe", "intercooler", "fuel-injectors"},
		},
	}
}

// Default builds the detector over the built-in policy.
// Panics if the built-in data is inconsistent.
func Default() *Detector {
	p, err := NewPolicy(DefaultGroups(), DefaultTunes(), PiggybackKey)
	if err != nil {
		panic("conflict: invalid built-in policy: " + err.Error())
	}
	return NewDetector(p)
}
