package rules

import "modcheck/core/types"

var anyFlashTune = []types.UpgradeKey{"ecu-tune", "stage1-tune", "stage2-tune", "stage3-tune"}

// DefaultRules returns the built-in scenario rules, in evaluation order
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:         "headers-need-tune",
			Name:       "Headers Require Tune",
			Kind:       KindMissingSupport,
			Trigger:    []types.UpgradeKey{"headers"},
			Supporting: anyFlashTune,
			Recommends: []types.UpgradeKey{"ecu-tune"},
			Severity:   types.SeverityWarning,
			Message:    "Headers change fueling enough that running without a tune costs power and risks lean spots.",
		},
		{
			ID:         "downpipe-needs-tune",
			Name:       "Downpipe Requires Tune",
			Kind:       KindMissingSupport,
			Trigger:    []types.UpgradeKey{"downpipe"},
			Supporting: anyFlashTune,
			Recommends: []types.UpgradeKey{"stage2-tune"},
			Severity:   types.SeverityWarning,
			Message:    "A high-flow downpipe without a matching calibration throws codes and runs lean under boost.",
		},
		{
			ID:         "camshafts-need-tune",
			Name:       "Camshafts Require Tune",
			Kind:       KindMissingSupport,
			Trigger:    []types.UpgradeKey{"camshaft-street", "camshaft-race"},
			Supporting: anyFlashTune,
			Recommends: []types.UpgradeKey{"ecu-tune"},
			Severity:   types.SeverityWarning,
			Message:    "Cam profiles shift the VE tables wholesale; the stock calibration cannot idle or fuel them correctly.",
		},
		{
			ID:         "big-turbo-fueling",
			Name:       "Big Turbo Fuel Support",
			Kind:       KindMissingSupport,
			Trigger:    []types.UpgradeKey{"big-turbo", "supercharger-kit"},
			Supporting: []types.UpgradeKey{"fuel-injectors"},
			Recommends: []types.UpgradeKey{"fuel-injectors", "fuel-pump"},
			Severity:   types.SeveritySafety,
			Message:    "Forced-induction upgrades outrun stock injectors; running them without fuel system support risks engine damage.",
		},
		{
			ID:         "e85-fuel-volume",
			Name:       "E85 Fuel Volume",
			Kind:       KindMissingSupport,
			Trigger:    []types.UpgradeKey{"e85-conversion"},
			Supporting: []types.UpgradeKey{"fuel-pump"},
			Recommends: []types.UpgradeKey{"fuel-pump", "fuel-injectors"},
			Severity:   types.SeveritySafety,
			Message:    "Ethanol blends need roughly 30% more fuel volume than the stock pump can deliver at load.",
		},
		{
			ID:         "boost-needs-cooling",
			Name:       "High Boost Charge Cooling",
			Kind:       KindCombinedStress,
			Trigger:    []types.UpgradeKey{"big-turbo", "supercharger-kit"},
			Companions: []types.UpgradeKey{"stage2-tune", "stage3-tune"},
			Supporting: []types.UpgradeKey{"intercooler"},
			Recommends: []types.UpgradeKey{"intercooler"},
			Severity:   types.SeverityWarning,
			Message:    "An aggressive calibration on a larger blower heat-soaks the stock intercooler within a single pull.",
		},
		{
			ID:         "intake-exhaust-synergy",
			Name:       "Intake And Exhaust Want A Tune",
			Kind:       KindCombinedStress,
			Trigger:    []types.UpgradeKey{"intake"},
			Companions: []types.UpgradeKey{"headers", "downpipe", "cat-back-exhaust"},
			Supporting: anyFlashTune,
			Recommends: []types.UpgradeKey{"ecu-tune"},
			Severity:   types.SeverityInfo,
			Message:    "Intake and exhaust mods together shift airflow enough that a calibration unlocks most of their gains.",
		},
		{
			ID:         "stage3-clutch-capacity",
			Name:       "Stage 3 Clutch Capacity",
			Kind:       KindMissingSupport,
			Trigger:    []types.UpgradeKey{"stage3-tune"},
			Supporting: []types.UpgradeKey{"clutch-performance"},
			Recommends: []types.UpgradeKey{"clutch-performance"},
			Severity:   types.SeverityWarning,
			Message:    "Stage 3 torque sits past the stock clutch's holding margin; expect slip under full load.",
		},
		{
			ID:         "track-coilovers-balance",
			Name:       "Track Coilovers Pair With Chassis Support",
			Kind:       KindPairing,
			Trigger:    []types.UpgradeKey{"coilovers-track"},
			Recommends: []types.UpgradeKey{"sway-bars", "chassis-bracing"},
			Severity:   types.SeverityInfo,
			Message:    "Track-rate coilovers work best with matched roll stiffness and a braced shell.",
		},
		{
			ID:         "big-brakes-grip",
			Name:       "Big Brakes Pair With Tires",
			Kind:       KindPairing,
			Trigger:    []types.UpgradeKey{"big-brake-kit"},
			Recommends: []types.UpgradeKey{"tires-performance"},
			Severity:   types.SeverityInfo,
			Message:    "Brake torque beyond tire grip just finds ABS sooner; pair the kit with a stickier compound.",
		},
		{
			ID:         "track-pads-fluid",
			Name:       "Track Pads Boil Street Fluid",
			Kind:       KindMissingSupport,
			Trigger:    []types.UpgradeKey{"brake-pads-track"},
			Supporting: []types.UpgradeKey{"brake-fluid-race"},
			Recommends: []types.UpgradeKey{"brake-fluid-race", "ss-brake-lines"},
			Severity:   types.SeveritySafety,
			Message:    "Track compounds run rotor temperatures that boil street brake fluid and drop the pedal.",
		},
	}
}
