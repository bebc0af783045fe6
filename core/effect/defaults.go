package effect

import "modcheck/core/types"

// DefaultEffects returns the built-in upgrade effect map for the stock
// taxonomy. Catalog entries without a record here (cosmetic items) are
// valid upgrades with no modeled effects.
func DefaultEffects() map[types.UpgradeKey]Set {
	return map[types.UpgradeKey]Set{
		// tuning
		"ecu-tune": {
			Improves:   []types.NodeKey{"powertrain.power_output", "powertrain.torque_output"},
			Modifies:   []types.NodeKey{"electronics.ecu_calibration", "powertrain.ignition_timing", "powertrain.afr"},
			Stresses:   []types.NodeKey{"drivetrain.clutch_capacity"},
			Compromises: []types.NodeKey{"powertrain.knock_margin"},
		},
		"stage1-tune": {
			Improves:   []types.NodeKey{"powertrain.power_output", "powertrain.torque_output", "powertrain.boost_level"},
			Modifies:   []types.NodeKey{"electronics.ecu_calibration", "electronics.boost_control", "powertrain.afr"},
			Stresses:   []types.NodeKey{"drivetrain.clutch_capacity", "fueling.injector_capacity"},
			Compromises: []types.NodeKey{"powertrain.knock_margin"},
			Recommends: []types.UpgradeKey{"intake"},
		},
		"stage2-tune": {
			Improves: []types.NodeKey{"powertrain.power_output", "powertrain.torque_output", "powertrain.boost_level"},
			Modifies: []types.NodeKey{"electronics.ecu_calibration", "electronics.boost_control", "powertrain.afr",
				"powertrain.ignition_timing"},
			Stresses: []types.NodeKey{"drivetrain.clutch_capacity", "fueling.injector_capacity",
				"intake.charge_temp", "cooling.radiator_capacity"},
			Compromises: []types.NodeKey{"powertrain.knock_margin"},
			Requires:   []types.UpgradeKey{"downpipe"},
			Recommends: []types.UpgradeKey{"intake", "intercooler"},
		},
		"stage3-tune": {
			Improves: []types.NodeKey{"powertrain.power_output", "powertrain.torque_output", "powertrain.boost_level"},
			Modifies: []types.NodeKey{"electronics.ecu_calibration", "electronics.boost_control", "powertrain.afr",
				"powertrain.ignition_timing", "electronics.launch_control"},
			Stresses: []types.NodeKey{"drivetrain.clutch_capacity", "powertrain.internals_strength",
				"fueling.injector_capacity", "fueling.pump_flow", "cooling.radiator_capacity",
				"drivetrain.axle_strength"},
			Compromises: []types.NodeKey{"powertrain.knock_margin"},
			Requires:   []types.UpgradeKey{"downpipe", "intercooler", "fuel-injectors"},
			Recommends: []types.UpgradeKey{"clutch-performance", "fuel-pump"},
		},
		"piggyback-tuner": {
			Improves: []types.NodeKey{"powertrain.power_output", "powertrain.boost_level"},
			Modifies: []types.NodeKey{"electronics.boost_control"},
			Stresses: []types.NodeKey{"fueling.injector_capacity"},
			Compromises: []types.NodeKey{"powertrain.knock_margin"},
		},

		// engine
		"big-turbo": {
			Improves: []types.NodeKey{"powertrain.boost_level", "powertrain.power_output", "powertrain.torque_output"},
			Stresses: []types.NodeKey{"powertrain.internals_strength", "fueling.injector_capacity",
				"fueling.pump_flow", "drivetrain.clutch_capacity", "intake.charge_temp"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Requires:    []types.UpgradeKey{"intercooler", "fuel-injectors"},
			Recommends:  []types.UpgradeKey{"fuel-pump", "clutch-performance", "forged-internals"},
		},
		"supercharger-kit": {
			Improves: []types.NodeKey{"powertrain.power_output", "powertrain.torque_output"},
			Stresses: []types.NodeKey{"powertrain.internals_strength", "fueling.injector_capacity",
				"cooling.radiator_capacity", "drivetrain.clutch_capacity"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Requires:    []types.UpgradeKey{"fuel-injectors"},
			Recommends:  []types.UpgradeKey{"radiator-performance", "clutch-performance"},
		},
		"camshaft-street": {
			Improves:    []types.NodeKey{"powertrain.power_output"},
			Modifies:    []types.NodeKey{"powertrain.valvetrain_profile"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Recommends:  []types.UpgradeKey{"ecu-tune"},
		},
		"camshaft-race": {
			Improves:    []types.NodeKey{"powertrain.power_output"},
			Modifies:    []types.NodeKey{"powertrain.valvetrain_profile"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Compromises: []types.NodeKey{"exhaust.emissions_compliance"},
			Recommends:  []types.UpgradeKey{"ecu-tune", "fuel-injectors"},
		},
		"forged-internals": {
			Improves: []types.NodeKey{"powertrain.internals_strength"},
			Modifies: []types.NodeKey{"powertrain.torque_output"},
		},

		// fueling
		"fuel-injectors": {
			Improves:    []types.NodeKey{"fueling.injector_capacity"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
		},
		"fuel-pump": {
			Improves: []types.NodeKey{"fueling.pump_flow", "fueling.fuel_pressure"},
		},
		"e85-conversion": {
			Improves:    []types.NodeKey{"powertrain.knock_margin"},
			Modifies:    []types.NodeKey{"fueling.ethanol_content"},
			Stresses:    []types.NodeKey{"fueling.pump_flow", "fueling.injector_capacity"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Requires:    []types.UpgradeKey{"fuel-pump"},
			Recommends:  []types.UpgradeKey{"fuel-injectors"},
		},

		// intake
		"intake": {
			Improves:    []types.NodeKey{"intake.airflow"},
			Modifies:    []types.NodeKey{"intake.filtration"},
			Stresses:    []types.NodeKey{"powertrain.afr"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Recommends:  []types.UpgradeKey{"ecu-tune"},
		},

		// exhaust
		"headers": {
			Improves:    []types.NodeKey{"exhaust.flow_rate", "powertrain.power_output"},
			Stresses:    []types.NodeKey{"powertrain.afr"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Compromises: []types.NodeKey{"exhaust.emissions_compliance"},
			Recommends:  []types.UpgradeKey{"ecu-tune", "cat-back-exhaust"},
		},
		"downpipe": {
			Improves:    []types.NodeKey{"exhaust.flow_rate"},
			Stresses:    []types.NodeKey{"powertrain.afr"},
			Invalidates: []types.NodeKey{"electronics.ecu_calibration"},
			Compromises: []types.NodeKey{"exhaust.emissions_compliance", "exhaust.sound_level"},
			Recommends:  []types.UpgradeKey{"stage2-tune"},
		},
		"cat-back-exhaust": {
			Improves:    []types.NodeKey{"exhaust.flow_rate", "exhaust.backpressure"},
			Compromises: []types.NodeKey{"exhaust.sound_level"},
		},
		"axle-back-exhaust": {
			Modifies:    []types.NodeKey{"exhaust.backpressure"},
			Compromises: []types.NodeKey{"exhaust.sound_level"},
		},

		// cooling
		"intercooler": {
			Improves: []types.NodeKey{"cooling.intercooler_efficiency", "powertrain.knock_margin"},
			Modifies: []types.NodeKey{"intake.charge_temp"},
		},
		"radiator-performance": {
			Improves: []types.NodeKey{"cooling.radiator_capacity"},
		},
		"oil-cooler": {
			Improves: []types.NodeKey{"cooling.oil_temp"},
		},

		// drivetrain
		"clutch-performance": {
			Improves: []types.NodeKey{"drivetrain.clutch_capacity"},
			Stresses: []types.NodeKey{"drivetrain.axle_strength"},
		},
		"limited-slip-diff": {
			Improves: []types.NodeKey{"drivetrain.diff_lockup"},
			Stresses: []types.NodeKey{"drivetrain.axle_strength"},
		},

		// suspension
		"coilovers-street": {
			Improves: []types.NodeKey{"suspension.damping", "suspension.roll_stiffness"},
			Modifies: []types.NodeKey{"suspension.spring_rate", "suspension.ride_height"},
		},
		"coilovers-track": {
			Improves:    []types.NodeKey{"suspension.damping", "suspension.roll_stiffness", "suspension.camber"},
			Modifies:    []types.NodeKey{"suspension.spring_rate", "suspension.ride_height"},
			Stresses:    []types.NodeKey{"chassis.rigidity"},
			Recommends:  []types.UpgradeKey{"sway-bars", "chassis-bracing"},
		},
		"lowering-springs": {
			Modifies:    []types.NodeKey{"suspension.spring_rate", "suspension.ride_height"},
			Compromises: []types.NodeKey{"suspension.damping", "suspension.camber"},
		},
		"sway-bars": {
			Improves: []types.NodeKey{"suspension.roll_stiffness"},
			Stresses: []types.NodeKey{"chassis.rigidity"},
		},
		"chassis-bracing": {
			Improves: []types.NodeKey{"chassis.rigidity"},
			Modifies: []types.NodeKey{"chassis.weight"},
		},

		// brakes
		"big-brake-kit": {
			Improves:   []types.NodeKey{"brakes.thermal_capacity", "brakes.rotor_size"},
			Stresses:   []types.NodeKey{"wheels.unsprung_mass"},
			Recommends: []types.UpgradeKey{"ss-brake-lines", "brake-fluid-race"},
		},
		"brake-pads-street": {
			Modifies: []types.NodeKey{"brakes.pad_friction"},
		},
		"brake-pads-track": {
			Improves:    []types.NodeKey{"brakes.pad_friction", "brakes.thermal_capacity"},
			Stresses:    []types.NodeKey{"brakes.rotor_size", "brakes.fluid_boiling_point"},
			Recommends:  []types.UpgradeKey{"brake-fluid-race"},
		},
		"ss-brake-lines": {
			Improves: []types.NodeKey{"brakes.pedal_feel"},
		},
		"brake-fluid-race": {
			Improves: []types.NodeKey{"brakes.fluid_boiling_point"},
		},

		// wheels
		"wheels-lightweight": {
			Improves: []types.NodeKey{"wheels.unsprung_mass"},
			Modifies: []types.NodeKey{"chassis.weight"},
		},
		"tires-performance": {
			Improves: []types.NodeKey{"wheels.grip"},
			Stresses: []types.NodeKey{"suspension.spring_rate", "brakes.thermal_capacity"},
		},
	}
}
