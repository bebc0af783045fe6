package relation

import "github.com/shopspring/decimal"

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// DefaultEdges returns the built-in relationship edges for the stock taxonomy
func DefaultEdges() []Edge {
	return []Edge{
		// Airflow and fueling
		{From: "intake.airflow", To: "powertrain.afr", Type: Stresses,
			Description: "More airflow leans the mixture until fueling is recalibrated",
			Threshold:   map[string]decimal.Decimal{"airflow_gain_cfm": dec(40)}},
		{From: "intake.airflow", To: "electronics.ecu_calibration", Type: Invalidates,
			Description: "A freer intake shifts the MAF transfer function the calibration assumes"},
		{From: "exhaust.flow_rate", To: "electronics.ecu_calibration", Type: Invalidates,
			Description: "Reduced backpressure changes the fueling the calibration expects"},
		{From: "exhaust.backpressure", To: "powertrain.power_output", Type: Improves,
			Description: "Lower backpressure frees top-end power"},
		{From: "exhaust.flow_rate", To: "exhaust.emissions_compliance", Type: Compromises,
			Description: "High-flow catalysts and headers risk failing emissions testing"},
		{From: "exhaust.flow_rate", To: "exhaust.sound_level", Type: Compromises,
			Description: "Freer exhaust flow raises drive-by sound output"},

		// Boost and supporting hardware
		{From: "powertrain.boost_level", To: "fueling.injector_capacity", Type: Requires,
			Description: "Added boost needs injector headroom to hold target AFR",
			Threshold:   map[string]decimal.Decimal{"boost_increase_psi": dec(4)}},
		{From: "powertrain.boost_level", To: "powertrain.internals_strength", Type: Stresses,
			Description: "Cylinder pressure rises with boost against stock internals",
			Threshold:   map[string]decimal.Decimal{"boost_psi": dec(22)}},
		{From: "powertrain.boost_level", To: "intake.charge_temp", Type: Stresses,
			Description: "Higher boost raises charge temperature through the stock intercooler"},
		{From: "electronics.boost_control", To: "electronics.ecu_calibration", Type: Requires,
			Description: "Boost targeting only works against a matching base calibration"},
		{From: "cooling.intercooler_efficiency", To: "powertrain.knock_margin", Type: Improves,
			Description: "Cooler charge air restores timing headroom"},
		{From: "cooling.intercooler_efficiency", To: "powertrain.boost_level", Type: PairsWell,
			Description: "Charge cooling lets a boost increase actually hold its target"},

		// Power downstream
		{From: "powertrain.power_output", To: "drivetrain.clutch_capacity", Type: Stresses,
			Description: "Added torque eats into clutch holding margin",
			Threshold:   map[string]decimal.Decimal{"power_gain_hp": dec(60)}},
		{From: "powertrain.power_output", To: "cooling.radiator_capacity", Type: Stresses,
			Description: "More power is more heat the cooling stack must reject"},
		{From: "powertrain.power_output", To: "brakes.thermal_capacity", Type: Stresses,
			Description: "Higher straightaway speeds demand more braking capacity"},
		{From: "powertrain.torque_output", To: "drivetrain.axle_strength", Type: Stresses,
			Description: "Shock torque loads axles and halfshafts"},
		{From: "powertrain.ignition_timing", To: "powertrain.knock_margin", Type: Compromises,
			Description: "Added advance trades away knock headroom"},
		{From: "powertrain.valvetrain_profile", To: "electronics.ecu_calibration", Type: Invalidates,
			Description: "Cam timing changes idle and VE tables wholesale"},
		{From: "fueling.ethanol_content", To: "fueling.pump_flow", Type: Requires,
			Description: "Ethanol blends need roughly 30% more fuel volume"},
		{From: "fueling.ethanol_content", To: "electronics.ecu_calibration", Type: Invalidates,
			Description: "Stoich moves with ethanol content; the calibration must follow"},
		{From: "fueling.ethanol_content", To: "powertrain.knock_margin", Type: Improves,
			Description: "Ethanol's charge cooling and octane add timing headroom"},

		// Chassis, suspension, brakes, tires
		{From: "suspension.spring_rate", To: "chassis.rigidity", Type: Stresses,
			Description: "Stiff springs feed loads into the shell the factory structure never saw",
			Threshold:   map[string]decimal.Decimal{"rate_increase_pct": dec(30)}},
		{From: "suspension.spring_rate", To: "suspension.damping", Type: Compromises,
			Description: "Rates beyond the damper's range leave the car underdamped"},
		{From: "suspension.ride_height", To: "suspension.camber", Type: Compromises,
			Description: "Lowering changes static camber past factory alignment range"},
		{From: "suspension.roll_stiffness", To: "suspension.spring_rate", Type: PairsWell,
			Description: "Sway bars control roll without running undrivable spring rates"},
		{From: "chassis.rigidity", To: "suspension.damping", Type: Improves,
			Description: "A stiffer shell lets the dampers do their job"},
		{From: "wheels.grip", To: "suspension.spring_rate", Type: Stresses,
			Description: "Sticky tires generate loads that overwhelm soft springs"},
		{From: "wheels.grip", To: "brakes.thermal_capacity", Type: Stresses,
			Description: "More grip means later, harder braking zones"},
		{From: "wheels.grip", To: "drivetrain.diff_lockup", Type: PairsWell,
			Description: "An LSD converts grip into corner-exit drive"},
		{From: "brakes.pad_friction", To: "brakes.rotor_size", Type: Stresses,
			Description: "Aggressive compounds chew undersized rotors"},
		{From: "brakes.pad_friction", To: "brakes.fluid_boiling_point", Type: Stresses,
			Description: "Track pads run temperatures that boil street fluid"},
		{From: "brakes.rotor_size", To: "wheels.unsprung_mass", Type: Compromises,
			Description: "Bigger rotors add unsprung and rotating mass"},
	}
}
