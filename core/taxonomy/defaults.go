package taxonomy

// Built-in taxonomy covering the stock modeled platform. Loaded like any
// other taxonomy; nothing in the engine is special-cased to these keys.

// Engine archetypes used by ApplicableEngines restrictions.
const (
	EngineNAI4    = "na_i4"
	EngineTurboI4 = "turbo_i4"
	EngineTurboI6 = "turbo_i6"
	EngineNAV8    = "na_v8"
)

var forcedInductionEngines = []string{EngineTurboI4, EngineTurboI6}

// DefaultSystems returns the built-in system definitions
func DefaultSystems() []System {
	return []System{
		{Key: "powertrain", Name: "Powertrain", Description: "Engine output, calibration margins and rotating assembly"},
		{Key: "fueling", Name: "Fuel System", Description: "Fuel delivery capacity and mixture"},
		{Key: "intake", Name: "Air Intake", Description: "Airflow into the engine"},
		{Key: "exhaust", Name: "Exhaust", Description: "Exhaust flow, emissions and sound"},
		{Key: "cooling", Name: "Cooling", Description: "Heat rejection for coolant, oil and charge air"},
		{Key: "drivetrain", Name: "Drivetrain", Description: "Torque path from flywheel to axles"},
		{Key: "suspension", Name: "Suspension", Description: "Springs, dampers and geometry"},
		{Key: "brakes", Name: "Brakes", Description: "Stopping power and fade resistance"},
		{Key: "chassis", Name: "Chassis", Description: "Structural rigidity and mass"},
		{Key: "wheels", Name: "Wheels & Tires", Description: "Contact patch and unsprung mass"},
		{Key: "electronics", Name: "Electronics", Description: "ECU calibration and control systems"},
	}
}

// DefaultNodes returns the built-in node definitions
func DefaultNodes() []Node {
	return []Node{
		// powertrain
		{Key: "powertrain.boost_level", System: "powertrain", Name: "Boost Level", Unit: "psi",
			Description: "Peak manifold boost pressure", ApplicableEngines: forcedInductionEngines},
		{Key: "powertrain.power_output", System: "powertrain", Name: "Power Output", Unit: "hp",
			Description: "Peak crank horsepower"},
		{Key: "powertrain.torque_output", System: "powertrain", Name: "Torque Output", Unit: "lb-ft",
			Description: "Peak crank torque"},
		{Key: "powertrain.afr", System: "powertrain", Name: "Air/Fuel Ratio", Unit: "ratio",
			Description: "Commanded mixture under load"},
		{Key: "powertrain.ignition_timing", System: "powertrain", Name: "Ignition Timing", Unit: "deg",
			Description: "Spark advance at peak load"},
		{Key: "powertrain.knock_margin", System: "powertrain", Name: "Knock Margin", Unit: "deg",
			Description: "Headroom before knock retard intervenes"},
		{Key: "powertrain.internals_strength", System: "powertrain", Name: "Internals Strength", Unit: "rating",
			Description: "Torque capacity of pistons, rods and bearings"},
		{Key: "powertrain.valvetrain_profile", System: "powertrain", Name: "Valvetrain Profile",
			Description: "Camshaft lift and duration characteristics"},

		// fueling
		{Key: "fueling.injector_capacity", System: "fueling", Name: "Injector Capacity", Unit: "cc/min",
			Description: "Maximum injector flow at base pressure"},
		{Key: "fueling.pump_flow", System: "fueling", Name: "Fuel Pump Flow", Unit: "lph",
			Description: "In-tank pump delivery volume"},
		{Key: "fueling.fuel_pressure", System: "fueling", Name: "Fuel Pressure", Unit: "psi",
			Description: "Rail pressure under load"},
		{Key: "fueling.ethanol_content", System: "fueling", Name: "Ethanol Content", Unit: "%",
			Description: "Blended ethanol percentage the calibration expects"},

		// intake
		{Key: "intake.airflow", System: "intake", Name: "Intake Airflow", Unit: "cfm",
			Description: "Volume of air the intake tract can deliver"},
		{Key: "intake.filtration", System: "intake", Name: "Filtration", Unit: "rating",
			Description: "Particulate filtering effectiveness"},
		{Key: "intake.charge_temp", System: "intake", Name: "Charge Temperature", Unit: "C",
			Description: "Post-intercooler intake air temperature", ApplicableEngines: forcedInductionEngines},

		// exhaust
		{Key: "exhaust.flow_rate", System: "exhaust", Name: "Exhaust Flow", Unit: "cfm",
			Description: "Exhaust volume the system can evacuate"},
		{Key: "exhaust.backpressure", System: "exhaust", Name: "Backpressure", Unit: "psi",
			Description: "Restriction upstream of the tailpipe"},
		{Key: "exhaust.emissions_compliance", System: "exhaust", Name: "Emissions Compliance", Unit: "rating",
			Description: "Ability to pass applicable emissions testing"},
		{Key: "exhaust.sound_level", System: "exhaust", Name: "Sound Level", Unit: "dB",
			Description: "Drive-by sound output"},

		// cooling
		{Key: "cooling.radiator_capacity", System: "cooling", Name: "Radiator Capacity", Unit: "rating",
			Description: "Coolant heat rejection headroom"},
		{Key: "cooling.oil_temp", System: "cooling", Name: "Oil Temperature", Unit: "C",
			Description: "Sustained oil temperature under track load"},
		{Key: "cooling.intercooler_efficiency", System: "cooling", Name: "Intercooler Efficiency", Unit: "rating",
			Description: "Charge-air heat rejection effectiveness", ApplicableEngines: forcedInductionEngines},

		// drivetrain
		{Key: "drivetrain.clutch_capacity", System: "drivetrain", Name: "Clutch Torque Capacity", Unit: "lb-ft",
			Description: "Torque the clutch holds before slipping"},
		{Key: "drivetrain.gear_ratios", System: "drivetrain", Name: "Gear Ratios", Unit: "ratio",
			Description: "Transmission and final drive ratio spread"},
		{Key: "drivetrain.diff_lockup", System: "drivetrain", Name: "Differential Lockup", Unit: "rating",
			Description: "Ability to drive both wheels under power"},
		{Key: "drivetrain.axle_strength", System: "drivetrain", Name: "Axle Strength", Unit: "rating",
			Description: "Shock-load capacity of axles and halfshafts"},

		// suspension
		{Key: "suspension.spring_rate", System: "suspension", Name: "Spring Rate", Unit: "lb/in",
			Description: "Wheel rate of the installed springs"},
		{Key: "suspension.damping", System: "suspension", Name: "Damping", Unit: "rating",
			Description: "Damper control over spring motion"},
		{Key: "suspension.ride_height", System: "suspension", Name: "Ride Height", Unit: "mm",
			Description: "Static chassis height"},
		{Key: "suspension.camber", System: "suspension", Name: "Camber", Unit: "deg",
			Description: "Static negative camber available"},
		{Key: "suspension.roll_stiffness", System: "suspension", Name: "Roll Stiffness", Unit: "rating",
			Description: "Resistance to body roll in corners"},

		// brakes
		{Key: "brakes.thermal_capacity", System: "brakes", Name: "Thermal Capacity", Unit: "rating",
			Description: "Heat the brakes absorb before fading"},
		{Key: "brakes.pad_friction", System: "brakes", Name: "Pad Friction", Unit: "mu",
			Description: "Pad friction coefficient in its temperature window"},
		{Key: "brakes.rotor_size", System: "brakes", Name: "Rotor Size", Unit: "mm",
			Description: "Rotor diameter and mass"},
		{Key: "brakes.fluid_boiling_point", System: "brakes", Name: "Fluid Boiling Point", Unit: "C",
			Description: "Dry boiling point of the brake fluid"},
		{Key: "brakes.pedal_feel", System: "brakes", Name: "Pedal Feel", Unit: "rating",
			Description: "Pedal firmness and modulation"},

		// chassis
		{Key: "chassis.rigidity", System: "chassis", Name: "Chassis Rigidity", Unit: "rating",
			Description: "Torsional stiffness of the body structure"},
		{Key: "chassis.weight", System: "chassis", Name: "Curb Weight", Unit: "kg",
			Description: "Total vehicle mass"},

		// wheels
		{Key: "wheels.grip", System: "wheels", Name: "Mechanical Grip", Unit: "mu",
			Description: "Peak lateral grip of the tire compound"},
		{Key: "wheels.unsprung_mass", System: "wheels", Name: "Unsprung Mass", Unit: "kg",
			Description: "Mass of wheels, tires and hubs"},

		// electronics
		{Key: "electronics.ecu_calibration", System: "electronics", Name: "ECU Calibration",
			Description: "Fueling, timing and boost tables in the ECU"},
		{Key: "electronics.boost_control", System: "electronics", Name: "Boost Control", Unit: "psi",
			Description: "Closed-loop boost targeting", ApplicableEngines: forcedInductionEngines},
		{Key: "electronics.launch_control", System: "electronics", Name: "Launch Control", Unit: "rpm",
			Description: "Launch RPM and torque management"},
	}
}

// Default returns the built-in taxonomy store.
// It panics only if the built-in data is itself invalid, which the
// package tests guard against.
func Default() *Store {
	s, err := NewStore(DefaultSystems(), DefaultNodes())
	if err != nil {
		panic("taxonomy: built-in data invalid: " + err.Error())
	}
	return s
}
