package catalog

// Default returns the built-in upgrade catalog
func Default() *Catalog {
	c := New()
	for _, e := range defaultEntries() {
		c.Register(e)
	}
	return c
}

func defaultEntries() []Entry {
	return []Entry{
		// tuning
		{Key: "ecu-tune", Name: "ECU Flash Tune", Category: CategoryTuning, Tier: TierStreet,
			Description: "Base flash calibration for stock or lightly modified hardware"},
		{Key: "stage1-tune", Name: "Stage 1 Tune", Category: CategoryTuning, Tier: TierStreet,
			Description: "Calibration for bolt-on intake hardware"},
		{Key: "stage2-tune", Name: "Stage 2 Tune", Category: CategoryTuning, Tier: TierSport,
			Description: "Calibration assuming intake and downpipe"},
		{Key: "stage3-tune", Name: "Stage 3 Tune", Category: CategoryTuning, Tier: TierTrack,
			Description: "Aggressive calibration assuming full supporting hardware"},
		{Key: "piggyback-tuner", Name: "Piggyback Tuner", Category: CategoryTuning, Tier: TierStreet,
			Description: "Inline signal controller; cannot coexist with a flash tune"},

		// engine
		{Key: "big-turbo", Name: "Big Turbo Kit", Category: CategoryEngine, Tier: TierTrack,
			Description: "Larger turbocharger and manifold"},
		{Key: "supercharger-kit", Name: "Supercharger Kit", Category: CategoryEngine, Tier: TierTrack,
			Description: "Positive-displacement supercharger conversion"},
		{Key: "camshaft-street", Name: "Street Camshafts", Category: CategoryEngine, Tier: TierSport,
			Description: "Mild cam profile keeping idle quality"},
		{Key: "camshaft-race", Name: "Race Camshafts", Category: CategoryEngine, Tier: TierRace,
			Description: "High-lift, long-duration cam profile"},
		{Key: "forged-internals", Name: "Forged Internals", Category: CategoryEngine, Tier: TierRace,
			Description: "Forged pistons and rods for high cylinder pressure"},

		// fueling
		{Key: "fuel-injectors", Name: "High-Flow Injectors", Category: CategoryFueling, Tier: TierSport,
			Description: "Larger injectors for added fueling headroom"},
		{Key: "fuel-pump", Name: "Uprated Fuel Pump", Category: CategoryFueling, Tier: TierSport,
			Description: "Higher-volume in-tank pump"},
		{Key: "e85-conversion", Name: "E85 Conversion", Category: CategoryFueling, Tier: TierTrack,
			Description: "Flex-fuel hardware and sensors for ethanol blends"},

		// intake
		{Key: "intake", Name: "Cold Air Intake", Category: CategoryIntake, Tier: TierStreet,
			Description: "High-flow intake tract and filter"},

		// exhaust
		{Key: "headers", Name: "Performance Headers", Category: CategoryExhaust, Tier: TierSport,
			Description: "Long-tube exhaust manifolds"},
		{Key: "downpipe", Name: "High-Flow Downpipe", Category: CategoryExhaust, Tier: TierSport,
			Description: "Larger downpipe with high-flow catalyst"},
		{Key: "cat-back-exhaust", Name: "Cat-Back Exhaust", Category: CategoryExhaust, Tier: TierStreet,
			Description: "Full exhaust from catalyst back"},
		{Key: "axle-back-exhaust", Name: "Axle-Back Exhaust", Category: CategoryExhaust, Tier: TierStreet,
			Description: "Rear muffler section only"},

		// cooling
		{Key: "intercooler", Name: "Front-Mount Intercooler", Category: CategoryCooling, Tier: TierSport,
			Description: "Larger intercooler core and piping"},
		{Key: "radiator-performance", Name: "Performance Radiator", Category: CategoryCooling, Tier: TierSport,
			Description: "Thicker core for sustained track load"},
		{Key: "oil-cooler", Name: "Oil Cooler", Category: CategoryCooling, Tier: TierTrack,
			Description: "Thermostatic oil cooler circuit"},

		// drivetrain
		{Key: "clutch-performance", Name: "Performance Clutch", Category: CategoryDrivetrain, Tier: TierSport,
			Description: "Higher clamp-load clutch and flywheel"},
		{Key: "limited-slip-diff", Name: "Limited-Slip Differential", Category: CategoryDrivetrain, Tier: TierSport,
			Description: "Mechanical LSD"},

		// suspension
		{Key: "coilovers-street", Name: "Street Coilovers", Category: CategorySuspension, Tier: TierSport,
			Description: "Adjustable coilovers with street-friendly rates"},
		{Key: "coilovers-track", Name: "Track Coilovers", Category: CategorySuspension, Tier: TierTrack,
			Description: "High-rate coilovers for circuit use"},
		{Key: "lowering-springs", Name: "Lowering Springs", Category: CategorySuspension, Tier: TierStreet,
			Description: "Shorter springs on factory dampers"},
		{Key: "sway-bars", Name: "Adjustable Sway Bars", Category: CategorySuspension, Tier: TierSport,
			Description: "Stiffer anti-roll bars front and rear"},
		{Key: "chassis-bracing", Name: "Chassis Bracing", Category: CategorySuspension, Tier: TierSport,
			Description: "Strut tower and underbody braces"},

		// brakes
		{Key: "big-brake-kit", Name: "Big Brake Kit", Category: CategoryBrakes, Tier: TierTrack,
			Description: "Larger rotors and multi-piston calipers"},
		{Key: "brake-pads-street", Name: "Street Brake Pads", Category: CategoryBrakes, Tier: TierStreet,
			Description: "Low-dust street compound"},
		{Key: "brake-pads-track", Name: "Track Brake Pads", Category: CategoryBrakes, Tier: TierTrack,
			Description: "High-temperature track compound"},
		{Key: "ss-brake-lines", Name: "Stainless Brake Lines", Category: CategoryBrakes, Tier: TierSport,
			Description: "Braided lines for firmer pedal"},
		{Key: "brake-fluid-race", Name: "Racing Brake Fluid", Category: CategoryBrakes, Tier: TierTrack,
			Description: "High dry-boiling-point fluid"},

		// wheels
		{Key: "wheels-lightweight", Name: "Lightweight Wheels", Category: CategoryWheels, Tier: TierSport,
			Description: "Flow-formed wheels cutting unsprung mass"},
		{Key: "tires-performance", Name: "Performance Tires", Category: CategoryWheels, Tier: TierSport,
			Description: "200-treadwear summer compound"},

		// exterior
		{Key: "carbon-spoiler", Name: "Carbon Spoiler", Category: CategoryExterior, Tier: TierStreet,
			Description: "Cosmetic rear spoiler; no modeled effects"},
	}
}
