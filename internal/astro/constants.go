package astro

const (
	// G is the gravitational constant in m³/(kg·s²).
	G = 6.67430e-11

	// SpeedOfLight in m/s.
	SpeedOfLight = 2.99792458e8

	// SolarMassKg converts solar masses to kilograms.
	SolarMassKg = 1.989e30

	// NeutronStarRadiusKm is the nominal neutron-star radius used for
	// every neutron star regardless of mass.
	NeutronStarRadiusKm = 12.0

	// ReferenceBodyLengthM is the length of the test body (an astronaut,
	// head to toe) that tidal forces are quoted for.
	ReferenceBodyLengthM = 1.8

	// ReferenceBodyMassKg is the test-body mass used by the breakup
	// distance approximation.
	ReferenceBodyMassKg = 1.8

	metersPerKm = 1000.0
)
