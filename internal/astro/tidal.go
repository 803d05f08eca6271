package astro

import (
	"fmt"
	"math"
)

// SchwarzschildRadiusKm returns the event horizon radius in km for a
// mass given in solar masses.
//
//	r_s = 2GM/c²
func SchwarzschildRadiusKm(massSolar float64) (float64, error) {
	if massSolar <= 0 {
		return 0, fmt.Errorf("%w: mass %g M☉, must be > 0", ErrInvalidArgument, massSolar)
	}
	massKg := massSolar * SolarMassKg
	radiusM := 2 * G * massKg / (SpeedOfLight * SpeedOfLight)
	return radiusM / metersPerKm, nil
}

// SurfaceGravity returns the Newtonian gravitational acceleration in
// m/s² at radiusKm from the centre of a mass given in solar masses.
// A radius of exactly zero yields +Inf, not an error: the caller is
// expected to render it as a divergence, and math.IsInf makes the
// sentinel easy to detect.
func SurfaceGravity(massSolar, radiusKm float64) (float64, error) {
	if massSolar <= 0 {
		return 0, fmt.Errorf("%w: mass %g M☉, must be > 0", ErrInvalidArgument, massSolar)
	}
	if radiusKm < 0 {
		return 0, fmt.Errorf("%w: radius %g km, must be >= 0", ErrInvalidArgument, radiusKm)
	}
	if radiusKm == 0 {
		return math.Inf(1), nil
	}
	radiusM := radiusKm * metersPerKm
	return G * massSolar * SolarMassKg / (radiusM * radiusM), nil
}

// TidalForce returns the differential acceleration in m/s² across a
// reference body of length [ReferenceBodyLengthM] at distanceKm from a
// mass given in solar masses.
//
//	Δa = 2GM·L/d³
func TidalForce(massSolar, distanceKm float64) (float64, error) {
	return TidalForceRef(massSolar, distanceKm, ReferenceBodyLengthM)
}

// TidalForceRef is TidalForce with an explicit body length in metres.
func TidalForceRef(massSolar, distanceKm, bodyLengthM float64) (float64, error) {
	if massSolar <= 0 {
		return 0, fmt.Errorf("%w: mass %g M☉, must be > 0", ErrInvalidArgument, massSolar)
	}
	if distanceKm <= 0 {
		return 0, fmt.Errorf("%w: distance %g km, must be > 0", ErrInvalidArgument, distanceKm)
	}
	if bodyLengthM <= 0 {
		return 0, fmt.Errorf("%w: body length %g m, must be > 0", ErrInvalidArgument, bodyLengthM)
	}
	distanceM := distanceKm * metersPerKm
	return 2 * G * massSolar * SolarMassKg * bodyLengthM / (distanceM * distanceM * distanceM), nil
}

// BreakupDistanceKm returns the distance in km at which tidal stress
// across a reference body of mass [ReferenceBodyMassKg] overwhelms its
// cohesion, for a central mass given in solar masses.
func BreakupDistanceKm(massSolar float64) (float64, error) {
	return BreakupDistanceRef(massSolar, ReferenceBodyMassKg)
}

// BreakupDistanceRef is BreakupDistanceKm with an explicit body mass
// in kg.
func BreakupDistanceRef(massSolar, bodyMassKg float64) (float64, error) {
	if massSolar <= 0 {
		return 0, fmt.Errorf("%w: mass %g M☉, must be > 0", ErrInvalidArgument, massSolar)
	}
	if bodyMassKg <= 0 {
		return 0, fmt.Errorf("%w: body mass %g kg, must be > 0", ErrInvalidArgument, bodyMassKg)
	}
	return math.Cbrt(2 * massSolar * SolarMassKg * bodyMassKg / metersPerKm), nil
}

// Sample bundles the derived quantities at one standoff distance from
// an object. Values are computed once at construction.
type Sample struct {
	DistanceKm        float64
	SurfaceGravity    float64
	TidalForce        float64
	BreakupDistanceKm float64
}

// NewSample evaluates the derived quantities for obj at distanceKm.
func NewSample(obj Object, distanceKm float64) (Sample, error) {
	grav, err := SurfaceGravity(obj.MassSolar, obj.RadiusKm)
	if err != nil {
		return Sample{}, err
	}
	tidal, err := TidalForce(obj.MassSolar, distanceKm)
	if err != nil {
		return Sample{}, err
	}
	breakup, err := BreakupDistanceKm(obj.MassSolar)
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		DistanceKm:        distanceKm,
		SurfaceGravity:    grav,
		TidalForce:        tidal,
		BreakupDistanceKm: breakup,
	}, nil
}
