package approach

import (
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/integrate"
)

// Freefall drops the body radially from rest (or an initial inward
// speed) under Newtonian gravity, integrating r̈ = -GM/r² until the
// floor is reached. Exported fields may be adjusted between
// construction and the first Advance call.
type Freefall struct {
	StartKm    float64
	MassSolar  float64
	FloorKm    float64
	InwardKmS  float64
	Integrator integrate.Integrator

	state  integrate.State
	t      float64
	pinned bool
}

func NewFreefall(startKm, massSolar float64) *Freefall {
	return &Freefall{
		StartKm:    startKm,
		MassSolar:  massSolar,
		FloorKm:    defaultFloorKm,
		Integrator: integrate.NewRK4(),
	}
}

// radialGravity is the one-dimensional infall system in SI units,
// state laid out as {radius m, radial velocity m/s}.
type radialGravity struct {
	mu float64
}

func (g radialGravity) Derive(x integrate.State, t float64) integrate.State {
	r := x[0]
	if r < 1 {
		r = 1
	}
	return integrate.State{x[1], -g.mu / (r * r)}
}

func (f *Freefall) Advance(dt float64) float64 {
	if f.state == nil {
		f.state = integrate.State{f.StartKm * 1000, -f.InwardKmS * 1000}
	}
	if f.pinned {
		return f.FloorKm
	}

	sys := radialGravity{mu: astro.G * f.MassSolar * astro.SolarMassKg}
	f.state = f.Integrator.Step(sys, f.state, f.t, dt)
	f.t += dt

	floorM := f.FloorKm * 1000
	if f.state[0] <= floorM {
		f.state[0] = floorM
		f.state[1] = 0
		f.pinned = true
	}

	return f.state[0] / 1000
}

func (f *Freefall) Done() bool { return f.pinned }

// SpeedKmS reports the current inward speed in km/s.
func (f *Freefall) SpeedKmS() float64 {
	if f.state == nil || f.pinned {
		return 0
	}
	return -f.state[1] / 1000
}
