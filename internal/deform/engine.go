package deform

import (
	"math"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
)

// Stretch tuning. The visual ramp takes 1/RampPerSecond seconds to
// saturate; the scale coefficients shape how violent full stretch looks.
const (
	RampPerSecond       = 0.3
	lateralShrink       = 0.5
	longitudinalStretch = 10.0
	driftSpeed          = 10.0
)

// Vec3 is a plain xyz triple in scene units.
type Vec3 struct {
	X, Y, Z float64
}

// Command is one frame's worth of instructions for whatever renders the
// test body: a per-axis scale and a drift velocity in scene units/s.
type Command struct {
	Scale    Vec3
	Velocity Vec3
}

// Identity is the command for an undisturbed body.
func Identity() Command {
	return Command{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// Engine deforms one test body. Not safe for concurrent use; each body
// gets its own Engine, and independent engines may be advanced from
// separate goroutines.
type Engine struct {
	active     bool
	stretch    float64
	lastSample astro.Sample
}

func NewEngine() *Engine {
	return &Engine{}
}

// Trigger starts the stretch. Calling it again while already
// stretching changes nothing.
func (e *Engine) Trigger() {
	e.active = true
}

// Stop ends the demonstration window, freezing the stretch factor
// where it stands. A later Trigger resumes from the frozen value.
func (e *Engine) Stop() {
	e.active = false
}

// Reset returns the engine to idle with the stretch factor cleared.
func (e *Engine) Reset() {
	e.active = false
	e.stretch = 0
}

// Active reports whether the body is currently stretching.
func (e *Engine) Active() bool {
	return e.active
}

// Stretch returns the current stretch factor in [0, 1].
func (e *Engine) Stretch() float64 {
	return e.stretch
}

// LastSample returns the most recent tidal reading handed to Advance.
func (e *Engine) LastSample() astro.Sample {
	return e.lastSample
}

// Advance moves the engine forward by deltaSeconds and returns the
// transform command for this frame. Negative deltas are treated as
// zero. The sample is retained for display; the ramp ignores it.
//
// An idle engine always returns the identity command, even when a
// frozen stretch factor is still held from an earlier window.
func (e *Engine) Advance(deltaSeconds float64, sample astro.Sample) Command {
	if deltaSeconds < 0 {
		deltaSeconds = 0
	}
	e.lastSample = sample

	if !e.active {
		return Identity()
	}

	e.stretch = math.Min(1, e.stretch+RampPerSecond*deltaSeconds)
	s := e.stretch
	return Command{
		Scale:    Vec3{X: 1 - lateralShrink*s, Y: 1 + longitudinalStretch*s, Z: 1 - lateralShrink*s},
		Velocity: Vec3{Z: -driftSpeed},
	}
}
