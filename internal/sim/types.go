package sim

import (
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/deform"
)

// Frame is one tick of a demonstration run: where the body was, what
// the field looked like, and what the deformation engine commanded.
type Frame struct {
	Time       float64
	DistanceKm float64
	Sample     astro.Sample
	Command    deform.Command
	Stretch    float64
	Active     bool
}

// Observer sees every frame as it is produced.
type Observer interface {
	OnFrame(f Frame)
}

// Metric folds a run's frames into one summary number.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Action names a deformation engine transition a script can request.
type Action string

const (
	ActionTrigger Action = "trigger"
	ActionStop    Action = "stop"
	ActionReset   Action = "reset"
)

// Cue schedules one action at a run time in seconds.
type Cue struct {
	At float64 `yaml:"at"`
	Do Action  `yaml:"do"`
}

// Script is the caller-side timing of a demonstration: the engine owns
// no timers, so windows are expressed as trigger/stop cue pairs.
type Script []Cue

// DefaultWindowSeconds is the standard stretch demonstration window.
const DefaultWindowSeconds = 3.0

// DefaultScript triggers at the start of the run and ends the window
// after [DefaultWindowSeconds].
func DefaultScript() Script {
	return Script{
		{At: 0, Do: ActionTrigger},
		{At: DefaultWindowSeconds, Do: ActionStop},
	}
}

type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{
		Dt:       0.01,
		Duration: 10.0,
	}
}

type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int
}
