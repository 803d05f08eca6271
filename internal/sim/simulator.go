package sim

import (
	"context"
	"fmt"
	"sort"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/approach"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/deform"
)

// Simulator drives one (object, profile, engine) trio through a
// scripted demonstration run. Profiles and engines carry state, so a
// Simulator is good for a single Run; build a fresh one per run.
type Simulator struct {
	object    astro.Object
	profile   approach.Profile
	engine    *deform.Engine
	script    Script
	metrics   []Metric
	observers []Observer
}

// New assembles a simulator. A nil engine gets a fresh one; a nil
// script means no cues fire and the engine stays idle for the whole
// run.
func New(obj astro.Object, profile approach.Profile, engine *deform.Engine, script Script) *Simulator {
	if engine == nil {
		engine = deform.NewEngine()
	}

	ordered := make(Script, len(script))
	copy(ordered, script)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].At < ordered[j].At })

	return &Simulator{
		object:    obj,
		profile:   profile,
		engine:    engine,
		script:    ordered,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Object returns the massive object this run orbits.
func (s *Simulator) Object() astro.Object { return s.object }

// Run executes the demonstration, one fixed step per frame. Each tick
// fires due script cues, advances the approach profile, samples the
// tidal field, and advances the deformation engine.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([]Frame, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	cue := 0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt

		for cue < len(s.script) && s.script[cue].At <= t {
			s.apply(s.script[cue].Do)
			cue++
		}

		distance := s.profile.Advance(cfg.Dt)
		sample, err := astro.NewSample(s.object, distance)
		if err != nil {
			return result, fmt.Errorf("step %d (t=%.4f): %w", i, t, err)
		}

		cmd := s.engine.Advance(cfg.Dt, sample)

		frame := Frame{
			Time:       t,
			DistanceKm: distance,
			Sample:     sample,
			Command:    cmd,
			Stretch:    s.engine.Stretch(),
			Active:     s.engine.Active(),
		}

		for _, m := range s.metrics {
			m.Observe(frame)
		}
		for _, obs := range s.observers {
			obs.OnFrame(frame)
		}

		result.Frames = append(result.Frames, frame)
		result.StepsTaken++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) apply(a Action) {
	switch a {
	case ActionTrigger:
		s.engine.Trigger()
	case ActionStop:
		s.engine.Stop()
	case ActionReset:
		s.engine.Reset()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	for _, c := range s.script {
		if c.At < 0 {
			return fmt.Errorf("script cue at %f: time must be non-negative", c.At)
		}
		switch c.Do {
		case ActionTrigger, ActionStop, ActionReset:
		default:
			return fmt.Errorf("script cue at %f: unknown action %q", c.At, c.Do)
		}
	}
	return nil
}
