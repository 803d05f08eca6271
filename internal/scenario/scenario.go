// Package scenario assembles runnable demonstrations from config: it
// resolves names through the [Registry], builds the object, profile,
// and engine, and wires the standard metrics.
package scenario

import (
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/config"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/deform"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"
)

// Build validates cfg and assembles a ready-to-run simulator. An empty
// config script gets the default trigger/stop window.
func Build(cfg *config.Config) (*sim.Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}
	obj, err := astro.Properties(kind, cfg.MassSolar)
	if err != nil {
		return nil, err
	}

	reg := NewRegistry()

	integ, err := reg.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	profile, err := reg.GetProfile(cfg.Profile, cfg, obj, integ)
	if err != nil {
		return nil, err
	}

	s := sim.New(obj, profile, deform.NewEngine(), toScript(cfg.Script))
	for _, m := range DefaultMetrics(obj) {
		s.AddMetric(m)
	}

	return s, nil
}

// RunConfig extracts the stepping parameters for a built simulator.
func RunConfig(cfg *config.Config) sim.Config {
	return sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}
}

func toScript(cues []config.ScriptCue) sim.Script {
	if len(cues) == 0 {
		return sim.DefaultScript()
	}
	script := make(sim.Script, 0, len(cues))
	for _, c := range cues {
		script = append(script, sim.Cue{At: c.At, Do: sim.Action(c.Do)})
	}
	return script
}
