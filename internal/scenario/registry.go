package scenario

import (
	"fmt"
	"sort"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/approach"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/config"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/integrate"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/metrics"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"
)

type profileFactory func(cfg *config.Config, obj astro.Object, integ integrate.Integrator) approach.Profile

// Registry maps config names to the pieces they build. Profile
// factories receive the resolved object so floors can default to the
// surface or horizon radius.
type Registry struct {
	profiles    map[string]profileFactory
	integrators map[string]func() integrate.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		profiles:    make(map[string]profileFactory),
		integrators: make(map[string]func() integrate.Integrator),
	}

	r.profiles["hold"] = func(cfg *config.Config, obj astro.Object, integ integrate.Integrator) approach.Profile {
		return approach.NewHold(cfg.Approach.StartKm)
	}
	r.profiles["linear"] = func(cfg *config.Config, obj astro.Object, integ integrate.Integrator) approach.Profile {
		return approach.NewLinear(cfg.Approach.StartKm, cfg.Approach.SpeedKmS, floorFor(cfg, obj))
	}
	r.profiles["freefall"] = func(cfg *config.Config, obj astro.Object, integ integrate.Integrator) approach.Profile {
		f := approach.NewFreefall(cfg.Approach.StartKm, obj.MassSolar)
		f.FloorKm = floorFor(cfg, obj)
		f.InwardKmS = cfg.Approach.InwardKmS
		f.Integrator = integ
		return f
	}

	r.integrators["euler"] = func() integrate.Integrator { return integrate.NewEuler() }
	r.integrators["rk4"] = func() integrate.Integrator { return integrate.NewRK4() }
	r.integrators["leapfrog"] = func() integrate.Integrator { return integrate.NewLeapfrog() }

	return r
}

func floorFor(cfg *config.Config, obj astro.Object) float64 {
	if cfg.Approach.FloorKm > 0 {
		return cfg.Approach.FloorKm
	}
	return obj.RadiusKm
}

func (r *Registry) GetProfile(name string, cfg *config.Config, obj astro.Object, integ integrate.Integrator) (approach.Profile, error) {
	fn, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return fn(cfg, obj, integ), nil
}

func (r *Registry) GetIntegrator(name string) (integrate.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListProfiles() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics is the standard summary set attached to every run.
func DefaultMetrics(obj astro.Object) []sim.Metric {
	return []sim.Metric{
		metrics.NewPeakTidal(),
		metrics.NewMeanTidal(),
		metrics.NewMaxStretch(),
		metrics.NewMinDistance(),
		metrics.NewContactTime(obj.RadiusKm),
	}
}
