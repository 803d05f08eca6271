package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
)

const (
	DefaultDt         = 0.01
	DefaultDuration   = 10.0
	DefaultDistanceKm = 500.0
)

// Config is the full description of one demonstration run. Names are
// resolved against the scenario registry at build time; Validate only
// covers the numeric domain and the mass bounds.
type Config struct {
	Object     string         `yaml:"object"`
	MassSolar  float64        `yaml:"mass_solar"`
	Profile    string         `yaml:"profile"`
	Integrator string         `yaml:"integrator"`
	Dt         float64        `yaml:"dt"`
	Duration   float64        `yaml:"duration"`
	Approach   ApproachConfig `yaml:"approach"`
	Script     []ScriptCue    `yaml:"script"`
}

// ApproachConfig shapes how the test body closes in. FloorKm zero
// means "use the object radius", so plunges end at the surface or
// horizon.
type ApproachConfig struct {
	StartKm   float64 `yaml:"start_km"`
	SpeedKmS  float64 `yaml:"speed_km_s"`
	InwardKmS float64 `yaml:"inward_km_s"`
	FloorKm   float64 `yaml:"floor_km"`
}

// ScriptCue mirrors a sim script entry in plain strings so config
// files stay independent of engine types.
type ScriptCue struct {
	At float64 `yaml:"at"`
	Do string  `yaml:"do"`
}

func DefaultConfig() *Config {
	return &Config{
		Object:     "blackhole",
		MassSolar:  astro.DefaultMass(astro.BlackHole),
		Profile:    "hold",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Approach: ApproachConfig{
			StartKm: DefaultDistanceKm,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyDefaults fills zeroed fields with the standard values so
// partial lesson steps and hand-written files stay terse.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Object == "" {
		c.Object = d.Object
	}
	if c.Profile == "" {
		c.Profile = d.Profile
	}
	if c.Integrator == "" {
		c.Integrator = d.Integrator
	}
	if c.Dt == 0 {
		c.Dt = d.Dt
	}
	if c.Duration == 0 {
		c.Duration = d.Duration
	}
	if c.Approach.StartKm == 0 {
		c.Approach.StartKm = d.Approach.StartKm
	}
	if c.MassSolar == 0 {
		if kind, err := astro.ParseKind(c.Object); err == nil {
			c.MassSolar = astro.DefaultMass(kind)
		}
	}
}

// Kind resolves the configured object name.
func (c *Config) Kind() (astro.Kind, error) {
	kind, err := astro.ParseKind(c.Object)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownObject, c.Object)
	}
	return kind, nil
}

// Validate checks the numeric domain before anything touches the
// physics: the hot path assumes these hold.
func (c *Config) Validate() error {
	kind, err := c.Kind()
	if err != nil {
		return err
	}

	lo, hi := astro.MassBounds(kind)
	if c.MassSolar < lo || c.MassSolar > hi {
		return fmt.Errorf("%w: %s mass %g, allowed [%g, %g] M☉", ErrMassOutOfRange, c.Object, c.MassSolar, lo, hi)
	}

	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt %g must be positive", ErrBadTiming, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration %g must be positive", ErrBadTiming, c.Duration)
	}

	if c.Approach.StartKm <= 0 {
		return fmt.Errorf("%w: start %g km must be positive", ErrBadDistance, c.Approach.StartKm)
	}
	if c.Approach.SpeedKmS < 0 {
		return fmt.Errorf("%w: approach speed %g must not be negative", ErrBadDistance, c.Approach.SpeedKmS)
	}
	if c.Approach.InwardKmS < 0 {
		return fmt.Errorf("%w: infall speed %g must not be negative", ErrBadDistance, c.Approach.InwardKmS)
	}
	if c.Approach.FloorKm < 0 {
		return fmt.Errorf("%w: floor %g km must not be negative", ErrBadDistance, c.Approach.FloorKm)
	}

	for _, cue := range c.Script {
		if cue.At < 0 {
			return fmt.Errorf("%w: cue time %g must not be negative", ErrBadScript, cue.At)
		}
		switch cue.Do {
		case "trigger", "stop", "reset":
		default:
			return fmt.Errorf("%w: unknown action %q", ErrBadScript, cue.Do)
		}
	}

	return nil
}
