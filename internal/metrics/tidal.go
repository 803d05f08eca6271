package metrics

import (
	"math"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"
)

// PeakTidal records the largest tidal stress seen over a run, in m/s²
// across the reference body.
type PeakTidal struct {
	name string
	peak float64
}

func NewPeakTidal() *PeakTidal {
	return &PeakTidal{name: "peak_tidal"}
}

func (p *PeakTidal) Name() string { return p.name }

func (p *PeakTidal) Observe(f sim.Frame) {
	if f.Sample.TidalForce > p.peak {
		p.peak = f.Sample.TidalForce
	}
}

func (p *PeakTidal) Value() float64 { return p.peak }

func (p *PeakTidal) Reset() { p.peak = 0 }

// MaxStretch records the furthest the deformation ramp got.
type MaxStretch struct {
	name string
	max  float64
}

func NewMaxStretch() *MaxStretch {
	return &MaxStretch{name: "max_stretch"}
}

func (m *MaxStretch) Name() string { return m.name }

func (m *MaxStretch) Observe(f sim.Frame) {
	if f.Stretch > m.max {
		m.max = f.Stretch
	}
}

func (m *MaxStretch) Value() float64 { return m.max }

func (m *MaxStretch) Reset() { m.max = 0 }

// MinDistance records the closest approach in km. NaN until the first
// frame is observed.
type MinDistance struct {
	name string
	min  float64
	seen bool
}

func NewMinDistance() *MinDistance {
	return &MinDistance{name: "min_distance_km"}
}

func (m *MinDistance) Name() string { return m.name }

func (m *MinDistance) Observe(f sim.Frame) {
	if !m.seen || f.DistanceKm < m.min {
		m.min = f.DistanceKm
		m.seen = true
	}
}

func (m *MinDistance) Value() float64 {
	if !m.seen {
		return math.NaN()
	}
	return m.min
}

func (m *MinDistance) Reset() {
	m.min = 0
	m.seen = false
}

// ContactTime records when the body first reached the surface or
// horizon, taken as distance dropping to the object radius. NaN if
// contact never happened.
type ContactTime struct {
	name     string
	radiusKm float64
	time     float64
	seen     bool
}

func NewContactTime(radiusKm float64) *ContactTime {
	return &ContactTime{name: "contact_time_s", radiusKm: radiusKm}
}

func (c *ContactTime) Name() string { return c.name }

func (c *ContactTime) Observe(f sim.Frame) {
	if !c.seen && f.DistanceKm <= c.radiusKm {
		c.time = f.Time
		c.seen = true
	}
}

func (c *ContactTime) Value() float64 {
	if !c.seen {
		return math.NaN()
	}
	return c.time
}

func (c *ContactTime) Reset() {
	c.time = 0
	c.seen = false
}
