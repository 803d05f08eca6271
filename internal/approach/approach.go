// Package approach supplies the time-varying separation between the
// test body and the massive object. Profiles are stepped once per
// frame and always report a strictly positive distance; a floor clamp
// stands in for contact with the surface or horizon.
package approach

// Profile produces the separation distance, in km, one tick at a time.
// Profiles are single-goroutine objects like the engines they feed.
type Profile interface {
	// Advance moves the profile forward by dt seconds and returns the
	// new distance in km.
	Advance(dt float64) float64

	// Done reports whether the profile is pinned at its floor.
	Done() bool
}

// SpeedReporter is implemented by profiles that know their current
// inward speed. Displays show it when present.
type SpeedReporter interface {
	SpeedKmS() float64
}

const defaultFloorKm = 1.0

// Hold keeps the body at a fixed standoff distance.
type Hold struct {
	DistanceKm float64
}

func NewHold(distanceKm float64) *Hold {
	return &Hold{DistanceKm: distanceKm}
}

func (h *Hold) Advance(dt float64) float64 { return h.DistanceKm }

func (h *Hold) Done() bool { return false }

// Linear closes at a constant speed until it reaches the floor.
type Linear struct {
	FloorKm float64

	speedKmS   float64
	distanceKm float64
}

func NewLinear(startKm, speedKmS, floorKm float64) *Linear {
	if floorKm <= 0 {
		floorKm = defaultFloorKm
	}
	return &Linear{
		FloorKm:    floorKm,
		speedKmS:   speedKmS,
		distanceKm: startKm,
	}
}

func (l *Linear) Advance(dt float64) float64 {
	l.distanceKm -= l.speedKmS * dt
	if l.distanceKm < l.FloorKm {
		l.distanceKm = l.FloorKm
	}
	return l.distanceKm
}

func (l *Linear) Done() bool { return l.distanceKm <= l.FloorKm }

// SpeedKmS reports the closing speed, zero once pinned.
func (l *Linear) SpeedKmS() float64 {
	if l.Done() {
		return 0
	}
	return l.speedKmS
}
