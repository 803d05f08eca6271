package astro

import "fmt"

// Kind selects which compact object the learner is orbiting.
type Kind int

const (
	BlackHole Kind = iota
	NeutronStar
)

func (k Kind) String() string {
	switch k {
	case BlackHole:
		return "blackhole"
	case NeutronStar:
		return "neutronstar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a config/CLI name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "blackhole", "black-hole", "bh":
		return BlackHole, nil
	case "neutronstar", "neutron-star", "ns":
		return NeutronStar, nil
	default:
		return 0, fmt.Errorf("%w: unknown object kind %q", ErrInvalidArgument, name)
	}
}

// Object is an immutable snapshot of a compact object's display
// properties. RadiusKm is derived from Kind and MassSolar at
// construction; changing either means building a new Object, so the
// radius can never go stale.
type Object struct {
	Kind      Kind
	MassSolar float64
	RadiusKm  float64
	Name      string
	Color     string
	MassUnit  string
}

// Properties derives the Object record for a kind and mass.
// Black holes take their Schwarzschild radius; neutron stars use the
// fixed nominal radius whatever the mass.
func Properties(kind Kind, massSolar float64) (Object, error) {
	if massSolar <= 0 {
		return Object{}, fmt.Errorf("%w: mass %g M☉, must be > 0", ErrInvalidArgument, massSolar)
	}

	obj := Object{
		Kind:      kind,
		MassSolar: massSolar,
		MassUnit:  "M☉",
	}

	switch kind {
	case NeutronStar:
		obj.RadiusKm = NeutronStarRadiusKm
		obj.Name = "Neutron Star"
		obj.Color = "#00ccff"
	default:
		r, err := SchwarzschildRadiusKm(massSolar)
		if err != nil {
			return Object{}, err
		}
		obj.RadiusKm = r
		obj.Name = "Black Hole"
		obj.Color = "#bb66ff"
	}

	return obj, nil
}

// MassBounds returns the mass range (solar masses) the configuration
// surface allows for a kind. The physics functions themselves accept any
// positive mass; these bounds belong to the UI contract.
func MassBounds(kind Kind) (min, max float64) {
	if kind == NeutronStar {
		return 1.0, 2.5
	}
	return 3.0, 100.0
}

// DefaultMass is the canonical demonstration mass for a kind.
func DefaultMass(kind Kind) float64 {
	if kind == NeutronStar {
		return 1.4
	}
	return 10.0
}

// ClampMass pins a mass into the kind's allowed range.
func ClampMass(kind Kind, massSolar float64) float64 {
	lo, hi := MassBounds(kind)
	if massSolar < lo {
		return lo
	}
	if massSolar > hi {
		return hi
	}
	return massSolar
}
