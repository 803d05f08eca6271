// Package integrate provides fixed-step ODE steppers over small state
// vectors. Second-order systems lay positions in the first half of the
// state and velocities in the second, which is the layout [Leapfrog]
// assumes.
package integrate

// State is a flat vector of system variables.
type State []float64

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// System yields the time derivative of a state.
type System interface {
	Derive(x State, t float64) State
}

// Integrator advances a state by one step of size dt.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}
