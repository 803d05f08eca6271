package integrate

// Euler is the first-order explicit stepper. Cheap and adequate for
// short demonstration runs; prefer [RK4] when accuracy matters.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, x State, t, dt float64) State {
	dx := sys.Derive(x, t)
	result := make(State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
