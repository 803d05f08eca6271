package integrate

// Leapfrog is a symplectic second-order stepper for position/velocity
// states. Its kick-drift-kick form keeps orbital and infall energies
// bounded over long runs where Euler drifts.
type Leapfrog struct {
	scratch State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys System, x State, t, dt float64) State {
	n := len(x)
	half := n / 2

	if len(l.scratch) != n {
		l.scratch = make(State, n)
	}

	result := make(State, n)
	dx := sys.Derive(x, t)
	halfDt := dt * 0.5

	for i := 0; i < half; i++ {
		l.scratch[half+i] = x[half+i] + dx[half+i]*halfDt
	}

	for i := 0; i < half; i++ {
		result[i] = x[i] + l.scratch[half+i]*dt
		l.scratch[i] = result[i]
	}

	dxNew := sys.Derive(l.scratch, t+dt)

	for i := 0; i < half; i++ {
		result[half+i] = l.scratch[half+i] + dxNew[half+i]*halfDt
	}

	return result
}
