package analysis

import (
	"fmt"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
)

// Curve is a sampled tidal-stress-vs-distance series, parallel slices
// ready for plotting.
type Curve struct {
	DistancesKm []float64
	Forces      []float64
}

// ForceCurve samples the tidal stress obj exerts across [fromKm, toKm]
// at n evenly spaced distances.
func ForceCurve(obj astro.Object, fromKm, toKm float64, n int) (*Curve, error) {
	if fromKm <= 0 {
		return nil, fmt.Errorf("curve start must be positive, got %f", fromKm)
	}
	if toKm <= fromKm {
		return nil, fmt.Errorf("curve end %f must exceed start %f", toKm, fromKm)
	}
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}

	curve := &Curve{
		DistancesKm: make([]float64, 0, n),
		Forces:      make([]float64, 0, n),
	}

	step := (toKm - fromKm) / float64(n-1)
	for i := 0; i < n; i++ {
		d := fromKm + float64(i)*step
		f, err := astro.TidalForce(obj.MassSolar, d)
		if err != nil {
			return nil, err
		}
		curve.DistancesKm = append(curve.DistancesKm, d)
		curve.Forces = append(curve.Forces, f)
	}

	return curve, nil
}
