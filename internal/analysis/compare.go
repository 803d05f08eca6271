package analysis

import (
	"fmt"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
)

// CompareRow is one object's worth of the comparison table: its bulk
// numbers, the stress at each requested standoff distance, and the
// stress at its own radius. SurfaceGravity may be +Inf; renderers are
// expected to show a divergence symbol.
type CompareRow struct {
	Name           string
	MassSolar      float64
	MassUnit       string
	RadiusKm       float64
	SurfaceGravity float64
	TidalAtRadius  float64
	TidalAt        []float64
	BreakupKm      float64
}

// CompareRows evaluates each object at every requested distance. The
// rows keep the input object order.
func CompareRows(objects []astro.Object, distancesKm []float64) ([]CompareRow, error) {
	for _, d := range distancesKm {
		if d <= 0 {
			return nil, fmt.Errorf("comparison distance must be positive, got %f", d)
		}
	}

	rows := make([]CompareRow, 0, len(objects))
	for _, obj := range objects {
		grav, err := astro.SurfaceGravity(obj.MassSolar, obj.RadiusKm)
		if err != nil {
			return nil, err
		}

		breakup, err := astro.BreakupDistanceKm(obj.MassSolar)
		if err != nil {
			return nil, err
		}

		row := CompareRow{
			Name:           obj.Name,
			MassSolar:      obj.MassSolar,
			MassUnit:       obj.MassUnit,
			RadiusKm:       obj.RadiusKm,
			SurfaceGravity: grav,
			TidalAt:        make([]float64, 0, len(distancesKm)),
			BreakupKm:      breakup,
		}

		if obj.RadiusKm > 0 {
			row.TidalAtRadius, err = astro.TidalForce(obj.MassSolar, obj.RadiusKm)
			if err != nil {
				return nil, err
			}
		}

		for _, d := range distancesKm {
			f, err := astro.TidalForce(obj.MassSolar, d)
			if err != nil {
				return nil, err
			}
			row.TidalAt = append(row.TidalAt, f)
		}

		rows = append(rows, row)
	}

	return rows, nil
}
