package metrics

import "github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"

// MeanTidal averages tidal stress across every observed frame, a rough
// exposure figure for the whole run.
type MeanTidal struct {
	name    string
	sum     float64
	samples int
}

func NewMeanTidal() *MeanTidal {
	return &MeanTidal{
		name: "mean_tidal",
	}
}

func (m *MeanTidal) Name() string {
	return m.name
}

func (m *MeanTidal) Observe(f sim.Frame) {
	m.sum += f.Sample.TidalForce
	m.samples++
}

func (m *MeanTidal) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanTidal) Reset() {
	m.sum = 0
	m.samples = 0
}
