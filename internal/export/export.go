// Package export serializes finished runs for use outside the
// terminal: CSV and JSON streams plus SVG snapshots of the scene.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"
)

// Meta identifies the run a document came from.
type Meta struct {
	Object     string  `json:"object"`
	MassSolar  float64 `json:"mass_solar"`
	Profile    string  `json:"profile"`
	Integrator string  `json:"integrator"`
	Dt         float64 `json:"dt"`
	Duration   float64 `json:"duration"`
}

// Number marshals like a plain float64 but keeps the infinities and
// NaN legal JSON by quoting them. Surface gravity hits +Inf in the
// zero-radius limit and the contact metric reports NaN when the body
// never lands.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(f)
}

// Document is the JSON layout: run identity plus parallel per-step
// series in frame order.
type Document struct {
	Meta           Meta              `json:"meta"`
	Steps          int               `json:"steps"`
	Times          []float64         `json:"times"`
	DistancesKm    []float64         `json:"distances_km"`
	SurfaceGravity []Number          `json:"surface_gravity"`
	TidalForce     []Number          `json:"tidal_force"`
	BreakupKm      []float64         `json:"breakup_km"`
	Stretch        []float64         `json:"stretch"`
	ScaleX         []float64         `json:"scale_x"`
	ScaleY         []float64         `json:"scale_y"`
	ScaleZ         []float64         `json:"scale_z"`
	VelocityZ      []float64         `json:"vel_z"`
	Active         []bool            `json:"active"`
	Metrics        map[string]Number `json:"metrics"`
}

// NewDocument flattens a run result into the export layout.
func NewDocument(meta Meta, result *sim.Result) *Document {
	n := len(result.Frames)
	doc := &Document{
		Meta:           meta,
		Steps:          result.StepsTaken,
		Times:          make([]float64, n),
		DistancesKm:    make([]float64, n),
		SurfaceGravity: make([]Number, n),
		TidalForce:     make([]Number, n),
		BreakupKm:      make([]float64, n),
		Stretch:        make([]float64, n),
		ScaleX:         make([]float64, n),
		ScaleY:         make([]float64, n),
		ScaleZ:         make([]float64, n),
		VelocityZ:      make([]float64, n),
		Active:         make([]bool, n),
		Metrics:        make(map[string]Number, len(result.Metrics)),
	}
	for i, fr := range result.Frames {
		doc.Times[i] = fr.Time
		doc.DistancesKm[i] = fr.DistanceKm
		doc.SurfaceGravity[i] = Number(fr.Sample.SurfaceGravity)
		doc.TidalForce[i] = Number(fr.Sample.TidalForce)
		doc.BreakupKm[i] = fr.Sample.BreakupDistanceKm
		doc.Stretch[i] = fr.Stretch
		doc.ScaleX[i] = fr.Command.Scale.X
		doc.ScaleY[i] = fr.Command.Scale.Y
		doc.ScaleZ[i] = fr.Command.Scale.Z
		doc.VelocityZ[i] = fr.Command.Velocity.Z
		doc.Active[i] = fr.Active
	}
	for name, val := range result.Metrics {
		doc.Metrics[name] = Number(val)
	}
	return doc
}

// WriteJSON streams the run as an indented JSON document.
func WriteJSON(w io.Writer, meta Meta, result *sim.Result) error {
	if result == nil {
		return fmt.Errorf("export: nil result")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(meta, result))
}

var csvHeader = []string{
	"time", "distance_km", "surface_gravity", "tidal_force", "breakup_km",
	"stretch", "scale_x", "scale_y", "scale_z", "vel_z", "active",
}

// WriteCSV streams one row per frame.
func WriteCSV(w io.Writer, result *sim.Result) error {
	if result == nil {
		return fmt.Errorf("export: nil result")
	}
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, fr := range result.Frames {
		row := []string{
			strconv.FormatFloat(fr.Time, 'f', 4, 64),
			csvFloat(fr.DistanceKm),
			csvFloat(fr.Sample.SurfaceGravity),
			csvFloat(fr.Sample.TidalForce),
			csvFloat(fr.Sample.BreakupDistanceKm),
			csvFloat(fr.Stretch),
			csvFloat(fr.Command.Scale.X),
			csvFloat(fr.Command.Scale.Y),
			csvFloat(fr.Command.Scale.Z),
			csvFloat(fr.Command.Velocity.Z),
			strconv.FormatBool(fr.Active),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvFloat matches the quoting convention of [Number].
func csvFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
