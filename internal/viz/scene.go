package viz

import (
	"math"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/deform"
)

const (
	objectDotRadius = 10.0
	bodyDotRadius   = 5.0
	maxBodyStretch  = 36.0
)

// Scene maps an approach onto the canvas: the compact object sits on
// the left edge, the infalling body slides in from the right. Radii
// are not to scale; distance is compressed logarithmically so both
// the far approach and the final plunge stay visible.
type Scene struct {
	Object astro.Object
	SpanKm float64
}

// NewScene sets up a scene whose right edge corresponds to spanKm.
func NewScene(obj astro.Object, spanKm float64) *Scene {
	if spanKm <= obj.RadiusKm*2 {
		spanKm = obj.RadiusKm * 10
	}
	return &Scene{Object: obj, SpanKm: spanKm}
}

// Render clears the canvas and draws one frame of the approach.
func (s *Scene) Render(c *Canvas, distanceKm float64, cmd deform.Command) {
	c.Clear()
	w, h := c.Width*2, c.Height*4
	ox, oy := w/8, h/2

	s.drawObject(c, ox, oy)

	// Longitudinal axis points at the object, so the stretch factor
	// widens the body horizontally on screen.
	rx := bodyDotRadius * cmd.Scale.Y
	if rx > maxBodyStretch {
		rx = maxBodyStretch
	}
	ry := bodyDotRadius * cmd.Scale.X

	minX := ox + int(objectDotRadius) + 6
	maxX := w - 10
	bx := minX + int(s.travel(distanceKm)*float64(maxX-minX))
	by := oy

	c.FillEllipse(bx, by, rx, ry)

	// Distance ruler with a tick under the body.
	c.DrawLine(0, h-3, w-1, h-3)
	c.DrawLine(bx, h-6, bx, h-3)
}

// travel maps a distance to [0, 1] across the drawable span, 0 at the
// object surface and 1 at SpanKm.
func (s *Scene) travel(distanceKm float64) float64 {
	r := s.Object.RadiusKm
	if r <= 0 {
		r = 1
	}
	above := distanceKm - r
	if above < 0 {
		above = 0
	}
	span := s.SpanKm - r
	frac := math.Log1p(above/r) / math.Log1p(span/r)
	if frac > 1 {
		frac = 1
	}
	return frac
}

func (s *Scene) drawObject(c *Canvas, ox, oy int) {
	switch s.Object.Kind {
	case astro.BlackHole:
		// Shadow disk inside the horizon ring.
		c.FillEllipse(ox, oy, objectDotRadius-2, objectDotRadius-2)
		c.DrawCircle(ox, oy, objectDotRadius+3)
	case astro.NeutronStar:
		c.FillEllipse(ox, oy, objectDotRadius-2, objectDotRadius-2)
		// Beams off the magnetic poles.
		beam := int(objectDotRadius) + 8
		c.DrawLine(ox-int(objectDotRadius), oy-int(objectDotRadius), ox-beam, oy-beam)
		c.DrawLine(ox+int(objectDotRadius), oy+int(objectDotRadius), ox+beam, oy+beam)
	default:
		c.FillEllipse(ox, oy, objectDotRadius-2, objectDotRadius-2)
	}
}
