package backdrop

import (
	"image/color"

	"github.com/iburimskiy/mesh-backdrop/internal/config"
)

// Canvas is the drawing contract the renderer paints through. Coordinates
// are CSS-pixel units; the surface applies its own device scale underneath.
type Canvas interface {
	Clear()
	Line(x1, y1, x2, y2, width float64, c color.RGBA)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
}

const (
	lineWidth = 1.0

	// Fixed constants of the design, not tunables.
	triangleAlphaScale = 0.6
	triangleAlphaMin   = 0.02

	// Lines are dimmed in light mode for legibility against pale backgrounds.
	lightLineScale = 0.75
)

// palette carries the theme-conditioned colors. Dots stay near-opaque
// white-ish in both themes (slightly more opaque in light mode) so they read
// against either background.
type palette struct {
	line      color.RGBA
	triangle  color.RGBA
	dot       color.RGBA
	lineScale float64
}

var palettes = [2]palette{
	Light: {
		line:      color.RGBA{R: 71, G: 85, B: 105, A: 255},
		triangle:  color.RGBA{R: 148, G: 163, B: 184, A: 255},
		dot:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		lineScale: lightLineScale,
	},
	Dark: {
		line:      color.RGBA{R: 148, G: 163, B: 184, A: 255},
		triangle:  color.RGBA{R: 100, G: 130, B: 180, A: 255},
		dot:       color.RGBA{R: 245, G: 248, B: 252, A: 235},
		lineScale: 1,
	},
}

// lineAlpha falls off linearly with distance; zero-floored so degenerate
// inputs dim to nothing rather than wrapping.
func lineAlpha(dist, lineMax, baseOpacity float64, m Mode) float64 {
	if lineMax <= 0 {
		return 0
	}
	a := 1 - dist/lineMax
	if a < 0 {
		a = 0
	}
	return a * baseOpacity * palettes[m].lineScale
}

// triangleAlpha falls off with the mean neighbor distance.
func triangleAlpha(avgDist, triMax float64) float64 {
	if triMax <= 0 {
		return 0
	}
	a := 1 - avgDist/triMax
	if a < 0 {
		a = 0
	}
	return a * triangleAlphaScale
}

// withAlpha premultiplies c by a.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// RenderFrame paints one frame: hard clear, then lines underneath, triangles
// above them, dots on top. Edges arrive in scan order and are drawn as-is;
// ordering is invisible under alpha-over onto a cleared surface but would
// matter if compositing ever became persistent.
func RenderFrame(c Canvas, ps []Particle, edges []Edge, tris []Triangle, m Mode, cfg config.Config) {
	pal := palettes[m]
	c.Clear()
	for _, e := range edges {
		a := lineAlpha(e.Dist, cfg.LineMaxDist, cfg.Opacity, m)
		c.Line(ps[e.A].X, ps[e.A].Y, ps[e.B].X, ps[e.B].Y, lineWidth, withAlpha(pal.line, a))
	}
	for _, t := range tris {
		a := triangleAlpha(t.AvgDist(), cfg.TriMaxDist)
		if a <= triangleAlphaMin {
			continue
		}
		c.FillTriangle(
			ps[t.A].X, ps[t.A].Y,
			ps[t.N1].X, ps[t.N1].Y,
			ps[t.N2].X, ps[t.N2].Y,
			withAlpha(pal.triangle, a),
		)
	}
	for i := range ps {
		c.FillCircle(ps[i].X, ps[i].Y, cfg.DotSize, pal.dot)
	}
}
