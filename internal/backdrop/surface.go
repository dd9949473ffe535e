package backdrop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxPixelRatio caps the device pixel ratio to bound backing-store memory
// and per-frame fill cost on very dense displays.
const maxPixelRatio = 2.0

// BackingSize maps a CSS-pixel content box to backing-store dimensions and
// the uniform scale the surface applies to drawing commands.
func BackingSize(cssWidth, cssHeight int, devicePixelRatio float64) (w, h int, scale float64) {
	scale = devicePixelRatio
	if scale <= 0 {
		scale = 1
	}
	if scale > maxPixelRatio {
		scale = maxPixelRatio
	}
	w = int(math.Ceil(float64(cssWidth) * scale))
	h = int(math.Ceil(float64(cssHeight) * scale))
	return w, h, scale
}

// Surface owns the offscreen backing store and its scale transform. Drawing
// through Canvas is issued in CSS-pixel units; Compose maps the backing
// store back onto the host screen.
type Surface struct {
	cssW, cssH int
	scale      float64
	image      *ebiten.Image
}

// Resize re-measures the backing store for a new content box. The content
// box is integer CSS pixels (callers floor fractional measurements). Returns
// true when the store was rebuilt, which obliges the caller to respawn the
// particle field.
func (s *Surface) Resize(cssWidth, cssHeight int, devicePixelRatio float64) bool {
	if cssWidth < 0 {
		cssWidth = 0
	}
	if cssHeight < 0 {
		cssHeight = 0
	}
	w, h, scale := BackingSize(cssWidth, cssHeight, devicePixelRatio)
	if s.image != nil && cssWidth == s.cssW && cssHeight == s.cssH && scale == s.scale {
		return false
	}
	s.cssW, s.cssH, s.scale = cssWidth, cssHeight, scale
	// ebiten images need at least one pixel; a zero-area container still
	// carries the floor particle count, it just has nowhere to show it.
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.image = ebiten.NewImage(w, h)
	return true
}

// Size returns the logical (CSS-pixel) size.
func (s *Surface) Size() (int, int) { return s.cssW, s.cssH }

// Canvas returns the CSS-pixel drawing target, or nil before the first
// Resize. A nil canvas means "render nothing", the single silent failure
// mode this component has.
func (s *Surface) Canvas() Canvas {
	if s.image == nil {
		return nil
	}
	return &ebitenCanvas{dst: s.image, scale: s.scale}
}

// Compose blits the backing store onto dst, undoing the device scale so the
// result is CSS-pixel-accurate in the host layout.
func (s *Surface) Compose(dst *ebiten.Image) {
	if s.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/s.scale, 1/s.scale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.image, op)
}
