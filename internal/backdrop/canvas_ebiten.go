package backdrop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1x1 fill source for DrawTriangles. The 3x3 parent
// avoids bleeding at the texel border.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenCanvas draws CSS-pixel commands onto the scaled backing store by
// applying the surface's uniform scale to every coordinate.
type ebitenCanvas struct {
	dst   *ebiten.Image
	scale float64
}

func (c *ebitenCanvas) Clear() {
	c.dst.Clear()
}

func (c *ebitenCanvas) Line(x1, y1, x2, y2, width float64, col color.RGBA) {
	s := float32(c.scale)
	vector.StrokeLine(c.dst,
		float32(x1)*s, float32(y1)*s,
		float32(x2)*s, float32(y2)*s,
		float32(width)*s, col, true)
}

func (c *ebitenCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	s := float32(c.scale)
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(col.A) / 255
	vs := []ebiten.Vertex{
		{DstX: float32(x1) * s, DstY: float32(y1) * s, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(x2) * s, DstY: float32(y2) * s, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(x3) * s, DstY: float32(y3) * s, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	is := []uint16{0, 1, 2}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func (c *ebitenCanvas) FillCircle(x, y, r float64, col color.RGBA) {
	s := float32(c.scale)
	vector.DrawFilledCircle(c.dst, float32(x)*s, float32(y)*s, float32(r)*s, col, true)
}
