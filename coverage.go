package txtpic

import (
	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"image"
	"math"
	"strings"
)

const (
	// CanvasWidth and CanvasHeight define the coverage buffer every glyph is
	// rasterized into. Ink falling outside the canvas is discarded.
	CanvasWidth  = 50
	CanvasHeight = 50

	// GlyphHeight is the pixel height the font's ascent-to-descent extent is
	// scaled to. GlyphWidthFactor stretches glyphs horizontally relative to
	// that height.
	GlyphHeight      = 50.0
	GlyphWidthFactor = 2.0
)

// CoverageBuffer holds per-pixel ink coverage scaled to [0,255], row-major.
type CoverageBuffer [CanvasWidth * CanvasHeight]float32

// At returns the coverage of pixel (x, y), or 0 outside the canvas.
func (c *CoverageBuffer) At(x, y int) float32 {
	if x < 0 || x >= CanvasWidth || y < 0 || y >= CanvasHeight {
		return 0
	}
	return c[y*CanvasWidth+x]
}

// set writes v at (x, y), dropping writes that fall outside the canvas.
func (c *CoverageBuffer) set(x, y int, v float32) {
	if x < 0 || x >= CanvasWidth || y < 0 || y >= CanvasHeight {
		return
	}
	c[y*CanvasWidth+x] = v
}

// Brightness reduces the buffer to its mean coverage, truncated toward zero.
func (c *CoverageBuffer) Brightness() int {
	var total float32
	for _, v := range c {
		total += v
	}
	n := float32(len(c))
	if total == 0 || n == 0 {
		return 0
	}
	return int(total / n)
}

// String renders the buffer with shade characters, one line per row.
func (c *CoverageBuffer) String() string {
	shades := []rune{'·', '░', '▒', '▓', '█'}
	var sb strings.Builder
	for y := 0; y < CanvasHeight; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < CanvasWidth; x++ {
			v := c.At(x, y)
			idx := int(v / 256 * float32(len(shades)))
			if v > 0 && idx == 0 {
				idx = 1
			}
			if idx >= len(shades) {
				idx = len(shades) - 1
			}
			sb.WriteRune(shades[idx])
		}
	}
	return sb.String()
}

// pixelPoint is an outline point in canvas pixels, y down.
type pixelPoint struct {
	X, Y    float64
	OnCurve bool
}

// pixelOutline is a glyph outline placed on the canvas. Contour i spans
// points[ends[i-1]:ends[i]], with ends[-1] taken as zero.
type pixelOutline struct {
	points []pixelPoint
	ends   []int
}

// place maps a font-unit outline onto the canvas: glyph origin at g, scaled
// by sx and sy, y flipped so the baseline sits at baseline pixels.
func (o outline) place(g positionedGlyph, sx, sy, baseline float64) pixelOutline {
	po := pixelOutline{
		points: make([]pixelPoint, len(o.points)),
		ends:   o.ends,
	}
	for i, p := range o.points {
		po.points[i] = pixelPoint{
			X:       (g.X + floatFromFixed(p.X)) * sx,
			Y:       baseline - (g.Y+floatFromFixed(p.Y))*sy,
			OnCurve: p.Flags&0x01 != 0,
		}
	}
	return po
}

// pixelBounds returns the smallest whole-pixel rectangle containing the
// outline. ok is false when the outline has no ink.
func (o pixelOutline) pixelBounds() (image.Rectangle, bool) {
	if len(o.points) == 0 {
		return image.Rectangle{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range o.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	bb := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	if bb.Empty() {
		return image.Rectangle{}, false
	}
	return bb, true
}

// fill rasterizes the outline in its own bounding box and copies each
// covered pixel into the buffer at its absolute position.
func (c *CoverageBuffer) fill(o pixelOutline) {
	bb, ok := o.pixelBounds()
	if !ok {
		return
	}

	r := raster.NewRasterizer(bb.Dx(), bb.Dy())
	r.UseNonZeroWinding = true
	origin := bb.Min
	start := 0
	for _, end := range o.ends {
		addContour(r, o.points[start:end], origin)
		start = end
	}

	r.Rasterize(raster.PainterFunc(func(spans []raster.Span, done bool) {
		for _, s := range spans {
			v := float32(s.Alpha) / 0xffff
			if v < 0 {
				v = 0
			}
			scaled := v * 255
			y := s.Y + origin.Y
			for x := s.X0; x < s.X1; x++ {
				c.set(x+origin.X, y, scaled)
			}
		}
	}))
}

// addContour feeds one TrueType contour to the rasterizer relative to
// origin. Consecutive off-curve points imply an on-curve midpoint.
func addContour(r *raster.Rasterizer, ps []pixelPoint, origin image.Point) {
	if len(ps) == 0 {
		return
	}
	pt := func(p pixelPoint) fixed.Point26_6 {
		return fixed.Point26_6{
			X: fixedFromFloat(p.X - float64(origin.X)),
			Y: fixedFromFloat(p.Y - float64(origin.Y)),
		}
	}

	start := pt(ps[0])
	var rest []pixelPoint
	switch last := ps[len(ps)-1]; {
	case ps[0].OnCurve:
		rest = ps[1:]
	case last.OnCurve:
		start = pt(last)
		rest = ps[:len(ps)-1]
	default:
		l := pt(last)
		start = fixed.Point26_6{X: (start.X + l.X) / 2, Y: (start.Y + l.Y) / 2}
		rest = ps
	}

	r.Start(start)
	q0, on0 := start, true
	for _, p := range rest {
		q := pt(p)
		switch {
		case p.OnCurve && on0:
			r.Add1(q)
		case p.OnCurve:
			r.Add2(q0, q)
		case !on0:
			mid := fixed.Point26_6{X: (q0.X + q.X) / 2, Y: (q0.Y + q.Y) / 2}
			r.Add2(q0, mid)
		}
		q0, on0 = q, p.OnCurve
	}
	if on0 {
		r.Add1(start)
	} else {
		r.Add2(q0, start)
	}
}
