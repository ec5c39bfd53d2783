package txtpic

import (
	"bytes"
	"errors"
	"fmt"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"sync"
)

// ErrFontDecode is returned when the embedded font bytes cannot be parsed.
// The font is baked into the binary, so this means the build is broken.
var ErrFontDecode = errors.New("txtpic: font decode failure")

// fontData is the embedded typeface every brightness score is measured
// against. Swapping it changes every score.
var fontData = goregular.TTF

// fontResource is the parsed, read-only form of the embedded font. The
// truetype side supplies outlines for the rasterizer; the go-text side
// supplies the shaper.
type fontResource struct {
	ttf    *truetype.Font
	shaper *gotextfont.Font
	name   string

	// Vertical metrics from the hhea table, in font units. Descent is
	// negative, as stored in the font.
	unitsPerEm int32
	ascent     float64
	descent    float64
}

var (
	defaultFontOnce sync.Once
	defaultFontRes  *fontResource
	defaultFontErr  error
)

// defaultFont returns the process-wide font resource, decoding the embedded
// font on first use. A decode failure panics; no score can be produced
// without the font.
func defaultFont() *fontResource {
	defaultFontOnce.Do(func() {
		defaultFontRes, defaultFontErr = loadFont(fontData)
		if defaultFontErr == nil {
			Logger().Debug("font loaded",
				"name", defaultFontRes.name,
				"unitsPerEm", defaultFontRes.unitsPerEm,
				"ascent", defaultFontRes.ascent,
				"descent", defaultFontRes.descent)
		}
	})
	if defaultFontErr != nil {
		panic(defaultFontErr)
	}
	return defaultFontRes
}

// FontName returns the full name of the embedded font.
func FontName() string {
	return defaultFont().name
}

// loadFont parses a TrueType font for both outline extraction and shaping.
func loadFont(data []byte) (*fontResource, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse outlines: %w", ErrFontDecode, err)
	}

	face, err := gotextfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse shaping tables: %w", ErrFontDecode, err)
	}

	fupe := ttf.FUnitsPerEm()
	if fupe <= 0 {
		return nil, fmt.Errorf("%w: invalid units per em %d", ErrFontDecode, fupe)
	}

	// A face sized at one pixel per font unit reports the hhea metrics
	// unscaled, in 26.6 fixed point.
	unitFace := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(fupe),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer unitFace.Close()
	metrics := unitFace.Metrics()

	ascent := float64(metrics.Ascent) / 64
	descent := -float64(metrics.Descent) / 64
	if ascent-descent <= 0 {
		return nil, fmt.Errorf("%w: invalid vertical metrics ascent=%v descent=%v",
			ErrFontDecode, ascent, descent)
	}

	return &fontResource{
		ttf:        ttf,
		shaper:     face.Font,
		name:       ttf.Name(truetype.NameIDFontFullName),
		unitsPerEm: fupe,
		ascent:     ascent,
		descent:    descent,
	}, nil
}

// pixelScale returns the pixels-per-font-unit factor that maps the font's
// ascent-to-descent extent onto the given pixel height.
func (f *fontResource) pixelScale(pixels float64) float64 {
	return pixels / (f.ascent - f.descent)
}

// outline is a glyph's contours detached from the truetype.GlyphBuf that
// loaded it. Coordinates are in font units, y up.
type outline struct {
	points []truetype.Point
	ends   []int
}

// loadOutline loads glyph i unhinted at font-unit scale.
func (f *fontResource) loadOutline(i truetype.Index) (outline, error) {
	var buf truetype.GlyphBuf
	scale := fixedFromFloat(float64(f.unitsPerEm))
	if err := buf.Load(f.ttf, scale, i, font.HintingNone); err != nil {
		return outline{}, fmt.Errorf("failed to load glyph %d: %w", i, err)
	}
	if len(buf.Ends) == 0 {
		return outline{}, nil
	}
	n := buf.Ends[len(buf.Ends)-1]
	o := outline{
		points: make([]truetype.Point, n),
		ends:   make([]int, len(buf.Ends)),
	}
	copy(o.points, buf.Points[:n])
	copy(o.ends, buf.Ends)
	return o, nil
}
