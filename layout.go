package txtpic

import (
	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
	"math"
	"sync"
	"unicode"
)

// positionedGlyph is one shaped glyph. X and Y locate the glyph origin
// relative to the pen origin, in font units with y up.
type positionedGlyph struct {
	Index truetype.Index
	X, Y  float64
}

// HarfbuzzShaper keeps mutable buffers and must not be shared between
// goroutines, so shapers are pooled.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// layout shapes s left to right and returns its glyphs in visual order.
// Positions come out in font units because the shaping size is one pixel
// per unit.
func (f *fontResource) layout(s string) []positionedGlyph {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotextfont.NewFace(f.shaper),
		Size:      fixedFromFloat(float64(f.unitsPerEm)),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]positionedGlyph, len(output.Glyphs))
	var pen float64
	for i, g := range output.Glyphs {
		glyphs[i] = positionedGlyph{
			Index: truetype.Index(g.GlyphID),
			X:     pen + floatFromFixed(g.XOffset),
			Y:     floatFromFixed(g.YOffset),
		}
		pen += floatFromFixed(g.Advance)
	}
	return glyphs
}

// layoutRune lays out a single character and keeps the last glyph, which is
// the base glyph for everything the font maps one-to-one. A composed
// sequence (for example a dotted circle inserted before a lone combining
// mark) still resolves to its final glyph.
func (f *fontResource) layoutRune(r rune) (positionedGlyph, bool) {
	glyphs := f.layout(string(r))
	if len(glyphs) == 0 {
		return positionedGlyph{}, false
	}
	if len(glyphs) > 1 {
		Logger().Debug("layout produced multiple glyphs",
			"rune", string(r), "glyphs", len(glyphs))
	}
	return glyphs[len(glyphs)-1], true
}

// detectScript returns the script of the first non-whitespace rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedFromFloat(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func floatFromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
