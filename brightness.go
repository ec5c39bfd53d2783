// Package txtpic measures how bright a character looks when rendered, so an
// image-to-text pipeline can pick characters whose ink density matches the
// intensity of the pixels they replace.
//
// Scores come from rasterizing the character in a single embedded font at a
// fixed size and averaging pixel coverage. They are only comparable with
// other scores from the same build.
package txtpic

// CharacterBrightness returns the brightness of r between 0 and 255.
//
// The character is shaped with the embedded font, stretched to
// GlyphWidthFactor times its height, placed with its baseline at the font
// ascent, and rasterized into a CanvasWidth x CanvasHeight coverage buffer.
// The score is the mean coverage, truncated. Characters without ink, such as
// space, score 0.
//
// The result is deterministic and CharacterBrightness is safe for concurrent
// use. It panics if the embedded font cannot be decoded.
func CharacterBrightness(r rune) int {
	return RenderCharacter(r).Brightness()
}

// RenderCharacter returns the coverage buffer CharacterBrightness reduces.
func RenderCharacter(r rune) *CoverageBuffer {
	f := defaultFont()
	buf := new(CoverageBuffer)

	g, ok := f.layoutRune(r)
	if !ok {
		return buf
	}
	o, err := f.loadOutline(g.Index)
	if err != nil {
		// Malformed glyph data reads as a glyph without ink.
		Logger().Warn("glyph outline unavailable", "rune", string(r), "err", err)
		return buf
	}

	sx := f.pixelScale(GlyphHeight * GlyphWidthFactor)
	sy := f.pixelScale(GlyphHeight)
	buf.fill(o.place(g, sx, sy, f.ascent*sy))
	return buf
}
