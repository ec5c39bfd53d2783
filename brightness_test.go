package txtpic

import (
	"errors"
	"sync"
	"testing"
)

// TestSpaceHasNoBrightness checks that characters without ink score 0
func TestSpaceHasNoBrightness(t *testing.T) {
	for _, r := range []rune{' ', '\u00a0'} {
		if got := CharacterBrightness(r); got != 0 {
			t.Errorf("CharacterBrightness(%U) = %d, want 0", r, got)
		}
	}
}

// TestBrightnessDeterministic checks repeated calls agree
func TestBrightnessDeterministic(t *testing.T) {
	for _, r := range []rune{'M', '.', '@', '█', 'g'} {
		first := CharacterBrightness(r)
		for i := 0; i < 3; i++ {
			if got := CharacterBrightness(r); got != first {
				t.Errorf("CharacterBrightness(%q) call %d = %d, first call gave %d", r, i, got, first)
			}
		}
	}
}

// TestBrightnessRange checks every scored character stays in [0,255]
func TestBrightnessRange(t *testing.T) {
	runes, _ := CharacterSet("all")
	runes = append(runes, 'é', 'Ж', 'λ', '\u0301', '\ufffd', 0x10FFFF)
	for _, r := range runes {
		got := CharacterBrightness(r)
		if got < 0 || got > 255 {
			t.Errorf("CharacterBrightness(%U) = %d, out of range", r, got)
		}
	}
}

// TestHeavyInkOutscoresLightInk checks scores follow the amount of ink
func TestHeavyInkOutscoresLightInk(t *testing.T) {
	tests := []struct {
		heavy, light rune
	}{
		{'█', '.'},
		{'M', '.'},
		{'@', '-'},
	}
	for _, tt := range tests {
		h, l := CharacterBrightness(tt.heavy), CharacterBrightness(tt.light)
		if h <= l {
			t.Errorf("CharacterBrightness(%q) = %d, want more than CharacterBrightness(%q) = %d",
				tt.heavy, h, tt.light, l)
		}
	}
}

// TestCapitalMBrightness checks a typical letter gets a visible score
func TestCapitalMBrightness(t *testing.T) {
	got := CharacterBrightness('M')
	if got <= 0 {
		t.Fatalf("CharacterBrightness('M') = %d, want > 0", got)
	}
	t.Logf("'M' brightness with %s: %d", FontName(), got)
}

// TestRenderCharacterMatchesBrightness checks the public buffer reduces to
// the same score
func TestRenderCharacterMatchesBrightness(t *testing.T) {
	buf := RenderCharacter('#')
	if got, want := buf.Brightness(), CharacterBrightness('#'); got != want {
		t.Errorf("RenderCharacter('#').Brightness() = %d, want %d", got, want)
	}
	for i, v := range buf {
		if v < 0 || v > 255 {
			t.Fatalf("cell %d = %v, out of range", i, v)
		}
	}
}

// TestBrightnessConcurrent checks concurrent callers agree with a serial run
func TestBrightnessConcurrent(t *testing.T) {
	runes := ASCIIChars()
	want := make(map[rune]int, len(runes))
	for _, r := range runes {
		want[r] = CharacterBrightness(r)
	}

	var wg sync.WaitGroup
	mismatches := make(chan rune, len(runes)*8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for j := range runes {
				r := runes[(j+offset)%len(runes)]
				if CharacterBrightness(r) != want[r] {
					mismatches <- r
				}
			}
		}(i * 11)
	}
	wg.Wait()
	close(mismatches)

	for r := range mismatches {
		t.Errorf("concurrent CharacterBrightness(%q) disagreed with serial result %d", r, want[r])
	}
}

// TestLoadFontRejectsGarbage checks decode failures carry ErrFontDecode
func TestLoadFontRejectsGarbage(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     nil,
		"garbage":   []byte("definitely not a font"),
		"truncated": fontData[:64],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loadFont(data)
			if !errors.Is(err, ErrFontDecode) {
				t.Errorf("loadFont(%s) error = %v, want ErrFontDecode", name, err)
			}
		})
	}
}

// TestEmbeddedFontMetrics checks the embedded font decodes with sane metrics
func TestEmbeddedFontMetrics(t *testing.T) {
	f, err := loadFont(fontData)
	if err != nil {
		t.Fatalf("Failed to load embedded font: %v", err)
	}
	if f.ascent <= 0 || f.descent >= 0 {
		t.Errorf("ascent = %v, descent = %v; want positive ascent and negative descent", f.ascent, f.descent)
	}
	if f.name == "" {
		t.Error("Embedded font has no name")
	}

	// The scaled ascent is the baseline; it must land inside the canvas.
	baseline := f.ascent * f.pixelScale(GlyphHeight)
	if baseline <= 0 || baseline >= CanvasHeight {
		t.Errorf("baseline at %v px, want inside (0, %d)", baseline, CanvasHeight)
	}
}

// TestDefaultFontShared checks every caller sees the same font resource
func TestDefaultFontShared(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*fontResource, 16)
	for i := range got {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			got[idx] = defaultFont()
		}(i)
	}
	wg.Wait()
	for i, f := range got {
		if f != got[0] {
			t.Errorf("defaultFont() call %d returned a different resource", i)
		}
	}
}
