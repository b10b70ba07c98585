package video2ascii

import "testing"

func TestBrightnessToGlyphEndpoints(t *testing.T) {
	t.Parallel()

	if got := BrightnessToGlyph(0); got != '@' {
		t.Errorf("BrightnessToGlyph(0) = %q, want '@'", got)
	}
	if got := BrightnessToGlyph(255); got != ' ' {
		t.Errorf("BrightnessToGlyph(255) = %q, want ' '", got)
	}
}

func TestBrightnessToGlyphMonotonic(t *testing.T) {
	t.Parallel()

	rampIndex := func(glyph byte) int {
		for i, g := range glyphRamp {
			if g == glyph {
				return i
			}
		}
		t.Fatalf("glyph %q not in ramp", glyph)
		return -1
	}

	prev := rampIndex(BrightnessToGlyph(0))
	for brightness := 1; brightness <= 255; brightness++ {
		idx := rampIndex(BrightnessToGlyph(brightness))
		if idx < prev {
			t.Fatalf("ramp index decreased at brightness %d: %d -> %d",
				brightness, prev, idx)
		}
		prev = idx
	}
}

func TestBrightnessToGlyphFloorDivision(t *testing.T) {
	t.Parallel()

	// 28*9/255 floors to 0, 29*9/255 floors to 1. Rounding instead
	// of flooring would move the boundary.
	if got := BrightnessToGlyph(28); got != '@' {
		t.Errorf("BrightnessToGlyph(28) = %q, want '@'", got)
	}
	if got := BrightnessToGlyph(29); got != '%' {
		t.Errorf("BrightnessToGlyph(29) = %q, want '%%'", got)
	}
}
