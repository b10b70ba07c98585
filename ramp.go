package video2ascii

// glyphRamp orders density glyphs from darkest-appearing to
// lightest-appearing, so brightness 0 maps to '@' and 255 to a space.
// Shared read-only across all transcoding calls.
var glyphRamp = [...]byte{'@', '%', '#', '*', '+', '=', '-', ':', '.', ' '}

const rampLen = len(glyphRamp)

// BrightnessToGlyph maps a brightness value in [0,255] to a glyph in
// the density ramp. The index uses integer floor division, which keeps
// bucket boundaries bit-for-bit stable; callers clamp brightness
// before the lookup.
func BrightnessToGlyph(brightness int) byte {
	return glyphRamp[brightness*(rampLen-1)/255]
}
