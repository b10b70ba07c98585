package video2ascii

import "testing"

func TestRGBToANSIColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		r, g, b    int
		brightness int
		want       string
	}{
		// Dark override fires before any other check.
		{"black pixel", 0, 0, 0, 0, ansiBlack},
		{"dark red still black", 60, 10, 10, 26, ansiBlack},

		// Grayscale branch: spread below the variance threshold.
		{"mid gray is white", 150, 150, 150, 150, ansiWhite},
		{"bright gray", 230, 230, 230, 230, ansiBrightWhite},
		{"dim gray", 80, 80, 80, 80, ansiBrightBlack},
		// brightness > 200 is strict; exactly 200 falls to white.
		{"boundary 200 not bright white", 200, 200, 200, 200, ansiWhite},
		// brightness > 120 is strict too.
		{"boundary 120 is bright black", 120, 120, 120, 120, ansiBrightBlack},

		// Chromatic branch: strictly dominant channel, bright gated
		// on brightness > 128.
		{"dark red", 255, 0, 0, 85, ansiRed},
		{"bright red", 255, 120, 120, 165, ansiBrightRed},
		{"dark green", 0, 200, 0, 66, ansiGreen},
		{"bright green", 120, 255, 120, 165, ansiBrightGreen},
		{"dark blue", 0, 0, 255, 85, ansiBlue},
		{"bright blue", 120, 120, 255, 165, ansiBrightBlue},
		{"boundary 128 stays dark", 255, 0, 0, 128, ansiRed},

		// Channel ties fall through to white.
		{"yellow tie", 200, 200, 0, 133, ansiWhite},
		{"cyan tie", 0, 220, 220, 146, ansiWhite},
	}

	for _, tt := range tests {
		got := RGBToANSIColor(tt.r, tt.g, tt.b, tt.brightness)
		if got != tt.want {
			t.Errorf("%s: RGBToANSIColor(%d,%d,%d,%d) = %q, want %q",
				tt.name, tt.r, tt.g, tt.b, tt.brightness, got, tt.want)
		}
	}
}

func TestTrueColorEscape(t *testing.T) {
	t.Parallel()

	if got, want := TrueColorEscape(10, 20, 30), "\x1b[38;2;10;20;30m"; got != want {
		t.Errorf("TrueColorEscape(10,20,30) = %q, want %q", got, want)
	}
	if got, want := TrueColorEscape(255, 0, 255), "\x1b[38;2;255;0;255m"; got != want {
		t.Errorf("TrueColorEscape(255,0,255) = %q, want %q", got, want)
	}
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]ColorMode{
		"none": ColorNone,
		"ansi": ColorANSI,
		"full": ColorFull,
	} {
		got, err := ParseColorMode(name)
		if err != nil {
			t.Errorf("ParseColorMode(%q) returned error: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseColorMode(%q) = %d, want %d", name, got, want)
		}
	}

	if _, err := ParseColorMode("truecolor"); err == nil {
		t.Error("ParseColorMode should reject unknown mode names")
	}
}
