package video2ascii

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ESC = ""

	ansiBlack = ESC + "[30m"
	ansiRed   = ESC + "[31m"
	ansiGreen = ESC + "[32m"
	ansiBlue  = ESC + "[34m"
	ansiWhite = ESC + "[37m"

	ansiBrightBlack = ESC + "[90m"
	ansiBrightRed   = ESC + "[91m"
	ansiBrightGreen = ESC + "[92m"
	ansiBrightBlue  = ESC + "[94m"
	ansiBrightWhite = ESC + "[97m"

	ansiReset = ESC + "[0m"

	trueColorPrefix = ESC + "[38;2;"
)

// Classification thresholds for the 16-color heuristic.
const (
	darkThreshold     = 30
	grayscaleVariance = 20
	veryBright        = 200
	brightCutoff      = 120
	mediumBright      = 128
)

// ColorMode selects the rendering strategy for transcoded frames.
type ColorMode uint8

const (
	// ColorNone renders bare glyphs with no escape sequences.
	ColorNone ColorMode = iota
	// ColorANSI classifies each pixel into the 16-color palette.
	ColorANSI
	// ColorFull emits exact 24-bit foreground colors per pixel.
	ColorFull
)

// ParseColorMode maps a mode name from the command line onto a
// ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "none":
		return ColorNone, nil
	case "ansi":
		return ColorANSI, nil
	case "full":
		return ColorFull, nil
	}
	return ColorNone, fmt.Errorf("unknown color mode: %s", s)
}

// RGBToANSIColor classifies an RGB sample into one of the terminal's
// standard foreground colors. Near-black pixels map to black
// regardless of hue. Pixels with low channel spread are treated as
// grayscale and map onto the gray axis by brightness. Chromatic
// pixels take the bucket of their strictly dominant channel, the
// bright variant above medium brightness; channel ties fall through
// to white. The decision order is part of the output contract and
// must not be reordered.
func RGBToANSIColor(r, g, b, brightness int) string {
	if brightness < darkThreshold {
		return ansiBlack
	}

	maxC := max(r, g, b)
	minC := min(r, g, b)
	if maxC-minC < grayscaleVariance {
		if brightness > veryBright {
			return ansiBrightWhite
		}
		if brightness > brightCutoff {
			return ansiWhite
		}
		return ansiBrightBlack
	}

	bright := brightness > mediumBright
	switch {
	case r > g && r > b:
		if bright {
			return ansiBrightRed
		}
		return ansiRed
	case g > r && g > b:
		if bright {
			return ansiBrightGreen
		}
		return ansiGreen
	case b > r && b > g:
		if bright {
			return ansiBrightBlue
		}
		return ansiBlue
	}
	return ansiWhite
}

// TrueColorEscape returns the 24-bit foreground escape carrying the
// literal r, g, b values with no quantization.
func TrueColorEscape(r, g, b int) string {
	var sb strings.Builder
	sb.Grow(len(trueColorPrefix) + 12)
	sb.WriteString(trueColorPrefix)
	sb.WriteString(strconv.Itoa(r))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(g))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(b))
	sb.WriteByte('m')
	return sb.String()
}
