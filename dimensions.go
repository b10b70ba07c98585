package video2ascii

// Supported character-grid bounds. Outputs of PlanDimensions always
// land inside these.
const (
	MinHeight = 20
	MaxHeight = 120
	MinWidth  = 40
	MaxWidth  = 200

	DefaultHeight = 60
)

// charAspect compensates for terminal cells being roughly twice as
// tall as they are wide, so square source content renders square.
const charAspect = 0.5

// PlanDimensions computes the character-grid size for a source of the
// given pixel dimensions. A non-positive requestedWidth derives the
// width from the source aspect ratio under charAspect. Both
// dimensions clamp to the supported bounds after derivation, so an
// extreme aspect ratio saturates instead of failing.
func PlanDimensions(sourceWidth, sourceHeight, requestedHeight, requestedWidth int) (height, width int) {
	height = requestedHeight
	width = requestedWidth

	if width <= 0 {
		videoAspect := float64(sourceWidth) / float64(sourceHeight)
		width = int(float64(height) * videoAspect / charAspect)
	}

	height = clamp(height, MinHeight, MaxHeight)
	width = clamp(width, MinWidth, MaxWidth)
	return height, width
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
