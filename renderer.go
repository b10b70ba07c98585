// Package video2ascii converts decoded video frames into character
// grids for terminal playback, with monochrome, 16-color ANSI, and
// 24-bit true color rendering strategies.
package video2ascii

import (
	"image"
	"strings"

	"github.com/ywbrian/video2ascii/imageutil"
)

// Renderer transcodes decoded frames into character-grid strings.
// Height and Width hold the requested grid size until PlanFor resolves
// them against a source; transcoding assumes the input frame is
// already resized to exactly Height x Width.
type Renderer struct {
	Mode   ColorMode
	Height int
	Width  int
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Defaults: ColorNone, height 60, width derived from the source
// aspect ratio at plan time.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Mode:   ColorNone,
		Height: DefaultHeight,
		Width:  0,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithColorMode sets the rendering strategy.
func WithColorMode(mode ColorMode) RendererOption {
	return func(r *Renderer) {
		r.Mode = mode
	}
}

// WithDimensions sets the requested grid size. A non-positive width
// requests auto-derivation from the source aspect ratio.
func WithDimensions(height, width int) RendererOption {
	return func(r *Renderer) {
		r.Height = height
		r.Width = width
	}
}

// PlanFor resolves the renderer's grid size against a source of the
// given pixel dimensions, deriving and clamping as needed.
func (r *Renderer) PlanFor(sourceWidth, sourceHeight int) {
	r.Height, r.Width = PlanDimensions(sourceWidth, sourceHeight, r.Height, r.Width)
}

// Transcode converts one decoded color frame, already resized to the
// renderer's grid, into a single owned string. Rows emit top first,
// each terminated by a newline.
func (r *Renderer) Transcode(img *imageutil.RGBAImage) string {
	switch r.Mode {
	case ColorANSI:
		return r.transcodeANSI(img)
	case ColorFull:
		return r.transcodeFull(img)
	default:
		return r.transcodeGray(imageutil.ToGrayscale(img))
	}
}

// TranscodeGray converts one grayscale frame, already resized to the
// renderer's grid, into a single owned string of bare glyphs.
func (r *Renderer) TranscodeGray(img *imageutil.GrayImage) string {
	return r.transcodeGray(img)
}

// TranscodeImage renders an arbitrary still image as a single frame,
// resizing it to the renderer's grid with the pure Go area scaler.
// The video path resizes with gocv before transcoding; this entry
// point serves still-image input. An unplanned grid resolves against
// the image's own dimensions.
func (r *Renderer) TranscodeImage(img image.Image) string {
	rgba := imageutil.RGBAImageFromImage(img)
	if r.Width <= 0 {
		r.PlanFor(rgba.Width(), rgba.Height())
	}

	if r.Mode == ColorNone {
		// Grayscale before resize, matching the video pipeline order.
		gray := imageutil.ToGrayscale(rgba)
		gray = imageutil.ResizeGray(gray, r.Width, r.Height, imageutil.InterpolationArea)
		return r.transcodeGray(gray)
	}

	resized := imageutil.Resize(rgba, r.Width, r.Height, imageutil.InterpolationArea)
	if r.Mode == ColorANSI {
		return r.transcodeANSI(resized)
	}
	return r.transcodeFull(resized)
}

func (r *Renderer) transcodeGray(img *imageutil.GrayImage) string {
	var sb strings.Builder
	sb.Grow((r.Width + 1) * r.Height)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			brightness := clamp(int(img.GetGray(x, y)), 0, 255)
			sb.WriteByte(BrightnessToGlyph(brightness))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) transcodeANSI(img *imageutil.RGBAImage) string {
	var sb strings.Builder
	// Worst case per cell: 5-byte color, glyph, 4-byte reset.
	sb.Grow((r.Width*10 + 1) * r.Height)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := img.GetRGB(x, y)
			red, green, blue := int(c.R), int(c.G), int(c.B)
			brightness := clamp((red+green+blue)/3, 0, 255)

			sb.WriteString(RGBToANSIColor(red, green, blue, brightness))
			sb.WriteByte(BrightnessToGlyph(brightness))
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) transcodeFull(img *imageutil.RGBAImage) string {
	var sb strings.Builder
	sb.Grow((r.Width*24 + 1) * r.Height)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := img.GetRGB(x, y)
			red, green, blue := int(c.R), int(c.G), int(c.B)
			brightness := clamp((red+green+blue)/3, 0, 255)

			sb.WriteString(TrueColorEscape(red, green, blue))
			sb.WriteByte(BrightnessToGlyph(brightness))
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
