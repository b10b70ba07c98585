package video2ascii

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/ywbrian/video2ascii/imageutil"
)

// maxFrameCount caps buffer pre-reservation so corrupt frame-count
// metadata cannot force a pathological allocation. Reported counts
// outside (0, maxFrameCount) skip reservation and let append grow
// the slice.
const maxFrameCount = 100000

// VideoSource wraps a gocv capture for sequential decoded-frame
// access and source metadata.
type VideoSource struct {
	cap  *gocv.VideoCapture
	path string
}

// OpenVideo opens the video at path for decoding.
func OpenVideo(path string) (*VideoSource, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open video %s: %w", path, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("could not open video %s", path)
	}
	return &VideoSource{cap: vc, path: path}, nil
}

// Dimensions reports the source frame size in pixels.
func (v *VideoSource) Dimensions() (width, height int) {
	return int(v.cap.Get(gocv.VideoCaptureFrameWidth)),
		int(v.cap.Get(gocv.VideoCaptureFrameHeight))
}

// FPS reports the container frame rate, zero or negative when the
// container does not carry one.
func (v *VideoSource) FPS() float64 {
	return v.cap.Get(gocv.VideoCaptureFPS)
}

// FrameCount reports the container frame count, possibly zero for
// unbounded or unknown sources.
func (v *VideoSource) FrameCount() int {
	return int(v.cap.Get(gocv.VideoCaptureFrameCount))
}

// Close releases the underlying capture.
func (v *VideoSource) Close() error {
	return v.cap.Close()
}

// LoadFrames decodes, resizes, and transcodes every frame eagerly,
// returning the rendered frames in source order. The renderer's grid
// must be planned before loading. Monochrome frames convert to
// grayscale before the resize; both paths resize with area averaging
// to reduce aliasing.
func (v *VideoSource) LoadFrames(r *Renderer) ([]string, error) {
	var frames []string
	if n := v.FrameCount(); n > 0 && n < maxFrameCount {
		frames = make([]string, 0, n)
	}

	size := image.Pt(r.Width, r.Height)
	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()
	resized := gocv.NewMat()
	defer resized.Close()

	for v.cap.Read(&frame) {
		if frame.Empty() {
			continue
		}

		if r.Mode == ColorNone {
			gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
			gocv.Resize(gray, &resized, size, 0, 0, gocv.InterpolationArea)
			img, err := resized.ToImage()
			if err != nil {
				return nil, fmt.Errorf("decode frame %d of %s: %w", len(frames), v.path, err)
			}
			frames = append(frames, r.TranscodeGray(imageutil.GrayImageFromImage(img)))
			continue
		}

		gocv.Resize(frame, &resized, size, 0, 0, gocv.InterpolationArea)
		img, err := resized.ToImage()
		if err != nil {
			return nil, fmt.Errorf("decode frame %d of %s: %w", len(frames), v.path, err)
		}
		frames = append(frames, r.Transcode(imageutil.RGBAImageFromImage(img)))
	}

	return frames, nil
}
