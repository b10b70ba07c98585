package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	if got := img.GetRGB(5, 5); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageFromImageWrapsRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 1, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	img := RGBAImageFromImage(src)
	if img.RGBA != src {
		t.Error("*image.RGBA input should be wrapped, not copied")
	}
	if got := img.GetRGB(1, 1); got != (RGB{R: 9, G: 8, B: 7}) {
		t.Errorf("Expected {9 8 7}, got %v", got)
	}
}

func TestGrayImageGetSet(t *testing.T) {
	img := NewGrayImage(10, 10)
	img.SetGrayValue(3, 4, 128)
	if got := img.GetGray(3, 4); got != 128 {
		t.Errorf("Expected 128, got %d", got)
	}
}

func TestToGrayscaleBT601(t *testing.T) {
	img := NewRGBAImage(1, 1)
	img.SetRGB(0, 0, RGB{R: 255, G: 0, B: 0})

	gray := ToGrayscale(img)
	// 0.299 * 255 rounds to 76 under BT.601.
	if got := gray.GetGray(0, 0); got != 76 {
		t.Errorf("Expected luminance 76 for pure red, got %d", got)
	}

	img.SetRGB(0, 0, RGB{R: 200, G: 200, B: 200})
	gray = ToGrayscale(img)
	if got := gray.GetGray(0, 0); got != 200 {
		t.Errorf("Expected luminance 200 for uniform gray, got %d", got)
	}
}

func TestResizeDimensions(t *testing.T) {
	img := NewRGBAImage(100, 80)
	resized := Resize(img, 40, 20, InterpolationArea)
	if resized.Width() != 40 || resized.Height() != 20 {
		t.Errorf("Expected 40x20, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeGrayDimensions(t *testing.T) {
	img := NewGrayImage(100, 80)
	resized := ResizeGray(img, 40, 20, InterpolationArea)
	if resized.Width() != 40 || resized.Height() != 20 {
		t.Errorf("Expected 40x20, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizePreservesUniformColor(t *testing.T) {
	img := NewRGBAImage(64, 64)
	c := RGB{R: 120, G: 60, B: 30}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGB(x, y, c)
		}
	}

	resized := Resize(img, 16, 16, InterpolationArea)
	if got := resized.GetRGB(8, 8); got != c {
		t.Errorf("Uniform image should stay uniform after resize, got %v", got)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage("testdata/does-not-exist.png"); err == nil {
		t.Error("LoadImage should fail for a missing file")
	}
}
