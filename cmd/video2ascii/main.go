package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/ywbrian/video2ascii"
	"github.com/ywbrian/video2ascii/imageutil"
)

func main() {
	colorName := flag.String("color", "none",
		"Color mode: none, ansi, full")
	height := flag.Int("height", video2ascii.DefaultHeight,
		fmt.Sprintf("Target height in num chars [%d, %d]",
			video2ascii.MinHeight, video2ascii.MaxHeight))
	width := flag.Int("width", 0,
		fmt.Sprintf("Target width in num chars [%d, %d] (0 = auto from aspect ratio)",
			video2ascii.MinWidth, video2ascii.MaxWidth))
	framerate := flag.Int("framerate", 0,
		fmt.Sprintf("Target frames per second [%d, %d] (0 = auto from source)",
			video2ascii.MinFramerate, video2ascii.MaxFramerate))
	fit := flag.Bool("fit", false,
		"Cap dimensions to the current terminal size")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	mode, err := video2ascii.ParseColorMode(*colorName)
	if err != nil {
		fatal(err.Error())
	}
	if *height < video2ascii.MinHeight || *height > video2ascii.MaxHeight {
		fatal("target height is out of bounds")
	}
	if *width != 0 && (*width < video2ascii.MinWidth || *width > video2ascii.MaxWidth) {
		fatal("target width is out of bounds")
	}
	if *framerate != 0 && (*framerate < video2ascii.MinFramerate || *framerate > video2ascii.MaxFramerate) {
		fatal("target framerate is out of bounds")
	}

	renderer := video2ascii.NewRenderer(
		video2ascii.WithColorMode(mode),
		video2ascii.WithDimensions(*height, *width),
	)

	if isStillImage(path) {
		renderStill(renderer, path, *fit)
		return
	}

	src, err := video2ascii.OpenVideo(path)
	if err != nil {
		fatal(err.Error())
	}
	defer src.Close()

	srcWidth, srcHeight := src.Dimensions()
	renderer.PlanFor(srcWidth, srcHeight)
	if *fit {
		renderer.Height, renderer.Width = capToTerminal(renderer.Height, renderer.Width)
	}

	intervalMs := video2ascii.FrameInterval(*framerate, src.FPS())

	frames, err := src.LoadFrames(renderer)
	if err != nil {
		fatal(err.Error())
	}

	player := video2ascii.NewPlayer(frames, intervalMs, os.Stdout)
	if err := player.Play(); err != nil {
		fatal(err.Error())
	}
}

// renderStill prints a single transcoded frame for a PNG/JPEG input,
// with no display clearing or pacing.
func renderStill(renderer *video2ascii.Renderer, path string, fit bool) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		fatal(err.Error())
	}

	bounds := img.Bounds()
	renderer.PlanFor(bounds.Dx(), bounds.Dy())
	if fit {
		renderer.Height, renderer.Width = capToTerminal(renderer.Height, renderer.Width)
	}

	os.Stdout.WriteString(renderer.TranscodeImage(img))
}

func isStillImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// capToTerminal shrinks planned dimensions to the visible terminal,
// leaving one row for the cursor after the final newline. The grid
// minimums still win on very small terminals.
func capToTerminal(height, width int) (int, int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols == 0 || rows == 0 {
		cols, rows = 80, 24
	}
	if height > rows-1 {
		height = rows - 1
	}
	if width > cols {
		width = cols
	}
	if height < video2ascii.MinHeight {
		height = video2ascii.MinHeight
	}
	if width < video2ascii.MinWidth {
		width = video2ascii.MinWidth
	}
	return height, width
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: video2ascii [options] <video_path>\n\n"+
		"Renders a video (or a PNG/JPEG still) as animated ASCII in the terminal.\n\n"+
		"Options:\n")
	flag.PrintDefaults()
}
