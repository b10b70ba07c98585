package video2ascii

import (
	"bufio"
	"io"
	"os"
	"time"
)

// Framerate bounds for explicit playback rates. DefaultFramerate
// paces playback when neither the caller nor the source metadata
// supplies a usable rate.
const (
	MinFramerate     = 1
	MaxFramerate     = 120
	DefaultFramerate = 30
)

// clearScreen resets the cursor and clears the visible area. Modern
// Windows terminals accept VT sequences, so one vocabulary serves
// every platform.
const clearScreen = ESC + "[2J" + ESC + "[H"

// FrameInterval derives the per-frame delay in milliseconds. An
// explicit positive framerate wins; otherwise the source's reported
// rate is used, falling back to DefaultFramerate when the source
// reports a non-positive rate.
func FrameInterval(framerate int, reportedFPS float64) float64 {
	if framerate > 0 {
		return 1000.0 / float64(framerate)
	}
	if reportedFPS <= 0 {
		reportedFPS = DefaultFramerate
	}
	return 1000.0 / reportedFPS
}

// Player replays a pre-rendered frame sequence at a fixed cadence.
// Playback is strictly ordered and runs to completion; there is no
// looping, seeking, or frame dropping.
type Player struct {
	frames   []string
	interval time.Duration
	out      *bufio.Writer
	sleep    func(time.Duration)
}

// NewPlayer creates a player over frames paced at intervalMs
// milliseconds per frame, truncated to whole milliseconds. Output is
// buffered onto w; a nil w plays to stdout.
func NewPlayer(frames []string, intervalMs float64, w io.Writer) *Player {
	if w == nil {
		w = os.Stdout
	}
	return &Player{
		frames:   frames,
		interval: time.Duration(int(intervalMs)) * time.Millisecond,
		out:      bufio.NewWriter(w),
		sleep:    time.Sleep,
	}
}

// Play clears the display, writes the frame, flushes, and sleeps the
// frame interval, once per frame in order. An empty sequence returns
// immediately without touching the display.
func (p *Player) Play() error {
	for _, frame := range p.frames {
		if _, err := p.out.WriteString(clearScreen); err != nil {
			return err
		}
		if _, err := p.out.WriteString(frame); err != nil {
			return err
		}
		if err := p.out.Flush(); err != nil {
			return err
		}
		p.sleep(p.interval)
	}
	return nil
}
