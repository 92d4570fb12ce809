// Package tui draws replay frames straight to a terminal, without taking
// over the keyboard. The interactive front end lives in viz.
package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/replay"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	width       = 70
	height      = 16
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

type LiveRenderer struct {
	mu        sync.Mutex
	out       io.Writer
	view      viz.View
	theme     viz.Theme
	frameRate int
	lastFrame time.Time
	frames    int
	last      replay.Frame
}

// NewLiveRenderer draws at most frameRate frames per second; terminal frames
// are always drawn. A frameRate of 0 draws every frame.
func NewLiveRenderer(out io.Writer, view viz.View, theme viz.Theme, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		out:       out,
		view:      view,
		theme:     theme,
		frameRate: frameRate,
	}
}

// OnFrame has the replay.RenderFunc signature.
func (r *LiveRenderer) OnFrame(f replay.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = f
	if r.frameRate > 0 && !f.Terminal() {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()
	r.frames++
	fmt.Fprint(r.out, r.render(f))
}

func (r *LiveRenderer) render(f replay.Frame) string {
	var b strings.Builder
	b.WriteString(clearScreen)

	label, detail := viz.StatusLines(f, r.theme)
	b.WriteString("  " + label + "\n")
	b.WriteString("  " + viz.Separator(width) + "\n")

	for _, row := range strings.Split(strings.TrimRight(viz.Render(r.view, f, r.theme, width, height), "\n"), "\n") {
		b.WriteString("  " + row + "\n")
	}

	b.WriteString("  " + viz.Separator(width) + "\n")
	b.WriteString("  " + detail + "\n")
	if f.Total > 0 {
		b.WriteString(fmt.Sprintf("  %s %d/%d\n", viz.ProgressBar(f.Step, f.Total, width-12), f.Step, f.Total))
	}
	if line := metricsLine(f.Metrics); line != "" {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func metricsLine(m map[string]float64) string {
	if len(m) == 0 {
		return ""
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%.0f", name, m[name])
	}
	return strings.Join(parts, " ")
}

// Frames reports how many frames were drawn.
func (r *LiveRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Last returns the last frame received, drawn or not.
func (r *LiveRenderer) Last() replay.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
