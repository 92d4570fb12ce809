package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/san-kum/algoviz/internal/replay"
	"github.com/san-kum/algoviz/internal/viz"
)

var ErrNoFrames = errors.New("export: no frames recorded")

const (
	paletteBackdrop = iota
	paletteIdle
	paletteActive
	paletteComplete
	paletteProbe
	paletteMatch
)

// GIFRecorder turns replay frames into an animated GIF. Record matches
// replay.RenderFunc so a recorder can sit directly behind a scheduler.
type GIFRecorder struct {
	width, height int
	delay         time.Duration
	palette       color.Palette
	frames        []*image.Paletted
	delays        []int
}

func NewGIFRecorder(width, height int, delay time.Duration, theme viz.Theme) *GIFRecorder {
	rgb := func(c replay.Color) color.Color {
		r, g, b := viz.HexRGB(theme.Color(c))
		return color.RGBA{r, g, b, 255}
	}
	br, bg, bb := viz.HexRGB(theme.Backdrop)
	return &GIFRecorder{
		width:  width,
		height: height,
		delay:  delay,
		palette: color.Palette{
			paletteBackdrop: color.RGBA{br, bg, bb, 255},
			paletteIdle:     rgb(replay.ColorIdle),
			paletteActive:   rgb(replay.ColorActive),
			paletteComplete: rgb(replay.ColorComplete),
			paletteProbe:    rgb(replay.ColorProbe),
			paletteMatch:    rgb(replay.ColorMatch),
		},
	}
}

func paletteIndex(c replay.Color) uint8 {
	switch c {
	case replay.ColorActive:
		return paletteActive
	case replay.ColorComplete:
		return paletteComplete
	case replay.ColorProbe:
		return paletteProbe
	case replay.ColorMatch:
		return paletteMatch
	default:
		return paletteIdle
	}
}

// Record captures one frame.
func (g *GIFRecorder) Record(f replay.Frame) {
	img := image.NewPaletted(image.Rect(0, 0, g.width, g.height), g.palette)

	n := len(f.Array)
	if n > 0 {
		top := 1
		for _, v := range f.Array {
			if v > top {
				top = v
			}
		}
		slot := float64(g.width) / float64(n)
		gap := 0
		if slot >= 4 {
			gap = 1
		}
		for i, v := range f.Array {
			x0 := int(float64(i) * slot)
			x1 := int(float64(i+1)*slot) - gap
			h := 0
			if v > 0 {
				h = v * (g.height - 2) / top
			}
			idx := paletteIndex(f.ColorAt(i))
			for y := g.height - h; y < g.height; y++ {
				for x := x0; x < x1; x++ {
					img.SetColorIndex(x, y, idx)
				}
			}
		}
	}

	delay := int(g.delay / (10 * time.Millisecond))
	if f.Terminal() {
		delay = 150
	}
	if delay < 2 {
		delay = 2
	}
	g.frames = append(g.frames, img)
	g.delays = append(g.delays, delay)
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for i, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delays[i])
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIFRecorder) Save(path string) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
