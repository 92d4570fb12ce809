package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/replay"
)

type View int

const (
	ViewBars View = iota
	ViewBoxes
	ViewDots
)

var viewNames = []string{"bars", "boxes", "dots"}

func (v View) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return "bars"
}

func (v View) Next() View { return View((int(v) + 1) % len(viewNames)) }

// ParseView maps a name to a View, defaulting to bars.
func ParseView(name string) View {
	for i, n := range viewNames {
		if n == name {
			return View(i)
		}
	}
	return ViewBars
}

// Render draws the frame's array in the given view.
func Render(v View, f replay.Frame, theme Theme, width, height int) string {
	switch v {
	case ViewBoxes:
		return RenderBoxes(f, theme, width)
	case ViewDots:
		return RenderDots(f, theme, width, height)
	default:
		return RenderBars(f, theme, width, height)
	}
}

func maxValue(a []int) int {
	m := 1
	for _, v := range a {
		if v > m {
			m = v
		}
	}
	return m
}

// barLayout fits n bars into width columns and returns the bar width and
// gap. When n exceeds width only the first width bars are drawn.
func barLayout(n, width int) (bar, gap, shown int) {
	if n == 0 || width <= 0 {
		return 0, 0, 0
	}
	if n > width {
		return 1, 0, width
	}
	if 2*n-1 <= width {
		bar = (width - (n - 1)) / n
		return bar, 1, n
	}
	return 1, 0, n
}

// RenderBars draws one vertical bar per element, scaled so the largest value
// spans height rows. Values are printed under the bars when they fit.
func RenderBars(f replay.Frame, theme Theme, width, height int) string {
	a := f.Array
	bar, gap, shown := barLayout(len(a), width)
	if shown == 0 || height <= 0 {
		return Subtle.Render("(empty)")
	}

	top := maxValue(a)
	heights := make([]int, shown)
	styles := make([]lipgloss.Style, shown)
	for i := 0; i < shown; i++ {
		h := 0
		if a[i] > 0 {
			h = (a[i]*height + top - 1) / top
		}
		heights[i] = h
		styles[i] = lipgloss.NewStyle().Foreground(theme.Color(f.ColorAt(i)))
	}

	block := strings.Repeat("█", bar)
	blank := strings.Repeat(" ", bar)
	spacer := strings.Repeat(" ", gap)

	var b strings.Builder
	for level := height; level >= 1; level-- {
		for i := 0; i < shown; i++ {
			if i > 0 {
				b.WriteString(spacer)
			}
			if heights[i] >= level {
				b.WriteString(styles[i].Render(block))
			} else {
				b.WriteString(blank)
			}
		}
		b.WriteString("\n")
	}

	if labels, ok := valueRow(a[:shown], bar, gap); ok {
		b.WriteString(Subtle.Render(labels) + "\n")
	}
	return b.String()
}

func valueRow(a []int, bar, gap int) (string, bool) {
	var b strings.Builder
	for i, v := range a {
		s := strconv.Itoa(v)
		if len(s) > bar {
			return "", false
		}
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		pad := bar - len(s)
		b.WriteString(strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2))
	}
	return b.String(), true
}

// RenderBoxes draws each element as a coloured cell, wrapping at width.
func RenderBoxes(f replay.Frame, theme Theme, width int) string {
	a := f.Array
	if len(a) == 0 {
		return Subtle.Render("(empty)")
	}

	cell := 1
	for _, v := range a {
		if l := len(strconv.Itoa(v)); l > cell {
			cell = l
		}
	}
	boxWidth := cell + 2

	var lines []string
	var line []string
	used := 0
	for i, v := range a {
		style := lipgloss.NewStyle().
			Background(theme.Color(f.ColorAt(i))).
			Foreground(theme.Backdrop).
			Bold(f.Highlight.Has(i))
		box := style.Render(fmt.Sprintf(" %*d ", cell, v))
		if used > 0 && used+boxWidth+1 > width {
			lines = append(lines, strings.Join(line, " "))
			line, used = nil, 0
		}
		line = append(line, box)
		used += boxWidth + 1
	}
	lines = append(lines, strings.Join(line, " "))

	var idx []string
	if len(lines) == 1 {
		for i := range a {
			idx = append(idx, fmt.Sprintf("%*d", boxWidth, i))
		}
		lines = append(lines, Subtle.Render(strings.Join(idx, " ")))
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderDots plots the array on a braille canvas. Each cell takes the colour
// of the element drawn in it.
func RenderDots(f replay.Frame, theme Theme, width, height int) string {
	a := f.Array
	if len(a) == 0 || width <= 0 || height <= 0 {
		return Subtle.Render("(empty)")
	}

	c := NewCanvas(width, height)
	c.Plot(a, maxValue(a))

	owner := make([]int, c.Width)
	for i := range owner {
		owner[i] = -1
	}
	for i := range a {
		col := c.Column(i, len(a)) / 2
		if col < len(owner) && (owner[col] == -1 || f.Highlight.Has(i)) {
			owner[col] = i
		}
	}

	var b strings.Builder
	for _, row := range c.Grid {
		for col, r := range row {
			if owner[col] < 0 || r == brailleBlank {
				b.WriteRune(r)
				continue
			}
			style := lipgloss.NewStyle().Foreground(theme.Color(f.ColorAt(owner[col])))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// StatusLines returns the label and detail of a frame styled by outcome.
func StatusLines(f replay.Frame, theme Theme) (string, string) {
	label := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(f.Label)

	detailColor := theme.Muted
	switch f.Outcome {
	case replay.OutcomeSorted:
		detailColor = theme.Complete
	case replay.OutcomeFound:
		detailColor = theme.Match
	case replay.OutcomeNotFound, replay.OutcomeFailed:
		detailColor = theme.Error
	}
	detail := lipgloss.NewStyle().Foreground(detailColor).Render(f.Detail)
	return label, detail
}

// IdleFrame wraps an array that is not being replayed.
func IdleFrame(a []int) replay.Frame {
	return replay.Frame{
		Array:     a,
		Highlight: replay.Highlight{Index: -1, Other: -1, Kind: replay.HighlightNone},
		Color:     replay.ColorIdle,
	}
}
