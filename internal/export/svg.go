package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/algoviz/internal/replay"
	"github.com/san-kum/algoviz/internal/viz"
)

// FrameToSVG draws a frame as coloured bars with their values underneath.
func FrameToSVG(f replay.Frame, theme viz.Theme, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Backdrop))

	n := len(f.Array)
	if n > 0 {
		top := 1
		for _, v := range f.Array {
			if v > top {
				top = v
			}
		}

		const labelSpace = 18.0
		slot := float64(width) / float64(n)
		barW := slot * 0.8
		plotH := float64(height) - labelSpace - 4

		for i, v := range f.Array {
			h := 0.0
			if v > 0 {
				h = float64(v) / float64(top) * plotH
			}
			x := float64(i)*slot + (slot-barW)/2
			y := plotH - h + 2
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barW, h, theme.Color(f.ColorAt(i))))
			if slot >= 14 {
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11" text-anchor="middle">%d</text>
`, x+barW/2, float64(height)-4, theme.Text, v))
			}
		}
	}

	if f.Label != "" || f.Detail != "" {
		sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="%s" font-family="monospace" font-size="13">%s</text>
`, theme.Text, escape(strings.TrimSpace(f.Label+"  "+f.Detail))))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, theme viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, theme.Backdrop, theme.Idle))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&viz.PixelBit(dx, dy) != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws one or more series as polylines sharing both axes.
func SeriesToSVG(series map[string][]float64, width, height int, theme viz.Theme) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Backdrop))

	longest, top := 0, 0.0
	names := make([]string, 0, len(series))
	for name, values := range series {
		names = append(names, name)
		if len(values) > longest {
			longest = len(values)
		}
		for _, v := range values {
			if v > top {
				top = v
			}
		}
	}
	if longest < 2 || top == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}
	sort.Strings(names)

	colors := []string{string(theme.Active), string(theme.Complete), string(theme.Probe), string(theme.Match), string(theme.Idle)}
	for k, name := range names {
		values := series[name]
		if len(values) < 2 {
			continue
		}
		color := colors[k%len(colors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, v := range values {
			x := float64(i) / float64(longest-1) * float64(width)
			y := float64(height) - v/top*float64(height-20)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString(`"/>
`)
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="11">%s</text>
`, 8, 14+k*13, color, escape(name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
