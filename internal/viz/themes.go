package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/replay"
)

// Theme maps element states and chrome to colours. All colours are hex so
// exporters can reuse them.
type Theme struct {
	Name     string
	Idle     lipgloss.Color
	Active   lipgloss.Color
	Complete lipgloss.Color
	Probe    lipgloss.Color
	Match    lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Backdrop lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:     "classic",
		Idle:     lipgloss.Color("#1e63d6"), // Blue
		Active:   lipgloss.Color("#e03131"), // Red
		Complete: lipgloss.Color("#ff922b"), // Orange
		Probe:    lipgloss.Color("#ffd43b"), // Yellow
		Match:    lipgloss.Color("#40c057"),
		Accent:   lipgloss.Color("#2f9e44"),
		Text:     lipgloss.Color("#f8f9fa"),
		Muted:    lipgloss.Color("#868e96"),
		Error:    lipgloss.Color("#ff0000"),
		Backdrop: lipgloss.Color("#101014"),
	}

	ThemeMidnight = Theme{
		Name:     "midnight",
		Idle:     lipgloss.Color("#3b5bdb"),
		Active:   lipgloss.Color("#cc5de8"),
		Complete: lipgloss.Color("#66d9e8"),
		Probe:    lipgloss.Color("#fcc419"),
		Match:    lipgloss.Color("#69db7c"),
		Accent:   lipgloss.Color("#9775fa"),
		Text:     lipgloss.Color("#e0e6ff"),
		Muted:    lipgloss.Color("#5c6a99"),
		Error:    lipgloss.Color("#ff6b6b"),
		Backdrop: lipgloss.Color("#0b1026"),
	}

	ThemeForest = Theme{
		Name:     "forest",
		Idle:     lipgloss.Color("#2b8a3e"),
		Active:   lipgloss.Color("#e8590c"),
		Complete: lipgloss.Color("#d9480f"),
		Probe:    lipgloss.Color("#fab005"),
		Match:    lipgloss.Color("#a9e34b"),
		Accent:   lipgloss.Color("#74b816"),
		Text:     lipgloss.Color("#ebfbee"),
		Muted:    lipgloss.Color("#5c7f63"),
		Error:    lipgloss.Color("#fa5252"),
		Backdrop: lipgloss.Color("#0d1f12"),
	}

	ThemeRetro = Theme{
		Name:     "retro",
		Idle:     lipgloss.Color("#00aa00"), // Green phosphor
		Active:   lipgloss.Color("#00ff00"),
		Complete: lipgloss.Color("#88ff88"),
		Probe:    lipgloss.Color("#ffff00"),
		Match:    lipgloss.Color("#ffffff"),
		Accent:   lipgloss.Color("#00cc00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Error:    lipgloss.Color("#ff0000"),
		Backdrop: lipgloss.Color("#001100"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Idle:     lipgloss.Color("#8b6b8c"),
		Active:   lipgloss.Color("#ff6b6b"), // Coral
		Complete: lipgloss.Color("#feca57"),
		Probe:    lipgloss.Color("#ff9ff3"),
		Match:    lipgloss.Color("#5fd068"),
		Accent:   lipgloss.Color("#ffc048"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Error:    lipgloss.Color("#ff4757"),
		Backdrop: lipgloss.Color("#2d1b2e"),
	}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeMidnight,
		ThemeForest,
		ThemeRetro,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Color returns the colour used for an element state.
func (t Theme) Color(c replay.Color) lipgloss.Color {
	switch c {
	case replay.ColorActive:
		return t.Active
	case replay.ColorComplete:
		return t.Complete
	case replay.ColorProbe:
		return t.Probe
	case replay.ColorMatch:
		return t.Match
	default:
		return t.Idle
	}
}
