package viz

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Start   key.Binding
	Stop    key.Binding
	Shuffle key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Grow    key.Binding
	Shrink  key.Binding
	View    key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "navigate"),
	),
	Start: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "run"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s", "esc"),
		key.WithHelp("s", "stop"),
	),
	Shuffle: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new array"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Grow: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "more bars"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "fewer bars"),
	),
	View: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "view"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Shuffle, k.Faster, k.Slower, k.View, k.Help, k.Quit}
}

func (k keyMap) FullHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Stop, k.Shuffle, k.Faster, k.Slower, k.Grow, k.Shrink, k.View, k.Theme, k.Help, k.Quit}
}

func helpLine(bindings []key.Binding, theme Theme) string {
	keyStyle := KeyHint.Foreground(theme.Accent).Bold(true).Italic(false)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+KeyHint.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func helpTable(bindings []key.Binding) string {
	var b strings.Builder
	for _, k := range bindings {
		h := k.Help()
		b.WriteString("  " + padRight(h.Key, 8) + h.Desc + "\n")
	}
	return b.String()
}

func padRight(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}
