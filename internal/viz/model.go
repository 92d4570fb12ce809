package viz

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/app"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/replay"
)

const (
	listWidth       = 26
	historyCapacity = 600
	speedStep       = 1.5
)

var (
	listStyle   = lipgloss.NewStyle().Padding(1, 2).Width(listWidth)
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(lipgloss.Color("240")).PaddingTop(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

type framesMsg []replay.Frame

// Model is the interactive visualizer.
type Model struct {
	app    *app.App
	buffer *frameBuffer
	algos  []experiment.Info
	cursor int

	view  View
	theme Theme
	frame replay.Frame

	inversions []float64

	editing  bool
	editBuf  string
	status   string
	showHelp bool

	width, height int
}

// NewModel builds the model and its app. The app renders into a buffer the
// model drains, so replay ticks never wait on the UI.
func NewModel(cfg *config.Config) (*Model, error) {
	buf := newFrameBuffer()
	a, err := app.New(cfg, buf.push)
	if err != nil {
		return nil, err
	}
	return newModel(a, buf, cfg), nil
}

func newModel(a *app.App, buf *frameBuffer, cfg *config.Config) *Model {
	return &Model{
		app:    a,
		buffer: buf,
		algos:  a.Registry().All(),
		view:   ParseView(cfg.View),
		theme:  GetTheme(cfg.Theme),
		frame:  IdleFrame(a.Array()),
		width:  100,
		height: 30,
	}
}

func (m *Model) waitForFrames() tea.Cmd {
	return func() tea.Msg {
		<-m.buffer.notify
		return framesMsg(m.buffer.drain())
	}
}

func (m *Model) Init() tea.Cmd { return m.waitForFrames() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m, m.editKey(msg)
		}
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case framesMsg:
		m.applyFrames(msg)
		return m, m.waitForFrames()
	}
	return m, nil
}

func (m *Model) applyFrames(frames []replay.Frame) {
	for _, f := range frames {
		if f.Step <= 1 && !f.Terminal() {
			m.inversions = m.inversions[:0]
		}
		if v, ok := f.Metrics["inversions"]; ok && !f.Terminal() && f.Highlight.Kind == replay.HighlightSwap {
			m.inversions = append(m.inversions, v)
			if len(m.inversions) > historyCapacity {
				m.inversions = m.inversions[1:]
			}
		}
		if f.Terminal() {
			log.Printf("replay finished: %s (%s) after %d/%d moves", f.Outcome, f.Label, f.Step, f.Total)
		}
		m.frame = f
	}
	if !m.app.Running() {
		m.frame.Array = m.app.Array()
	}
}

func (m *Model) selected() experiment.Info {
	return m.algos[m.cursor]
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	switch {
	case key.Matches(msg, keys.Quit):
		m.app.Stop()
		return tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.algos)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Start):
		info := m.selected()
		if info.Kind == experiment.KindSearch {
			m.editing = true
			m.editBuf = strconv.Itoa(m.app.RandomTarget())
			return nil
		}
		m.start(info.Name, 0)
	case key.Matches(msg, keys.Stop):
		if !m.app.Stop() {
			m.status = "nothing running"
		}
	case key.Matches(msg, keys.Shuffle):
		if err := m.app.Regenerate(); err != nil {
			m.status = err.Error()
		}
		m.resetFrame()
	case key.Matches(msg, keys.Faster):
		m.setSpeed(time.Duration(float64(m.app.Speed()) / speedStep))
	case key.Matches(msg, keys.Slower):
		m.setSpeed(time.Duration(float64(m.app.Speed()) * speedStep))
	case key.Matches(msg, keys.Grow):
		m.resize(m.app.Config().Size + 5)
	case key.Matches(msg, keys.Shrink):
		m.resize(m.app.Config().Size - 5)
	case key.Matches(msg, keys.View):
		m.view = m.view.Next()
	case key.Matches(msg, keys.Theme):
		m.theme = NextTheme(m.theme)
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) editKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		target, err := strconv.Atoi(strings.TrimSpace(m.editBuf))
		if err != nil {
			m.status = fmt.Sprintf("invalid target %q", m.editBuf)
			return nil
		}
		m.editing, m.editBuf = false, ""
		m.start(m.selected().Name, target)
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case "ctrl+c":
		m.app.Stop()
		return tea.Quit
	default:
		if s := msg.String(); len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || (c == '-' && m.editBuf == "") {
				m.editBuf += s
			}
		}
	}
	return nil
}

func (m *Model) start(name string, target int) {
	if _, err := m.app.Start(name, target); err != nil {
		m.status = err.Error()
		return
	}
	m.inversions = m.inversions[:0]
	log.Printf("started %s (target %d) on %d elements", name, target, len(m.app.Array()))
}

func (m *Model) setSpeed(d time.Duration) {
	if d < replay.MinDelay {
		d = replay.MinDelay
	}
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	if err := m.app.SetSpeed(d); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) resize(n int) {
	if n < 1 {
		n = 1
	}
	if err := m.app.SetSize(n); err != nil {
		m.status = err.Error()
		return
	}
	m.resetFrame()
}

func (m *Model) resetFrame() {
	m.frame = IdleFrame(m.app.Array())
	m.inversions = m.inversions[:0]
}

func (m *Model) View() string {
	var header strings.Builder
	header.WriteString(GradientText("ALGOVIZ", m.theme.Idle, m.theme.Complete))
	header.WriteString(Subtle.Render("  sorting & searching, one move at a time"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewList(), m.viewCanvas())

	var footer string
	if m.showHelp {
		footer = Panel.Render("KEYBOARD SHORTCUTS\n\n" + helpTable(keys.FullHelp()))
	} else {
		footer = helpLine(keys.ShortHelp(), m.theme)
	}
	return header.String() + "\n" + body + "\n" + footer
}

func (m *Model) viewList() string {
	var b strings.Builder
	kind := experiment.Kind(-1)
	for i, info := range m.algos {
		if info.Kind != kind {
			kind = info.Kind
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Subtle.Render(strings.ToUpper(kind.String())) + "\n")
		}
		if i == m.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("▸ "+info.Label) + "\n")
		} else {
			b.WriteString("  " + MetricLabel.Width(0).Render(info.Label) + "\n")
		}
	}

	cfg := m.app.Config()
	b.WriteString("\n" + MetricLabel.Render("Size") + MetricValue.Render(strconv.Itoa(cfg.Size)) + "\n")
	b.WriteString(MetricLabel.Render("Delay") + MetricValue.Render(m.app.Speed().String()) + "\n")
	b.WriteString(MetricLabel.Render("View") + MetricValue.Render(m.view.String()) + "\n")
	b.WriteString(MetricLabel.Render("Theme") + MetricValue.Render(m.theme.Name) + "\n")

	if m.editing {
		prompt := lipgloss.NewStyle().Foreground(m.theme.Probe).Bold(true).Render("target: ")
		b.WriteString("\n" + prompt + m.editBuf + "_\n")
		b.WriteString(KeyHint.Render("enter run · esc cancel") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + errStyle.Render(m.status) + "\n")
	}
	return listStyle.Render(b.String())
}

func (m *Model) viewCanvas() string {
	w := m.width - listWidth - 6
	if w < 20 {
		w = 20
	}
	h := m.height - 18
	if h < 6 {
		h = 6
	}

	var s strings.Builder
	s.WriteString(Render(m.view, m.frame, m.theme, w, h))

	var stats strings.Builder
	label, detail := StatusLines(m.frame, m.theme)
	if m.frame.Label == "" && m.frame.Detail == "" {
		label = Subtle.Render("select an algorithm and press enter")
	}
	stats.WriteString(label + "\n" + detail + "\n")

	if m.frame.Total > 0 {
		stats.WriteString(ProgressBar(m.frame.Step, m.frame.Total, 30))
		stats.WriteString(Subtle.Render(fmt.Sprintf(" %d/%d", m.frame.Step, m.frame.Total)) + "\n")
	}
	if len(m.frame.Metrics) > 0 {
		for _, name := range []string{"swaps", "writes", "probes", "displaced", "inversions"} {
			if v, ok := m.frame.Metrics[name]; ok {
				stats.WriteString(MetricLabel.Render(name) + MetricValue.Render(fmt.Sprintf("%.0f", v)) + "  ")
			}
		}
		stats.WriteString("\n")
	}
	if len(m.inversions) > 1 {
		chart := asciigraph.Plot(m.inversions, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("inversions"))
		stats.WriteString(graphStyle.Render(chart) + "\n")
	} else if len(m.inversions) == 1 {
		stats.WriteString(SparklineChart(m.inversions, 40) + "\n")
	}

	s.WriteString(statsStyle.Width(w).Render(stats.String()))
	return canvasStyle.Render(s.String())
}

// Run starts the interactive visualizer.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
