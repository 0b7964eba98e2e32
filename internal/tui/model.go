package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bitraster/internal/life"
	"github.com/san-kum/bitraster/internal/render"
	"github.com/san-kum/bitraster/internal/view"
)

type mode int

const (
	modeBrowse mode = iota
	modeLife
)

// Options configure the interactive viewer.
type Options struct {
	Name  string        // source name shown in the info bar
	Theme string        // color theme name
	Delay time.Duration // interval between life generations
}

type model struct {
	vp     *view.Viewport
	engine *life.Engine
	mode   mode

	name  string
	delay time.Duration
	theme Theme
	style styles

	keys keyMap
	help help.Model

	showInfo bool
	showHelp bool

	popHist []float64

	width  int
	height int
	err    error
}

func newModel(vp *view.Viewport, opts Options) model {
	if opts.Delay <= 0 {
		opts.Delay = 250 * time.Millisecond
	}
	theme := GetTheme(opts.Theme)
	return model{
		vp:     vp,
		engine: life.New(),
		name:   opts.Name,
		delay:  opts.Delay,
		theme:  theme,
		style:  newStyles(theme),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.refresh()
	case tickMsg:
		// A tick from a chain that was disarmed in the meantime.
		if m.mode != modeLife {
			return m, nil
		}
		pop := m.engine.Step(m.vp.Buffer())
		m.popHist = append(m.popHist, float64(pop))
		if len(m.popHist) > 120 {
			m.popHist = m.popHist[1:]
		}
		return m, tick(m.delay)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "esc", "ctrl+c":
		return m, tea.Quit
	case "i", "I":
		m.showInfo = !m.showInfo
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "r", "R":
		if m.mode == modeLife || m.vp.Buffer() == nil {
			return m, nil
		}
		m.mode = modeLife
		m.engine.Reset()
		m.popHist = nil
		return m, tick(m.delay)
	}

	// Any other key returns to browsing over the file's own bits.
	m.leaveLife()

	switch msg.String() {
	case "h", "H", "left":
		m.vp.ScrollCols(-1)
	case "l", "L", "right":
		m.vp.ScrollCols(1)
	case "j", "J", "down":
		m.vp.ScrollRows(1)
	case "k", "K", "up":
		m.vp.ScrollRows(-1)
	case "pgdown":
		m.vp.PageDown()
	case "pgup":
		m.vp.PageUp()
	case "home":
		m.vp.JumpStart()
	case "end":
		m.vp.JumpEnd()
	}
	return m.refresh()
}

func (m *model) leaveLife() {
	if m.mode != modeLife {
		return
	}
	m.mode = modeBrowse
	m.vp.Invalidate()
}

func (m model) refresh() (model, tea.Cmd) {
	if m.width <= 0 || m.height <= 0 {
		return m, nil
	}
	if err := m.vp.Refresh(m.width, m.height); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 || m.vp.Buffer() == nil {
		return ""
	}
	if m.showHelp {
		return m.viewHelp()
	}

	style := m.style.frame
	if m.mode == modeLife {
		style = m.style.life
	}

	frameRows := m.height
	if m.showInfo {
		frameRows--
	}
	if frameRows <= 0 {
		return m.viewInfo()
	}

	frame := style.Render(render.Frame(m.vp.Buffer(), m.width, frameRows, m.vp.ColOffset()))
	if m.showInfo {
		return frame + "\n" + m.viewInfo()
	}
	return frame
}

func (m model) viewInfo() string {
	parts := []string{
		fmt.Sprintf("File Offset: 0x%08x", m.vp.Offset()),
		fmt.Sprintf("Bit Offset: 0x%08x", m.vp.ColOffset()),
	}
	if m.name != "" {
		parts = append(parts, m.name)
	}
	parts = append(parts, fmt.Sprintf("%d bytes", m.vp.Size()), m.vp.Order().String())
	if m.mode == modeLife {
		parts = append(parts,
			fmt.Sprintf("gen %d", m.engine.Generation()),
			fmt.Sprintf("pop %d", m.engine.Population()))
	}
	return m.style.bar.MaxWidth(m.width).Render(strings.Join(parts, "  "))
}

func (m model) viewHelp() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + m.style.title.Render("b i t r a s t e r") + "\n")
	b.WriteString("   " + m.style.muted.Render(strings.Repeat("─", 24)) + "\n\n")

	m.help.ShowAll = true
	b.WriteString("   " + strings.ReplaceAll(m.help.View(m.keys), "\n", "\n   ") + "\n")

	if len(m.popHist) > 1 && m.width > 24 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(m.popHist,
			asciigraph.Height(8),
			asciigraph.Width(m.width-12),
			asciigraph.Caption("population"),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n   " + m.style.muted.Render("? close help") + "\n")
	return b.String()
}

// Run opens the interactive viewer and blocks until the user quits.
func Run(vp *view.Viewport, opts Options) error {
	p := tea.NewProgram(newModel(vp, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
