package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	pathStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var spinner = []string{"|", "/", "-", "\\"}

type frameMsg time.Time

// tui is the terminal frontend. Each frameMsg is one redraw and polls the
// picker once.
type tui struct {
	p        *picker
	title    string
	interval time.Duration
	frame    int
}

func newTUI(cfg UIConfig, p *picker) *tui {
	return &tui{p: p, title: cfg.Title, interval: cfg.PollInterval}
}

func (m *tui) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *tui) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *tui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame++
		m.p.poll()
		return m, m.nextFrame()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "b", "enter":
			m.p.open(m.p.kind)
		case "f":
			m.p.open("file")
		case "m":
			m.p.open("files")
		case "d":
			m.p.open("dir")
		case "s":
			m.p.open("save")
		case "c":
			m.p.copyPath()
		}
	}
	return m, nil
}

func (m *tui) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	path := m.p.path
	if path == "" {
		path = "(no path selected)"
	}
	b.WriteString(pathStyle.Render(path))
	b.WriteString("\n")

	if m.p.busy() {
		b.WriteString(busyStyle.Render(spinner[m.frame%len(spinner)] + " "))
	}
	b.WriteString(statusStyle.Render(m.p.status))
	b.WriteString("\n\n")

	help := "b browse (" + m.p.kind + ") • f file • m files • d dir • s save • c copy • q quit"
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

// RunTUI runs the terminal frontend until the user quits.
func RunTUI(cfg UIConfig, p *picker) error {
	_, err := tea.NewProgram(newTUI(cfg, p)).Run()
	return err
}
