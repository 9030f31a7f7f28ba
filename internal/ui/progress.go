// Package ui renders scaffold progress as a small terminal UI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"etxdir/internal/scaffold"
)

const recentEntries = 8

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	existsStyle  = lipgloss.NewStyle().Faint(true)
)

type progressModel struct {
	title   string
	events  <-chan scaffold.Event
	spinner spinner.Model
	prog    progress.Model
	total   int
	seen    int
	recent  []scaffold.Event
	width   int
	done    bool
}

type eventMsg scaffold.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model fed by scaffold events.
// total is the number of entries the tree will materialize.
func NewProgressModel(title string, total int, events <-chan scaffold.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		total:   total,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.seen++
		m.recent = append(m.recent, scaffold.Event(msg))
		if len(m.recent) > recentEntries {
			m.recent = m.recent[len(m.recent)-recentEntries:]
		}
		var cmd tea.Cmd
		if m.total > 0 {
			cmd = m.prog.SetPercent(float64(m.seen) / float64(m.total))
		}
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.seen, m.total)
	if m.done {
		header = "done: " + header
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(m.prog.View())
	b.WriteString("\n\n")

	nameWidth := m.width - 14
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, ev := range m.recent {
		kind := "file"
		if ev.Dir {
			kind = "dir "
		}
		line := fmt.Sprintf("%s %s", kind, runewidth.Truncate(ev.Path, nameWidth, "…"))
		switch ev.Status {
		case scaffold.StatusExists:
			line = existsStyle.Render(line + " (exists)")
		default:
			line = createdStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
