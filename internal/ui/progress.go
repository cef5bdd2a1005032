package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"fsdriver/internal/batch"
)

type progressModel struct {
	title   string
	events  <-chan batch.Event
	spinner spinner.Model
	prog    progress.Model
	items   []jobItem
	width   int
	done    bool
}

type jobItem struct {
	label    string
	status   string
	finished bool
}

type eventMsg batch.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders batch-run
// progress from the runner's event channel.
func NewProgressModel(title string, jobs []batch.Job, events <-chan batch.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]jobItem, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, jobItem{label: job.Label(), status: "queued"})
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(batch.Event(msg))
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
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.label, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		b.WriteString(fmt.Sprintf("  %s %s", statusStyled, name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
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

func (m *progressModel) applyEvent(ev batch.Event) tea.Cmd {
	if ev.Index < 0 || ev.Index >= len(m.items) {
		return nil
	}
	item := &m.items[ev.Index]
	switch ev.Stage {
	case batch.StageCompiling:
		item.status = "compiling"
	case batch.StageDone:
		item.finished = true
		if ev.Failed {
			item.status = fmt.Sprintf("exit %d", ev.ExitCode)
		} else {
			item.status = "ok"
		}
	}

	finished := 0
	running := 0.0
	for _, it := range m.items {
		if it.finished {
			finished++
		} else if it.status == "compiling" {
			running = 0.5
		}
	}
	pct := (float64(finished) + running) / float64(len(m.items))
	return m.prog.SetPercent(pct)
}

func styleStatus(status string) lipgloss.Style {
	switch {
	case status == "ok":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case strings.HasPrefix(status, "exit "):
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case status == "compiling":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
