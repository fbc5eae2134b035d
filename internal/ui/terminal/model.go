package terminal

import (
	"fmt"
	"strings"

	"focusguard/internal/core/model"
	"focusguard/internal/core/monitor"
	"focusguard/internal/core/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B")).
			Padding(0, 1)
	breakTitleStyle = titleStyle.Background(lipgloss.Color("#51CF66"))
	timerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).MarginTop(1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	progressStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7DC6F"))
	activeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	inactiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).MarginTop(1)
	boxStyle        = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)
	warningStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Foreground(lipgloss.Color("#FF6B6B")).
			Padding(0, 2)
)

// Controller is the slice of the session clock the terminal drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	Snapshot() session.Snapshot
	IsBlockingActive() bool
}

type clockEventMsg struct {
	event session.Event
}

type eventsClosedMsg struct{}

// Model is the Bubble Tea model of the terminal timer.
type Model struct {
	controller  Controller
	events      <-chan session.Event
	sink        *Sink
	dismiss     func()
	snapshot    session.Snapshot
	warning     *monitor.Warning
	notice      string
	confirmQuit bool
	width       int
}

// New creates the model. events should come from the clock's Subscribe;
// dismiss is called when the user closes the warning, usually monitor.Dismiss.
func New(controller Controller, events <-chan session.Event, sink *Sink, dismiss func()) Model {
	return Model{
		controller: controller,
		events:     events,
		sink:       sink,
		dismiss:    dismiss,
		snapshot:   controller.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), waitForWarning(m.sink))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case clockEventMsg:
		m.applyEvent(msg.event)
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, tea.Quit
	case warningMsg:
		if msg.visible && m.snapshot.BlockingActive() {
			warning := msg.warning
			m.warning = &warning
		} else {
			m.warning = nil
		}
		return m, waitForWarning(m.sink)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" && key != "ctrl+c" {
		m.confirmQuit = false
	}

	switch key {
	case "q", "ctrl+c":
		if m.controller.IsBlockingActive() && !m.confirmQuit {
			m.confirmQuit = true
			m.notice = session.LeaveWarning + " Press q again to quit."
			return m, nil
		}
		return m, tea.Quit
	case "s", "enter", " ":
		m.controller.Start()
	case "p":
		m.controller.Pause()
	case "r":
		m.controller.Reset()
	case "d", "esc":
		if m.warning != nil && m.dismiss != nil {
			m.dismiss()
		}
		m.warning = nil
		return m, nil
	default:
		return m, nil
	}
	m.snapshot = m.controller.Snapshot()
	if !m.snapshot.BlockingActive() {
		m.warning = nil
	}
	return m, nil
}

func (m *Model) applyEvent(event session.Event) {
	m.snapshot = event.Snapshot
	switch event.Type {
	case session.EventWorkComplete, session.EventBreakComplete:
		m.notice = event.Message
	case session.EventPersistError:
		m.notice = "Could not save statistics."
	}
	if !m.snapshot.BlockingActive() {
		m.warning = nil
	} else if m.warning != nil {
		m.warning.Remaining = m.snapshot.Display()
	}
}

func (m Model) View() string {
	snapshot := m.snapshot

	title := titleStyle.Render("FOCUS")
	if snapshot.Phase == model.PhaseBreak {
		title = breakTitleStyle.Render("BREAK")
	}

	blocking := inactiveStyle.Render(snapshot.BlockingStatus())
	if snapshot.BlockingActive() {
		blocking = activeStyle.Render(snapshot.BlockingStatus())
	}

	lines := []string{
		title,
		timerStyle.Render(snapshot.Display()),
		statusStyle.Render(snapshot.Status()),
		progressStyle.Render(ProgressBar(snapshot.Progress(), progressWidth)),
		"",
		fmt.Sprintf("Sessions: %d   Minutes: %d   Streak: %d",
			snapshot.Stats.CompletedSessions, snapshot.Stats.TotalMinutes, snapshot.Stats.Streak),
		blocking,
	}
	if m.notice != "" {
		lines = append(lines, "", noticeStyle.Render(m.notice))
	}

	body := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	sections := []string{body}
	if m.warning != nil {
		sections = append(sections, warningStyle.Render(fmt.Sprintf(
			"Stay focused! %s is on your block list.\n%s left in this session. Press d to dismiss.",
			m.warning.Match, m.warning.Remaining)))
	}
	sections = append(sections, footerStyle.Render("s start • p pause • r reset • d dismiss • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ProgressBar renders percent as a fixed width bar.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func waitForEvent(events <-chan session.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return clockEventMsg{event: event}
	}
}

func waitForWarning(sink *Sink) tea.Cmd {
	if sink == nil {
		return nil
	}
	return func() tea.Msg {
		return <-sink.messages
	}
}
