// Package watch provides the BubbleTea-based live terminal view of the
// lock-key states.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"locklight/internal/indicator"
	"locklight/internal/keystate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1)

	keyNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Width(8)

	onBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("35")).
			Padding(0, 1)

	offBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			MarginTop(1)
)

// tickMsg drives the poll cycle.
type tickMsg time.Time

// Model is the watch TUI model.
type Model struct {
	reader      keystate.Reader
	pollingRate time.Duration

	state      keystate.State
	sampled    bool
	lastChange time.Time

	keys KeyMap
	help help.Model

	width int
}

// New creates a watch model polling the given reader.
func New(reader keystate.Reader, pollingRate time.Duration) Model {
	return Model{
		reader:      reader,
		pollingRate: pollingRate,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
}

// Init starts the poll cycle.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick schedules the next poll.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.pollingRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, nil

	case tickMsg:
		current := m.reader.Read()
		if !m.sampled || current != m.state {
			m.state = current
			m.sampled = true
			m.lastChange = time.Now()
		}
		return m, m.tick()
	}

	return m, nil
}

// View renders the lock-key table.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Lock Keys"))
	sb.WriteString("\n")

	if !m.reader.Supported() {
		sb.WriteString(noticeStyle.Render(indicator.UnsupportedText))
		sb.WriteString("\n")
		sb.WriteString(footerStyle.Render(m.help.View(m.keys)))
		return sb.String()
	}

	rows := []struct {
		name string
		on   bool
	}{
		{"Caps", m.state.Caps},
		{"Num", m.state.Num},
		{"Scroll", m.state.Scroll},
	}

	for _, row := range rows {
		badge := offBadgeStyle.Render("OFF")
		if row.on {
			badge = onBadgeStyle.Render("ON")
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", keyNameStyle.Render(row.name), badge))
	}

	if m.sampled && !m.lastChange.IsZero() {
		sb.WriteString(footerStyle.Render(
			fmt.Sprintf("last change %s", humanize.Time(m.lastChange))))
		sb.WriteString("\n")
	}

	sb.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return sb.String()
}

// Run starts the watch TUI and blocks until the user quits.
func Run(reader keystate.Reader, pollingRate time.Duration) error {
	p := tea.NewProgram(New(reader, pollingRate))
	_, err := p.Run()
	return err
}
