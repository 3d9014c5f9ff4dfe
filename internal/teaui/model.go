package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/hotkey/internal/app"
	"github.com/dshills/hotkey/internal/logging"
)

var (
	yellow = lipgloss.Color("#FFFF00")
	green  = lipgloss.Color("#00FF00")

	defaultStyle = lipgloss.NewStyle()
	titleStyle   = defaultStyle.Bold(true).Foreground(yellow)
	focusedStyle = defaultStyle.Reverse(true)
	boundStyle   = defaultStyle.Foreground(yellow)
	countStyle   = defaultStyle.Foreground(lipgloss.Color("242"))
	statusStyle  = defaultStyle.Foreground(green)
)

// Model is a tea.Model over an App. The App is shared, not copied.
type Model struct {
	app    *app.App
	logger *logging.Logger
	title  string
	keys   KeyMap
	help   help.Model

	width  int
	height int
}

// New creates a Model.
func New(a *app.App, logger *logging.Logger, title string) Model {
	if logger == nil {
		logger = logging.NullLogger
	}
	return Model{
		app:    a,
		logger: logger.WithComponent("teaui"),
		title:  title,
		keys:   DefaultKeyMap,
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		id, mods, ok := ConvertKey(msg)
		if !ok {
			m.logger.Debug("ignoring key %s", msg)
			return m, nil
		}
		m.logger.Debug("key %q mods=%s", id, mods)
		m.app.HandleKey(id, mods)
		if m.app.Quitting() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteByte('\n')

	for _, line := range m.app.Lines() {
		b.WriteString(strings.Repeat("  ", line.Depth))
		switch {
		case line.Focused:
			b.WriteString(focusedStyle.Render(line.Label))
		case line.Listeners > 0:
			b.WriteString(boundStyle.Render(line.Label))
		default:
			b.WriteString(line.Label)
		}
		if line.Listeners > 0 {
			b.WriteString(countStyle.Render(fmt.Sprintf(" [%d]", line.Listeners)))
		}
		b.WriteByte('\n')
	}

	if status := m.app.Status(); len(status) > 0 {
		b.WriteByte('\n')
		for _, msg := range status {
			b.WriteString(statusStyle.Render(msg))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run runs a Model for a on the terminal until the app quits or ctx is
// cancelled.
func Run(ctx context.Context, a *app.App, logger *logging.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(a, logger, "hotkey"), opts...)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
