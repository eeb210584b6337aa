package status

import (
	"github.com/andersonjoseph/primer/internal/components"
	"github.com/andersonjoseph/primer/internal/messages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(components.ColorOrange).
			Foreground(components.ColorOrange)

	hintStyle = lipgloss.NewStyle().
			Foreground(components.ColorPurple)
)

type Model struct {
	width   int
	height  int
	content string
	error   error
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case messages.Error:
		m.error = msg
		return m, nil

	case messages.UpdatedHint:
		m.content = string(msg)
		return m, nil

	case tea.KeyMsg:
		m.error = nil
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.error != nil {
		return alertStyle.Width(m.width).Render(wordwrap.String(m.error.Error(), max(m.width, 1)))
	}

	return hintStyle.Width(m.width).Render("1-4: navigate,", m.content)
}
