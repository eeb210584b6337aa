package outputview

import (
	"github.com/andersonjoseph/primer/internal/components"
	"github.com/andersonjoseph/primer/internal/messages"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var outputContentStyle lipgloss.Style = lipgloss.NewStyle().Foreground(components.ColorWhite)

type Model struct {
	ID        int
	IsFocused bool
	content   string
	width     int
	height    int
	viewport  viewport.Model
}

func New(id int) Model {
	return Model{
		ID:       id,
		viewport: viewport.New(30, 5),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.WindowFocused:
		m.IsFocused = int(msg) == m.ID
		return m, nil

	case messages.TranscriptUpdated:
		m.content = string(msg)
		m.viewport.SetContent(m.content)
		m.viewport.GotoBottom()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.viewport.Width = m.width
		m.viewport.Height = m.height

		return m, nil

	case tea.KeyMsg:
		if !m.IsFocused {
			return m, nil
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	return outputContentStyle.Render(m.viewport.View())
}
