package steplist

import (
	"fmt"
	"strings"

	"github.com/andersonjoseph/primer/internal/components"
	"github.com/andersonjoseph/primer/internal/lesson"
	"github.com/andersonjoseph/primer/internal/messages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	stepDoneStyle    = lipgloss.NewStyle().Foreground(components.ColorGrey)
	stepCurrentStyle = lipgloss.NewStyle().Foreground(components.ColorGreen).Bold(true)
	stepPendingStyle = lipgloss.NewStyle().Foreground(components.ColorWhite)

	borderStyle = lipgloss.NewStyle()
)

type Model struct {
	ID      int
	titles  []string
	current int
	width   int
	height  int
}

func New(id int, steps []lesson.Step) Model {
	titles := make([]string, len(steps))
	for i := range steps {
		titles[i] = steps[i].Title
	}

	return Model{
		ID:     id,
		titles: titles,
	}
}

func (m Model) Init() tea.Cmd { return nil }
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case messages.StepChanged:
		m.current = int(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	lines := make([]string, len(m.titles))

	for i, title := range m.titles {
		marker := "  "
		style := stepPendingStyle

		switch {
		case i < m.current:
			style = stepDoneStyle
		case i == m.current:
			marker = "> "
			style = stepCurrentStyle
		}

		lines[i] = style.Width(m.width).Render(fmt.Sprintf("%s%d. %s", marker, i+1, title))
	}

	title := borderStyle.Render(fmt.Sprintf("Steps [%d]", m.ID))
	titleWidth := lipgloss.Width(title)
	topBorder := borderStyle.Render("┌") + title + borderStyle.Render(strings.Repeat("─", max(m.width-titleWidth, 1))) + borderStyle.Render("┐")
	bottomBorder := borderStyle.Render("└" + strings.Repeat("─", m.width) + "┘")
	verticalBorder := borderStyle.Render("│")

	renderedLines := []string{topBorder}
	for _, line := range lines {
		renderedLines = append(renderedLines, verticalBorder+line+verticalBorder)
	}
	renderedLines = append(renderedLines, bottomBorder)

	return strings.Join(renderedLines, "\n")
}
