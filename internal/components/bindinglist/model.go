package bindinglist

import (
	"fmt"
	"io"
	"strings"

	"github.com/andersonjoseph/primer/internal/lesson"
	"github.com/andersonjoseph/primer/internal/messages"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorWhite  = lipgloss.Color("15")
	colorGrey   = lipgloss.Color("7")
	colorPurple = lipgloss.Color("5")
	colorGreen  = lipgloss.Color("2")
)

type bindingStyle struct {
	name  lipgloss.Style
	value lipgloss.Style
}

var (
	noItemsStyle lipgloss.Style = lipgloss.NewStyle().Width(0).Foreground(colorGrey)

	paginatorStyleFocused lipgloss.Style = lipgloss.NewStyle().Foreground(colorGreen).PaddingRight(2)
	paginatorStyleDefault lipgloss.Style = lipgloss.NewStyle().Foreground(colorWhite).PaddingRight(2)

	bindingStyleDefault bindingStyle = bindingStyle{
		name:  lipgloss.NewStyle().Foreground(colorGrey),
		value: lipgloss.NewStyle().Foreground(colorGrey),
	}
	bindingStyleFocused bindingStyle = bindingStyle{
		name:  lipgloss.NewStyle().Foreground(colorPurple).Bold(true),
		value: lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
	}

	listFocusedStyle lipgloss.Style = lipgloss.NewStyle().Foreground(colorGreen)
	listDefaultStyle lipgloss.Style = lipgloss.NewStyle()
)

type Model struct {
	ID        int
	title     string
	isFocused bool
	width     int
	height    int
	list      list.Model
}

func New(id int, title string, bindings []lesson.Binding) Model {
	l := list.New(bindingsToListItems(bindings), listDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowFilter(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.Styles.PaginationStyle = paginatorStyleDefault
	l.Styles.NoItems = lipgloss.NewStyle().Width(0)
	l.Paginator = setupPagination(len(bindings))

	return Model{
		ID:    id,
		title: title,
		list:  l,
	}
}

func setupPagination(totalItems int) paginator.Model {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = 5
	p.SetTotalPages(totalItems)
	p.ArabicFormat = lipgloss.NewStyle().
		Margin(0).Padding(0).
		Align(lipgloss.Right).
		Render("%d of %d ")

	return p
}

func (m Model) Init() tea.Cmd { return nil }
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Height, msg.Width)
		return m, nil

	case messages.WindowFocused:
		m.isFocused = int(msg) == m.ID
		return m, nil

	case messages.NewBindings:
		m.list.SetItems(bindingsToListItems(msg))
		m.list.Paginator = setupPagination(len(msg))
		return m, nil
	}

	if !m.isFocused {
		m.list.Styles.PaginationStyle = paginatorStyleDefault
		return m, nil
	}

	m.list.Styles.PaginationStyle = paginatorStyleFocused

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m Model) View() string {
	var style lipgloss.Style
	if m.isFocused {
		style = listFocusedStyle
	} else {
		style = listDefaultStyle
	}

	width := m.list.Width()
	titleText := style.Render(fmt.Sprintf("%s [%d]", m.title, m.ID))
	titleWidth := lipgloss.Width(titleText)

	topBorder := style.Render("┌") + titleText + style.Render(strings.Repeat("─", max(width-titleWidth, 1))) + style.Render("┐")
	bottomBorder := style.Render("└" + strings.Repeat("─", width) + "┘")
	verticalBorder := style.Render("│")

	lines := strings.Split(m.list.View(), "\n")
	renderedLines := []string{topBorder}

	for _, line := range lines {
		renderedLines = append(renderedLines, verticalBorder+line+verticalBorder)
	}

	renderedLines = append(renderedLines, bottomBorder)
	return strings.Join(renderedLines, "\n")
}

func (m *Model) handleResize(h, w int) {
	m.width = w
	m.list.SetWidth(m.width)
	m.list.Styles.NoItems = noItemsStyle.Width(m.width)

	m.height = h
	m.list.SetHeight(m.height)
}

type listDelegate struct{}

func (d listDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bindingItem, ok := item.(listItem)
	if !ok {
		return
	}

	bindingItem.isFocused = m.Index() == index
	fmt.Fprint(w, bindingItem.Render(m.Width()))
}

func (d listDelegate) Height() int                               { return 1 }
func (d listDelegate) Spacing() int                              { return 0 }
func (d listDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

type listItem struct {
	binding   lesson.Binding
	isFocused bool
}

func (i listItem) FilterValue() string { return "" }

func (i listItem) Render(width int) string {
	var style bindingStyle
	if i.isFocused {
		style = bindingStyleFocused
	} else {
		style = bindingStyleDefault
	}

	name := style.name.Render(i.binding.Name + ": ")
	value := style.value.Render(i.binding.Value)

	return lipgloss.NewStyle().
		Width(width).
		Render(name + value)
}

func bindingsToListItems(bindings []lesson.Binding) []list.Item {
	items := make([]list.Item, len(bindings))

	for i := range bindings {
		items[i] = listItem{
			binding: bindings[i],
		}
	}

	return items
}
