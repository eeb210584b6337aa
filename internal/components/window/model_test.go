package window

import (
	"strings"
	"testing"

	"github.com/andersonjoseph/primer/internal/messages"
	tea "github.com/charmbracelet/bubbletea"
)

type stubChild struct {
	content string
}

func (c stubChild) Init() tea.Cmd                       { return nil }
func (c stubChild) Update(tea.Msg) (tea.Model, tea.Cmd) { return c, nil }
func (c stubChild) View() string                        { return c.content }

func TestViewIncludesIDAndTitle(t *testing.T) {
	m := New(3, "Output", stubChild{content: "hello"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})

	view := m.View()
	if !strings.Contains(view, "[3] Output") {
		t.Fatalf("expected view to contain the window title, got:\n%s", view)
	}
	if !strings.Contains(view, "hello") {
		t.Fatalf("expected view to contain the child content, got:\n%s", view)
	}
}

func TestFocusFollowsWindowID(t *testing.T) {
	m := New(2, "Source", stubChild{})

	m, _ = m.Update(messages.WindowFocused(2))
	if !m.IsFocused {
		t.Fatal("expected window 2 to be focused")
	}

	m, _ = m.Update(messages.WindowFocused(1))
	if m.IsFocused {
		t.Fatal("expected window 2 to lose focus")
	}
}
