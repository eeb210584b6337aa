package status

import (
	"errors"
	"strings"
	"testing"

	"github.com/andersonjoseph/primer/internal/messages"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsHint(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 1})
	m, _ = m.Update(messages.UpdatedHint("step 1 of 5"))

	if !strings.Contains(m.View(), "step 1 of 5") {
		t.Fatalf("expected hint in view, got: %s", m.View())
	}
}

func TestErrorReplacesHintUntilKeypress(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 1})
	m, _ = m.Update(messages.Error(errors.New("something broke")))

	if !strings.Contains(m.View(), "something broke") {
		t.Fatalf("expected error in view, got: %s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if strings.Contains(m.View(), "something broke") {
		t.Fatalf("expected error to clear on keypress, got: %s", m.View())
	}
}
