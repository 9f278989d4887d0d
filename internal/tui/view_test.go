package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_ShowsTitleAndModeAndHelp(t *testing.T) {
	m := NewModel(5)
	v := m.View()
	if !strings.Contains(v, "scytale") {
		t.Fatalf("expected title in view; got: %q", v)
	}
	if !strings.Contains(v, "encrypt") {
		t.Fatalf("expected encrypt mode in view; got: %q", v)
	}
	if !strings.Contains(v, "esc: quit") {
		t.Fatalf("expected key help in view; got: %q", v)
	}
}

func TestView_ShowsResult(t *testing.T) {
	m := NewModel(5)
	m = typeRunes(t, m, "IAMHURTVERYBADLYHELP")
	if !strings.Contains(m.View(), "IRYYATBHMVAEHEDLURLP") {
		t.Fatal("expected ciphertext in view")
	}
}

func TestView_ShowsErrorInsteadOfResult(t *testing.T) {
	m := NewModel(5)
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyBackspace)
	m = typeRunes(t, m, "x")
	v := m.View()
	if !strings.Contains(v, "rod must be an integer") {
		t.Fatalf("expected rod error in view; got: %q", v)
	}
}

func TestView_EmptyAfterQuit(t *testing.T) {
	m := NewModel(5)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if next.(Model).View() != "" {
		t.Fatal("expected empty view while quitting")
	}
}

func TestView_StatusMessage(t *testing.T) {
	m := NewModel(5)
	m.statusMessage = "result copied to clipboard"
	if !strings.Contains(m.View(), "result copied to clipboard") {
		t.Fatal("expected status message in view")
	}
}
