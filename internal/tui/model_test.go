package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/itsmostafa/segview/internal/segment"
)

// plainStyles avoids terminal color codes in test output.
func plainStyles() *Styles {
	return &Styles{}
}

func testModel() Model {
	units := []segment.Unit{
		{Start: 1, End: 2, Name: "Intro", Labeled: true},
		{Start: 3, End: 3},
		{Start: 4, End: 5, Name: "Body", Labeled: true},
	}
	lines := []string{"one", "two", "three", "four", "five"}
	return NewModel(Config{Title: "doc.txt", Units: units, Lines: lines, Styles: plainStyles()})
}

func resize(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestModelSelection(t *testing.T) {
	t.Run("starts at first block", func(t *testing.T) {
		m := resize(testModel())
		if !strings.Contains(m.statusBar(), "Segment: Intro") {
			t.Errorf("status bar = %q, want Intro", m.statusBar())
		}
	})

	t.Run("j moves to next block", func(t *testing.T) {
		m := resize(testModel())
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		m = updated.(Model)
		if !strings.Contains(m.statusBar(), "unlabeled  line 3") {
			t.Errorf("status bar = %q, want unlabeled line 3", m.statusBar())
		}
	})

	t.Run("selection clamps at ends", func(t *testing.T) {
		m := resize(testModel())
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
		m = updated.(Model)
		if m.selected != 0 {
			t.Errorf("selected = %d, want 0", m.selected)
		}
		for i := 0; i < 10; i++ {
			updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
			m = updated.(Model)
		}
		if m.selected != 2 {
			t.Errorf("selected = %d, want 2", m.selected)
		}
	})

	t.Run("G jumps to last block", func(t *testing.T) {
		m := resize(testModel())
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
		m = updated.(Model)
		if !strings.Contains(m.statusBar(), "Segment: Body") {
			t.Errorf("status bar = %q, want Body", m.statusBar())
		}
	})

	t.Run("q quits", func(t *testing.T) {
		m := resize(testModel())
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})
}

func TestModelContent(t *testing.T) {
	t.Run("every line appears once with its number", func(t *testing.T) {
		m := resize(testModel())
		content := m.renderContent()
		rows := strings.Split(content, "\n")
		if len(rows) != 5 {
			t.Fatalf("expected 5 rows, got %d", len(rows))
		}
		for i, want := range []string{"one", "two", "three", "four", "five"} {
			if !strings.Contains(rows[i], want) {
				t.Errorf("row %d = %q, want %q", i+1, rows[i], want)
			}
		}
	})

	t.Run("whitespace lines keep their height", func(t *testing.T) {
		m := NewModel(Config{
			Units:  []segment.Unit{{Start: 1, End: 1}, {Start: 2, End: 2}},
			Lines:  []string{"", "   "},
			Styles: plainStyles(),
		})
		rows := strings.Split(m.renderContent(), "\n")
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
	})

	t.Run("empty document", func(t *testing.T) {
		m := NewModel(Config{Styles: plainStyles()})
		if got := m.renderContent(); got != "" {
			t.Errorf("content = %q, want empty", got)
		}
		if !strings.Contains(m.statusBar(), "empty document") {
			t.Errorf("status bar = %q", m.statusBar())
		}
	})
}
