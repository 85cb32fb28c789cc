package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/svanberg/goto/internal/model"
	"github.com/svanberg/goto/internal/search"
)

func results() []search.Result {
	return []search.Result{
		{Bookmark: model.Bookmark{URL: "https://github.com/", Tags: []string{"git", "vcs"}}, Score: 1.0},
		{Bookmark: model.Bookmark{URL: "https://crates.io/", Tags: []string{"rust"}}, Score: 0.8},
		{Bookmark: model.Bookmark{URL: "https://docs.rs/", Tags: []string{"rust", "docs"}}, Score: 0.6},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_EnterSelectsFirst(t *testing.T) {
	p := New(results())

	updated, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	picked := updated.(Picker).Selected()

	if picked == nil {
		t.Fatal("expected a selection")
	}
	if picked.URL != "https://github.com/" {
		t.Errorf("expected first result selected, got %s", picked.URL)
	}
}

func TestPicker_CursorMovement(t *testing.T) {
	var m tea.Model = New(results())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamped at the end
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	picked := m.(Picker).Selected()
	if picked == nil {
		t.Fatal("expected a selection")
	}
	if picked.URL != "https://docs.rs/" {
		t.Errorf("expected last result, got %s", picked.URL)
	}
}

func TestPicker_EscCancels(t *testing.T) {
	p := New(results())

	updated, _ := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	final := updated.(Picker)

	if !final.Cancelled() {
		t.Error("expected cancellation")
	}
	if final.Selected() != nil {
		t.Error("expected no selection after cancel")
	}
}

func TestPicker_FilterNarrowsList(t *testing.T) {
	var m tea.Model = New(results())

	for _, r := range "docs" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	picked := m.(Picker).Selected()
	if picked == nil {
		t.Fatal("expected a selection")
	}
	if picked.URL != "https://docs.rs/" {
		t.Errorf("expected the filter to surface docs.rs, got %s", picked.URL)
	}
}

func TestPicker_FilterWithNoHitsCancelsOnEnter(t *testing.T) {
	var m tea.Model = New(results())

	for _, r := range "qqqqxxxx" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	final := m.(Picker)
	if final.Selected() != nil {
		t.Error("expected no selection when nothing matches the filter")
	}
}

func TestPicker_ViewListsResults(t *testing.T) {
	view := New(results()).View()

	for _, want := range []string{"github.com", "crates.io", "docs.rs"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
