// Package picker provides a small terminal UI for choosing one
// bookmark from a ranked result list, with type-to-filter narrowing.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/svanberg/goto/internal/model"
	"github.com/svanberg/goto/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Picker is a bubbletea model for selecting one result from a list.
type Picker struct {
	results   []search.Result
	visible   []search.Result
	filter    textinput.Model
	cursor    int
	selected  bool
	cancelled bool
}

// New creates a Picker over ranked results.
func New(results []search.Result) Picker {
	filter := textinput.New()
	filter.Prompt = "> "
	filter.Placeholder = "filter"
	filter.Focus()

	return Picker{
		results: results,
		visible: results,
		filter:  filter,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.visible) > 0 {
				p.selected = true
			} else {
				p.cancelled = true
			}
			return p, tea.Quit

		case tea.KeyDown, tea.KeyCtrlN:
			if p.cursor < len(p.visible)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.refilter()
	return p, cmd
}

// refilter narrows the visible results to those fuzzy-matching the
// filter line, keeping the incoming rank order for equal relevance.
func (p *Picker) refilter() {
	query := strings.TrimSpace(p.filter.Value())
	if query == "" {
		p.visible = p.results
	} else {
		matches := fuzzy.FindFrom(query, rows(p.results))
		visible := make([]search.Result, len(matches))
		for i, m := range matches {
			visible[i] = p.results[m.Index]
		}
		p.visible = visible
	}
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// rows implements fuzzy.Source over the display text of each result.
type rows []search.Result

func (r rows) String(i int) string {
	return r[i].Bookmark.String()
}

func (r rows) Len() int {
	return len(r)
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Select bookmark (%d)", len(p.visible))))
	b.WriteString("\n")
	b.WriteString(p.filter.View())
	b.WriteString("\n\n")

	for i, result := range p.visible {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		label := result.Bookmark.URL
		if result.Bookmark.Title != "" {
			label = result.Bookmark.Title + "  " + label
		}
		b.WriteString(cursor + style.Render(label) + "\n")
		if len(result.Bookmark.Tags) > 0 {
			b.WriteString("   " + tagStyle.Render(strings.Join(result.Bookmark.Tags, " ")) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("up/down: move  Enter: select  Esc: cancel"))

	return b.String()
}

// Selected returns the chosen bookmark, or nil when cancelled.
func (p Picker) Selected() *model.Bookmark {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.visible) {
		return &p.visible[p.cursor].Bookmark
	}
	return nil
}

// Cancelled reports whether the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}

// Run shows the picker and returns the user's choice, or nil when the
// selection was cancelled.
func Run(results []search.Result) (*model.Bookmark, error) {
	program := tea.NewProgram(New(results))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	return final.(Picker).Selected(), nil
}
