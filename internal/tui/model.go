// Package tui implements the interactive terminal display surface: a
// scrollable view of the document where labeled blocks are tinted and the
// selected block's segment name is shown in the status bar. Selection
// stands in for the hover affordance of the browser surface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itsmostafa/segview/internal/segment"
)

// Config holds the initial setup for the viewer.
type Config struct {
	Title  string
	Units  []segment.Unit
	Lines  []string
	Styles *Styles
}

// Model is the bubbletea model for the segmented document viewer.
type Model struct {
	title    string
	units    []segment.Unit
	lines    []string
	styles   Styles
	selected int
	viewport viewport.Model
	ready    bool
}

// NewModel creates a viewer over the resolver's units and the raw lines.
func NewModel(cfg Config) Model {
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	return Model{
		title:  cfg.Title,
		units:  cfg.Units,
		lines:  cfg.Lines,
		styles: styles,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resizing, block selection and scrolling.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One line for the title, one for the status bar.
		height := msg.Height - 2
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.renderContent())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.moveSelection(1)
			return m, nil
		case "up", "k":
			m.moveSelection(-1)
			return m, nil
		case "g", "home":
			m.setSelection(0)
			return m, nil
		case "G", "end":
			m.setSelection(len(m.units) - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the title, the document viewport and the status bar.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.styles.Title.Render(m.title) + "\n" + m.viewport.View() + "\n" + m.statusBar()
}

func (m *Model) moveSelection(delta int) {
	m.setSelection(m.selected + delta)
}

func (m *Model) setSelection(index int) {
	if len(m.units) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.units) {
		index = len(m.units) - 1
	}
	if index == m.selected {
		return
	}
	m.selected = index
	if m.ready {
		m.viewport.SetContent(m.renderContent())
		m.scrollToSelection()
	}
}

// scrollToSelection keeps the selected block inside the viewport.
func (m *Model) scrollToSelection() {
	top := m.units[m.selected].Start - 1
	bottom := m.units[m.selected].End - 1
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// renderContent builds the document text: a dim line-number gutter and one
// styled row per physical line. Empty and whitespace-only lines get a
// single-space placeholder so blocks keep their height.
func (m *Model) renderContent() string {
	var sb strings.Builder
	for i, u := range m.units {
		style := m.styles.Unlabeled
		if u.Labeled {
			style = m.styles.Labeled
		}
		if i == m.selected {
			style = m.styles.Selected
		}
		for num := u.Start; num <= u.End && num <= len(m.lines); num++ {
			text := m.lines[num-1]
			if strings.TrimSpace(text) == "" {
				text = " "
			}
			sb.WriteString(m.styles.Gutter.Render(fmt.Sprintf("%4d │ ", num)))
			sb.WriteString(style.Render(text))
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// statusBar describes the selected block and the key bindings.
func (m *Model) statusBar() string {
	var status string
	switch {
	case len(m.units) == 0:
		status = "empty document"
	case m.units[m.selected].Labeled:
		u := m.units[m.selected]
		status = fmt.Sprintf("%s  lines %d-%d", m.styles.StatusLabel.Render("Segment: "+u.Name), u.Start, u.End)
	default:
		status = fmt.Sprintf("unlabeled  line %d", m.units[m.selected].Start)
	}
	help := m.styles.Help.Render("j/k: blocks  g/G: first/last  q: quit")
	return m.styles.StatusBar.Render(status + "  " + help)
}

// Run starts the viewer on the alternate screen and blocks until quit.
func Run(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
