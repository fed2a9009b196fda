package tui

import "github.com/charmbracelet/lipgloss"

// Colors for the segmented document view.
var (
	colorGutter   = lipgloss.Color("245")
	colorLabeled  = lipgloss.Color("22")
	colorSelected = lipgloss.Color("58")
	colorAccent   = lipgloss.Color("86")
	colorDim      = lipgloss.Color("240")
	colorStatusBg = lipgloss.Color("236")
)

// Styles holds the Lip Gloss style definitions for the viewer. A Styles
// value is injected into the model so tests can swap in plain styles.
type Styles struct {
	Gutter      lipgloss.Style
	Labeled     lipgloss.Style
	Selected    lipgloss.Style
	Unlabeled   lipgloss.Style
	Title       lipgloss.Style
	StatusBar   lipgloss.Style
	StatusLabel lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default look: dim line-number gutter, green
// tint for labeled blocks, brighter tint for the selected block.
func DefaultStyles() Styles {
	s := Styles{}

	s.Gutter = lipgloss.NewStyle().Foreground(colorGutter)
	s.Labeled = lipgloss.NewStyle().Background(colorLabeled)
	s.Selected = lipgloss.NewStyle().Background(colorSelected)
	s.Unlabeled = lipgloss.NewStyle()

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	s.StatusBar = lipgloss.NewStyle().Background(colorStatusBg).Padding(0, 1)
	s.StatusLabel = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	s.Help = lipgloss.NewStyle().Foreground(colorDim)

	return s
}
