package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// allLabel is shown when a select has no value.
const allLabel = "All"

// selectControl is a single-choice control cycling through "All" followed
// by its options. Index 0 is "All".
type selectControl struct {
	label   string
	options []string
	index   int
}

func newSelectControl(label string) selectControl {
	return selectControl{label: label}
}

// SetOptions replaces the options and resets the selection.
func (s *selectControl) SetOptions(options []string) {
	s.options = options
	s.index = 0
}

// Cycle moves the selection by step, wrapping around "All".
func (s *selectControl) Cycle(step int) {
	n := len(s.options) + 1
	s.index = ((s.index+step)%n + n) % n
}

// Reset selects "All".
func (s *selectControl) Reset() {
	s.index = 0
}

// Value returns the selected option, or "" for "All".
func (s selectControl) Value() string {
	if s.index == 0 || s.index > len(s.options) {
		return ""
	}
	return s.options[s.index-1]
}

func (s selectControl) View(focused bool) string {
	value := s.Value()
	if value == "" {
		value = allLabel
	}

	label := dimStyle.Render(s.label + ":")
	if focused {
		return label + " " + focusedStyle.Render("‹ "+value+" ›")
	}
	return label + " " + lipgloss.NewStyle().Render(value)
}
