package components

import "github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"

// Status is a one-line message under a screen's content.
type Status struct {
	Text  string
	IsErr bool
}

// Info shows text as a normal message.
func (s *Status) Info(text string) {
	s.Text, s.IsErr = text, false
}

// Err shows err as a warning. A nil err clears the line.
func (s *Status) Err(err error) {
	if err == nil {
		s.Clear()
		return
	}
	s.Text, s.IsErr = err.Error(), true
}

// Clear empties the line.
func (s *Status) Clear() {
	s.Text, s.IsErr = "", false
}

// View renders the line.
func (s Status) View() string {
	if s.Text == "" {
		return ""
	}
	if s.IsErr {
		return theme.Warning.Render("! " + s.Text)
	}
	return theme.Status.Render(s.Text)
}
