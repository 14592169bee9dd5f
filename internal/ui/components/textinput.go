package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an error line.
type TextInput struct {
	Label string
	Model textinput.Model
	err   string
}

// NewTextInput creates a new focused text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()

	return TextInput{
		Label: label,
		Model: ti,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Any edit clears a previous error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.err = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and any error.
func (t TextInput) View() string {
	var b strings.Builder
	if t.Label != "" {
		b.WriteString(theme.Body.Render(t.Label) + "\n")
	}
	b.WriteString(t.Model.View())
	if t.err != "" {
		b.WriteString("\n" + theme.Warning.Render(t.err))
	}
	return b.String()
}

// Value returns the current input with surrounding space removed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the input and moves the cursor to its end.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}

// Reset empties the input and clears the error.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.err = ""
}

// Reject shows msg under the input until the next key press.
func (t *TextInput) Reject(msg string) {
	t.err = msg
}
