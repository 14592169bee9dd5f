package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// Confirm is a yes/no prompt. y runs OnYes; n or Esc runs OnNo.
type Confirm struct {
	Question string
	OnYes    func() tea.Cmd
	OnNo     func() tea.Cmd
	active   bool
}

// NewConfirm creates an active prompt.
func NewConfirm(question string, onYes, onNo func() tea.Cmd) Confirm {
	return Confirm{
		Question: question,
		OnYes:    onYes,
		OnNo:     onNo,
		active:   true,
	}
}

// Active reports whether the prompt is still waiting for an answer.
func (c Confirm) Active() bool {
	return c.active
}

// Update handles the answer keys. Other keys are swallowed.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !c.active || !ok {
		return c, nil
	}

	var action func() tea.Cmd
	switch kmsg.String() {
	case "y", "Y":
		action = c.OnYes
	case "n", "N", "esc":
		action = c.OnNo
	default:
		return c, nil
	}

	c.active = false
	if action != nil {
		return c, action()
	}
	return c, nil
}

// View renders the prompt.
func (c Confirm) View() string {
	if !c.active {
		return ""
	}
	return theme.Warning.Render(c.Question) + theme.Hint.Render("  (y/n)")
}
