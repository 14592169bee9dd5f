package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
)

// Screen is one page of the composer UI. Screens are stacked by the router;
// only the top one receives messages.
type Screen interface {
	// Init runs when the screen is pushed and again when it becomes the
	// top of the stack after a pop.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that show their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that are currently reading free
// text. While Capturing is true the app does not treat Esc or q as
// navigation.
type InputCapturer interface {
	Capturing() bool
}
