// Package compose reads a new sentence and decides what to do with it.
package compose

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/editor"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/components"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

type step int

const (
	stepInput step = iota
	stepChoose
)

// ComposeScreen takes the English sentence to be translated.
type ComposeScreen struct {
	env     *screen.Env
	step    step
	input   components.TextInput
	menu    components.Menu
	pending *sentence.Sentence
}

var _ screen.Screen = (*ComposeScreen)(nil)

// New creates a ComposeScreen. Nothing is added to the bank until the
// author picks a continuation.
func New(env *screen.Env) *ComposeScreen {
	c := &ComposeScreen{
		env:   env,
		input: components.NewTextInput("Please enter your sentence.", "The slaves were fleeing from the city.", 0),
	}
	c.menu = components.NewMenu([]components.MenuItem{
		{Label: "Process this one now", Action: c.process},
		{Label: "Save and return to menu", Action: c.save},
		{Label: "Replace it", Action: c.retype},
	})
	return c
}

func (c *ComposeScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ComposeScreen) Title() string {
	return "New Sentence"
}

// Capturing keeps Esc local so it can step back from the choice menu.
func (c *ComposeScreen) Capturing() bool {
	return c.step == stepChoose
}

func (c *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyPressMsg)

	switch c.step {
	case stepInput:
		if isKey && kmsg.String() == "enter" {
			c.submit()
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd

	case stepChoose:
		if isKey && kmsg.String() == "esc" {
			return c, c.retype()
		}
		var cmd tea.Cmd
		c.menu, cmd = c.menu.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ComposeScreen) submit() {
	s, err := sentence.New(c.input.Value())
	if err != nil {
		c.input.Reject(err.Error())
		return
	}
	c.pending = s
	c.menu.Selected = 0
	c.step = stepChoose
}

func (c *ComposeScreen) add() {
	pos := c.env.Bank.Add(c.pending)
	c.env.Log.Info("sentence added", "position", pos+1, "id", c.pending.ID.String(),
		"words", c.pending.Active().Len())
}

func (c *ComposeScreen) process() tea.Cmd {
	c.add()
	next := editor.New(c.env, c.pending)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (c *ComposeScreen) save() tea.Cmd {
	c.add()
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (c *ComposeScreen) retype() tea.Cmd {
	c.pending = nil
	c.step = stepInput
	return c.input.Init()
}

func (c *ComposeScreen) KeyHints() []layout.KeyHint {
	if c.step == stepChoose {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Replace"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Accept"},
		{Key: "Esc", Description: "Discard"},
	}
}

func (c *ComposeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch c.step {
	case stepInput:
		b.WriteString(c.input.View())
	case stepChoose:
		b.WriteString(theme.Hint.Render("You entered:") + "\n")
		b.WriteString(theme.Card.Width(min(width-4, 76)).Render(c.pending.Original))
		b.WriteString("\n\n")
		b.WriteString(c.menu.View())
	}
	return b.String()
}
