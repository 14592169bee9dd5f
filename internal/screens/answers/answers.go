// Package answers lists a sentence's fragments with the answers bound to
// each, and marks the sentence complete.
package answers

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/options"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/components"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// AnswersScreen shows the answer bank of one sentence.
type AnswersScreen struct {
	env      *screen.Env
	sentence *sentence.Sentence
	list     components.List
	status   components.Status
	preview  string
}

var _ screen.Screen = (*AnswersScreen)(nil)

// New creates an AnswersScreen. The sentence's bank must already be sized
// for its active version.
func New(env *screen.Env, s *sentence.Sentence) *AnswersScreen {
	a := &AnswersScreen{env: env, sentence: s}
	a.refresh()
	return a
}

func (a *AnswersScreen) Init() tea.Cmd {
	a.refresh()
	return nil
}

func (a *AnswersScreen) refresh() {
	active := a.sentence.Active()
	bank := a.sentence.Answers()
	rows := make([]string, active.Len())
	for i, f := range active {
		b, err := bank.Binding(i)
		if err != nil {
			rows[i] = fmt.Sprintf("%2d  %s  %s", i+1, f, theme.Warning.Render(err.Error()))
			continue
		}
		rows[i] = fmt.Sprintf("%2d  %-24s %s", i+1, f, describe(b))
	}
	a.list.SetRows(rows)

	if body, err := a.sentence.Compile(); err != nil {
		a.preview = theme.Warning.Render(err.Error())
	} else {
		a.preview = body
	}
}

func describe(b answers.Binding) string {
	var s string
	switch b.Kind {
	case answers.BindingNone:
		return theme.Pending.Render("no answers")
	case answers.BindingLiteral:
		s = theme.Literal.Render("text: " + b.Literal)
	case answers.BindingGap:
		parts := make([]string, len(b.Options))
		for i, o := range b.Options {
			parts[i] = fmt.Sprintf("%s (%d%%)", o.Answer, o.Mark)
		}
		s = theme.GapMark.Render("gap: ") + strings.Join(parts, " | ")
	}
	if b.Mixed {
		s += theme.Warning.Render("  mixed: first option decides")
	}
	return s
}

func (a *AnswersScreen) Title() string {
	return "Answers"
}

func (a *AnswersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "enter", "e":
		next := options.New(a.env, a.sentence, a.list.Cursor)
		return a, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	case "c":
		if err := a.sentence.MarkComplete(); err != nil {
			a.status.Err(err)
			return a, nil
		}
		a.env.Log.Info("sentence completed", "id", a.sentence.ID.String(),
			"answers", a.sentence.Answers().Count())
		return a, func() tea.Msg {
			return router.PopToRootMsg{}
		}
	case "m":
		return a, func() tea.Msg {
			return router.PopToRootMsg{}
		}
	default:
		a.list, _ = a.list.Update(kmsg)
	}
	return a, nil
}

func (a *AnswersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Edit answers"},
		{Key: "c", Description: "Complete"},
		{Key: "m", Description: "Menu"},
	}
}

func (a *AnswersScreen) View(width, height int) string {
	status := "incomplete"
	if a.sentence.Completed() {
		status = "complete"
	}
	sections := []string{
		theme.Hint.Render(a.sentence.Original) + "  " + theme.Status.Render(status),
		strings.TrimRight(a.list.View(max(height-12, 3)), "\n"),
		theme.Hint.Render("Question text:") + "\n" +
			theme.Card.Width(min(width-4, 96)).Render(a.preview),
	}
	if v := a.status.View(); v != "" {
		sections = append(sections, v)
	}
	return "\n" + strings.Join(sections, "\n\n")
}
