// Package answerform collects one answer option: the answer text, a mark
// and a feedback line.
package answerform

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/components"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

type step int

const (
	stepAnswer step = iota
	stepMark
	stepFeedback
	stepCustom
)

// FormScreen adds a new option to a fragment, or edits an existing one.
type FormScreen struct {
	env  *screen.Env
	bank *answers.Bank
	frag int
	opt  int // -1 when adding

	step     step
	input    components.TextInput
	custom   components.TextInput
	marks    components.Menu
	feedback components.Menu
	status   components.Status

	mark    int
	literal bool
	current answers.Option
}

var _ screen.Screen = (*FormScreen)(nil)

// NewAdd creates a form that appends an option to fragment frag.
func NewAdd(env *screen.Env, bank *answers.Bank, frag int) *FormScreen {
	f := newForm(env, bank, frag, -1)
	f.feedback = f.feedbackMenu(false)
	return f
}

// NewEdit creates a form for option opt of fragment frag, pre-filled with
// its current values. Saving turns the option back into a question.
func NewEdit(env *screen.Env, bank *answers.Bank, frag, opt int) *FormScreen {
	f := newForm(env, bank, frag, opt)
	if opts, err := bank.Options(frag); err == nil && opt >= 0 && opt < len(opts) {
		f.current = opts[opt]
	}
	f.input.SetValue(f.current.Answer)
	if i := slices.Index(env.Config.Marks, f.current.Mark); i >= 0 {
		f.marks.Selected = i
	}
	f.feedback = f.feedbackMenu(true)
	return f
}

func newForm(env *screen.Env, bank *answers.Bank, frag, opt int) *FormScreen {
	f := &FormScreen{
		env:    env,
		bank:   bank,
		frag:   frag,
		opt:    opt,
		input:  components.NewTextInput("Enter an answer.", "", 0),
		custom: components.NewTextInput("Enter your feedback.", "", 0),
	}

	items := make([]components.MenuItem, len(env.Config.Marks))
	for i, m := range env.Config.Marks {
		items[i] = components.MenuItem{
			Label: fmt.Sprintf("%d%%", m),
			Action: func() tea.Cmd {
				f.mark = m
				f.step = stepFeedback
				return nil
			},
		}
	}
	f.marks = components.NewMenu(items)
	return f
}

func (f *FormScreen) feedbackMenu(editing bool) components.Menu {
	var items []components.MenuItem
	if editing {
		items = append(items, components.MenuItem{
			Label:  "Keep: " + f.current.Feedback,
			Action: func() tea.Cmd { return f.save(f.current.Feedback) },
		})
	}
	for _, fb := range f.env.Config.Feedback {
		items = append(items, components.MenuItem{
			Label:  fb,
			Action: func() tea.Cmd { return f.save(fb) },
		})
	}
	if !editing {
		items = append(items, components.MenuItem{
			Label: answers.NotAQuestion,
			Action: func() tea.Cmd {
				f.literal = true
				return f.save(answers.NotAQuestion)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Input something else...",
		Action: func() tea.Cmd {
			f.step = stepCustom
			f.custom.Reset()
			return f.custom.Init()
		},
	})
	return components.NewMenu(items)
}

func (f *FormScreen) editing() bool {
	return f.opt >= 0
}

func (f *FormScreen) Init() tea.Cmd {
	return f.input.Init()
}

func (f *FormScreen) Title() string {
	if f.editing() {
		return fmt.Sprintf("Edit Answer %d", f.opt+1)
	}
	return "Add Answer"
}

// Capturing is always true: Esc steps back through the form.
func (f *FormScreen) Capturing() bool {
	return true
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyPressMsg)
	if isKey && kmsg.String() == "esc" {
		return f, f.back()
	}

	var cmd tea.Cmd
	switch f.step {
	case stepAnswer:
		if isKey && kmsg.String() == "enter" {
			if f.input.Value() == "" {
				f.input.Reject("An answer is required.")
				return f, nil
			}
			f.step = stepMark
			return f, nil
		}
		f.input, cmd = f.input.Update(msg)
	case stepMark:
		f.marks, cmd = f.marks.Update(msg)
	case stepFeedback:
		f.feedback, cmd = f.feedback.Update(msg)
	case stepCustom:
		if isKey && kmsg.String() == "enter" {
			return f, f.save(f.custom.Value())
		}
		f.custom, cmd = f.custom.Update(msg)
	}
	return f, cmd
}

func (f *FormScreen) back() tea.Cmd {
	f.status.Clear()
	switch f.step {
	case stepMark:
		f.step = stepAnswer
		return f.input.Init()
	case stepFeedback:
		f.step = stepMark
	case stepCustom:
		f.step = stepFeedback
	default:
		return func() tea.Msg {
			return router.PopScreenMsg{}
		}
	}
	return nil
}

func (f *FormScreen) save(feedback string) tea.Cmd {
	answer := f.input.Value()

	var err error
	if f.editing() {
		err = f.bank.Edit(f.frag, f.opt, func(o *answers.Option) {
			o.Answer = answer
			o.Mark = f.mark
			o.Feedback = feedback
		})
	} else {
		err = f.bank.Add(f.frag, answers.Option{
			IsQuestion: !f.literal,
			Mark:       f.mark,
			Answer:     answer,
			Feedback:   feedback,
		})
	}
	if err != nil {
		f.literal = false
		f.status.Err(err)
		return nil
	}

	f.env.Log.Debug("answer saved", "fragment", f.frag, "option", f.opt,
		"mark", f.mark, "question", !f.literal)
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	if f.step == stepMark || f.step == stepFeedback {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (f *FormScreen) View(width, height int) string {
	var sections []string

	switch f.step {
	case stepAnswer:
		sections = append(sections, f.input.View())
	case stepMark:
		sections = append(sections,
			theme.Hint.Render("Answer: ")+theme.Body.Render(f.input.Value()),
			theme.Title.Render("Choose a mark."),
			f.marks.View())
		if f.editing() {
			sections = append(sections, theme.Hint.Render(fmt.Sprintf("Current mark: %d%%", f.current.Mark)))
		}
	case stepFeedback, stepCustom:
		sections = append(sections,
			theme.Hint.Render("Answer: ")+theme.Body.Render(f.input.Value())+
				theme.Status.Render(fmt.Sprintf("  %d%%", f.mark)))
		if f.step == stepFeedback {
			sections = append(sections, theme.Title.Render("Choose the feedback."), f.feedback.View())
		} else {
			sections = append(sections, f.custom.View())
		}
	}

	if v := f.status.View(); v != "" {
		sections = append(sections, v)
	}
	return "\n" + strings.Join(sections, "\n\n")
}
