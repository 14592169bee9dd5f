// Package options manages the answer options of a single fragment.
package options

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/answerform"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/components"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// OptionsScreen lists the options of one fragment: add, edit, mark as
// literal text, delete.
type OptionsScreen struct {
	env      *screen.Env
	sentence *sentence.Sentence
	frag     int
	opts     []answers.Option
	list     components.List
	status   components.Status
}

var _ screen.Screen = (*OptionsScreen)(nil)

// New creates an OptionsScreen for fragment frag of s.
func New(env *screen.Env, s *sentence.Sentence, frag int) *OptionsScreen {
	o := &OptionsScreen{env: env, sentence: s, frag: frag}
	o.refresh()
	return o
}

func (o *OptionsScreen) Init() tea.Cmd {
	o.refresh()
	return nil
}

func (o *OptionsScreen) refresh() {
	opts, err := o.sentence.Answers().Options(o.frag)
	if err != nil {
		o.status.Err(err)
		opts = nil
	}
	o.opts = opts

	rows := make([]string, len(opts))
	for i, opt := range opts {
		rows[i] = fmt.Sprintf("%2d. %s", i+1, optionRow(opt))
	}
	o.list.SetRows(rows)
}

func optionRow(opt answers.Option) string {
	if !opt.IsQuestion {
		return theme.Literal.Render(opt.Answer + "  (not a question)")
	}
	return fmt.Sprintf("%s  %s  %s",
		theme.Body.Render(opt.Answer),
		theme.Status.Render(fmt.Sprintf("%d%%", opt.Mark)),
		theme.Hint.Render(opt.Feedback))
}

func (o *OptionsScreen) Title() string {
	return fmt.Sprintf("Fragment %d", o.frag+1)
}

func (o *OptionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, nil
	}

	o.status.Clear()
	bank := o.sentence.Answers()
	cur := o.list.Cursor

	switch kmsg.String() {
	case "a":
		return o, push(answerform.NewAdd(o.env, bank, o.frag))
	case "e":
		if len(o.opts) == 0 {
			return o, nil
		}
		return o, push(answerform.NewEdit(o.env, bank, o.frag, cur))
	case "m":
		if len(o.opts) == 0 {
			return o, nil
		}
		o.status.Err(bank.MarkNonQuestion(o.frag, cur))
		o.refresh()
	case "x", "d":
		if len(o.opts) == 0 {
			return o, nil
		}
		if err := bank.Delete(o.frag, cur); err != nil {
			o.status.Err(err)
			return o, nil
		}
		o.env.Log.Debug("answer deleted", "id", o.sentence.ID.String(), "fragment", o.frag, "option", cur)
		o.refresh()
	case "enter":
		return o, func() tea.Msg {
			return router.PopScreenMsg{}
		}
	default:
		o.list, _ = o.list.Update(kmsg)
	}
	return o, nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (o *OptionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Add"},
		{Key: "e", Description: "Edit"},
		{Key: "m", Description: "Not a question"},
		{Key: "x", Description: "Delete"},
		{Key: "Enter", Description: "Accept"},
	}
}

func (o *OptionsScreen) View(width, height int) string {
	fragText := o.sentence.Active().At(o.frag)
	sections := []string{theme.Title.Render(fragText)}

	if len(o.opts) == 0 {
		sections = append(sections, theme.Hint.Render("No answers yet. Press a to add one."))
	} else {
		sections = append(sections, strings.TrimRight(o.list.View(max(height-8, 3)), "\n"))
		if b := answers.Bind(o.opts); b.Mixed {
			sections = append(sections, theme.Warning.Render(
				"Options disagree about being a question; the first one decides."))
		}
	}
	if v := o.status.View(); v != "" {
		sections = append(sections, v)
	}
	return "\n" + strings.Join(sections, "\n\n")
}
