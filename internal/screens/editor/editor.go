// Package editor is the fragment editor: join neighbours, reorder, revert.
package editor

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	answerscreen "github.com/jsMRSoL/greek-composition-question-writer/internal/screens/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/components"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// EditorScreen edits the fragment split of one sentence. Every edit pushes
// a new version; r steps back one version.
type EditorScreen struct {
	env      *screen.Env
	sentence *sentence.Sentence
	list     components.List
	status   components.Status
	confirm  components.Confirm
}

var _ screen.Screen = (*EditorScreen)(nil)

// New creates an EditorScreen for s.
func New(env *screen.Env, s *sentence.Sentence) *EditorScreen {
	e := &EditorScreen{env: env, sentence: s}
	e.refresh()
	return e
}

func (e *EditorScreen) Init() tea.Cmd {
	e.refresh()
	return nil
}

func (e *EditorScreen) refresh() {
	active := e.sentence.Active()
	rows := make([]string, active.Len())
	for i, f := range active {
		rows[i] = fmt.Sprintf("%2d  %s", i+1, theme.Body.Render(f))
	}
	e.list.SetRows(rows)
}

func (e *EditorScreen) Title() string {
	return "Edit Fragments"
}

func (e *EditorScreen) Capturing() bool {
	return e.confirm.Active()
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return e, nil
	}
	if e.confirm.Active() {
		var cmd tea.Cmd
		e.confirm, cmd = e.confirm.Update(kmsg)
		return e, cmd
	}
	return e, e.handleKey(kmsg)
}

func (e *EditorScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	i := e.list.Cursor
	var (
		err    error
		cursor = i
		edited = true
	)

	switch msg.String() {
	case "w", "+":
		err = e.sentence.Join(i)
	case "[", "<":
		err = e.sentence.MoveEarlier(i)
		cursor = i - 1
	case "]", ">":
		err = e.sentence.MoveLater(i)
		cursor = i + 1
	case "r":
		err = e.sentence.Revert()
	case "a":
		return e.accept()
	default:
		edited = false
		e.list, _ = e.list.Update(msg)
	}

	if !edited {
		return nil
	}
	if err != nil {
		e.status.Err(err)
		return nil
	}
	e.status.Clear()
	e.refresh()
	e.list.Select(cursor)
	e.env.Log.Debug("fragments edited", "id", e.sentence.ID.String(), "key", msg.String(),
		"version", e.sentence.History().Cursor(), "fragments", e.sentence.Active().Len())
	return nil
}

// accept moves on to answer assignment. Entering answers always starts
// from an empty bank, so existing answers are only dropped after a yes.
func (e *EditorScreen) accept() tea.Cmd {
	lost := e.sentence.PendingLoss()
	if lost == 0 {
		return e.beginAnswers()
	}
	e.confirm = components.NewConfirm(
		fmt.Sprintf("Accepting this split discards %d entered answer(s). Continue?", lost),
		e.beginAnswers,
		nil,
	)
	return nil
}

func (e *EditorScreen) beginAnswers() tea.Cmd {
	if lost := e.sentence.PendingLoss(); lost > 0 {
		e.env.Log.Warn("answers discarded", "id", e.sentence.ID.String(), "count", lost)
	}
	e.sentence.BeginAnswers()
	next := answerscreen.New(e.env, e.sentence)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	if e.confirm.Active() {
		return []layout.KeyHint{{Key: "y", Description: "Yes"}, {Key: "n", Description: "No"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "w", Description: "Join next"},
		{Key: "[ ]", Description: "Move"},
		{Key: "r", Description: "Revert"},
		{Key: "a", Description: "Accept"},
		{Key: "Esc", Description: "Back"},
	}
}

func (e *EditorScreen) View(width, height int) string {
	h := e.sentence.History()
	header := theme.Hint.Render(e.sentence.Original) + "\n" +
		theme.Status.Render(fmt.Sprintf("version %d of %d", h.Cursor()+1, h.Len()))

	sections := []string{
		header,
		strings.TrimRight(e.list.View(max(height-8, 3)), "\n"),
	}
	if v := e.confirm.View(); v != "" {
		sections = append(sections, v)
	} else if v := e.status.View(); v != "" {
		sections = append(sections, v)
	}
	return "\n" + strings.Join(sections, "\n\n")
}
