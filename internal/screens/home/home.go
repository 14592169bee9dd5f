package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	answerscreen "github.com/jsMRSoL/greek-composition-question-writer/internal/screens/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/compose"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/editor"
	exportscreen "github.com/jsMRSoL/greek-composition-question-writer/internal/screens/export"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/summary"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/components"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// HomeScreen lists the sentence bank and dispatches to the other screens.
type HomeScreen struct {
	env     *screen.Env
	list    components.List
	status  components.Status
	confirm components.Confirm
	moving  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over env's sentence bank.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.refresh()
	return h
}

// Init reloads the list; it runs again whenever a child screen is popped.
func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) refresh() {
	all := h.env.Bank.All()
	rows := make([]string, len(all))
	for i, s := range all {
		rows[i] = row(i, s)
	}
	h.list.SetRows(rows)
}

func row(i int, s *sentence.Sentence) string {
	mark := theme.Pending.Render("i")
	switch {
	case s.Completed() && s.Stale():
		mark = theme.Warning.Render("!")
	case s.Completed():
		mark = theme.Done.Render("D")
	}
	return fmt.Sprintf("%2d. [%s] %s", i+1, mark, s.Original)
}

func (h *HomeScreen) Title() string {
	return "Sentences"
}

// Capturing is true while a prompt or move mode owns Esc.
func (h *HomeScreen) Capturing() bool {
	return h.moving || h.confirm.Active()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}

	if h.confirm.Active() {
		var cmd tea.Cmd
		h.confirm, cmd = h.confirm.Update(kmsg)
		return h, cmd
	}
	if h.moving {
		h.handleMove(kmsg)
		return h, nil
	}
	return h, h.handleKey(kmsg)
}

func (h *HomeScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	h.status.Clear()

	switch msg.String() {
	case "a":
		return push(compose.New(h.env))
	case "e", "enter":
		if s := h.selected(); s != nil {
			return push(editor.New(h.env, s))
		}
	case "n":
		s := h.selected()
		if s == nil {
			return nil
		}
		if s.Stale() {
			h.status.Info("Fragments changed since answers were set; edit and accept first.")
			return nil
		}
		return push(answerscreen.New(h.env, s))
	case "d":
		if s := h.selected(); s != nil {
			pos := h.list.Cursor
			h.confirm = components.NewConfirm(
				fmt.Sprintf("Delete sentence %d?", pos+1),
				func() tea.Cmd { h.remove(pos); return nil },
				nil,
			)
		}
	case "m":
		if h.selected() != nil {
			h.moving = true
			h.status.Info("Move mode: ↑/↓ to move, Enter to accept.")
		}
	case "p":
		return push(exportscreen.New(h.env))
	case "v":
		return push(summary.New(h.env))
	case "s":
		if h.env.Bank.Len() > 0 {
			h.confirm = components.NewConfirm(
				fmt.Sprintf("Discard all %d sentences and start again?", h.env.Bank.Len()),
				func() tea.Cmd { h.clear(); return nil },
				nil,
			)
		}
	case "q":
		return tea.Quit
	default:
		h.list, _ = h.list.Update(msg)
	}
	return nil
}

func (h *HomeScreen) handleMove(msg tea.KeyPressMsg) {
	pos := h.list.Cursor
	var err error
	switch msg.String() {
	case "up", "k", "u":
		if err = h.env.Bank.MoveUp(pos); err == nil {
			pos--
		}
	case "down", "j":
		if err = h.env.Bank.MoveDown(pos); err == nil {
			pos++
		}
	case "enter", "esc", "a", "m":
		h.moving = false
		h.status.Clear()
		return
	default:
		return
	}

	h.status.Err(err)
	h.refresh()
	h.list.Select(pos)
}

func (h *HomeScreen) remove(pos int) {
	if err := h.env.Bank.Remove(pos); err != nil {
		h.status.Err(err)
		return
	}
	h.env.Log.Info("sentence deleted", "position", pos+1)
	h.refresh()
}

func (h *HomeScreen) clear() {
	n := h.env.Bank.Len()
	h.env.Bank.Clear()
	h.env.Log.Info("sentence bank cleared", "discarded", n)
	h.refresh()
	h.status.Info("Started again with an empty bank.")
}

func (h *HomeScreen) selected() *sentence.Sentence {
	s, err := h.env.Bank.Get(h.list.Cursor)
	if err != nil {
		return nil
	}
	return s
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	switch {
	case h.confirm.Active():
		return []layout.KeyHint{{Key: "y", Description: "Yes"}, {Key: "n", Description: "No"}}
	case h.moving:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Accept"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Edit"},
		{Key: "a", Description: "Add"},
		{Key: "p", Description: "Print"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || width < 100
	cw := contentWidth(width)

	sections := []string{renderBanner(cw, compact)}

	done, total := h.env.Bank.Stats()
	sections = append(sections, components.NewProgressBar("Done", done, total, cw).View())

	listHeight := height - 20
	if compact {
		listHeight = height - 14
	}
	if total == 0 {
		sections = append(sections, theme.Hint.Render("No sentences yet. Press a to add one."))
	} else {
		legend := theme.Hint.Render("i: incomplete   D: done   !: answers out of date")
		sections = append(sections, legend+"\n"+strings.TrimRight(h.list.View(max(listHeight, 3)), "\n"))
	}

	if v := h.confirm.View(); v != "" {
		sections = append(sections, v)
	} else if v := h.status.View(); v != "" {
		sections = append(sections, v)
	}

	sections = append(sections, renderKeys(cw))

	return strings.Join(sections, "\n\n")
}
