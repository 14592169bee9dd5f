package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/config"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/logger"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/compose"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/editor"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestHome(t *testing.T, texts ...string) *HomeScreen {
	t.Helper()
	bank := sentence.NewBank()
	for _, text := range texts {
		s, err := sentence.New(text)
		if err != nil {
			t.Fatal(err)
		}
		bank.Add(s)
	}
	env := &screen.Env{Bank: bank, Config: config.DefaultConfig(), Log: logger.Nop()}
	return New(env)
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func originals(h *HomeScreen) []string {
	var out []string
	for _, s := range h.env.Bank.All() {
		out = append(out, s.Original)
	}
	return out
}

func TestHome_AddOpensCompose(t *testing.T) {
	h := newTestHome(t)
	_, cmd := h.Update(keyPress('a'))
	if _, ok := pushed(t, cmd).(*compose.ComposeScreen); !ok {
		t.Error("a should open the compose screen")
	}
}

func TestHome_EnterOpensEditor(t *testing.T) {
	h := newTestHome(t, "the god loves")
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*editor.EditorScreen); !ok {
		t.Error("enter should open the editor")
	}
}

func TestHome_EmptyBankIgnoresSelectionKeys(t *testing.T) {
	h := newTestHome(t)
	for _, r := range "endm" {
		if _, cmd := h.Update(keyPress(r)); cmd != nil {
			t.Errorf("%c on an empty bank should do nothing", r)
		}
	}
	if h.Capturing() {
		t.Error("no prompt should be open")
	}
}

func TestHome_AnswersNeedAcceptedFragments(t *testing.T) {
	h := newTestHome(t, "the god loves")
	s, _ := h.env.Bank.Get(0)
	if err := s.Join(0); err != nil {
		t.Fatal(err)
	}

	_, cmd := h.Update(keyPress('n'))
	if cmd != nil {
		t.Fatal("n should not open answers before the joined fragments are accepted")
	}
	if !strings.Contains(h.status.Text, "edit and accept") {
		t.Errorf("status = %q", h.status.Text)
	}

	s.BeginAnswers()
	_, cmd = h.Update(keyPress('n'))
	if pushed(t, cmd).Title() == "" {
		t.Error("answers screen should have a title")
	}
}

func TestHome_DeleteAsksFirst(t *testing.T) {
	h := newTestHome(t, "one", "two")
	h.Update(keyPress('d'))
	if !h.Capturing() {
		t.Fatal("delete should open a prompt")
	}
	h.Update(keyPress('n'))
	if h.env.Bank.Len() != 2 {
		t.Fatal("n should keep the sentence")
	}

	h.Update(keyPress('d'))
	h.Update(keyPress('y'))
	if got := originals(h); len(got) != 1 || got[0] != "two" {
		t.Errorf("bank = %v, want [two]", got)
	}
}

func TestHome_StartAgainClears(t *testing.T) {
	h := newTestHome(t, "one", "two")
	h.Update(keyPress('s'))
	h.Update(keyPress('y'))
	if h.env.Bank.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.env.Bank.Len())
	}
	if len(h.list.Rows) != 0 {
		t.Error("list should be refreshed")
	}
}

func TestHome_MoveMode(t *testing.T) {
	h := newTestHome(t, "one", "two", "three")
	h.Update(keyPress('m'))
	if !h.Capturing() {
		t.Fatal("m should enter move mode")
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := strings.Join(originals(h), ","); got != "two,three,one" {
		t.Errorf("order = %s", got)
	}
	if h.list.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", h.list.Cursor)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !h.status.IsErr {
		t.Error("moving past the end should report an error")
	}

	h.Update(keyPress('u'))
	if got := strings.Join(originals(h), ","); got != "two,one,three" {
		t.Errorf("order = %s", got)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if h.Capturing() {
		t.Error("enter should leave move mode")
	}
}

func TestHome_Quit(t *testing.T) {
	h := newTestHome(t)
	_, cmd := h.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestHome_ViewListsSentences(t *testing.T) {
	h := newTestHome(t, "the god loves")
	v := h.View(120, 40)
	if !strings.Contains(v, "the god loves") {
		t.Error("view should list the sentence")
	}

	empty := newTestHome(t)
	if !strings.Contains(empty.View(120, 40), "No sentences yet") {
		t.Error("empty bank should show a hint")
	}
}

func TestHome_RowFlagsStaleCompletedSentence(t *testing.T) {
	h := newTestHome(t, "the god loves")
	s, _ := h.env.Bank.Get(0)
	s.BeginAnswers()
	if err := s.Answers().Add(0, answers.NonQuestion("ho")); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkComplete(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(row(0, s), "D") {
		t.Errorf("row = %q, want done mark", row(0, s))
	}

	if err := s.Join(0); err != nil {
		t.Fatal(err)
	}
	if got := row(0, s); !strings.Contains(got, "!") || strings.Contains(got, "D") {
		t.Errorf("row = %q, want out-of-date mark", got)
	}
}
