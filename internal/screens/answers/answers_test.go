package answers

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/cloze"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/config"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/logger"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/options"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestAnswers(t *testing.T) (*AnswersScreen, *sentence.Sentence) {
	t.Helper()
	s, err := sentence.New("ho theos agapa")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Join(0); err != nil {
		t.Fatal(err)
	}
	s.BeginAnswers()
	env := &screen.Env{Bank: sentence.NewBank(), Config: config.DefaultConfig(), Log: logger.Nop()}
	env.Bank.Add(s)
	return New(env, s), s
}

func TestAnswersScreen_CompleteNeedsFirstFragment(t *testing.T) {
	a, s := newTestAnswers(t)

	_, cmd := a.Update(keyPress('c'))
	if cmd != nil {
		t.Error("completing without answers should not navigate")
	}
	if !a.status.IsErr || !strings.Contains(a.status.Text, "no answers") {
		t.Errorf("status = %q", a.status.Text)
	}
	if s.Completed() {
		t.Error("sentence should not be complete")
	}

	if err := s.Answers().Add(0, answers.Option{IsQuestion: true, Mark: 100, Answer: "the god"}); err != nil {
		t.Fatal(err)
	}
	_, cmd = a.Update(keyPress('c'))
	if cmd == nil {
		t.Fatal("completing should navigate home")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
	if !s.Completed() {
		t.Error("sentence should be complete")
	}
}

func TestAnswersScreen_EnterOpensFragmentOptions(t *testing.T) {
	a, _ := newTestAnswers(t)
	a.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should open the fragment")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	opts, ok := msg.Screen.(*options.OptionsScreen)
	if !ok {
		t.Fatalf("expected options screen, got %T", msg.Screen)
	}
	if opts.Title() != "Fragment 2" {
		t.Errorf("Title = %q, want %q", opts.Title(), "Fragment 2")
	}
}

func TestAnswersScreen_PreviewRefreshesOnInit(t *testing.T) {
	a, s := newTestAnswers(t)
	if err := s.Answers().Add(0, answers.Option{IsQuestion: true, Mark: 100, Answer: "the god", Feedback: "Well done!"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Answers().Add(1, answers.NonQuestion("agapa")); err != nil {
		t.Fatal(err)
	}

	a.Init()
	want := "{1:SHORTANSWER:~%100%the god#Well done!} agapa"
	if a.preview != want {
		t.Errorf("preview = %q, want %q", a.preview, want)
	}
	if !strings.Contains(a.View(100, 30), "text: agapa") {
		t.Error("literal fragment should be described")
	}
}

func TestDescribe_Mixed(t *testing.T) {
	b := answers.Bind([]answers.Option{
		answers.NonQuestion("x"),
		{IsQuestion: true, Mark: 100, Answer: "y"},
	})
	if got := describe(b); !strings.Contains(got, "mixed") {
		t.Errorf("describe = %q, want mixed warning", got)
	}
}

func TestAnswersScreen_StaleBankShowsError(t *testing.T) {
	a, s := newTestAnswers(t)
	if err := s.Revert(); err != nil {
		t.Fatal(err)
	}
	a.Init()
	if _, err := s.Compile(); !errors.Is(err, cloze.ErrBankMismatch) {
		t.Fatalf("Compile err = %v, want ErrBankMismatch", err)
	}
	if !strings.Contains(a.preview, "does not match") {
		t.Errorf("preview = %q, want mismatch error", a.preview)
	}
}
