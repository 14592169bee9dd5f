package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/config"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/logger"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEnv(t *testing.T) *screen.Env {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "upload.xml")

	bank := sentence.NewBank()
	s, err := sentence.New("the god loves")
	if err != nil {
		t.Fatal(err)
	}
	s.BeginAnswers()
	if err := s.Answers().Add(0, answers.Option{IsQuestion: true, Mark: 100, Answer: "ho", Feedback: "Well done!"}); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkComplete(); err != nil {
		t.Fatal(err)
	}
	bank.Add(s)
	pending, err := sentence.New("still unfinished")
	if err != nil {
		t.Fatal(err)
	}
	bank.Add(pending)
	return &screen.Env{Bank: bank, Config: cfg, Log: logger.Nop()}
}

func TestExportScreen_WritesFile(t *testing.T) {
	env := testEnv(t)
	e := New(env)

	e.stage.SetValue("3")
	e.Update(specialKey(tea.KeyEnter))
	if e.step != stepExercise {
		t.Fatalf("step = %v, want stepExercise", e.step)
	}
	e.exercise.SetValue("Sentences 1-10")
	e.Update(specialKey(tea.KeyEnter))

	if e.step != stepDone {
		t.Fatalf("step = %v, want stepDone", e.step)
	}
	if e.err != nil {
		t.Fatalf("export failed: %v", e.err)
	}
	if e.result.Questions != 1 || e.result.Skipped != 1 {
		t.Errorf("result = %+v, want 1 question and 1 skipped", *e.result)
	}

	data, err := os.ReadFile(env.Config.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<quiz>") {
		t.Errorf("output is not a quiz document:\n%s", data)
	}
	if !strings.Contains(e.View(100, 30), "Wrote 1 question(s)") {
		t.Error("done view should report the question count")
	}

	_, cmd := e.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("any key should return after export")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestExportScreen_RequiresNames(t *testing.T) {
	e := New(testEnv(t))

	e.Update(specialKey(tea.KeyEnter))
	if e.step != stepStage {
		t.Fatal("empty stage should be rejected")
	}
	if !strings.Contains(e.View(100, 30), "A stage is required.") {
		t.Error("rejection message should be shown")
	}

	e.stage.SetValue("2")
	e.Update(specialKey(tea.KeyTab))
	e.Update(specialKey(tea.KeyEnter))
	if e.step != stepExercise {
		t.Error("empty exercise should be rejected")
	}

	e.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if e.step != stepStage {
		t.Errorf("shift+tab should go back to the stage, step = %v", e.step)
	}
}

func TestExportScreen_ReportsFailure(t *testing.T) {
	env := testEnv(t)
	env.Config.Output = filepath.Join(t.TempDir(), "missing", "upload.xml")
	e := New(env)

	e.stage.SetValue("1")
	e.Update(specialKey(tea.KeyEnter))
	e.exercise.SetValue("A")
	e.Update(specialKey(tea.KeyEnter))

	if e.err == nil {
		t.Fatal("expected an error writing into a missing directory")
	}
	if !strings.Contains(e.View(100, 30), "Export failed") {
		t.Error("failure should be shown")
	}
}

func TestExportScreen_ReportsStaleSentences(t *testing.T) {
	env := testEnv(t)
	s, err := env.Bank.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Join(0); err != nil {
		t.Fatal(err)
	}
	e := New(env)

	e.stage.SetValue("3")
	e.Update(specialKey(tea.KeyEnter))
	e.exercise.SetValue("Sentences 1-10")
	e.Update(specialKey(tea.KeyEnter))

	if e.err != nil {
		t.Fatalf("export failed: %v", e.err)
	}
	if e.result.Questions != 0 || len(e.result.Stale) != 1 || e.result.Stale[0] != 1 {
		t.Errorf("result = %+v, want sentence 1 left out as stale", *e.result)
	}
	if _, err := os.Stat(env.Config.Output); err != nil {
		t.Errorf("file should still be written: %v", err)
	}
	if !strings.Contains(e.View(100, 30), "Left out sentence(s) 1") {
		t.Error("view should name the stale sentence")
	}
}
