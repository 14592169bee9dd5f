// Package export asks for the quiz category and writes the sentence bank
// to the configured Moodle XML file.
package export

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	moodle "github.com/jsMRSoL/greek-composition-question-writer/internal/export"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/components"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

type step int

const (
	stepStage step = iota
	stepExercise
	stepDone
)

// ExportScreen collects the stage and exercise names, then writes the file.
type ExportScreen struct {
	env      *screen.Env
	step     step
	stage    components.TextInput
	exercise components.TextInput
	result   *moodle.Result
	category string
	err      error
}

var _ screen.Screen = (*ExportScreen)(nil)

// New creates an ExportScreen.
func New(env *screen.Env) *ExportScreen {
	return &ExportScreen{
		env:      env,
		stage:    components.NewTextInput("Stage", "3", 0),
		exercise: components.NewTextInput("Exercise", "Sentences 1-10", 0),
	}
}

func (e *ExportScreen) Init() tea.Cmd {
	return e.stage.Init()
}

func (e *ExportScreen) Title() string {
	return "Print to File"
}

func (e *ExportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyPressMsg)
	pressed := ""
	if isKey {
		pressed = kmsg.String()
	}

	var cmd tea.Cmd
	switch e.step {
	case stepStage:
		if pressed == "enter" || pressed == "tab" {
			if e.stage.Value() == "" {
				e.stage.Reject("A stage is required.")
				return e, nil
			}
			e.step = stepExercise
			return e, e.exercise.Init()
		}
		e.stage, cmd = e.stage.Update(msg)

	case stepExercise:
		switch pressed {
		case "shift+tab":
			e.step = stepStage
			return e, e.stage.Init()
		case "enter":
			if e.exercise.Value() == "" {
				e.exercise.Reject("An exercise name is required.")
				return e, nil
			}
			e.write()
			return e, nil
		}
		e.exercise, cmd = e.exercise.Update(msg)

	case stepDone:
		if isKey {
			return e, func() tea.Msg {
				return router.PopScreenMsg{}
			}
		}
	}
	return e, cmd
}

func (e *ExportScreen) write() {
	cfg := e.env.Config
	opts := moodle.OptionsFromConfig(cfg.Export, e.stage.Value(), e.exercise.Value())

	res, err := moodle.WriteFile(cfg.Output, e.env.Bank.All(), opts)
	e.step = stepDone
	e.category = opts.Category()
	if err != nil {
		e.err = err
		e.env.Log.Error("export failed", "path", cfg.Output, "error", err)
		return
	}
	e.result = &res
	e.env.Log.Info("export written", "path", res.Path, "category", e.category,
		"questions", res.Questions, "skipped", res.Skipped, "stale", res.Stale)
}

func (e *ExportScreen) KeyHints() []layout.KeyHint {
	switch e.step {
	case stepStage:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Cancel"}}
	case stepExercise:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Write file"},
			{Key: "Shift+Tab", Description: "Stage"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{{Key: "any key", Description: "Back"}}
}

func (e *ExportScreen) View(width, height int) string {
	cfg := e.env.Config
	done, total := e.env.Bank.Stats()

	sections := []string{
		theme.Hint.Render(fmt.Sprintf("%d of %d sentences are complete and will be written to %s.",
			done, total, cfg.Output)),
	}

	switch e.step {
	case stepStage:
		sections = append(sections, e.stage.View())
	case stepExercise:
		sections = append(sections,
			theme.Hint.Render("Stage: ")+theme.Body.Render(e.stage.Value()),
			e.exercise.View())
	case stepDone:
		if e.err != nil {
			sections = append(sections, theme.Warning.Render("Export failed: "+e.err.Error()))
		} else {
			msg := fmt.Sprintf("Wrote %d question(s) to %s\ncategory %s",
				e.result.Questions, e.result.Path, e.category)
			if e.result.Skipped > 0 {
				msg += fmt.Sprintf("\n%d incomplete sentence(s) left out", e.result.Skipped)
			}
			sections = append(sections, theme.Done.Render(msg))
		}
	}
	return "\n" + strings.Join(sections, "\n\n")
}

func positions(ps []int) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
