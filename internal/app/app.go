package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/home"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/welcome"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel that opens on the splash screen.
func newAppModel(env *screen.Env) AppModel {
	splash := welcome.New(func() screen.Screen { return home.New(env) })
	return AppModel{
		env:    env,
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.Capturing() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	done, total := m.env.Bank.Stats()
	header := layout.RenderHeader(title, layout.Progress{Done: done, Total: total}, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program over env and blocks until it exits.
func Run(env *screen.Env) error {
	env.Log.Info("session started", "sentences", env.Bank.Len(), "output", env.Config.Output)

	p := tea.NewProgram(newAppModel(env))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		env.Log.Error("program exited with error", "error", err)
		return err
	}

	done, total := env.Bank.Stats()
	env.Log.Info("session ended", "completed", done, "sentences", total)
	return nil
}
