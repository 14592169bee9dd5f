package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const columnArt = ` ▄▄▄▄▄▄▄▄▄▄▄
  ▀▀█▀▀▀▀▀█▀▀
    ║ ║ ║ ║
    ║ ║ ║ ║
    ║ ║ ║ ║
    ║ ║ ║ ║
  ▄▄█▄▄▄▄▄█▄▄
 ▀▀▀▀▀▀▀▀▀▀▀▀▀`

// The tagline is revealed one word per tick during phase 2.
var taglineWords = strings.Fields("English sentences into Greek cloze questions")

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		if w.elapsed >= totalDur {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips whatever is left of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// visibleWords returns how many tagline words have been revealed.
func (w *WelcomeScreen) visibleWords() int {
	if w.elapsed < phase1End {
		return 0
	}
	n := int((w.elapsed - phase1End) / tickInterval)
	return min(n, len(taglineWords))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Border).Render(columnArt),
		"",
		RenderBanner(width),
	}

	// Phase 2+: tagline, word by word
	if n := w.visibleWords(); n > 0 {
		sections = append(sections, "", theme.Body.Bold(true).Render(strings.Join(taglineWords[:n], " ")))
	}

	// Phase 3: "press any key" hint
	if w.elapsed >= phase2End {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
