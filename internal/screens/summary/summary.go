package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/cloze"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/router"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/layout"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// Line is the summary of one sentence in the bank.
type Line struct {
	Position  int
	Original  string
	Fragments int
	Gaps      int
	Completed bool
	Err       error // compile failure, usually a stale answer bank
}

// Summarize compiles every sentence of bank without modifying it.
func Summarize(bank *sentence.Bank) []Line {
	all := bank.All()
	lines := make([]Line, len(all))
	for i, s := range all {
		l := Line{
			Position:  i + 1,
			Original:  s.Original,
			Fragments: s.Active().Len(),
			Completed: s.Completed(),
		}
		if body, err := s.Compile(); err != nil {
			l.Err = err
		} else {
			l.Gaps = cloze.CountGaps(body)
		}
		lines[i] = l
	}
	return lines
}

// SummaryScreen displays the state of the whole sentence bank.
type SummaryScreen struct {
	env   *screen.Env
	lines []Line
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(env *screen.Env) *SummaryScreen {
	return &SummaryScreen{env: env, lines: Summarize(env.Bank)}
}

func (s *SummaryScreen) Init() tea.Cmd {
	s.lines = Summarize(s.env.Bank)
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Bank Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(text)))
		b.WriteString("\n")
	}

	done, total := s.env.Bank.Stats()
	gaps, broken := 0, 0
	for _, l := range s.lines {
		gaps += l.Gaps
		if l.Err != nil {
			broken++
		}
	}

	center(theme.Title, "Sentence bank")
	b.WriteString("\n")
	center(theme.Body, fmt.Sprintf("Sentences: %d        Complete: %d        Gaps: %d", total, done, gaps))
	if broken > 0 {
		center(theme.Warning, fmt.Sprintf("%d sentence(s) need their answers re-entered", broken))
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, l := range s.lines {
		text := l.Original
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		detail := fmt.Sprintf("%d fragments, %d gaps", l.Fragments, l.Gaps)
		if l.Err != nil {
			detail = "answers out of date"
		}
		line := fmt.Sprintf("%2d. %-40s  %s", l.Position, text, detail)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lineColor(l)).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// lineColor returns the theme color for a sentence's state.
func lineColor(l Line) color.Color {
	switch {
	case l.Err != nil:
		return theme.Error
	case l.Completed:
		return theme.Success
	default:
		return theme.TextDim
	}
}
