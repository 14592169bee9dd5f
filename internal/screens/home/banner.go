package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/screens/welcome"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

func renderBanner(cw int, compact bool) string {
	art := welcome.RenderBanner(cw)
	if compact {
		art = theme.Title.Render("S E N T E N C E S")
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(art + "\n" + theme.Hint.Render("into Greek"))
}

// renderKeys lays the home key bindings out in rows of three columns.
func renderKeys(cw int) string {
	keys := [][2]string{
		{"a", "add sentence"},
		{"e", "edit sentence"},
		{"d", "delete sentence"},
		{"m", "move sentence"},
		{"n", "resume answers"},
		{"p", "print to file"},
		{"v", "view summary"},
		{"s", "start again"},
		{"q", "quit"},
	}

	colWidth := cw / 3
	var rows []string
	var row strings.Builder
	for i, k := range keys {
		cell := theme.Selected.Render(k[0]) + " " + theme.Body.Render(k[1])
		row.WriteString(lipgloss.NewStyle().Width(colWidth).Render(cell))
		if i%3 == 2 || i == len(keys)-1 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}

	return theme.Card.Width(cw).Render(strings.Join(rows, "\n"))
}
