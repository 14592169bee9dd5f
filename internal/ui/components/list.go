package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/ui/theme"
)

// List is a scrolling cursor over pre-rendered rows.
type List struct {
	Rows   []string
	Cursor int
	offset int
}

// NewList creates a list over rows with the cursor on the first row.
func NewList(rows []string) List {
	return List{Rows: rows}
}

// SetRows replaces the rows and keeps the cursor in range.
func (l *List) SetRows(rows []string) {
	l.Rows = rows
	l.clamp()
}

// Select moves the cursor to i, clamped to the rows.
func (l *List) Select(i int) {
	l.Cursor = i
	l.clamp()
}

func (l *List) clamp() {
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// Update moves the cursor with the arrow keys, j/k and home/end.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		l.Cursor--
	case "down", "j":
		l.Cursor++
	case "home", "g":
		l.Cursor = 0
	case "end", "G":
		l.Cursor = len(l.Rows) - 1
	}
	l.clamp()
	return l, nil
}

// View renders at most height rows, scrolled to keep the cursor visible.
func (l *List) View(height int) string {
	if len(l.Rows) == 0 {
		return ""
	}
	if height <= 0 || height > len(l.Rows) {
		height = len(l.Rows)
	}
	if l.Cursor < l.offset {
		l.offset = l.Cursor
	}
	if l.Cursor >= l.offset+height {
		l.offset = l.Cursor - height + 1
	}
	if l.offset > len(l.Rows)-height {
		l.offset = len(l.Rows) - height
	}

	var b strings.Builder
	for i := l.offset; i < l.offset+height; i++ {
		if i == l.Cursor {
			b.WriteString(theme.Selected.Render("▸ ") + l.Rows[i])
		} else {
			b.WriteString("  " + l.Rows[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}
