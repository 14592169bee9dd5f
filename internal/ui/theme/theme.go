package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: parchment and ink, muted rather than bright.
var (
	Primary   = lipgloss.Color("#C08457") // Terracotta
	Secondary = lipgloss.Color("#5EA3A3") // Aegean teal
	Accent    = lipgloss.Color("#E3B341") // Ochre
	Success   = lipgloss.Color("#7BB661") // Olive
	Error     = lipgloss.Color("#E06C75") // Red
	Text      = lipgloss.Color("#EDE6D6") // Parchment
	TextDim   = lipgloss.Color("#9A9486") // Faded ink
	BgCard    = lipgloss.Color("#26231F") // Dark walnut
	Border    = lipgloss.Color("#4A443B") // Bronze
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(TextDim)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Status = lipgloss.NewStyle().
		Foreground(Accent)
)

// Answer rows
var (
	GapMark = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Literal = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
