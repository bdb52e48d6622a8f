package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/michaelscutari/fsinfo/internal/entry"
)

var (
	// Colors
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("245") // Gray
	colorSuccess   = lipgloss.Color("76")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorMuted     = lipgloss.Color("240") // Dark gray

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	statsStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	chartTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	barFilledStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	treeStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// FormatSize formats a byte count for display.
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}

// FormatCount formats a count for display.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatKB formats a kilobyte value the way the PDF report prints it.
func FormatKB(kb float64) string {
	return entry.FormatKB(kb) + " KB"
}
