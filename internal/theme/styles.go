package theme

import (
	"github.com/charmbracelet/lipgloss"

	"codetally/internal/domain"
)

// Report styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	NumberStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right)

	RepositoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Line change styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)

// Progress styles
var (
	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)

// SeverityStyle returns the style used to render a progress message of the given severity
func SeverityStyle(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeveritySuccess:
		return SuccessStyle
	case domain.SeverityWarning:
		return WarningStyle
	case domain.SeverityError:
		return ErrorStyle
	default:
		return InfoStyle
	}
}
