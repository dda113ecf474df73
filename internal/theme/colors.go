package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - repository names
)

// Progress severity colors
const (
	ColorInfo    Color = "250" // Default text
	ColorSuccess Color = "2"   // Green
	ColorWarning Color = "3"   // Yellow
	ColorError   Color = "196" // Bright red
)

// UI semantic colors
const (
	ColorBorder    Color = "238" // Dark gray - table borders
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSpinner   Color = "205" // Pink
	ColorSubtle    Color = "245" // Light gray - labels
)

// Line change colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
)
