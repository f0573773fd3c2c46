// package tui provides the interactive strength form for pwstrength.
// This file defines the shared lipgloss styles used by the form.
package tui // import "github.com/toeirei/pwstrength/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorWhite     = lipgloss.Color("231")
)

// Styles defines the reusable lipgloss styles for various UI components.
var (
	// General
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Status messages
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Titles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	// Form elements
	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtle)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	tierStyle         = lipgloss.NewStyle().Bold(true)

	// Buttons
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")). // Dark gray
			Padding(0, 3).
			MarginTop(1).
			MarginRight(2)

	activeButtonStyle = buttonStyle.
				Background(colorHighlight).
				Foreground(colorWhite).
				Underline(true)
)
