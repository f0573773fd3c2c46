// Copyright (c) 2025 ToeiRei
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"github.com/charmbracelet/lipgloss"
)

// Dialog represents a modal dialog box with title, message, and two buttons.
type Dialog struct {
	title       string
	message     string
	buttonLeft  string
	buttonRight string
	focused     bool // which button is focused (false = left, true = right)
	width       int
}

// NewDialog creates a new dialog with the given title, message, and button labels.
// The left button is focused initially.
func NewDialog(title, message, buttonLeft, buttonRight string) *Dialog {
	return &Dialog{
		title:       title,
		message:     message,
		buttonLeft:  buttonLeft,
		buttonRight: buttonRight,
		width:       56,
	}
}

// SetWidth sets the dialog width, including its border.
func (d *Dialog) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	d.width = width
}

// Width returns the configured width.
func (d *Dialog) Width() int { return d.width }

// Message returns the dialog body text.
func (d *Dialog) Message() string { return d.message }

// Toggle moves focus to the other button.
func (d *Dialog) Toggle() {
	d.focused = !d.focused
}

// FocusRight moves focus to the right button.
func (d *Dialog) FocusRight() {
	d.focused = true
}

// FocusLeft moves focus to the left button.
func (d *Dialog) FocusLeft() {
	d.focused = false
}

// IsFocusedRight returns true if the right button is focused.
func (d *Dialog) IsFocusedRight() bool {
	return d.focused
}

// Render produces the dialog box output with auto-calculated height.
func (d *Dialog) Render() string {
	inner := d.width - 2

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Width(inner)

	header := headerStyle.Render(" " + d.title)

	messageStyle := lipgloss.NewStyle().
		Width(inner).
		Padding(1, 2, 0, 2)

	message := messageStyle.Render(d.message)

	dialog := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		message,
		d.renderButtonArea(),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8"))

	return boxStyle.Render(dialog)
}

// renderButtonArea produces the button row with styled buttons.
func (d *Dialog) renderButtonArea() string {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("239")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("239")).
		Padding(0, 3, 0, 3)
	active := base.
		Background(lipgloss.Color("60")).
		BorderForeground(lipgloss.Color("60"))

	leftStyle, rightStyle := active, base
	if d.focused {
		leftStyle, rightStyle = base, active
	}

	buttonRow := lipgloss.JoinHorizontal(lipgloss.Center,
		leftStyle.Render(d.buttonLeft), "  ", rightStyle.Render(d.buttonRight))

	return lipgloss.NewStyle().
		Padding(1, 2, 1, 2).
		Render(buttonRow)
}
