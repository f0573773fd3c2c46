// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var dimmedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

// Overlay draws fg centered on top of a dimmed copy of bg. The background is
// padded when it is smaller than the foreground.
func Overlay(bg, fg string) string {
	bg = dimmedStyle.Render(ansi.Strip(bg))

	bgWidth, bgHeight := lipgloss.Size(bg)
	fgWidth, fgHeight := lipgloss.Size(fg)
	if bgWidth < fgWidth || bgHeight < fgHeight {
		bg = lipgloss.Place(max(bgWidth, fgWidth), max(bgHeight, fgHeight), lipgloss.Left, lipgloss.Top, bg)
		bgWidth, bgHeight = lipgloss.Size(bg)
	}

	offsetLeft := (bgWidth - fgWidth) / 2
	offsetTop := (bgHeight - fgHeight) / 2

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := bgLines[i+offsetTop]
		left := ansi.Truncate(row, offsetLeft, "")
		if pad := offsetLeft - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(row, offsetLeft+ansi.StringWidth(line), "")
		bgLines[i+offsetTop] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}
