// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package frame holds layout helpers for the strength form: the footer
// line, the modal dialog and the overlay that centers it.
package frame

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Footer builds a one-line footer from left and right tokens, aligning the
// right token to the right edge of a line with the specified width.
// Widths are measured in terminal cells, so wide runes and ANSI styling are
// handled. The left side is truncated if space is insufficient.
func Footer(left, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	rw := ansi.StringWidth(right)
	if rw >= width {
		return ansi.Truncate(right, width, "")
	}
	// a wide rune that does not fit is dropped whole, padding fills the gap
	left = ansi.Truncate(left, width-rw, "")
	pad := width - ansi.StringWidth(left) - rw
	return left + strings.Repeat(" ", pad) + right
}
