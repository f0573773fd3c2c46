// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pwstrength/internal/logging"
)

// Run starts the interactive strength form and blocks until the user quits.
// Log output is held back while the form owns the terminal and flushed to
// stderr afterwards.
func Run(opts Options, teaOpts ...tea.ProgramOption) error {
	var held bytes.Buffer
	logging.SetOutput(&held)
	defer func() {
		logging.SetOutput(os.Stderr)
		if held.Len() > 0 {
			_, _ = io.Copy(os.Stderr, &held)
		}
	}()

	logging.Debugf("starting strength form (masked=%t)", opts.Masked)
	teaOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, teaOpts...)
	if _, err := tea.NewProgram(newFormModel(opts), teaOpts...).Run(); err != nil {
		return fmt.Errorf("running strength form: %w", err)
	}
	logging.Debugf("strength form closed")
	return nil
}
