// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/pwstrength/internal/i18n"
	"github.com/toeirei/pwstrength/internal/tui"
)

// runForm is swapped in tests to avoid taking over the terminal.
var runForm = func(opts tui.Options) error {
	return tui.Run(opts)
}

func newFormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: i18n.T("cli.form_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(tui.Options{
				Masked:  a.cfg.Display.Masked,
				NoColor: a.cfg.Display.NoColor,
			})
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version_short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(compositeVersion(nil))
		},
	}
}
