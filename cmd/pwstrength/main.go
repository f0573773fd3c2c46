// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// pwstrength prompts for a password and reports how strong it is. The
// `form` subcommand opens an interactive form with live feedback.
package main

import (
	"os"

	"github.com/toeirei/pwstrength/internal/cli"
)

// main is the entry point of the application.
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
