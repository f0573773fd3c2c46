// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for pwstrength.
//
// Usage:
//
//	go run . [flags]
//	go run . form
//
// This launches the pwstrength CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/pwstrength/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}
