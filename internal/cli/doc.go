// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for pwstrength using
// Cobra. It wires configuration, logging and i18n, then delegates scoring to
// the strength package and rendering to report. CLI code stays thin.
package cli
