// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report renders a strength.Result for humans. Both the one-shot
// prompt and the interactive form use it so the tier colors, tier names and
// requirement texts stay identical across shells.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pwstrength/internal/i18n"
	"github.com/toeirei/pwstrength/internal/strength"
)

const (
	colorWeak   = lipgloss.Color("196") // A bright red
	colorMedium = lipgloss.Color("208") // Orange
	colorStrong = lipgloss.Color("40")  // A nice green
)

// Bullet prefixes every unmet requirement line.
const Bullet = "• "

// Line markers shared by the prompt report and the form dialog.
const (
	MarkStrength = "🔐 "
	MarkMissing  = "❌ "
	MarkOK       = "✅ "
)

// Checklist marks for met and unmet rules.
const (
	checkMet   = "✓ "
	checkUnmet = "✗ "
)

// TierColor returns the display color of a tier: red, orange or green.
func TierColor(t strength.Tier) lipgloss.Color {
	switch t {
	case strength.Strong:
		return colorStrong
	case strength.Medium:
		return colorMedium
	default:
		return colorWeak
	}
}

// TierName returns the translated tier label.
func TierName(t strength.Tier) string {
	return i18n.TOr("tier."+strings.ToLower(t.String()), t.String())
}

// RuleText returns the translated description of a rule, falling back to
// the scorer's English description.
func RuleText(r strength.Rule) string {
	return i18n.TOr("rule."+string(r.ID), r.Description)
}

// UnmetLines returns the bulleted, translated lines for every unmet rule.
func UnmetLines(res strength.Result) []string {
	lines := make([]string, 0, len(res.Unmet))
	for _, r := range res.Unmet {
		lines = append(lines, Bullet+RuleText(r))
	}
	return lines
}

// Checklist returns one line per rule in declared order, marked as met or
// unmet for res.
func Checklist(res strength.Result) []string {
	all := strength.Rules()
	lines := make([]string, 0, len(all))
	for _, r := range all {
		mark := checkUnmet
		if res.Satisfied(r.ID) {
			mark = checkMet
		}
		lines = append(lines, mark+RuleText(r))
	}
	return lines
}

// Options controls Render.
type Options struct {
	NoColor bool
}

// Render writes the full report: a blank line, the tier line and then
// either the missing requirements or the success line. Header lines carry
// the Mark* prefixes.
func Render(w io.Writer, res strength.Result, opts Options) error {
	tier := res.Tier()
	name := TierName(tier)
	if !opts.NoColor {
		name = lipgloss.NewStyle().Foreground(TierColor(tier)).Bold(true).Render(name)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(MarkStrength + i18n.T("report.strength", name))
	b.WriteString("\n")
	if res.Passed() {
		b.WriteString(MarkOK + i18n.T("report.all_met"))
		b.WriteString("\n")
	} else {
		b.WriteString(MarkMissing + i18n.T("report.missing"))
		b.WriteString("\n")
		for _, line := range UnmetLines(res) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Summary is a plain-text, uncolored rendition of res suitable for the
// clipboard, without markers. It never contains the password.
func Summary(res strength.Result) string {
	var b strings.Builder
	b.WriteString(i18n.T("report.strength", TierName(res.Tier())))
	b.WriteString("\n")
	if res.Passed() {
		b.WriteString(i18n.T("report.all_met"))
		return b.String()
	}
	b.WriteString(i18n.T("report.missing"))
	for _, line := range UnmetLines(res) {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}
