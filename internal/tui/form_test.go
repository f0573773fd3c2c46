// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/pwstrength/internal/i18n"
	"github.com/toeirei/pwstrength/internal/report"
	"github.com/toeirei/pwstrength/internal/strength"
)

func typeString(t *testing.T, m formModel, s string) formModel {
	t.Helper()
	for _, r := range s {
		mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = mm.(formModel)
	}
	return m
}

func press(t *testing.T, m formModel, k tea.KeyType) formModel {
	t.Helper()
	mm, _ := m.Update(tea.KeyMsg{Type: k})
	return mm.(formModel)
}

func newTestForm(copied *string) formModel {
	return newFormModel(Options{
		Masked:  true,
		NoColor: true,
		CopyFunc: func(s string) error {
			if copied != nil {
				*copied = s
			}
			return nil
		},
	})
}

func TestForm_LiveTierFollowsEachKeystroke(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)

	if m.result.Score != 0 || m.result.Tier() != strength.Weak {
		t.Fatalf("expected empty field to score 0/Weak, got %d", m.result.Score)
	}

	m = typeString(t, m, "Abcdefg1")
	if m.result.Tier() != strength.Medium {
		t.Fatalf("expected Medium after 'Abcdefg1', got %v", m.result.Tier())
	}
	if !strings.Contains(ansi.Strip(m.View()), "Strength: Medium") {
		t.Fatalf("tier label not updated in view:\n%s", ansi.Strip(m.View()))
	}

	m = typeString(t, m, "!")
	if m.result.Tier() != strength.Strong {
		t.Fatalf("expected Strong after adding '!', got %v", m.result.Tier())
	}

	m = press(t, m, tea.KeyBackspace)
	if m.result.Tier() != strength.Medium {
		t.Fatalf("expected Medium after backspace, got %v", m.result.Tier())
	}
}

func TestForm_ToggleKeepsValue(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)
	m = typeString(t, m, "secret1A")

	if !m.masked || m.input.EchoMode != textinput.EchoPassword {
		t.Fatalf("expected masked input initially")
	}
	if strings.Contains(ansi.Strip(m.View()), "secret1A") {
		t.Fatalf("masked view must not show the password")
	}

	m = press(t, m, tea.KeyCtrlT)
	if m.masked || m.input.EchoMode != textinput.EchoNormal {
		t.Fatalf("expected plaintext after toggle")
	}
	if m.input.Value() != "secret1A" {
		t.Fatalf("toggle changed the value: %q", m.input.Value())
	}
	if !strings.Contains(ansi.Strip(m.View()), "secret1A") {
		t.Fatalf("plaintext view should show the password")
	}

	m = press(t, m, tea.KeyCtrlT)
	if !m.masked || m.input.Value() != "secret1A" {
		t.Fatalf("expected masked again with unchanged value")
	}
}

func TestForm_ToggleButtonViaFocus(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)
	m = press(t, m, tea.KeyTab)
	if m.focus != focusToggle {
		t.Fatalf("expected toggle button focused, got %d", m.focus)
	}
	m = press(t, m, tea.KeyEnter)
	if m.masked {
		t.Fatalf("expected enter on toggle button to unmask")
	}
	m = press(t, m, tea.KeyShiftTab)
	if m.focus != focusInput {
		t.Fatalf("expected focus back on input, got %d", m.focus)
	}
	m = press(t, m, tea.KeyShiftTab)
	if m.focus != focusCheck {
		t.Fatalf("expected focus to wrap to check button, got %d", m.focus)
	}
}

func TestForm_CheckOpensDialogWithUnmetRules(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)
	m = typeString(t, m, "abcdefgh")

	m = press(t, m, tea.KeyCtrlS)
	if m.dialog == nil {
		t.Fatalf("expected dialog to open")
	}
	out := ansi.Strip(m.View())
	for _, want := range []string{"Missing requirements", "At least one number", "At least one uppercase letter", "At least one special character"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dialog view, got:\n%s", want, out)
		}
	}
	if strings.Contains(m.dialog.Message(), "At least 8 characters long") {
		t.Fatalf("length rule is met and must not be listed")
	}

	// the dialog captures keys: typing does not change the password
	m = typeString(t, m, "Z")
	if m.input.Value() != "abcdefgh" {
		t.Fatalf("input changed while dialog open: %q", m.input.Value())
	}

	m = press(t, m, tea.KeyEnter)
	if m.dialog != nil {
		t.Fatalf("expected enter on OK to close dialog")
	}
}

func TestForm_CheckButtonStrongPassword(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)
	m = typeString(t, m, "Abcdefg1!")
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyTab)
	if m.focus != focusCheck {
		t.Fatalf("expected check button focused, got %d", m.focus)
	}
	m = press(t, m, tea.KeyEnter)
	if m.dialog == nil {
		t.Fatalf("expected dialog after pressing check")
	}
	if !strings.Contains(m.dialog.Message(), "Your password meets all requirements!") {
		t.Fatalf("expected success message, got %q", m.dialog.Message())
	}
	m = press(t, m, tea.KeyEsc)
	if m.dialog != nil {
		t.Fatalf("expected esc to close dialog")
	}
}

func TestForm_CopySummary(t *testing.T) {
	i18n.Init("en")
	var copied string
	m := newTestForm(&copied)
	m = typeString(t, m, "Abcdefg1")
	m = press(t, m, tea.KeyEnter)
	if m.dialog == nil {
		t.Fatalf("expected enter in the field to run the check")
	}

	m = typeString(t, m, "c")
	if !strings.Contains(copied, "At least one special character") {
		t.Fatalf("unexpected clipboard content: %q", copied)
	}
	if strings.Contains(copied, "Abcdefg1") {
		t.Fatalf("clipboard summary must not contain the password")
	}
	if m.status == "" || m.statusErr {
		t.Fatalf("expected success status, got %q (err=%t)", m.status, m.statusErr)
	}
}

func TestForm_CopyFailureIsNotFatal(t *testing.T) {
	i18n.Init("en")
	m := newFormModel(Options{NoColor: true, CopyFunc: func(string) error { return errors.New("no clipboard") }})
	m = press(t, m, tea.KeyCtrlS)
	m = press(t, m, tea.KeyRight)
	if !m.dialog.IsFocusedRight() {
		t.Fatalf("expected copy button focused")
	}
	m = press(t, m, tea.KeyEnter)
	if m.dialog == nil {
		t.Fatalf("dialog should stay open after a failed copy")
	}
	if !m.statusErr || !strings.Contains(m.status, "no clipboard") {
		t.Fatalf("expected error status, got %q", m.status)
	}
}

func TestForm_QuitKeys(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command on esc")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestForm_WindowSizeResizesDialog(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)
	m = press(t, m, tea.KeyCtrlS)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	m = mm.(formModel)
	if m.dialog.Width() != 26 {
		t.Fatalf("expected dialog width 26, got %d", m.dialog.Width())
	}
}

func TestForm_ChecklistFollowsEachKeystroke(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "✗ At least one number") || strings.Contains(out, "✓ ") {
		t.Fatalf("expected every rule unmet for the empty field:\n%s", out)
	}

	m = typeString(t, m, "7")
	out = ansi.Strip(m.View())
	if !strings.Contains(out, "✓ At least one number") || !strings.Contains(out, "✗ At least 8 characters long") {
		t.Fatalf("checklist not updated after typing a digit:\n%s", out)
	}
}

func TestForm_DialogUsesReportMarkers(t *testing.T) {
	i18n.Init("en")
	m := newTestForm(nil)
	m = typeString(t, m, "abc")
	m = press(t, m, tea.KeyCtrlS)
	if !strings.HasPrefix(m.dialog.Message(), report.MarkMissing) {
		t.Fatalf("expected missing marker, got %q", m.dialog.Message())
	}
	m = press(t, m, tea.KeyEnter)

	m = typeString(t, m, "DEFG1!")
	m = press(t, m, tea.KeyCtrlS)
	if !strings.HasPrefix(m.dialog.Message(), report.MarkOK) {
		t.Fatalf("expected success marker, got %q", m.dialog.Message())
	}
}
