// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pwstrength/internal/i18n"
	"github.com/toeirei/pwstrength/internal/logging"
	"github.com/toeirei/pwstrength/internal/report"
	"github.com/toeirei/pwstrength/internal/strength"
	"github.com/toeirei/pwstrength/internal/tui/frame"
)

// focusTarget is the focusable element of the form.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusToggle
	focusCheck
	focusCount
)

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Check  key.Binding
	Submit key.Binding
	Quit   key.Binding
	Copy   key.Binding
	Left   key.Binding
	Right  key.Binding
	Close  key.Binding
}

var keys = formKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	Toggle: key.NewBinding(key.WithKeys("ctrl+t")),
	Check:  key.NewBinding(key.WithKeys("ctrl+s")),
	Submit: key.NewBinding(key.WithKeys("enter", " ")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	Copy:   key.NewBinding(key.WithKeys("c")),
	Left:   key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	Right:  key.NewBinding(key.WithKeys("right", "l", "tab")),
	Close:  key.NewBinding(key.WithKeys("esc")),
}

// Options configures a new form.
type Options struct {
	// Masked is the initial visibility state of the password field.
	Masked  bool
	NoColor bool
	// CopyFunc writes text to the clipboard. Defaults to atotto/clipboard.
	CopyFunc func(string) error
}

// formModel is the whole view state of the strength form. The mask flag is
// owned here and nowhere else.
type formModel struct {
	input  textinput.Model
	masked bool
	focus  focusTarget
	result strength.Result

	dialog *frame.Dialog
	// dialogResult is the result the open dialog was built from.
	dialogResult strength.Result

	status    string
	statusErr bool
	width     int
	noColor   bool
	copyFn    func(string) error
}

func newFormModel(opts Options) formModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = i18n.T("form.placeholder")
	ti.EchoCharacter = '•'
	ti.Width = 40
	ti.Focus()

	m := formModel{
		input:   ti,
		noColor: opts.NoColor,
		copyFn:  opts.CopyFunc,
		result:  strength.Evaluate(""),
	}
	if m.copyFn == nil {
		m.copyFn = clipboard.WriteAll
	}
	m.setMasked(opts.Masked)
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *formModel) setMasked(masked bool) {
	m.masked = masked
	if masked {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
}

// evaluate refreshes the live result from the current field value.
func (m *formModel) evaluate() {
	m.result = strength.Evaluate(m.input.Value())
}

func (m *formModel) setFocus(f focusTarget) tea.Cmd {
	m.focus = (f + focusCount) % focusCount
	if m.focus == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *formModel) openDialog() {
	m.evaluate()
	m.dialogResult = m.result

	var body string
	if m.result.Passed() {
		body = report.MarkOK + i18n.T("dialog.all_met")
	} else {
		body = report.MarkMissing + i18n.T("dialog.missing") + "\n" + strings.Join(report.UnmetLines(m.result), "\n")
	}
	title := i18n.T("dialog.title") + " · " + report.TierName(m.result.Tier())
	m.dialog = frame.NewDialog(title, body, i18n.T("dialog.ok"), i18n.T("dialog.copy"))
	if m.width > 0 {
		m.dialog.SetWidth(min(56, m.width-4))
	}
	m.status = ""
}

func (m *formModel) closeDialog() {
	m.dialog = nil
}

func (m *formModel) copySummary() {
	if err := m.copyFn(report.Summary(m.dialogResult)); err != nil {
		logging.Warnf("clipboard copy failed: %v", err)
		m.status = i18n.T("dialog.copy_failed", err)
		m.statusErr = true
		return
	}
	m.status = i18n.T("dialog.copied")
	m.statusErr = false
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		if m.dialog != nil {
			m.dialog.SetWidth(min(56, m.width-4))
		}
		return m, nil
	}

	if m.dialog != nil {
		return m.updateDialog(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			m.setMasked(!m.masked)
			return m, nil
		case key.Matches(msg, keys.Check):
			m.openDialog()
			return m, nil
		case key.Matches(msg, keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case m.focus != focusInput && key.Matches(msg, keys.Submit):
			if m.focus == focusToggle {
				m.setMasked(!m.masked)
			} else {
				m.openDialog()
			}
			return m, nil
		case m.focus == focusInput && msg.Type == tea.KeyEnter:
			m.openDialog()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.evaluate()
	return m, cmd
}

// updateDialog handles input while the result dialog is open; the dialog
// captures every key until it is closed.
func (m formModel) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		// keep the cursor blinking underneath
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch {
	case km.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(km, keys.Close):
		m.closeDialog()
	case key.Matches(km, keys.Copy):
		m.copySummary()
	case key.Matches(km, keys.Left) && m.dialog.IsFocusedRight():
		m.dialog.FocusLeft()
	case key.Matches(km, keys.Right) && !m.dialog.IsFocusedRight():
		m.dialog.FocusRight()
	case key.Matches(km, keys.Submit):
		if m.dialog.IsFocusedRight() {
			m.copySummary()
		} else {
			m.closeDialog()
		}
	}
	return m, nil
}

func (m formModel) style(s lipgloss.Style) lipgloss.Style {
	if m.noColor {
		return lipgloss.NewStyle().
			Bold(s.GetBold()).
			Padding(s.GetPadding()).
			Margin(s.GetMargin())
	}
	return s
}

func (m formModel) renderButton(label string, focused bool) string {
	if focused {
		if m.noColor {
			return m.style(activeButtonStyle).Render("[" + label + "]")
		}
		return activeButtonStyle.Render(label)
	}
	if m.noColor {
		return m.style(buttonStyle).Render(" " + label + " ")
	}
	return buttonStyle.Render(label)
}

func (m formModel) tierLine() string {
	tier := m.result.Tier()
	name := report.TierName(tier)
	if !m.noColor {
		name = tierStyle.Foreground(report.TierColor(tier)).Render(name)
	}
	return i18n.T("form.strength", name)
}

func (m formModel) formView() string {
	var b strings.Builder

	b.WriteString(m.style(titleStyle).Render(i18n.T("form.title")))
	b.WriteString("\n")

	label := i18n.T("form.password_label")
	if m.focus == focusInput {
		b.WriteString(m.style(focusedLabelStyle).Render(label))
	} else {
		b.WriteString(m.style(labelStyle).Render(label))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.tierLine())
	b.WriteString("\n")
	b.WriteString(m.style(helpStyle).Render(strings.Join(report.Checklist(m.result), "\n")))
	b.WriteString("\n\n")

	toggleLabel := i18n.T("form.show")
	if !m.masked {
		toggleLabel = i18n.T("form.hide")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(toggleLabel, m.focus == focusToggle),
		m.renderButton(i18n.T("form.check"), m.focus == focusCheck),
	))
	b.WriteString("\n\n")

	help := i18n.T("form.help")
	if m.width > 0 {
		help = frame.Footer(help, "", m.width-4)
	}
	b.WriteString(m.style(helpStyle).Render(help))

	if m.status != "" {
		st := successStyle
		if m.statusErr {
			st = errorStyle
		}
		b.WriteString("\n")
		b.WriteString(m.style(st).Render(m.status))
	}

	return m.style(docStyle).Render(b.String())
}

func (m formModel) View() string {
	view := m.formView()
	if m.dialog != nil {
		return frame.Overlay(view, m.dialog.Render())
	}
	return view
}
