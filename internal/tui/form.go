// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label       string
	placeholder string
	value       string
	limit       int
	secret      bool
}

// inputForm is a column of labelled single-line inputs with tab navigation.
type inputForm struct {
	labels []string
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string
}

func newInputForm(fields ...formField) inputForm {
	f := inputForm{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 40
		if field.limit > 0 {
			in.CharLimit = field.limit
		}
		in.SetValue(field.value)
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}

		f.labels[i] = field.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// blurAll drops the focus so a trailing widget can take it.
func (f *inputForm) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// reset clears every input and focuses the first one.
func (f *inputForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f inputForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// secret returns the raw input; passwords are not trimmed.
func (f inputForm) secret(i int) string {
	return f.inputs[i].Value()
}

func (f inputForm) labelWidth() int {
	width := lipgloss.Width("Поле")
	for _, label := range f.labels {
		if w := lipgloss.Width(label); w > width {
			width = w
		}
	}
	return width
}

// view renders the inputs as a two-column table followed by the submit
// button and the error line.
func (f inputForm) view(submitLabel string) string {
	var b strings.Builder
	width := f.labelWidth()

	b.WriteString(fmt.Sprintf("%-*s │ Значение\n", width, "Поле"))
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [", width, f.labels[i]))
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if submitLabel != "" {
		if f.submitting {
			b.WriteString("\n[" + submitLabel + "...]\n")
		} else {
			b.WriteString("\n[" + submitLabel + "]\n")
		}
	}

	if f.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(f.errMsg)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
