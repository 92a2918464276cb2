// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fit-keeper/models"
)

const (
	dayFieldDate = iota
	dayFieldName
	dayFieldSplit
	dayFieldExercises
)

// dayForm collects a new workout day: date, day name, optional split and
// the exercise text parsed by parseExercises.
type dayForm struct {
	fields    inputForm
	exercises textarea.Model
	focus     int
}

func newDayForm(today string) dayForm {
	fields := newInputForm(
		formField{label: "Дата", placeholder: models.DateKeyLayout, value: today, limit: len(models.DateKeyLayout)},
		formField{label: "День", placeholder: "Push", limit: 64},
		formField{label: "Сплит", placeholder: "можно пусто", limit: 64},
	)

	area := textarea.New()
	area.Placeholder = "Жим лёжа: 8x60, 8x60, 6x70"
	area.SetWidth(56)
	area.SetHeight(6)
	area.ShowLineNumbers = false

	return dayForm{fields: fields, exercises: area}
}

// update returns submit=true when the user asked to save the form.
func (f *dayForm) update(msg tea.Msg) (tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.save):
			return nil, true
		case key.Matches(keyMsg, keys.tab):
			f.moveFocus(1)
			return nil, false
		case key.Matches(keyMsg, keys.backtab):
			f.moveFocus(-1)
			return nil, false
		case key.Matches(keyMsg, keys.enter) && f.focus != dayFieldExercises:
			f.moveFocus(1)
			return nil, false
		}
	}

	if f.focus == dayFieldExercises {
		var cmd tea.Cmd
		f.exercises, cmd = f.exercises.Update(msg)
		return cmd, false
	}
	return f.fields.update(msg), false
}

func (f *dayForm) moveFocus(step int) {
	total := dayFieldExercises + 1
	next := (f.focus + step + total) % total

	f.fields.blurAll()
	f.exercises.Blur()
	f.focus = next
	if next == dayFieldExercises {
		f.exercises.Focus()
		return
	}
	f.fields.focus = next
	f.fields.inputs[next].Focus()
}

// day builds the record to store for accountID.
func (f dayForm) day(accountID int64) (models.DayRecord, error) {
	exercises, err := parseExercises(f.exercises.Value())
	if err != nil {
		return models.DayRecord{}, err
	}

	return models.DayRecord{
		AccountID: accountID,
		DateKey:   f.fields.value(dayFieldDate),
		DayName:   f.fields.value(dayFieldName),
		SplitName: f.fields.value(dayFieldSplit),
		Exercises: exercises,
	}, nil
}

func (f dayForm) view() string {
	var b strings.Builder
	b.WriteString(f.fields.view(""))
	b.WriteString("\n\nУпражнения (по одному на строку):\n")
	b.WriteString(f.exercises.View())

	if f.fields.submitting {
		b.WriteString("\n\n[Сохранить...]")
	} else {
		b.WriteString("\n\n[Сохранить]")
	}
	if f.fields.errMsg != "" {
		b.WriteString("\n\nОшибка: ")
		b.WriteString(f.fields.errMsg)
	}
	return b.String()
}
