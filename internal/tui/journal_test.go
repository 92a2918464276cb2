// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func TestJournal_ListsDays(t *testing.T) {
	ts := newTestServices()
	mirrored := testDay("2026-10-19", "Push", "PPL")
	mirrored.Mirrored = true
	ts.workouts.days = []models.DayRecord{mirrored, testDay("2026-10-18", "Legs", "")}

	m := newTestJournal(ts)
	assert.Contains(t, m.View(), "Загрузка...")

	m, _ = send(m, m.cmdLoadDays()())

	view := m.View()
	assert.Contains(t, view, "ЖУРНАЛ ТРЕНИРОВОК: athlete")
	assert.Contains(t, view, "> 2026-10-19")
	assert.Contains(t, view, "Push")
	assert.Contains(t, view, "Legs")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx, "cursor stops at the last day")
}

func TestJournal_RefreshSignalReloads(t *testing.T) {
	ts := newTestServices()
	m := newTestJournal(ts)
	m, _ = send(m, daysLoadedMsg{})
	assert.Contains(t, m.View(), "Нет записей")

	ts.workouts.days = []models.DayRecord{testDay("2026-10-19", "Push", "")}
	m, cmd := send(m, dataRefreshedMsg{})
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	m, _ = send(m, batch[0]())
	assert.Len(t, m.days, 1)
}

func TestJournal_LoadErrorShowsOverlay(t *testing.T) {
	m := newTestJournal(newTestServices())

	m, _ = send(m, daysLoadedMsg{err: adapter.ErrRemoteUnavailable})
	assert.Contains(t, m.View(), "Отсутствует сеть или Сервер недоступен")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.overlay)
}

func TestJournal_OpenDetail(t *testing.T) {
	ts := newTestServices()
	day := testDay("2026-10-19", "Push", "PPL")
	ts.workouts.days = []models.DayRecord{day}
	ts.workouts.day = day

	m := newTestJournal(ts)
	m, _ = send(m, daysLoadedMsg{days: ts.workouts.days})

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, modeDetail, m.mode)
	assert.Contains(t, m.View(), "1. Squat: 5x100")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
}

func TestJournal_RecordDay(t *testing.T) {
	tests := []struct {
		name       string
		exercises  string
		recordErr  error
		wantMode   journalMode
		wantErrMsg string
		wantSaved  bool
	}{
		{name: "saved", exercises: "Squat: 5x100", wantMode: modeList, wantSaved: true},
		{name: "duplicate day", exercises: "Squat: 5x100", recordErr: store.ErrDayAlreadyExists, wantMode: modeNewDay, wantErrMsg: "День с такой датой и названием уже записан", wantSaved: true},
		{name: "bad exercise text", exercises: "Squat 5x100", wantMode: modeNewDay, wantErrMsg: "строка 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices()
			ts.workouts.recordErr = tt.recordErr
			m := newTestJournal(ts)
			m, _ = send(m, daysLoadedMsg{})

			m, _ = send(m, keyRunes("n"))
			require.Equal(t, modeNewDay, m.mode)
			assert.Equal(t, "2026-10-19", m.dayForm.fields.value(dayFieldDate))

			m.dayForm.fields.inputs[dayFieldName].SetValue("Push")
			m.dayForm.fields.inputs[dayFieldSplit].SetValue("PPL")
			m.dayForm.exercises.SetValue(tt.exercises)

			m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
			if cmd != nil {
				m, _ = send(m, cmd())
			}

			assert.Equal(t, tt.wantMode, m.mode)
			if tt.wantErrMsg != "" {
				assert.Contains(t, m.dayForm.fields.errMsg, tt.wantErrMsg)
			}
			if !tt.wantSaved {
				assert.Empty(t, ts.workouts.recorded)
				return
			}
			require.Len(t, ts.workouts.recorded, 1)
			got := ts.workouts.recorded[0]
			assert.Equal(t, testAccountID, got.AccountID)
			assert.Equal(t, "Push", got.DayName)
			assert.Equal(t, "PPL", got.SplitName)
			assert.Len(t, got.Exercises, 1)
		})
	}
}

func TestJournal_EscLeavesForm(t *testing.T) {
	m := newTestJournal(newTestServices())

	m, _ = send(m, keyRunes("i"))
	require.Equal(t, modeImport, m.mode)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
}

func TestJournal_Share(t *testing.T) {
	ts := newTestServices()
	ts.sharing.recordID = "rec-1"
	m := newTestJournal(ts)
	m, _ = send(m, daysLoadedMsg{days: []models.DayRecord{testDay("2026-10-19", "Push", "")}})

	m, cmd := send(m, keyRunes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	_, second := send(m, keyRunes("s"))
	assert.Nil(t, second, "one publish at a time")

	m, _ = send(m, cmd())
	assert.False(t, m.busy)
	assert.Contains(t, m.View(), "rec-1")
	assert.NotContains(t, m.View(), "буфер обмена")
	assert.Equal(t, []models.DayKey{{DateKey: "2026-10-19", DayName: "Push"}}, ts.sharing.shared)
}

func TestJournal_ShareCopiesRecordID(t *testing.T) {
	ts := newTestServices()
	ts.sharing.recordID = "rec-2"
	m := newTestJournal(ts)
	var copied string
	m.copyText = func(text string) error {
		copied = text
		return nil
	}
	m, _ = send(m, daysLoadedMsg{days: []models.DayRecord{testDay("2026-10-19", "Push", "")}})

	m, cmd := send(m, keyRunes("s"))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, "rec-2", copied)
	assert.Contains(t, m.View(), "буфер обмена")
}

func TestJournal_Import(t *testing.T) {
	tests := []struct {
		name       string
		result     models.MergeResult
		err        error
		wantStatus string
		wantErrMsg string
	}{
		{
			name:       "inserted",
			result:     models.MergeResult{Inserted: []models.DayKey{{DateKey: "2026-10-19", DayName: "Push"}}},
			wantStatus: "Импортировано дней: 1",
		},
		{
			name:       "already present",
			result:     models.MergeResult{AlreadyPresent: []models.DayKey{{DateKey: "2026-10-19", DayName: "Push"}}},
			wantStatus: "Такой день уже есть в журнале",
		},
		{name: "unknown record", err: adapter.ErrNotFound, wantErrMsg: "Запись с таким кодом не найдена"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices()
			ts.sharing.importResult = tt.result
			ts.sharing.importErr = tt.err
			m := newTestJournal(ts)

			m, _ = send(m, keyRunes("i"))
			m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
			assert.Nil(t, cmd)
			assert.Equal(t, "Введите код записи", m.importForm.errMsg)

			m.importForm.inputs[0].SetValue(" rec-1 ")
			m, cmd = send(m, tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			m, _ = send(m, cmd())

			assert.Equal(t, []string{"rec-1"}, ts.sharing.imported)
			if tt.wantErrMsg != "" {
				assert.Equal(t, modeImport, m.mode)
				assert.Equal(t, tt.wantErrMsg, m.importForm.errMsg)
				return
			}
			assert.Equal(t, modeList, m.mode)
			assert.Equal(t, tt.wantStatus, m.status)
		})
	}
}

func TestJournal_MirrorNow(t *testing.T) {
	ts := newTestServices()
	ts.mirror.result = models.MergeResult{Inserted: []models.DayKey{{DateKey: "2026-10-19", DayName: "Push"}}}
	m := newTestJournal(ts)

	m, cmd := send(m, keyRunes("m"))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, 1, ts.mirror.calls)
	assert.Equal(t, "Синхронизировано, получено дней: 1", m.status)

	ts.mirror.err = errors.New("boom")
	m, cmd = send(m, keyRunes("m"))
	m, _ = send(m, cmd())
	require.NotNil(t, m.overlay)
	assert.Equal(t, "boom", m.overlay.message)
}

func TestJournal_EditPreferences(t *testing.T) {
	ts := newTestServices()
	m := newTestJournal(ts)

	m, cmd := send(m, keyRunes("p"))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())
	require.Equal(t, modePreferences, m.mode)
	assert.Equal(t, models.GoalGeneralFitness, m.prefsForm.value(prefFieldGoal))

	m.prefsForm.inputs[prefFieldDays].SetValue("9")
	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, errDaysPerWeek.Error(), m.prefsForm.errMsg)

	m.prefsForm.inputs[prefFieldGoal].SetValue(models.GoalStrength)
	m.prefsForm.inputs[prefFieldDays].SetValue("4")
	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Настройки сохранены", m.status)
	require.Len(t, ts.preferences.saved, 1)
	assert.Equal(t, models.GoalStrength, ts.preferences.saved[0].Goal)
	assert.Equal(t, 4, ts.preferences.saved[0].TrainingDaysPerWeek)
	assert.True(t, ts.preferences.saved[0].Completed)
}

func TestJournal_LogoutAndQuit(t *testing.T) {
	m := newTestJournal(newTestServices())

	out, cmd := send(m, keyRunes("l"))
	assert.True(t, out.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	out, cmd = send(m, keyRunes("q"))
	assert.False(t, out.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestJournal_BuildInfo(t *testing.T) {
	m := newTestJournal(newTestServices())

	m, _ = send(m, keyRunes("v"))
	assert.Contains(t, m.View(), "1.0.0")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "ИНФОРМАЦИЯ О ПРОГРАММЕ")
}
