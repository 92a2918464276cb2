// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type journalMode int

const (
	modeList journalMode = iota
	modeDetail
	modeNewDay
	modeImport
	modePreferences
)

// mainLoopModel is the workout journal: the day list of the signed-in
// account with the detail, new day, import and preference screens on top.
// The list re-reads the local store on every "data refreshed" signal.
type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	session   models.Session
	buildInfo models.AppBuildInfo
	listen    tea.Cmd
	now       func() time.Time
	copyText  func(string) error

	days     []models.DayRecord
	idx      int
	loading  bool
	busy     bool
	status   string
	advisory string
	overlay  *errorOverlayModel

	mode       journalMode
	detail     models.DayRecord
	dayForm    dayForm
	importForm inputForm
	prefsForm  preferencesForm

	showBuildInfo bool
	logout        bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session, buildInfo models.AppBuildInfo, listen tea.Cmd) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		session:   session,
		buildInfo: buildInfo,
		listen:    listen,
		now:       time.Now,
		copyText:  clipboard.WriteAll,
		loading:   true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadDays(), m.listen)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case daysLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.days = msg.days
		if m.idx >= len(m.days) {
			m.idx = len(m.days) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case dataRefreshedMsg:
		return m, tea.Batch(m.cmdLoadDays(), m.listen)
	case advisoryMsg:
		m.advisory = advisoryText(msg.message)
		return m, m.listen
	case stageChangedMsg:
		return m, m.listen
	case dayLoadedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.detail = msg.day
		m.mode = modeDetail
		return m, nil
	case daySavedMsg:
		m.dayForm.fields.submitting = false
		if msg.err != nil {
			m.dayForm.fields.errMsg = humanizeJournalError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "День записан: " + msg.day.Key().String()
		return m, m.cmdLoadDays()
	case sharedMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("День %s опубликован, код: %s", msg.key, msg.recordID)
		if msg.copied {
			m.status += " (скопирован в буфер обмена)"
		}
		return m, nil
	case importedMsg:
		m.importForm.submitting = false
		if msg.err != nil {
			m.importForm.errMsg = humanizeJournalError(msg.err)
			return m, nil
		}
		m.mode = modeList
		if msg.result.InsertedCount() == 0 {
			m.status = "Такой день уже есть в журнале"
			return m, nil
		}
		m.status = fmt.Sprintf("Импортировано дней: %d", msg.result.InsertedCount())
		return m, m.cmdLoadDays()
	case mirroredMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Синхронизировано, получено дней: %d", msg.result.InsertedCount())
		return m, m.cmdLoadDays()
	case preferencesLoadedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.prefsForm = newPreferencesForm(msg.prefs)
		m.mode = modePreferences
		return m, textinput.Blink
	case preferencesSavedMsg:
		m.prefsForm.submitting = false
		if msg.err != nil {
			m.prefsForm.errMsg = humanizeJournalError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Настройки сохранены"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateForm(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeNewDay, modeImport, modePreferences:
		return m.updateForm(msg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.days)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		day, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdLoadDay(day.Key())
	case key.Matches(msg, keys.newDay):
		m.dayForm = newDayForm(m.now().Format(models.DateKeyLayout))
		m.mode = modeNewDay
		return m, textinput.Blink
	case key.Matches(msg, keys.share):
		day, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m.share(day.Key())
	case key.Matches(msg, keys.importDay):
		m.importForm = newInputForm(formField{label: "Код записи", placeholder: "uuid", limit: 64})
		m.mode = modeImport
		return m, textinput.Blink
	case key.Matches(msg, keys.mirror):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Синхронизация..."
		return m, m.cmdMirror()
	case key.Matches(msg, keys.preferences):
		return m, m.cmdLoadPreferences()
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.share):
		return m.share(m.detail.Key())
	}
	return m, nil
}

func (m mainLoopModel) share(dayKey models.DayKey) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.status = "Публикация..."
	return m, m.cmdShare(dayKey)
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(keyMsg, keys.esc) && m.mode != modeList && m.mode != modeDetail {
		m.mode = modeList
		return m, nil
	}

	switch m.mode {
	case modeNewDay:
		cmd, submit := m.dayForm.update(msg)
		if !submit || m.dayForm.fields.submitting {
			return m, cmd
		}
		day, err := m.dayForm.day(m.session.AccountID)
		if err != nil {
			m.dayForm.fields.errMsg = err.Error()
			return m, nil
		}
		m.dayForm.fields.errMsg = ""
		m.dayForm.fields.submitting = true
		return m, m.cmdSaveDay(day)
	case modeImport:
		if isKey && key.Matches(keyMsg, keys.enter) {
			if m.importForm.submitting {
				return m, nil
			}
			recordID := m.importForm.value(0)
			if recordID == "" {
				m.importForm.errMsg = "Введите код записи"
				return m, nil
			}
			m.importForm.errMsg = ""
			m.importForm.submitting = true
			return m, m.cmdImport(recordID)
		}
		return m, m.importForm.update(msg)
	case modePreferences:
		if isKey {
			switch {
			case key.Matches(keyMsg, keys.tab):
				m.prefsForm.focusNext()
				return m, nil
			case key.Matches(keyMsg, keys.backtab):
				m.prefsForm.focusPrev()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				if m.prefsForm.submitting {
					return m, nil
				}
				prefs, err := m.prefsForm.preferences()
				if err != nil {
					m.prefsForm.errMsg = err.Error()
					return m, nil
				}
				m.prefsForm.errMsg = ""
				m.prefsForm.submitting = true
				return m, m.cmdSavePreferences(prefs)
			}
		}
		return m, m.prefsForm.update(msg)
	}

	return m, nil
}

func (m *mainLoopModel) showError(err error) {
	m.status = ""
	m.overlay = &errorOverlayModel{message: humanizeJournalError(err)}
}

func (m mainLoopModel) current() (models.DayRecord, bool) {
	if len(m.days) == 0 || m.idx < 0 || m.idx >= len(m.days) {
		return models.DayRecord{}, false
	}
	return m.days[m.idx], true
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.mode {
	case modeDetail:
		return renderPage("ТРЕНИРОВКА", m.detailView(), "s: поделиться │ esc: назад")
	case modeNewDay:
		return renderPage("НОВАЯ ТРЕНИРОВКА", m.dayForm.view(), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
	case modeImport:
		return renderPage("ИМПОРТ ТРЕНИРОВКИ", m.importForm.view("Импортировать"), "enter: импортировать │ esc: отмена")
	case modePreferences:
		return renderPage("НАСТРОЙКИ", m.prefsForm.view(), "tab: след. поле │ enter: сохранить │ esc: отмена")
	default:
		return renderPage("ЖУРНАЛ ТРЕНИРОВОК: "+m.session.Login, m.listView(),
			"enter: открыть │ n: новая │ s: поделиться │ i: импорт │ m: синхр. │ p: настройки │ l: выйти │ v: версия │ q: закрыть")
	}
}

func (m mainLoopModel) listView() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.days) == 0:
		b.WriteString("Нет записей\n")
	default:
		b.WriteString(m.daysTable())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.advisory != "" {
		b.WriteString("\n")
		b.WriteString(advisoryStyle.Render("Внимание: " + m.advisory))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) daysTable() string {
	const (
		dateColWidth  = 10
		cloudColWidth = 6
	)
	nameColWidth := lipgloss.Width("День")
	splitColWidth := lipgloss.Width("Сплит")
	for _, d := range m.days {
		if w := lipgloss.Width(fitText(d.DayName, 24)); w > nameColWidth {
			nameColWidth = w
		}
		if w := lipgloss.Width(fitText(d.SplitName, 24)); w > splitColWidth {
			splitColWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-*s │ %-*s │ %-*s │ %s\n", dateColWidth, "Дата", nameColWidth, "День", splitColWidth, "Сплит", "Облако"))
	b.WriteString(strings.Repeat("─", dateColWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", splitColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", cloudColWidth))
	b.WriteString("\n")

	for i, d := range m.days {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		cloud := "-"
		if d.Mirrored {
			cloud = "да"
		}
		b.WriteString(fmt.Sprintf("%s %-*s │ %-*s │ %-*s │ %s\n",
			cursor,
			dateColWidth, d.DateKey,
			nameColWidth, fitText(d.DayName, 24),
			splitColWidth, fitText(valueOrDash(d.SplitName), 24),
			cloud))
	}

	return b.String()
}

func (m mainLoopModel) detailView() string {
	d := m.detail

	var b strings.Builder
	b.WriteString("Дата   │ " + d.DateKey + "\n")
	b.WriteString("День   │ " + d.DayName + "\n")
	b.WriteString("Сплит  │ " + valueOrDash(d.SplitName) + "\n")
	b.WriteString("Облако │ ")
	if d.Mirrored {
		b.WriteString("сохранено\n")
	} else {
		b.WriteString("ожидает синхронизации\n")
	}
	b.WriteString("\nУпражнения:\n")
	if len(d.Exercises) == 0 {
		b.WriteString("  -\n")
	}
	for i, e := range d.Exercises {
		b.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, e.Name, valueOrDash(formatSets(e.Sets))))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) cmdLoadDays() tea.Cmd {
	ctx, workouts, accountID := m.ctx, m.services.WorkoutService, m.session.AccountID
	return func() tea.Msg {
		days, err := workouts.Days(ctx, accountID)
		return daysLoadedMsg{days: days, err: err}
	}
}

func (m mainLoopModel) cmdLoadDay(dayKey models.DayKey) tea.Cmd {
	ctx, workouts, accountID := m.ctx, m.services.WorkoutService, m.session.AccountID
	return func() tea.Msg {
		day, err := workouts.Day(ctx, accountID, dayKey)
		return dayLoadedMsg{day: day, err: err}
	}
}

func (m mainLoopModel) cmdSaveDay(day models.DayRecord) tea.Cmd {
	ctx, workouts := m.ctx, m.services.WorkoutService
	return func() tea.Msg {
		saved, err := workouts.RecordDay(ctx, day)
		return daySavedMsg{day: saved, err: err}
	}
}

func (m mainLoopModel) cmdShare(dayKey models.DayKey) tea.Cmd {
	ctx, sharing, accountID, copyText := m.ctx, m.services.SharingService, m.session.AccountID, m.copyText
	return func() tea.Msg {
		recordID, err := sharing.Share(ctx, accountID, dayKey)
		if err != nil {
			return sharedMsg{key: dayKey, err: err}
		}
		// headless terminals have no clipboard; the code is still shown
		copied := copyText != nil && copyText(recordID) == nil
		return sharedMsg{key: dayKey, recordID: recordID, copied: copied}
	}
}

func (m mainLoopModel) cmdImport(recordID string) tea.Cmd {
	ctx, sharing, accountID := m.ctx, m.services.SharingService, m.session.AccountID
	return func() tea.Msg {
		result, err := sharing.Import(ctx, accountID, recordID)
		return importedMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdMirror() tea.Cmd {
	ctx, mirror, accountID := m.ctx, m.services.MirrorService, m.session.AccountID
	return func() tea.Msg {
		result, err := mirror.Mirror(ctx, accountID)
		return mirroredMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdLoadPreferences() tea.Cmd {
	ctx, preferences, accountID := m.ctx, m.services.PreferenceService, m.session.AccountID
	return func() tea.Msg {
		prefs, err := preferences.Local(ctx, accountID)
		return preferencesLoadedMsg{prefs: prefs, err: err}
	}
}

func (m mainLoopModel) cmdSavePreferences(prefs models.FitnessPreferences) tea.Cmd {
	ctx, preferences, accountID := m.ctx, m.services.PreferenceService, m.session.AccountID
	return func() tea.Msg {
		return preferencesSavedMsg{err: preferences.Save(ctx, accountID, prefs)}
	}
}
