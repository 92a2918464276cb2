// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

var stageTitles = map[models.Stage]string{
	models.StageCheckingAvailability:     "Проверка облачного аккаунта",
	models.StageSyncingPreferences:       "Синхронизация настроек",
	models.StageSyncingFitnessProfile:    "Синхронизация профиля",
	models.StageAwaitingLocalConvergence: "Ожидание истории тренировок",
	models.StageFallbackRemoteFetch:      "Загрузка истории тренировок",
	models.StageComplete:                 "Готово",
}

func stageTitle(stage models.Stage) string {
	if title, ok := stageTitles[stage]; ok {
		return title
	}
	return stage.Title()
}

func advisoryText(message string) string {
	if message == models.AdvisoryDatabaseUnavailable {
		return "База данных временно недоступна"
	}
	return message
}

// outcomeStatus is the journal status line shown after a sync session.
func outcomeStatus(session models.SyncSession) string {
	switch session.Outcome {
	case models.OutcomeFound:
		return "История тренировок синхронизирована"
	case models.OutcomeNotFound:
		if session.HandedOff {
			return "Тренировок пока нет, проверка продолжается в фоне"
		}
		return "Тренировок пока нет"
	case models.OutcomeDegraded:
		if session.HandedOff {
			return "Синхронизация не завершена, продолжается в фоне"
		}
		return "Синхронизация не завершена"
	default:
		return ""
	}
}

// syncScreenModel shows one sign-in synchronization session. Stage and
// advisory updates arrive through listen; the screen quits when the
// orchestrator returns.
type syncScreenModel struct {
	ctx          context.Context
	cancel       context.CancelFunc
	orchestrator service.SyncOrchestrator
	accountID    int64
	listen       tea.Cmd

	spinner spinner.Model
	bar     progress.Model

	stage    models.Stage
	percent  float64
	advisory string
	skipping bool

	finished   bool
	session    models.SyncSession
	quitByUser bool
}

func newSyncScreenModel(
	ctx context.Context,
	cancel context.CancelFunc,
	orchestrator service.SyncOrchestrator,
	accountID int64,
	listen tea.Cmd,
) syncScreenModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return syncScreenModel{
		ctx:          ctx,
		cancel:       cancel,
		orchestrator: orchestrator,
		accountID:    accountID,
		listen:       listen,
		spinner:      s,
		bar:          progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m syncScreenModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRun(), m.listen)
}

func (m syncScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncFinishedMsg:
		m.finished = true
		m.session = msg.session
		m.stage = msg.session.Stage
		m.percent = msg.session.Progress
		if msg.session.Advisory != "" {
			m.advisory = msg.session.Advisory
		}
		return m, tea.Quit
	case stageChangedMsg:
		m.stage = msg.stage
		m.percent = msg.progress
		return m, tea.Batch(m.bar.SetPercent(msg.progress), m.listen)
	case advisoryMsg:
		m.advisory = msg.message
		return m, m.listen
	case dataRefreshedMsg:
		return m, m.listen
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		if bar, ok := updated.(progress.Model); ok {
			m.bar = bar
		}
		return m, cmd
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.quitByUser = true
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, keys.esc):
			// the orchestrator returns a degraded session once cancelled
			if !m.skipping {
				m.skipping = true
				m.cancel()
			}
			return m, nil
		}
	}

	return m, nil
}

func (m syncScreenModel) View() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(stageTitle(m.stage))
	b.WriteString("\n\n")
	b.WriteString(m.bar.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Прогресс: %d%%\n", int(m.percent*100)))

	if m.advisory != "" {
		b.WriteString("\n")
		b.WriteString(advisoryStyle.Render("Внимание: " + advisoryText(m.advisory)))
		b.WriteString("\n")
	}
	if m.skipping {
		b.WriteString("\nОстанавливаем синхронизацию...\n")
	}

	return renderPage("СИНХРОНИЗАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: пропустить")
}

func (m syncScreenModel) cmdRun() tea.Cmd {
	ctx := m.ctx
	orchestrator := m.orchestrator
	accountID := m.accountID

	return func() tea.Msg {
		return syncFinishedMsg{session: orchestrator.Run(ctx, accountID)}
	}
}
