// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// eventRelay turns broadcaster signals into Bubble Tea messages. Sends never
// block the emitting goroutine: a full buffer drops the update.
type eventRelay struct {
	events chan tea.Msg
}

func newEventRelay(broadcaster *service.Broadcaster, size int) *eventRelay {
	r := &eventRelay{events: make(chan tea.Msg, size)}
	if broadcaster == nil {
		return r
	}

	broadcaster.OnStageChanged(func(stage models.Stage, progress float64) {
		r.send(stageChangedMsg{stage: stage, progress: progress})
	})
	broadcaster.OnAdvisory(func(message string) {
		r.send(advisoryMsg{message: message})
	})
	broadcaster.OnDataRefreshed(func() {
		r.send(dataRefreshedMsg{})
	})
	return r
}

func (r *eventRelay) send(msg tea.Msg) {
	select {
	case r.events <- msg:
	default:
	}
}

// listen returns a command delivering the next relayed message. It yields
// nil once done is closed so a finished program does not keep reading.
func (r *eventRelay) listen(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-r.events:
			return msg
		case <-done:
			return nil
		}
	}
}

// drain drops updates left over from a previous screen.
func (r *eventRelay) drain() {
	for {
		select {
		case <-r.events:
		default:
			return
		}
	}
}
