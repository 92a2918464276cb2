// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// Broadcaster fans the outbound sync signals out to subscribers. It is safe
// for concurrent use. Subscribers run synchronously on the emitting
// goroutine and must not block.
type Broadcaster struct {
	mu         sync.RWMutex
	refreshed  []func()
	stages     []func(models.Stage, float64)
	advisories []func(string)
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// OnDataRefreshed subscribes fn to the "data refreshed" signal. Receivers
// re-query their own view; receiving it twice is harmless.
func (b *Broadcaster) OnDataRefreshed(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshed = append(b.refreshed, fn)
}

// OnStageChanged subscribes fn to stage and progress updates.
func (b *Broadcaster) OnStageChanged(fn func(models.Stage, float64)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stages = append(b.stages, fn)
}

// OnAdvisory subscribes fn to non-blocking user-visible advisories.
func (b *Broadcaster) OnAdvisory(fn func(string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.advisories = append(b.advisories, fn)
}

func (b *Broadcaster) DataRefreshed() {
	b.mu.RLock()
	subscribers := append([]func(){}, b.refreshed...)
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn()
	}
}

func (b *Broadcaster) StageChanged(stage models.Stage, progress float64) {
	b.mu.RLock()
	subscribers := append([]func(models.Stage, float64){}, b.stages...)
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn(stage, progress)
	}
}

func (b *Broadcaster) Advisory(message string) {
	b.mu.RLock()
	subscribers := append([]func(string){}, b.advisories...)
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn(message)
	}
}
