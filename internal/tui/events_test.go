// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func TestEventRelay_ForwardsBroadcasts(t *testing.T) {
	broadcaster := service.NewBroadcaster()
	relay := newEventRelay(broadcaster, 8)
	done := make(chan struct{})
	listen := relay.listen(done)

	broadcaster.StageChanged(models.StageSyncingPreferences, 0.1)
	broadcaster.Advisory(models.AdvisoryDatabaseUnavailable)
	broadcaster.DataRefreshed()

	assert.Equal(t, stageChangedMsg{stage: models.StageSyncingPreferences, progress: 0.1}, listen())
	assert.Equal(t, advisoryMsg{message: models.AdvisoryDatabaseUnavailable}, listen())
	assert.Equal(t, dataRefreshedMsg{}, listen())

	close(done)
	assert.Nil(t, listen())
}

func TestEventRelay_FullBufferDropsUpdates(t *testing.T) {
	broadcaster := service.NewBroadcaster()
	relay := newEventRelay(broadcaster, 1)

	broadcaster.DataRefreshed()
	assert.NotPanics(t, func() { broadcaster.DataRefreshed() })
	assert.Len(t, relay.events, 1)

	relay.drain()
	assert.Empty(t, relay.events)
}
