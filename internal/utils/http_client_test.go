// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.NotNil(t, client1.R())
}

func TestHTTPClient_WithRetries(t *testing.T) {
	client := NewHTTPClient().WithRetries(2, 10*time.Millisecond, 50*time.Millisecond)

	assert.Equal(t, 2, client.RetryCount)
	assert.Equal(t, 10*time.Millisecond, client.RetryWaitTime)
	assert.Equal(t, 50*time.Millisecond, client.RetryMaxWaitTime)
}

func TestHTTPClient_WithRetriesDisabled(t *testing.T) {
	client := NewHTTPClient().WithRetries(0, time.Second, time.Second)
	assert.Equal(t, 0, client.RetryCount)
}
