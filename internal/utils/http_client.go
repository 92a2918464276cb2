// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty-based client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRetries enables resty's retry loop for transport-level failures.
// Responses with a status code are never retried here; status handling is
// left to the caller.
func (c *HTTPClient) WithRetries(count int, wait, maxWait time.Duration) *HTTPClient {
	if count <= 0 {
		return c
	}

	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(maxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil
		})
	return c
}
