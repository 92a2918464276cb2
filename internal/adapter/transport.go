// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
)

const breakerName = "go-fit-keeper-api"

// Transport is the HTTP connection to the server shared by every adapter.
// Each request goes through one circuit breaker, so a server that keeps
// failing makes [RemoteStore.IsAvailable] report false without waiting for
// another timeout.
type Transport struct {
	client  *utils.HTTPClient
	breaker *gobreaker.CircuitBreaker[*resty.Response]

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewTransport normalises and validates the base URL, configures timeouts,
// transport retries and the breaker, and initialises the HMAC hasher pool
// used for upload integrity hashes.
func NewTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (*Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient().WithRetries(adapterCfg.RetryCount, 100*time.Millisecond, time.Second)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &Transport{
		client:  client,
		breaker: newBreaker(adapterCfg.BreakerFailures, adapterCfg.BreakerTimeout, logger),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

func newBreaker(failures uint32, timeout time.Duration, log *logger.Logger) *gobreaker.CircuitBreaker[*resty.Response] {
	if failures == 0 {
		failures = 5
	}
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// a caller giving up is not a server failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// all subsequent authenticated requests.
func (t *Transport) SetToken(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held, or an empty string.
func (t *Transport) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// BreakerOpen reports whether the breaker currently rejects requests.
func (t *Transport) BreakerOpen() bool {
	return t.breaker.State() == gobreaker.StateOpen
}

// serverStatusError marks a 5xx response as a breaker failure while keeping
// the response for error mapping.
type serverStatusError struct {
	resp *resty.Response
}

func (e *serverStatusError) Error() string {
	return fmt.Sprintf("server responded with status %d", e.resp.StatusCode())
}

// execute sends one request through the breaker and maps the outcome to the
// package sentinels.
func (t *Transport) execute(op string, send func() (*resty.Response, error)) (*resty.Response, error) {
	resp, err := t.breaker.Execute(func() (*resty.Response, error) {
		resp, err := send()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return resp, &serverStatusError{resp: resp}
		}
		return resp, nil
	})

	var statusErr *serverStatusError
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		return resp, mapHTTPError(resp)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		return nil, fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, op, err)
	case errors.As(err, &statusErr):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return statusErr.resp, mapHTTPError(statusErr.resp)
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return nil, fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, op, err)
	}
}

func (t *Transport) request(ctx context.Context) *resty.Request {
	return t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// authedRequest returns [ErrNotSignedIn] when no token is set.
func (t *Transport) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := t.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}
	return t.request(ctx).SetHeader("Authorization", "Bearer "+token), nil
}

// integrityHash returns the HMAC of v, or an empty string when no key is
// configured.
func (t *Transport) integrityHash(v any) string {
	if t.hashKey == "" {
		return ""
	}
	return utils.HashJSON(v)
}
