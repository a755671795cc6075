// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/metrics"
	"github.com/tomtom215/analoguememory/internal/models"
)

// BreakerConfig tunes the circuit breaker.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval after which closed-state counts reset.
	Interval time.Duration
	// Timeout spent open before probing again.
	Timeout time.Duration
	// MinRequests before the failure ratio is considered.
	MinRequests uint32
	// FailureRatio at or above which the breaker opens.
	FailureRatio float64
}

// DefaultBreakerConfig returns the production breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// CircuitBreakerClient wraps Client with a circuit breaker so that an
// unavailable backend fails fast instead of stalling every gateway request.
//
// Rejections by the backend (4xx APIErrors) and caller cancellations are not
// counted as failures.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewCircuitBreakerClient wraps client.
func NewCircuitBreakerClient(client *Client, cfg BreakerConfig) *CircuitBreakerClient {
	const cbName = "analoguememory-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
		IsSuccessful: isBreakerSuccess,
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: cbName}
}

// isBreakerSuccess treats client-side rejections as healthy responses.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.IsClientError()
	}
	return false
}

// Client returns the wrapped client.
func (cbc *CircuitBreakerClient) Client() *Client { return cbc.client }

// State returns the breaker state as "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

func (cbc *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := cbc.cb.Execute(fn)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	case err != nil && !isBreakerSuccess(err):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(cbc.cb.Counts().ConsecutiveFailures))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	}
	return result, err
}

// guarded runs fn through the breaker and restores its static result type.
func guarded[T any](cbc *CircuitBreakerClient, fn func() (T, error)) (T, error) {
	var zero T
	result, err := cbc.execute(func() (any, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// AllItems is Client.AllItems behind the breaker.
func (cbc *CircuitBreakerClient) AllItems(ctx context.Context) ([]models.CatalogItem, error) {
	return guarded(cbc, func() ([]models.CatalogItem, error) { return cbc.client.AllItems(ctx) })
}

// Item is Client.Item behind the breaker.
func (cbc *CircuitBreakerClient) Item(ctx context.Context, id string) (models.CatalogItem, error) {
	return guarded(cbc, func() (models.CatalogItem, error) { return cbc.client.Item(ctx, id) })
}

// SearchItems is Client.SearchItems behind the breaker.
func (cbc *CircuitBreakerClient) SearchItems(ctx context.Context, query string) ([]models.CatalogItem, error) {
	return guarded(cbc, func() ([]models.CatalogItem, error) { return cbc.client.SearchItems(ctx, query) })
}

// ItemsByCategory is Client.ItemsByCategory behind the breaker.
func (cbc *CircuitBreakerClient) ItemsByCategory(ctx context.Context, categoryID string) ([]models.CatalogItem, error) {
	return guarded(cbc, func() ([]models.CatalogItem, error) { return cbc.client.ItemsByCategory(ctx, categoryID) })
}

// Categories is Client.Categories behind the breaker.
func (cbc *CircuitBreakerClient) Categories(ctx context.Context) ([]models.Category, error) {
	return guarded(cbc, func() ([]models.Category, error) { return cbc.client.Categories(ctx) })
}

// Category is Client.Category behind the breaker.
func (cbc *CircuitBreakerClient) Category(ctx context.Context, id string) (models.Category, error) {
	return guarded(cbc, func() (models.Category, error) { return cbc.client.Category(ctx, id) })
}

// Collection is Client.Collection behind the breaker.
func (cbc *CircuitBreakerClient) Collection(ctx context.Context) ([]CollectionItem, error) {
	return guarded(cbc, func() ([]CollectionItem, error) { return cbc.client.Collection(ctx) })
}

// AddToCollection is Client.AddToCollection behind the breaker.
func (cbc *CircuitBreakerClient) AddToCollection(ctx context.Context, itemID, notes string) error {
	_, err := guarded(cbc, func() (struct{}, error) { return struct{}{}, cbc.client.AddToCollection(ctx, itemID, notes) })
	return err
}

// RemoveFromCollection is Client.RemoveFromCollection behind the breaker.
func (cbc *CircuitBreakerClient) RemoveFromCollection(ctx context.Context, itemID string) error {
	_, err := guarded(cbc, func() (struct{}, error) { return struct{}{}, cbc.client.RemoveFromCollection(ctx, itemID) })
	return err
}

// UpdateNotes is Client.UpdateNotes behind the breaker.
func (cbc *CircuitBreakerClient) UpdateNotes(ctx context.Context, itemID, notes string) error {
	_, err := guarded(cbc, func() (struct{}, error) { return struct{}{}, cbc.client.UpdateNotes(ctx, itemID, notes) })
	return err
}

// Login is Client.Login behind the breaker.
func (cbc *CircuitBreakerClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthPayload, error) {
	return guarded(cbc, func() (*models.AuthPayload, error) { return cbc.client.Login(ctx, creds) })
}

// Register is Client.Register behind the breaker.
func (cbc *CircuitBreakerClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthPayload, error) {
	return guarded(cbc, func() (*models.AuthPayload, error) { return cbc.client.Register(ctx, creds) })
}

// Health bypasses the breaker so readiness probes see the real backend state.
func (cbc *CircuitBreakerClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	return cbc.client.Health(ctx)
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

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
