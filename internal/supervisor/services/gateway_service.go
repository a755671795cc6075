// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/analoguememory/internal/logging"
)

const defaultDrainTimeout = 10 * time.Second

// Gateway is the part of *http.Server the service drives.
type Gateway interface {
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// GatewayService binds addr on every (re)start and serves the REST gateway
// on it. Cancellation drains in-flight requests for up to drainTimeout.
type GatewayService struct {
	gateway      Gateway
	addr         string
	drainTimeout time.Duration
	listen       func(network, addr string) (net.Listener, error)
	logger       zerolog.Logger

	// bound receives the listener address once per successful bind.
	bound chan net.Addr
}

// NewGatewayService creates a service for gw on addr. A non-positive
// drainTimeout selects 10s.
func NewGatewayService(gw Gateway, addr string, drainTimeout time.Duration) *GatewayService {
	if drainTimeout <= 0 {
		drainTimeout = defaultDrainTimeout
	}
	return &GatewayService{
		gateway:      gw,
		addr:         addr,
		drainTimeout: drainTimeout,
		listen:       net.Listen,
		logger:       logging.WithComponent("gateway"),
		bound:        make(chan net.Addr, 1),
	}
}

// Serve implements suture.Service.
func (g *GatewayService) Serve(ctx context.Context) error {
	l, err := g.listen("tcp", g.addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", g.addr, err)
	}
	g.logger.Info().Str("addr", l.Addr().String()).Msg("Gateway listening")
	select {
	case g.bound <- l.Addr():
	default:
	}

	done := make(chan error, 1)
	go func() { done <- g.gateway.Serve(l) }()

	select {
	case err := <-done:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("gateway stopped: %w", err)

	case <-ctx.Done():
		drainCtx, cancel := context.WithTimeout(context.Background(), g.drainTimeout)
		defer cancel()

		g.logger.Info().Dur("drain_timeout", g.drainTimeout).Msg("Draining gateway")
		if err := g.gateway.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("gateway drain: %w", err)
		}
		<-done
		return ctx.Err()
	}
}

// Bound delivers the bound address after each successful start. It is
// buffered by one and never closed.
func (g *GatewayService) Bound() <-chan net.Addr {
	return g.bound
}

func (g *GatewayService) String() string {
	return "gateway"
}
