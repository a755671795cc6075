// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*GatewayService)(nil)

// fakeGateway accepts nothing and blocks until Shutdown.
type fakeGateway struct {
	serveErr    error
	shutdownErr error
	shutdowns   atomic.Int32
	stop        chan struct{}
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{stop: make(chan struct{})}
}

func (f *fakeGateway) Serve(l net.Listener) error {
	defer l.Close()
	if f.serveErr != nil {
		return f.serveErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeGateway) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	close(f.stop)
	return f.shutdownErr
}

func TestNewGatewayService_Defaults(t *testing.T) {
	svc := NewGatewayService(newFakeGateway(), ":0", 0)
	if svc.drainTimeout != defaultDrainTimeout {
		t.Errorf("drainTimeout = %v, want %v", svc.drainTimeout, defaultDrainTimeout)
	}
	if svc.String() != "gateway" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestGatewayService_DrainsOnCancel(t *testing.T) {
	gw := newFakeGateway()
	svc := NewGatewayService(gw, "127.0.0.1:0", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case addr := <-svc.Bound():
		if addr.(*net.TCPAddr).Port == 0 {
			t.Errorf("bound port = 0, want an ephemeral port")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("service never bound")
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
	if gw.shutdowns.Load() != 1 {
		t.Errorf("Shutdown called %d times, want 1", gw.shutdowns.Load())
	}
}

func TestGatewayService_BindFailure(t *testing.T) {
	bindErr := errors.New("address already in use")
	svc := NewGatewayService(newFakeGateway(), "127.0.0.1:0", time.Second)
	svc.listen = func(string, string) (net.Listener, error) { return nil, bindErr }

	if err := svc.Serve(context.Background()); !errors.Is(err, bindErr) {
		t.Errorf("Serve = %v, want wrapped bind error", err)
	}
}

func TestGatewayService_ServeFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.serveErr = io.ErrUnexpectedEOF
	svc := NewGatewayService(gw, "127.0.0.1:0", time.Second)

	if err := svc.Serve(context.Background()); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Serve = %v, want wrapped serve error", err)
	}
}

func TestGatewayService_DrainError(t *testing.T) {
	gw := newFakeGateway()
	gw.shutdownErr = errors.New("connections still open")
	svc := NewGatewayService(gw, "127.0.0.1:0", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	<-svc.Bound()
	cancel()

	if err := <-errCh; !errors.Is(err, gw.shutdownErr) {
		t.Errorf("Serve = %v, want drain error", err)
	}
}
