package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// stubServer records which lifecycle methods Run() drives.
type stubServer struct {
	listenErr   error
	shutdownErr error

	shutdowns int
	closes    int
}

func (s *stubServer) ListenAndServe() error { return s.listenErr }

func (s *stubServer) Shutdown(ctx context.Context) error {
	s.shutdowns++
	return s.shutdownErr
}

func (s *stubServer) Close() error {
	s.closes++
	return nil
}

func (s *stubServer) Addr() string { return ":0" }

func builderFor(srv *stubServer, cleanedUp *bool) serverBuilder {
	return func() (httpServer, func(), error) {
		return srv, func() { *cleanedUp = true }, nil
	}
}

func TestRun_BootstrapFailure(t *testing.T) {
	build := func() (httpServer, func(), error) {
		return nil, nil, errors.New("no config")
	}

	if code := Run(build, make(chan os.Signal, 1), zerolog.Nop()); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRun_SignalTriggersGracefulShutdown(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt // queued before Run starts, so the test is deterministic

	srv := &stubServer{listenErr: http.ErrServerClosed}
	cleanedUp := false

	if code := Run(builderFor(srv, &cleanedUp), sigCh, zerolog.Nop()); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if srv.shutdowns != 1 {
		t.Fatalf("expected one Shutdown call, got %d", srv.shutdowns)
	}
	if srv.closes != 0 {
		t.Fatalf("graceful path must not force-close, got %d Close calls", srv.closes)
	}
	if !cleanedUp {
		t.Fatalf("expected cleanup to run")
	}
}

func TestRun_ServerCrash(t *testing.T) {
	srv := &stubServer{listenErr: errors.New("listen tcp: address in use")}
	cleanedUp := false

	if code := Run(builderFor(srv, &cleanedUp), make(chan os.Signal, 1), zerolog.Nop()); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if srv.shutdowns != 0 {
		t.Fatalf("crash path must not call Shutdown, got %d", srv.shutdowns)
	}
	if !cleanedUp {
		t.Fatalf("expected cleanup to run")
	}
}

func TestRun_ForcedCloseWhenShutdownFails(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	srv := &stubServer{
		listenErr:   http.ErrServerClosed,
		shutdownErr: errors.New("connections still draining"),
	}
	cleanedUp := false

	_ = Run(builderFor(srv, &cleanedUp), sigCh, zerolog.Nop())

	if srv.shutdowns != 1 {
		t.Fatalf("expected Shutdown attempt, got %d", srv.shutdowns)
	}
	if srv.closes != 1 {
		t.Fatalf("expected forced Close after failed Shutdown, got %d", srv.closes)
	}
}
