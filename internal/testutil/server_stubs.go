package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// FakeListener stands in for the service and metrics listeners in server tests.
// ListenAndServe returns ListenErr, or http.ErrServerClosed when none is set, the
// way a listener ends after a clean shutdown.
type FakeListener struct {
	ListenErr   error
	ShutdownErr error
	// Hold, when non-nil, makes Shutdown wait until it is closed or ctx expires.
	Hold chan struct{}
	Mux  http.Handler

	listens   atomic.Int32
	shutdowns atomic.Int32
}

func (f *FakeListener) ListenAndServe() error {
	f.listens.Add(1)
	if f.ListenErr != nil {
		return f.ListenErr
	}
	return http.ErrServerClosed
}

func (f *FakeListener) Shutdown(ctx context.Context) error {
	f.shutdowns.Add(1)
	if f.Hold != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.Hold:
		}
	}
	return f.ShutdownErr
}

func (f *FakeListener) Addr() string {
	return ":0"
}

func (f *FakeListener) Handler() http.Handler {
	if f.Mux == nil {
		return http.NotFoundHandler()
	}
	return f.Mux
}

// Listens reports how many times ListenAndServe ran.
func (f *FakeListener) Listens() int {
	return int(f.listens.Load())
}

// Shutdowns reports how many times Shutdown ran.
func (f *FakeListener) Shutdowns() int {
	return int(f.shutdowns.Load())
}
