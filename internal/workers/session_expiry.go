// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// DefaultPollInterval bounds how long the worker sleeps before looking at
// the stored session again, so a login made by another process is noticed.
const DefaultPollInterval = time.Minute

// SessionExpiryWorker logs the client out locally once the stored session
// token reaches its expiry. The server stays the authority on token
// validity; this only saves a doomed round trip.
type SessionExpiryWorker struct {
	auth     service.ClientAuthService
	onExpire func()

	pollInterval time.Duration
	now          func() time.Time
	after        func(time.Duration) <-chan time.Time

	logger *logger.Logger

	// mu serializes Start and Stop; it is never taken by Run.
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type SessionExpiryOption func(*SessionExpiryWorker)

// WithOnExpire sets a callback invoked after an expired session was removed.
func WithOnExpire(fn func()) SessionExpiryOption {
	return func(w *SessionExpiryWorker) {
		w.onExpire = fn
	}
}

func WithPollInterval(d time.Duration) SessionExpiryOption {
	return func(w *SessionExpiryWorker) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// WithClock replaces the wall clock and timer, for tests.
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) SessionExpiryOption {
	return func(w *SessionExpiryWorker) {
		w.now = now
		w.after = after
	}
}

func NewSessionExpiryWorker(auth service.ClientAuthService, logger *logger.Logger, opts ...SessionExpiryOption) *SessionExpiryWorker {
	w := &SessionExpiryWorker{
		auth:         auth,
		onExpire:     func() {},
		pollInterval: DefaultPollInterval,
		now:          time.Now,
		after:        time.After,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run checks the session, sleeps until its expiry (at most pollInterval)
// and repeats until ctx is cancelled.
func (w *SessionExpiryWorker) Run(ctx context.Context) {
	for {
		wait := w.check(ctx)

		select {
		case <-ctx.Done():
			return
		case <-w.after(wait):
		}
	}
}

// check inspects the current session and returns how long to sleep.
func (w *SessionExpiryWorker) check(ctx context.Context) time.Duration {
	session, err := w.auth.CurrentSession(ctx)
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		w.logger.Info().Msg("session expired, logged out locally")
		w.onExpire()
		return w.pollInterval
	case errors.Is(err, service.ErrNotLoggedIn):
		return w.pollInterval
	case err != nil:
		if ctx.Err() == nil {
			w.logger.Err(err).Msg("session check failed")
		}
		return w.pollInterval
	}

	wait := session.ExpiresAt.Sub(w.now())
	if wait > w.pollInterval {
		wait = w.pollInterval
	}
	if wait < 0 {
		wait = 0
	}
	return wait
}

// Start runs the worker in the background, replacing any running instance.
func (w *SessionExpiryWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		w.Run(runCtx)
	}()
}

// Stop cancels a running worker and waits for it to exit. It is a no-op
// when the worker is not running.
func (w *SessionExpiryWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopLocked()
}

func (w *SessionExpiryWorker) stopLocked() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.wg.Wait()
}
