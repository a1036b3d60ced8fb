// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// Wake is a cross-thread signalable wake handle.
//
// Signal may be called from any OS thread; Wait suspends the calling
// goroutine until a signal arrives. Signals are coalescing: any number of
// Signal calls between two Waits wake the waiter once. Spurious wakeups
// are permitted by the Wait contract, so coalescing is always safe.
//
// On Linux, Fd exposes an eventfd bridge so a foreign thread that is not
// managed by the Go runtime (a realtime audio callback, a C producer) can
// poke the handle with a plain 8-byte write. See wake_linux.go.
//
// Wake is one-waiter: at most one goroutine may be blocked in Wait at a
// time. Neither Wake nor Ring.Wait checks this; a second concurrent
// waiter may miss a signal or the wake-up from Close.
type Wake struct {
	ch     chan struct{}
	closed atomix.Bool

	bridgeMu sync.Mutex
	bridge   *wakeBridge // nil until Fd is first requested
}

// NewWake creates an unsignalled wake handle.
func NewWake() *Wake {
	return &Wake{ch: make(chan struct{}, 1)}
}

// Signal wakes a pending Wait, or arms the handle so the next Wait
// returns immediately. Never blocks. Safe from any OS thread.
//
// Calling Signal after Close is a programmer error; detection is
// best-effort and late signals are discarded.
func (w *Wake) Signal() {
	if w.closed.Load() {
		return
	}
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// Wait suspends the calling goroutine until the handle is signalled.
// Returns ErrClosed once the handle has been closed; nil otherwise.
func (w *Wake) Wait() error {
	if w.closed.Load() {
		return ErrClosed
	}
	<-w.ch
	if w.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Close destroys the handle: a pending Wait wakes with ErrClosed and all
// subsequent Waits fail. Idempotent; every step below tolerates a
// concurrent duplicate, so no flag handshake is needed.
func (w *Wake) Close() {
	if w.closed.Load() {
		return
	}
	w.closed.StoreRelease(true)
	select {
	case w.ch <- struct{}{}:
	default:
	}
	w.closeBridge()
}
