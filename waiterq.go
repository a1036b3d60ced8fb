// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

import "github.com/eapache/queue"

// waiterQueue is a FIFO of per-caller one-shot wake channels.
//
// The handle at the head belongs to the caller currently permitted to
// drive the data path; everyone behind it stays blocked on its own
// channel. Only the owning caller removes its handle from the head, so
// queue depth observed at enqueue time tells a caller whether it must
// wait for a turn.
//
// Not self-synchronized: every method is called with the owning
// BlockingRing's mutex held.
type waiterQueue struct {
	q *queue.Queue
}

func newWaiterQueue() *waiterQueue {
	return &waiterQueue{q: queue.New()}
}

// enqueue appends a fresh handle and returns its position, 0 = head.
func (wq *waiterQueue) enqueue(c chan struct{}) int {
	wq.q.Add(c)
	return wq.q.Length() - 1
}

func (wq *waiterQueue) length() int {
	return wq.q.Length()
}

// head returns the current head handle, or nil when empty.
func (wq *waiterQueue) head() chan struct{} {
	if wq.q.Length() == 0 {
		return nil
	}
	return wq.q.Peek().(chan struct{})
}

// popHead removes the head handle. Promoting (notifying) the new head
// is the caller's job.
func (wq *waiterQueue) popHead() {
	if wq.q.Length() > 0 {
		wq.q.Remove()
	}
}

// drainAndNotifyAll pops every handle head-first, signalling each
// exactly once. Used by Close to release every queued caller.
func (wq *waiterQueue) drainAndNotifyAll() {
	for wq.q.Length() > 0 {
		notify(wq.q.Remove().(chan struct{}))
	}
}

// notify delivers a coalescing one-shot signal: a handle that was
// already signalled (promotion racing close) absorbs the second signal
// without blocking the sender.
func notify(c chan struct{}) {
	select {
	case c <- struct{}{}:
	default:
	}
}
