// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

import "sync"

// BlockingRing is a frame-oriented, blocking, cancelable facade over a
// wait-free SPSC [Ring].
//
// Samples are interleaved: the nchannels values of frame i are
// contiguous, frame i+1 follows frame i. All counts in the API are
// frames, never elements.
//
// Concurrent writers are serialized into a FIFO queue, as are concurrent
// readers, so the inner ring always sees exactly one producer and one
// consumer at a time. Fairness is strict: the writer that called first
// completes first, and its frames land in the ring before any later
// writer's frames.
//
// Blocked and in-progress callers are cancelled only by Close. A
// cancelled call reports the frames it actually moved; closure is
// observable as a short count together with IsOpen() == false, never as
// an error.
type BlockingRing[T any] struct {
	inner     *Ring[T]
	nchannels uint64

	mu      sync.Mutex
	readers *waiterQueue
	writers *waiterQueue
	dataCh  chan struct{} // broadcast: closed and replaced on each notify
	open    bool

	overflow  OverflowKind
	underflow UnderflowKind
}

// NewBlocking creates a blocking ring of next_pow2(frames) frames of
// nchannels interleaved samples, with the BLOCK policy on both sides.
//
// Panics if nchannels < 1 or frames < 1. For the non-suspending policy
// variants use the [New] builder.
func NewBlocking[T any](nchannels, frames uint64) *BlockingRing[T] {
	return Build[T](New(nchannels, frames))
}

func newBlocking[T any](opts Options) *BlockingRing[T] {
	return &BlockingRing[T]{
		inner:     newRing[T](opts.frames, opts.nchannels),
		nchannels: opts.nchannels,
		readers:   newWaiterQueue(),
		writers:   newWaiterQueue(),
		dataCh:    make(chan struct{}),
		open:      true,
		overflow:  opts.overflow,
		underflow: opts.underflow,
	}
}

// Channels returns the number of interleaved channels per frame.
func (b *BlockingRing[T]) Channels() uint64 {
	return b.nchannels
}

// Cap returns the ring capacity in frames.
func (b *BlockingRing[T]) Cap() uint64 {
	return b.inner.Cap()
}

// ReadableFrames returns the number of frames available to read.
func (b *BlockingRing[T]) ReadableFrames() uint64 {
	return b.inner.Readable()
}

// WritableFrames returns the number of frames that fit without blocking.
func (b *BlockingRing[T]) WritableFrames() uint64 {
	return b.inner.Writable()
}

// IsOpen reports whether the ring accepts further operations.
func (b *BlockingRing[T]) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Inner returns the underlying lock-free ring. The stride of the inner
// ring is the channel count, so its items are whole frames; foreign
// callers use its raw view under the SPSC contract.
func (b *BlockingRing[T]) Inner() *Ring[T] {
	return b.inner
}

// Write writes nframes interleaved frames from data, honoring the
// ring's overflow policy. Under BLOCK it suspends until every frame has
// been written or the ring is closed, and returns the frames actually
// written. len(data) must be at least nframes*Channels().
func (b *BlockingRing[T]) Write(data []T, nframes uint64) (uint64, error) {
	if uint64(len(data)) < nframes*b.nchannels {
		return 0, ErrShortBuffer
	}
	switch b.overflow {
	case OverflowTruncate:
		return b.writeTruncate(data, nframes), nil
	case OverflowOverwrite:
		return b.writeOverwrite(data, nframes), nil
	}
	return b.writeBlock(data, nframes), nil
}

// WriteAll writes len(data)/Channels() frames from data. Elements past
// the last whole frame are ignored.
func (b *BlockingRing[T]) WriteAll(data []T) (uint64, error) {
	return b.Write(data, uint64(len(data))/b.nchannels)
}

// Read reads nframes interleaved frames into dst, honoring the ring's
// underflow policy. Under BLOCK it suspends until every frame has been
// read or the ring is closed, and returns the frames actually read.
// len(dst) must be at least nframes*Channels().
func (b *BlockingRing[T]) Read(dst []T, nframes uint64) (uint64, error) {
	if uint64(len(dst)) < nframes*b.nchannels {
		return 0, ErrShortBuffer
	}
	switch b.underflow {
	case UnderflowTruncate:
		return b.readTruncate(dst, nframes), nil
	case UnderflowPad:
		return b.readPad(dst, nframes), nil
	}
	return b.readBlock(dst, nframes), nil
}

// TryWrite writes at most nframes frames without ever suspending.
// Returns ErrWouldBlock when no frame fits, or when a queued blocking
// writer holds the producer side. A try on a closed ring reports
// (0, nil); distinguish with IsOpen.
func (b *BlockingRing[T]) TryWrite(data []T, nframes uint64) (uint64, error) {
	if uint64(len(data)) < nframes*b.nchannels {
		return 0, ErrShortBuffer
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return 0, nil
	}
	if b.writers.length() > 0 {
		return 0, ErrWouldBlock
	}
	n := b.inner.Write(data, nframes)
	if n > 0 {
		b.notifyDataLocked()
		return n, nil
	}
	if nframes == 0 {
		return 0, nil
	}
	return 0, ErrWouldBlock
}

// TryRead reads at most nframes frames without ever suspending.
// Returns ErrWouldBlock when no frame is available, or when a queued
// blocking reader holds the consumer side. A try on a closed ring
// reports (0, nil); distinguish with IsOpen.
func (b *BlockingRing[T]) TryRead(dst []T, nframes uint64) (uint64, error) {
	if uint64(len(dst)) < nframes*b.nchannels {
		return 0, ErrShortBuffer
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return 0, nil
	}
	if b.readers.length() > 0 {
		return 0, ErrWouldBlock
	}
	n := b.inner.Read(dst, nframes)
	if n > 0 {
		b.notifyDataLocked()
		return n, nil
	}
	if nframes == 0 {
		return 0, nil
	}
	return 0, ErrWouldBlock
}

// Close flips the ring closed, wakes every queued waiter and every
// in-progress caller, and closes the inner ring's wake handle so a
// foreign Wait observes the shutdown. Idempotent.
//
// Callers suspended in Write or Read return their partial frame counts.
// No further operation makes progress after Close.
func (b *BlockingRing[T]) Close() {
	b.mu.Lock()
	if !b.open {
		b.mu.Unlock()
		return
	}
	b.open = false
	// Release the heads suspended on the data notify. The channel stays
	// closed forever: every later wait falls through immediately.
	close(b.dataCh)
	b.writers.drainAndNotifyAll()
	b.readers.drainAndNotifyAll()
	b.mu.Unlock()
	b.inner.Close()
}

// notifyDataLocked broadcasts "some data or space changed" to the
// callers suspended on the shared data notify. Caller holds b.mu and
// has checked b.open: after Close the channel is already closed and
// must not be replaced.
func (b *BlockingRing[T]) notifyDataLocked() {
	close(b.dataCh)
	b.dataCh = make(chan struct{})
}

// writeBlock is the BLOCK overflow path: FIFO queue turn, then drive
// the inner ring until nframes are in, suspending on the data notify
// between partial progress.
func (b *BlockingRing[T]) writeBlock(data []T, nframes uint64) uint64 {
	b.mu.Lock()
	if !b.open {
		b.mu.Unlock()
		return 0
	}
	cond := make(chan struct{}, 1)
	if b.writers.enqueue(cond) > 0 {
		b.mu.Unlock()
		<-cond
		b.mu.Lock()
		if !b.open {
			// Close drained the queue already; do not pop again.
			b.mu.Unlock()
			return 0
		}
	}

	// Head of the writer queue: sole producer on the inner ring.
	var written uint64
	for {
		b.mu.Unlock()
		n := b.inner.Write(data[written*b.nchannels:], nframes-written)
		b.mu.Lock()
		written += n
		if written == nframes {
			break
		}
		if !b.open {
			b.mu.Unlock()
			return written
		}
		if n > 0 {
			// Partial progress can unblock a reader head immediately.
			b.notifyDataLocked()
		}
		if b.inner.Writable() > 0 {
			// Space appeared between the attempt and re-locking;
			// retry instead of sleeping on a stale notify.
			continue
		}
		ch := b.dataCh
		b.mu.Unlock()
		<-ch
		b.mu.Lock()
		if !b.open {
			b.mu.Unlock()
			return written
		}
	}

	// Finalize. When the ring closed between the last attempt and
	// re-locking, Close has already drained the queue and the data
	// notify stays closed; there is nothing left to hand over.
	if b.open {
		b.notifyDataLocked()
		b.writers.popHead()
		if next := b.writers.head(); next != nil {
			notify(next)
		}
	}
	b.mu.Unlock()
	return written
}

// readBlock mirrors writeBlock on the consumer side.
func (b *BlockingRing[T]) readBlock(dst []T, nframes uint64) uint64 {
	b.mu.Lock()
	if !b.open {
		b.mu.Unlock()
		return 0
	}
	cond := make(chan struct{}, 1)
	if b.readers.enqueue(cond) > 0 {
		b.mu.Unlock()
		<-cond
		b.mu.Lock()
		if !b.open {
			b.mu.Unlock()
			return 0
		}
	}

	var nread uint64
	for {
		b.mu.Unlock()
		n := b.inner.Read(dst[nread*b.nchannels:], nframes-nread)
		b.mu.Lock()
		nread += n
		if nread == nframes {
			break
		}
		if !b.open {
			b.mu.Unlock()
			return nread
		}
		if n > 0 {
			b.notifyDataLocked()
		}
		if b.inner.Readable() > 0 {
			continue
		}
		ch := b.dataCh
		b.mu.Unlock()
		<-ch
		b.mu.Lock()
		if !b.open {
			b.mu.Unlock()
			return nread
		}
	}

	if b.open {
		b.notifyDataLocked()
		b.readers.popHead()
		if next := b.readers.head(); next != nil {
			notify(next)
		}
	}
	b.mu.Unlock()
	return nread
}

// writeTruncate writes only what fits, never suspending.
func (b *BlockingRing[T]) writeTruncate(data []T, nframes uint64) uint64 {
	n, _ := b.TryWrite(data, nframes)
	return n
}

// readTruncate returns whatever is available, never suspending.
func (b *BlockingRing[T]) readTruncate(dst []T, nframes uint64) uint64 {
	n, _ := b.TryRead(dst, nframes)
	return n
}

// readPad reads what is available and zero-fills the tail of dst,
// always reporting nframes. A closed ring reports 0.
func (b *BlockingRing[T]) readPad(dst []T, nframes uint64) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return 0
	}
	n := b.inner.Read(dst, nframes)
	var zero T
	for i := n * b.nchannels; i < nframes*b.nchannels; i++ {
		dst[i] = zero
	}
	if n > 0 {
		b.notifyDataLocked()
	}
	return nframes
}

// writeOverwrite discards the oldest frames so the new frames always
// fit, reporting nframes. When nframes is at least the capacity, the
// ring is emptied and only the trailing capacity frames of data land.
//
// The overwrite path acts as producer and consumer in one call, so it
// requires the consumer side to be quiescent: combine it with the
// truncate or pad underflow policies, not with a concurrent blocking
// reader. A closed ring reports 0.
func (b *BlockingRing[T]) writeOverwrite(data []T, nframes uint64) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return 0
	}
	capFrames := b.inner.Cap()
	if nframes >= capFrames {
		b.inner.Discard(b.inner.Readable())
		b.inner.Write(data[(nframes-capFrames)*b.nchannels:], capFrames)
	} else {
		if w := b.inner.Writable(); w < nframes {
			b.inner.Discard(nframes - w)
		}
		b.inner.Write(data, nframes)
	}
	b.notifyDataLocked()
	return nframes
}
