// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

import (
	"code.hybscloud.com/atomix"
)

// Ring is a wait-free single-producer single-consumer ring of fixed-size
// elements with bulk transfer and an asynchronous wake handle.
//
// Based on Lamport's ring buffer with cached index optimization: the
// producer caches the consumer's read counter and vice versa, reducing
// cross-core cache line traffic. Unlike the one-element-per-operation
// queues, Write and Read move spans of elements with at most two copies
// per call (one when the span does not cross the end of the buffer).
//
// The counters are monotonic 64-bit item counts; positions are derived
// by masking, so the counters themselves never wrap in practice.
//
// Thread assignment:
//   - Write: producer goroutine (or foreign producer thread) only
//   - Read, Discard: consumer goroutine (or foreign consumer thread) only
//   - Readable, Writable, Signal: any thread
//
// The element type must be a plain fixed-size value: no pointers, no
// observable finalization. Violating the single-producer single-consumer
// constraint causes undefined behavior including data corruption.
type Ring[T any] struct {
	_             pad
	nread         atomix.Uint64 // Consumer reads from here
	_             pad
	cachedWritten uint64 // Consumer's cached view of nwritten
	_             pad
	nwritten      atomix.Uint64 // Producer writes here
	_             pad
	cachedRead    uint64 // Producer's cached view of nread
	_             pad
	buf           []T
	mask          uint64 // capacity-1, capacity counted in items
	stride        uint64 // elements of T per item
	wake          *Wake
}

// NewRing creates a ring with at least capacityHint elements.
// Capacity rounds up to the next power of 2, minimum 1.
// Never fails after allocation.
func NewRing[T any](capacityHint uint64) *Ring[T] {
	return newRing[T](capacityHint, 1)
}

// newRing builds a ring of next_pow2(capacityHint) items where each item
// occupies stride consecutive elements of T. The blocking facade uses
// stride = nchannels so one item is one interleaved frame.
func newRing[T any](capacityHint, stride uint64) *Ring[T] {
	n := nextPow2(capacityHint)
	return &Ring[T]{
		buf:    make([]T, n*stride),
		mask:   n - 1,
		stride: stride,
		wake:   NewWake(),
	}
}

// Cap returns the ring capacity in items.
func (r *Ring[T]) Cap() uint64 {
	return r.mask + 1
}

// Stride returns the number of elements per item.
func (r *Ring[T]) Stride() uint64 {
	return r.stride
}

// Readable returns the number of items available to the consumer.
// The value is a lower bound for the consumer and an upper bound for
// the producer.
func (r *Ring[T]) Readable() uint64 {
	return r.nwritten.Load() - r.nread.Load()
}

// Writable returns the number of items the producer can write without
// overwriting unread data. Readable()+Writable() == Cap() at all times.
func (r *Ring[T]) Writable() uint64 {
	return r.Cap() - r.Readable()
}

// Write copies up to min(n, Writable()) items from src into the ring and
// returns the count actually written, possibly zero. len(src) must be at
// least n*Stride() elements.
//
// Producer only. Wait-free and allocation-free. Triggers the wake handle
// exactly once per non-zero write; the counter store has release
// semantics relative to the data copies.
func (r *Ring[T]) Write(src []T, n uint64) uint64 {
	w := r.nwritten.LoadRelaxed()
	if n > r.mask+1-(w-r.cachedRead) {
		r.cachedRead = r.nread.LoadAcquire()
		if avail := r.mask + 1 - (w - r.cachedRead); n > avail {
			n = avail
		}
	}
	if n == 0 {
		return 0
	}

	pos := (w & r.mask) * r.stride
	total := n * r.stride
	if first := uint64(len(r.buf)) - pos; first >= total {
		copy(r.buf[pos:pos+total], src[:total])
	} else {
		copy(r.buf[pos:], src[:first])
		copy(r.buf[:total-first], src[first:total])
	}

	r.nwritten.StoreRelease(w + n)
	r.wake.Signal()
	return n
}

// Read copies up to min(n, Readable()) items from the ring into dst and
// returns the count actually read, possibly zero. len(dst) must be at
// least n*Stride() elements.
//
// Consumer only. Wait-free and allocation-free. Triggers the wake handle
// exactly once per non-zero read; the nwritten load has acquire semantics
// so the data copies observe the producer's stores.
func (r *Ring[T]) Read(dst []T, n uint64) uint64 {
	rd := r.nread.LoadRelaxed()
	if n > r.cachedWritten-rd {
		r.cachedWritten = r.nwritten.LoadAcquire()
		if avail := r.cachedWritten - rd; n > avail {
			n = avail
		}
	}
	if n == 0 {
		return 0
	}

	pos := (rd & r.mask) * r.stride
	total := n * r.stride
	if first := uint64(len(r.buf)) - pos; first >= total {
		copy(dst[:total], r.buf[pos:pos+total])
	} else {
		copy(dst[:first], r.buf[pos:])
		copy(dst[first:total], r.buf[:total-first])
	}

	r.nread.StoreRelease(rd + n)
	r.wake.Signal()
	return n
}

// Discard advances the read counter by up to min(n, Readable()) items
// without copying, returning the count discarded. Used by the overwrite
// policy to drop the oldest frames.
//
// Consumer only.
func (r *Ring[T]) Discard(n uint64) uint64 {
	rd := r.nread.LoadRelaxed()
	if n > r.cachedWritten-rd {
		r.cachedWritten = r.nwritten.LoadAcquire()
		if avail := r.cachedWritten - rd; n > avail {
			n = avail
		}
	}
	if n == 0 {
		return 0
	}
	r.nread.StoreRelease(rd + n)
	r.wake.Signal()
	return n
}

// Wait suspends the caller until a Write, Read, Discard, or Signal is
// observed. Spurious wakeups are permitted. Returns ErrClosed after the
// ring has been closed.
func (r *Ring[T]) Wait() error {
	return r.wake.Wait()
}

// Signal wakes a pending Wait. Safe from any OS thread, including
// threads outside the Go runtime signalling through the raw view.
func (r *Ring[T]) Signal() {
	r.wake.Signal()
}

// Wake returns the ring's wake handle. Foreign producers or consumers
// use it (via Wake.Fd on Linux) to notify the Go side.
func (r *Ring[T]) Wake() *Wake {
	return r.wake
}

// Close marks the ring closed and wakes a pending Wait. Idempotent.
// Raw views handed out earlier become invalid; it is the caller's
// responsibility to stop using them.
func (r *Ring[T]) Close() {
	r.wake.Close()
}
