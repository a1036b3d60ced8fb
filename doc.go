// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringio provides a multi-channel, fixed-capacity ring buffer
// for audio-style streaming: interleaved frames of fixed-width samples
// moving across a boundary that may include a realtime, non-blocking
// context on one side.
//
// Two coupled layers are exposed:
//
//   - Ring[T]: a wait-free single-producer single-consumer ring of plain
//     fixed-size elements. Callable from a context that must not block,
//     allocate, or synchronize with the Go runtime, such as a realtime
//     audio callback. Carries an asynchronous wake handle a scheduler
//     can wait on.
//   - BlockingRing[T]: a frame-granular blocking read/write facade over
//     Ring with FIFO queuing of concurrent readers and writers,
//     configurable overflow/underflow policies, and cancel-on-close.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	ring := ringio.NewBlocking[int16](2, 4096)   // stereo, 4096 frames
//	raw := ringio.NewRing[float32](8192)         // element-level SPSC ring
//
// Builder API selects overflow/underflow policies:
//
//	ring := ringio.Build[int16](
//	    ringio.New(2, 4096).
//	        Overflow(ringio.OverflowOverwrite).
//	        Underflow(ringio.UnderflowPad))
//
// # Basic Usage
//
// A producer task and a consumer task share one blocking ring:
//
//	ring := ringio.NewBlocking[int16](2, 4096)
//
//	go func() { // Producer
//	    for chunk := range source {
//	        ring.WriteAll(chunk) // blocks until every frame is in
//	    }
//	    ring.Close()
//	}()
//
//	// Consumer
//	buf := make([]int16, 2*512)
//	for {
//	    n, _ := ring.Read(buf, 512)
//	    process(buf[:n*2])
//	    if n < 512 { // short read: ring was closed
//	        break
//	    }
//	}
//
// Writes and reads are frame-granular: a frame is Channels() interleaved
// samples, and every count in the API is a frame count.
//
// # Blocking Semantics
//
// Under the default BLOCK policies, Write suspends until its full
// request has been written and Read until its full request has been
// read. Concurrent writers queue FIFO; only the head of the queue
// drives the data path, so the lock-free ring always sees exactly one
// producer and one consumer (head-of-queue discipline). The frames of
// queued writers land in the ring in enqueue order, byte for byte.
//
// Close cancels everything: every queued waiter and every in-progress
// caller wakes and returns the frames it actually moved. Closure is a
// normal short return, not an error:
//
//	n, err := ring.Write(block, 512)
//	if err != nil {
//	    // argument error: short buffer or bad matrix shape
//	}
//	if n < 512 && !ring.IsOpen() {
//	    // cancelled by Close; n frames were written
//	}
//
// There are no per-call timeouts or cancel tokens; cancellation is only
// via Close.
//
// # Policy Variants
//
// Overflow (writer side): OverflowBlock (default), OverflowTruncate
// (write what fits, never suspend), OverflowOverwrite (drop the oldest
// frames so the new frames always fit).
//
// Underflow (reader side): UnderflowBlock (default), UnderflowTruncate
// (return what is available, never suspend), UnderflowPad (zero-fill
// the tail, always return the requested count).
//
// The concurrent-close guarantees above are stated for BLOCK; the
// non-suspending variants serialize on the facade lock and never queue.
//
// # The Realtime Boundary
//
// Ring's data path is wait-free and allocation-free: Write and Read do
// bounded work regardless of what the other side is doing, and under a
// steady state perform zero heap allocation. A foreign thread — one not
// managed by the Go runtime — can run one side of the protocol through
// the raw view:
//
//	raw := ring.Inner().Raw()
//	// hand raw.Buf, raw.NRead, raw.NWritten, raw.Capacity, raw.Stride
//	// to the C side; it masks counters and memcpys frames directly.
//
// The foreign side follows the same ordering contract as the Go side
// (release-store own counter after data, acquire-load the opposite
// counter before data) and may poke the wake handle's eventfd
// descriptor (Wake.Fd, Linux) to notify the Go side:
//
//	fd, err := ring.Inner().Wake().Fd()
//	// C side: uint64_t one = 1; write(fd, &one, 8);
//
// A goroutine bridges descriptor pokes into the same wake the Go-side
// Signal uses, so Ring.Wait observes both uniformly. Polling with
// adaptive backoff is the alternative when no descriptor is wanted:
//
//	backoff := iox.Backoff{}
//	for raw := range chunks {
//	    for ring.Inner().Write(raw, 1) == 0 {
//	        backoff.Wait()
//	    }
//	    backoff.Reset()
//	}
//
// # Capacity
//
// Capacity rounds up to the next power of 2 frames, minimum 1:
//
//	ringio.NewBlocking[int16](2, 5)     // actual capacity: 8 frames
//	ringio.NewBlocking[int16](2, 4096)  // actual capacity: 4096 frames
//
// Readable and writable counts always sum to the capacity. The 64-bit
// counters are monotonic and never wrap in practice; positions within
// the buffer are derived by power-of-two masking.
//
// # Race Detection
//
// Go's race detector cannot observe the happens-before edges the ring
// establishes through acquire/release counter ordering and reports them
// as false positives. The facade layer (queues, close, notify) uses
// ordinary mutex and channel synchronization and is race-clean. Tests
// that drive the data path from more than one goroutine skip themselves
// when RaceEnabled is true; the example and benchmark files are
// excluded via //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/iox] for semantic
// errors and adaptive backoff, [code.hybscloud.com/spin] for CPU pause
// loops, [github.com/eapache/queue] for the FIFO waiter queues, and
// [golang.org/x/sys] for the Linux eventfd wake bridge.
package ringio
