// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

// FrameWriter is the producer half of a blocking ring.
//
// All counts are frames of Channels() interleaved samples. A short
// return together with a closed ring is normal completion of a
// cancelled call, not a failure.
type FrameWriter[T any] interface {
	// Write writes nframes frames from the interleaved slice, applying
	// the ring's overflow policy. len(data) >= nframes*Channels().
	Write(data []T, nframes uint64) (uint64, error)

	// WriteAll writes len(data)/Channels() whole frames.
	WriteAll(data []T) (uint64, error)

	// WriteMatrix writes one row per channel; rows must match the
	// channel count and share a length.
	WriteMatrix(rows [][]T) (uint64, error)

	// TryWrite writes what fits without suspending.
	// Returns ErrWouldBlock when nothing fits.
	TryWrite(data []T, nframes uint64) (uint64, error)
}

// FrameReader is the consumer half of a blocking ring.
type FrameReader[T any] interface {
	// Read reads nframes frames into the interleaved slice, applying
	// the ring's underflow policy. len(dst) >= nframes*Channels().
	Read(dst []T, nframes uint64) (uint64, error)

	// ReadMatrix reads and de-interleaves into a fresh matrix of
	// Channels() rows.
	ReadMatrix(nframes uint64) ([][]T, error)

	// TryRead reads what is available without suspending.
	// Returns ErrWouldBlock when nothing is available.
	TryRead(dst []T, nframes uint64) (uint64, error)
}

// FrameRing is the combined facade interface implemented by
// [BlockingRing].
type FrameRing[T any] interface {
	FrameWriter[T]
	FrameReader[T]

	// Channels returns the interleaved channel count per frame.
	Channels() uint64
	// Cap returns the capacity in frames.
	Cap() uint64
	// ReadableFrames returns the frames currently available to read.
	ReadableFrames() uint64
	// WritableFrames returns the frames that currently fit.
	WritableFrames() uint64
	// IsOpen reports whether the ring accepts further operations.
	IsOpen() bool
	// Close cancels every queued and in-progress caller. Idempotent.
	Close()
}

var _ FrameRing[int16] = (*BlockingRing[int16])(nil)
