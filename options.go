// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

// OverflowKind selects writer-side behavior when the ring is full.
type OverflowKind uint8

const (
	// OverflowBlock suspends the writer until its full request fits.
	// This is the default and the only mode whose concurrent-close
	// semantics are guaranteed (see BlockingRing).
	OverflowBlock OverflowKind = iota

	// OverflowTruncate writes only what fits, never suspending.
	OverflowTruncate

	// OverflowOverwrite discards the oldest frames so the new frames
	// always fit. Write under this policy always reports the full
	// requested frame count.
	OverflowOverwrite
)

// UnderflowKind selects reader-side behavior when the ring is empty.
type UnderflowKind uint8

const (
	// UnderflowBlock suspends the reader until its full request is
	// available. Default, mirror of OverflowBlock.
	UnderflowBlock UnderflowKind = iota

	// UnderflowTruncate returns whatever is available (possibly zero
	// frames), never suspending.
	UnderflowTruncate

	// UnderflowPad reads what is available and fills the remainder of
	// the destination with zero-valued samples, always reporting the
	// full requested frame count.
	UnderflowPad
)

// Options configures blocking ring creation.
type Options struct {
	nchannels uint64
	frames    uint64

	overflow  OverflowKind
	underflow UnderflowKind
}

// Builder creates blocking rings with fluent configuration.
//
// The zero policies are BLOCK on both sides, which is what the direct
// [NewBlocking] constructor ships. The builder exists to select the
// non-suspending policy variants.
//
// Example:
//
//	// Reader pads with silence, writer drops the oldest frames
//	ring := ringio.Build[int16](
//	    ringio.New(2, 4096).Overflow(ringio.OverflowOverwrite).Underflow(ringio.UnderflowPad))
type Builder struct {
	opts Options
}

// New creates a blocking ring builder for nchannels interleaved channels
// and a capacity hint in frames.
//
// Capacity rounds up to the next power of 2 frames. For example frames=5
// results in an 8-frame ring.
//
// Panics if nchannels < 1 or frames < 1.
func New(nchannels, frames uint64) *Builder {
	if nchannels < 1 {
		panic("ringio: nchannels must be >= 1")
	}
	if frames < 1 {
		panic("ringio: frames must be >= 1")
	}
	return &Builder{opts: Options{nchannels: nchannels, frames: frames}}
}

// Overflow selects the writer-side full-ring policy.
func (b *Builder) Overflow(k OverflowKind) *Builder {
	b.opts.overflow = k
	return b
}

// Underflow selects the reader-side empty-ring policy.
func (b *Builder) Underflow(k UnderflowKind) *Builder {
	b.opts.underflow = k
	return b
}

// Build creates a BlockingRing with the configured policies.
func Build[T any](b *Builder) *BlockingRing[T] {
	return newBlocking[T](b.opts)
}

// nextPow2 rounds n up to the next power of 2, minimum 1.
func nextPow2(n uint64) uint64 {
	if n < 2 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
