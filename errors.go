// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For TryWrite: the ring is full, or a blocking writer is active.
// For TryRead: the ring is empty, or a blocking reader is active.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    _, err := ring.TryWrite(chunk, frames)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if ringio.IsWouldBlock(err) {
//	        backoff.Wait()  // Adaptive backpressure
//	        continue
//	    }
//	    return err  // Unexpected error
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// Argument errors. They are raised before any side effect on ring state:
// a call returning one of these has not touched the waiter queues or the
// data path.
var (
	// ErrShortBuffer reports a slice shorter than nframes*channels elements.
	ErrShortBuffer = errors.New("ringio: buffer shorter than requested frames")

	// ErrChannelCount reports a matrix whose row count does not match the
	// ring's channel count.
	ErrChannelCount = errors.New("ringio: matrix channel count mismatch")

	// ErrShape reports a matrix with rows of unequal length.
	ErrShape = errors.New("ringio: matrix rows have unequal lengths")
)

// ErrClosed is returned by Wake.Wait (and Ring.Wait) after the handle has
// been closed. A closed BlockingRing never returns ErrClosed: closure there
// is observable as a short frame count together with IsOpen() == false.
var ErrClosed = errors.New("ringio: wake handle closed")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
