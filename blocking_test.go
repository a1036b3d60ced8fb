// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ringio"
)

// =============================================================================
// BlockingRing - Construction and Introspection
// =============================================================================

func TestBlockingCapacityRounding(t *testing.T) {
	ring := ringio.NewBlocking[int](2, 5)
	if ring.Cap() != 8 {
		t.Fatalf("Cap: got %d, want 8", ring.Cap())
	}
	if ring.Channels() != 2 {
		t.Fatalf("Channels: got %d, want 2", ring.Channels())
	}
	if !ring.IsOpen() {
		t.Fatal("new ring is not open")
	}
}

func TestBlockingConstructorPanics(t *testing.T) {
	for _, tc := range []struct {
		name              string
		nchannels, frames uint64
	}{
		{"zero channels", 0, 8},
		{"zero frames", 2, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			ringio.NewBlocking[int](tc.nchannels, tc.frames)
		})
	}
}

func TestBlockingFrameCounts(t *testing.T) {
	ring := ringio.NewBlocking[int](2, 8)
	if got := ring.WritableFrames(); got != 8 {
		t.Fatalf("WritableFrames: got %d, want 8", got)
	}

	ring.Write([]int{1, 2, 3, 4, 5, 6}, 3)
	if got := ring.ReadableFrames(); got != 3 {
		t.Fatalf("ReadableFrames: got %d, want 3", got)
	}
	if got := ring.WritableFrames(); got != 5 {
		t.Fatalf("WritableFrames: got %d, want 5", got)
	}
	if got := ring.ReadableFrames() + ring.WritableFrames(); got != ring.Cap() {
		t.Fatalf("frame counts sum: got %d, want %d", got, ring.Cap())
	}
}

// =============================================================================
// BlockingRing - Round Trips
// =============================================================================

// TestBlockingRoundTripMatrix writes per-channel rows and reads them
// back unchanged through the interleaved ring.
func TestBlockingRoundTripMatrix(t *testing.T) {
	ring := ringio.NewBlocking[int](2, 8)

	writeIn := [][]int{{1, 3, 5, 7, 9}, {2, 4, 6, 8, 10}}
	n, err := ring.WriteMatrix(writeIn)
	if err != nil || n != 5 {
		t.Fatalf("WriteMatrix: got (%d, %v), want (5, nil)", n, err)
	}

	rows, err := ring.ReadMatrix(5)
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	for ch := range rows {
		if len(rows[ch]) != 5 {
			t.Fatalf("row %d length: got %d, want 5", ch, len(rows[ch]))
		}
		for i := range rows[ch] {
			if rows[ch][i] != writeIn[ch][i] {
				t.Fatalf("rows[%d][%d]: got %d, want %d", ch, i, rows[ch][i], writeIn[ch][i])
			}
		}
	}
}

// TestBlockingRoundTripFlat writes a flat interleaved slice; the frame
// count is inferred from the channel count.
func TestBlockingRoundTripFlat(t *testing.T) {
	ring := ringio.NewBlocking[int](2, 8)

	flat := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	n, err := ring.WriteAll(flat)
	if err != nil || n != 5 {
		t.Fatalf("WriteAll: got (%d, %v), want (5, nil)", n, err)
	}

	rows, err := ring.ReadMatrix(5)
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	wantRows := [][]int{{1, 3, 5, 7, 9}, {2, 4, 6, 8, 10}}
	for ch := range wantRows {
		for i := range wantRows[ch] {
			if rows[ch][i] != wantRows[ch][i] {
				t.Fatalf("rows[%d][%d]: got %d, want %d", ch, i, rows[ch][i], wantRows[ch][i])
			}
		}
	}
}

// =============================================================================
// BlockingRing - Argument Errors
// =============================================================================

func TestBlockingArgumentErrors(t *testing.T) {
	ring := ringio.NewBlocking[int](2, 8)

	// Wrong channel count in the matrix overload.
	bad := [][]int{{1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}}
	if _, err := ring.WriteMatrix(bad); !errors.Is(err, ringio.ErrChannelCount) {
		t.Fatalf("WriteMatrix 3 rows: got %v, want ErrChannelCount", err)
	}

	// Ragged rows.
	ragged := [][]int{{1, 2, 3}, {1, 2}}
	if _, err := ring.WriteMatrix(ragged); !errors.Is(err, ringio.ErrShape) {
		t.Fatalf("WriteMatrix ragged: got %v, want ErrShape", err)
	}

	// Short flat buffers.
	if _, err := ring.Write([]int{1, 2, 3}, 2); !errors.Is(err, ringio.ErrShortBuffer) {
		t.Fatalf("Write short: got %v, want ErrShortBuffer", err)
	}
	if _, err := ring.Read(make([]int, 3), 2); !errors.Is(err, ringio.ErrShortBuffer) {
		t.Fatalf("Read short: got %v, want ErrShortBuffer", err)
	}

	// Argument errors have no queue or data effect.
	if got := ring.ReadableFrames(); got != 0 {
		t.Fatalf("ReadableFrames after argument errors: got %d, want 0", got)
	}
}

// =============================================================================
// BlockingRing - Try Operations
// =============================================================================

func TestBlockingTryOps(t *testing.T) {
	ring := ringio.NewBlocking[int](1, 4)

	n, err := ring.TryWrite([]int{1, 2, 3, 4, 5, 6}, 6)
	if err != nil || n != 4 {
		t.Fatalf("TryWrite: got (%d, %v), want (4, nil)", n, err)
	}
	if _, err := ring.TryWrite([]int{9}, 1); !ringio.IsWouldBlock(err) {
		t.Fatalf("TryWrite on full: got %v, want ErrWouldBlock", err)
	}

	dst := make([]int, 6)
	n, err = ring.TryRead(dst, 6)
	if err != nil || n != 4 {
		t.Fatalf("TryRead: got (%d, %v), want (4, nil)", n, err)
	}
	if _, err := ring.TryRead(dst, 1); !ringio.IsWouldBlock(err) {
		t.Fatalf("TryRead on empty: got %v, want ErrWouldBlock", err)
	}

	ring.Close()
	if n, err := ring.TryWrite([]int{1}, 1); n != 0 || err != nil {
		t.Fatalf("TryWrite on closed: got (%d, %v), want (0, nil)", n, err)
	}
	if n, err := ring.TryRead(dst, 1); n != 0 || err != nil {
		t.Fatalf("TryRead on closed: got (%d, %v), want (0, nil)", n, err)
	}
}

// =============================================================================
// BlockingRing - Policy Variants
// =============================================================================

func TestPolicyTruncate(t *testing.T) {
	ring := ringio.Build[int](
		ringio.New(1, 4).Overflow(ringio.OverflowTruncate).Underflow(ringio.UnderflowTruncate))

	n, err := ring.Write([]int{1, 2, 3, 4, 5, 6}, 6)
	if err != nil || n != 4 {
		t.Fatalf("truncate Write: got (%d, %v), want (4, nil)", n, err)
	}
	// Full ring: zero frames, no suspension, no error.
	n, err = ring.Write([]int{7}, 1)
	if err != nil || n != 0 {
		t.Fatalf("truncate Write on full: got (%d, %v), want (0, nil)", n, err)
	}

	dst := make([]int, 8)
	n, err = ring.Read(dst, 8)
	if err != nil || n != 4 {
		t.Fatalf("truncate Read: got (%d, %v), want (4, nil)", n, err)
	}
	n, err = ring.Read(dst, 1)
	if err != nil || n != 0 {
		t.Fatalf("truncate Read on empty: got (%d, %v), want (0, nil)", n, err)
	}
}

func TestPolicyPad(t *testing.T) {
	ring := ringio.Build[int](ringio.New(2, 8).Underflow(ringio.UnderflowPad))

	ring.Write([]int{1, 2, 3, 4}, 2)

	dst := []int{9, 9, 9, 9, 9, 9, 9, 9}
	n, err := ring.Read(dst, 4)
	if err != nil || n != 4 {
		t.Fatalf("pad Read: got (%d, %v), want (4, nil)", n, err)
	}
	want := []int{1, 2, 3, 4, 0, 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestPolicyOverwrite(t *testing.T) {
	ring := ringio.Build[int](
		ringio.New(1, 4).Overflow(ringio.OverflowOverwrite).Underflow(ringio.UnderflowTruncate))

	// Partial overwrite: 3 in, then 3 more displace the oldest 2.
	ring.Write([]int{1, 2, 3}, 3)
	n, err := ring.Write([]int{4, 5, 6}, 3)
	if err != nil || n != 3 {
		t.Fatalf("overwrite Write: got (%d, %v), want (3, nil)", n, err)
	}
	dst := make([]int, 4)
	ring.Read(dst, 4)
	want := []int{3, 4, 5, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]: got %d, want %d", i, dst[i], want[i])
		}
	}

	// Oversized write: only the trailing capacity frames land.
	n, err = ring.Write([]int{10, 11, 12, 13, 14, 15}, 6)
	if err != nil || n != 6 {
		t.Fatalf("oversized overwrite: got (%d, %v), want (6, nil)", n, err)
	}
	ring.Read(dst, 4)
	want = []int{12, 13, 14, 15}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]: got %d, want %d", i, dst[i], want[i])
		}
	}
}

// =============================================================================
// BlockingRing - Close
// =============================================================================

// TestBlockingCloseIdempotent verifies repeated Close calls are safe
// and post-close operations report zero frames without error.
func TestBlockingCloseIdempotent(t *testing.T) {
	ring := ringio.NewBlocking[int](2, 8)
	ring.Write([]int{1, 2}, 1)

	ring.Close()
	ring.Close()

	if ring.IsOpen() {
		t.Fatal("IsOpen after Close: got true")
	}
	if n, err := ring.Write([]int{3, 4}, 1); n != 0 || err != nil {
		t.Fatalf("Write after Close: got (%d, %v), want (0, nil)", n, err)
	}
	if n, err := ring.Read(make([]int, 2), 1); n != 0 || err != nil {
		t.Fatalf("Read after Close: got (%d, %v), want (0, nil)", n, err)
	}
	rows, err := ring.ReadMatrix(3)
	if err != nil {
		t.Fatalf("ReadMatrix after Close: %v", err)
	}
	if len(rows) != 2 || len(rows[0]) != 0 {
		t.Fatalf("ReadMatrix after Close: got %d×%d, want 2×0", len(rows), len(rows[0]))
	}
}
