// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

import "unsafe"

// RawRing is the foreign-caller view of a [Ring]: enough to run one side
// of the SPSC protocol from a thread the Go runtime does not manage,
// such as a realtime audio callback in C.
//
// The counter pointers address monotonic uint64 item counts. The foreign
// side must follow the same ordering contract as the Go side: publish
// data before the release store of its own counter, acquire-load the
// opposite counter before touching data, and derive buffer positions as
// (counter & (Capacity-1)) * Stride elements.
//
// The pointers remain valid until Ring.Close; using them afterwards is a
// programmer error with undefined behavior. The Go side keeps the buffer
// reachable for the lifetime of the ring, so no extra pinning is needed
// beyond keeping the Ring itself alive.
type RawRing struct {
	Buf      unsafe.Pointer // first element of the backing array
	NRead    unsafe.Pointer // *uint64, consumer counter
	NWritten unsafe.Pointer // *uint64, producer counter
	Capacity uint64         // items; always a power of two
	Stride   uint64         // elements of T per item
	ElemSize uintptr        // sizeof(T) in bytes
}

// Raw returns the foreign-caller view of the ring. The foreign side may
// additionally poke the wake handle's descriptor (Wake().Fd() on Linux)
// to notify the cooperative side after it advances a counter.
func (r *Ring[T]) Raw() RawRing {
	var elem T
	return RawRing{
		Buf:      unsafe.Pointer(unsafe.SliceData(r.buf)),
		NRead:    unsafe.Pointer(&r.nread),
		NWritten: unsafe.Pointer(&r.nwritten),
		Capacity: r.mask + 1,
		Stride:   r.stride,
		ElemSize: unsafe.Sizeof(elem),
	}
}
