// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package ringio

import (
	"encoding/binary"

	"code.hybscloud.com/spin"
	"golang.org/x/sys/unix"
)

// wakeBridge couples a Wake to an eventfd so foreign threads can signal
// the cooperative side without entering the Go runtime.
type wakeBridge struct {
	fd int
}

// Fd returns a file descriptor a foreign thread may poke to signal this
// handle: writing any nonzero 8-byte counter value wakes a pending Wait.
//
// The eventfd and its pump goroutine are created lazily on the first
// call; rings that never cross the runtime boundary pay nothing. The
// descriptor stays valid until Close.
func (w *Wake) Fd() (int, error) {
	w.bridgeMu.Lock()
	defer w.bridgeMu.Unlock()
	if w.closed.Load() {
		return -1, ErrClosed
	}
	if w.bridge != nil {
		return w.bridge.fd, nil
	}
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC)
	if err != nil {
		return -1, err
	}
	w.bridge = &wakeBridge{fd: fd}
	go w.pump(fd)
	return fd, nil
}

// pump forwards eventfd pokes into the wake channel until the handle is
// closed. It owns the descriptor: closeBridge only nudges it awake, the
// pump performs the close so no read can race a reused fd number.
func (w *Wake) pump(fd int) {
	var buf [8]byte
	sw := spin.Wait{}
	for {
		_, err := unix.Read(fd, buf[:])
		if w.closed.Load() {
			unix.Close(fd)
			return
		}
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				sw.Once()
				continue
			}
			unix.Close(fd)
			return
		}
		sw.Reset()
		w.Signal()
	}
}

// closeBridge wakes the pump so it can observe the closed flag and
// release the descriptor.
func (w *Wake) closeBridge() {
	w.bridgeMu.Lock()
	defer w.bridgeMu.Unlock()
	if w.bridge == nil {
		return
	}
	var one [8]byte
	binary.NativeEndian.PutUint64(one[:], 1)
	unix.Write(w.bridge.fd, one[:])
	w.bridge = nil
}
