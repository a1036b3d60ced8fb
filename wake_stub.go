// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package ringio

import "errors"

// wakeBridge is unavailable without eventfd support.
type wakeBridge struct {
	fd int
}

// Fd reports that no foreign-wake descriptor exists on this platform.
// Goroutine-side Signal and Wait work everywhere; only the raw fd
// contract for non-Go threads is Linux-specific.
func (w *Wake) Fd() (int, error) {
	return -1, errors.ErrUnsupported
}

func (w *Wake) closeBridge() {}
