// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringio

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent data-path tests: the SPSC ring
// synchronizes through acquire/release counter ordering, which the
// detector cannot observe and reports as false positives.
const RaceEnabled = true
