// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringio

// WriteMatrix writes one row per channel: rows[ch][i] is the sample of
// channel ch in frame i. Requires len(rows) == Channels() and equal row
// lengths; the frame count is the row length. The rows are interleaved
// into a scratch buffer and written through Write, so the overflow
// policy and FIFO queuing apply unchanged.
func (b *BlockingRing[T]) WriteMatrix(rows [][]T) (uint64, error) {
	if uint64(len(rows)) != b.nchannels {
		return 0, ErrChannelCount
	}
	nframes := uint64(len(rows[0]))
	for _, row := range rows {
		if uint64(len(row)) != nframes {
			return 0, ErrShape
		}
	}

	interleaved := make([]T, nframes*b.nchannels)
	for ch, row := range rows {
		for i, v := range row {
			interleaved[uint64(i)*b.nchannels+uint64(ch)] = v
		}
	}
	return b.Write(interleaved, nframes)
}

// ReadMatrix reads up to nframes frames and de-interleaves them into a
// freshly allocated matrix of Channels() rows. Row length is the frame
// count actually read, which is short only when the ring was closed
// mid-operation (or under a non-blocking underflow policy).
func (b *BlockingRing[T]) ReadMatrix(nframes uint64) ([][]T, error) {
	interleaved := make([]T, nframes*b.nchannels)
	n, err := b.Read(interleaved, nframes)
	if err != nil {
		return nil, err
	}

	rows := make([][]T, b.nchannels)
	for ch := range rows {
		rows[ch] = make([]T, n)
		for i := uint64(0); i < n; i++ {
			rows[ch][i] = interleaved[i*b.nchannels+uint64(ch)]
		}
	}
	return rows, nil
}
