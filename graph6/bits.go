// SPDX-License-Identifier: MIT
// Package: colorgame/graph6
//
// bits.go — six-bit packing shared by decoder and encoder.

package graph6

const (
	bias6   = 63
	maxByte = 126

	smallN = 62
)

// bitReader yields the bits of a six-bit body, most significant first.
type bitReader struct {
	body []byte
	pos  int // bit offset into body
}

// remaining returns the number of unread bits.
func (r *bitReader) remaining() int { return len(r.body)*6 - r.pos }

// bit returns the next bit. The caller checks remaining first.
func (r *bitReader) bit() uint64 {
	x := r.body[r.pos/6] - bias6
	shift := 5 - r.pos%6
	r.pos++

	return uint64(x>>uint(shift)) & 1
}

// bits returns the next k bits as a big-endian integer.
func (r *bitReader) bits(k int) uint64 {
	var x uint64
	for i := 0; i < k; i++ {
		x = x<<1 | r.bit()
	}

	return x
}

// bitWriter packs bits six to a byte, padding the last byte with zeros.
type bitWriter struct {
	out  []byte
	cur  byte
	used int
}

func (w *bitWriter) put(set bool) {
	w.cur <<= 1
	if set {
		w.cur |= 1
	}
	w.used++
	if w.used == 6 {
		w.out = append(w.out, w.cur+bias6)
		w.cur, w.used = 0, 0
	}
}

func (w *bitWriter) flush() []byte {
	if w.used > 0 {
		w.out = append(w.out, (w.cur<<uint(6-w.used))+bias6)
		w.cur, w.used = 0, 0
	}

	return w.out
}
