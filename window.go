package lzss

import "bytes"

// window is the circular history buffer both sides of the codec maintain.
// After processing the same logical prefix the compressor's and
// decompressor's windows hold identical bytes at identical positions; a
// reference token is an absolute index into that shared linear layout.
//
// The buffer starts zero-filled and the search covers the whole linear
// buffer, so matches into not-yet-written (or stale, after wraparound)
// regions are legal: both windows agree on that content too.
type window struct {
	buf []byte
	pos int
}

func newWindow(size int) *window {
	return &window{buf: make([]byte, size)}
}

// writeByte stores b at the cursor and advances it, overwriting the oldest
// byte once the buffer has wrapped.
func (w *window) writeByte(b byte) {
	w.buf[w.pos] = b
	w.pos++
	if w.pos == len(w.buf) {
		w.pos = 0
	}
}

// writeBytes appends p one byte at a time, wrapping the cursor as needed.
func (w *window) writeBytes(p []byte) {
	for _, b := range p {
		w.writeByte(b)
	}
}

// search returns the lowest index >= start where pattern occurs in the
// linear buffer, or -1. The search is deliberately not wraparound-aware: an
// occurrence straddling the end of the buffer is never found. That costs a
// little ratio and keeps the hot path a plain substring scan.
func (w *window) search(pattern []byte, start int) int {
	if start < 0 || start >= len(w.buf) {
		return -1
	}

	i := bytes.Index(w.buf[start:], pattern)
	if i < 0 {
		return -1
	}

	return start + i
}

// copyFrom returns a copy of up to n bytes of the linear buffer starting at
// i, truncated at the buffer end. The copy is taken before the caller
// writes anything back, so a span that overlaps the write cursor reproduces
// the window exactly as the compressor's search saw it.
func (w *window) copyFrom(i, n int) []byte {
	if i < 0 || i >= len(w.buf) {
		return nil
	}

	end := i + n
	if end > len(w.buf) {
		end = len(w.buf)
	}

	out := make([]byte, end-i)
	copy(out, w.buf[i:end])

	return out
}
