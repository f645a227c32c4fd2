package lzss

import (
	"bytes"
	"testing"
)

func TestWindowSearchLowestIndex(t *testing.T) {
	w := newWindow(16)
	w.writeBytes([]byte("abcabc"))

	if i := w.search([]byte("abc"), 0); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := w.search([]byte("abc"), 1); i != 3 {
		t.Fatalf("got %d", i)
	}
	if i := w.search([]byte("bc"), 0); i != 1 {
		t.Fatalf("got %d", i)
	}
	// The unwritten tail is part of the linear buffer and is searchable.
	if i := w.search([]byte{'c', 0}, 0); i != 5 {
		t.Fatalf("got %d", i)
	}
	if i := w.search([]byte("zzz"), 0); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := w.search([]byte("abc"), 16); i != -1 {
		t.Fatalf("start past capacity: got %d", i)
	}
}

func TestWindowSearchNoWraparound(t *testing.T) {
	w := newWindow(8)
	w.writeBytes([]byte{1, 2, 3, 4, 5, 6, 7, 9})
	w.writeByte(8) // wraps: buffer is now [8 2 3 4 5 6 7 9]

	if got := w.buf[0]; got != 8 {
		t.Fatalf("cursor did not wrap, buf[0]=%d", got)
	}
	// The byte sequence 9,8 exists in stream order across the wrap point
	// but has no linear occurrence, so it must not be found.
	if i := w.search([]byte{9, 8}, 0); i != -1 {
		t.Fatalf("straddling pattern found at %d", i)
	}
	if i := w.search([]byte{9}, 0); i != 7 {
		t.Fatalf("got %d", i)
	}
}

func TestWindowCopyFromClampsAtEnd(t *testing.T) {
	w := newWindow(8)
	w.writeBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	if got := w.copyFrom(6, 4); !bytes.Equal(got, []byte{7, 8}) {
		t.Fatalf("got %v", got)
	}
	if got := w.copyFrom(0, 3); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
	if got := w.copyFrom(8, 2); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestWindowCopyFromIsPreWriteSnapshot(t *testing.T) {
	// A span overlapping the cursor must reproduce the buffer as it was
	// before the write, not see its own bytes land.
	w := newWindow(4)
	w.writeBytes([]byte{5, 6})

	span := w.copyFrom(1, 3)
	if !bytes.Equal(span, []byte{6, 0, 0}) {
		t.Fatalf("got %v", span)
	}
	w.writeBytes(span)
	if !bytes.Equal(w.buf, []byte{0, 6, 6, 0}) {
		t.Fatalf("buffer after overlapping write: %v", w.buf)
	}
	if w.pos != 1 {
		t.Fatalf("cursor at %d", w.pos)
	}
}
