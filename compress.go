package lzss

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Writer compresses a byte stream into dst. One Writer handles one logical
// stream: the search window carries across Write calls, and after an error
// or Close the Writer must be discarded.
type Writer struct {
	bw  *bitio.Writer
	win *window

	opts       Options
	minPattern int
	maxPattern int
	tokenBits  uint8 // flag + window index + match size

	err    error // sticky; state is not resumable after a failure
	closed bool
}

// NewWriter returns a Writer emitting a compressed stream to dst. Options
// nil means DefaultOptions(). The header byte is written immediately, so a
// sink failure can surface here.
func NewWriter(dst io.Writer, opts *Options) (*Writer, error) {
	if dst == nil {
		return nil, ErrNilWriter
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	w := &Writer{
		bw:         bitio.NewWriter(dst),
		win:        newWindow(1 << opts.WindowBits),
		opts:       *opts,
		minPattern: opts.minPatternLen(),
		maxPattern: opts.maxPatternLen(),
		tokenBits:  uint8(1 + opts.WindowBits + opts.SizeBits),
	}

	if err := w.bw.WriteBits(uint64(encodeHeader(opts)), headerBits); err != nil {
		return nil, err
	}

	return w, nil
}

// Write compresses p as the next chunk of the stream. It implements
// io.Writer; on error the number of input bytes fully encoded so far is
// returned and the Writer becomes unusable.
//
// Parsing is greedy longest-match: at each position candidate lengths grow
// from the minimum profitable pattern length, and the window search for
// length L starts at the index found for L-1 (a longer match can only start
// at the same or a later index), so the scan narrows instead of restarting.
// The lowest-index occurrence at the winning length is always taken.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, ErrWriterClosed
	}

	litFlag := uint64(1) << w.opts.LiteralBits

	pos := 0
	for pos < len(p) {
		searchI := 0
		matchLen := 0
		for n := w.minPattern; n <= w.maxPattern; n++ {
			if pos+n > len(p) {
				break
			}
			i := w.win.search(p[pos:pos+n], searchI)
			if i < 0 {
				break
			}
			searchI = i
			matchLen = n
		}

		if matchLen >= w.minPattern {
			token := uint64(searchI)<<w.opts.SizeBits | uint64(matchLen-w.minPattern)
			if err := w.bw.WriteBits(token, w.tokenBits); err != nil {
				w.err = err
				return pos, err
			}
			w.win.writeBytes(p[pos : pos+matchLen])
			pos += matchLen

			continue
		}

		b := p[pos]
		if uint64(b) >= litFlag {
			w.err = fmt.Errorf("%w: byte 0x%02x at offset %d, literal bits %d",
				ErrExcessBits, b, pos, w.opts.LiteralBits)
			return pos, w.err
		}
		if err := w.bw.WriteBits(litFlag|uint64(b), uint8(w.opts.LiteralBits)+1); err != nil {
			w.err = err
			return pos, err
		}
		w.win.writeByte(b)
		pos++
	}

	return len(p), nil
}

// Close zero-pads the final partial byte and emits it. It does not close
// the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.bw.Close(); err != nil {
		w.err = err
		return err
	}

	return nil
}

// Compress compresses src in one shot. Options nil means DefaultOptions().
// Empty input is valid and yields a header-only stream.
func Compress(src []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, opts)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
