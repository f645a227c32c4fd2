package lzss

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Reader decompresses a stream produced by Writer. It implements io.Reader;
// each Read is a bounded pull and repeated pulls concatenate to the same
// bytes as a single unbounded decode.
//
// The format has no end marker: exhaustion of the source is the only
// termination signal, so a truncated stream is indistinguishable from a
// complete one and simply yields a prefix of the original data.
type Reader struct {
	br  *bitio.Reader
	win *window

	opts       Options
	minPattern int

	// overflow holds bytes decoded during an earlier pull that did not fit
	// the caller's bound. It is drained before any new token is read.
	overflow []byte

	headerRead bool
	eof        bool
	err        error // sticky source failure
}

// NewReader returns a Reader decoding the stream from src. The header is
// read and validated on first use.
func NewReader(src io.Reader) *Reader {
	r := &Reader{}
	if src == nil {
		r.err = ErrNilReader
		return r
	}
	r.br = bitio.NewReader(src)

	return r
}

// Header reads the stream header if it has not been read yet and returns
// the decoded configuration.
func (r *Reader) Header() (Options, error) {
	if err := r.readHeader(); err != nil {
		return Options{}, err
	}

	return r.opts, nil
}

func (r *Reader) readHeader() error {
	if r.headerRead {
		return nil
	}
	if r.err != nil {
		return r.err
	}

	b, err := r.br.ReadBits(headerBits)
	if err != nil {
		r.err = err
		return err
	}

	opts, err := decodeHeader(byte(b))
	if err != nil {
		r.err = err
		return err
	}

	r.opts = opts
	r.minPattern = opts.minPatternLen()
	r.win = newWindow(1 << opts.WindowBits)
	r.headerRead = true

	return nil
}

// Read fills p with at most len(p) decompressed bytes. At end of stream it
// returns 0, io.EOF. A read may return fewer bytes than available when the
// next reference token does not fit the remaining space; the deferred bytes
// are returned by the following call.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		out, err := r.decode(len(p))
		if len(out) > 0 {
			copy(p, out)
			return len(out), err
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			return 0, err
		}
		if r.eof && len(r.overflow) == 0 {
			return 0, io.EOF
		}
	}
}
