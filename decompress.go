package lzss

import (
	"bytes"
	"errors"
	"io"
)

// decode returns up to max decompressed bytes; max < 0 means unbounded.
// Pending overflow is served first, then tokens are decoded until the bound
// is reached or the source is exhausted. A reference span is applied to the
// window in full even when its bytes are deferred to overflow, keeping the
// window congruent with the compressor's.
func (r *Reader) decode(max int) ([]byte, error) {
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}

	var out []byte
	if len(r.overflow) > 0 {
		if max >= 0 && len(r.overflow) > max {
			out = r.overflow[:max]
			r.overflow = r.overflow[max:]
			return out, nil
		}
		out = r.overflow
		r.overflow = nil
	}

	for !r.eof {
		if max >= 0 && len(out) >= max {
			break
		}

		flag, err := r.br.ReadBits(1)
		if err != nil {
			return out, r.endOrFail(err)
		}

		if flag == 1 {
			c, err := r.br.ReadBits(uint8(r.opts.LiteralBits))
			if err != nil {
				return out, r.endOrFail(err)
			}
			r.win.writeByte(byte(c))
			out = append(out, byte(c))

			continue
		}

		index, err := r.br.ReadBits(uint8(r.opts.WindowBits))
		if err != nil {
			return out, r.endOrFail(err)
		}
		size, err := r.br.ReadBits(uint8(r.opts.SizeBits))
		if err != nil {
			return out, r.endOrFail(err)
		}

		span := r.win.copyFrom(int(index), int(size)+r.minPattern)
		r.win.writeBytes(span)

		if max >= 0 && len(out)+len(span) > max {
			// Never split a reference within one pull; the whole span
			// waits in overflow for the next call.
			r.overflow = span
			break
		}
		out = append(out, span...)
	}

	return out, nil
}

// endOrFail classifies a bit-read error: source exhaustion, even in the
// middle of a token (the zero padding of the final byte always decodes as
// the start of a reference, which then runs out of bits), is the normal end
// of stream. Anything else is a real failure and sticks.
func (r *Reader) endOrFail(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		r.eof = true
		return nil
	}
	r.err = err

	return err
}

// Decompress decompresses a complete stream in one shot.
func Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrInputTooShort
	}

	r := NewReader(bytes.NewReader(src))

	return r.decode(-1)
}
