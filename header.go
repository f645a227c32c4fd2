package lzss

import "fmt"

// Header layout, MSB first:
//
//	bits 7..5  window bits - 8
//	bits 4..3  size bits - 4
//	bits 2..1  literal bits - 5
//	bit  0     another header byte follows (reserved, always 0)
const headerBits = 8

// encodeHeader packs validated options into the single header byte.
func encodeHeader(o *Options) byte {
	return byte(o.WindowBits-MinWindowBits)<<5 |
		byte(o.SizeBits-MinSizeBits)<<3 |
		byte(o.LiteralBits-MinLiteralBits)<<1
}

// decodeHeader unpacks the header byte. Every width the offsets can encode
// is valid; only a set continuation bit is rejected, since its semantics
// are not defined yet.
func decodeHeader(b byte) (Options, error) {
	if b&1 != 0 {
		return Options{}, fmt.Errorf("%w: header byte 0x%02x", ErrHeaderExtension, b)
	}

	return Options{
		WindowBits:  int(b>>5&0x07) + MinWindowBits,
		SizeBits:    int(b>>3&0x03) + MinSizeBits,
		LiteralBits: int(b>>1&0x03) + MinLiteralBits,
	}, nil
}
