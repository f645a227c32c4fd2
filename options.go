package lzss

import "fmt"

// Options configures the bit widths of a compressed stream. The zero value
// is not valid; use DefaultOptions or fill in all three fields.
type Options struct {
	// WindowBits sets the history window to 2^WindowBits bytes. A larger
	// window can find more distant repeats at the cost of memory and a
	// wider reference token. Valid range 8..15.
	WindowBits int
	// SizeBits sets the width of the match-length field, allowing matches
	// up to minPatternLen + 2^SizeBits - 1 bytes. Valid range 4..7.
	SizeBits int
	// LiteralBits sets the width of a literal payload. 8 accepts any byte;
	// smaller values reject input bytes outside the alphabet with
	// ErrExcessBits. Valid range 5..8.
	LiteralBits int
}

// DefaultOptions returns the default configuration: a 1024-byte window,
// 4-bit match length and full-byte literals.
func DefaultOptions() *Options {
	return &Options{
		WindowBits:  DefaultWindowBits,
		SizeBits:    DefaultSizeBits,
		LiteralBits: DefaultLiteralBits,
	}
}

// validate checks that all three widths are header-encodable.
func (o *Options) validate() error {
	if o.WindowBits < MinWindowBits || o.WindowBits > MaxWindowBits {
		return fmt.Errorf("%w: window bits %d not in [%d,%d]", ErrBitWidth, o.WindowBits, MinWindowBits, MaxWindowBits)
	}
	if o.SizeBits < MinSizeBits || o.SizeBits > MaxSizeBits {
		return fmt.Errorf("%w: size bits %d not in [%d,%d]", ErrBitWidth, o.SizeBits, MinSizeBits, MaxSizeBits)
	}
	if o.LiteralBits < MinLiteralBits || o.LiteralBits > MaxLiteralBits {
		return fmt.Errorf("%w: literal bits %d not in [%d,%d]", ErrBitWidth, o.LiteralBits, MinLiteralBits, MaxLiteralBits)
	}

	return nil
}

// minPatternLen is the shortest match for which a reference token is
// cheaper than the same bytes as literals.
func (o *Options) minPatternLen() int {
	return (o.WindowBits+o.SizeBits)/(o.LiteralBits+1) + 1
}

// maxPatternLen is the longest match the size field can encode.
func (o *Options) maxPatternLen() int {
	return o.minPatternLen() + (1 << o.SizeBits) - 1
}
