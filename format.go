package lzss

// Wire-format constants. The header stores each bit width as an offset from
// its minimum, so only these ranges are representable on the wire.
const (
	MinWindowBits = 8  // Smallest window: 256 bytes.
	MaxWindowBits = 15 // Largest window: 32768 bytes.

	MinSizeBits = 4 // Narrowest match-length field.
	MaxSizeBits = 7 // Widest match-length field.

	MinLiteralBits = 5 // Narrowest literal payload (32-symbol alphabet).
	MaxLiteralBits = 8 // Full-byte literals.
)

// Defaults used when Options is nil.
const (
	DefaultWindowBits  = 10 // 1024-byte window.
	DefaultSizeBits    = 4
	DefaultLiteralBits = 8
)
