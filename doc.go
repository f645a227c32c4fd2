/*
Package lzss implements a bounded-window LZSS codec with configurable bit
widths, designed so the decompressor fits memory-constrained targets.

Stream layout: one header byte, then a flat MSB-first bit stream of tokens
with no delimiters and no end marker; the final partial byte is zero-padded.
End of output is signaled only by exhaustion of the compressed source, so a
truncated stream decodes silently to a prefix of the original data. There is
no checksum in the format.

Header byte, MSB first: 3 bits window_bits-8 (window of 2^window_bits bytes,
8..15), 2 bits size_bits-4 (4..7), 2 bits literal_bits-5 (5..8), 1 reserved
continuation bit (must be 0, reserved for future header bytes).

Token: 1 flag bit. Flag 1 is a literal of literal_bits bits. Flag 0 is a
reference of window_bits bits (absolute index into the history window) plus
size_bits bits (match length minus the minimum pattern length). The minimum
pattern length is (window_bits+size_bits)/(literal_bits+1) + 1, the shortest
match for which a reference is cheaper than literals; the maximum is
minimum + 2^size_bits - 1.

Both sides maintain congruent 2^window_bits circular history windows. The
window search is linear over the buffer and intentionally not
wraparound-aware: a pattern straddling the wrap point is never referenced
and falls back to literals, trading a little ratio for a simple fast scan.

Use Compress(src, opts) and Decompress(src) for whole buffers, nil opts for
the defaults (window_bits=10, size_bits=4, literal_bits=8).
Use NewWriter for chunked compression of one logical stream and NewReader
for bounded pulls; repeated bounded reads concatenate to the unbounded
result.

# Examples

One-shot round trip with default widths:

	enc, err := lzss.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzss.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Chunked compression of a single stream:

	w, err := lzss.NewWriter(dst, &lzss.Options{WindowBits: 12, SizeBits: 4, LiteralBits: 8})
	if err != nil {
		return err
	}
	for _, chunk := range chunks {
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

Streaming decompression in bounded pulls:

	r := lzss.NewReader(src)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			handle(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

Restricted alphabet with 7-bit literals (input bytes must be < 128, or
Compress fails with ErrExcessBits):

	opts := &lzss.Options{WindowBits: 10, SizeBits: 4, LiteralBits: 7}
	enc, err := lzss.Compress(asciiData, opts)
*/
package lzss
