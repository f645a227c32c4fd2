// SPDX-License-Identifier: MIT

package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrBitWidth        = errors.New("bit width outside header-encodable range")
	ErrExcessBits      = errors.New("literal does not fit in configured literal bits")
	ErrHeaderExtension = errors.New("unsupported header extension bit set")
	ErrInputTooShort   = errors.New("not enough data for header")
	ErrWriterClosed    = errors.New("write after close")
	ErrNilWriter       = errors.New("writer is nil")
	ErrNilReader       = errors.New("reader is nil")
)
