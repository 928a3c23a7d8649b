// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

import "errors"

// Sentinel errors for indexing, encoding and delta application.
var (
	// ErrSourceEmpty is returned when a nil or zero-length source buffer is indexed.
	ErrSourceEmpty = errors.New("empty source")
	// ErrSourceBad is returned when a delta handed to AddDeltaSource is malformed
	// (truncated opcode, reserved zero opcode, or literal run past the end).
	ErrSourceBad = errors.New("corrupt delta source")
	// ErrIndexNeeded is returned when encoding or delta-source indexing is attempted
	// without an index to match against.
	ErrIndexNeeded = errors.New("delta index required")
	// ErrTargetEmpty is returned when MakeDelta is called with no target data.
	ErrTargetEmpty = errors.New("empty target")
	// ErrSizeTooBig is returned when the encoded delta would exceed the caller's
	// MaxDeltaSize cap. The data is fine; the caller asked for a bound.
	ErrSizeTooBig = errors.New("delta exceeds size limit")

	// ErrInvalidOpcode is returned by the decoder for the reserved zero opcode byte.
	ErrInvalidOpcode = errors.New("invalid zero opcode")
	// ErrInputOverrun is returned when the decoder reads past the end of the delta.
	ErrInputOverrun = errors.New("delta input overrun")
	// ErrCopyOverrun is returned when a copy instruction addresses bytes past the
	// end of the basis buffer.
	ErrCopyOverrun = errors.New("copy past end of basis")
	// ErrLengthMismatch is returned when the reconstructed target does not match
	// the length announced in the delta header.
	ErrLengthMismatch = errors.New("delta length mismatch")
)
