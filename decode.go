// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gcdelta

package gcdelta

// ApplyDelta replays delta against basis and returns the reconstructed
// target. basis must be the logical concatenation of the sources the delta
// was encoded against, in the order they were indexed. Every read is bounds
// checked; corrupt input yields ErrInvalidOpcode, ErrInputOverrun,
// ErrCopyOverrun or ErrLengthMismatch, never a panic.
func ApplyDelta(basis, delta []byte) ([]byte, error) {
	targetLen, pos, err := decodeBase128(delta)
	if err != nil {
		return nil, err
	}

	// Trust the announced length for preallocation only up to a point; a
	// corrupt header must not force a giant allocation before the stream is
	// even walked.
	capHint := targetLen
	if capHint > 1<<20 {
		capHint = 1 << 20
	}
	out := make([]byte, 0, capHint)
	for pos < len(delta) {
		cmd := delta[pos]
		pos++
		switch {
		case cmd&0x80 != 0:
			offset, length, newPos, err := decodeCopy(delta, cmd, pos)
			if err != nil {
				return nil, err
			}
			pos = newPos
			if offset+int64(length) > int64(len(basis)) {
				return nil, ErrCopyOverrun
			}
			out = append(out, basis[offset:offset+int64(length)]...)
		case cmd != 0:
			n := int(cmd)
			if pos+n > len(delta) {
				return nil, ErrInputOverrun
			}
			out = append(out, delta[pos:pos+n]...)
			pos += n
		default:
			return nil, ErrInvalidOpcode
		}
	}

	if uint64(len(out)) != targetLen {
		return nil, ErrLengthMismatch
	}
	return out, nil
}

// ApplyDeltaToSource replays a delta that is embedded in the same buffer as
// its basis (the layout delta chains are stored in: source bytes followed by
// delta bytes). The basis is the whole of source; the delta is
// source[deltaStart:deltaEnd].
func ApplyDeltaToSource(source []byte, deltaStart, deltaEnd int) ([]byte, error) {
	if deltaStart < 0 || deltaStart >= len(source) || deltaEnd > len(source) || deltaStart >= deltaEnd {
		return nil, ErrInputOverrun
	}
	return ApplyDelta(source[:deltaStart], source[deltaStart:deltaEnd])
}
