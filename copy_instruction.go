// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// Copy instruction layout: one control byte with the top bit set, then only
// the non-zero little-endian bytes of the offset (control bits 0-3) and the
// length (control bits 4-5). Omitted bytes are zero; an all-omitted length
// means the maximum copy, 65536.

// appendCopy serializes one copy instruction. length must be in [1, 65536].
func appendCopy(out []byte, offset int64, length int) []byte {
	cmdAt := len(out)
	out = append(out, 0)
	cmd := byte(0x80)

	if offset&0x000000ff != 0 {
		out = append(out, byte(offset))
		cmd |= 0x01
	}
	if offset&0x0000ff00 != 0 {
		out = append(out, byte(offset>>8))
		cmd |= 0x02
	}
	if offset&0x00ff0000 != 0 {
		out = append(out, byte(offset>>16))
		cmd |= 0x04
	}
	if offset&0xff000000 != 0 {
		out = append(out, byte(offset>>24))
		cmd |= 0x08
	}

	if length&0x00ff != 0 {
		out = append(out, byte(length))
		cmd |= 0x10
	}
	if length&0xff00 != 0 {
		out = append(out, byte(length>>8))
		cmd |= 0x20
	}

	out[cmdAt] = cmd
	return out
}

// decodeCopy reads the body of a copy instruction whose control byte cmd was
// already consumed at delta[pos-1]. It returns the decoded offset and length
// and the position past the instruction. The offset is accumulated in 64 bits
// so a full four-byte value stays positive on 32-bit builds. Bit 0x40 (a
// third length byte) is accepted for forward compatibility even though the
// encoder never emits it.
func decodeCopy(delta []byte, cmd byte, pos int) (offset int64, length, newPos int, err error) {
	var l int64
	take := func(bit byte, shift uint, dst *int64) bool {
		if cmd&bit == 0 {
			return true
		}
		if pos >= len(delta) {
			return false
		}
		*dst |= int64(delta[pos]) << shift
		pos++
		return true
	}

	ok := take(0x01, 0, &offset) &&
		take(0x02, 8, &offset) &&
		take(0x04, 16, &offset) &&
		take(0x08, 24, &offset) &&
		take(0x10, 0, &l) &&
		take(0x20, 8, &l) &&
		take(0x40, 16, &l)
	if !ok {
		return 0, 0, 0, ErrInputOverrun
	}

	length = int(l)
	if length == 0 {
		length = maxCopyLen
	}
	return offset, length, pos, nil
}

// copyBodySize returns how many argument bytes follow a copy control byte.
func copyBodySize(cmd byte) int {
	n := 0
	for bit := byte(0x01); bit < 0x80; bit <<= 1 {
		if cmd&bit != 0 {
			n++
		}
	}
	return n
}
