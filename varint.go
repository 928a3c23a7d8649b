package gcdelta

// Little-endian base-128 varints, used only for the target-length header:
// seven payload bits per byte, top bit set on every byte except the last.

// appendBase128 appends v to out in base-128 form.
func appendBase128(out []byte, v uint64) []byte {
	for v >= 0x80 {
		out = append(out, byte(v)|0x80)
		v >>= 7
	}
	return append(out, byte(v))
}

// decodeBase128 reads one base-128 value from the start of data, returning
// the value and the number of bytes consumed.
func decodeBase128(data []byte) (v uint64, n int, err error) {
	var shift uint
	for {
		if n >= len(data) {
			return 0, 0, ErrInputOverrun
		}
		b := data[n]
		n++
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, n, nil
		}
		shift += 7
	}
}
