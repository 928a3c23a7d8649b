// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// createIndexFromDelta extends old with entries taken from a previously
// produced delta: only the literal bytes of insert instructions are
// fingerprinted, since everything a copy instruction covers is already
// indexed through an earlier source. Entries are slotted into spare bucket
// capacity when possible; otherwise a grown index supersedes old.
//
// A window is only indexed when it sits at least minMatchLen bytes before the
// end of its literal run: the encoder never accepts a shorter match, so
// anything closer to the edge could never be used.
func createIndexFromDelta(src *sourceInfo, old *deltaIndex) (*deltaIndex, error) {
	if old == nil {
		return nil, ErrIndexNeeded
	}
	if len(src.buf) == 0 {
		return nil, ErrSourceEmpty
	}
	buf := src.buf

	maxEntries := (len(buf) - 1) / rabinWindow
	if maxEntries == 0 {
		return old, nil
	}

	entries := make([]indexEntry, 0, maxEntries)
	prevVal := ^uint32(0)

	_, pos, err := decodeBase128(buf)
	if err != nil {
		return nil, ErrSourceBad
	}
	for pos < len(buf) {
		cmd := buf[pos]
		pos++
		switch {
		case cmd&0x80 != 0:
			pos += copyBodySize(cmd)
		case cmd != 0:
			run := int(cmd)
			if pos+run > len(buf) {
				return nil, ErrSourceBad
			}
			for ; run > rabinWindow+minMatchLen-1; run -= rabinWindow {
				val := rabinHash(buf[pos+1:])
				if val != prevVal {
					// Only keep the first of consecutive identical windows.
					prevVal = val
					entries = append(entries, indexEntry{src: src, pos: pos + rabinWindow, val: val})
				}
				pos += rabinWindow
			}
			pos += run
		default:
			// The zero opcode is reserved; treat it as corruption.
			return nil, ErrSourceBad
		}
	}
	if pos != len(buf) {
		// A copy instruction's argument bytes ran past the end.
		return nil, ErrSourceBad
	}

	if len(entries) == 0 {
		return old, nil
	}
	old.lastSrc = src

	// Drop entries into spare slots while there is room; the first full
	// bucket forces a reallocation for whatever remains.
	inserted := 0
	for inserted < len(entries) {
		e := entries[inserted]
		b := e.val & old.hashMask
		if !old.spareRoom(b) {
			break
		}
		old.buckets[b] = append(old.buckets[b], e)
		old.numEntries++
		inserted++
	}
	if inserted == len(entries) {
		return old, nil
	}
	return mergeEntries(old, entries[inserted:]), nil
}

// mergeEntries builds a grown index from old plus leftover new entries
// (ordered by position in their source).
func mergeEntries(old *deltaIndex, entries []indexEntry) *deltaIndex {
	hsize, hmask := bucketSizeFor(old.numEntries+len(entries), old)

	newBuckets := make([][]indexEntry, hsize)
	for _, e := range entries {
		b := e.val & hmask
		newBuckets[b] = append(newBuckets[b], e)
	}
	return packIndex(newBuckets, hsize, old)
}
