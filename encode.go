// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gcdelta

package gcdelta

// createDelta encodes target as an opcode stream against idx in one
// left-to-right scan. At each position the rolling fingerprint slides one
// byte and its bucket is probed for the longest verified match; matches
// shorter than minMatchLen fold into a pending literal run, longer ones are
// emitted as copies after stealing back any literal tail bytes that also
// precede the match in its source.
func createDelta(idx *deltaIndex, target []byte, maxSize int) ([]byte, error) {
	if len(target) == 0 {
		return nil, ErrTargetEmpty
	}
	if idx == nil {
		return nil, ErrIndexNeeded
	}

	out := make([]byte, 0, initialDeltaSize)
	out = appendBase128(out, uint64(len(target)))

	// Open with a plain insert of the first window; its bytes also seed the
	// rolling fingerprint.
	pending := make([]byte, 0, maxInsertLen)
	var val uint32
	pos := 0
	for pos < len(target) && pos < rabinWindow {
		val = rabinPush(val, target[pos])
		pending = append(pending, target[pos])
		pos++
	}

	var (
		msize   int         // best verified match length so far
		moff    int         // its offset within msource.buf
		msource *sourceInfo // the source it came from
	)

	for pos < len(target) {
		if msize < goodEnoughLen {
			// No worthy enough match yet; slide the window by one byte and
			// probe. The window covers the 16 bytes ending at pos inclusive,
			// matches are verified and extended from its last byte on.
			val = rabinPop(val, target[pos-rabinWindow])
			val = rabinPush(val, target[pos])

			bucket := idx.buckets[val&idx.hashMask]
			for i := range bucket {
				e := &bucket[i]
				if e.val != val {
					continue
				}
				ref := e.src.buf[e.pos:]
				limit := len(ref)
				if n := len(target) - pos; n < limit {
					limit = n
				}
				if limit <= msize {
					// No entry here can beat the current match.
					break
				}
				n := 0
				for n < limit && target[pos+n] == ref[n] {
					n++
				}
				if n > msize {
					msize = n
					msource = e.src
					moff = e.pos
					if msize >= goodEnoughLen {
						break
					}
				}
			}
		}

		if msize < minMatchLen {
			// Not worth a copy opcode; extend the literal run instead.
			pending = append(pending, target[pos])
			pos++
			if len(pending) == maxInsertLen {
				out = flushInsert(out, pending)
				pending = pending[:0]
			}
			msize = 0
		} else {
			if len(pending) > 0 {
				// Backward extension: bytes at the tail of the literal run
				// that equal the bytes just before the match in the source
				// belong to the copy, not the insert.
				for moff > 0 && len(pending) > 0 && msource.buf[moff-1] == pending[len(pending)-1] {
					msize++
					moff--
					pos--
					pending = pending[:len(pending)-1]
				}
				out = flushInsert(out, pending)
				pending = pending[:0]
			}

			// One copy op carries at most 64 KiB.
			left := 0
			if msize > maxCopyLen {
				left = msize - maxCopyLen
				msize = maxCopyLen
			}

			out = appendCopy(out, int64(moff+msource.aggOffset), msize)

			pos += msize
			moff += msize
			msize = left

			if msize < goodEnoughLen {
				// The window drifted off; refingerprint at the new position.
				val = rabinHash(target[pos-rabinWindow:])
			}
		}

		if maxSize > 0 && len(out) > maxSize {
			break
		}
	}

	out = flushInsert(out, pending)

	if maxSize > 0 && len(out) > maxSize {
		return nil, ErrSizeTooBig
	}
	return out, nil
}

// flushInsert emits the pending literal run, if any, as one insert opcode.
func flushInsert(out, pending []byte) []byte {
	if len(pending) == 0 {
		return out
	}
	out = append(out, byte(len(pending)))
	return append(out, pending...)
}
