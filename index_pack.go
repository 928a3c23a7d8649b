// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// limitBuckets prunes any bucket holding more than hashLimit entries down to
// exactly hashLimit, keeping entries evenly spaced across the bucket's span
// rather than truncating one end. Pathological inputs (most windows hashing
// alike) would otherwise make every lookup scan the whole source; the
// occasional missed match on such inputs is the accepted cost. Returns the
// number of entries removed.
func limitBuckets(buckets [][]indexEntry) (removed int) {
	for i, bucket := range buckets {
		n := len(bucket)
		if n <= hashLimit {
			continue
		}

		// The accumulator walks the bucket keeping one entry per hashLimit-th
		// share of the excess; it runs exactly hashLimit keeps.
		kept := make([]indexEntry, 0, hashLimit)
		acc := 0
		for j := 0; j < n; {
			kept = append(kept, bucket[j])
			acc += n - hashLimit
			if acc > 0 {
				for acc > 0 {
					j++
					acc -= hashLimit
				}
			}
			j++
		}
		buckets[i] = kept
		removed += n - len(kept)
	}
	return removed
}

// packIndex combines old (may be nil) with per-bucket new entries into an
// index of hsize buckets. When the bucket count is unchanged and every bucket
// has spare capacity for its share, old is mutated and returned; otherwise a
// fresh index is built with extraNulls spare slots per bucket, old entries
// first within each bucket so earlier sources win match-selection ties.
func packIndex(newBuckets [][]indexEntry, hsize int, old *deltaIndex) *deltaIndex {
	hmask := uint32(hsize - 1)

	if old != nil && old.hashMask == hmask {
		fits := true
		for i, nb := range newBuckets {
			if len(old.buckets[i])+len(nb) > cap(old.buckets[i]) {
				fits = false
				break
			}
		}
		if fits {
			for i, nb := range newBuckets {
				old.buckets[i] = append(old.buckets[i], nb...)
				old.numEntries += len(nb)
			}
			return old
		}
	}

	idx := &deltaIndex{
		buckets:  make([][]indexEntry, hsize),
		hashMask: hmask,
	}
	if old != nil {
		idx.lastSrc = old.lastSrc
	}
	for i := range idx.buckets {
		var live []indexEntry
		if old != nil {
			// With a grown bucket count, every old entry of bucket i&oldMask
			// lands in exactly one of the buckets that fold onto it.
			j := uint32(i) & old.hashMask
			for _, e := range old.buckets[j] {
				if e.val&hmask == uint32(i) {
					live = append(live, e)
				}
			}
		}
		live = append(live, newBuckets[i]...)

		bucket := make([]indexEntry, len(live), len(live)+extraNulls)
		copy(bucket, live)
		idx.buckets[i] = bucket
		idx.numEntries += len(bucket)
	}
	return idx
}
