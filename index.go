// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// indexEntry records one fingerprinted window: the owning source, the offset
// of the window's last byte within it, and the fingerprint value.
type indexEntry struct {
	src *sourceInfo
	pos int
	val uint32
}

// deltaIndex maps fingerprint -> candidate source positions. Buckets are kept
// as slices with spare capacity (extraNulls per bucket at pack time) so a
// later merge can usually append in place instead of reallocating. Within one
// bucket, entries from an earlier-added source always precede entries from a
// later one; delta chains rely on that for deterministic match selection.
type deltaIndex struct {
	buckets    [][]indexEntry
	hashMask   uint32
	numEntries int
	lastSrc    *sourceInfo
}

// bucketSizeFor picks the bucket count for totalEntries: the next power of
// two that targets ~4 live entries per bucket, never below 16 and never below
// a previous index's bucket count (bucket counts only grow across merges).
func bucketSizeFor(totalEntries int, old *deltaIndex) (hsize int, hmask uint32) {
	want := totalEntries / 4
	i := uint(4)
	for 1<<i < want && i < 31 {
		i++
	}
	hsize = 1 << i
	if old != nil && int(old.hashMask)+1 > hsize {
		hsize = int(old.hashMask) + 1
	}
	return hsize, uint32(hsize - 1)
}

// spareRoom reports whether bucket b can take one more entry without growing.
func (idx *deltaIndex) spareRoom(b uint32) bool {
	return len(idx.buckets[b]) < cap(idx.buckets[b])
}

// sizeInBytes estimates the memory held by the index structure itself
// (bucket headers plus entry slots, spare capacity included). Source buffers
// are aliased, not owned, and are not counted.
func (idx *deltaIndex) sizeInBytes() int {
	const entrySize = 24 // pointer, int and a padded uint32
	const sliceHeaderSize = 24
	size := sliceHeaderSize * (len(idx.buckets) + 1)
	for _, b := range idx.buckets {
		size += entrySize * cap(b)
	}
	return size
}

// entrySummary is one live entry as seen by tests: the entry's offset in the
// aggregate source region and its fingerprint.
type entrySummary struct {
	textOffset int
	val        uint32
}

// dumpEntries lists live entries in bucket order.
func (idx *deltaIndex) dumpEntries() []entrySummary {
	out := make([]entrySummary, 0, idx.numEntries)
	for _, bucket := range idx.buckets {
		for _, e := range bucket {
			out = append(out, entrySummary{
				textOffset: e.src.aggOffset + e.pos,
				val:        e.val,
			})
		}
	}
	return out
}
