// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// createIndex fingerprints src at a fixed stride and merges the entries into
// old (which may be nil). It returns old itself when the new entries fit into
// spare bucket capacity, otherwise a fresh index superseding it; either way
// callers must use the returned index and drop the argument.
//
// maxBytesToIndex > 0 caps the number of sampled windows; oversized sources
// are sampled at a wider stride instead of growing the index without bound.
func createIndex(src *sourceInfo, old *deltaIndex, maxBytesToIndex int) (*deltaIndex, error) {
	if len(src.buf) == 0 {
		return nil, ErrSourceEmpty
	}
	buf := src.buf

	// Indexing skips the first byte, so size-1 keeps the edge cases right.
	stride := rabinWindow
	numEntries := (len(buf) - 1) / rabinWindow
	if maxBytesToIndex > 0 {
		maxEntries := maxBytesToIndex / rabinWindow
		if numEntries > maxEntries {
			numEntries = maxEntries
			if numEntries > 0 {
				stride = (len(buf) - 1) / numEntries
			}
		}
	}

	totalEntries := numEntries
	if old != nil {
		totalEntries += old.numEntries
	}
	hsize, hmask := bucketSizeFor(totalEntries, old)

	// One fingerprint per stride. A run of consecutive identical fingerprints
	// (long byte runs, repeated blocks) collapses to its lowest offset, so
	// repetitive content cannot bloat the index.
	newBuckets := make([][]indexEntry, hsize)
	prevVal := ^uint32(0)
	for k := 1; k <= numEntries; k++ {
		p := k*stride - rabinWindow
		val := rabinHash(buf[p+1:])
		if val == prevVal {
			continue
		}
		prevVal = val
		b := val & hmask
		newBuckets[b] = append(newBuckets[b], indexEntry{src: src, pos: p + rabinWindow, val: val})
	}

	limitBuckets(newBuckets)

	idx := packIndex(newBuckets, hsize, old)
	idx.lastSrc = src
	return idx, nil
}
