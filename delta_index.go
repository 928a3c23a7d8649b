// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gcdelta

package gcdelta

// IndexOptions configures a DeltaIndex. The zero value indexes everything.
type IndexOptions struct {
	// MaxBytesToIndex caps how many bytes of each source are sampled
	// (0 = no cap). Larger sources are sampled at a wider stride, trading
	// match quality for a bounded index size.
	MaxBytesToIndex int
}

// DefaultIndexOptions returns the default index configuration: every byte of
// every source is indexed.
func DefaultIndexOptions() *IndexOptions {
	return &IndexOptions{}
}

// DeltaOptions configures one MakeDelta call. opts may be nil.
type DeltaOptions struct {
	// MaxDeltaSize fails MakeDelta with ErrSizeTooBig once the encoded delta
	// grows past this many bytes (0 = unlimited). Useful when a delta bigger
	// than some fraction of the target is not worth storing.
	MaxDeltaSize int
}

// DefaultDeltaOptions returns the default encoding configuration: no size cap.
func DefaultDeltaOptions() *DeltaOptions {
	return &DeltaOptions{}
}

// DeltaIndex accumulates source buffers and produces deltas against them.
// Copy offsets in produced deltas address the logical concatenation of every
// added source (plus any declared unused gap bytes), in add order.
//
// Added buffers are aliased, never copied, and must stay alive and unchanged
// for the life of the index. Not safe for concurrent use.
type DeltaIndex struct {
	index           *deltaIndex
	sources         []*sourceInfo
	pending         []*sourceInfo
	sourceOffset    int
	maxBytesToIndex int
}

// NewDeltaIndex returns an empty index. opts may be nil.
func NewDeltaIndex(opts *IndexOptions) *DeltaIndex {
	di := &DeltaIndex{}
	if opts != nil {
		di.maxBytesToIndex = opts.MaxBytesToIndex
	}
	return di
}

// AddSource registers source as copy material. unusedBytes counts bytes that
// sit between the previous source and this one in the caller's aggregate
// layout (stored but not indexed); copy offsets skip over them.
//
// Indexing the first source is deferred until it is needed (a second source
// arrives or a delta is requested), so building an index for a single
// compare pays the hashing cost exactly once.
func (di *DeltaIndex) AddSource(source []byte, unusedBytes int) error {
	if len(source) == 0 {
		return ErrSourceEmpty
	}

	src := &sourceInfo{buf: source, aggOffset: di.sourceOffset + unusedBytes}
	di.sources = append(di.sources, src)
	di.pending = append(di.pending, src)
	di.sourceOffset = src.aggOffset + len(source)

	if di.index != nil || len(di.sources) > 1 {
		return di.flushPending()
	}
	return nil
}

// AddDeltaSource registers the bytes of a previously produced delta as copy
// material, indexing only its insert literals. The copy regions of the delta
// are already reachable through the sources it was made from, so a delta
// chain can grow without re-hashing them. An index must exist (at least one
// AddSource first), otherwise ErrIndexNeeded.
func (di *DeltaIndex) AddDeltaSource(delta []byte, unusedBytes int) error {
	if err := di.flushPending(); err != nil {
		return err
	}
	if di.index == nil {
		return ErrIndexNeeded
	}

	src := &sourceInfo{buf: delta, aggOffset: di.sourceOffset + unusedBytes}
	idx, err := createIndexFromDelta(src, di.index)
	if err != nil {
		return err
	}
	di.index = idx
	di.sources = append(di.sources, src)
	di.sourceOffset = src.aggOffset + len(delta)
	return nil
}

// MakeDelta encodes target against everything added so far. opts may be nil.
func (di *DeltaIndex) MakeDelta(target []byte, opts *DeltaOptions) ([]byte, error) {
	if err := di.flushPending(); err != nil {
		return nil, err
	}
	if di.index == nil {
		return nil, ErrIndexNeeded
	}

	maxSize := 0
	if opts != nil {
		maxSize = opts.MaxDeltaSize
	}
	return createDelta(di.index, target, maxSize)
}

// SourceOffset returns the total aggregate length covered so far: all added
// sources plus declared unused gaps. The next source added with zero
// unusedBytes starts at this offset.
func (di *DeltaIndex) SourceOffset() int {
	return di.sourceOffset
}

// SizeInBytes estimates the memory held by the index structure (source
// buffers are aliased and not counted).
func (di *DeltaIndex) SizeInBytes() int {
	if di.index == nil {
		return 0
	}
	return di.index.sizeInBytes()
}

// flushPending indexes sources whose indexing was deferred.
func (di *DeltaIndex) flushPending() error {
	for _, src := range di.pending {
		idx, err := createIndex(src, di.index, di.maxBytesToIndex)
		if err != nil {
			return err
		}
		di.index = idx
	}
	di.pending = di.pending[:0]
	return nil
}

// hasIndex reports whether the backing index has been built yet.
func (di *DeltaIndex) hasIndex() bool {
	return di.index != nil
}

// MakeDelta encodes target against a single source in one shot. For several
// sources, size caps or delta chains, use a DeltaIndex.
func MakeDelta(source, target []byte) ([]byte, error) {
	di := NewDeltaIndex(nil)
	if err := di.AddSource(source, 0); err != nil {
		return nil, err
	}
	return di.MakeDelta(target, nil)
}
