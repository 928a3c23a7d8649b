// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

import (
	"bytes"
	"errors"
	"reflect"
	"sort"
	"testing"
)

func sortedEntries(idx *deltaIndex) []entrySummary {
	entries := idx.dumpEntries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].textOffset < entries[j].textOffset
	})
	return entries
}

func TestDeltaIndex_FirstSourceIndexedLazily(t *testing.T) {
	di := NewDeltaIndex(nil)
	if di.hasIndex() {
		t.Fatal("fresh index should be empty")
	}
	if err := di.AddSource(text1, 0); err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	if di.hasIndex() {
		t.Fatal("single source should not be indexed until a delta is requested")
	}
	if di.SizeInBytes() != 0 {
		t.Fatalf("SizeInBytes = %d before any index exists", di.SizeInBytes())
	}

	delta, err := di.MakeDelta(text2, nil)
	if err != nil {
		t.Fatalf("MakeDelta failed: %v", err)
	}
	if !di.hasIndex() {
		t.Fatal("MakeDelta should have built the index")
	}
	if di.SizeInBytes() <= 0 {
		t.Fatalf("SizeInBytes = %d after building", di.SizeInBytes())
	}
	want := []byte("N\x90/\x1fdiffer from\nagainst other text\n")
	if !bytes.Equal(delta, want) {
		t.Fatalf("delta = %q, want %q", delta, want)
	}
}

func TestDeltaIndex_SecondSourceTriggersBuild(t *testing.T) {
	di := NewDeltaIndex(nil)
	if err := di.AddSource(text1, 0); err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	if di.hasIndex() {
		t.Fatal("index built too early")
	}
	if err := di.AddSource(text2, 0); err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	if !di.hasIndex() {
		t.Fatal("second AddSource should force the deferred build")
	}
}

func TestDeltaIndex_RejectsEmptySource(t *testing.T) {
	di := NewDeltaIndex(nil)
	if err := di.AddSource(nil, 0); !errors.Is(err, ErrSourceEmpty) {
		t.Fatalf("AddSource(nil) = %v, want ErrSourceEmpty", err)
	}
	if err := di.AddSource([]byte{}, 0); !errors.Is(err, ErrSourceEmpty) {
		t.Fatalf("AddSource(empty) = %v, want ErrSourceEmpty", err)
	}
}

func TestDeltaIndex_EntriesSingleSource(t *testing.T) {
	di := NewDeltaIndex(nil)
	if err := di.AddSource(text1, 0); err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	if _, err := di.MakeDelta(text1, nil); err != nil {
		t.Fatalf("MakeDelta failed: %v", err)
	}

	// One window per 16 source bytes, recorded at the offset of the window's
	// last byte.
	want := []entrySummary{
		{16, rabinHash(text1[1:17])},
		{32, rabinHash(text1[17:33])},
		{48, rabinHash(text1[33:49])},
		{64, rabinHash(text1[49:65])},
	}
	if got := sortedEntries(di.index); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestDeltaIndex_EntriesTwoSourcesWithGap(t *testing.T) {
	di := NewDeltaIndex(nil)
	if err := di.AddSource(text1, 0); err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	if err := di.AddSource(text2, 2); err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	start2 := len(text1) + 2
	if got := di.SourceOffset(); got != start2+len(text2) {
		t.Fatalf("SourceOffset = %d, want %d", got, start2+len(text2))
	}

	want := []entrySummary{
		{16, rabinHash(text1[1:17])},
		{32, rabinHash(text1[17:33])},
		{48, rabinHash(text1[33:49])},
		{64, rabinHash(text1[49:65])},
		{start2 + 16, rabinHash(text2[1:17])},
		{start2 + 32, rabinHash(text2[17:33])},
		{start2 + 48, rabinHash(text2[33:49])},
		{start2 + 64, rabinHash(text2[49:65])},
	}
	if got := sortedEntries(di.index); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestDeltaIndex_MaxBytesToIndexWidensStride(t *testing.T) {
	di := NewDeltaIndex(&IndexOptions{MaxBytesToIndex: 3 * 16})
	if err := di.AddSource(text1, 0); err != nil { // (77-1)/3 = 25 byte stride
		t.Fatalf("AddSource failed: %v", err)
	}
	if err := di.AddSource(text3, 3); err != nil { // (135-1)/3 = 44 byte stride
		t.Fatalf("AddSource failed: %v", err)
	}
	start2 := len(text1) + 3

	want := []entrySummary{
		{25, rabinHash(text1[10:26])},
		{50, rabinHash(text1[35:51])},
		{75, rabinHash(text1[60:76])},
		{start2 + 44, rabinHash(text3[29:45])},
		{start2 + 88, rabinHash(text3[73:89])},
		{start2 + 132, rabinHash(text3[117:133])},
	}
	if got := sortedEntries(di.index); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestDeltaIndex_BucketsLimited(t *testing.T) {
	// fourthText alternates two 16-byte blocks, so repeating it piles all
	// window fingerprints onto two values. Far more than hashLimit candidates
	// per value get sampled; the index must prune each bucket back down.
	big := bytes.Repeat(fourthText, 32) // (4096-1)/16 = 255 raw entries

	di := NewDeltaIndex(nil)
	if err := di.AddSource(big, 0); err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	if _, err := di.MakeDelta(fourthText, nil); err != nil {
		t.Fatalf("MakeDelta failed: %v", err)
	}

	maxBucket := 0
	for _, b := range di.index.buckets {
		if len(b) > hashLimit {
			t.Fatalf("bucket holds %d entries, limit is %d", len(b), hashLimit)
		}
		if len(b) > maxBucket {
			maxBucket = len(b)
		}
	}
	if maxBucket != hashLimit {
		t.Fatalf("largest bucket has %d entries, expected one pruned to exactly %d",
			maxBucket, hashLimit)
	}
	if di.index.numEntries >= 255 {
		t.Fatalf("numEntries = %d, pruning did not drop anything", di.index.numEntries)
	}
}

func TestDeltaIndex_Deterministic(t *testing.T) {
	build := func() []entrySummary {
		di := NewDeltaIndex(nil)
		if err := di.AddSource(text3, 0); err != nil {
			t.Fatalf("AddSource failed: %v", err)
		}
		if err := di.AddSource(firstText, 0); err != nil {
			t.Fatalf("AddSource failed: %v", err)
		}
		return di.index.dumpEntries()
	}
	first := build()
	second := build()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different indexes")
	}
}

func TestMakeDelta_NoIndex(t *testing.T) {
	di := NewDeltaIndex(nil)
	if _, err := di.MakeDelta(text1, nil); !errors.Is(err, ErrIndexNeeded) {
		t.Fatalf("MakeDelta without sources = %v, want ErrIndexNeeded", err)
	}
}
