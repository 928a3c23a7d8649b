// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

import (
	"bytes"
	"math/rand"
	"testing"
)

func benchmarkPairs() map[string]struct{ source, target []byte } {
	rng := rand.New(rand.NewSource(99))
	random256k := make([]byte, 256*1024)
	rng.Read(random256k)

	text128k := bytes.Repeat([]byte("benchmark line of mostly steady delta input text\n"), 2680)
	edited := mutate(text128k, rng, 20)

	return map[string]struct{ source, target []byte }{
		"identical-128k": {text128k, text128k},
		"edited-128k":    {text128k, edited},
		"random-256k":    {random256k, mutate(random256k, rng, 10)},
	}
}

func BenchmarkMakeDelta(b *testing.B) {
	for name, pair := range benchmarkPairs() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(pair.target)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := MakeDelta(pair.source, pair.target); err != nil {
					b.Fatalf("MakeDelta failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkMakeDeltaReusedIndex(b *testing.B) {
	for name, pair := range benchmarkPairs() {
		di := NewDeltaIndex(nil)
		if err := di.AddSource(pair.source, 0); err != nil {
			b.Fatalf("AddSource failed: %v", err)
		}
		if _, err := di.MakeDelta(pair.target, nil); err != nil {
			b.Fatalf("setup MakeDelta failed: %v", err)
		}

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(pair.target)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := di.MakeDelta(pair.target, nil); err != nil {
					b.Fatalf("MakeDelta failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkApplyDelta(b *testing.B) {
	for name, pair := range benchmarkPairs() {
		delta, err := MakeDelta(pair.source, pair.target)
		if err != nil {
			b.Fatalf("setup MakeDelta failed: %v", err)
		}

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(pair.target)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := ApplyDelta(pair.source, delta); err != nil {
					b.Fatalf("ApplyDelta failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkBuildIndex(b *testing.B) {
	source := bytes.Repeat([]byte("index construction benchmark input line\n"), 3276)

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		di := NewDeltaIndex(nil)
		if err := di.AddSource(source, 0); err != nil {
			b.Fatalf("AddSource failed: %v", err)
		}
		if err := di.flushPending(); err != nil {
			b.Fatalf("flushPending failed: %v", err)
		}
	}
}
