// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gcdelta

package gcdelta

// Format constants: fingerprint window, index sizing, opcode field bounds.

// Rolling fingerprint parameters.
const (
	rabinShift  = 23
	rabinWindow = 16 // bytes covered by one fingerprint
)

// Index sizing.
const (
	// hashLimit caps entries kept per bucket; pathological inputs would
	// otherwise push lookups to O(m*n).
	hashLimit = 64
	// extraNulls is spare capacity appended per bucket so later sources can
	// slot in without a reallocation. ~4 live entries per bucket is the
	// sizing target; more headroom than this has not shown a benefit.
	extraNulls = 4
)

// Opcode field bounds.
const (
	maxInsertLen  = 0x7f    // insert count is 7 bits
	maxCopyLen    = 0x10000 // copy length field is 16 bits, 0 meaning 65536
	minMatchLen   = 4       // shorter matches cost more as copies than inserts
	goodEnoughLen = 4096    // stop probing once a match is at least this long
)

// initialDeltaSize is the starting capacity of the encoder's output buffer.
const initialDeltaSize = 8192
