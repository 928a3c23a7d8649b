// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gcdelta

/*
Package gcdelta computes compact binary deltas between byte buffers
(groupcompress/xdelta-style: varint header, insert and copy opcodes).

A delta describes a target buffer as a sequence of "copy length bytes from
offset" and "insert these literal bytes" instructions against one or more
source buffers. The encoder core was greatly inspired by parts of LibXDiff
from Davide Libenzi, by way of the GIT and Bazaar diff-delta rework.

# One source, one target

	delta, err := gcdelta.MakeDelta(source, target)
	out, err := gcdelta.ApplyDelta(source, delta)
	// bytes.Equal(out, target) == true

# Several sources, delta chains

A DeltaIndex accumulates sources; copy offsets address the logical
concatenation of everything added, in order:

	di := gcdelta.NewDeltaIndex(nil)
	di.AddSource(base, 0)
	di.AddSource(other, 0)
	delta, err := di.MakeDelta(target, nil)
	out, err := gcdelta.ApplyDelta(append(base, other...), delta)

Previously produced deltas can feed the index too, so extending a chain does
not re-hash bytes already known to be copies:

	di.AddDeltaSource(delta, 0)

# Wire format

The stream starts with the target length as a little-endian base-128 varint.
An insert opcode is one byte 1..127 followed by that many literal bytes; zero
is reserved and treated as corruption. A copy opcode has the top bit set:
bits 0-3 flag which of the four little-endian offset bytes follow, bits 4-5
flag the two length bytes; absent bytes are zero, and an all-absent length
decodes as 65536.

Sources are aliased, not copied: every buffer handed to AddSource must stay
alive and unmodified for as long as the index (and any index merged from it)
is in use. A DeltaIndex is not safe for concurrent use.
*/
package gcdelta
