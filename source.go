// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// sourceInfo is one indexed buffer. aggOffset is its position within the
// logical concatenation of all sources ever added to the index, so copy
// offsets can address across buffers as one region. Index entries alias buf;
// the buffer must outlive every index referencing it.
type sourceInfo struct {
	buf       []byte
	aggOffset int
}
