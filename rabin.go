// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// rabinPush folds one incoming byte into the fingerprint accumulator.
func rabinPush(val uint32, c byte) uint32 {
	return ((val << 8) | uint32(c)) ^ rabinAddTable[val>>rabinShift]
}

// rabinPop cancels the contribution of the byte sliding out of the window.
// Callers pop the outgoing byte, then push the incoming one.
func rabinPop(val uint32, c byte) uint32 {
	return val ^ rabinRemoveTable[c]
}

// rabinHash fingerprints one full window. data must hold at least rabinWindow bytes.
func rabinHash(data []byte) uint32 {
	var val uint32
	for i := 0; i < rabinWindow; i++ {
		val = rabinPush(val, data[i])
	}
	return val
}
