// SPDX-License-Identifier: GPL-2.0-or-later
// Source: github.com/woozymasta/gcdelta

package gcdelta

// Shared fixture texts. The expected delta byte strings scattered through the
// tests were produced by an independent encoder for these exact inputs, so
// any drift in table constants, match selection or opcode layout shows up as
// a byte-level mismatch rather than just a failed round trip.

var (
	text1 = []byte("This is a bit\n" +
		"of source text\n" +
		"which is meant to be matched\n" +
		"against other text\n")

	text2 = []byte("This is a bit\n" +
		"of source text\n" +
		"which is meant to differ from\n" +
		"against other text\n")

	text3 = []byte("This is a bit\n" +
		"of source text\n" +
		"which is meant to be matched\n" +
		"against other text\n" +
		"except it also\n" +
		"has a lot more data\n" +
		"at the end of the file\n")

	firstText = []byte("a bit of text, that\n" +
		"does not have much in\n" +
		"common with the next text\n")

	secondText = []byte("some more bit of text, that\n" +
		"does not have much in\n" +
		"common with the previous text\n" +
		"and has some extra text\n")

	thirdText = []byte("a bit of text, that\n" +
		"has some in common with the previous text\n" +
		"and has some extra text\n" +
		"and not have much in\n" +
		"common with the next text\n")

	fourthText = []byte("123456789012345\nsame rabin hash\n" +
		"123456789012345\nsame rabin hash\n" +
		"123456789012345\nsame rabin hash\n" +
		"123456789012345\nsame rabin hash\n")
)
