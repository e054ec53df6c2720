// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"strings"
)

// Bits is an ordered bit sequence. Bits[0] is the least significant bit.
type Bits []uint8

// BitsOf expands value into exactly width bits. Values that do not fit in
// width bits are rejected rather than truncated.
func BitsOf(value uint32, width int) (bits Bits, err error) {
	if width < 0 || width > 32 {
		err = ErrFieldRange
		return
	}
	if width < 32 && value>>width != 0 {
		err = ErrFieldWidth
		return
	}

	bits = make(Bits, width)
	for n := range width {
		bits[n] = uint8((value >> n) & 1)
	}

	return
}

// Value reconstructs the unsigned integer.
func (bits Bits) Value() (value uint32) {
	for n, bit := range bits {
		value |= uint32(bit&1) << n
	}
	return
}

// String renders the bits most significant first.
func (bits Bits) String() string {
	var sb strings.Builder
	for n := len(bits) - 1; n >= 0; n-- {
		sb.WriteByte('0' + bits[n])
	}
	return sb.String()
}
