// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitops provides byte-level primitives shared by the flagfield
// container: bulk fills, tail masking, and population counting.
package bitops

import "math/bits"

// Fill sets every byte of b to v.
func Fill(b []byte, v byte) {
	for i := 0; i < len(b); i++ {
		b[i] = v
	}
}

// TailMask returns a mask selecting the valid bits of the final byte of an
// n-bit field. For n a multiple of 8 the whole byte is valid and the mask
// is 0xFF.
func TailMask(n int) byte {
	if r := n % 8; r != 0 {
		return byte(1<<r) - 1
	}
	return 0xFF
}

// PopCount counts the 1 bits in b, with the final byte masked by tail so
// that garbage past the logical length never contributes.
func PopCount(b []byte, tail byte) int {
	if len(b) == 0 {
		return 0
	}
	n := 0
	for _, v := range b[:len(b)-1] {
		n += bits.OnesCount8(v)
	}
	n += bits.OnesCount8(b[len(b)-1] & tail)
	return n
}
