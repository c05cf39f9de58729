// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Coverage values are 16-bit: 0 is fully outside, 0xFFFF fully
// inside. Blits use the upper 8 bits as the alpha multiplier.

// CoverageNonZero converts a winding accumulator to coverage under
// the non-zero rule: any net winding is inside, saturating at full
// opacity after one complete crossing.
func CoverageNonZero(w int32) uint32 {
	if w < 0 {
		w = -w
	}
	c := uint32(w) * 2
	if c > 0xFFFF {
		c = 0xFFFF
	}
	return c
}

// CoverageEvenOdd converts a winding accumulator to coverage under
// the even-odd rule. The winding is reduced to its low 16 bits, whose
// sign bit flips once per crossing; xor-folding by the sign turns the
// sawtooth into a triangle wave that peaks between odd crossings.
func CoverageEvenOdd(w int32) uint32 {
	v := int32(int16(uint16(uint32(w))))
	v ^= v >> 15
	return uint32(v) * 2
}
