// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import "github.com/gogpu/flint/internal/wide"

// Table is a resolved gradient color table shared by the gradient
// sources: a power-of-two LUT plus the repeat mode that maps indices
// into it.
type Table struct {
	Lut    []uint32
	Mode   Mode
	Opaque bool
}

// mapIdx folds four LUT indices through the table's repeat mode.
func (t *Table) mapIdx(idx wide.I32x4) wide.I32x4 {
	size := int32(len(t.Lut))
	switch t.Mode {
	case Repeat:
		return idx.AndN(size - 1)
	case Mirror:
		return idx.MirrorIdx(size)
	default:
		return idx.ClampIdx(size - 1)
	}
}

// fetch returns the four LUT colors for the given raw indices.
func (t *Table) fetch(idx wide.I32x4) [4]uint32 {
	m := t.mapIdx(idx)
	return [4]uint32{t.Lut[m[0]], t.Lut[m[1]], t.Lut[m[2]], t.Lut[m[3]]}
}

// last returns the final LUT entry, used for undefined gradient
// regions.
func (t *Table) last() uint32 {
	return t.Lut[len(t.Lut)-1]
}

// axisEpsilon floors degenerate gradient geometry (coincident axis
// endpoints, zero radii) so the parameter math cannot divide by
// zero. The visible result is a smear of the first or last LUT
// entry rather than a crash.
const axisEpsilon = 1.0 / 4096
