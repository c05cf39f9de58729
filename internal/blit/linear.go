// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/flint/internal/wide"
)

// LinearSource evaluates a linear gradient between two points. The
// LUT index at pixel q is the projection of q onto the axis p0→p1,
// scaled so p0 maps to 0 and p1 to the table length.
type LinearSource struct {
	tab    *Table
	px, py float32
	gx, gy float32
}

// NewLinear builds a linear source. A degenerate axis (p0 == p1) is
// floored to a small epsilon so every pixel lands on the table ends.
func NewLinear(tab *Table, x0, y0, x1, y1 float32) *LinearSource {
	dx := x1 - x0
	dy := y1 - y0
	len2 := dx*dx + dy*dy
	if len2 < axisEpsilon*axisEpsilon {
		dx, dy = axisEpsilon, 0
		len2 = axisEpsilon * axisEpsilon
	}
	scale := float32(len(tab.Lut)) / len2
	return &LinearSource{
		tab: tab,
		px:  x0, py: y0,
		gx: dx * scale, gy: dy * scale,
	}
}

// Colors4 implements Source.
func (s *LinearSource) Colors4(x, y int) [4]uint32 {
	fx := float32(x) + 0.5 - s.px
	fy := float32(y) + 0.5 - s.py
	base := fx*s.gx + fy*s.gy
	t := wide.F32x4{base, base + s.gx, base + 2*s.gx, base + 3*s.gx}
	return s.tab.fetch(floorIdx(t))
}

// Opaque implements Source.
func (s *LinearSource) Opaque() bool { return s.tab.Opaque }

// floorIdx converts four gradient parameters to LUT indices, flooring
// so negative parameters map below zero rather than truncating toward
// it (Repeat and Mirror depend on that).
func floorIdx(t wide.F32x4) wide.I32x4 {
	var r wide.I32x4
	for i := range t {
		r[i] = int32(math32.Floor(t[i]))
	}
	return r
}
