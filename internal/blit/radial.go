// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import "github.com/gogpu/flint/internal/wide"

// RadialSource evaluates an elliptical gradient described by a
// center and two radius vectors. Pixels are mapped through the
// inverse of the axis matrix into a space where the ellipse is the
// unit circle; the LUT index is the scaled distance from the center.
type RadialSource struct {
	tab    *Table
	cx, cy float32
	// Inverse axis matrix rows.
	ux, uy float32
	vx, vy float32
	scale  float32
}

// NewRadial builds a radial source from center (cx, cy) and two
// radius vectors. Zero-area axes are floored to a small epsilon.
func NewRadial(tab *Table, cx, cy, r1x, r1y, r2x, r2y float32) *RadialSource {
	det := r1x*r2y - r1y*r2x
	if det > -axisEpsilon && det < axisEpsilon {
		// Degenerate ellipse: nudge the axes apart.
		if r1x == 0 && r1y == 0 {
			r1x = axisEpsilon
		}
		if r2x == 0 && r2y == 0 {
			r2y = axisEpsilon
		}
		det = r1x*r2y - r1y*r2x
		if det > -axisEpsilon*axisEpsilon && det < axisEpsilon*axisEpsilon {
			r1x, r2y = axisEpsilon, axisEpsilon
			r1y, r2x = 0, 0
			det = axisEpsilon * axisEpsilon
		}
	}
	inv := 1 / det
	return &RadialSource{
		tab: tab,
		cx:  cx, cy: cy,
		ux: r2y * inv, uy: -r2x * inv,
		vx: -r1y * inv, vy: r1x * inv,
		scale: float32(len(tab.Lut)),
	}
}

// Colors4 implements Source.
func (s *RadialSource) Colors4(x, y int) [4]uint32 {
	fx := float32(x) + 0.5 - s.cx
	fy := float32(y) + 0.5 - s.cy

	var u, v wide.F32x4
	for i := range u {
		px := fx + float32(i)
		u[i] = px*s.ux + fy*s.uy
		v[i] = px*s.vx + fy*s.vy
	}
	t := u.Mul(u).Add(v.Mul(v)).Sqrt().Scale(s.scale)
	return s.tab.fetch(floorIdx(t))
}

// Opaque implements Source.
func (s *RadialSource) Opaque() bool { return s.tab.Opaque }
