// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import "github.com/gogpu/flint/internal/wide"

// ConicSource evaluates an angular (sweep) gradient around a center.
// Two axis vectors let the sweep be rotated or elliptical; the angle
// is computed with a cubic atan2 approximation, so the per-pixel cost
// is a handful of multiplies and no transcendentals.
//
// The parameter runs over (-0.5, 0.5] turns, so under Mirror the
// sweep is reflection-symmetric about the first axis (the two sides
// of the negative first axis fold onto the same table entry); the
// positive and negative first-axis directions remain half a period
// apart.
type ConicSource struct {
	tab    *Table
	cx, cy float32
	ux, uy float32
	vx, vy float32
	scale  float32 // lut length × repeat count
}

// Polynomial coefficients for the octant-folded atan2 approximation.
// p(g) = c0 - c1·g + c3·g³ maps g = (|u|-|v|)/(|u|+|v|) to the angle
// in turns within one quadrant: p(1) = 0, p(0) = 1/8, p(-1) = 1/4.
const (
	atanC0 = 0.125
	atanC1 = 0.141499
	atanC3 = 0.016499
)

// NewConic builds a conic source from a center, two axis vectors and
// a repeat count. Degenerate axes are floored like radial ones.
func NewConic(tab *Table, cx, cy, a1x, a1y, a2x, a2y float32, repeats float32) *ConicSource {
	det := a1x*a2y - a1y*a2x
	if det > -axisEpsilon && det < axisEpsilon {
		a1x, a2y = axisEpsilon, axisEpsilon
		a1y, a2x = 0, 0
		det = axisEpsilon * axisEpsilon
	}
	if repeats <= 0 {
		repeats = 1
	}
	inv := 1 / det
	return &ConicSource{
		tab: tab,
		cx:  cx, cy: cy,
		ux: a2y * inv, uy: -a2x * inv,
		vx: -a1y * inv, vy: a1x * inv,
		scale: float32(len(tab.Lut)) * repeats,
	}
}

// Colors4 implements Source.
func (s *ConicSource) Colors4(x, y int) [4]uint32 {
	fx := float32(x) + 0.5 - s.cx
	fy := float32(y) + 0.5 - s.cy

	var t wide.F32x4
	for i := range t {
		px := fx + float32(i)
		u := px*s.ux + fy*s.uy
		v := px*s.vx + fy*s.vy
		t[i] = atan2Turns(u, v) * s.scale
	}
	return s.tab.fetch(floorIdx(t))
}

// Opaque implements Source.
func (s *ConicSource) Opaque() bool { return s.tab.Opaque }

// atan2Turns approximates atan2(v, u) in turns, in (-0.5, 0.5].
// The fold variable g is symmetric in the octants of one quadrant;
// the cubic handles one quadrant and sign fixes mirror it into the
// other three, mirroring the SSE sign-bit XOR trick.
func atan2Turns(u, v float32) float32 {
	au := u
	if au < 0 {
		au = -au
	}
	av := v
	if av < 0 {
		av = -av
	}
	sum := au + av
	if sum < 1e-20 {
		return 0
	}
	g := (au - av) / sum
	p := atanC0 - atanC1*g + atanC3*g*g*g
	if u < 0 {
		p = 0.5 - p
	}
	if v < 0 {
		p = -p
	}
	return p
}
