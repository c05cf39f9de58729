// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/flint/internal/wide"
)

// BiradialSource evaluates a two-circle gradient: the parameter t of
// a pixel q is the largest t for which q lies on the interpolated
// circle (lerp(c0, c1, t), lerp(r0, r1, t)) with non-negative radius.
//
// Pixels with no real solution (possible when the start circle is
// not enclosed by the end circle) take the last LUT entry rather
// than rendering transparent.
type BiradialSource struct {
	tab     *Table
	cx, cy  float32
	dx, dy  float32
	r0, dr  float32
	a, invA float32
	linear  bool
	scale   float32
	noHit   uint32
}

// NewBiradial builds a biradial source from circles (c0, r0) and
// (c1, r1).
func NewBiradial(tab *Table, c0x, c0y, r0, c1x, c1y, r1 float32) *BiradialSource {
	dx := c1x - c0x
	dy := c1y - c0y
	dr := r1 - r0
	a := dx*dx + dy*dy - dr*dr

	s := &BiradialSource{
		tab: tab,
		cx:  c0x, cy: c0y,
		dx: dx, dy: dy,
		r0: r0, dr: dr,
		a:     a,
		scale: float32(len(tab.Lut)),
		noHit: tab.last(),
	}
	if a > -axisEpsilon && a < axisEpsilon {
		s.linear = true
	} else {
		s.invA = 1 / (2 * a)
	}
	return s
}

// Colors4 implements Source.
func (s *BiradialSource) Colors4(x, y int) [4]uint32 {
	fx := float32(x) + 0.5 - s.cx
	fy := float32(y) + 0.5 - s.cy

	var out [4]uint32
	var idx wide.I32x4
	var hit [4]bool
	for i := range idx {
		px := fx + float32(i)
		t, ok := s.solve(px, fy)
		hit[i] = ok
		if ok {
			idx[i] = int32(math32.Floor(t * s.scale))
		}
	}
	cols := s.tab.fetch(idx)
	for i := range out {
		if hit[i] {
			out[i] = cols[i]
		} else {
			out[i] = s.noHit
		}
	}
	return out
}

// solve finds the gradient parameter for the point at offset
// (px, py) from c0.
func (s *BiradialSource) solve(px, py float32) (float32, bool) {
	// A t² + B t + C = 0 with
	//   B = -2·(pq·d + r0·Δr),  C = |pq|² - r0².
	b := -2 * (px*s.dx + py*s.dy + s.r0*s.dr)
	c := px*px + py*py - s.r0*s.r0

	if s.linear {
		if b > -1e-12 && b < 1e-12 {
			return 0, false
		}
		t := -c / b
		if s.r0+t*s.dr < 0 {
			return 0, false
		}
		return t, true
	}

	disc := b*b - 4*s.a*c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)

	// Larger root first; fall back to the smaller when its circle
	// would have negative radius.
	var t0, t1 float32
	if s.a > 0 {
		t0 = (-b + sq) * s.invA
		t1 = (-b - sq) * s.invA
	} else {
		t0 = (-b - sq) * s.invA
		t1 = (-b + sq) * s.invA
	}
	if s.r0+t0*s.dr >= 0 {
		return t0, true
	}
	if s.r0+t1*s.dr >= 0 {
		return t1, true
	}
	return 0, false
}

// Opaque implements Source.
func (s *BiradialSource) Opaque() bool { return s.tab.Opaque }
