// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster turns filled paths into per-scanline winding deltas.
//
// The rasterizer accumulates, for one scanline at a time, the signed
// change in winding number that each pixel column introduces. A blit
// callback integrates the deltas left to right to recover the winding
// number (and from it the coverage) at every pixel, then writes the
// consumed slots back to zero so the next scanline starts clean.
//
// Edges are held in 24.8 fixed point. Each edge contributes, per
// scanline it crosses, a partial-area delta at the pixel where it
// enters and a full-coverage carry one pixel past where it exits, so
// that a prefix sum across the row reconstructs the exact trapezoidal
// coverage of every pixel.
package raster

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/flint/internal/curve"
	"github.com/gogpu/flint/internal/scalar"
)

// CoverOne is the winding accumulator value of a single full crossing.
// A pixel with winding ±CoverOne is fully inside under NonZero.
const CoverOne = 1 << 15

// fixShift converts pixel coordinates to 24.8 fixed point.
const fixShift = 8

// fixOne is one pixel in 24.8 fixed point.
const fixOne = 1 << fixShift

// maxClipDim bounds clip coordinates so 24.8 fixed point cannot
// overflow int32 during edge walking.
const maxClipDim = 1 << 22

// ErrClipOverflow is returned by Init when the clip rectangle exceeds
// the coordinate range representable in 24.8 fixed point.
var ErrClipOverflow = errors.New("raster: clip rectangle exceeds fixed-point range")

// BlitFunc consumes one scanline of winding deltas.
//
// delta[i] holds the winding change introduced at column x0+i; mask
// bit b (bit b%32 of word b/32) is set if the 4-pixel group starting
// at column x0+4*b received any edge contribution. The callback must
// integrate delta left to right, paint pixels x0..x1-1 on row y, and
// zero every delta slot and mask word it consumes.
type BlitFunc func(delta []int32, mask []uint32, x0, x1, y int)

// edge is one monotone segment in 24.8 fixed point with y0 < y1.
// dir carries the original winding direction.
type edge struct {
	x0, y0, x1, y1 int32
	dir            int32
}

// Rasterizer bins path edges into scanline cells.
//
// The zero value is not usable; call Init first. A Rasterizer may be
// reused across paths and frames: Init resets the edge list and
// reallocates the delta and mask buffers only when the clip grows.
type Rasterizer struct {
	clip  image.Rectangle
	width int

	// delta is clip-relative: delta[0] is the column at clip.Min.X.
	// Its length is the clip width plus carry slack, rounded up to a
	// whole 4-pixel group, so the exit carry of a right-clamped edge
	// always has a slot to land in.
	delta []int32
	mask  []uint32

	edges scalar.Arena[edge]
	order []int32

	penX, penY     float32
	startX, startY float32
	open           bool

	// Fixed-point y bounds over all accumulated edges.
	minY, maxY int32
}

// Init prepares the rasterizer for the given clip rectangle and
// discards any previously added edges.
func (r *Rasterizer) Init(clip image.Rectangle) error {
	clip = clip.Canon()
	if clip.Min.X < -maxClipDim || clip.Min.Y < -maxClipDim ||
		clip.Max.X > maxClipDim || clip.Max.Y > maxClipDim {
		return ErrClipOverflow
	}
	r.clip = clip
	r.width = clip.Dx()

	need := scalar.RoundUp4(r.width + 2)
	maskLen := (need/4 + 31) / 32
	if cap(r.delta) < need {
		r.delta = make([]int32, need)
		r.mask = make([]uint32, maskLen)
	} else {
		r.delta = r.delta[:need]
		for i := range r.delta {
			r.delta[i] = 0
		}
		r.mask = r.mask[:maskLen]
		for i := range r.mask {
			r.mask[i] = 0
		}
	}

	r.edges.Reset()
	r.order = r.order[:0]
	r.open = false
	r.minY = math.MaxInt32
	r.maxY = math.MinInt32
	return nil
}

// Clip returns the clip rectangle passed to Init.
func (r *Rasterizer) Clip() image.Rectangle { return r.clip }

// MoveTo starts a new subpath at (x, y), closing any open one.
func (r *Rasterizer) MoveTo(x, y float32) {
	r.closeSubpath()
	r.penX, r.penY = x, y
	r.startX, r.startY = x, y
	r.open = true
}

// LineTo adds a line segment from the pen to (x, y).
func (r *Rasterizer) LineTo(x, y float32) {
	r.addEdge(r.penX, r.penY, x, y)
	r.penX, r.penY = x, y
}

// QuadTo adds a quadratic Bézier segment from the pen via the control
// point (cx, cy) to (x, y).
func (r *Rasterizer) QuadTo(cx, cy, x, y float32) {
	curve.FlattenQuad(r.penX, r.penY, cx, cy, x, y, r.edgeSink)
	r.penX, r.penY = x, y
}

// CubicTo adds a cubic Bézier segment from the pen via two control
// points to (x, y).
func (r *Rasterizer) CubicTo(cx1, cy1, cx2, cy2, x, y float32) {
	curve.FlattenCubic(r.penX, r.penY, cx1, cy1, cx2, cy2, x, y, r.edgeSink)
	r.penX, r.penY = x, y
}

// ClosePath closes the current subpath with a line back to its start.
func (r *Rasterizer) ClosePath() {
	r.closeSubpath()
}

func (r *Rasterizer) edgeSink(x0, y0, x1, y1 float32) {
	r.addEdge(x0, y0, x1, y1)
}

// closeSubpath emits the implicit closing segment. Filling treats
// every subpath as closed, so winding sums to zero outside the path.
func (r *Rasterizer) closeSubpath() {
	if r.open && (r.penX != r.startX || r.penY != r.startY) {
		r.addEdge(r.penX, r.penY, r.startX, r.startY)
		r.penX, r.penY = r.startX, r.startY
	}
	r.open = false
}

// addEdge clips one segment to the clip rectangle and appends the
// surviving pieces to the edge list.
//
// Y clipping trims the segment. X clipping splits it at the vertical
// clip boundaries and collapses the outside pieces onto the boundary,
// which preserves winding counts from geometry left or right of the
// clip without contributing area inside it.
func (r *Rasterizer) addEdge(fx0, fy0, fx1, fy1 float32) {
	x0, y0 := float64(fx0), float64(fy0)
	x1, y1 := float64(fx1), float64(fy1)

	dir := int32(1)
	if y1 < y0 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		dir = -1
	}

	top := float64(r.clip.Min.Y)
	bottom := float64(r.clip.Max.Y)
	if y1 <= top || y0 >= bottom || y0 == y1 {
		return
	}
	if y0 < top {
		x0 += (x1 - x0) * (top - y0) / (y1 - y0)
		y0 = top
	}
	if y1 > bottom {
		x1 -= (x1 - x0) * (y1 - bottom) / (y1 - y0)
		y1 = bottom
	}

	left := float64(r.clip.Min.X)
	right := float64(r.clip.Max.X)

	switch {
	case x0 <= left && x1 <= left:
		r.pushEdge(left, y0, left, y1, dir)
	case x0 >= right && x1 >= right:
		r.pushEdge(right, y0, right, y1, dir)
	case x0 >= left && x0 <= right && x1 >= left && x1 <= right:
		r.pushEdge(x0, y0, x1, y1, dir)
	default:
		r.splitEdgeX(x0, y0, x1, y1, dir, left, right)
	}
}

// splitEdgeX cuts a segment at the vertical clip boundaries it
// crosses and emits each piece with x clamped into [left, right].
func (r *Rasterizer) splitEdgeX(x0, y0, x1, y1 float64, dir int32, left, right float64) {
	ts := [4]float64{0, 1, 1, 1}
	n := 2
	dx := x1 - x0
	if dx != 0 {
		for _, bx := range [2]float64{left, right} {
			t := (bx - x0) / dx
			if t > 0 && t < 1 {
				ts[n] = t
				n++
			}
		}
	}
	// Insertion sort of at most four parameters.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && ts[j] < ts[j-1]; j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}

	for i := 0; i+1 < n; i++ {
		t0, t1 := ts[i], ts[i+1]
		if t1 <= t0 {
			continue
		}
		sy0 := y0 + (y1-y0)*t0
		sy1 := y0 + (y1-y0)*t1
		sx0 := scalar.ClampF(x0+dx*t0, left, right)
		sx1 := scalar.ClampF(x0+dx*t1, left, right)
		// A piece lying outside collapses onto the boundary it
		// crossed; its midpoint decides which side it was on.
		mid := x0 + dx*(t0+t1)*0.5
		if mid < left {
			sx0, sx1 = left, left
		} else if mid > right {
			sx0, sx1 = right, right
		}
		r.pushEdge(sx0, sy0, sx1, sy1, dir)
	}
}

// pushEdge quantizes a clipped segment to 24.8 fixed point and
// appends it. Segments whose quantized height is zero contribute no
// area and are dropped.
func (r *Rasterizer) pushEdge(x0, y0, x1, y1 float64, dir int32) {
	e := edge{
		x0:  int32(math.Round(x0 * fixOne)),
		y0:  int32(math.Round(y0 * fixOne)),
		x1:  int32(math.Round(x1 * fixOne)),
		y1:  int32(math.Round(y1 * fixOne)),
		dir: dir,
	}
	if e.y0 == e.y1 {
		return
	}
	r.edges.Append(e)
	if e.y0 < r.minY {
		r.minY = e.y0
	}
	if e.y1 > r.maxY {
		r.maxY = e.y1
	}
}

// PathView is the read-only surface AddPath consumes: an indexed
// sequence of commands, each with up to three points.
type PathView interface {
	Len() int
	OpAt(i int) (cmd byte, pts [3][2]float64, n int)
}

// Command bytes understood by AddPath.
const (
	OpMove byte = iota
	OpLine
	OpQuad
	OpCubic
)

// AddPath feeds every subpath of a path view through the flattener
// into the edge list.
func (r *Rasterizer) AddPath(v PathView) {
	n := v.Len()
	for i := 0; i < n; i++ {
		cmd, pts, _ := v.OpAt(i)
		switch cmd {
		case OpMove:
			r.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
		case OpLine:
			r.LineTo(float32(pts[0][0]), float32(pts[0][1]))
		case OpQuad:
			r.QuadTo(float32(pts[0][0]), float32(pts[0][1]),
				float32(pts[1][0]), float32(pts[1][1]))
		case OpCubic:
			r.CubicTo(float32(pts[0][0]), float32(pts[0][1]),
				float32(pts[1][0]), float32(pts[1][1]),
				float32(pts[2][0]), float32(pts[2][1]))
		}
	}
	r.closeSubpath()
}

// Rasterize walks the accumulated edges top to bottom, fills the
// delta and mask buffers one scanline at a time, and hands each
// touched scanline to blit. The blit must zero what it consumes; the
// buffers are reused for the next row without clearing.
func (r *Rasterizer) Rasterize(blit BlitFunc) {
	r.closeSubpath()
	if r.edges.Len() == 0 || r.width <= 0 {
		return
	}

	edges := r.edges.All()
	if cap(r.order) < len(edges) {
		r.order = make([]int32, len(edges))
	}
	r.order = r.order[:len(edges)]
	for i := range r.order {
		r.order[i] = int32(i)
	}
	sortEdgesByTop(r.order, edges)

	minRow := int(r.minY >> fixShift)
	maxRow := int((r.maxY + fixOne - 1) >> fixShift)
	if minRow < r.clip.Min.Y {
		minRow = r.clip.Min.Y
	}
	if maxRow > r.clip.Max.Y {
		maxRow = r.clip.Max.Y
	}

	var active []int32
	next := 0
	for y := minRow; y < maxRow; y++ {
		rowTop := int32(y) << fixShift
		rowBot := rowTop + fixOne

		for next < len(r.order) && edges[r.order[next]].y0 < rowBot {
			active = append(active, r.order[next])
			next++
		}
		if len(active) == 0 {
			continue
		}

		keep := active[:0]
		for _, ei := range active {
			e := &edges[ei]
			r.accumulate(e, rowTop)
			if e.y1 > rowBot {
				keep = append(keep, ei)
			}
		}
		active = keep

		blit(r.delta, r.mask, r.clip.Min.X, r.clip.Max.X, y)
	}
}

// accumulate adds one edge's contribution to the scanline whose top
// is rowTop (24.8 fixed point).
//
// The edge's sub-segment within the row covers columns c0..c1. Each
// column receives the share of dy it was crossed with, split into a
// partial-area part at the column itself and a carry into the next,
// so the row prefix sum yields the exact trapezoid area per pixel.
// Writes go through a rounded cumulative sum, which keeps the
// per-row integer total exact regardless of column count.
func (r *Rasterizer) accumulate(e *edge, rowTop int32) {
	yTop := float64(rowTop) / fixOne
	yBot := yTop + 1

	ey0 := float64(e.y0) / fixOne
	ey1 := float64(e.y1) / fixOne
	sy0 := math.Max(ey0, yTop)
	sy1 := math.Min(ey1, yBot)
	dy := sy1 - sy0
	if dy <= 0 {
		return
	}

	ex0 := float64(e.x0) / fixOne
	ex1 := float64(e.x1) / fixOne
	inv := 1 / (ey1 - ey0)
	xa := ex0 + (ex1-ex0)*(sy0-ey0)*inv
	xb := ex0 + (ex1-ex0)*(sy1-ey0)*inv
	if xa > xb {
		xa, xb = xb, xa
	}
	left := float64(r.clip.Min.X)
	right := float64(r.clip.Max.X)
	xa = scalar.ClampF(xa, left, right)
	xb = scalar.ClampF(xb, left, right)

	total := float64(e.dir) * dy * CoverOne
	c0 := int(math.Floor(xa)) - r.clip.Min.X
	c1 := int(math.Floor(xb)) - r.clip.Min.X
	if c0 > r.width {
		c0 = r.width
	}
	if c1 > r.width {
		c1 = r.width
	}

	if c0 == c1 {
		mid := (xa+xb)*0.5 - float64(c0+r.clip.Min.X)
		a := total * (1 - mid)
		ai := int32(math.Round(a))
		ti := int32(math.Round(total))
		r.add(c0, ai)
		r.add(c0+1, ti-ai)
		return
	}

	invW := 1 / (xb - xa)
	cum := 0.0
	written := int32(0)
	emit := func(c int, v float64) {
		cum += v
		ni := int32(math.Round(cum))
		if d := ni - written; d != 0 {
			r.add(c, d)
		}
		written = ni
	}

	xNext := float64(c0 + 1 + r.clip.Min.X)
	frac := (xNext - xa) * invW
	mid := (xa+xNext)*0.5 - float64(c0+r.clip.Min.X)
	emit(c0, total*frac*(1-mid))
	carry := total * frac * mid

	for c := c0 + 1; c < c1; c++ {
		// Interior columns are crossed edge to edge, so the midpoint
		// is the pixel center.
		f := total * invW
		emit(c, carry+f*0.5)
		carry = f * 0.5
	}

	xPrev := float64(c1 + r.clip.Min.X)
	frac = (xb - xPrev) * invW
	mid = (xb+xPrev)*0.5 - float64(c1+r.clip.Min.X)
	emit(c1, carry+total*frac*(1-mid))
	emit(c1+1, total*frac*mid)
}

// add writes one winding delta and marks its change-mask bit.
func (r *Rasterizer) add(c int, v int32) {
	if v == 0 {
		return
	}
	if c < 0 {
		c = 0
	} else if c >= len(r.delta) {
		c = len(r.delta) - 1
	}
	r.delta[c] += v
	g := uint(c >> 2)
	r.mask[g>>5] |= 1 << (g & 31)
}

// sortEdgesByTop sorts edge indices by ascending top y. Shell sort:
// edge lists come out of the flattener nearly sorted, so the late
// small gaps do most of the work.
func sortEdgesByTop(idx []int32, edges []edge) {
	gaps := [...]int{701, 301, 132, 57, 23, 10, 4, 1}
	for _, gap := range gaps {
		if gap >= len(idx) {
			continue
		}
		for i := gap; i < len(idx); i++ {
			v := idx[i]
			j := i
			for j >= gap && edges[idx[j-gap]].y0 > edges[v].y0 {
				idx[j] = idx[j-gap]
				j -= gap
			}
			idx[j] = v
		}
	}
}
