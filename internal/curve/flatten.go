// Package curve flattens quadratic and cubic Bézier segments into
// line segments with a fixed visual error bound.
//
// Flattening is recursive de Casteljau subdivision at t=0.5, driven
// by an explicit stack so the flattener allocates nothing and stays
// reentrant. A segment is emitted once every control point lies
// within Tolerance of the chord.
package curve

import "github.com/chewxy/math32"

// Tolerance is the maximum distance between a Bézier curve and its
// line-segment approximation, in pixels.
const Tolerance = 0.25

// maxDepth bounds the subdivision stack. 2^24 subdivisions cover any
// curve whose control points fit in float32 coordinates; deeper
// recursion only chases rounding noise.
const maxDepth = 24

// LineSink receives the flattened line segments in path order.
type LineSink func(x0, y0, x1, y1 float32)

// quad holds one quadratic segment on the subdivision stack.
type quad struct {
	x0, y0, x1, y1, x2, y2 float32
	depth                  int8
}

// cubic holds one cubic segment on the subdivision stack.
type cubic struct {
	x0, y0, x1, y1, x2, y2, x3, y3 float32
	depth                          int8
}

// chordDist returns the distance from (px, py) to the line through
// (x0, y0) and (x1, y1). A degenerate chord falls back to point
// distance so that looping curves with coincident endpoints still
// subdivide.
func chordDist(px, py, x0, y0, x1, y1 float32) float32 {
	dx := x1 - x0
	dy := y1 - y0
	len2 := dx*dx + dy*dy
	if len2 < 1e-12 {
		return math32.Hypot(px-x0, py-y0)
	}
	// |d·n| with n the unit normal of the chord.
	return math32.Abs((px-x0)*dy-(py-y0)*dx) / math32.Sqrt(len2)
}

// FlattenQuad emits line segments approximating the quadratic Bézier
// (x0,y0) (x1,y1) (x2,y2) within Tolerance.
func FlattenQuad(x0, y0, x1, y1, x2, y2 float32, sink LineSink) {
	var stack [maxDepth + 1]quad
	stack[0] = quad{x0, y0, x1, y1, x2, y2, 0}
	top := 1

	for top > 0 {
		top--
		q := stack[top]

		if q.depth >= maxDepth || chordDist(q.x1, q.y1, q.x0, q.y0, q.x2, q.y2) <= Tolerance {
			sink(q.x0, q.y0, q.x2, q.y2)
			continue
		}

		// de Casteljau split at t=0.5.
		ax := (q.x0 + q.x1) * 0.5
		ay := (q.y0 + q.y1) * 0.5
		bx := (q.x1 + q.x2) * 0.5
		by := (q.y1 + q.y2) * 0.5
		mx := (ax + bx) * 0.5
		my := (ay + by) * 0.5

		d := q.depth + 1
		// Push the tail half first so the head is processed next and
		// segments come out in path order.
		stack[top] = quad{mx, my, bx, by, q.x2, q.y2, d}
		top++
		stack[top] = quad{q.x0, q.y0, ax, ay, mx, my, d}
		top++
	}
}

// FlattenCubic emits line segments approximating the cubic Bézier
// (x0,y0) (x1,y1) (x2,y2) (x3,y3) within Tolerance. Both control
// points must pass the chord test before a segment is emitted.
func FlattenCubic(x0, y0, x1, y1, x2, y2, x3, y3 float32, sink LineSink) {
	var stack [maxDepth + 1]cubic
	stack[0] = cubic{x0, y0, x1, y1, x2, y2, x3, y3, 0}
	top := 1

	for top > 0 {
		top--
		c := stack[top]

		if c.depth >= maxDepth ||
			(chordDist(c.x1, c.y1, c.x0, c.y0, c.x3, c.y3) <= Tolerance &&
				chordDist(c.x2, c.y2, c.x0, c.y0, c.x3, c.y3) <= Tolerance) {
			sink(c.x0, c.y0, c.x3, c.y3)
			continue
		}

		ax := (c.x0 + c.x1) * 0.5
		ay := (c.y0 + c.y1) * 0.5
		bx := (c.x1 + c.x2) * 0.5
		by := (c.y1 + c.y2) * 0.5
		cx := (c.x2 + c.x3) * 0.5
		cy := (c.y2 + c.y3) * 0.5
		abx := (ax + bx) * 0.5
		aby := (ay + by) * 0.5
		bcx := (bx + cx) * 0.5
		bcy := (by + cy) * 0.5
		mx := (abx + bcx) * 0.5
		my := (aby + bcy) * 0.5

		d := c.depth + 1
		stack[top] = cubic{mx, my, bcx, bcy, cx, cy, c.x3, c.y3, d}
		top++
		stack[top] = cubic{c.x0, c.y0, ax, ay, abx, aby, mx, my, d}
		top++
	}
}
