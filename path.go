package flint

// Cmd identifies one path command.
type Cmd uint8

// Path commands. Every command after the first consumes the previous
// command's final point as its implicit start (paths are "linked").
const (
	Move Cmd = iota
	Line
	Quad
	Cubic
)

// PointCount returns the number of points the command stores.
func (c Cmd) PointCount() int {
	switch c {
	case Quad:
		return 2
	case Cubic:
		return 3
	default:
		return 1
	}
}

// String returns the command name.
func (c Cmd) String() string {
	switch c {
	case Move:
		return "Move"
	case Line:
		return "Line"
	case Quad:
		return "Quad"
	case Cubic:
		return "Cubic"
	}
	return "Cmd(?)"
}

// Op is one indexed path record: a command and its stored points.
// The implicit start point is not included.
type Op struct {
	Cmd Cmd
	Pts [3]Point
	N   int
}

// End returns the operation's final on-curve point.
func (o Op) End() Point {
	return o.Pts[o.N-1]
}

// Path is an append-only sequence of commands and points. The zero
// value is an empty path ready for use.
//
// The first command of any non-empty path is Move; segment commands
// appended before a Move are dropped and recorded in Err. Commands
// are never re-ordered or coalesced.
type Path struct {
	cmds []Cmd
	offs []int32 // point offset of each command
	pts  []Point

	lastMove Point
	err      error
}

// NewPath returns an empty path with a small pre-grown backing store.
func NewPath() *Path {
	return &Path{
		cmds: make([]Cmd, 0, 16),
		offs: make([]int32, 0, 16),
		pts:  make([]Point, 0, 32),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.push(Move, Pt(x, y))
	p.lastMove = Pt(x, y)
	return p
}

// LineTo appends a line segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	if p.guard() {
		p.push(Line, Pt(x, y))
	}
	return p
}

// QuadTo appends a quadratic Bézier segment through control point
// (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	if p.guard() {
		p.push(Quad, Pt(cx, cy), Pt(x, y))
	}
	return p
}

// CubicTo appends a cubic Bézier segment through control points
// (cx1, cy1) and (cx2, cy2) to (x, y).
func (p *Path) CubicTo(cx1, cy1, cx2, cy2, x, y float64) *Path {
	if p.guard() {
		p.push(Cubic, Pt(cx1, cy1), Pt(cx2, cy2), Pt(x, y))
	}
	return p
}

// Close appends a line segment back to the start of the current
// subpath.
func (p *Path) Close() *Path {
	if p.guard() {
		p.push(Line, p.lastMove)
	}
	return p
}

// guard enforces the Move-first invariant. A violation is recorded
// once and the offending command dropped.
func (p *Path) guard() bool {
	if len(p.cmds) == 0 {
		if p.err == nil {
			p.err = ErrPathNoMoveTo
			logger().Debug("path command dropped", "reason", "no MoveTo")
		}
		return false
	}
	return true
}

func (p *Path) push(c Cmd, pts ...Point) {
	p.cmds = append(p.cmds, c)
	p.offs = append(p.offs, int32(len(p.pts)))
	p.pts = append(p.pts, pts...)
}

// Reset empties the path, keeping its storage. Any recorded error is
// cleared.
func (p *Path) Reset() *Path {
	p.cmds = p.cmds[:0]
	p.offs = p.offs[:0]
	p.pts = p.pts[:0]
	p.lastMove = Point{}
	p.err = nil
	return p
}

// Err reports the first contract violation recorded on the path, or
// nil.
func (p *Path) Err() error { return p.err }

// Len returns the number of commands.
func (p *Path) Len() int { return len(p.cmds) }

// PointLen returns the number of stored points.
func (p *Path) PointLen() int { return len(p.pts) }

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return len(p.cmds) == 0 }

// Cmd returns the i-th command.
func (p *Path) Cmd(i int) Cmd { return p.cmds[i] }

// LastMoveTo returns the start point of the current subpath.
func (p *Path) LastMoveTo() Point { return p.lastMove }

// Op returns the i-th command with its stored points. Path implements
// View, so a path can be used anywhere a view can.
func (p *Path) Op(i int) Op {
	c := p.cmds[i]
	n := c.PointCount()
	o := Op{Cmd: c, N: n}
	off := int(p.offs[i])
	copy(o.Pts[:n], p.pts[off:off+n])
	return o
}

// InPlace implements View. Reading a path never runs ahead of an
// in-place overwrite.
func (p *Path) InPlace() bool { return true }

func (p *Path) refs(q *Path) bool { return p == q }

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	q := &Path{
		cmds:     append([]Cmd(nil), p.cmds...),
		offs:     append([]int32(nil), p.offs...),
		pts:      append([]Point(nil), p.pts...),
		lastMove: p.lastMove,
		err:      p.err,
	}
	return q
}

// Bounds returns the bounding rectangle of the path's stored points
// (the control polygon, which contains every curve). ok is false for
// an empty path.
func (p *Path) Bounds() (min, max Point, ok bool) {
	if len(p.pts) == 0 {
		return Point{}, Point{}, false
	}
	min, max = p.pts[0], p.pts[0]
	for _, q := range p.pts[1:] {
		if q.X < min.X {
			min.X = q.X
		}
		if q.Y < min.Y {
			min.Y = q.Y
		}
		if q.X > max.X {
			max.X = q.X
		}
		if q.Y > max.Y {
			max.Y = q.Y
		}
	}
	return min, max, true
}

// Assign replaces the path's contents with the view's. When the view
// reads from this same path through a reordering adaptor (Retro,
// Concat), the contents are materialized through a temporary first;
// plain transforms overwrite in place.
func (p *Path) Assign(v View) *Path {
	if v.refs(p) && !v.InPlace() {
		var tmp Path
		tmp.appendView(v)
		tmp.err = p.err
		*p = tmp
		return p
	}

	// In-place rewrite: every source index read at step i is >= the
	// write position, so forward iteration never clobbers pending
	// input.
	n := v.Len()
	cmds := p.cmds[:0]
	offs := p.offs[:0]
	pts := p.pts[:0]
	for i := 0; i < n; i++ {
		o := v.Op(i)
		cmds = append(cmds, o.Cmd)
		offs = append(offs, int32(len(pts)))
		pts = append(pts, o.Pts[:o.N]...)
		if o.Cmd == Move {
			p.lastMove = o.Pts[0]
		}
	}
	p.cmds, p.offs, p.pts = cmds, offs, pts
	return p
}

// appendView appends every operation of v, rebuilding through the
// mutators so path invariants hold.
func (p *Path) appendView(v View) {
	n := v.Len()
	for i := 0; i < n; i++ {
		o := v.Op(i)
		switch o.Cmd {
		case Move:
			p.MoveTo(o.Pts[0].X, o.Pts[0].Y)
		case Line:
			p.LineTo(o.Pts[0].X, o.Pts[0].Y)
		case Quad:
			p.QuadTo(o.Pts[0].X, o.Pts[0].Y, o.Pts[1].X, o.Pts[1].Y)
		case Cubic:
			p.CubicTo(o.Pts[0].X, o.Pts[0].Y, o.Pts[1].X, o.Pts[1].Y,
				o.Pts[2].X, o.Pts[2].Y)
		}
	}
}
