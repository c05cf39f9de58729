package flint

// View is a read-only, lazily evaluated sequence of path operations.
// A Path is a View of itself; adaptors wrap other views and compute
// their operations on access without copying.
//
// InPlace reports whether the view can be assigned back into its own
// root path without a temporary: true for order-preserving adaptors
// (Offset, Scale, Rotate, SliceOps), false for reordering ones (Retro,
// Concat). The interface is sealed; compose the provided adaptors.
type View interface {
	// Len returns the number of operations.
	Len() int
	// Op returns the i-th operation.
	Op(i int) Op
	// InPlace reports whether in-place assignment to the root is
	// safe.
	InPlace() bool

	refs(p *Path) bool
}

// Offset returns a view of v translated by (dx, dy).
func Offset(v View, dx, dy float64) View {
	return &offsetView{src: v, d: Pt(dx, dy)}
}

// Scale returns a view of v scaled by s about the origin.
func Scale(v View, s float64) View {
	return &scaleView{src: v, s: s}
}

// Rotate returns a view of v rotated by angle radians about the
// origin.
func Rotate(v View, angle float64) View {
	return &rotateView{src: v, angle: angle}
}

// SliceOps returns a view of operations [lo, hi) of v. For the result
// to be a well-formed path, operation lo should be a Move.
func SliceOps(v View, lo, hi int) View {
	if lo < 0 {
		lo = 0
	}
	if hi > v.Len() {
		hi = v.Len()
	}
	if hi < lo {
		hi = lo
	}
	return &sliceView{src: v, lo: lo, hi: hi}
}

// Retro returns a view traversing v backwards: the same geometry with
// every subpath reversed and the subpath order flipped.
func Retro(v View) View {
	return &retroView{src: v}
}

// Concat returns a view of a followed by b.
func Concat(a, b View) View {
	return &concatView{a: a, b: b}
}

// Convenience adaptor methods on Path.

// Offset returns a lazy translated view of the path.
func (p *Path) Offset(dx, dy float64) View { return Offset(p, dx, dy) }

// Scale returns a lazy scaled view of the path.
func (p *Path) Scale(s float64) View { return Scale(p, s) }

// Rotate returns a lazy rotated view of the path.
func (p *Path) Rotate(angle float64) View { return Rotate(p, angle) }

// Retro returns a lazy reversed view of the path.
func (p *Path) Retro() View { return Retro(p) }

type offsetView struct {
	src View
	d   Point
}

func (v *offsetView) Len() int          { return v.src.Len() }
func (v *offsetView) InPlace() bool     { return v.src.InPlace() }
func (v *offsetView) refs(p *Path) bool { return v.src.refs(p) }

func (v *offsetView) Op(i int) Op {
	o := v.src.Op(i)
	for j := 0; j < o.N; j++ {
		o.Pts[j] = o.Pts[j].Add(v.d)
	}
	return o
}

type scaleView struct {
	src View
	s   float64
}

func (v *scaleView) Len() int          { return v.src.Len() }
func (v *scaleView) InPlace() bool     { return v.src.InPlace() }
func (v *scaleView) refs(p *Path) bool { return v.src.refs(p) }

func (v *scaleView) Op(i int) Op {
	o := v.src.Op(i)
	for j := 0; j < o.N; j++ {
		o.Pts[j] = o.Pts[j].Mul(v.s)
	}
	return o
}

type rotateView struct {
	src   View
	angle float64
}

func (v *rotateView) Len() int          { return v.src.Len() }
func (v *rotateView) InPlace() bool     { return v.src.InPlace() }
func (v *rotateView) refs(p *Path) bool { return v.src.refs(p) }

func (v *rotateView) Op(i int) Op {
	o := v.src.Op(i)
	for j := 0; j < o.N; j++ {
		o.Pts[j] = o.Pts[j].Rotate(v.angle)
	}
	return o
}

type sliceView struct {
	src    View
	lo, hi int
}

func (v *sliceView) Len() int          { return v.hi - v.lo }
func (v *sliceView) InPlace() bool     { return v.src.InPlace() }
func (v *sliceView) refs(p *Path) bool { return v.src.refs(p) }

func (v *sliceView) Op(i int) Op { return v.src.Op(v.lo + i) }

// retroView reverses traversal order. The i-th reversed operation
// takes its command from source operation (n-i) mod n; a segment's
// points are its own tuple reversed, ending on the implicit start it
// was drawn from, and a Move lands on the endpoint of the operation
// preceding it in the source.
type retroView struct {
	src View
}

func (v *retroView) Len() int          { return v.src.Len() }
func (v *retroView) InPlace() bool     { return false }
func (v *retroView) refs(p *Path) bool { return v.src.refs(p) }

func (v *retroView) Op(i int) Op {
	n := v.src.Len()
	j := n - i
	if j == n {
		j = 0
	}
	c := v.src.Op(j).Cmd

	if c == Move {
		end := v.src.Op(n - 1 - i).End()
		return Op{Cmd: Move, Pts: [3]Point{end}, N: 1}
	}

	srcOp := v.src.Op(j)
	start := v.src.Op(j - 1).End()
	o := Op{Cmd: c, N: srcOp.N}
	for k := 0; k < srcOp.N-1; k++ {
		o.Pts[k] = srcOp.Pts[srcOp.N-2-k]
	}
	o.Pts[srcOp.N-1] = start
	return o
}

type concatView struct {
	a, b View
}

func (v *concatView) Len() int          { return v.a.Len() + v.b.Len() }
func (v *concatView) InPlace() bool     { return false }
func (v *concatView) refs(p *Path) bool { return v.a.refs(p) || v.b.refs(p) }

func (v *concatView) Op(i int) Op {
	n := v.a.Len()
	if i < n {
		return v.a.Op(i)
	}
	return v.b.Op(i - n)
}
