package flint

import (
	"math"
	"testing"
)

func samplePath() *Path {
	p := NewPath()
	p.MoveTo(0, 0).LineTo(10, 0).QuadTo(15, 5, 10, 10).CubicTo(8, 12, 2, 12, 0, 10).Close()
	return p
}

func pathsEqual(a, b View) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		oa, ob := a.Op(i), b.Op(i)
		if oa.Cmd != ob.Cmd || oa.N != ob.N {
			return false
		}
		for j := 0; j < oa.N; j++ {
			if oa.Pts[j] != ob.Pts[j] {
				return false
			}
		}
	}
	return true
}

func pathsAlmostEqual(a, b View, eps float64) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		oa, ob := a.Op(i), b.Op(i)
		if oa.Cmd != ob.Cmd || oa.N != ob.N {
			return false
		}
		for j := 0; j < oa.N; j++ {
			if math.Abs(oa.Pts[j].X-ob.Pts[j].X) > eps ||
				math.Abs(oa.Pts[j].Y-ob.Pts[j].Y) > eps {
				return false
			}
		}
	}
	return true
}

func TestOffsetView(t *testing.T) {
	p := samplePath()
	v := p.Offset(3, -2)
	if v.Len() != p.Len() {
		t.Fatalf("Len = %d", v.Len())
	}
	o := v.Op(0)
	if o.Pts[0] != Pt(3, -2) {
		t.Errorf("offset Move = %v", o.Pts[0])
	}
	if !v.InPlace() {
		t.Error("offset view must be in-place")
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	p := samplePath()
	orig := p.Clone()
	p.Assign(Offset(Offset(p, 7, 11), -7, -11))
	if !pathsAlmostEqual(p, orig, 1e-9) {
		t.Error("offset(a).offset(-a) is not an identity")
	}
}

func TestScaleRotateCompose(t *testing.T) {
	p := samplePath()
	v := Rotate(Scale(p, 2), math.Pi/2)
	// (10, 0) scaled to (20, 0), rotated 90° CCW to (0, 20).
	o := v.Op(1)
	if math.Abs(o.Pts[0].X) > 1e-9 || math.Abs(o.Pts[0].Y-20) > 1e-9 {
		t.Errorf("composed view point = %v, want (0,20)", o.Pts[0])
	}
}

func TestSliceView(t *testing.T) {
	p := samplePath()
	v := SliceOps(p, 0, 2)
	if v.Len() != 2 {
		t.Fatalf("Len = %d", v.Len())
	}
	if v.Op(1).Cmd != Line {
		t.Errorf("op 1 = %v", v.Op(1).Cmd)
	}

	// Out-of-range bounds are clamped.
	if SliceOps(p, 3, 100).Len() != p.Len()-3 {
		t.Error("hi not clamped")
	}
	if SliceOps(p, 4, 2).Len() != 0 {
		t.Error("inverted range not empty")
	}
}

func TestRetroStructure(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0).LineTo(10, 0).QuadTo(15, 5, 10, 10)

	r := Retro(p)
	if r.Len() != 3 {
		t.Fatalf("Len = %d", r.Len())
	}

	// Reversed: Move to the old end, the quad backwards, the line
	// backwards.
	o := r.Op(0)
	if o.Cmd != Move || o.Pts[0] != Pt(10, 10) {
		t.Fatalf("op 0 = %v %v", o.Cmd, o.Pts[0])
	}
	o = r.Op(1)
	if o.Cmd != Quad || o.Pts[0] != Pt(15, 5) || o.Pts[1] != Pt(10, 0) {
		t.Fatalf("op 1 = %v %v", o.Cmd, o.Pts)
	}
	o = r.Op(2)
	if o.Cmd != Line || o.Pts[0] != Pt(0, 0) {
		t.Fatalf("op 2 = %v %v", o.Cmd, o.Pts)
	}
	if r.InPlace() {
		t.Error("retro view must not be in-place")
	}
}

func TestRetroRetroIdentity(t *testing.T) {
	p := samplePath()
	orig := p.Clone()

	p.Assign(Retro(Retro(p)))
	if !pathsEqual(p, orig) {
		t.Error("retro.retro is not an identity")
	}

	// And via two separate materializations.
	q := samplePath()
	q.Assign(Retro(q))
	q.Assign(Retro(q))
	if !pathsEqual(q, orig) {
		t.Error("reverse(reverse(p)) != p")
	}
}

func TestRetroMultipleSubpaths(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0).LineTo(1, 0)
	p.MoveTo(5, 5).LineTo(6, 5)

	r := Retro(p)
	wantCmds := []Cmd{Move, Line, Move, Line}
	wantPts := []Point{{6, 5}, {5, 5}, {1, 0}, {0, 0}}
	for i := range wantCmds {
		o := r.Op(i)
		if o.Cmd != wantCmds[i] || o.Pts[0] != wantPts[i] {
			t.Errorf("op %d = %v %v, want %v %v", i, o.Cmd, o.Pts[0], wantCmds[i], wantPts[i])
		}
	}

	orig := p.Clone()
	p.Assign(Retro(Retro(p)))
	if !pathsEqual(p, orig) {
		t.Error("multi-subpath retro.retro is not an identity")
	}
}

func TestConcatView(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0).LineTo(1, 1)
	b := NewPath()
	b.MoveTo(5, 5).LineTo(6, 6)

	v := Concat(a, b)
	if v.Len() != 4 {
		t.Fatalf("Len = %d", v.Len())
	}
	if v.Op(2).Cmd != Move || v.Op(2).Pts[0] != Pt(5, 5) {
		t.Errorf("op 2 = %v %v", v.Op(2).Cmd, v.Op(2).Pts[0])
	}
	if v.InPlace() {
		t.Error("concat view must not be in-place")
	}
}

func TestAssignConcatAliasing(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0).LineTo(1, 1)
	q := NewPath()
	q.MoveTo(5, 5).LineTo(6, 6)

	// p = p ++ q aliases the destination through a reordering view,
	// forcing materialization.
	p.Assign(Concat(p, q))
	if p.Len() != 4 {
		t.Fatalf("Len = %d, want 4", p.Len())
	}
	if p.Op(0).Pts[0] != Pt(0, 0) || p.Op(3).Pts[0] != Pt(6, 6) {
		t.Errorf("concat assignment corrupted contents: %v %v",
			p.Op(0).Pts[0], p.Op(3).Pts[0])
	}
}

func TestAssignInPlaceTransform(t *testing.T) {
	p := samplePath()
	want := samplePath()
	want2 := NewPath()
	for i := 0; i < want.Len(); i++ {
		o := want.Op(i)
		for j := 0; j < o.N; j++ {
			o.Pts[j] = o.Pts[j].Add(Pt(100, 200))
		}
		switch o.Cmd {
		case Move:
			want2.MoveTo(o.Pts[0].X, o.Pts[0].Y)
		case Line:
			want2.LineTo(o.Pts[0].X, o.Pts[0].Y)
		case Quad:
			want2.QuadTo(o.Pts[0].X, o.Pts[0].Y, o.Pts[1].X, o.Pts[1].Y)
		case Cubic:
			want2.CubicTo(o.Pts[0].X, o.Pts[0].Y, o.Pts[1].X, o.Pts[1].Y, o.Pts[2].X, o.Pts[2].Y)
		}
	}

	p.Assign(p.Offset(100, 200))
	if !pathsEqual(p, want2) {
		t.Error("in-place offset assignment mismatch")
	}
}

func TestAssignFromOtherPath(t *testing.T) {
	p := samplePath()
	q := NewPath()
	q.Assign(p.Offset(1, 1))
	if q.Len() != p.Len() {
		t.Fatalf("Len = %d", q.Len())
	}
	if q.Op(0).Pts[0] != Pt(1, 1) {
		t.Errorf("op 0 = %v", q.Op(0).Pts[0])
	}
	// Source untouched.
	if p.Op(0).Pts[0] != Pt(0, 0) {
		t.Errorf("source mutated: %v", p.Op(0).Pts[0])
	}
}

func TestAssignRetroKeepsGeometry(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10)
	p.Assign(Retro(p))

	want := NewPath()
	want.MoveTo(10, 10).LineTo(10, 0).LineTo(0, 0)
	if !pathsEqual(p, want) {
		t.Error("retro assignment mismatch")
	}
	// lastMove tracks the materialized first Move.
	if p.LastMoveTo() != Pt(10, 10) {
		t.Errorf("LastMoveTo = %v", p.LastMoveTo())
	}
}
