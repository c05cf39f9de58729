package flint

import "github.com/gogpu/flint/internal/blit"

// WindingRule decides which regions a winding number places inside
// the fill.
type WindingRule uint8

// Winding rules.
const (
	// NonZero fills every region with a non-zero net winding.
	NonZero WindingRule = iota
	// EvenOdd fills regions crossed an odd number of times.
	EvenOdd
)

// RepeatMode maps a gradient parameter outside [0, 1] back into the
// color table.
type RepeatMode uint8

// Repeat modes.
const (
	// Pad clamps to the first and last table entries.
	Pad RepeatMode = iota
	// Repeat tiles the table periodically.
	Repeat
	// Mirror tiles the table with every other period reversed.
	Mirror
)

// paintKind tags the Paint variants.
type paintKind uint8

const (
	paintSolid paintKind = iota
	paintLinear
	paintRadial
	paintConic
	paintBiradial
)

// Paint describes how covered pixels are colored. Construct one with
// Solid, Linear, Radial, Conic, or Biradial; the zero value paints
// solid transparent black.
//
// Gradient paints hold a reference to their Gradient; the gradient's
// table is resolved when the paint is first used in a draw.
type Paint struct {
	kind paintKind
	mode RepeatMode

	color uint32
	grad  *Gradient

	// Geometry, in canvas space. Meaning varies per kind.
	p0, p1, p2 Point
	r0, r1     float64
	repeats    float64
}

// Solid returns a paint filling with one straight-alpha ARGB32
// color.
func Solid(argb uint32) Paint {
	return Paint{kind: paintSolid, color: argb}
}

// Linear returns a linear gradient paint along the axis p0→p1.
func Linear(g *Gradient, p0, p1 Point, mode RepeatMode) Paint {
	return Paint{kind: paintLinear, grad: g, mode: mode, p0: p0, p1: p1}
}

// Radial returns an elliptical gradient paint centered at center
// with radius vectors r1 and r2. For a circular gradient of radius r
// use vectors (r, 0) and (0, r).
func Radial(g *Gradient, center, r1, r2 Point, mode RepeatMode) Paint {
	return Paint{kind: paintRadial, grad: g, mode: mode, p0: center, p1: r1, p2: r2}
}

// Conic returns an angular gradient paint sweeping around center.
// The axis vectors a1 and a2 orient (and may shear) the sweep;
// repeats is how many full table periods fit in one turn.
func Conic(g *Gradient, center, a1, a2 Point, repeats float64, mode RepeatMode) Paint {
	return Paint{kind: paintConic, grad: g, mode: mode, p0: center, p1: a1, p2: a2, repeats: repeats}
}

// Biradial returns a two-circle gradient paint from circle
// (c0, rad0) to circle (c1, rad1). Pixels outside the swept region
// take the last table entry.
func Biradial(g *Gradient, c0 Point, rad0 float64, c1 Point, rad1 float64, mode RepeatMode) Paint {
	return Paint{kind: paintBiradial, grad: g, mode: mode, p0: c0, p1: c1, r0: rad0, r1: rad1}
}

// Kind reporting accessors.

// IsSolid reports whether the paint is a solid color.
func (p Paint) IsSolid() bool { return p.kind == paintSolid }

// Gradient returns the paint's gradient, or nil for solid paints.
func (p Paint) Gradient() *Gradient { return p.grad }

// source resolves the paint into a blit source, translating its
// geometry by (dx, dy) — the canvas view origin.
func (p Paint) source(dx, dy float64) blit.Source {
	if p.kind == paintSolid {
		return blit.SolidSource{Color: p.color}
	}

	tab := &blit.Table{
		Lut:    p.gradientLut(),
		Mode:   blit.Mode(p.mode),
		Opaque: p.grad != nil && p.grad.IsOpaque(),
	}
	x0 := float32(p.p0.X + dx)
	y0 := float32(p.p0.Y + dy)

	switch p.kind {
	case paintLinear:
		return blit.NewLinear(tab, x0, y0,
			float32(p.p1.X+dx), float32(p.p1.Y+dy))
	case paintRadial:
		return blit.NewRadial(tab, x0, y0,
			float32(p.p1.X), float32(p.p1.Y),
			float32(p.p2.X), float32(p.p2.Y))
	case paintConic:
		return blit.NewConic(tab, x0, y0,
			float32(p.p1.X), float32(p.p1.Y),
			float32(p.p2.X), float32(p.p2.Y),
			float32(p.repeats))
	default:
		return blit.NewBiradial(tab, x0, y0, float32(p.r0),
			float32(p.p1.X+dx), float32(p.p1.Y+dy), float32(p.r1))
	}
}

// gradientLut returns the paint's resolved color table, or a
// transparent two-entry table when no gradient was attached.
func (p Paint) gradientLut() []uint32 {
	if p.grad == nil {
		return []uint32{0, 0}
	}
	return p.grad.Lookup()
}
