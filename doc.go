// Package flint is a software-only scanline rasterizer for 2D vector
// graphics. It fills paths built from line, quadratic Bézier, and
// cubic Bézier segments into a 32-bpp ARGB pixel buffer, with solid
// colors or linear, radial, conic, and biradial gradients.
//
// The drawing surface is a Canvas wrapping an aligned Buffer:
//
//	buf, _ := flint.NewBuffer(256, 256)
//	cv := flint.NewCanvas(buf)
//
//	var p flint.Path
//	p.MoveTo(32, 32).LineTo(224, 64).QuadTo(128, 240, 32, 32).Close()
//
//	cv.Draw(&p, flint.Solid(0xFF4080FF), flint.NonZero)
//
// Gradients own a color lookup table rebuilt lazily from their stops:
//
//	g := flint.NewGradient(256).
//	    AddStop(0, 0xFF000000).
//	    AddStop(1, 0xFFFFFFFF)
//	cv.Draw(&p, flint.Linear(g, flint.Pt(0, 0), flint.Pt(256, 0), flint.Pad), flint.NonZero)
//
// Paths support lazy adaptor views (Offset, Scale, Rotate, SliceOps,
// Retro, Concat) that transform on access without copying; assigning
// a view back into its source path materializes it.
//
// All types are single-threaded by contract: create one Canvas per
// goroutine to parallelize.
package flint
