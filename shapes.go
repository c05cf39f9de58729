package flint

// Shape helpers append closed subpaths built from the basic commands.

// Rect appends an axis-aligned rectangle, wound clockwise in the
// y-down coordinate system.
func (p *Path) Rect(x, y, w, h float64) *Path {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	return p.Close()
}

// kappa scales a radius to the cubic control distance that best
// approximates a quarter circle.
const kappa = 0.5522847498307936

// Ellipse appends an ellipse centered at (cx, cy) with half-axes rx
// and ry, built from four cubic segments.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	kx := rx * kappa
	ky := ry * kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return p.Close()
}

// Circle appends a circle of radius r centered at (cx, cy).
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// RoundedRect appends a rectangle with circular corners of radius r,
// clamped to half the shorter side.
func (p *Path) RoundedRect(x, y, w, h, r float64) *Path {
	if r <= 0 {
		return p.Rect(x, y, w, h)
	}
	if m := w / 2; r > m {
		r = m
	}
	if m := h / 2; r > m {
		r = m
	}
	k := r * (1 - kappa)

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-k, y, x+w, y+k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-k, x+w-k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+k, y+h, x, y+h-k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+k, x+k, y, x+r, y)
	return p.Close()
}
