package flint

import (
	"sort"

	"github.com/gogpu/flint/internal/scalar"
)

// Stop is one gradient color stop. Pos is in [0, 1]; Color is
// straight-alpha ARGB32.
type Stop struct {
	Pos   float64
	Color uint32
}

// lookupMin and lookupMax bound the LUT length. The length is always
// a power of two so index wrapping is a single mask.
const (
	lookupMin = 2
	lookupMax = 8192
)

// Gradient is an ordered list of color stops with a lazily built
// color lookup table. Each gradient owns its table; there is no
// shared cache, so canvases on different goroutines cannot interfere
// through their gradients.
type Gradient struct {
	stops []Stop
	lut   []uint32
	size  int
	dirty bool
}

// NewGradient creates an empty gradient whose table holds n entries,
// rounded up to a power of two and clipped to [2, 8192].
func NewGradient(n int) *Gradient {
	return &Gradient{
		size:  scalar.RoundUpPow2(scalar.Clamp(n, lookupMin, lookupMax)),
		dirty: true,
	}
}

// AddStop appends a color stop. pos is clipped to [0, 1]. Stops may
// be added in any order; they are sorted when the table is rebuilt.
func (g *Gradient) AddStop(pos float64, argb uint32) *Gradient {
	g.stops = append(g.stops, Stop{Pos: scalar.ClampF(pos, 0, 1), Color: argb})
	g.dirty = true
	return g
}

// SetLookupLength resizes the table to n entries, rounded up to a
// power of two and clipped to [2, 8192].
func (g *Gradient) SetLookupLength(n int) *Gradient {
	size := scalar.RoundUpPow2(scalar.Clamp(n, lookupMin, lookupMax))
	if size != g.size {
		g.size = size
		g.dirty = true
	}
	return g
}

// LookupLength returns the table length.
func (g *Gradient) LookupLength() int { return g.size }

// Stops returns the gradient's stops in insertion order.
func (g *Gradient) Stops() []Stop { return g.stops }

// IsOpaque reports whether every stop is fully opaque. A gradient
// with no stops renders transparent and is not opaque.
func (g *Gradient) IsOpaque() bool {
	if len(g.stops) == 0 {
		return false
	}
	for _, s := range g.stops {
		if s.Color>>24 != 0xFF {
			return false
		}
	}
	return true
}

// Lookup returns the color table, rebuilding it if any stop or the
// length changed since the last call.
func (g *Gradient) Lookup() []uint32 {
	if g.dirty || len(g.lut) != g.size {
		g.rebuild()
	}
	return g.lut
}

// rebuild sorts the stops and fills the table: flat before the first
// stop, linear interpolation between consecutive stops, flat after
// the last.
func (g *Gradient) rebuild() {
	if cap(g.lut) < g.size {
		g.lut = make([]uint32, g.size)
	} else {
		g.lut = g.lut[:g.size]
	}
	g.dirty = false

	if len(g.stops) == 0 {
		for i := range g.lut {
			g.lut[i] = 0
		}
		return
	}

	sorted := make([]Stop, len(g.stops))
	copy(sorted, g.stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pos < sorted[j].Pos
	})

	logger().Debug("gradient table rebuild", "stops", len(sorted), "size", g.size)

	n := g.size
	denom := float64(n - 1)
	si := 0
	for i := 0; i < n; i++ {
		pos := float64(i) / denom
		for si+1 < len(sorted) && sorted[si+1].Pos <= pos {
			si++
		}
		switch {
		case pos <= sorted[0].Pos:
			g.lut[i] = sorted[0].Color
		case si == len(sorted)-1:
			g.lut[i] = sorted[si].Color
		default:
			a, b := sorted[si], sorted[si+1]
			span := b.Pos - a.Pos
			if span <= 0 {
				g.lut[i] = b.Color
				continue
			}
			w := uint32((pos - a.Pos) / span * 65535)
			g.lut[i] = lerpARGB(a.Color, b.Color, w)
		}
	}
}

// lerpARGB interpolates two colors channel-wise with a 16-bit weight,
// widening each 8-bit channel to 16 bits so the multiply never
// overflows its lane.
func lerpARGB(a, b uint32, w uint32) uint32 {
	iw := 65535 - w
	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		ca := (a >> shift) & 0xFF
		cb := (b >> shift) & 0xFF
		// Widen with ×257 so 0xFF maps to 0xFFFF exactly.
		c16 := (ca*257*iw + cb*257*w + 32767) / 65535
		out |= (c16 >> 8) << shift
	}
	return out
}
