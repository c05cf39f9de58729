package flint

import (
	"image"
	"log/slog"

	"github.com/gogpu/flint/internal/blit"
	"github.com/gogpu/flint/internal/raster"
)

// ViewState is one snapshot of the canvas view and clip rectangles.
type ViewState struct {
	View image.Rectangle
	Clip image.Rectangle
}

// Canvas dispatches path fills onto a Buffer. It tracks a view
// rectangle (a drawing origin plus visible extent) and a clip
// rectangle that only ever shrinks: every SetView and SetClip
// intersects with the clip in force, and Push/Pop save and restore
// the pair.
//
// A Canvas is single-threaded; create one per goroutine.
type Canvas struct {
	buf   *Buffer
	view  image.Rectangle
	clip  image.Rectangle
	stack []ViewState
	ras   raster.Rasterizer
	log   *slog.Logger
}

// Option configures a Canvas at construction.
type Option func(*Canvas)

// WithClearColor clears the buffer with the given color before the
// canvas is returned.
func WithClearColor(argb uint32) Option {
	return func(c *Canvas) {
		c.buf.Clear(argb)
	}
}

// WithLogger gives the canvas its own logger instead of the package
// logger configured with SetLogger. Pass nil to keep the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Canvas) {
		c.log = l
	}
}

// NewCanvas wraps a buffer. The initial view and clip cover the whole
// buffer.
func NewCanvas(buf *Buffer, opts ...Option) *Canvas {
	c := &Canvas{
		buf:  buf,
		view: buf.Bounds(),
		clip: buf.Bounds(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Buffer returns the destination buffer.
func (c *Canvas) Buffer() *Buffer { return c.buf }

// View returns the current view rectangle.
func (c *Canvas) View() image.Rectangle { return c.view }

// Clip returns the current clip rectangle.
func (c *Canvas) Clip() image.Rectangle { return c.clip }

// Push saves the current view and clip.
func (c *Canvas) Push() {
	c.stack = append(c.stack, ViewState{View: c.view, Clip: c.clip})
}

// Pop restores the most recently pushed view and clip. Popping an
// empty stack is a no-op.
func (c *Canvas) Pop() {
	if n := len(c.stack); n > 0 {
		s := c.stack[n-1]
		c.stack = c.stack[:n-1]
		c.view, c.clip = s.View, s.Clip
	}
}

// SetView replaces the view rectangle and narrows the clip to its
// intersection with the new view.
func (c *Canvas) SetView(r image.Rectangle) {
	c.view = r.Canon()
	c.clip = c.clip.Intersect(c.view)
}

// SetClip narrows the clip to its intersection with r.
func (c *Canvas) SetClip(r image.Rectangle) {
	c.clip = c.clip.Intersect(r.Canon())
}

// Clear fills the current clip rectangle with one color, ignoring
// the view offset.
func (c *Canvas) Clear(argb uint32) {
	r := c.clip.Intersect(c.buf.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.buf.pix[y*c.buf.stride+r.Min.X : y*c.buf.stride+r.Max.X]
		for i := range row {
			row[i] = argb
		}
	}
}

// Draw fills a path with a paint under a winding rule. Path and
// paint geometry are in canvas space; both are translated by the
// view origin on the fly, with no copy of the path. An empty clip
// draws nothing.
func (c *Canvas) Draw(path View, paint Paint, rule WindingRule) {
	clip := c.clip.Intersect(c.buf.Bounds())
	if clip.Empty() || path.Len() == 0 {
		return
	}
	if err := c.ras.Init(clip); err != nil {
		c.logger().Debug("draw skipped", "err", err)
		return
	}

	dx := float64(c.view.Min.X)
	dy := float64(c.view.Min.Y)
	c.ras.AddPath(rasterView{v: Offset(path, dx, dy)})

	src := paint.source(dx, dy)
	blitRule := blit.NonZero
	if rule == EvenOdd {
		blitRule = blit.EvenOdd
	}
	c.ras.Rasterize(blit.New(c.buf.pix, c.buf.stride, src, blitRule))
}

// logger returns the canvas logger, falling back to the package one.
func (c *Canvas) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return logger()
}

// rasterView adapts the public View interface to the rasterizer's
// input surface.
type rasterView struct {
	v View
}

func (rv rasterView) Len() int { return rv.v.Len() }

func (rv rasterView) OpAt(i int) (byte, [3][2]float64, int) {
	o := rv.v.Op(i)
	var pts [3][2]float64
	for j := 0; j < o.N; j++ {
		pts[j] = [2]float64{o.Pts[j].X, o.Pts[j].Y}
	}
	var cmd byte
	switch o.Cmd {
	case Move:
		cmd = raster.OpMove
	case Line:
		cmd = raster.OpLine
	case Quad:
		cmd = raster.OpQuad
	case Cubic:
		cmd = raster.OpCubic
	}
	return cmd, pts, o.N
}
