package flint

import (
	"image"
	"io"
	"log/slog"
	"testing"
)

func TestDrawSolidSquare(t *testing.T) {
	buf, _ := NewBuffer(32, 32)
	cv := NewCanvas(buf)

	p := NewPath()
	p.MoveTo(8, 8).LineTo(24, 8).LineTo(24, 24).LineTo(8, 24).Close()
	cv.Draw(p, Solid(0xFFFF0000), NonZero)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			want := uint32(0)
			if x >= 8 && x < 24 && y >= 8 && y < 24 {
				want = 0xFFFF0000
			}
			if got := buf.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawEvenOddDonut(t *testing.T) {
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)

	p := NewPath()
	p.Rect(8, 8, 48, 48)
	p.Rect(20, 20, 24, 24) // same winding direction
	cv.Draw(p, Solid(0xFF00FF00), EvenOdd)

	if got := buf.At(32, 32); got != 0 {
		t.Errorf("hole pixel (32,32) = %#x, want 0", got)
	}
	if got := buf.At(12, 32); got != 0xFF00FF00 {
		t.Errorf("ring pixel (12,32) = %#x, want green", got)
	}

	// The same two squares under NonZero fill the hole.
	buf2, _ := NewBuffer(64, 64)
	cv2 := NewCanvas(buf2)
	cv2.Draw(p, Solid(0xFF00FF00), NonZero)
	if got := buf2.At(32, 32); got != 0xFF00FF00 {
		t.Errorf("NonZero center = %#x, want green", got)
	}
}

func TestDrawOppositeWindingDonut(t *testing.T) {
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)

	p := NewPath()
	p.Rect(8, 8, 48, 48)
	// Inner square wound the other way.
	p.MoveTo(20, 20).LineTo(20, 44).LineTo(44, 44).LineTo(44, 20).Close()
	cv.Draw(p, Solid(0xFF00FF00), NonZero)

	if got := buf.At(32, 32); got != 0 {
		t.Errorf("NonZero with opposite winding: center = %#x, want 0", got)
	}
	if got := buf.At(12, 32); got != 0xFF00FF00 {
		t.Errorf("ring = %#x, want green", got)
	}
}

func TestDrawLinearGradientSpan(t *testing.T) {
	buf, _ := NewBuffer(256, 1)
	cv := NewCanvas(buf)

	g := NewGradient(256).
		AddStop(0, 0xFF000000).
		AddStop(1, 0xFFFFFFFF)
	p := NewPath()
	p.Rect(0, 0, 256, 1)
	cv.Draw(p, Linear(g, Pt(0, 0), Pt(256, 0), Pad), NonZero)

	if got := buf.At(0, 0); got != 0xFF000000 {
		t.Errorf("pixel 0 = %#x, want black", got)
	}
	if got := buf.At(255, 0); (got>>16)&0xFF < 0xFE {
		t.Errorf("pixel 255 = %#x, want near white", got)
	}
	prev := uint32(0)
	for x := 0; x < 256; x++ {
		r := (buf.At(x, 0) >> 16) & 0xFF
		if r < prev {
			t.Fatalf("red channel decreased at x=%d: %d < %d", x, r, prev)
		}
		prev = r
	}
}

func TestDrawRadialRepeatPeriod(t *testing.T) {
	buf, _ := NewBuffer(128, 128)
	cv := NewCanvas(buf)

	g := NewGradient(256).
		AddStop(0, 0xFFFF0000).
		AddStop(0.33, 0xFF00FF00).
		AddStop(0.66, 0xFF0000FF).
		AddStop(1, 0xFFFFFF00)
	p := NewPath()
	p.Rect(0, 0, 128, 128)
	cv.Draw(p, Radial(g, Pt(64, 64), Pt(16, 0), Pt(0, 16), Repeat), NonZero)

	center := buf.At(64, 64)
	// The center sits a fraction of a pixel into the first period,
	// so red still dominates.
	if (center>>16)&0xFF < 0xC0 {
		t.Errorf("center = %#x, want near stop-0 red", center)
	}
	// One-period steps along +x land on the same color.
	c16 := buf.At(64+16, 64)
	for _, r := range []int{32, 48} {
		if got := buf.At(64+r, 64); got != c16 {
			t.Errorf("radius %d = %#x, radius 16 = %#x (period broken)", r, got, c16)
		}
	}
}

func TestDrawConicMirrorSymmetry(t *testing.T) {
	buf, _ := NewBuffer(128, 128)
	cv := NewCanvas(buf)

	g := NewGradient(256).
		AddStop(0, 0xFFFF0000).
		AddStop(1, 0xFF0000FF)
	p := NewPath()
	p.Rect(0, 0, 128, 128)
	cv.Draw(p, Conic(g, Pt(64, 64), Pt(32, 0), Pt(0, 32), 1, Mirror), NonZero)

	// Pixel centers straddling the negative-x axis fetch the same
	// LUT index under Mirror.
	above := buf.At(20, 63)
	below := buf.At(20, 64)
	if above != below {
		t.Errorf("across -x axis: %#x vs %#x", above, below)
	}

	// The positive-x axis is the gradient start.
	if got := buf.At(110, 64); (got>>16)&0xFF < 0xF0 {
		t.Errorf("+x axis = %#x, want near red", got)
	}
}

func TestDrawBiradial(t *testing.T) {
	buf, _ := NewBuffer(96, 96)
	cv := NewCanvas(buf)

	g := NewGradient(256).
		AddStop(0, 0xFFFFFFFF).
		AddStop(1, 0xFF000000)
	p := NewPath()
	p.Rect(0, 0, 96, 96)
	cv.Draw(p, Biradial(g, Pt(40, 48), 4, Pt(48, 48), 40, Pad), NonZero)

	if got := buf.At(40, 48); (got>>16)&0xFF < 0xE0 {
		t.Errorf("focus = %#x, want near white", got)
	}
	if got := buf.At(87, 48); (got>>16)&0xFF > 0x20 {
		t.Errorf("rim = %#x, want near black", got)
	}
}

func TestClipShortCircuit(t *testing.T) {
	buf, _ := NewBuffer(128, 128)
	cv := NewCanvas(buf)
	buf.Clear(0xFFABCDEF)

	cv.SetView(image.Rect(10, 10, 20, 20))
	cv.SetClip(image.Rect(100, 100, 110, 110)) // outside view: clip empty

	if !cv.Clip().Empty() {
		t.Fatalf("clip = %v, want empty", cv.Clip())
	}

	p := NewPath()
	p.Rect(0, 0, 1000, 1000)
	cv.Draw(p, Solid(0xFF000000), NonZero)

	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if got := buf.At(x, y); got != 0xFFABCDEF {
				t.Fatalf("(%d,%d) = %#x, want untouched", x, y, got)
			}
		}
	}
}

func TestViewOffsetsDrawing(t *testing.T) {
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)
	cv.SetView(image.Rect(16, 16, 64, 64))

	p := NewPath()
	p.Rect(0, 0, 8, 8) // canvas space: lands at (16,16)..(24,24)
	cv.Draw(p, Solid(0xFFFF00FF), NonZero)

	if got := buf.At(20, 20); got != 0xFFFF00FF {
		t.Errorf("(20,20) = %#x, want filled", got)
	}
	if got := buf.At(4, 4); got != 0 {
		t.Errorf("(4,4) = %#x, want empty", got)
	}
}

func TestClipIntersectionIdempotent(t *testing.T) {
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)

	r := image.Rect(8, 8, 40, 40)
	cv.SetClip(r)
	first := cv.Clip()
	cv.SetClip(r)
	if cv.Clip() != first {
		t.Errorf("clip changed on repeated SetClip: %v != %v", cv.Clip(), first)
	}
	if first != r.Intersect(buf.Bounds()) {
		t.Errorf("clip = %v", first)
	}
}

func TestClipOnlyShrinks(t *testing.T) {
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)

	cv.SetClip(image.Rect(0, 0, 32, 32))
	cv.SetClip(image.Rect(16, 16, 64, 64))
	if got, want := cv.Clip(), image.Rect(16, 16, 32, 32); got != want {
		t.Errorf("clip = %v, want %v", got, want)
	}
}

func TestPushPopRestoresState(t *testing.T) {
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)

	cv.Push()
	cv.SetView(image.Rect(10, 10, 50, 50))
	cv.SetClip(image.Rect(20, 20, 40, 40))
	cv.Pop()

	if cv.View() != buf.Bounds() || cv.Clip() != buf.Bounds() {
		t.Errorf("after Pop: view=%v clip=%v", cv.View(), cv.Clip())
	}

	// Pop on an empty stack is a no-op.
	cv.Pop()
	if cv.View() != buf.Bounds() {
		t.Error("empty Pop changed state")
	}
}

func TestCanvasClear(t *testing.T) {
	buf, _ := NewBuffer(32, 32)
	cv := NewCanvas(buf)
	cv.SetClip(image.Rect(8, 8, 16, 16))
	cv.Clear(0xFF112233)

	if got := buf.At(10, 10); got != 0xFF112233 {
		t.Errorf("inside clip = %#x", got)
	}
	if got := buf.At(4, 4); got != 0 {
		t.Errorf("outside clip = %#x, want untouched", got)
	}
}

func TestWithLogger(t *testing.T) {
	buf, _ := NewBuffer(16, 16)
	own := slog.New(slog.NewTextHandler(io.Discard, nil))

	cv := NewCanvas(buf, WithLogger(own))
	if cv.logger() != own {
		t.Error("WithLogger did not take effect")
	}

	// Without the option the canvas falls back to the package logger.
	cv2 := NewCanvas(buf)
	if cv2.logger() != Logger() {
		t.Error("default canvas logger is not the package logger")
	}

	// A nil option keeps the fallback.
	cv3 := NewCanvas(buf, WithLogger(nil))
	if cv3.logger() != Logger() {
		t.Error("WithLogger(nil) did not keep the package logger")
	}
}

func TestDrawTranslucentComposites(t *testing.T) {
	buf, _ := NewBuffer(16, 16)
	cv := NewCanvas(buf, WithClearColor(0xFF000000))

	p := NewPath()
	p.Rect(0, 0, 16, 16)
	cv.Draw(p, Solid(0x80FFFFFF), NonZero) // 50% white over black

	got := buf.At(8, 8)
	r := (got >> 16) & 0xFF
	if r < 126 || r > 130 {
		t.Errorf("blended red = %d, want about 128", r)
	}
	if got>>24 != 0xFF {
		t.Errorf("alpha = %#x, want opaque", got>>24)
	}
}

func TestDrawLazyViewDispatch(t *testing.T) {
	// Drawing through a composed lazy view renders the transformed
	// geometry.
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)

	p := NewPath()
	p.Rect(0, 0, 8, 8)
	cv.Draw(Offset(Scale(p, 2), 16, 16), Solid(0xFF00FFFF), NonZero)

	if got := buf.At(24, 24); got != 0xFF00FFFF {
		t.Errorf("(24,24) = %#x, want filled", got)
	}
	if got := buf.At(8, 8); got != 0 {
		t.Errorf("(8,8) = %#x, want empty", got)
	}
}

func TestDrawEmptyPath(t *testing.T) {
	buf, _ := NewBuffer(16, 16)
	cv := NewCanvas(buf)
	cv.Draw(NewPath(), Solid(0xFFFFFFFF), NonZero)
	if got := buf.At(8, 8); got != 0 {
		t.Errorf("empty path drew %#x", got)
	}
}

func TestDrawCircleSmooth(t *testing.T) {
	buf, _ := NewBuffer(64, 64)
	cv := NewCanvas(buf)

	p := NewPath()
	p.Circle(32, 32, 20)
	cv.Draw(p, Solid(0xFFFFFFFF), NonZero)

	if got := buf.At(32, 32); got != 0xFFFFFFFF {
		t.Errorf("center = %#x", got)
	}
	if got := buf.At(2, 2); got != 0 {
		t.Errorf("corner = %#x", got)
	}
	// The rim is anti-aliased: some pixel near the edge is partial.
	partial := false
	for x := 44; x < 58; x++ {
		a := buf.At(x, 32) >> 24
		if a > 0 && a < 0xFF {
			partial = true
		}
	}
	if !partial {
		t.Error("no partial-coverage pixels on the rim")
	}
}
