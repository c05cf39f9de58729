// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blit converts scanline winding deltas into composited
// pixels. A Blitter pairs a paint source with a winding rule and
// yields the raster.BlitFunc handed to the rasterizer.
//
// The inner loop works in 4-pixel groups. Groups whose change-mask
// bit is set are integrated lane by lane; runs of clear groups carry
// a constant winding number and take one of three span fast paths:
// skip (coverage near zero), direct write (opaque paint at full
// coverage), or constant-alpha blend.
package blit

import (
	"github.com/gogpu/flint/internal/raster"
	"github.com/gogpu/flint/internal/wide"
)

// Rule selects how winding numbers become coverage.
type Rule uint8

// Winding rules.
const (
	NonZero Rule = iota
	EvenOdd
)

// Mode maps an out-of-range gradient parameter back into the LUT.
type Mode uint8

// Repeat modes.
const (
	Pad Mode = iota
	Repeat
	Mirror
)

// Source produces paint colors for 4-pixel groups. Colors are ARGB32
// with straight alpha.
type Source interface {
	// Colors4 returns the colors of pixels (x..x+3, y).
	Colors4(x, y int) [4]uint32
	// Opaque reports whether every color the source can produce has
	// alpha 255, enabling the direct-write span fast path.
	Opaque() bool
}

// Blitter joins a destination, a paint source, and a winding rule.
type Blitter struct {
	pix    []uint32
	stride int
	src    Source
	cover  func(int32) uint32
	opaque bool
}

// New returns the blit callback for one draw operation. pix is the
// full destination buffer addressed as pix[y*stride+x].
func New(pix []uint32, stride int, src Source, rule Rule) raster.BlitFunc {
	b := &Blitter{
		pix:    pix,
		stride: stride,
		src:    src,
		opaque: src.Opaque(),
	}
	if rule == EvenOdd {
		b.cover = raster.CoverageEvenOdd
	} else {
		b.cover = raster.CoverageNonZero
	}
	return b.Blit
}

// Blit consumes one scanline of deltas. It upholds the cooperative
// protocol: every delta slot and mask word read here is zeroed before
// returning.
func (b *Blitter) Blit(delta []int32, mask []uint32, x0, x1, y int) {
	width := x1 - x0
	nGroups := len(delta) / 4
	row := b.pix[y*b.stride:]
	acc := int32(0)

	spanStart := -1
	flush := func(end int) {
		if spanStart < 0 {
			return
		}
		b.fillSpan(row, x0, spanStart, min(end, width), acc, y)
		spanStart = -1
	}

	for g := 0; g < nGroups; g++ {
		if mask[g>>5]&(1<<(g&31)) == 0 {
			if spanStart < 0 {
				spanStart = g * 4
			}
			continue
		}
		flush(g * 4)

		base := g * 4
		d := wide.I32x4{delta[base], delta[base+1], delta[base+2], delta[base+3]}
		delta[base] = 0
		delta[base+1] = 0
		delta[base+2] = 0
		delta[base+3] = 0

		w4, next := d.PrefixSum(acc)
		acc = next

		n := width - base
		if n <= 0 {
			continue
		}
		if n > 4 {
			n = 4
		}
		cols := b.src.Colors4(x0+base, y)
		for i := 0; i < n; i++ {
			cov := b.cover(w4[i])
			if cov <= covSkip {
				continue
			}
			px := &row[x0+base+i]
			*px = compositeOver(*px, cols[i], cov)
		}
	}
	flush(nGroups * 4)

	for i := range mask {
		mask[i] = 0
	}
}

// Span fast-path thresholds: coverage below covSkip is invisible in
// 8-bit alpha; coverage above covFull blends as fully opaque.
const (
	covSkip = 0x00FF
	covFull = 0xFF00
)

// fillSpan paints columns [start, end) whose winding is constant.
func (b *Blitter) fillSpan(row []uint32, x0, start, end int, w int32, y int) {
	if end <= start {
		return
	}
	cov := b.cover(w)
	if cov <= covSkip {
		return
	}

	if cov >= covFull && b.opaque {
		// Full coverage over an opaque paint: no destination read.
		for x := start; x < end; x += 4 {
			cols := b.src.Colors4(x0+x, y)
			n := min(4, end-x)
			for i := 0; i < n; i++ {
				row[x0+x+i] = cols[i]
			}
		}
		return
	}

	for x := start; x < end; x += 4 {
		cols := b.src.Colors4(x0+x, y)
		n := min(4, end-x)
		for i := 0; i < n; i++ {
			px := &row[x0+x+i]
			*px = compositeOver(*px, cols[i], cov)
		}
	}
}

// compositeOver source-over-composites src onto dst with the given
// 16-bit coverage. Colors are straight-alpha ARGB32; the upper 8
// bits of the coverage multiply the source alpha, so the even-odd
// peak of 0xFFFE still blends as fully covered.
func compositeOver(dst, src uint32, cov uint32) uint32 {
	a := src >> 24
	ae := div255(a * (cov >> 8))
	if ae == 0 {
		return dst
	}
	if ae == 255 {
		return src
	}
	inv := 255 - ae

	sr := (src >> 16) & 0xFF
	sg := (src >> 8) & 0xFF
	sb := src & 0xFF
	dr := (dst >> 16) & 0xFF
	dg := (dst >> 8) & 0xFF
	db := dst & 0xFF
	da := dst >> 24

	r := div255(sr*ae + dr*inv)
	g := div255(sg*ae + dg*inv)
	bl := div255(sb*ae + db*inv)
	oa := div255(255*ae + da*inv)

	return oa<<24 | r<<16 | g<<8 | bl
}

// div255 divides by 255 with rounding, exactly, for x ≤ 255*255.
func div255(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}
