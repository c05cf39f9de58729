// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

// SolidSource paints a single ARGB32 color.
type SolidSource struct {
	Color uint32
}

// Colors4 implements Source.
func (s SolidSource) Colors4(x, y int) [4]uint32 {
	return [4]uint32{s.Color, s.Color, s.Color, s.Color}
}

// Opaque implements Source.
func (s SolidSource) Opaque() bool {
	return s.Color>>24 == 0xFF
}
