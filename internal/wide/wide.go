// Package wide provides fixed-size-array vector types for the blit
// inner loops. The types mirror a 4-lane SIMD register: operations
// are written as simple element loops over [4]T arrays so the Go
// compiler can auto-vectorize them, with the same code serving as
// the scalar fallback on architectures where it does not.
//
// The blit pipeline processes pixels in groups of four, so every
// type here carries exactly four lanes.
package wide

import "github.com/chewxy/math32"

// F32x4 is four float32 lanes.
type F32x4 [4]float32

// SplatF32 returns an F32x4 with every lane set to n.
func SplatF32(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add returns v + w per lane.
func (v F32x4) Add(w F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns v - w per lane.
func (v F32x4) Sub(w F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

// Mul returns v * w per lane.
func (v F32x4) Mul(w F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] * w[i]
	}
	return r
}

// MulAdd returns v*w + a per lane.
func (v F32x4) MulAdd(w, a F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i]*w[i] + a[i]
	}
	return r
}

// Scale returns v * s per lane.
func (v F32x4) Scale(s float32) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] * s
	}
	return r
}

// Sqrt returns the square root of each lane.
func (v F32x4) Sqrt() F32x4 {
	var r F32x4
	for i := range v {
		r[i] = math32.Sqrt(v[i])
	}
	return r
}

// Abs returns |v| per lane.
func (v F32x4) Abs() F32x4 {
	var r F32x4
	for i := range v {
		r[i] = math32.Abs(v[i])
	}
	return r
}

// Max returns the lane-wise maximum of v and w.
func (v F32x4) Max(w F32x4) F32x4 {
	var r F32x4
	for i := range v {
		if v[i] > w[i] {
			r[i] = v[i]
		} else {
			r[i] = w[i]
		}
	}
	return r
}

// TruncInt32 converts each lane to int32, truncating toward zero.
func (v F32x4) TruncInt32() I32x4 {
	var r I32x4
	for i := range v {
		r[i] = int32(v[i])
	}
	return r
}

// FloorInt32 converts each lane to int32, rounding toward
// negative infinity.
func (v F32x4) FloorInt32() I32x4 {
	var r I32x4
	for i := range v {
		r[i] = int32(math32.Floor(v[i]))
	}
	return r
}

// I32x4 is four int32 lanes.
type I32x4 [4]int32

// SplatI32 returns an I32x4 with every lane set to n.
func SplatI32(n int32) I32x4 {
	return I32x4{n, n, n, n}
}

// PrefixSum returns the inclusive prefix sum of the lanes plus the
// incoming carry, and the carry for the next group (the last lane of
// the result). This is the horizontal integration step that turns
// winding deltas into winding numbers.
func (v I32x4) PrefixSum(carry int32) (I32x4, int32) {
	var r I32x4
	acc := carry
	for i := range v {
		acc += v[i]
		r[i] = acc
	}
	return r, acc
}

// AndN returns v & n per lane.
func (v I32x4) AndN(n int32) I32x4 {
	var r I32x4
	for i := range v {
		r[i] = v[i] & n
	}
	return r
}

// ClampIdx clamps each lane to [0, hi].
func (v I32x4) ClampIdx(hi int32) I32x4 {
	var r I32x4
	for i := range v {
		n := v[i]
		if n < 0 {
			n = 0
		} else if n > hi {
			n = hi
		}
		r[i] = n
	}
	return r
}

// MirrorIdx folds each lane into [0, size-1] by reflection, where
// size is a power of two. With mask m = 2*size-1, a lane whose
// wrapped value lands in the second half is bitwise-inverted back
// into the first, matching the SSE cmpgt/xor idiom.
func (v I32x4) MirrorIdx(size int32) I32x4 {
	m := 2*size - 1
	var r I32x4
	for i := range v {
		n := v[i] & m
		if n >= size {
			n = ^n & m
		}
		r[i] = n
	}
	return r
}
