// SPDX-License-Identifier: Unlicense OR MIT

package intmath

import "math"

// Saturating variants of Add and Sub. Where the checked operations
// report a range failure, these clamp the affected axis to the nearest
// representable value, for callers that prefer pinning at the edge of
// the coordinate range over handling an error.

// AddSat returns the vector v+w with each axis clamped to MaxUint32.
func (v VectorU) AddSat(w VectorU) VectorU {
	return VectorU{
		X: satU(int64(v.X) + int64(w.X)),
		Y: satU(int64(v.Y) + int64(w.Y)),
	}
}

// SubSat returns the vector v-w with each axis clamped to zero.
func (v VectorU) SubSat(w VectorU) VectorU {
	return VectorU{
		X: satU(int64(v.X) - int64(w.X)),
		Y: satU(int64(v.Y) - int64(w.Y)),
	}
}

// AddSat returns the vector v+w with each axis clamped to the signed
// 32-bit range.
func (v VectorI) AddSat(w VectorI) VectorI {
	return VectorI{
		X: satI(int64(v.X) + int64(w.X)),
		Y: satI(int64(v.Y) + int64(w.Y)),
	}
}

// SubSat returns the vector v-w with each axis clamped to the signed
// 32-bit range.
func (v VectorI) SubSat(w VectorI) VectorI {
	return VectorI{
		X: satI(int64(v.X) - int64(w.X)),
		Y: satI(int64(v.Y) - int64(w.Y)),
	}
}

func satU(n int64) uint32 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

func satI(n int64) int32 {
	if n < math.MinInt32 {
		return math.MinInt32
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}
