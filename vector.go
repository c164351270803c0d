// SPDX-License-Identifier: Unlicense OR MIT

package intmath

import (
	"fmt"
	"math"

	"github.com/piot/int-math-go/internal/checked"
)

// A VectorU is a point or extent on a 2D grid with unsigned integer
// components, for positions and sizes where negative values are
// meaningless.
type VectorU struct {
	X, Y uint32
}

// NewVectorU returns the vector (x,y).
func NewVectorU(x, y uint32) VectorU {
	return VectorU{X: x, Y: y}
}

// Add returns the vector v+w. It fails with ErrOverflow when the sum
// exceeds MaxUint32 on either axis.
func (v VectorU) Add(w VectorU) (VectorU, error) {
	x, ok := checked.Add(v.X, w.X)
	if !ok {
		return VectorU{}, ErrOverflow
	}
	y, ok := checked.Add(v.Y, w.Y)
	if !ok {
		return VectorU{}, ErrOverflow
	}
	return VectorU{X: x, Y: y}, nil
}

// Sub returns the vector v-w. It fails with ErrUnderflow when a
// component of w exceeds the corresponding component of v; each axis
// is checked on its own.
func (v VectorU) Sub(w VectorU) (VectorU, error) {
	x, ok := checked.Sub(v.X, w.X)
	if !ok {
		return VectorU{}, ErrUnderflow
	}
	y, ok := checked.Sub(v.Y, w.Y)
	if !ok {
		return VectorU{}, ErrUnderflow
	}
	return VectorU{X: x, Y: y}, nil
}

// Mul returns the vector v scaled by s. It fails with ErrOverflow when
// a product exceeds MaxUint32.
func (v VectorU) Mul(s uint32) (VectorU, error) {
	x, ok := checked.Mul(v.X, s)
	if !ok {
		return VectorU{}, ErrOverflow
	}
	y, ok := checked.Mul(v.Y, s)
	if !ok {
		return VectorU{}, ErrOverflow
	}
	return VectorU{X: x, Y: y}, nil
}

// Div returns the vector v/s, flooring each component. Unsigned
// division cannot leave the range, so there is no error result. Div
// panics if s is zero, as the / operator does.
func (v VectorU) Div(s uint32) VectorU {
	return VectorU{X: v.X / s, Y: v.Y / s}
}

// Signed returns v with signed components. It fails with ErrOverflow
// when a component exceeds MaxInt32.
func (v VectorU) Signed() (VectorI, error) {
	if v.X > math.MaxInt32 || v.Y > math.MaxInt32 {
		return VectorI{}, ErrOverflow
	}
	return VectorI{X: int32(v.X), Y: int32(v.Y)}, nil
}

// String returns a string representation of v like "(3,4)".
func (v VectorU) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// A VectorI is a point or displacement on a 2D grid with signed
// integer components.
type VectorI struct {
	X, Y int32
}

// NewVectorI returns the vector (x,y).
func NewVectorI(x, y int32) VectorI {
	return VectorI{X: x, Y: y}
}

// Add returns the vector v+w. It fails with ErrOverflow when a sum
// leaves the signed 32-bit range on either axis; negative results are
// fine.
func (v VectorI) Add(w VectorI) (VectorI, error) {
	x, ok := checked.Add(v.X, w.X)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	y, ok := checked.Add(v.Y, w.Y)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	return VectorI{X: x, Y: y}, nil
}

// Sub returns the vector v-w. It fails with ErrOverflow when a
// difference leaves the signed 32-bit range on either axis.
func (v VectorI) Sub(w VectorI) (VectorI, error) {
	x, ok := checked.Sub(v.X, w.X)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	y, ok := checked.Sub(v.Y, w.Y)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	return VectorI{X: x, Y: y}, nil
}

// Mul returns the vector v scaled by s. It fails with ErrOverflow when
// a product leaves the signed 32-bit range.
func (v VectorI) Mul(s int32) (VectorI, error) {
	x, ok := checked.Mul(v.X, s)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	y, ok := checked.Mul(v.Y, s)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	return VectorI{X: x, Y: y}, nil
}

// Div returns the vector v/s, truncating toward zero. It fails with
// ErrOverflow in the single case of a MinInt32 component divided by
// -1. Div panics if s is zero, as the / operator does.
func (v VectorI) Div(s int32) (VectorI, error) {
	x, ok := checked.Quo(v.X, s)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	y, ok := checked.Quo(v.Y, s)
	if !ok {
		return VectorI{}, ErrOverflow
	}
	return VectorI{X: x, Y: y}, nil
}

// Unsigned returns v with unsigned components. It fails with
// ErrUnderflow when a component is negative.
func (v VectorI) Unsigned() (VectorU, error) {
	if v.X < 0 || v.Y < 0 {
		return VectorU{}, ErrUnderflow
	}
	return VectorU{X: uint32(v.X), Y: uint32(v.Y)}, nil
}

// Vec3 returns v extended with a zero Z axis.
func (v VectorI) Vec3() Vector3I {
	return Vector3I{X: v.X, Y: v.Y}
}

// String returns a string representation of v like "(-3,4)".
func (v VectorI) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
