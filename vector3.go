// SPDX-License-Identifier: Unlicense OR MIT

package intmath

import (
	"fmt"

	"github.com/piot/int-math-go/internal/checked"
)

// A Vector3I is a point or displacement on a 3D grid with signed
// integer components, for grids with a depth or layer axis.
type Vector3I struct {
	X, Y, Z int32
}

// NewVector3I returns the vector (x,y,z).
func NewVector3I(x, y, z int32) Vector3I {
	return Vector3I{X: x, Y: y, Z: z}
}

// Add returns the vector v+w. It fails with ErrOverflow when a sum
// leaves the signed 32-bit range on any of the three axes.
func (v Vector3I) Add(w Vector3I) (Vector3I, error) {
	x, ok := checked.Add(v.X, w.X)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	y, ok := checked.Add(v.Y, w.Y)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	z, ok := checked.Add(v.Z, w.Z)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	return Vector3I{X: x, Y: y, Z: z}, nil
}

// Sub returns the vector v-w. It fails with ErrOverflow when a
// difference leaves the signed 32-bit range on any axis.
func (v Vector3I) Sub(w Vector3I) (Vector3I, error) {
	x, ok := checked.Sub(v.X, w.X)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	y, ok := checked.Sub(v.Y, w.Y)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	z, ok := checked.Sub(v.Z, w.Z)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	return Vector3I{X: x, Y: y, Z: z}, nil
}

// Mul returns the vector v scaled by s. It fails with ErrOverflow when
// a product leaves the signed 32-bit range.
func (v Vector3I) Mul(s int32) (Vector3I, error) {
	x, ok := checked.Mul(v.X, s)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	y, ok := checked.Mul(v.Y, s)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	z, ok := checked.Mul(v.Z, s)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	return Vector3I{X: x, Y: y, Z: z}, nil
}

// Div returns the vector v/s, truncating toward zero. It fails with
// ErrOverflow in the single case of a MinInt32 component divided by
// -1. Div panics if s is zero, as the / operator does.
func (v Vector3I) Div(s int32) (Vector3I, error) {
	x, ok := checked.Quo(v.X, s)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	y, ok := checked.Quo(v.Y, s)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	z, ok := checked.Quo(v.Z, s)
	if !ok {
		return Vector3I{}, ErrOverflow
	}
	return Vector3I{X: x, Y: y, Z: z}, nil
}

// XY returns the X and Y axes of v, dropping Z.
func (v Vector3I) XY() VectorI {
	return VectorI{X: v.X, Y: v.Y}
}

// String returns a string representation of v like "(1,-2,3)".
func (v Vector3I) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}
