// SPDX-License-Identifier: Unlicense OR MIT

package intmath

import "golang.org/x/image/math/fixed"

// Int26_6 coordinates hold a 26-bit integer part.
const (
	fixedMax = 1<<25 - 1
	fixedMin = -(1 << 25)
)

// Fixed returns v as a fixed.Point26_6 in whole units. It fails with
// ErrOverflow when a component does not fit the 26-bit integer part.
func (v VectorI) Fixed() (fixed.Point26_6, error) {
	if v.X < fixedMin || v.X > fixedMax || v.Y < fixedMin || v.Y > fixedMax {
		return fixed.Point26_6{}, ErrOverflow
	}
	return fixed.P(int(v.X), int(v.Y)), nil
}

// FromFixedPoint returns p floored to whole units.
func FromFixedPoint(p fixed.Point26_6) VectorI {
	return VectorI{X: int32(p.X.Floor()), Y: int32(p.Y.Floor())}
}
