// SPDX-License-Identifier: Unlicense OR MIT

package intmath

import "math"

// A RectU is an axis-aligned rectangle on an unsigned grid. It
// contains the points (X, Y) where
//
//	Position.X <= X < Position.X+Size.X
//	Position.Y <= Y < Position.Y+Size.Y
//
// so the right and bottom edges are exclusive.
type RectU struct {
	Position VectorU
	Size     VectorU
}

// NewRectU returns the rectangle at position (x,y) with the extent
// (width,height).
func NewRectU(x, y, width, height uint32) RectU {
	return RectU{
		Position: VectorU{X: x, Y: y},
		Size:     VectorU{X: width, Y: height},
	}
}

// Center returns the midpoint of r. Each axis is Position + Size/2
// with flooring division, so an odd size lands on the lower of the two
// middle coordinates. It fails with ErrOverflow when the sum exceeds
// MaxUint32.
func (r RectU) Center() (VectorU, error) {
	return r.Position.Add(r.Size.Div(2))
}

// Offset returns r translated by delta. It fails with ErrOverflow when
// the new position exceeds MaxUint32 on either axis, leaving r's value
// unused rather than wrapped.
func (r RectU) Offset(delta VectorU) (RectU, error) {
	p, err := r.Position.Add(delta)
	if err != nil {
		return RectU{}, err
	}
	return RectU{Position: p, Size: r.Size}, nil
}

// OffsetSigned returns r translated by the signed delta. It fails with
// ErrUnderflow when a negative delta would drive a position component
// below zero and with ErrOverflow when a positive delta would push it
// past MaxUint32.
func (r RectU) OffsetSigned(delta VectorI) (RectU, error) {
	x, err := offsetU(r.Position.X, delta.X)
	if err != nil {
		return RectU{}, err
	}
	y, err := offsetU(r.Position.Y, delta.Y)
	if err != nil {
		return RectU{}, err
	}
	return RectU{Position: VectorU{X: x, Y: y}, Size: r.Size}, nil
}

func offsetU(pos uint32, delta int32) (uint32, error) {
	n := int64(pos) + int64(delta)
	if n < 0 {
		return 0, ErrUnderflow
	}
	if n > math.MaxUint32 {
		return 0, ErrOverflow
	}
	return uint32(n), nil
}

// Contains reports whether r contains the point p. The upper bounds
// are computed in 64 bits, so a rectangle reaching to the edge of the
// coordinate range still excludes points past it.
func (r RectU) Contains(p VectorU) bool {
	return p.X >= r.Position.X && uint64(p.X) < uint64(r.Position.X)+uint64(r.Size.X) &&
		p.Y >= r.Position.Y && uint64(p.Y) < uint64(r.Position.Y)+uint64(r.Size.Y)
}

// Signed returns r with a signed position. It fails with ErrOverflow
// when a position component exceeds MaxInt32. The size is unchanged.
func (r RectU) Signed() (RectI, error) {
	p, err := r.Position.Signed()
	if err != nil {
		return RectI{}, err
	}
	return RectI{Position: p, Size: r.Size}, nil
}

// String returns a string representation of r like "(3,4)+(6,5)".
func (r RectU) String() string {
	return r.Position.String() + "+" + r.Size.String()
}

// A RectI is an axis-aligned rectangle with a signed position and an
// unsigned size. Containment follows the same half-open rule as RectU,
// computed in 64 bits so the size cannot overflow the upper bound.
type RectI struct {
	Position VectorI
	Size     VectorU
}

// NewRectI returns the rectangle at position (x,y) with the extent
// (width,height).
func NewRectI(x, y int32, width, height uint32) RectI {
	return RectI{
		Position: VectorI{X: x, Y: y},
		Size:     VectorU{X: width, Y: height},
	}
}

// Center returns the midpoint of r, Position + Size/2 with flooring
// division per axis. The size is reinterpreted as signed for the
// addition; a size component beyond MaxInt32 fails with ErrOverflow
// rather than truncating, as does a sum leaving the signed range.
func (r RectI) Center() (VectorI, error) {
	size, err := r.Size.Signed()
	if err != nil {
		return VectorI{}, err
	}
	return r.Position.Add(VectorI{X: size.X / 2, Y: size.Y / 2})
}

// Offset returns r translated by delta. It fails with ErrOverflow when
// the new position leaves the signed 32-bit range on either axis.
func (r RectI) Offset(delta VectorI) (RectI, error) {
	p, err := r.Position.Add(delta)
	if err != nil {
		return RectI{}, err
	}
	return RectI{Position: p, Size: r.Size}, nil
}

// Contains reports whether r contains the point p.
func (r RectI) Contains(p VectorI) bool {
	return p.X >= r.Position.X && int64(p.X) < int64(r.Position.X)+int64(r.Size.X) &&
		p.Y >= r.Position.Y && int64(p.Y) < int64(r.Position.Y)+int64(r.Size.Y)
}

// Unsigned returns r with an unsigned position. It fails with
// ErrUnderflow when a position component is negative. The size is
// unchanged.
func (r RectI) Unsigned() (RectU, error) {
	p, err := r.Position.Unsigned()
	if err != nil {
		return RectU{}, err
	}
	return RectU{Position: p, Size: r.Size}, nil
}

// String returns a string representation of r like "(-3,4)+(6,5)".
func (r RectI) String() string {
	return r.Position.String() + "+" + r.Size.String()
}
