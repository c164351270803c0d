// SPDX-License-Identifier: Unlicense OR MIT

package intmath

import (
	"image"
	"math"
)

// ImagePoint returns v as an image.Point. The conversion is total; an
// int32 component always fits an int.
func (v VectorI) ImagePoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// FromImagePoint returns p as a VectorI. It fails with ErrOverflow
// when a coordinate does not fit in 32 bits.
func FromImagePoint(p image.Point) (VectorI, error) {
	if p.X < math.MinInt32 || p.X > math.MaxInt32 ||
		p.Y < math.MinInt32 || p.Y > math.MaxInt32 {
		return VectorI{}, ErrOverflow
	}
	return VectorI{X: int32(p.X), Y: int32(p.Y)}, nil
}

// ImageRect returns r as an image.Rectangle with Min at the position
// and Max at position+size. It fails with ErrOverflow when a Max
// coordinate exceeds MaxInt32, which keeps every successful result
// convertible back regardless of the platform's int width.
func (r RectI) ImageRect() (image.Rectangle, error) {
	maxX := int64(r.Position.X) + int64(r.Size.X)
	maxY := int64(r.Position.Y) + int64(r.Size.Y)
	if maxX > math.MaxInt32 || maxY > math.MaxInt32 {
		return image.Rectangle{}, ErrOverflow
	}
	return image.Rectangle{
		Min: image.Point{X: int(r.Position.X), Y: int(r.Position.Y)},
		Max: image.Point{X: int(maxX), Y: int(maxY)},
	}, nil
}

// FromImageRect returns r as a RectI. The rectangle is canonicalized
// first, so a flipped r converts as its well-formed equivalent. It
// fails with ErrOverflow when the position does not fit in 32 bits or
// an extent exceeds MaxUint32.
func FromImageRect(r image.Rectangle) (RectI, error) {
	c := r.Canon()
	pos, err := FromImagePoint(c.Min)
	if err != nil {
		return RectI{}, err
	}
	// Canon makes Max >= Min, so the uint64 difference is exact for
	// any int width.
	dx := uint64(c.Max.X) - uint64(c.Min.X)
	dy := uint64(c.Max.Y) - uint64(c.Min.Y)
	if dx > math.MaxUint32 || dy > math.MaxUint32 {
		return RectI{}, ErrOverflow
	}
	return RectI{Position: pos, Size: VectorU{X: uint32(dx), Y: uint32(dy)}}, nil
}
