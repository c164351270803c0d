// SPDX-License-Identifier: Unlicense OR MIT

package intmath_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intmath "github.com/piot/int-math-go"
)

const propertyRounds = 1000

func TestVectorUAddCommutes(t *testing.T) {
	f := fuzz.NewWithSeed(1)
	for i := 0; i < propertyRounds; i++ {
		var a, b intmath.VectorU
		f.Fuzz(&a)
		f.Fuzz(&b)
		ab, errAB := a.Add(b)
		ba, errBA := b.Add(a)
		require.Equal(t, errAB, errBA, "a=%v b=%v", a, b)
		assert.Equal(t, ab, ba, "a=%v b=%v", a, b)
	}
}

func TestVectorIAddCommutes(t *testing.T) {
	f := fuzz.NewWithSeed(2)
	for i := 0; i < propertyRounds; i++ {
		var a, b intmath.VectorI
		f.Fuzz(&a)
		f.Fuzz(&b)
		ab, errAB := a.Add(b)
		ba, errBA := b.Add(a)
		require.Equal(t, errAB, errBA, "a=%v b=%v", a, b)
		assert.Equal(t, ab, ba, "a=%v b=%v", a, b)
	}
}

func TestVectorUSubAddRoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(3)
	for i := 0; i < propertyRounds; i++ {
		var a, b intmath.VectorU
		f.Fuzz(&a)
		f.Fuzz(&b)
		d, err := a.Sub(b)
		if b.X > a.X || b.Y > a.Y {
			require.ErrorIs(t, err, intmath.ErrUnderflow, "a=%v b=%v", a, b)
			assert.Equal(t, intmath.VectorU{}, d, "a=%v b=%v", a, b)
			continue
		}
		require.NoError(t, err, "a=%v b=%v", a, b)
		back, err := d.Add(b)
		require.NoError(t, err, "a=%v b=%v", a, b)
		assert.Equal(t, a, back, "a=%v b=%v", a, b)
	}
}

func TestSaturatingMatchesChecked(t *testing.T) {
	f := fuzz.NewWithSeed(4)
	for i := 0; i < propertyRounds; i++ {
		var a, b intmath.VectorU
		f.Fuzz(&a)
		f.Fuzz(&b)
		if sum, err := a.Add(b); err == nil {
			assert.Equal(t, sum, a.AddSat(b), "a=%v b=%v", a, b)
		}
		if diff, err := a.Sub(b); err == nil {
			assert.Equal(t, diff, a.SubSat(b), "a=%v b=%v", a, b)
		}

		var c, d intmath.VectorI
		f.Fuzz(&c)
		f.Fuzz(&d)
		if sum, err := c.Add(d); err == nil {
			assert.Equal(t, sum, c.AddSat(d), "c=%v d=%v", c, d)
		}
		if diff, err := c.Sub(d); err == nil {
			assert.Equal(t, diff, c.SubSat(d), "c=%v d=%v", c, d)
		}
	}
}

func TestRectUCenterInside(t *testing.T) {
	f := fuzz.NewWithSeed(5)
	for i := 0; i < propertyRounds; i++ {
		var r intmath.RectU
		f.Fuzz(&r)
		if r.Size.X == 0 {
			r.Size.X = 1
		}
		if r.Size.Y == 0 {
			r.Size.Y = 1
		}
		c, err := r.Center()
		if err != nil {
			continue
		}
		assert.True(t, r.Contains(c), "r=%v center=%v", r, c)
	}
}

func TestRectICenterInside(t *testing.T) {
	f := fuzz.NewWithSeed(6)
	for i := 0; i < propertyRounds; i++ {
		var r intmath.RectI
		f.Fuzz(&r)
		if r.Size.X == 0 {
			r.Size.X = 1
		}
		if r.Size.Y == 0 {
			r.Size.Y = 1
		}
		c, err := r.Center()
		if err != nil {
			continue
		}
		assert.True(t, r.Contains(c), "r=%v center=%v", r, c)
	}
}
