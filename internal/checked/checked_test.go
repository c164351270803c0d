// SPDX-License-Identifier: Unlicense OR MIT

package checked

import (
	"math"
	"testing"
)

func TestAddInt32(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
		ok   bool
	}{
		{5, 9, 14, true},
		{-5, 3, -2, true},
		{math.MaxInt32, 0, math.MaxInt32, true},
		{math.MaxInt32, 1, 0, false},
		{1, math.MaxInt32, 0, false},
		{math.MinInt32, 0, math.MinInt32, true},
		{math.MinInt32, -1, 0, false},
		{math.MinInt32, math.MinInt32, 0, false},
	}
	for _, tt := range tests {
		got, ok := Add(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Add(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAddUint32(t *testing.T) {
	tests := []struct {
		a, b uint32
		want uint32
		ok   bool
	}{
		{5, 9, 14, true},
		{math.MaxUint32, 0, math.MaxUint32, true},
		{math.MaxUint32, 1, 0, false},
		{1, math.MaxUint32, 0, false},
		{math.MaxUint32, math.MaxUint32, 0, false},
	}
	for _, tt := range tests {
		got, ok := Add(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Add(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSubInt32(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
		ok   bool
	}{
		{5, 7, -2, true},
		{-5, -7, 2, true},
		{math.MinInt32, 1, 0, false},
		{math.MaxInt32, -1, 0, false},
		{0, math.MinInt32, 0, false},
		{-1, math.MinInt32, math.MaxInt32, true},
		{math.MinInt32, math.MinInt32, 0, true},
	}
	for _, tt := range tests {
		got, ok := Sub(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Sub(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSubUint32(t *testing.T) {
	tests := []struct {
		a, b uint32
		want uint32
		ok   bool
	}{
		{9, 4, 5, true},
		{9, 9, 0, true},
		{5, 7, 0, false},
		{0, 1, 0, false},
		{math.MaxUint32, math.MaxUint32, 0, true},
	}
	for _, tt := range tests {
		got, ok := Sub(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Sub(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMulInt32(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
		ok   bool
	}{
		{2, 3, 6, true},
		{-3, 4, -12, true},
		{-3, -4, 12, true},
		{0, math.MinInt32, 0, true},
		{math.MinInt32, 1, math.MinInt32, true},
		{math.MinInt32, -1, 0, false},
		{-1, math.MinInt32, 0, false},
		{46341, 46341, 0, false},
		{-46341, 46341, 0, false},
		{math.MaxInt32, 2, 0, false},
	}
	for _, tt := range tests {
		got, ok := Mul(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Mul(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMulUint32(t *testing.T) {
	tests := []struct {
		a, b uint32
		want uint32
		ok   bool
	}{
		{2, 3, 6, true},
		{math.MaxUint32, 1, math.MaxUint32, true},
		{math.MaxUint32, 0, 0, true},
		{1 << 16, 1 << 16, 0, false},
		{math.MaxUint32, 2, 0, false},
	}
	for _, tt := range tests {
		got, ok := Mul(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Mul(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

// The wrapped product of 16*16 in uint8 is exactly zero, which the
// sign test has to catch because the divide-back test cannot.
func TestMulNarrow(t *testing.T) {
	if got, ok := Mul(uint8(16), uint8(16)); got != 0 || ok {
		t.Errorf("Mul(16, 16) = %d, %v; want 0, false", got, ok)
	}
	if got, ok := Add(int8(127), int8(1)); got != 0 || ok {
		t.Errorf("Add(127, 1) = %d, %v; want 0, false", got, ok)
	}
}

func TestQuo(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
		ok   bool
	}{
		{7, 2, 3, true},
		{-7, 2, -3, true},
		{7, -2, -3, true},
		{math.MinInt32, 1, math.MinInt32, true},
		{math.MinInt32, -1, 0, false},
		{math.MaxInt32, -1, -math.MaxInt32, true},
	}
	for _, tt := range tests {
		got, ok := Quo(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Quo(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
	if got, ok := Quo(uint32(9), uint32(3)); got != 3 || !ok {
		t.Errorf("Quo(9, 3) = %d, %v; want 3, true", got, ok)
	}
}

func TestQuoZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Quo(1, 0) did not panic")
		}
	}()
	Quo(int32(1), int32(0))
}
