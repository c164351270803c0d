// SPDX-License-Identifier: Unlicense OR MIT

/*
Package checked implements integer arithmetic that detects overflow
instead of wrapping.

Every function returns the result together with an ok bool; ok is
false when the exact mathematical result is not representable in T,
in which case the result is zero. Callers decide how to surface the
failure. Detection relies on Go's defined wraparound for integer
operations, so the same code serves signed and unsigned types.
*/
package checked

import "golang.org/x/exp/constraints"

// Add returns a+b and whether the sum is representable in T.
func Add[T constraints.Integer](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Sub returns a-b and whether the difference is representable in T.
// For unsigned T this requires b <= a.
func Sub[T constraints.Integer](a, b T) (T, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

// Mul returns a*b and whether the product is representable in T. A
// wrapped product either lands on the wrong sign or fails to divide
// back; checking both catches every case, including the most negative
// value times -1.
func Mul[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if (a < 0) == (b < 0) {
		if p <= 0 {
			return 0, false
		}
	} else if p >= 0 {
		return 0, false
	}
	if p/a != b {
		return 0, false
	}
	return p, true
}

// Quo returns a/b and whether the quotient is representable in T. The
// only unrepresentable quotient is the most negative value divided by
// -1. Quo panics if b is zero, as the / operator does.
func Quo[T constraints.Integer](a, b T) (T, bool) {
	q := a / b
	if a < 0 && b < 0 && q < 0 {
		return 0, false
	}
	return q, true
}
