// SPDX-License-Identifier: Unlicense OR MIT

package intmath

import "errors"

// ErrOverflow reports that the exact result of an operation exceeds
// the maximum representable value of a component.
var ErrOverflow = errors.New("intmath: overflow")

// ErrUnderflow reports that the exact result of an operation is below
// zero in an unsigned component.
var ErrUnderflow = errors.New("intmath: underflow")
