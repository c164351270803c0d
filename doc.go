// SPDX-License-Identifier: Unlicense OR MIT

/*
Package intmath is a checked integer implementation of package image's
Point and Rectangle for grid coordinates.

Vectors come in an unsigned flavor (VectorU) for sizes and positions
where negative values are meaningless, a signed flavor (VectorI) for
positions and displacements that may be negative, and a three axis
signed flavor (Vector3I). Rectangles pair a position vector with an
unsigned size: RectU holds an unsigned position, RectI a signed one.
A rectangle occupies the half-open span [Position, Position+Size) on
each axis.

Arithmetic is checked. An operation whose exact result does not fit
the 32-bit component width fails with ErrOverflow or ErrUnderflow
instead of wrapping, and it fails whole: no value with one updated
axis is ever returned. Saturating variants (AddSat, SubSat) are
provided separately for callers that want clamping.

All types are plain immutable values. Operations return new values,
== compares exact components, and any of the types can be used as a
map key.
*/
package intmath
