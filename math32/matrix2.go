// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix2 is a 3x2 affine transform matrix for 2D points.
// A point (x, y) is transformed as:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a [Matrix2] that translates by the given amounts.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a [Matrix2] that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a [Matrix2] that rotates by the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Mul returns a*b. The resulting matrix applies b first and then a,
// so the multiplication order is the reverse of the logical order.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint multiplies the given point by the matrix,
// including the translation.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y+a.X0, a.YX*v.X+a.YY*v.Y+a.Y0)
}

// MulVector2AsVector multiplies the given vector by the matrix,
// ignoring the translation.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y, a.YX*v.X+a.YY*v.Y)
}

// Det returns the determinant of the linear part of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix.
// A singular matrix yields non-finite components.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	inv := Matrix2{
		XX: a.YY / det,
		YX: -a.YX / det,
		XY: -a.XY / det,
		YY: a.XX / det,
	}
	inv.X0 = -(inv.XX*a.X0 + inv.XY*a.Y0)
	inv.Y0 = -(inv.YX*a.X0 + inv.YY*a.Y0)
	return inv
}

// IsIdentity returns whether the matrix is the identity.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// String returns the matrix in SVG transform syntax.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.XY != 0 || a.YX != 0 {
		return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
	}
	var parts []string
	if a.X0 != 0 || a.Y0 != 0 {
		parts = append(parts, fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0))
	}
	if a.XX != 1 || a.YY != 1 {
		parts = append(parts, fmt.Sprintf("scale(%g,%g)", a.XX, a.YY))
	}
	return strings.Join(parts, " ")
}
