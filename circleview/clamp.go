// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circleview

import (
	"image"
	"image/color"
)

// clampImage extends src over a larger zero-origin area by repeating
// its edge pixels. Point p of the clampImage is point p+off of src,
// clamped to the bounds of src.
type clampImage struct {
	src    *image.RGBA
	off    image.Point
	bounds image.Rectangle
}

func (c *clampImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (c *clampImage) Bounds() image.Rectangle {
	return c.bounds
}

func (c *clampImage) At(x, y int) color.Color {
	b := c.src.Bounds()
	x = min(max(x+c.off.X, b.Min.X), b.Max.X-1)
	y = min(max(y+c.off.Y, b.Min.Y), b.Max.Y-1)
	return c.src.RGBAAt(x, y)
}
