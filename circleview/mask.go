// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circleview

import (
	"image"
	"image/color"

	"cogentcore.org/circleimage/math32"
)

// samples is the number of subpixel samples per axis used
// to antialias mask edges.
const samples = 4

// ringMask is an alpha mask covering the ring between two radii
// around a center. A zero inner radius gives a filled disc.
type ringMask struct {
	bounds image.Rectangle
	center math32.Vector2
	inner  float32
	outer  float32
}

func discMask(bounds image.Rectangle, center math32.Vector2, radius float32) *ringMask {
	return &ringMask{bounds: bounds, center: center, outer: radius}
}

func (m *ringMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *ringMask) Bounds() image.Rectangle {
	return m.bounds
}

func (m *ringMask) At(x, y int) color.Color {
	return color.Alpha{m.coverage(x, y)}
}

func (m *ringMask) contains(p math32.Vector2) bool {
	d := p.DistanceToSquared(m.center)
	return d <= m.outer*m.outer && (m.inner <= 0 || d >= m.inner*m.inner)
}

// coverage returns the fraction of the pixel at x, y inside the ring, as alpha.
func (m *ringMask) coverage(x, y int) uint8 {
	if !(image.Point{x, y}.In(m.bounds)) {
		return 0
	}
	n := 0
	for sy := 0; sy < samples; sy++ {
		for sx := 0; sx < samples; sx++ {
			p := math32.Vec2(float32(x)+(float32(sx)+0.5)/samples, float32(y)+(float32(sy)+0.5)/samples)
			if m.contains(p) {
				n++
			}
		}
	}
	return uint8(n * 255 / (samples * samples))
}
