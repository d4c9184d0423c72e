// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circlefit

import "cogentcore.org/circleimage/math32"

// Center returns the center of the viewport.
func Center(viewport ViewportSize) math32.Vector2 {
	return viewport.Vector2().DivScalar(2)
}

// Radius returns the radius of the image circle, which is
// half the viewport width regardless of the height.
func Radius(viewport ViewportSize) float32 {
	return float32(viewport.Width) / 2
}

// BorderRadius returns the radius of the border circle, whose stroke of
// the given width sits just inside the image circle.
func BorderRadius(viewport ViewportSize, borderWidth float32) float32 {
	return (float32(viewport.Width) - borderWidth) / 2
}
