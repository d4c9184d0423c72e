// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circlefit computes the transform that maps a rectangular
// image onto a circular viewport with center-crop semantics: the
// short side of the image fills the viewport and the overflow on the
// long side is centered, to be cut off by the circular clip.
package circlefit

import (
	"errors"
	"fmt"
	"image"

	"cogentcore.org/circleimage/math32"
	"golang.org/x/image/math/f64"
)

// ErrInvalidDimensions is returned by [Compute] when a dimension
// it divides by, or the viewport width, is not positive.
var ErrInvalidDimensions = errors.New("circlefit: invalid dimensions")

// ImageDimensions is the natural pixel size of a source image.
type ImageDimensions struct {
	Width, Height int
}

// ImageDimensionsOf returns the dimensions of the given image.
func ImageDimensionsOf(img image.Image) ImageDimensions {
	sz := img.Bounds().Size()
	return ImageDimensions{sz.X, sz.Y}
}

// ViewportSize is the size of the circular drawing area.
// Only Width determines the circle, so it is square in practice.
type ViewportSize struct {
	Width, Height int
}

// ViewportOf returns the size of the given rectangle.
func ViewportOf(r image.Rectangle) ViewportSize {
	sz := r.Size()
	return ViewportSize{sz.X, sz.Y}
}

// Vector2 returns the viewport size as a vector.
func (v ViewportSize) Vector2() math32.Vector2 {
	return math32.Vec2(float32(v.Width), float32(v.Height))
}

// FitTransform is a uniform scale followed by a translation,
// mapping image space to viewport space.
type FitTransform struct {
	Scale      float32
	TranslateX float32
	TranslateY float32
}

// Compute returns the center-crop transform of an image of the given
// dimensions into the given viewport.
//
// Wider-than-tall images are scaled by viewport width over image height
// and centered horizontally. All others are scaled by viewport width
// over image width and centered vertically, so a square image never
// gets a horizontal offset.
func Compute(img ImageDimensions, viewport ViewportSize) (FitTransform, error) {
	if img.Width <= 0 || img.Height <= 0 || viewport.Width <= 0 {
		return FitTransform{}, fmt.Errorf("%w: image %dx%d, viewport %dx%d", ErrInvalidDimensions, img.Width, img.Height, viewport.Width, viewport.Height)
	}
	iw, ih := float32(img.Width), float32(img.Height)
	vw, vh := float32(viewport.Width), float32(viewport.Height)
	var ft FitTransform
	if img.Width > img.Height {
		ft.Scale = vw / ih
		ft.TranslateX = (vw - iw*ft.Scale) / 2
	} else {
		ft.Scale = vw / iw
		ft.TranslateY = (vh - ih*ft.Scale) / 2
	}
	return ft, nil
}

// Matrix returns the transform as an affine matrix: scale first, then translate.
func (ft FitTransform) Matrix() math32.Matrix2 {
	return math32.Translate2D(ft.TranslateX, ft.TranslateY).Mul(math32.Scale2D(ft.Scale, ft.Scale))
}

// Aff3 returns the transform in the form used by golang.org/x/image/draw.
func (ft FitTransform) Aff3() f64.Aff3 {
	s := float64(ft.Scale)
	return f64.Aff3{
		s, 0, float64(ft.TranslateX),
		0, s, float64(ft.TranslateY),
	}
}

// Apply maps a point in image space to viewport space.
func (ft FitTransform) Apply(p math32.Vector2) math32.Vector2 {
	return p.MulScalar(ft.Scale).Add(math32.Vec2(ft.TranslateX, ft.TranslateY))
}

// Rect returns the min and max corners, in viewport space,
// of the image with the given dimensions.
func (ft FitTransform) Rect(img ImageDimensions) (minPt, maxPt math32.Vector2) {
	return ft.Apply(math32.Vec2(0, 0)), ft.Apply(math32.Vec2(float32(img.Width), float32(img.Height)))
}

func (ft FitTransform) String() string {
	return ft.Matrix().String()
}
