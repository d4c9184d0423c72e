// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circlefit

import (
	"image"
	"testing"

	"cogentcore.org/circleimage/base/tolassert"
	"cogentcore.org/circleimage/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

func TestComputeLandscape(t *testing.T) {
	ft, err := Compute(ImageDimensions{200, 100}, ViewportSize{100, 100})
	require.NoError(t, err)
	assert.Equal(t, FitTransform{Scale: 1, TranslateX: -50, TranslateY: 0}, ft)
}

func TestComputePortrait(t *testing.T) {
	ft, err := Compute(ImageDimensions{100, 200}, ViewportSize{100, 100})
	require.NoError(t, err)
	assert.Equal(t, FitTransform{Scale: 1, TranslateX: 0, TranslateY: -50}, ft)
}

func TestComputeSquare(t *testing.T) {
	ft, err := Compute(ImageDimensions{50, 50}, ViewportSize{100, 100})
	require.NoError(t, err)
	assert.Equal(t, float32(2), ft.Scale)
	assert.Equal(t, float32(0), ft.TranslateX)
	assert.Equal(t, float32(0), ft.TranslateY)
}

func TestComputeBranches(t *testing.T) {
	viewports := []ViewportSize{{100, 100}, {64, 64}, {300, 300}, {120, 80}, {80, 120}}
	images := []ImageDimensions{{200, 100}, {1920, 1080}, {3, 2}, {100, 200}, {1080, 1920}, {7, 7}, {1, 1000}}
	for _, v := range viewports {
		for _, im := range images {
			ft, err := Compute(im, v)
			require.NoError(t, err)
			vw, vh := float32(v.Width), float32(v.Height)
			iw, ih := float32(im.Width), float32(im.Height)
			if im.Width > im.Height {
				assert.Equal(t, vw/ih, ft.Scale, "%v %v", im, v)
				assert.Equal(t, (vw-iw*ft.Scale)/2, ft.TranslateX, "%v %v", im, v)
				assert.Equal(t, float32(0), ft.TranslateY, "%v %v", im, v)
			} else {
				assert.Equal(t, vw/iw, ft.Scale, "%v %v", im, v)
				assert.Equal(t, float32(0), ft.TranslateX, "%v %v", im, v)
				assert.Equal(t, (vh-ih*ft.Scale)/2, ft.TranslateY, "%v %v", im, v)
			}
		}
	}
}

func TestComputeCoversSquareViewport(t *testing.T) {
	v := ViewportSize{90, 90}
	for _, im := range []ImageDimensions{{300, 200}, {200, 300}, {45, 45}, {1000, 3}} {
		ft, err := Compute(im, v)
		require.NoError(t, err)
		lo, hi := ft.Rect(im)
		assert.LessOrEqual(t, lo.X, float32(0), "%v", im)
		assert.LessOrEqual(t, lo.Y, float32(0), "%v", im)
		tolassert.Equal(t, 90, hi.X+lo.X, "centered x %v", im)
		tolassert.Equal(t, 90, hi.Y+lo.Y, "centered y %v", im)
		assert.GreaterOrEqual(t, hi.X, float32(90)-1e-3, "%v", im)
		assert.GreaterOrEqual(t, hi.Y, float32(90)-1e-3, "%v", im)
	}
}

func TestComputeIdempotent(t *testing.T) {
	a, err := Compute(ImageDimensions{1234, 567}, ViewportSize{321, 321})
	require.NoError(t, err)
	b, err := Compute(ImageDimensions{1234, 567}, ViewportSize{321, 321})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeInvalid(t *testing.T) {
	tests := []struct {
		img      ImageDimensions
		viewport ViewportSize
	}{
		{ImageDimensions{0, 100}, ViewportSize{100, 100}},
		{ImageDimensions{100, 0}, ViewportSize{100, 100}},
		{ImageDimensions{-5, 10}, ViewportSize{100, 100}},
		{ImageDimensions{10, -5}, ViewportSize{100, 100}},
		{ImageDimensions{0, 0}, ViewportSize{100, 100}},
		{ImageDimensions{100, 100}, ViewportSize{0, 100}},
		{ImageDimensions{100, 100}, ViewportSize{-1, 100}},
	}
	for _, tt := range tests {
		ft, err := Compute(tt.img, tt.viewport)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%v %v", tt.img, tt.viewport)
		assert.Equal(t, FitTransform{}, ft)
	}
}

func TestMatrix(t *testing.T) {
	ft := FitTransform{Scale: 0.5, TranslateX: -25, TranslateY: 10}
	m := ft.Matrix()
	assert.Equal(t, math32.Matrix2{XX: 0.5, YY: 0.5, X0: -25, Y0: 10}, m)
	p := math32.Vec2(100, 40)
	assert.Equal(t, ft.Apply(p), m.MulVector2AsPoint(p))
	assert.Equal(t, math32.Vec2(25, 30), ft.Apply(p))
	assert.Equal(t, "translate(-25,10) scale(0.5,0.5)", ft.String())

	assert.Equal(t, f64.Aff3{0.5, 0, -25, 0, 0.5, 10}, ft.Aff3())
}

func TestDimensionsOf(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 50, 40))
	assert.Equal(t, ImageDimensions{40, 20}, ImageDimensionsOf(img))
	assert.Equal(t, ViewportSize{40, 20}, ViewportOf(img.Bounds()))
	assert.Equal(t, math32.Vec2(40, 20), ViewportSize{40, 20}.Vector2())
}

func TestGeometry(t *testing.T) {
	v := ViewportSize{100, 120}
	assert.Equal(t, math32.Vec2(50, 60), Center(v))
	assert.Equal(t, float32(50), Radius(v))
	assert.Equal(t, float32(46), BorderRadius(v, 8))
	assert.Equal(t, float32(50), BorderRadius(v, 0))
}
