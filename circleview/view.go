// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circleview provides a framework-agnostic circular image view:
// a host surface reports size, image and press changes, and the view
// draws the image clipped to a circle with an optional border and a
// press overlay.
package circleview

import (
	"image"
	"log/slog"

	"cogentcore.org/circleimage/base/errors"
	"cogentcore.org/circleimage/base/iox/imagex"
	"cogentcore.org/circleimage/circlefit"
	"cogentcore.org/circleimage/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Surface is implemented by views that a host drives with
// layout, content and input changes.
type Surface interface {
	OnResize(viewport circlefit.ViewportSize) error
	OnImageChanged(img image.Image) error
	OnPressStateChanged(pressed bool)
}

// State is the input state of a [View] that affects drawing.
type State struct {

	// OverlayActive is whether the press overlay is drawn.
	OverlayActive bool
}

// View draws an image center-cropped into a circle.
// It is not safe for concurrent use; all methods should be
// called from the thread that handles layout and drawing.
type View struct {
	Style Style

	// Interpolator samples the image when it is scaled.
	Interpolator draw.Interpolator

	State State

	viewport circlefit.ViewportSize
	img      *image.RGBA
	fit      circlefit.FitTransform
	fitValid bool
}

var _ Surface = (*View)(nil)

// New returns a new view with [DefaultStyle] and bilinear sampling.
func New() *View {
	return &View{
		Style:        DefaultStyle(),
		Interpolator: draw.BiLinear,
	}
}

// OnResize sets the viewport size and recomputes the fit.
func (v *View) OnResize(viewport circlefit.ViewportSize) error {
	v.viewport = viewport
	return v.update()
}

// OnImageChanged sets the image and recomputes the fit.
// A nil image clears the view.
func (v *View) OnImageChanged(img image.Image) error {
	rgba := imagex.AsRGBA(img)
	if rgba != nil && rgba.Bounds().Min != (image.Point{}) {
		b := rgba.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	v.img = rgba
	return v.update()
}

// OnPressStateChanged turns the press overlay on or off.
func (v *View) OnPressStateChanged(pressed bool) {
	v.State.OverlayActive = pressed
}

// Viewport returns the current viewport size.
func (v *View) Viewport() circlefit.ViewportSize {
	return v.viewport
}

// Fit returns the current fit transform and whether it is valid.
// It is only valid once both an image and a viewport are set
// and their dimensions are usable.
func (v *View) Fit() (circlefit.FitTransform, bool) {
	return v.fit, v.fitValid
}

// update recomputes the fit after the image or viewport changed.
// Until both are known there is nothing to fit, which is not an error.
func (v *View) update() error {
	v.fit, v.fitValid = circlefit.FitTransform{}, false
	if v.img == nil || v.viewport == (circlefit.ViewportSize{}) {
		return nil
	}
	ft, err := circlefit.Compute(circlefit.ImageDimensionsOf(v.img), v.viewport)
	if err != nil {
		return errors.Log(err)
	}
	v.fit, v.fitValid = ft, true
	slog.Debug("circleview: fit updated", "viewport", v.viewport, "image", v.img.Bounds().Size(), "fit", ft)
	return nil
}

// Render draws the view into dst with the viewport placed at dst's
// minimum point. It does nothing and returns false when there is
// no valid fit, for example before an image is set.
func (v *View) Render(dst draw.Image) bool {
	if !v.drawable() {
		return false
	}
	vr := image.Rectangle{Max: image.Pt(v.viewport.Width, v.viewport.Height)}
	r := vr.Add(dst.Bounds().Min)
	center := circlefit.Center(v.viewport)

	scaled := image.NewRGBA(vr)
	src, s2d := v.source()
	v.interpolator().Transform(scaled, s2d, src, src.Bounds(), draw.Src, nil)
	draw.DrawMask(dst, r, scaled, image.Point{}, discMask(vr, center, circlefit.Radius(v.viewport)), image.Point{}, draw.Over)

	if bw := v.Style.BorderWidth; bw > 0 {
		br := circlefit.BorderRadius(v.viewport, bw)
		ring := &ringMask{bounds: vr, center: center, inner: br - bw/2, outer: br + bw/2}
		draw.DrawMask(dst, r, image.NewUniform(v.Style.BorderColor), image.Point{}, ring, image.Point{}, draw.Over)
	}
	if v.State.OverlayActive {
		draw.DrawMask(dst, r, image.NewUniform(v.Style.PressColor), image.Point{}, discMask(vr, center, circlefit.Radius(v.viewport)), image.Point{}, draw.Over)
	}
	return true
}

// source returns the image to sample and its transform into the viewport.
// The image always has a zero origin. When the fitted image does not reach
// every edge of the viewport, it is extended by clamping so that its edge
// pixels fill the rest.
func (v *View) source() (image.Image, f64.Aff3) {
	const eps = 1e-3
	s2d := v.fit.Aff3()
	ib := v.img.Bounds()
	inv := v.fit.Matrix().Inverse()
	lo := inv.MulVector2AsPoint(math32.Vec2(0, 0))
	hi := inv.MulVector2AsPoint(v.viewport.Vector2())
	need := image.Rect(int(math32.Floor(lo.X+eps)), int(math32.Floor(lo.Y+eps)), int(math32.Ceil(hi.X-eps)), int(math32.Ceil(hi.Y-eps)))
	if need.In(ib) {
		return v.img, s2d
	}
	ext := need.Union(ib)
	s2d[2] += s2d[0] * float64(ext.Min.X)
	s2d[5] += s2d[4] * float64(ext.Min.Y)
	return &clampImage{src: v.img, off: ext.Min, bounds: ext.Sub(ext.Min)}, s2d
}

// RenderImage renders the view into a new transparent image
// of the viewport size. It returns nil when there is nothing to draw.
func (v *View) RenderImage() *image.RGBA {
	if !v.drawable() {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, v.viewport.Width, v.viewport.Height))
	v.Render(img)
	return img
}

// drawable returns whether there is a valid fit and a non-empty viewport.
func (v *View) drawable() bool {
	return v.fitValid && v.viewport.Height > 0
}

func (v *View) interpolator() draw.Interpolator {
	if v.Interpolator == nil {
		return draw.BiLinear
	}
	return v.Interpolator
}
