// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/circleimage/base/iox/imagex"
	"cogentcore.org/circleimage/circleview"
)

// errNothingDrawn is returned when the view has no valid fit to draw.
var errNothingDrawn = errors.New("nothing to draw")

// Render renders the image file in to the image file out
// using the given config.
func Render(cfg *Config, in, out string) error {
	v, err := cfg.NewView()
	if err != nil {
		return err
	}
	return renderFile(v, in, out)
}

// renderFile loads in into the view and saves the result to out.
func renderFile(v *circleview.View, in, out string) error {
	img, f, err := imagex.Open(in)
	if err != nil {
		return err
	}
	if err := v.OnImageChanged(img); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	res := v.RenderImage()
	if res == nil {
		return fmt.Errorf("%s: %w", in, errNothingDrawn)
	}
	if err := imagex.Save(res, out); err != nil {
		return err
	}
	slog.Info("rendered", "in", in, "format", f, "size", img.Bounds().Size(), "out", out)
	return nil
}
