// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circleview

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/circleimage/base/errors"
	"golang.org/x/image/colornames"
)

// Style contains the paint properties of a [View].
type Style struct {

	// BorderWidth is the width of the border stroke in pixels.
	// No border is drawn when it is zero.
	BorderWidth float32

	// BorderColor is the color of the border stroke.
	BorderColor color.RGBA

	// PressColor is filled over the circle while it is pressed.
	// It should be translucent.
	PressColor color.RGBA
}

// DefaultStyle returns the default style: no border,
// a black border color, and a light darkening on press.
func DefaultStyle() Style {
	return Style{
		BorderWidth: 0,
		BorderColor: color.RGBA{0, 0, 0, 255},
		PressColor:  color.RGBA{0, 0, 0, 0x45},
	}
}

// StyleConfig is the textual form of a [Style], as stored in config files.
// Empty color fields leave the corresponding color unchanged;
// BorderWidth is always applied, so zero turns the border off.
type StyleConfig struct {
	BorderWidth float32 `toml:"border_width"`
	BorderColor string  `toml:"border_color"`
	PressColor  string  `toml:"press_color"`
}

// SetFromConfig sets the style from the given config,
// returning any errors parsing colors.
func (s *Style) SetFromConfig(cfg StyleConfig) error {
	if cfg.BorderWidth < 0 {
		return fmt.Errorf("circleview: negative border width %g", cfg.BorderWidth)
	}
	s.BorderWidth = cfg.BorderWidth
	var errs []error
	if cfg.BorderColor != "" {
		c, err := ParseColor(cfg.BorderColor)
		if err == nil {
			s.BorderColor = c
		}
		errs = append(errs, err)
	}
	if cfg.PressColor != "" {
		c, err := ParseColor(cfg.PressColor)
		if err == nil {
			s.PressColor = c
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseColor returns the color for the given string, which can be
// a CSS color name, "transparent", or a hex value of the form
// #RGB, #ARGB, #RRGGBB, or #AARRGGBB (alpha first).
func ParseColor(s string) (color.RGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "transparent" || str == "none" {
		return color.RGBA{}, nil
	}
	if !strings.HasPrefix(str, "#") {
		c, ok := colornames.Map[str]
		if !ok {
			return color.RGBA{}, fmt.Errorf("circleview.ParseColor: unknown color name %q", s)
		}
		return c, nil
	}
	hex := str[1:]
	if len(hex) == 3 || len(hex) == 4 {
		b := make([]byte, 0, 2*len(hex))
		for i := 0; i < len(hex); i++ {
			b = append(b, hex[i], hex[i])
		}
		hex = string(b)
	}
	if len(hex) == 6 {
		hex = "ff" + hex
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("circleview.ParseColor: could not process %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("circleview.ParseColor: could not process %q: %w", s, err)
	}
	nc := color.NRGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	return color.RGBAModel.Convert(nc).(color.RGBA), nil
}
