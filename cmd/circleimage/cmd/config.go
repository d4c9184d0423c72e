// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the circleimage command line tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/circleimage/base/fsx"
	"cogentcore.org/circleimage/base/iox/tomlx"
	"cogentcore.org/circleimage/circlefit"
	"cogentcore.org/circleimage/circleview"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/draw"
)

// ConfigFile is the name of the config file looked up
// when no config file is given explicitly.
const ConfigFile = "circleimage.toml"

// Config is the configuration for rendering.
type Config struct {

	// Size is the width and height of the output image in pixels.
	Size int `toml:"size"`

	// Pressed renders the press overlay.
	Pressed bool `toml:"pressed"`

	// Sampler is the interpolation used when scaling the source:
	// nearest, approx-bilinear, bilinear, or catmull-rom.
	Sampler string `toml:"sampler"`

	// Style is the border and overlay style.
	Style circleview.StyleConfig `toml:"style"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Size:    256,
		Sampler: "bilinear",
		Style: circleview.StyleConfig{
			BorderColor: "black",
			PressColor:  "#45000000",
		},
	}
}

// ConfigPaths returns the directories searched for [ConfigFile]:
// the user config directory and then the current directory,
// so that a local file overrides the user one.
func ConfigPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "circleimage"))
	}
	return append(paths, ".")
}

// LoadConfig returns the default config updated from the given
// config file, or from any [ConfigFile] on [ConfigPaths] if file is empty.
// A leading ~ in file is expanded to the home directory.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()
	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		if err := tomlx.Open(cfg, path); err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}
	if err := tomlx.OpenFiles(cfg, fsx.FindFilesOnPaths(ConfigPaths(), ConfigFile)...); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if the config cannot be used for rendering.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("invalid size %d: must be positive", c.Size)
	}
	if _, err := c.Interpolator(); err != nil {
		return err
	}
	var st circleview.Style
	return st.SetFromConfig(c.Style)
}

// Interpolator returns the interpolator named by [Config.Sampler].
func (c *Config) Interpolator() (draw.Interpolator, error) {
	switch strings.ToLower(c.Sampler) {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "approx-bilinear":
		return draw.ApproxBiLinear, nil
	case "", "bilinear":
		return draw.BiLinear, nil
	case "catmull-rom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("unknown sampler %q", c.Sampler)
}

// NewView returns a view set up from the config, sized
// to [Config.Size] but without an image.
func (c *Config) NewView() (*circleview.View, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	v := circleview.New()
	if err := v.Style.SetFromConfig(c.Style); err != nil {
		return nil, err
	}
	v.Interpolator, _ = c.Interpolator()
	v.OnPressStateChanged(c.Pressed)
	if err := v.OnResize(circlefit.ViewportSize{Width: c.Size, Height: c.Size}); err != nil {
		return nil, err
	}
	return v, nil
}
