// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"cogentcore.org/circleimage/circlefit"
	"cogentcore.org/circleimage/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flags struct {
	config      string
	size        int
	pressed     bool
	sampler     string
	borderWidth float32
	borderColor string
	pressColor  string
	vv, v, q    bool
}

// Root returns the root circleimage command with all subcommands.
func Root() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "circleimage",
		Short:        "Render images center-cropped into circles",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(f.vv, f.v, f.q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&f.vv, "vv", false, "log debug messages")
	pf.BoolVarP(&f.v, "verbose", "v", false, "log informational messages")
	pf.BoolVarP(&f.q, "quiet", "q", false, "only log errors")

	root.AddCommand(renderCmd(f), watchCmd(f), transformCmd())
	return root
}

func addRenderFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file (default: "+ConfigFile+" in the user config dir and current dir)")
	fs.IntVarP(&f.size, "size", "s", 0, "output width and height in pixels")
	fs.BoolVar(&f.pressed, "pressed", false, "draw the press overlay")
	fs.StringVar(&f.sampler, "sampler", "", "nearest, approx-bilinear, bilinear, or catmull-rom")
	fs.Float32Var(&f.borderWidth, "border-width", 0, "border stroke width in pixels")
	fs.StringVar(&f.borderColor, "border-color", "", "border color (name or #[AA]RRGGBB)")
	fs.StringVar(&f.pressColor, "press-color", "", "press overlay color (name or #[AA]RRGGBB)")
}

// loadConfig loads the config file and applies any flags that were set.
func (f *flags) loadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg, err := LoadConfig(f.config)
	if err != nil {
		return nil, err
	}
	if fs.Changed("size") {
		cfg.Size = f.size
	}
	if fs.Changed("pressed") {
		cfg.Pressed = f.pressed
	}
	if fs.Changed("sampler") {
		cfg.Sampler = f.sampler
	}
	if fs.Changed("border-width") {
		cfg.Style.BorderWidth = f.borderWidth
	}
	if fs.Changed("border-color") {
		cfg.Style.BorderColor = f.borderColor
	}
	if fs.Changed("press-color") {
		cfg.Style.PressColor = f.pressColor
	}
	return cfg, cfg.Validate()
}

func renderCmd(f *flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "render <input> <output>",
		Short: "Render an image file into a circular image file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return Render(cfg, args[0], args[1])
		},
	}
	addRenderFlags(c.Flags(), f)
	return c
}

func watchCmd(f *flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "watch <input> <output>",
		Short: "Render again every time the input file changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return Watch(ctx, cfg, args[0], args[1])
		},
	}
	addRenderFlags(c.Flags(), f)
	return c
}

func transformCmd() *cobra.Command {
	var size int
	c := &cobra.Command{
		Use:   "transform <width> <height>",
		Short: "Print the fit transform for an image of the given size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid width: %w", err)
			}
			h, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid height: %w", err)
			}
			vp := circlefit.ViewportSize{Width: size, Height: size}
			ft, err := circlefit.Compute(circlefit.ImageDimensions{Width: w, Height: h}, vp)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scale: %g\ntranslate: %g %g\nmatrix: %s\n", ft.Scale, ft.TranslateX, ft.TranslateY, ft.Matrix())
			fmt.Fprintf(out, "radius: %g\n", circlefit.Radius(vp))
			return nil
		},
	}
	c.Flags().IntVarP(&size, "size", "s", 256, "viewport width and height in pixels")
	return c
}
