// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default structured logger
// and the user verbosity level.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through command line flags to the end user's preference.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to a text logger on stderr
// at [UserLevel], with level names colored when the terminal supports it.
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr, UserLevel, termenv.EnvColorProfile()))
}

// NewLogger returns a text logger writing to w at the given level,
// coloring level names with the given color profile.
func NewLogger(w io.Writer, level slog.Level, profile termenv.Profile) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(termenv.String(lvl.String()).Foreground(profile.Color(levelColor(lvl))).String())
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func levelColor(lvl slog.Level) string {
	switch {
	case lvl >= slog.LevelError:
		return "#FF5555"
	case lvl >= slog.LevelWarn:
		return "#FFAA00"
	case lvl >= slog.LevelInfo:
		return "#55AAFF"
	default:
		return "#AAAAAA"
	}
}
