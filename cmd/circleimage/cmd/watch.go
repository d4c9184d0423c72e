// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/circleimage/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch renders in to out and then renders again every time in
// is written or replaced, until the context is canceled.
// Render errors after the first render are logged and watching continues,
// since editors often write files in several steps.
func Watch(ctx context.Context, cfg *Config, in, out string) error {
	v, err := cfg.NewView()
	if err != nil {
		return err
	}
	in, err = filepath.Abs(in)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// watch the directory so that files replaced by rename are still seen
	if err := w.Add(filepath.Dir(in)); err != nil {
		return err
	}
	if err := renderFile(v, in, out); err != nil {
		return err
	}
	slog.Info("watching", "file", in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != in || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("source changed", "event", ev)
			errors.Log(renderFile(v, in, out))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
