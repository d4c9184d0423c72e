// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command circleimage renders images center-cropped into circles.
package main

import (
	"os"

	"cogentcore.org/circleimage/cmd/circleimage/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
