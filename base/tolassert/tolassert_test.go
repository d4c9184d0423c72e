// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(t, float32(0.45), float32(0.4502)))
	assert.True(t, Equal(t, 90.0, 90.0009))

	mt := &mockT{}
	assert.False(t, Equal(mt, 1.0, 1.01))
	assert.True(t, mt.failed)
}

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, float32(1), float32(1.05), 0.1))

	mt := &mockT{}
	assert.False(t, EqualTol(mt, float32(1), float32(1.05), 0.01))
	assert.True(t, mt.failed)
}
