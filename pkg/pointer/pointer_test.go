// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/casting/pkg/pointer"
)

func TestTo_CopiesValue(t *testing.T) {
	height := 180
	p := pointer.To(height)
	height = 0

	assert.Equal(t, 180, *p)
}

func TestVal(t *testing.T) {
	assert.Equal(t, "", pointer.Val[string](nil))
	assert.Equal(t, "brown", pointer.Val(pointer.To("brown")))
}

func TestFallback(t *testing.T) {
	assert.Equal(t, int64(0), pointer.Fallback[int64](nil, 0))
	assert.Equal(t, int64(7), pointer.Fallback(pointer.To(int64(7)), 0))
}
