package impl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int64
		size  int
		want  int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{13, 6, 3},
		{1000, 10, 100},
		{1001, 10, 101},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, totalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, normalizePage(-4))
	assert.Equal(t, 1, normalizePage(0))
	assert.Equal(t, 3, normalizePage(3))
}

func TestPageOffset(t *testing.T) {
	offset, ok := pageOffset(1, 6)
	assert.True(t, ok)
	assert.Equal(t, 0, offset)

	offset, ok = pageOffset(3, 10)
	assert.True(t, ok)
	assert.Equal(t, 20, offset)

	_, ok = pageOffset(math.MaxInt, 6)
	assert.False(t, ok)

	_, ok = pageOffset(math.MaxInt/10+2, 10)
	assert.False(t, ok)
}
