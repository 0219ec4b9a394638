package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 10))
	assert.True(t, IsInRange(0, 10, 10))
	assert.False(t, IsInRange(0, 11, 10))
	assert.True(t, IsInRange(-0.5, 0.25, 0.5))
	assert.False(t, IsInRange(-0.5, math.NaN(), 0.5))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}
