package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_RawRoundTrip(t *testing.T) {
	c := Color{Alpha: 0xFF, Red: 0x12, Green: 0x34, Blue: 0x56}
	got := NewColorFromRaw(c.Raw())
	assert.Equal(t, c, got)
}

func TestColor_RawPacking(t *testing.T) {
	c := Color{Alpha: 0x00, Red: 0xAA, Green: 0xBB, Blue: 0xCC}
	assert.Equal(t, int32(0x00AABBCC), c.Raw())
}
