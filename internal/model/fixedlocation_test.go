package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpackAxis_RoundTrip(t *testing.T) {
	cases := []struct {
		whole int32
		frac  uint8
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{fixedWholeMax, 15},
		{fixedWholeMin, 0},
		{16, 0},
	}
	for _, c := range cases {
		packed := PackAxis(c.whole, c.frac)
		whole, frac := UnpackAxis(packed)
		assert.Equal(t, c.whole, whole)
		assert.Equal(t, c.frac, frac)
	}
}

func TestFixedLocation_Add_NoCarry(t *testing.T) {
	a := NewFixedLocation(1, 10, 2, 5)
	b := NewFixedLocation(1, 10, 0, 0)
	sum := a.Add(b)

	assert.Equal(t, int32(2), sum.WholeX)
	assert.Equal(t, uint8(20), sum.FracX) // no carry: 10+10 stays 20, not normalized
	assert.Equal(t, int32(2), sum.WholeY)
	assert.Equal(t, uint8(5), sum.FracY)
}

func TestFixedLocationFromPacked_MatchesMoveScenario(t *testing.T) {
	// Move packet payload "16;32;..." packs whole_x=1,frac_x=0, whole_y=2,frac_y=0
	loc := FixedLocationFromPacked(16, 32)
	assert.Equal(t, int32(1), loc.WholeX)
	assert.Equal(t, uint8(0), loc.FracX)
	assert.Equal(t, int32(2), loc.WholeY)
	assert.Equal(t, uint8(0), loc.FracY)
}
