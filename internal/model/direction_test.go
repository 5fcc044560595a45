package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDirection_Identity(t *testing.T) {
	for _, d := range []Direction{DirectionNone, DirectionDown, DirectionUp, DirectionLeft, DirectionRight} {
		assert.Equal(t, d, AddDirection(d, DirectionNone))
	}
}

func TestAddSubDirection_RoundTrip(t *testing.T) {
	for _, d := range []Direction{DirectionNone, DirectionDown, DirectionUp, DirectionLeft, DirectionRight} {
		for _, e := range []Direction{DirectionNone, DirectionDown, DirectionUp, DirectionLeft, DirectionRight} {
			got := SubDirection(AddDirection(d, e), e)
			assert.Equal(t, d, got)
		}
	}
}

func TestNormalizeDirection_Negative(t *testing.T) {
	assert.Equal(t, DirectionRight, normalizeDirection(-1))
}
