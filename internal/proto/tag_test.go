package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minicraftplus-server/internal/wire"
)

func TestTag_String_KnownTags(t *testing.T) {
	assert.Equal(t, "Login", TagLogin.String())
	assert.Equal(t, "StopFishing", TagStopFishing.String())
}

func TestTag_String_UnknownTag(t *testing.T) {
	assert.Equal(t, "Unknown", Tag(0xFF).String())
}

func TestDecode_UnknownTagIsNilNil(t *testing.T) {
	pkt, err := Decode(wire.RawPacket{Tag: 0xFF})
	assert.NoError(t, err)
	assert.Nil(t, pkt)
}
