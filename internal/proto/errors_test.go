package proto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicraftplus-server/internal/wire"
)

func TestMalformedError_Unwrap(t *testing.T) {
	inner := errors.New("bad number")
	err := malformed(TagMove, "garbage", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "Move")
	assert.Contains(t, err.Error(), "garbage")
}

func TestTagMismatchError_Message(t *testing.T) {
	err := &TagMismatchError{Want: TagLogin, Got: TagPing}
	assert.Contains(t, err.Error(), "Login")
	assert.Contains(t, err.Error(), "Ping")
}

func TestDecodeX_TagMismatchLeavesPacketNil(t *testing.T) {
	pkt, err := DecodePing(wire.RawPacket{Tag: uint16(TagLogin), Payload: "auto"})
	assert.Nil(t, pkt)
	var mismatch *TagMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, TagPing, mismatch.Want)
	assert.Equal(t, TagLogin, mismatch.Got)
}
