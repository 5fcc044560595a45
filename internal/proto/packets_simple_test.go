package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicraftplus-server/internal/model"
)

func TestInvalidPacket_RoundTrip(t *testing.T) {
	p := InvalidPacket{Message: "Many bad packets"}
	raw := EncodeRaw(p)
	assert.Equal(t, uint16(TagInvalid), raw.Tag)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPingPacket_RoundTrip(t *testing.T) {
	for _, mode := range []PingMode{PingAuto, PingManual} {
		p := PingPacket{Mode: mode}
		got, err := Decode(EncodeRaw(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestPingPacket_UnknownModeIsMalformed(t *testing.T) {
	_, err := DecodePing(EncodeRaw(PingPacket{Mode: "bogus"}))
	assert.Error(t, err)
}

func TestLoginPacket_RoundTrip(t *testing.T) {
	p := LoginPacket{Username: "Notch", Version: model.DefaultVersion}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestNoPayloadPackets_RoundTrip(t *testing.T) {
	cases := []Packet{
		DisconnectPacket{},
		SavePacket{},
		DiePacket{},
		RespawnPacket{},
	}
	for _, p := range cases {
		got, err := Decode(EncodeRaw(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}
