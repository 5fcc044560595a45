package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadString_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "abc"))

	got, err := ReadString(&buf)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestWriteReadUint32_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUint32(&buf, 0xDEADBEEF))

	got, err := ReadUint32(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), got)
}

func TestWriteReadInt32_NegativeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInt32(&buf, -12345))

	got, err := ReadInt32(&buf)
	require.NoError(t, err)
	assert.Equal(t, int32(-12345), got)
}

func TestReadString_TooLong(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUint64(&buf, maxPrefixedStringLen+1))
	_, err := ReadString(&buf)
	assert.ErrorIs(t, err, ErrStringTooLong)
}
