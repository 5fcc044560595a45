package wire

import (
	"encoding/binary"
	"io"
)

// maxPrefixedStringLen bounds the length-prefixed string codec against
// pathological length fields; the protocol never sends payload strings
// anywhere near this size.
const maxPrefixedStringLen = 1 << 20

// WriteString writes a length-prefixed string: an unsigned 64-bit
// little-endian length followed by the raw bytes. This is the helper codec
// used inside payloads when a field needs explicit length-prefixing rather
// than NUL-termination; it must never be mixed with the legacy NUL-
// terminated string used for whole frames.
func WriteString(w io.Writer, s string) error {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(s)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadString reads a length-prefixed string written by WriteString.
func ReadString(r io.Reader) (string, error) {
	var lenBuf [8]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	length := binary.LittleEndian.Uint64(lenBuf[:])
	if length > maxPrefixedStringLen {
		return "", ErrStringTooLong
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteUint32 / ReadUint32 and friends serialize fixed-width numbers
// little-endian, matching the sender's declared type width.

func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func WriteInt32(w io.Writer, v int32) error {
	return WriteUint32(w, uint32(v))
}

func ReadInt32(r io.Reader) (int32, error) {
	v, err := ReadUint32(r)
	return int32(v), err
}

func WriteUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
