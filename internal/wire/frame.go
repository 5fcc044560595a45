// Package wire implements the Minicraft+ frame codec: one tag byte followed
// by a NUL-terminated payload string, read and written over an ordered,
// reliable byte stream.
package wire

import (
	"bufio"
	"errors"
	"io"
)

// RawPacket is the untyped (tag, payload-string) tuple produced by the frame
// codec. The tag fits in a single byte on the wire but is kept as a wider
// type internally so decoders never have to special-case a 16-bit id space.
type RawPacket struct {
	Tag     uint16
	Payload string
}

// FrameError marks a fatal framing failure: a short read or EOF while a
// frame was only partially received. No partial frame is ever delivered to
// upper layers.
type FrameError struct {
	Err error
}

func (e *FrameError) Error() string {
	return "wire: frame error: " + e.Err.Error()
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// ReadFrame reads exactly one RawPacket: a tag byte followed by a legacy
// string (zero or more non-NUL bytes terminated by a single NUL byte, not
// included in the returned payload).
func ReadFrame(r *bufio.Reader) (RawPacket, error) {
	tagByte, err := r.ReadByte()
	if err != nil {
		// Nothing of this frame has arrived yet: report the transport error
		// (io.EOF on a clean close) as is, not as a FrameError.
		return RawPacket{}, err
	}

	payload, err := readLegacyString(r)
	if err != nil {
		return RawPacket{}, &FrameError{Err: err}
	}

	return RawPacket{Tag: uint16(tagByte), Payload: payload}, nil
}

// WriteFrame writes one RawPacket: the tag's low byte followed by the
// payload and a terminating NUL.
func WriteFrame(w io.Writer, pkt RawPacket) error {
	if _, err := w.Write([]byte{byte(pkt.Tag)}); err != nil {
		return &FrameError{Err: err}
	}
	if err := writeLegacyString(w, pkt.Payload); err != nil {
		return &FrameError{Err: err}
	}
	return nil
}

func readLegacyString(r *bufio.Reader) (string, error) {
	data, err := r.ReadBytes(0)
	if err != nil {
		return "", err
	}
	// strip the terminating NUL
	return string(data[:len(data)-1]), nil
}

func writeLegacyString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}

// ErrStringTooLong guards the length-prefixed string codec against
// unreasonable allocations driven by a corrupt or hostile length field.
var ErrStringTooLong = errors.New("wire: length-prefixed string too long")
