package proto

import (
	"fmt"

	"minicraftplus-server/internal/wire"
)

// TagMismatchError is raised when a RawPacket is decoded against a variant
// whose declared tag does not match.
type TagMismatchError struct {
	Want Tag
	Got  Tag
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("proto: tag mismatch: want %s (0x%02X), got %s (0x%02X)", e.Want, uint16(e.Want), e.Got, uint16(e.Got))
}

// checkTag verifies raw carries the tag a per-variant decoder expects,
// before that decoder looks at the payload at all. Every DecodeX function
// calls this first, so a mismatched tag returns TagMismatchError without
// touching any other state.
func checkTag(raw wire.RawPacket, want Tag) error {
	if got := Tag(raw.Tag); got != want {
		return &TagMismatchError{Want: want, Got: got}
	}
	return nil
}

// MalformedError is raised when a payload does not match its variant's
// grammar (wrong separator count, non-numeric where a number is expected).
// Raw carries the offending payload text for logging.
type MalformedError struct {
	Tag Tag
	Raw string
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("proto: malformed %s payload %q: %v", e.Tag, e.Raw, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

func malformed(tag Tag, raw string, err error) error {
	return &MalformedError{Tag: tag, Raw: raw, Err: err}
}
