package model

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
)

// Version is the three-component major.minor.patch triple sent during
// login. A trailing "-suffix" is accepted on decode and dropped; it is
// never reproduced on encode.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// DefaultVersion is the protocol version assumed when none is supplied.
var DefaultVersion = Version{Major: 2, Minor: 0, Patch: 6}

// ParseVersion parses a "major.minor.patch" or "major.minor.patch-suffix"
// string using a semver parser, ignoring any pre-release/build
// suffix.
func ParseVersion(raw string) (Version, error) {
	// semver.Parse requires a full three-component version; strip anything
	// past the first '-' or '+' ourselves so odd suffixes never trip it up,
	// then hand the bare major.minor.patch to the library.
	bare := raw
	if i := strings.IndexAny(raw, "-+"); i >= 0 {
		bare = raw[:i]
	}

	parsed, err := semver.Parse(bare)
	if err != nil {
		return Version{}, fmt.Errorf("model: invalid version %q: %w", raw, err)
	}

	return Version{Major: parsed.Major, Minor: parsed.Minor, Patch: parsed.Patch}, nil
}

// String renders "major.minor.patch" with no suffix, matching the wire
// grammar used by LoginPacket.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
