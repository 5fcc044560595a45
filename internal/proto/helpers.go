package proto

import (
	"strconv"
	"strings"
)

// splitExact splits s on sep and requires exactly n fields, matching the
// "wrong separator count" malformed-payload case from the error design.
func splitExact(tag Tag, s string, sep string, n int) ([]string, error) {
	fields := strings.Split(s, sep)
	if len(fields) != n {
		return nil, malformed(tag, s, strconv.ErrSyntax)
	}
	return fields, nil
}

func parseInt32(tag Tag, raw, field string) (int32, error) {
	v, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, malformed(tag, raw, err)
	}
	return int32(v), nil
}

func parseInt16(tag Tag, raw, field string) (int16, error) {
	v, err := strconv.ParseInt(field, 10, 16)
	if err != nil {
		return 0, malformed(tag, raw, err)
	}
	return int16(v), nil
}

func parseUint32(tag Tag, raw, field string) (uint32, error) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, malformed(tag, raw, err)
	}
	return uint32(v), nil
}

func parseBool(tag Tag, raw, field string) (bool, error) {
	switch field {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, malformed(tag, raw, strconv.ErrSyntax)
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
