package lenient

import (
	"strconv"
	"strings"
)

// ParseKeys splits a dotted path such as "a.b.0.c" into keys. Segments made
// only of ASCII digits become positions; everything else is a field name.
// An empty path yields no keys.
func ParseKeys(path string) []Key {
	if path == "" {
		return nil
	}

	segments := strings.Split(path, ".")
	keys := make([]Key, len(segments))
	for i, segment := range segments {
		keys[i] = parseSegment(segment)
	}
	return keys
}

func parseSegment(segment string) Key {
	if segment == "" || strings.TrimLeft(segment, "0123456789") != "" {
		return Name(segment)
	}

	pos, err := strconv.Atoi(segment)
	if err != nil {
		return Name(segment)
	}
	return Index(pos)
}
