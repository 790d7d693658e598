package lenient

import (
	"bytes"
	"io"
	"strings"

	"github.com/jacoelho/lenient/internal/decode"
)

// ParseError describes malformed JSON input.
type ParseError = decode.Error

// ErrMalformed matches every ParseError via errors.Is.
var ErrMalformed = decode.ErrMalformed

// Parse decodes a JSON document. Every object in it becomes a *Node.
func Parse(data []byte) (Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseString is Parse for string input.
func ParseString(s string) (Value, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader decodes exactly one JSON document from r.
func ParseReader(r io.Reader) (Value, error) {
	raw, err := decode.Decode(r, wrapObject)
	if err != nil {
		return Value{}, err
	}
	return FromAny(raw), nil
}

func wrapObject(pairs []decode.Pair) any {
	return WrapMapping(pairs)
}
