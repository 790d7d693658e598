// Package decode turns JSON text into a tree of raw Go values while keeping
// object keys in document order.
//
// Objects are collected as ordered key/value pairs and handed to a MappingFunc
// once all of their members are decoded, so nested objects reach the hook
// before their parents do. Arrays decode to []any and are never passed to the
// hook. Numbers decode to json.Number.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/jacoelho/lenient/internal/stack"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// Pair is a single object member in document order.
type Pair struct {
	Key   string
	Value any
}

// MappingFunc replaces a decoded object with the value it returns.
type MappingFunc func(pairs []Pair) any

// frame tracks the container currently being filled.
type frame struct {
	object  bool
	haveKey bool
	key     string
	pairs   []Pair
	items   []any
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, hook MappingFunc) (any, error) {
	return Decode(bytes.NewReader(data), hook)
}

// Decode reads exactly one JSON value from r. A nil hook leaves objects as []Pair.
func Decode(r io.Reader, hook MappingFunc) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	root, err := decodeValue(dec, hook)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, &Error{Offset: dec.InputOffset(), Err: err}
	}

	return root, nil
}

func decodeValue(dec *json.Decoder, hook MappingFunc) (any, error) {
	frames := stack.New[*frame]()

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, &Error{Offset: dec.InputOffset(), Err: err}
		}

		var value any
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				frames.Push(&frame{object: true})
				continue
			case '[':
				frames.Push(&frame{items: make([]any, 0)})
				continue
			}

			done, _ := frames.Pop()
			if done.object {
				value = finishObject(done.pairs, hook)
			} else {
				value = done.items
			}
		case string:
			if top, ok := frames.Peek(); ok && top.object && !top.haveKey {
				top.key = t
				top.haveKey = true
				continue
			}
			value = t
		default:
			value = tok
		}

		top, ok := frames.Peek()
		if !ok {
			return value, nil
		}
		if top.object {
			top.pairs = append(top.pairs, Pair{Key: top.key, Value: value})
			top.haveKey = false
		} else {
			top.items = append(top.items, value)
		}
	}
}

func finishObject(pairs []Pair, hook MappingFunc) any {
	if pairs == nil {
		pairs = []Pair{}
	}
	if hook == nil {
		return pairs
	}

	return hook(pairs)
}
