package lenient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// String renders n in insertion order, e.g. {"c": "d", 0: "i"}. An empty
// Node renders as the empty string.
func (n *Node) String() string {
	if n.IsEmpty() {
		return ""
	}

	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// String renders v. Empty values, including JSON null, render as the empty
// string; a string scalar renders unquoted.
func (v Value) String() string {
	if v.IsEmpty() {
		return ""
	}

	switch v.kind {
	case MappingKind:
		return v.node.String()
	case SequenceKind:
		var b strings.Builder
		writeValue(&b, v)
		return b.String()
	default:
		if s, ok := v.scalar.(string); ok {
			return s
		}
		return formatScalar(v.scalar)
	}
}

func writeNode(b *strings.Builder, n *Node) {
	b.WriteByte('{')
	for i := range n.Len() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n.keys[i].quoted())
		b.WriteString(": ")
		writeValue(b, n.values[i])
	}
	b.WriteByte('}')
}

func writeValue(b *strings.Builder, v Value) {
	switch v.kind {
	case MappingKind:
		writeNode(b, v.node)
	case SequenceKind:
		b.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, item)
		}
		b.WriteByte(']')
	default:
		if s, ok := v.scalar.(string); ok {
			b.WriteString(strconv.Quote(s))
			return
		}
		b.WriteString(formatScalar(v.scalar))
	}
}

func formatScalar(s any) string {
	switch t := s.(type) {
	case nil:
		return "null"
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Interface unwraps v into plain Go data: map[string]any for mappings, []any
// for sequences and list views, and the scalar itself otherwise.
func (v Value) Interface() any {
	switch v.kind {
	case MappingKind:
		return v.node.Interface()
	case SequenceKind:
		return interfaceList(v.seq)
	default:
		return v.scalar
	}
}

// Interface unwraps n into plain Go data; see Value.Interface.
func (n *Node) Interface() any {
	if n.IsListView() {
		return interfaceList(n.list)
	}

	out := make(map[string]any, n.Len())
	for i := range n.Len() {
		out[n.keys[i].String()] = n.values[i].Interface()
	}
	return out
}

func interfaceList(items []Value) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item.Interface()
	}
	return out
}

// MarshalJSON encodes a list view as its original array and any other Node
// as an object in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsListView() {
		return json.Marshal(n.list)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range n.Len() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n.keys[i].String())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(n.values[i])
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", n.keys[i], err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case MappingKind:
		return v.node.MarshalJSON()
	case SequenceKind:
		if v.seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.seq)
	default:
		return json.Marshal(v.scalar)
	}
}

// MarshalYAML keeps insertion order by emitting a yaml.MapSlice.
func (n *Node) MarshalYAML() (any, error) {
	if n.IsListView() {
		return n.list, nil
	}

	out := make(yaml.MapSlice, 0, n.Len())
	for i := range n.Len() {
		var key any = n.keys[i].name
		if pos, ok := n.keys[i].Position(); ok {
			key = pos
		}
		out = append(out, yaml.MapItem{Key: key, Value: n.values[i]})
	}
	return out, nil
}

func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case MappingKind:
		return v.node.MarshalYAML()
	case SequenceKind:
		if v.seq == nil {
			return []Value{}, nil
		}
		return v.seq, nil
	default:
		if num, ok := v.scalar.(json.Number); ok {
			return yamlNumber(num), nil
		}
		return v.scalar, nil
	}
}

// yamlNumber keeps numbers unquoted in YAML output.
func yamlNumber(num json.Number) any {
	if i, err := num.Int64(); err == nil {
		return i
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num.String()
}
