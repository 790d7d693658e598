package lenient

import (
	"errors"
	"slices"
	"sort"

	"github.com/jacoelho/lenient/internal/number"
)

// ErrNotSequence is returned when a list view is requested for a value that
// is not a sequence.
var ErrNotSequence = errors.New("lenient: value is not a sequence")

// Kind tags the shape of a Value.
type Kind uint8

const (
	// MappingKind values hold a *Node. The zero Value is an empty mapping.
	MappingKind Kind = iota
	// SequenceKind values hold raw elements that have not been viewed yet.
	SequenceKind
	// ScalarKind values hold a string, json.Number, bool or nil.
	ScalarKind
)

func (k Kind) String() string {
	switch k {
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	case ScalarKind:
		return "scalar"
	default:
		return "unknown"
	}
}

// Value is a decoded JSON value: a mapping, a sequence or a scalar.
type Value struct {
	kind   Kind
	node   *Node
	seq    []Value
	scalar any
}

// FromAny classifies plain Go data. Objects may be *Node, []Pair or
// map[string]any (map keys are sorted); arrays may be []any or []Value;
// anything else is a scalar.
func FromAny(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case *Node:
		return Value{node: t}
	case []Pair:
		return Value{node: WrapMapping(t)}
	case map[string]any:
		return Value{node: fromMap(t)}
	case []Value:
		return Value{kind: SequenceKind, seq: t}
	case []any:
		seq := make([]Value, len(t))
		for i, item := range t {
			seq[i] = FromAny(item)
		}
		return Value{kind: SequenceKind, seq: seq}
	default:
		return Value{kind: ScalarKind, scalar: v}
	}
}

func fromMap(m map[string]any) *Node {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]Pair, len(names))
	for i, name := range names {
		pairs[i] = Pair{Key: name, Value: m[name]}
	}

	return WrapMapping(pairs)
}

// Kind returns the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Node returns the mapping held by v. The second result is false for
// sequences and scalars.
func (v Value) Node() (*Node, bool) {
	if v.kind != MappingKind {
		return nil, false
	}
	if v.node == nil {
		return &Node{}, true
	}
	return v.node, true
}

// Scalar returns the scalar held by v.
func (v Value) Scalar() (any, bool) {
	return v.scalar, v.kind == ScalarKind
}

// Sequence returns the raw elements held by v.
func (v Value) Sequence() ([]Value, bool) {
	if v.kind != SequenceKind {
		return nil, false
	}
	return slices.Clone(v.seq), true
}

// ListView returns the list view of a sequence. A value that already is a
// list view is returned as is.
func (v Value) ListView() (*Node, error) {
	switch {
	case v.kind == SequenceKind:
		return WrapSequence(v.seq), nil
	case v.kind == MappingKind && v.node.IsListView():
		return v.node, nil
	default:
		return nil, ErrNotSequence
	}
}

// Get reads k from a mapping, or from the list view of a sequence. Scalars
// have no entries, so every key yields a placeholder.
func (v Value) Get(k Key) Value {
	v, _ = v.Lookup(k)
	return v
}

// Lookup is Get that also reports whether k was present.
func (v Value) Lookup(k Key) (Value, bool) {
	switch v.kind {
	case MappingKind:
		return v.node.Lookup(k)
	case SequenceKind:
		return WrapSequence(v.seq).Lookup(k)
	default:
		return Value{}, false
	}
}

// Field is Get(Name(name)).
func (v Value) Field(name string) Value {
	return v.Get(Name(name))
}

// Index is Get(Index(pos)).
func (v Value) Index(pos int) Value {
	return v.Get(Index(pos))
}

// First returns the "first" entry of a list view.
func (v Value) First() Value {
	return v.Get(Name(firstField))
}

// Last returns the "last" entry of a list view.
func (v Value) Last() Value {
	return v.Get(Name(lastField))
}

// Path follows keys one Get at a time.
func (v Value) Path(keys ...Key) Value {
	for _, k := range keys {
		v = v.Get(k)
	}
	return v
}

// AsList returns the original elements of a list view or a sequence.
func (v Value) AsList() []Value {
	switch v.kind {
	case MappingKind:
		return v.node.AsList()
	case SequenceKind:
		return slices.Clone(v.seq)
	default:
		return nil
	}
}

// Or returns FromAny(def) when v is empty, and v otherwise.
func (v Value) Or(def any) Value {
	if v.IsEmpty() {
		return FromAny(def)
	}
	return v
}

// Len returns the number of entries of a mapping or elements of a sequence.
func (v Value) Len() int {
	switch v.kind {
	case MappingKind:
		return v.node.Len()
	case SequenceKind:
		return len(v.seq)
	default:
		return 0
	}
}

// IsEmpty reports whether v has no entries. A scalar is empty only when it
// is JSON null.
func (v Value) IsEmpty() bool {
	if v.kind == ScalarKind {
		return v.scalar == nil
	}
	return v.Len() == 0
}

// Truthy reports whether v holds anything. Scalars follow JSON truthiness:
// null, false, "" and zero are false.
func (v Value) Truthy() bool {
	if v.kind != ScalarKind {
		return !v.IsEmpty()
	}

	switch s := v.scalar.(type) {
	case nil:
		return false
	case bool:
		return s
	case string:
		return s != ""
	default:
		if number.IsNumber(s) {
			return !number.IsZero(s)
		}
		return true
	}
}
