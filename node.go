package lenient

import (
	"slices"

	"github.com/jacoelho/lenient/internal/decode"
)

const (
	firstField = "first"
	lastField  = "last"
)

// Pair is an object member as produced by the decoder.
type Pair = decode.Pair

// Entry is a Node member whose value is already classified.
type Entry struct {
	Key   Key
	Value Value
}

// Node is an insertion-ordered mapping with lenient field access.
//
// A Node built from a sequence (a list view) additionally keeps the original
// elements, reachable through AsList and iteration. The nil *Node is a valid
// empty Node.
type Node struct {
	keys   []Key
	values []Value
	index  map[Key]int
	list   []Value
}

// WrapMapping builds a Node from decoded object members. Repeated names keep
// their first position and their last value.
func WrapMapping(pairs []Pair) *Node {
	n := &Node{index: make(map[Key]int, len(pairs))}
	for _, p := range pairs {
		n.set(Name(p.Key), FromAny(p.Value))
	}

	return n
}

// NewMapping builds a Node from classified entries.
func NewMapping(entries ...Entry) *Node {
	n := &Node{index: make(map[Key]int, len(entries))}
	for _, e := range entries {
		n.set(e.Key, e.Value)
	}

	return n
}

// WrapSequence builds the list view of seq: positional entries 0..len-1,
// then "last" and "first". An empty sequence yields a plain empty Node
// without a list.
func WrapSequence(seq []Value) *Node {
	if len(seq) == 0 {
		return &Node{}
	}

	n := &Node{
		index: make(map[Key]int, len(seq)+2),
		list:  seq,
	}
	for i, v := range seq {
		n.set(Index(i), v)
	}
	n.set(Name(lastField), seq[len(seq)-1])
	n.set(Name(firstField), seq[0])

	return n
}

func (n *Node) set(k Key, v Value) {
	if i, ok := n.index[k]; ok {
		n.values[i] = v
		return
	}

	n.index[k] = len(n.keys)
	n.keys = append(n.keys, k)
	n.values = append(n.values, v)
}

// Get returns the value stored under k. Missing keys yield an empty
// placeholder; stored sequences are returned as list views.
func (n *Node) Get(k Key) Value {
	v, _ := n.Lookup(k)
	return v
}

// Lookup is Get that also reports whether k was present.
func (n *Node) Lookup(k Key) (Value, bool) {
	if n == nil {
		return Value{}, false
	}

	i, ok := n.index[k]
	if !ok {
		return Value{}, false
	}

	v := n.values[i]
	if v.kind == SequenceKind {
		return Value{node: WrapSequence(v.seq)}, true
	}

	return v, true
}

// Field is Get(Name(name)).
func (n *Node) Field(name string) Value {
	return n.Get(Name(name))
}

// Index is Get(Index(pos)).
func (n *Node) Index(pos int) Value {
	return n.Get(Index(pos))
}

// First returns the "first" entry of a list view.
func (n *Node) First() Value {
	return n.Get(Name(firstField))
}

// Last returns the "last" entry of a list view.
func (n *Node) Last() Value {
	return n.Get(Name(lastField))
}

// Path follows keys one Get at a time.
func (n *Node) Path(keys ...Key) Value {
	return Value{node: n}.Path(keys...)
}

// IsListView reports whether n was built from a non-empty sequence.
func (n *Node) IsListView() bool {
	return n != nil && n.list != nil
}

// AsList returns the original elements of a list view, or nil.
func (n *Node) AsList() []Value {
	if n == nil {
		return nil
	}
	return slices.Clone(n.list)
}

// Len returns the number of entries.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.keys)
}

// Keys returns the entry keys in insertion order.
func (n *Node) Keys() []Key {
	if n == nil {
		return nil
	}
	return slices.Clone(n.keys)
}

// IsEmpty reports whether n has no entries.
func (n *Node) IsEmpty() bool {
	return n.Len() == 0
}

// Truthy reports whether n has at least one entry.
func (n *Node) Truthy() bool {
	return !n.IsEmpty()
}
