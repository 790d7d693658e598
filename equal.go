package lenient

import (
	"reflect"

	"github.com/jacoelho/lenient/internal/number"
)

// Equal compares v with other. A nil other asks whether v is absent, which
// holds for placeholders, empty nodes and JSON null alike. Any other value is
// compared structurally.
func (v Value) Equal(other any) bool {
	if other == nil {
		return v.EqualsAbsence()
	}
	return v.EqualsValue(other)
}

// EqualsAbsence reports whether v stands for "no value".
func (v Value) EqualsAbsence() bool {
	return v.IsEmpty()
}

// EqualsValue compares v structurally with other after classifying it with
// FromAny. Numbers compare by value across json.Number and Go numeric types.
// A list view equals a sequence with the same elements, and any empty
// container equals any other empty container.
func (v Value) EqualsValue(other any) bool {
	return equalValues(v, FromAny(other))
}

// Equal compares n with other; see Value.Equal.
func (n *Node) Equal(other any) bool {
	return Value{node: n}.Equal(other)
}

// EqualsAbsence reports whether n is empty.
func (n *Node) EqualsAbsence() bool {
	return n.IsEmpty()
}

// EqualsValue compares n structurally with other; see Value.EqualsValue.
func (n *Node) EqualsValue(other any) bool {
	return Value{node: n}.EqualsValue(other)
}

func equalValues(a, b Value) bool {
	if isNull(a) {
		return b.EqualsAbsence()
	}
	if isNull(b) {
		return a.EqualsAbsence()
	}

	switch {
	case a.kind == ScalarKind || b.kind == ScalarKind:
		return a.kind == b.kind && equalScalars(a.scalar, b.scalar)
	case a.kind == MappingKind && b.kind == MappingKind:
		if a.node.IsListView() && b.node.IsListView() {
			return equalLists(a.node.list, b.node.list)
		}
		return equalEntries(a.node, b.node)
	default:
		if a.IsEmpty() && b.IsEmpty() {
			return true
		}
		al, aok := listOf(a)
		bl, bok := listOf(b)
		return aok && bok && equalLists(al, bl)
	}
}

func isNull(v Value) bool {
	return v.kind == ScalarKind && v.scalar == nil
}

// listOf returns the elements of a sequence or a list view.
func listOf(v Value) ([]Value, bool) {
	if v.kind == SequenceKind {
		return v.seq, true
	}
	if v.node.IsListView() {
		return v.node.list, true
	}
	return nil, false
}

func equalLists(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalValues(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalEntries(a, b *Node) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, k := range a.Keys() {
		j, ok := b.index[k]
		if !ok || !equalValues(a.values[i], b.values[j]) {
			return false
		}
	}
	return true
}

func equalScalars(a, b any) bool {
	if equal, ok := number.Equal(a, b); ok {
		return equal
	}
	return reflect.DeepEqual(a, b)
}
