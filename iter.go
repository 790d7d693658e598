package lenient

import "iter"

// All iterates a list view over its original elements, keyed by position,
// and any other Node over its entries in insertion order. Values are yielded
// raw: nested sequences are not turned into list views.
func (n *Node) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if n.IsListView() {
			yieldList(n.list, yield)
			return
		}
		for i := range n.Len() {
			if !yield(n.keys[i], n.values[i]) {
				return
			}
		}
	}
}

// Values iterates the values yielded by All.
func (n *Node) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range n.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All iterates a mapping like Node.All and a sequence over its elements.
// Scalars yield nothing.
func (v Value) All() iter.Seq2[Key, Value] {
	switch v.kind {
	case MappingKind:
		return v.node.All()
	case SequenceKind:
		return func(yield func(Key, Value) bool) {
			yieldList(v.seq, yield)
		}
	default:
		return func(func(Key, Value) bool) {}
	}
}

// Values iterates the values yielded by All.
func (v Value) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, item := range v.All() {
			if !yield(item) {
				return
			}
		}
	}
}

func yieldList(items []Value, yield func(Key, Value) bool) {
	for i, item := range items {
		if !yield(Index(i), item) {
			return
		}
	}
}
