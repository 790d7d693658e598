package lenient

import "strconv"

// Key identifies a Node entry: either a field name or a list position.
type Key struct {
	name       string
	pos        int
	positional bool
}

// Name returns the key for a named field.
func Name(name string) Key {
	return Key{name: name}
}

// Index returns the key for a list position.
func Index(pos int) Key {
	return Key{pos: pos, positional: true}
}

// Name returns the field name, or false for positional keys.
func (k Key) Name() (string, bool) {
	return k.name, !k.positional
}

// Position returns the list position, or false for named keys.
func (k Key) Position() (int, bool) {
	return k.pos, k.positional
}

func (k Key) String() string {
	if k.positional {
		return strconv.Itoa(k.pos)
	}
	return k.name
}

// quoted renders the key the way it appears inside a structural string form.
func (k Key) quoted() string {
	if k.positional {
		return strconv.Itoa(k.pos)
	}
	return strconv.Quote(k.name)
}
