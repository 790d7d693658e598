// Package lenient navigates decoded JSON without failing on missing data.
//
// A document is parsed into a tree of Values. Every object becomes a Node, an
// insertion-ordered mapping; arrays stay raw until they are reached through a
// field access, at which point they are viewed as a Node keyed by position and
// carrying "first" and "last" entries:
//
//	doc, err := lenient.ParseString(`{"a": {"b": [{"c": "d"}, {"c": 5}]}}`)
//	doc.Field("a").Field("b").First().Field("c") // "d"
//	doc.Field("a").Field("b").Index(1).Field("c") // 5
//	doc.Field("a").Field("x").Field("y").Equal(nil) // true
//
// Any access that cannot be satisfied (a missing key, an index out of range,
// a field read on a scalar) yields an empty placeholder. Placeholders absorb
// further access, print as the empty string and compare equal to nil, so a
// long chain only needs to be checked once at the end.
//
// Only malformed JSON is reported as an error.
package lenient
