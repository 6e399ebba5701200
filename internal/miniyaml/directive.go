package miniyaml

import "strings"

// KeyKind classifies a child key at the parse boundary so merge and strip
// logic downstream works on structured kinds, not string prefixes.
type KeyKind int

const (
	// FieldKey is an ordinary data field.
	FieldKey KeyKind = iota
	// InheritsKey is an inheritance directive; the node's scalar value
	// names the parent definition. Suffixes ("Inherits@AircraftTD")
	// allow several directives on one definition, merged in key order.
	InheritsKey
	// RemovalKey deletes the named key from the merged result.
	RemovalKey
)

const (
	inheritsPrefix = "Inherits"
	removalMarker  = "-"
)

// ClassifyKey reports the kind of a child key. For RemovalKey the second
// return is the key targeted for deletion (marker stripped); it is empty
// for the other kinds.
func ClassifyKey(key string) (KeyKind, string) {
	switch {
	case strings.HasPrefix(key, removalMarker):
		return RemovalKey, key[len(removalMarker):]
	case strings.HasPrefix(key, inheritsPrefix):
		return InheritsKey, ""
	default:
		return FieldKey, ""
	}
}
