// Package miniyaml parses OpenRA MiniYAML documents into ordered node trees.
//
// MiniYAML is not YAML: indentation is a fixed single tab per level, the
// same key may repeat with an @-suffix tag, keys starting with "-" remove
// inherited fields, and "Inherits" keys reference other top-level
// definitions. None of that survives a round trip through a YAML library,
// so the format gets its own scanner here.
package miniyaml

import "strings"

// Node is a single MiniYAML tree element: an optional scalar value plus
// named children in insertion order. Every node has the same shape: the
// document root is a Node whose children are the top-level definitions,
// and a leaf is a Node with no children.
type Node struct {
	Value    string
	keys     []string
	children map[string]*Node
}

// NewNode returns a node carrying the given scalar value and no children.
func NewNode(value string) *Node {
	return &Node{Value: value, children: make(map[string]*Node)}
}

// Len returns the number of direct children. Safe on a nil node.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.keys)
}

// Keys returns the child keys in insertion order. The returned slice is a
// copy and may be modified freely (resolution deletes keys while ranging).
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Get returns the child for an exact key match. Safe on a nil node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

// Set inserts or replaces a child. A later duplicate key replaces the
// earlier child wholesale but keeps its original position in the order.
func (n *Node) Set(key string, child *Node) {
	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}

// Delete removes a child and its order slot. A no-op for unknown keys.
func (n *Node) Delete(key string) {
	if _, exists := n.children[key]; !exists {
		return
	}
	delete(n.children, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
}

// lookup finds a child by exact key first, then by a case-insensitive
// scan in insertion order. Source data does not use consistent casing
// ("Versus" vs "versus"), so every path step tolerates it.
func (n *Node) lookup(key string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if child, ok := n.children[key]; ok {
		return child, true
	}
	for _, k := range n.keys {
		if strings.EqualFold(k, key) {
			return n.children[k], true
		}
	}
	return nil, false
}

// PathChild navigates child-by-child along the path and returns the final
// sub-node, or nil if the path cannot be followed. Never errors.
func (n *Node) PathChild(path ...string) *Node {
	current := n
	for _, key := range path {
		child, ok := current.lookup(key)
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// PathValue navigates like PathChild and returns the scalar value at the
// final segment, or "" if the path cannot be followed.
func (n *Node) PathValue(path ...string) string {
	child := n.PathChild(path...)
	if child == nil {
		return ""
	}
	return child.Value
}

// Clone returns a deep copy sharing no structure with the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := NewNode(n.Value)
	for _, key := range n.keys {
		out.Set(key, n.children[key].Clone())
	}
	return out
}
