// Package resolve flattens MiniYAML definition trees by applying their
// inheritance and removal directives, producing self-contained
// definitions that downstream extraction can query without knowing the
// inheritance graph.
package resolve

import "github.com/openra-rl/oradata/internal/miniyaml"

// Resolver computes fully-merged definitions over one definition set.
// Results are memoized for the lifetime of the Resolver; a cached result
// is immutable and may be shared read-only by every definition that
// inherits from it. A Resolver is a single resolution pass and is not
// safe for concurrent use.
type Resolver struct {
	defs      *miniyaml.Node
	cache     map[string]*miniyaml.Node
	resolving map[string]struct{}
}

// New returns a Resolver over a definition set as produced by
// miniyaml.ParseAll: each child of defs is one named top-level
// definition.
func New(defs *miniyaml.Node) *Resolver {
	return &Resolver{
		defs:      defs,
		cache:     make(map[string]*miniyaml.Node),
		resolving: make(map[string]struct{}),
	}
}

// Resolve returns the flattened form of a named definition: ancestors
// merged in inheritance order, own fields merged on top, removal
// directives applied, all directive keys stripped.
//
// Missing data never fails: an unknown name resolves to an empty
// definition, and a definition caught in an inheritance cycle falls back
// to its own raw node, unmerged, so resolution always terminates. The
// returned node is owned by the Resolver's cache and must not be
// modified by callers.
func (r *Resolver) Resolve(name string) *miniyaml.Node {
	if cached, ok := r.cache[name]; ok {
		return cached
	}

	raw, ok := r.defs.Get(name)
	if !ok {
		return miniyaml.NewNode("")
	}

	if _, inProgress := r.resolving[name]; inProgress {
		return raw
	}
	r.resolving[name] = struct{}{}

	result := miniyaml.NewNode("")

	// Parents merge first, in directive order, so a later-listed parent
	// overrides an earlier one on key collisions.
	for _, parent := range parentsOf(raw) {
		deepMerge(result, r.Resolve(parent))
	}

	// Own fields override everything inherited.
	deepMerge(result, raw)

	// Removals run after all merging so they can target inherited
	// fields. The directive keys themselves never survive.
	for _, key := range result.Keys() {
		if kind, target := miniyaml.ClassifyKey(key); kind == miniyaml.RemovalKey {
			result.Delete(target)
			result.Delete(key)
		}
	}

	delete(r.resolving, name)
	r.cache[name] = result
	return result
}

// ResolveAll resolves every known definition, returning a set with the
// same top-level ordering as the input.
func (r *Resolver) ResolveAll() *miniyaml.Node {
	out := miniyaml.NewNode("")
	for _, name := range r.defs.Keys() {
		out.Set(name, r.Resolve(name))
	}
	return out
}

// parentsOf collects the parent names referenced by a raw node's
// inheritance directives, in child order. That order is the override
// order for multi-parent merges.
func parentsOf(raw *miniyaml.Node) []string {
	var parents []string
	for _, key := range raw.Keys() {
		if kind, _ := miniyaml.ClassifyKey(key); kind != miniyaml.InheritsKey {
			continue
		}
		child, _ := raw.Get(key)
		if child.Value != "" {
			parents = append(parents, child.Value)
		}
	}
	return parents
}

// deepMerge merges src into dst, skipping inheritance directives at
// every level. On a key collision the source's scalar value wins and the
// children merge recursively; a key absent from dst is inserted as a
// deep copy of the source subtree.
//
// The copy is the resolver's central invariant: src is frequently a
// cached, shared resolution result, and inserting its subtrees by
// reference would let a later own-field merge in one child corrupt the
// cached parent seen by every sibling. No two distinct resolved
// definitions may share a mutable subtree.
func deepMerge(dst, src *miniyaml.Node) {
	for _, key := range src.Keys() {
		if kind, _ := miniyaml.ClassifyKey(key); kind == miniyaml.InheritsKey {
			continue
		}
		child, _ := src.Get(key)
		if existing, ok := dst.Get(key); ok {
			existing.Value = child.Value
			deepMerge(existing, child)
		} else {
			dst.Set(key, child.Clone())
		}
	}
}
