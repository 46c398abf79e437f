package rtr

import (
	"fmt"

	"github.com/rohanthewiz/pathmatch/consts"
	"github.com/rohanthewiz/pathmatch/core/route"
)

// treeNode is one level of the pattern trie. Each node corresponds to one
// pattern segment and can branch three ways: literal children keyed by
// segment text, one parameter child (:name, matches any single segment),
// and one wildcard child (*name, terminal, swallows the rest of the path).
//
// Example structure for /user/admin/settings and /user/:name/profile:
//
//	root
//	 └── "user"
//	      ├── "admin"
//	      │    └── "settings" (terminal)
//	      └── :name
//	           └── "profile" (terminal)
//
// Capture names are not resolved per node. Each terminal node carries the
// full slot-indexed name table for its pattern, and the route state maps
// captured segments onto it after a successful walk.
type treeNode[T any] struct {
	prefix    string // segment text, or the capture name for : and * nodes
	data      T      // handler data, meaningful only on terminal nodes
	children  map[string]*treeNode[T]
	parameter *treeNode[T]
	wildcard  *treeNode[T]
	names     []string // slot-indexed capture names, set on terminal nodes
	kind      byte     // ':', '*', or 0 for literal
	terminal  bool
}

// child returns the literal child for the given segment, or nil.
// Indexing the map with a converted byte slice does not allocate.
func (node *treeNode[T]) child(seg []byte) *treeNode[T] {
	return node.children[string(seg)]
}

// addLiteral returns the literal child for the segment, creating it on demand.
func (node *treeNode[T]) addLiteral(seg string) *treeNode[T] {
	child := node.children[seg]
	if child == nil {
		child = &treeNode[T]{prefix: seg}
		if node.children == nil {
			node.children = make(map[string]*treeNode[T])
		}
		node.children[seg] = child
	}
	return child
}

// addParameter returns the parameter child, creating it on demand.
// A reused node keeps the capture name it was first registered with;
// node names only matter for route listings, since every terminal node
// carries its own name table.
func (node *treeNode[T]) addParameter(name string) *treeNode[T] {
	if node.parameter == nil {
		node.parameter = &treeNode[T]{prefix: name, kind: consts.RuneColon}
	}
	return node.parameter
}

// addWildcard returns the wildcard child, creating it on demand.
func (node *treeNode[T]) addWildcard(name string) *treeNode[T] {
	if node.wildcard == nil {
		node.wildcard = &treeNode[T]{prefix: name, kind: consts.RuneAsterisk}
	}
	return node.wildcard
}

// match walks the trie against the remaining segments of the state and
// returns the terminal node of the first matching pattern, or nil.
//
// Branch order is literal, then parameter, then wildcard, so more specific
// patterns win. Each failed branch rewinds the state to the snapshot taken
// before the branch was tried; segments past the rewind point are then
// re-decided by the next branch, which is what keeps the slot assignments
// consistent by the time Variables runs.
func (node *treeNode[T]) match(state *route.RouteState) *treeNode[T] {
	if state.IsEmpty() {
		if node.terminal {
			return node
		}
		return nil
	}

	seg := state.Get()
	snap := state.Snapshot()

	if child := node.child(seg); child != nil {
		state.Skip()
		if leaf := child.match(state); leaf != nil {
			return leaf
		}
		state.GoTo(snap)
	}

	if node.parameter != nil {
		state.Keep()
		if leaf := node.parameter.match(state); leaf != nil {
			return leaf
		}
		state.GoTo(snap)
	}

	// Wildcards are terminal and need at least one remaining segment.
	// Keep opens the capture slot, Fuse extends it over the rest.
	if node.wildcard != nil && node.wildcard.terminal {
		state.Keep()
		for !state.IsEmpty() {
			state.Fuse()
		}
		return node.wildcard
	}

	return nil
}

// each traverses the subtree depth-first and calls the callback on every node.
func (node *treeNode[T]) each(callback func(*treeNode[T])) {
	callback(node)

	for _, child := range node.children {
		child.each(callback)
	}
	if node.parameter != nil {
		node.parameter.each(callback)
	}
	if node.wildcard != nil {
		node.wildcard.each(callback)
	}
}

// list appends a RouteList entry for every terminal node in the subtree,
// rebuilding each pattern from the node prefixes along the way.
func (node *treeNode[T]) list(prefix string, out *[]RouteList) {
	if node.terminal {
		pattern := prefix
		if pattern == consts.StrEmpty {
			pattern = consts.StrSlash
		}
		*out = append(*out, RouteList{Pattern: pattern, HandlerRef: fmt.Sprint(node.data)})
	}

	for _, child := range node.children {
		child.list(prefix+"/"+child.prefix, out)
	}
	if node.parameter != nil {
		node.parameter.list(prefix+"/:"+node.parameter.prefix, out)
	}
	if node.wildcard != nil {
		node.wildcard.list(prefix+"/*"+node.wildcard.prefix, out)
	}
}
