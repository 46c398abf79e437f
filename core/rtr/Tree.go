package rtr

import (
	"github.com/rohanthewiz/pathmatch/consts"
	"github.com/rohanthewiz/pathmatch/core/route"
	"github.com/rohanthewiz/serr"
)

// Tree is a pattern trie matching whole path segments.
//
// Patterns are registered as /literal/:param/*splat paths and matched
// against anything that satisfies route.Route. Matching walks the trie
// with a route.RouteState cursor, backtracking between sibling branches
// through its snapshots, so one state (and one pass over the path) serves
// every candidate pattern.
//
// Zero value is ready to use - the root node is embedded, not a pointer.
type Tree[T any] struct {
	root treeNode[T]
}

// Add registers a pattern in the tree. Pattern segments starting with ':'
// match any one path segment and capture it; segments starting with '*'
// capture all remaining segments (at least one) and must come last.
// A bare ':' or '*' captures anonymously: the segment participates in
// matching but produces no variable. Adding an existing pattern replaces
// its data.
func (tree *Tree[T]) Add(pattern string, data T) error {
	node := &tree.root

	// Slot ids start at 1, so the table carries a placeholder at 0.
	names := []string{consts.StrEmpty}
	wild := false

	for seg := range route.Str(pattern).Segments() {
		if wild {
			return serr.New("wildcard must be the last pattern segment", "pattern", pattern)
		}

		s := string(seg)

		switch {
		case len(s) > 0 && s[0] == consts.RuneColon:
			names = append(names, s[1:])
			node = node.addParameter(s[1:])

		case len(s) > 0 && s[0] == consts.RuneAsterisk:
			names = append(names, s[1:])
			node = node.addWildcard(s[1:])
			wild = true

		default:
			node = node.addLiteral(s)
		}
	}

	node.data = data
	node.names = names
	node.terminal = true
	return nil
}

// Lookup finds the data and captured variables for the given route.
// The variable map holds owned copies, safe to retain after the
// route's backing storage is gone.
func (tree *Tree[T]) Lookup(r route.Route) (data T, vars map[string]string, found bool) {
	state := route.NewState(r)

	leaf := tree.root.match(state)
	if leaf == nil {
		var empty T
		return empty, nil, false
	}

	return leaf.data, state.Variables(leaf.names), true
}

// LookupState matches the trie against an existing route state, leaving
// variable resolution to the caller. The state is consumed from its
// current position; on a match the returned name table feeds
// state.Variables. Useful when the caller wants to reuse one state
// across several trees.
func (tree *Tree[T]) LookupState(state *route.RouteState) (data T, names []string, found bool) {
	leaf := tree.root.match(state)
	if leaf == nil {
		var empty T
		return empty, nil, false
	}

	return leaf.data, leaf.names, true
}

// Map binds all registered handlers to a new one provided by the callback.
func (tree *Tree[T]) Map(transform func(T) T) {
	tree.root.each(func(node *treeNode[T]) {
		if node.terminal {
			node.data = transform(node.data)
		}
	})
}

// ListRoutes returns the registered patterns for inspection.
// Order is not defined.
func (tree *Tree[T]) ListRoutes() (routes []RouteList) {
	tree.root.list(consts.StrEmpty, &routes)
	return
}
