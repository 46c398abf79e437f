// Package pathmatch matches hierarchical paths against registered patterns
// and extracts named variables from them. Paths can arrive as strings, raw
// bytes, or nested containers of either; patterns mix literal segments,
// single-segment parameters (:name), and trailing multi-segment wildcards
// (*name). The core machinery lives in core/route (segmentation and match
// state) and core/rtr (the pattern trie); this package ties them together
// behind a small router facade.
package pathmatch

import (
	"github.com/rohanthewiz/pathmatch/consts"
	"github.com/rohanthewiz/pathmatch/core/route"
	"github.com/rohanthewiz/pathmatch/core/rtr"
)

// Router maps patterns to handler data of any type.
//
// Patterns without captures additionally land in an exact-match table, so
// the common static lookup is a single map probe. Every pattern also lives
// in the trie, which keeps Lookup over arbitrary route representations
// complete.
type Router[T any] struct {
	static map[string]T
	tree   rtr.Tree[T]
}

// NewRouter creates an empty router.
func NewRouter[T any]() *Router[T] {
	return &Router[T]{
		static: make(map[string]T, 16),
	}
}

// Add registers a pattern. See rtr.Tree.Add for the pattern syntax.
func (r *Router[T]) Add(pattern string, data T) error {
	err := r.tree.Add(pattern, data)
	if err != nil {
		return err
	}

	if isStatic(pattern) {
		r.static[trimPath(pattern)] = data
	}
	return nil
}

// Lookup finds the data and captured variables for any route representation.
func (r *Router[T]) Lookup(rt route.Route) (T, map[string]string, bool) {
	return r.tree.Lookup(rt)
}

// LookupString finds the data and captured variables for a string path,
// hitting the exact-match table before falling back to the trie.
func (r *Router[T]) LookupString(path string) (T, map[string]string, bool) {
	if data, ok := r.static[trimPath(path)]; ok {
		return data, nil, true
	}

	return r.tree.Lookup(route.Str(path))
}

// ListRoutes returns the registered patterns for inspection.
func (r *Router[T]) ListRoutes() []rtr.RouteList {
	return r.tree.ListRoutes()
}

// isStatic reports whether a pattern has no parameter or wildcard segments.
func isStatic(pattern string) bool {
	for seg := range route.Str(pattern).Segments() {
		if len(seg) > 0 && (seg[0] == consts.RuneColon || seg[0] == consts.RuneAsterisk) {
			return false
		}
	}
	return true
}

// trimPath strips the single leading and trailing separator, mirroring the
// segmenter, so "/users/" and "users" share one exact-match key.
func trimPath(p string) string {
	if len(p) > 0 && p[0] == consts.RuneFwdSlash {
		p = p[1:]
	}
	if len(p) > 0 && p[len(p)-1] == consts.RuneFwdSlash {
		p = p[:len(p)-1]
	}
	return p
}
