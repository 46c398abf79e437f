package route

import (
	"bytes"
	"iter"

	"github.com/rohanthewiz/pathmatch/consts"
)

// Route is any value that can be broken into path segments.
// Implementations exist for strings, byte slices, and ordered containers
// of other routes, so callers can hand the matcher whatever shape their
// path data is already in.
type Route interface {
	// Segments returns a restartable iterator over the segments of the path.
	// The iterator yields nothing for a root path ("/" or "").
	// Segments are views into the original storage and stay valid only as
	// long as that storage does.
	Segments() iter.Seq[[]byte]
}

// Str is a path held in a string, e.g. Str("/users/42").
type Str string

// Segments returns the segment iterator for the string path.
func (s Str) Segments() iter.Seq[[]byte] {
	return Bytes(s2b(string(s))).Segments()
}

// Bytes is a path held in a raw byte slice. Paths are not required to be
// valid UTF-8; any byte sequence segments cleanly.
type Bytes []byte

// Segments returns the segment iterator for the byte path.
//
// Exactly one leading and one trailing separator are stripped before the
// split, so "/a/b/" and "a/b" segment identically and "/" yields nothing.
// Runs of separators inside the path are not collapsed: "a//b" yields an
// empty segment between "a" and "b". Callers that depend on segment
// positions rely on this.
func (b Bytes) Segments() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		s := []byte(b)

		if len(s) > 0 && s[0] == consts.RuneFwdSlash {
			s = s[1:]
		}
		if len(s) > 0 && s[len(s)-1] == consts.RuneFwdSlash {
			s = s[:len(s)-1]
		}

		if len(s) == 0 { // root path
			return
		}

		for {
			i := bytes.IndexByte(s, consts.RuneFwdSlash)
			if i < 0 {
				yield(s)
				return
			}

			if !yield(s[:i]) {
				return
			}
			s = s[i+1:]
		}
	}
}

// List is an ordered container of routes. Its segment sequence is the
// concatenation of each element's segments, produced lazily in order,
// so List[Str]{"/a", "b/c"} segments as "a", "b", "c".
// Lists nest: a List element may itself be a List.
type List[R Route] []R

// Segments returns the flattened segment iterator over all elements.
func (l List[R]) Segments() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, r := range l {
			for seg := range r.Segments() {
				if !yield(seg) {
					return
				}
			}
		}
	}
}

// Multi is a List over mixed route representations.
type Multi = List[Route]
