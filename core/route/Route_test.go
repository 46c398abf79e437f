package route_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/pathmatch/core/route"
)

// collect drains a route's segment iterator into strings for easy comparison.
func collect(r route.Route) (segs []string) {
	for seg := range r.Segments() {
		segs = append(segs, string(seg))
	}
	return
}

func TestRootSegments(t *testing.T) {
	assert.Equal(t, len(collect(route.Str("/"))), 0)
	assert.Equal(t, len(collect(route.Str(""))), 0)
	assert.Equal(t, len(collect(route.Bytes("/"))), 0)
	assert.Equal(t, len(collect(route.Bytes(nil))), 0)
}

func TestStrSegments(t *testing.T) {
	segs := collect(route.Str("/path/to/somewhere/"))
	assert.Equal(t, len(segs), 3)
	assert.Equal(t, segs[0], "path")
	assert.Equal(t, segs[1], "to")
	assert.Equal(t, segs[2], "somewhere")

	segs = collect(route.Str("no/leading/slash"))
	assert.Equal(t, len(segs), 3)
	assert.Equal(t, segs[0], "no")

	segs = collect(route.Str("/single"))
	assert.Equal(t, len(segs), 1)
	assert.Equal(t, segs[0], "single")
}

func TestBytesSegments(t *testing.T) {
	segs := collect(route.Bytes("/users/42/edit"))
	assert.Equal(t, len(segs), 3)
	assert.Equal(t, segs[0], "users")
	assert.Equal(t, segs[1], "42")
	assert.Equal(t, segs[2], "edit")
}

// Only the single leading and trailing separator are stripped.
// Separator runs inside the path yield empty segments from the split.
func TestDoubleSeparators(t *testing.T) {
	segs := collect(route.Str("a//b"))
	assert.Equal(t, len(segs), 3)
	assert.Equal(t, segs[0], "a")
	assert.Equal(t, segs[1], "")
	assert.Equal(t, segs[2], "b")

	// Solely separators trim away entirely: root.
	assert.Equal(t, len(collect(route.Str("//"))), 0)

	segs = collect(route.Str("a//"))
	assert.Equal(t, len(segs), 2)
	assert.Equal(t, segs[0], "a")
	assert.Equal(t, segs[1], "")
}

func TestNestedSegments(t *testing.T) {
	segs := collect(route.List[route.Str]{"/a", "b/", "/", "c/d/"})
	assert.Equal(t, len(segs), 4)
	assert.Equal(t, segs[0], "a")
	assert.Equal(t, segs[1], "b")
	assert.Equal(t, segs[2], "c")
	assert.Equal(t, segs[3], "d")
}

func TestMixedNestedSegments(t *testing.T) {
	r := route.Multi{
		route.Str("/api"),
		route.Bytes("v1/"),
		route.Multi{
			route.Str("/"),
			route.List[route.Bytes]{route.Bytes("users/42")},
		},
	}

	segs := collect(r)
	assert.Equal(t, len(segs), 4)
	assert.Equal(t, segs[0], "api")
	assert.Equal(t, segs[1], "v1")
	assert.Equal(t, segs[2], "users")
	assert.Equal(t, segs[3], "42")
}

func TestBinarySegments(t *testing.T) {
	raw := route.Bytes{0x00, 0x01, '/', 0xFF}

	var segs [][]byte
	for seg := range raw.Segments() {
		segs = append(segs, seg)
	}

	assert.Equal(t, len(segs), 2)
	assert.Equal(t, string(segs[0]), string([]byte{0x00, 0x01}))
	assert.Equal(t, string(segs[1]), string([]byte{0xFF}))
}

// Segments must be restartable: iterating twice gives the same sequence.
func TestSegmentsRestartable(t *testing.T) {
	r := route.Str("/a/b/c")
	first := collect(r)
	second := collect(r)

	assert.Equal(t, len(first), 3)
	assert.Equal(t, len(second), 3)
	for i := range first {
		assert.Equal(t, second[i], first[i])
	}
}

// Breaking out of the iterator mid-way must not panic or over-produce.
func TestSegmentsEarlyStop(t *testing.T) {
	count := 0
	for range route.Str("/a/b/c/d").Segments() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, count, 2)
}

// Segments are views into the original storage, not copies.
func TestSegmentsAreViews(t *testing.T) {
	raw := []byte("/alpha/beta")

	var segs [][]byte
	for seg := range route.Bytes(raw).Segments() {
		segs = append(segs, seg)
	}

	raw[1] = 'A'
	assert.Equal(t, string(segs[0]), "Alpha")
}
