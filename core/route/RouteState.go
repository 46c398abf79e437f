package route

// noSlot marks a segment that is not part of any capture.
const noSlot = -1

// RouteState is the cursor for one match attempt against one concrete path.
//
// It materializes the path's segments once, then lets an external matcher
// walk them while deciding, per segment, whether to discard it (Skip),
// capture it under a fresh slot (Keep), or fold it into the slot Keep
// allocated last (Fuse). Slot ids group segments into named variables;
// Variables resolves them against a caller-supplied name table at the end.
//
// A RouteState belongs to a single logical traversal. Backtracking search
// over candidate branches either brackets each branch with Snapshot/GoTo,
// or uses Clone when branches must run independently.
type RouteState struct {
	route    [][]byte
	slots    []int
	index    int
	varIndex int
}

// NewState materializes the segments of r and returns a cursor positioned
// at the first segment. The segments are views into r's storage, so the
// state must not outlive it.
func NewState(r Route) *RouteState {
	var segs [][]byte
	for seg := range r.Segments() {
		segs = append(segs, seg)
	}

	slots := make([]int, len(segs))
	for i := range slots {
		slots[i] = noSlot
	}

	return &RouteState{route: segs, slots: slots}
}

// Get returns the current segment without advancing,
// or nil when all segments are consumed.
func (s *RouteState) Get() []byte {
	if s.index < len(s.route) {
		return s.route[s.index]
	}
	return nil
}

// Skip leaves the current segment out of any variable and advances.
// Used when a pattern segment is a literal match with no capture.
func (s *RouteState) Skip() {
	if s.index < len(s.slots) {
		s.slots[s.index] = noSlot
	}
	s.index++
}

// Keep captures the current segment under a newly allocated slot id
// and advances. Each Keep allocates a fresh id, so ids are strictly
// increasing over the life of one state (except across GoTo).
func (s *RouteState) Keep() {
	s.varIndex++
	if s.index < len(s.slots) {
		s.slots[s.index] = s.varIndex
	}
	s.index++
}

// Fuse assigns the current segment to whatever slot id Keep allocated
// last, without allocating a new one, and advances. A Keep followed by
// consecutive Fuse calls therefore collects several segments under one
// slot, which is how a multi-segment wildcard becomes a single variable.
// Fuse itself does not enforce that a Keep came first; before any Keep
// it writes slot 0, which no name table entry ever resolves.
func (s *RouteState) Fuse() {
	if s.index < len(s.slots) {
		s.slots[s.index] = s.varIndex
	}
	s.index++
}

// Snapshot is a saved position in a match attempt.
type Snapshot struct {
	index    int
	varIndex int
}

// Snapshot records the current position and slot counter for later GoTo.
func (s *RouteState) Snapshot() Snapshot {
	return Snapshot{index: s.index, varIndex: s.varIndex}
}

// GoTo rewinds to a previously recorded snapshot.
//
// Only the position and the slot counter are restored; slot assignments
// written after the snapshot are left in place. A matcher that backtracks
// must therefore re-decide every segment from the restored position
// forward before calling Variables, which any matcher that ultimately
// consumes the whole path does anyway.
func (s *RouteState) GoTo(snap Snapshot) {
	s.index = snap.index
	s.varIndex = snap.varIndex
}

// IsEmpty reports whether all segments have been consumed.
func (s *RouteState) IsEmpty() bool {
	return s.index == len(s.route)
}

// Clone returns an independent copy for branch-per-copy matching.
// The immutable segment sequence is shared; slot assignments and
// counters are copied.
func (s *RouteState) Clone() *RouteState {
	slots := make([]int, len(s.slots))
	copy(slots, s.slots)

	return &RouteState{
		route:    s.route,
		slots:    slots,
		index:    s.index,
		varIndex: s.varIndex,
	}
}
