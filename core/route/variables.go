package route

import "github.com/rohanthewiz/pathmatch/consts"

// Variables resolves the slot assignments against the given name table and
// returns the captured variables. The table is indexed by slot id; slot 0
// is never allocated by Keep, so tables conventionally carry an empty entry
// there. An empty or missing name means "do not capture" - anonymous
// wildcards legitimately leave the table shorter than the highest slot id.
//
// Segments sharing a slot id are joined with "/" in path order, so a
// multi-segment capture comes back as a single value. Values are copied
// into owned strings here; this is the only point the engine copies
// segment bytes. Values are byte strings and need not be valid UTF-8.
//
// The merge is a single sequential pass: if a slot id reoccurs after a
// differently-named capture was emitted (possible only through unusual
// external manipulation), the groups are emitted separately and the later
// binding overwrites the earlier one under the shared name.
func (s *RouteState) Variables(names []string) map[string]string {
	vars := make(map[string]string, len(names))

	var (
		current int
		name    string
		value   []byte
		pending bool
	)

	for i, seg := range s.route {
		slot := s.slots[i]
		if slot == noSlot {
			continue
		}

		assertSlotNamed(slot, len(names))

		if slot >= len(names) || names[slot] == consts.StrEmpty {
			continue
		}

		// Part of the pending capture
		if pending && slot == current {
			value = append(value, consts.RuneFwdSlash)
			value = append(value, seg...)
			continue
		}

		// The pending capture has ended
		if pending {
			vars[name] = string(value)
		}

		current, name, pending = slot, names[slot], true
		value = append(value[:0], seg...)
	}

	if pending {
		vars[name] = string(value)
	}

	return vars
}
