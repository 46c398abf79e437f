//go:build routedebug

package route

import "fmt"

// assertSlotNamed panics when a slot id has no entry in the name table.
// A matcher should never allocate more slots than it supplies names for;
// an overshoot is a bug in the matcher, not in the routed path, so release
// builds quietly treat it as "do not capture" (see debug_off.go).
func assertSlotNamed(slot, tableLen int) {
	if slot >= tableLen {
		panic(fmt.Sprintf("invalid variable slot: name table length %d, slot id %d", tableLen, slot))
	}
}
