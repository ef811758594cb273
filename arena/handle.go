package arena

import "fmt"

// Handle refers to an arena slot. The low word is the 1-based slot index and
// the high word is the generation the slot had when the value went in. The
// zero Handle never refers to anything.
type Handle uint64

func newHandle(slot, gen uint32) Handle {
	return Handle(gen)<<32 | Handle(slot)
}

func (h Handle) slot() uint32 { return uint32(h) }

func (h Handle) gen() uint32 { return uint32(h >> 32) }

// String formats h as slot@generation.
func (h Handle) String() string {
	if h == 0 {
		return "nil"
	}
	return fmt.Sprintf("%d@%d", h.slot(), h.gen())
}

// Valid is false for the zero Handle and anything else with no slot index.
func (h Handle) Valid() bool { return h.slot() != 0 }
