package arena

// slotStore hands out slot indexes and bumps a slot's generation when it is
// freed, so old handles to a reused slot no longer match.
type slotStore struct {
	gens []uint32
	free []uint32
}

func (s *slotStore) create() Handle {
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]
		return newHandle(slot, s.gens[slot-1])
	}
	s.gens = append(s.gens, 0)
	return newHandle(uint32(len(s.gens)), 0)
}

func (s *slotStore) destroy(h Handle) bool {
	if !s.isAlive(h) {
		return false
	}
	s.gens[h.slot()-1]++
	s.free = append(s.free, h.slot())
	return true
}

func (s *slotStore) isAlive(h Handle) bool {
	slot := h.slot()
	return slot != 0 && int(slot) <= len(s.gens) && s.gens[slot-1] == h.gen()
}
