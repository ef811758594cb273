// Package arena stores values behind generation-checked integer handles.
package arena

import "sort"

// Arena is a sparse set of values keyed by Handle. Removing a value bumps the
// slot generation, so handles to removed values never resolve again.
type Arena[T any] struct {
	slots  slotStore
	dense  []Handle
	values []T
	sparse []int
}

func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	h := a.slots.create()
	id := int(h.slot())
	for len(a.sparse) < id {
		a.sparse = append(a.sparse, -1)
	}
	a.dense = append(a.dense, h)
	a.values = append(a.values, v)
	a.sparse[id-1] = len(a.dense) - 1
	return h
}

func (a *Arena[T]) Alive(h Handle) bool {
	if a == nil {
		return false
	}
	return a.slots.isAlive(h)
}

func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if !a.Alive(h) {
		return zero, false
	}
	return a.values[a.sparse[h.slot()-1]], true
}

// Remove deletes the value behind h. It returns false for stale handles.
func (a *Arena[T]) Remove(h Handle) bool {
	if a == nil || !a.slots.destroy(h) {
		return false
	}
	id := int(h.slot())
	idx := a.sparse[id-1]
	last := len(a.dense) - 1
	lastHandle := a.dense[last]

	a.dense[idx] = lastHandle
	a.values[idx] = a.values[last]
	a.sparse[lastHandle.slot()-1] = idx

	var zero T
	a.values[last] = zero
	a.dense = a.dense[:last]
	a.values = a.values[:last]
	a.sparse[id-1] = -1
	return true
}

func (a *Arena[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.dense)
}

// Handles returns the live handles in ascending order.
func (a *Arena[T]) Handles() []Handle {
	if a == nil {
		return nil
	}
	out := append([]Handle(nil), a.dense...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear removes every value. Previously issued handles become stale.
func (a *Arena[T]) Clear() {
	if a == nil {
		return
	}
	for _, h := range a.Handles() {
		a.Remove(h)
	}
}
