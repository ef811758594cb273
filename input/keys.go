// Package input turns raw device state into per-frame key sets and events.
package input

import "sort"

// Key names a logical key. Letter keys use their lowercase letter.
type Key string

const (
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyEnter  Key = "enter"
	KeyEscape Key = "escape"
	KeySpace  Key = "space"
	KeyW      Key = "w"
	KeyA      Key = "a"
	KeyS      Key = "s"
	KeyD      Key = "d"
	KeyE      Key = "e"
)

// KeySet is the set of keys held during one frame.
type KeySet map[Key]struct{}

func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Any reports whether at least one of keys is held.
func (s KeySet) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

func (s KeySet) Len() int {
	return len(s)
}

func (s KeySet) Equal(o KeySet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

func (s KeySet) Sorted() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Tracker collapses a key set held across consecutive frames into a single
// keystroke.
type Tracker struct {
	prev KeySet
}

// Observe records this frame's keys. It returns the keys and true when they
// form a new keystroke: non-empty and different from the previous frame.
func (t *Tracker) Observe(keys KeySet) (KeySet, bool) {
	changed := !keys.Equal(t.prev)
	t.prev = keys
	if !changed || keys.Len() == 0 {
		return keys, false
	}
	return keys, true
}

func (t *Tracker) Reset() {
	t.prev = nil
}
