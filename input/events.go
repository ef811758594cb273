package input

import "fmt"

type EventKind int

const (
	EventUnknown EventKind = iota
	EventQuit
	EventMouseDown
	EventMouseUp
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventMouseDown:
		return "mouse_down"
	case EventMouseUp:
		return "mouse_up"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Event is a discrete window or pointer event. X and Y are screen pixels for
// mouse events.
type Event struct {
	Kind EventKind
	X, Y int
}

// Queue is a simple FIFO of events.
type Queue struct {
	items []Event
}

func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Frame is everything a Source observed since the previous poll.
type Frame struct {
	Keys   KeySet
	Events []Event
}

type Source interface {
	Poll() (Frame, error)
}
