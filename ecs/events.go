package ecs

// EventType names a gameplay event carried on the world queue.
type EventType string

const (
	EventJumped       EventType = "jumped"
	EventDoubleJumped EventType = "doubleJumped"
	EventDied         EventType = "died"
	EventSpawned      EventType = "spawned"
	EventGoal         EventType = "goal"
)

// Event is a queued gameplay event. Data is event specific and may be nil.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a FIFO queue. Events pushed during a frame are readable by
// every later system in that frame and cleared by the scheduler afterwards.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the pending events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
