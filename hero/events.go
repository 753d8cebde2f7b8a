package hero

// Event names a notification emitted by the controller.
type Event string

const (
	EventJumped       Event = "jumped"
	EventDoubleJumped Event = "doubleJumped"
	EventDied         Event = "died"
)

// Listener receives controller events synchronously, in the tick they happen.
type Listener func(ev Event)

// emitter calls a fixed, ordered list of listeners. The list is set when the
// hero is built and never changes, so nothing outlives the hero.
type emitter struct {
	listeners []Listener
}

func newEmitter(ls []Listener) emitter {
	out := make([]Listener, 0, len(ls))
	for _, l := range ls {
		if l != nil {
			out = append(out, l)
		}
	}
	return emitter{listeners: out}
}

func (e *emitter) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

// Stats tallies controller events. Its Listen method can be handed to a
// Lifecycle so the tally survives respawns.
type Stats struct {
	Jumps  int
	Flips  int
	Deaths int
}

func (s *Stats) Listen(ev Event) {
	switch ev {
	case EventJumped:
		s.Jumps++
	case EventDoubleJumped:
		s.Flips++
	case EventDied:
		s.Deaths++
	}
}
