package fsm

import "fmt"

// IllegalTransitionError reports a Fire from a state outside the rule's
// legal sources, or from a terminal state.
type IllegalTransitionError[S comparable] struct {
	Name  string
	State S
}

func (e *IllegalTransitionError[S]) Error() string {
	return fmt.Sprintf("fsm: illegal transition %q from %v", e.Name, e.State)
}

func (e *IllegalTransitionError[S]) Unwrap() error { return ErrIllegalTransition }

// Reader is a read-only view of a machine's current state.
type Reader[S comparable] interface {
	Current() S
	Is(s S) bool
}

// Machine is one instance of a compiled table bound to its context.
type Machine[S comparable, C any] struct {
	table   *Table[S, C]
	ctx     C
	current S
}

// New creates a machine in the table's initial state. No enter hook runs.
func New[S comparable, C any](table *Table[S, C], ctx C) *Machine[S, C] {
	return &Machine[S, C]{table: table, ctx: ctx, current: table.initial}
}

func (m *Machine[S, C]) Current() S { return m.current }

func (m *Machine[S, C]) Is(s S) bool { return m.current == s }

// Terminal reports whether the machine can never transition again.
func (m *Machine[S, C]) Terminal() bool { return m.table.terminal[m.current] }

// Can reports whether the named rule may fire from the current state.
func (m *Machine[S, C]) Can(name string) bool {
	if m.Terminal() {
		return false
	}
	i, ok := m.table.index[name]
	if !ok {
		return false
	}
	for _, from := range m.table.rules[i].From {
		if from == m.current {
			return true
		}
	}
	return false
}

// Transitions lists the rules legal from the current state, in declaration
// order.
func (m *Machine[S, C]) Transitions() []string {
	if m.Terminal() {
		return nil
	}
	legal := m.table.legal[m.current]
	out := make([]string, len(legal))
	for i, idx := range legal {
		out[i] = m.table.rules[idx].Name
	}
	return out
}

// Fire moves the machine along the named rule and runs its side effects.
// The state is committed before any hook runs.
func (m *Machine[S, C]) Fire(name string) error {
	i, ok := m.table.index[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTransition, name)
	}
	if !m.Can(name) {
		return &IllegalTransitionError[S]{Name: name, State: m.current}
	}
	m.fire(i)
	return nil
}

func (m *Machine[S, C]) fire(i int) {
	r := m.table.rules[i]
	t := Transition[S]{Name: r.Name, From: m.current, To: r.To}
	m.current = r.To
	if m.table.onEnter != nil {
		m.table.onEnter(m.ctx, t)
	}
	if r.Effect != nil {
		r.Effect(m.ctx)
	}
}
