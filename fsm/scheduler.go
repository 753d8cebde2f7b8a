package fsm

// Predicate gates whether a transition may fire on its own this tick.
type Predicate[C any] func(ctx C) bool

// Predicates maps rule names to predicates. Rules without an entry never
// auto-fire; they can only be fired explicitly.
type Predicates[C any] map[string]Predicate[C]

// Step scans the transitions legal from the machine's current state in
// declaration order and fires the first one whose predicate holds. It fires at
// most one transition and returns its name, or "" when nothing fired.
func Step[S comparable, C any](m *Machine[S, C], preds Predicates[C]) (string, error) {
	if m.Terminal() {
		return "", nil
	}
	for _, idx := range m.table.legal[m.current] {
		name := m.table.rules[idx].Name
		p := preds[name]
		if p == nil || !p(m.ctx) {
			continue
		}
		if err := m.Fire(name); err != nil {
			return "", err
		}
		return name, nil
	}
	return "", nil
}
