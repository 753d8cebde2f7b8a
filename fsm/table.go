package fsm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTable      = errors.New("fsm: invalid table")
	ErrUnknownTransition = errors.New("fsm: unknown transition")
	ErrIllegalTransition = errors.New("fsm: illegal transition")
)

// Rule is a named edge from a set of legal source states to a single target.
// Effect, when set, runs after the machine has moved to the target state.
type Rule[S comparable, C any] struct {
	Name   string
	From   []S
	To     S
	Effect func(ctx C)
}

// Transition describes one fired rule.
type Transition[S comparable] struct {
	Name string
	From S
	To   S
}

// Spec is the uncompiled description of a machine.
type Spec[S comparable, C any] struct {
	Initial  S
	States   []S
	Terminal []S
	Rules    []Rule[S, C]
	// OnEnter runs for every fired rule, before the rule's own Effect.
	OnEnter func(ctx C, t Transition[S])
}

// Table is a compiled, immutable transition table shared by every machine
// built from it.
type Table[S comparable, C any] struct {
	initial  S
	states   []S
	terminal map[S]bool
	rules    []Rule[S, C]
	index    map[string]int
	legal    map[S][]int
	onEnter  func(ctx C, t Transition[S])
}

// Compile validates a spec and precomputes, for every state, the rules that
// may leave it in declaration order.
func Compile[S comparable, C any](spec Spec[S, C]) (*Table[S, C], error) {
	known := make(map[S]bool, len(spec.States))
	for _, s := range spec.States {
		if known[s] {
			return nil, fmt.Errorf("%w: duplicate state %v", ErrInvalidTable, s)
		}
		known[s] = true
	}
	if !known[spec.Initial] {
		return nil, fmt.Errorf("%w: initial state %v not declared", ErrInvalidTable, spec.Initial)
	}

	terminal := make(map[S]bool, len(spec.Terminal))
	for _, s := range spec.Terminal {
		if !known[s] {
			return nil, fmt.Errorf("%w: terminal state %v not declared", ErrInvalidTable, s)
		}
		terminal[s] = true
	}

	t := &Table[S, C]{
		initial:  spec.Initial,
		states:   append([]S(nil), spec.States...),
		terminal: terminal,
		rules:    make([]Rule[S, C], 0, len(spec.Rules)),
		index:    make(map[string]int, len(spec.Rules)),
		legal:    make(map[S][]int, len(spec.States)),
		onEnter:  spec.OnEnter,
	}

	for i, r := range spec.Rules {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", ErrInvalidTable, i)
		}
		if _, dup := t.index[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate rule %q", ErrInvalidTable, r.Name)
		}
		if !known[r.To] {
			return nil, fmt.Errorf("%w: rule %q targets undeclared state %v", ErrInvalidTable, r.Name, r.To)
		}
		if len(r.From) == 0 {
			return nil, fmt.Errorf("%w: rule %q has no source states", ErrInvalidTable, r.Name)
		}
		seen := make(map[S]bool, len(r.From))
		for _, from := range r.From {
			switch {
			case !known[from]:
				return nil, fmt.Errorf("%w: rule %q leaves undeclared state %v", ErrInvalidTable, r.Name, from)
			case terminal[from]:
				return nil, fmt.Errorf("%w: rule %q leaves terminal state %v", ErrInvalidTable, r.Name, from)
			case seen[from]:
				return nil, fmt.Errorf("%w: rule %q lists %v twice", ErrInvalidTable, r.Name, from)
			}
			seen[from] = true
		}

		idx := len(t.rules)
		r.From = append([]S(nil), r.From...)
		t.index[r.Name] = idx
		t.rules = append(t.rules, r)
		for _, from := range r.From {
			t.legal[from] = append(t.legal[from], idx)
		}
	}

	return t, nil
}

// MustCompile is Compile for package-level tables.
func MustCompile[S comparable, C any](spec Spec[S, C]) *Table[S, C] {
	t, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return t
}

// Initial returns the rest state of machines built from the table.
func (t *Table[S, C]) Initial() S { return t.initial }

// States returns the declared states.
func (t *Table[S, C]) States() []S { return append([]S(nil), t.states...) }

// Rule returns the rule with the given name.
func (t *Table[S, C]) Rule(name string) (Rule[S, C], bool) {
	i, ok := t.index[name]
	if !ok {
		return Rule[S, C]{}, false
	}
	return t.rules[i], true
}

// Names returns every rule name in declaration order.
func (t *Table[S, C]) Names() []string {
	out := make([]string, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Name
	}
	return out
}

// IsTerminal reports whether s has no outgoing transitions.
func (t *Table[S, C]) IsTerminal(s S) bool { return t.terminal[s] }

// Except expands an "every other state" wildcard into an explicit list,
// keeping the order of all.
func Except[S comparable](all []S, skip ...S) []S {
	out := make([]S, 0, len(all))
outer:
	for _, s := range all {
		for _, k := range skip {
			if s == k {
				continue outer
			}
		}
		out = append(out, s)
	}
	return out
}
