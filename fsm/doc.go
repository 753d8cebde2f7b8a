// Package fsm implements table-driven finite state machines whose
// transitions are either fired explicitly or scheduled once per tick from a
// predicate table.
//
// A table is compiled once from a Spec and shared; each Machine only carries
// its current state and the context handed to predicates and effects.
// Wildcard sources must be expanded with Except when the spec is written, so
// every rule lists its legal sources explicitly.
package fsm
