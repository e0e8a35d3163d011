/*
Package lifecycle provides the core document state-machine engine.

PURPOSE:
  This package contains domain-agnostic types and algorithms for validating
  document status transitions. Whether the document is an invoice, a cash
  disbursement voucher, or a bill of lading, the same engine answers the
  question "may this document move from status A to status B?".

KEY CONCEPTS IN THIS FILE (types.go):
  - Status: A document lifecycle state (e.g., "draft", "issued")
  - StatusSet: The set of statuses reachable from a given state
  - TransitionTable: The full state machine for one document type
  - DocType: Type-safe identifier for a document variant

DESIGN PRINCIPLES:
  1. Tables are data: each document type is a constant map, never code
  2. Composition over inheritance: callers inject their table, the engine
     has NO knowledge of specific document types
  3. Fail closed: anything not explicitly allowed by a table is rejected
  4. Purity: no clocks, no I/O, no mutation of inputs

USAGE:
  table := lifecycle.TransitionTable{
      "draft":   lifecycle.NewStatusSet("submitted"),
      "submitted": lifecycle.NewStatusSet("approved", "draft"),
      "approved": lifecycle.NewStatusSet(), // terminal
  }
  ok := lifecycle.IsValidTransition(table, "draft", "submitted") // true

SEE ALSO:
  - table.go: Transition validation and terminal detection
  - registry.go: Document-type registration for adapter layers
*/
package lifecycle

import "sort"

// =============================================================================
// STATUS - A document lifecycle state
// =============================================================================

type Status string

// StatusSet is the set of statuses reachable from a given state.
// An empty (non-nil) set marks a terminal state.
type StatusSet map[Status]struct{}

// NewStatusSet builds a set from the given statuses. Call with no
// arguments to declare a terminal state.
func NewStatusSet(statuses ...Status) StatusSet {
	s := make(StatusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the given status.
func (s StatusSet) Has(st Status) bool {
	_, ok := s[st]
	return ok
}

// List returns the members in a stable (sorted) order.
func (s StatusSet) List() []Status {
	out := make([]Status, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// =============================================================================
// DOCUMENT TYPE - Identifies which state machine applies
// =============================================================================

// DocType identifies a document variant. Domain packages define their own
// constants and register them together with their transition table.
type DocType string
