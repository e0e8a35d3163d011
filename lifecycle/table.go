/*
table.go - Transition table validation

PURPOSE:
  The single validator shared by every document type. A TransitionTable is
  a total function over the document's status enum: every status has an
  entry, and terminal statuses map to an empty set.

FAIL-CLOSED POLICY:
  An unknown `from` status (a value missing from the table, e.g. a future
  status added to the database before the table was updated) yields false,
  never an error or a panic. Callers decide how to surface the rejection.

SIDE EFFECT POLICY:
  The validator is effect-free. Stamping lifecycle timestamps
  (issued_at, released_at, ...) at the transitions the table permits is the
  caller's contract; see shipping.ApplyTransition for the concrete version.

SEE ALSO:
  - types.go: Status, StatusSet, TransitionTable definitions
  - finance/types.go, shipping/types.go: The concrete tables
*/
package lifecycle

// TransitionTable maps each status of one document type to the set of
// statuses it may move to. Defined as a package-level constant by the
// owning domain package and never mutated at runtime.
type TransitionTable map[Status]StatusSet

// IsValidTransition reports whether moving from `from` to `to` is allowed
// by the table. Unknown `from` statuses fail closed.
func IsValidTransition(table TransitionTable, from, to Status) bool {
	return table.Allows(from, to)
}

// Allows is the method form of IsValidTransition.
func (t TransitionTable) Allows(from, to Status) bool {
	next, ok := t[from]
	if !ok {
		return false
	}
	return next.Has(to)
}

// IsTerminal reports whether the status is known to the table and permits
// no further transitions. Unknown statuses are not terminal; they are
// simply invalid, and Allows already rejects everything from them.
func (t TransitionTable) IsTerminal(s Status) bool {
	next, ok := t[s]
	return ok && len(next) == 0
}

// Contains reports whether the status is a member of the table's enum.
func (t TransitionTable) Contains(s Status) bool {
	_, ok := t[s]
	return ok
}

// Next returns the allowed targets from the given status in stable order.
// Unknown statuses yield an empty slice.
func (t TransitionTable) Next(from Status) []Status {
	next, ok := t[from]
	if !ok {
		return []Status{}
	}
	return next.List()
}

// Statuses returns every status in the table's enum in stable order.
func (t TransitionTable) Statuses() []Status {
	set := make(StatusSet, len(t))
	for s := range t {
		set[s] = struct{}{}
	}
	return set.List()
}

// Terminals returns every terminal status in stable order.
func (t TransitionTable) Terminals() []Status {
	set := make(StatusSet)
	for s, next := range t {
		if len(next) == 0 {
			set[s] = struct{}{}
		}
	}
	return set.List()
}
