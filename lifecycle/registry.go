/*
registry.go - Document-type registration and lookup

PURPOSE:
  Provides a registry for domain packages to register their document types
  together with the transition table and initial status that govern them.
  Adapter layers (HTTP handlers, stores) resolve a persisted type string
  back to its state machine through this registry.

HOW IT WORKS:
  1. Domain packages define their TransitionTable constants
  2. Domain packages register them on init()
  3. The api/store layers look machines up by DocType

WHY A REGISTRY:
  - The engine stays domain-agnostic
  - Domains own their tables
  - Clean resolution from persisted strings to state machines

SEE ALSO:
  - finance/types.go, shipping/types.go: Registration call sites
  - api/handlers.go: Lookup call sites
*/
package lifecycle

import (
	"sort"
	"sync"
)

// Machine bundles everything the adapter layers need to drive one
// document type: its table and the status new documents start in.
type Machine struct {
	Type    DocType
	Table   TransitionTable
	Initial Status
}

var (
	registry   = make(map[DocType]Machine)
	registryMu sync.RWMutex
)

// Register adds a document type to the global registry.
// Call this from domain package init() functions.
func Register(docType DocType, table TransitionTable, initial Status) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[docType] = Machine{Type: docType, Table: table, Initial: initial}
}

// Lookup finds a registered document type. The second return is false for
// unknown types; callers fail closed on it.
func Lookup(docType DocType) (Machine, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[docType]
	return m, ok
}

// RegisteredTypes returns every registered document type in stable order.
func RegisteredTypes() []DocType {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]DocType, 0, len(registry))
	for dt := range registry {
		out = append(out, dt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
