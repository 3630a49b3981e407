// Package store provides the public API for the definition registry
// while keeping implementation details internal.
package store

import (
	"github.com/mesh-intelligence/areagrid/internal/store"
)

// Registry is a SQLite-backed registry of resolved area definitions.
type Registry = store.Store

// Registry errors re-exported for callers matching with errors.Is.
var (
	ErrClosed             = store.ErrClosed
	ErrDefinitionNotFound = store.ErrDefinitionNotFound
)

// Open opens the registry database inside dataDir, creating the
// directory and schema on first use.
//
// Example:
//
//	reg, err := store.Open(".areagrid-db")
//	if err != nil { ... }
//	defer reg.Close()
func Open(dataDir string) (*Registry, error) {
	return store.Open(dataDir)
}
