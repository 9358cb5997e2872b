package compiler

import (
	"sync"

	"github.com/queryforge/pdbquery/internal/dbprim"
)

var (
	primMu  sync.RWMutex
	primsFn dbprim.Primitives = dbprim.SQLite{}
)

// Primitives returns the host-provided database primitives the leaf
// predicate compilers currently use. Defaults to the SQLite flavor since
// that is what internal/sqltest executes against.
func Primitives() dbprim.Primitives {
	primMu.RLock()
	defer primMu.RUnlock()
	return primsFn
}

// SetPrimitives swaps the active primitives, returning the previous value
// so callers (tests pinning worked examples against dbprim.Stub) can
// restore it. The compiler is otherwise a pure function of (table, node);
// this is the one pluggable seam, and it is a deliberate package-level
// hook rather than a field threaded through every CompileFunc, since the
// operator tables are themselves plain data closed over no state but each
// other.
func SetPrimitives(p dbprim.Primitives) dbprim.Primitives {
	primMu.Lock()
	defer primMu.Unlock()
	prev := primsFn
	primsFn = p
	return prev
}
