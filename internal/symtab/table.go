// Package symtab implements the evaluator's symbol table: name-to-value
// bindings with optional failover to a parent scope and define-once
// discipline in a single scope (spec.md §3.5, component B).
package symtab

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/value"
)

// Table owns a map from name to value and an optional failover pointer to
// another table. Lookups recurse to failover on miss. A child table may
// shadow a name defined in its failover chain; redefining a name already
// present in the *same* table is an error.
//
// Grounded on symbol-table/symbol-table.cpp.
type Table struct {
	store    map[string]*value.Value
	failover *Table
}

// New creates a root-level table with no failover.
func New() *Table {
	return &Table{store: make(map[string]*value.Value)}
}

// NewChild creates a table whose lookups fail over to parent on miss. The
// parent must outlive the child.
func NewChild(parent *Table) *Table {
	return &Table{store: make(map[string]*value.Value), failover: parent}
}

// Reserve hints at the expected number of bindings this table will hold.
// A hint only; Go maps don't need pre-sizing for correctness, but callers
// (the Lambda evaluator) compute this count anyway per spec.md §4.F, so we
// honor it by pre-allocating the backing map.
func (t *Table) Reserve(n int) {
	if n <= 0 {
		return
	}
	grown := make(map[string]*value.Value, n+len(t.store))
	for k, v := range t.store {
		grown[k] = v
	}
	t.store = grown
}

// Define binds name to val in this table. Returns a recoverable error if
// name is already defined in this table (not the failover chain).
func (t *Table) Define(name string, val *value.Value) error {
	if _, exists := t.store[name]; exists {
		return langerr.User("Cannot define %s as it is already defined", name)
	}
	t.store[name] = val
	return nil
}

// Lookup searches this table, then recursively the failover chain. Returns
// a recoverable error if name is undefined anywhere in the chain.
func (t *Table) Lookup(name string) (*value.Value, error) {
	if v, ok := t.store[name]; ok {
		return v, nil
	}
	if t.failover != nil {
		return t.failover.Lookup(name)
	}
	return nil, langerr.User("Symbol %s is not defined", name)
}

// Has reports whether name is bound in this table or its failover chain.
func (t *Table) Has(name string) bool {
	if _, ok := t.store[name]; ok {
		return true
	}
	if t.failover != nil {
		return t.failover.Has(name)
	}
	return false
}

// HasLocal reports whether name is bound directly in this table, ignoring
// the failover chain.
func (t *Table) HasLocal(name string) bool {
	_, ok := t.store[name]
	return ok
}

// Failover returns the parent table, or nil at the root.
func (t *Table) Failover() *Table { return t.failover }

// Names returns the names bound directly in this table, for diagnostics
// (Callable.DebugDump's capture-list rendering).
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.store))
	for k := range t.store {
		names = append(names, k)
	}
	return names
}
