package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Index evaluates Structure then Idx, dispatching to array/map indexing
// (spec.md §4.D, §4.A). The structure must be Array or Map.
type Index struct {
	Structure Expression
	Idx       Expression
}

// NewIndex constructs an Index node.
func NewIndex(structure, idx Expression) *Index {
	return &Index{Structure: structure, Idx: idx}
}

// Evaluate evaluates Structure then Idx, then delegates to value.Index.
func (n *Index) Evaluate(table *symtab.Table) (*value.Value, error) {
	structure, err := n.Structure.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if !structure.IsStructured() {
		return nil, langerr.User("Cannot index into %s", structure.TypeName())
	}
	idx, err := n.Idx.Evaluate(table)
	if err != nil {
		return nil, err
	}
	return value.Index(structure, idx)
}

// Execute evaluates and discards the result.
func (n *Index) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields Structure's sequence then Idx's.
func (n *Index) SymbolSequence() []SymbolAction {
	return append(n.Structure.SymbolSequence(), n.Idx.SymbolSequence()...)
}

// Children returns Structure and Idx.
func (n *Index) Children() []ChildInfo {
	return []ChildInfo{{Label: "Structure", Node: n.Structure}, {Label: "Idx", Node: n.Idx}}
}

// DebugDump renders the node label.
func (n *Index) DebugDump() string { return "Index" }
