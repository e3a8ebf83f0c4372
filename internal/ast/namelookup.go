package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// NameLookup resolves an identifier against the symbol table. The
// constructor rejects the reserved "_" discarded-binding token.
type NameLookup struct {
	Name string
}

// NewNameLookup constructs a NameLookup node, returning an unrecoverable
// error if name is "_".
func NewNameLookup(name string) (*NameLookup, error) {
	if name == "_" {
		return nil, langerr.Unrecoverable(`"_" is not a valid identifier`)
	}
	return &NameLookup{Name: name}, nil
}

// Evaluate looks up Name in table.
func (n *NameLookup) Evaluate(table *symtab.Table) (*value.Value, error) {
	return table.Lookup(n.Name)
}

// Execute evaluates and discards the result.
func (n *NameLookup) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields a single Usage of Name.
func (n *NameLookup) SymbolSequence() []SymbolAction {
	return []SymbolAction{Usage(n.Name)}
}

// Children is empty: a name lookup is a leaf node.
func (n *NameLookup) Children() []ChildInfo { return nil }

// DebugDump renders the node label.
func (n *NameLookup) DebugDump() string {
	return "Name_Lookup(" + n.Name + ")"
}
