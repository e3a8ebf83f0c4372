package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Define evaluates Expr and binds the result to Name. If Export is set,
// Execute returns a single-entry export Map {Name -> value} to be merged
// into the enclosing module's export map (spec.md §3.6, §4.D).
type Define struct {
	Name   string
	Expr   Expression
	Export bool
}

// NewDefine constructs a Define node, rejecting the reserved "_" token as
// an unrecoverable error.
func NewDefine(name string, expr Expression, export bool) (*Define, error) {
	if name == "_" {
		return nil, langerr.Unrecoverable(`"_" is not a valid identifier`)
	}
	return &Define{Name: name, Expr: expr, Export: export}, nil
}

// Execute evaluates Expr, defines Name, and returns an export pair if
// Export is set.
func (n *Define) Execute(table *symtab.Table) (*value.Value, error) {
	v, err := n.Expr.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if err := table.Define(n.Name, v); err != nil {
		return nil, err
	}
	if !n.Export {
		return nil, nil
	}
	return singleExport(n.Name, v), nil
}

// SymbolSequence yields Expr's sequence then a Definition of Name.
func (n *Define) SymbolSequence() []SymbolAction {
	return append(n.Expr.SymbolSequence(), Definition(n.Name))
}

// Children returns Expr.
func (n *Define) Children() []ChildInfo {
	return []ChildInfo{{Label: "Expr", Node: n.Expr}}
}

// DebugDump renders the node label.
func (n *Define) DebugDump() string { return "Define(" + n.Name + ")" }

// singleExport builds a one-entry export Map, shared by Define and the
// destructure nodes.
func singleExport(name string, v *value.Value) *value.Value {
	m := value.NewOrderedMap()
	m.Set(value.NewString(name), v)
	return value.NewMap(m)
}
