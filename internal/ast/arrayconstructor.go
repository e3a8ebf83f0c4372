package ast

import (
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// ArrayConstructor evaluates its elements left-to-right and builds an
// Array value (spec.md §4.D).
type ArrayConstructor struct {
	Elements []Expression
}

// NewArrayConstructor constructs an ArrayConstructor node.
func NewArrayConstructor(elements []Expression) *ArrayConstructor {
	return &ArrayConstructor{Elements: elements}
}

// Evaluate evaluates each element in order.
func (n *ArrayConstructor) Evaluate(table *symtab.Table) (*value.Value, error) {
	elems := make([]*value.Value, len(n.Elements))
	for i, e := range n.Elements {
		v, err := e.Evaluate(table)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems), nil
}

// Execute evaluates and discards the result.
func (n *ArrayConstructor) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence concatenates each element's sequence in order.
func (n *ArrayConstructor) SymbolSequence() []SymbolAction {
	var seq []SymbolAction
	for _, e := range n.Elements {
		seq = append(seq, e.SymbolSequence()...)
	}
	return seq
}

// Children returns each element labeled by its index.
func (n *ArrayConstructor) Children() []ChildInfo {
	children := make([]ChildInfo, len(n.Elements))
	for i, e := range n.Elements {
		children[i] = ChildInfo{Label: "Element", Node: e}
	}
	return children
}

// DebugDump renders the node label.
func (n *ArrayConstructor) DebugDump() string { return "Array_Constructor" }
