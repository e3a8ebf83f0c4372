package ast

import (
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// If evaluates Cond; if truthy it evaluates Consequent, else Alternate (or
// Null if Alternate is absent). Spec.md §4.D.
type If struct {
	Cond       Expression
	Consequent Expression
	Alternate  Expression // nil if absent
}

// NewIf constructs an If node. alternate may be nil.
func NewIf(cond, consequent, alternate Expression) *If {
	return &If{Cond: cond, Consequent: consequent, Alternate: alternate}
}

// Evaluate implements the conditional dispatch.
func (n *If) Evaluate(table *symtab.Table) (*value.Value, error) {
	cond, err := n.Cond.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return n.Consequent.Evaluate(table)
	}
	if n.Alternate != nil {
		return n.Alternate.Evaluate(table)
	}
	return value.Null(), nil
}

// Execute evaluates and discards the result.
func (n *If) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields Cond's sequence, then Consequent's, then
// Alternate's if present. This over-approximates runtime behavior (both
// branches contribute to the sequence regardless of which one actually
// runs) which is the conservative choice the Lambda analyzer needs: any
// name that *could* be referenced must be captured.
func (n *If) SymbolSequence() []SymbolAction {
	seq := append(n.Cond.SymbolSequence(), n.Consequent.SymbolSequence()...)
	if n.Alternate != nil {
		seq = append(seq, n.Alternate.SymbolSequence()...)
	}
	return seq
}

// Children returns Cond, Consequent, and Alternate (if present).
func (n *If) Children() []ChildInfo {
	children := []ChildInfo{{Label: "Cond", Node: n.Cond}, {Label: "Consequent", Node: n.Consequent}}
	if n.Alternate != nil {
		children = append(children, ChildInfo{Label: "Alternate", Node: n.Alternate})
	}
	return children
}

// DebugDump renders the node label.
func (n *If) DebugDump() string { return "If" }
