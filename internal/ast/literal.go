package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Literal wraps a primitive Value. The constructor rejects a non-primitive
// payload with an internal error — literal AST nodes may only hold
// primitive values (spec.md §3.2, §4.D).
type Literal struct {
	v *value.Value
}

// NewLiteral constructs a Literal node, panicking via langerr.Unreachable
// if v is not primitive (a broken evaluator/parser invariant, not a user
// error: the parser is responsible for only ever handing literals a
// primitive payload).
func NewLiteral(v *value.Value) *Literal {
	if !v.IsPrimitive() {
		langerr.Unreachable("Literal constructed with non-primitive value of type %s", v.TypeName())
	}
	return &Literal{v: v}
}

// Evaluate returns the wrapped value.
func (l *Literal) Evaluate(table *symtab.Table) (*value.Value, error) {
	return l.v, nil
}

// Execute evaluates and discards the result.
func (l *Literal) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(l, table)
}

// SymbolSequence is empty: a literal references and defines nothing.
func (l *Literal) SymbolSequence() []SymbolAction { return nil }

// Children is empty: a literal is a leaf node.
func (l *Literal) Children() []ChildInfo { return nil }

// DebugDump renders the literal's internal string form.
func (l *Literal) DebugDump() string {
	return "Literal(" + value.ToInternalString(l.v, true) + ")"
}
