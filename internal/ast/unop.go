package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// UnaryOp identifies which operator a Unop node applies.
type UnaryOp int

const (
	OpNegate UnaryOp = iota
	OpNot
)

// Unop applies a unary operator to an expression.
type Unop struct {
	Expr Expression
	Op   UnaryOp
}

// NewUnop constructs a Unop node.
func NewUnop(op UnaryOp, expr Expression) *Unop {
	return &Unop{Expr: expr, Op: op}
}

// Evaluate evaluates Expr, then applies negate or logical not.
func (u *Unop) Evaluate(table *symtab.Table) (*value.Value, error) {
	v, err := u.Expr.Evaluate(table)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case OpNegate:
		return value.Negate(v)
	case OpNot:
		return value.Not(v), nil
	default:
		langerr.Unreachable("Unop: unhandled operator %v", u.Op)
		return nil, nil
	}
}

// Execute evaluates and discards the result.
func (u *Unop) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(u, table)
}

// SymbolSequence delegates to Expr.
func (u *Unop) SymbolSequence() []SymbolAction { return u.Expr.SymbolSequence() }

// Children returns Expr.
func (u *Unop) Children() []ChildInfo {
	return []ChildInfo{{Label: "Expr", Node: u.Expr}}
}

// DebugDump renders the node label.
func (u *Unop) DebugDump() string {
	if u.Op == OpNegate {
		return "Unop(-)"
	}
	return "Unop(not)"
}
