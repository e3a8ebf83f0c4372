package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// BinaryOp identifies which operator a Binop node applies.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
)

var binopGlyphs = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpEq: "==", OpNe: "!=", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
	OpAnd: "and", OpOr: "or",
}

// Binop applies a binary operator to two expressions. LHS always evaluates
// strictly before RHS, except and/or which short-circuit (spec.md §5, §4.D).
type Binop struct {
	LHS, RHS Expression
	Op       BinaryOp
}

// NewBinop constructs a Binop node.
func NewBinop(lhs Expression, op BinaryOp, rhs Expression) *Binop {
	return &Binop{LHS: lhs, Op: op, RHS: rhs}
}

// Evaluate implements the per-operator evaluation order of spec.md §4.D.
func (b *Binop) Evaluate(table *symtab.Table) (*value.Value, error) {
	lhs, err := b.LHS.Evaluate(table)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case OpAnd:
		return value.And(lhs, func() (*value.Value, error) { return b.RHS.Evaluate(table) })
	case OpOr:
		return value.Or(lhs, func() (*value.Value, error) { return b.RHS.Evaluate(table) })
	}

	rhs, err := b.RHS.Evaluate(table)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case OpAdd:
		return value.Add(lhs, rhs)
	case OpSub:
		return value.Sub(lhs, rhs)
	case OpMul:
		return value.Mul(lhs, rhs)
	case OpDiv:
		return value.Div(lhs, rhs)
	case OpMod:
		return value.Mod(lhs, rhs)
	case OpEq:
		return value.Eq(lhs, rhs), nil
	case OpNe:
		return value.Ne(lhs, rhs), nil
	case OpLt:
		return value.Lt(lhs, rhs)
	case OpLe:
		return value.Le(lhs, rhs)
	case OpGt:
		return value.Gt(lhs, rhs)
	case OpGe:
		return value.Ge(lhs, rhs)
	default:
		langerr.Unreachable("Binop: unhandled operator %v", b.Op)
		return nil, nil
	}
}

// Execute evaluates and discards the result.
func (b *Binop) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(b, table)
}

// SymbolSequence yields LHS's sequence then RHS's sequence.
func (b *Binop) SymbolSequence() []SymbolAction {
	return append(b.LHS.SymbolSequence(), b.RHS.SymbolSequence()...)
}

// Children returns LHS and RHS.
func (b *Binop) Children() []ChildInfo {
	return []ChildInfo{{Label: "LHS", Node: b.LHS}, {Label: "RHS", Node: b.RHS}}
}

// DebugDump renders the node label.
func (b *Binop) DebugDump() string {
	return "Binop(" + binopGlyphs[b.Op] + ")"
}
