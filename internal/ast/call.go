package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// FunctionCall evaluates FnExpr, verifies it is a Function, then evaluates
// each argument expression left-to-right, then invokes the callable.
// Argument errors prevent the call from happening at all (spec.md §4.D,
// §5's ordering guarantee: callee first, then arguments left-to-right,
// then call).
type FunctionCall struct {
	FnExpr Expression
	Args   []Expression
}

// NewFunctionCall constructs a FunctionCall node.
func NewFunctionCall(fnExpr Expression, args []Expression) *FunctionCall {
	return &FunctionCall{FnExpr: fnExpr, Args: args}
}

// Evaluate implements the call's evaluation order and dispatch.
func (n *FunctionCall) Evaluate(table *symtab.Table) (*value.Value, error) {
	fnVal, err := n.FnExpr.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if fnVal.Tag() != value.TagFunction {
		return nil, langerr.User("Cannot call non-Function value of type %s", fnVal.TypeName())
	}
	args := make([]*value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := a.Evaluate(table)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return fnVal.AsFunction().Call(args)
}

// Execute evaluates and discards the result.
func (n *FunctionCall) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields FnExpr's sequence then each argument's in order.
func (n *FunctionCall) SymbolSequence() []SymbolAction {
	seq := n.FnExpr.SymbolSequence()
	for _, a := range n.Args {
		seq = append(seq, a.SymbolSequence()...)
	}
	return seq
}

// Children returns FnExpr followed by each argument.
func (n *FunctionCall) Children() []ChildInfo {
	children := []ChildInfo{{Label: "Fn", Node: n.FnExpr}}
	for _, a := range n.Args {
		children = append(children, ChildInfo{Label: "Arg", Node: a})
	}
	return children
}

// DebugDump renders the node label.
func (n *FunctionCall) DebugDump() string { return "Function_Call" }
