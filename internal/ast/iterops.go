package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// callFunctionValue evaluates fnExpr, verifies it is a Function, and
// returns a closure suitable for handing to the value package's iterative
// operations.
func callFunctionValue(fnExpr Expression, table *symtab.Table) (func(args []*value.Value) (*value.Value, error), error) {
	fnVal, err := fnExpr.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if fnVal.Tag() != value.TagFunction {
		return nil, langerr.User("Expected Function, got %s", fnVal.TypeName())
	}
	fn := fnVal.AsFunction()
	return fn.Call, nil
}

// MapExpr implements the `map` iteration-as-expression form: evaluates
// Structure then Fn, delegating to value.DoMap (spec.md §4.A, §4.D).
type MapExpr struct {
	Structure Expression
	Fn        Expression
}

// NewMapExpr constructs a MapExpr node.
func NewMapExpr(structure, fn Expression) *MapExpr { return &MapExpr{Structure: structure, Fn: fn} }

// Evaluate evaluates Structure and Fn, then delegates to value.DoMap.
func (n *MapExpr) Evaluate(table *symtab.Table) (*value.Value, error) {
	structure, err := n.Structure.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if !structure.IsStructured() {
		return nil, langerr.User("map requires Array or Map, got %s", structure.TypeName())
	}
	fn, err := callFunctionValue(n.Fn, table)
	if err != nil {
		return nil, err
	}
	return value.DoMap(structure, fn, "map")
}

// Execute evaluates and discards the result.
func (n *MapExpr) Execute(table *symtab.Table) (*value.Value, error) { return executeExpr(n, table) }

// SymbolSequence yields Structure's sequence then Fn's.
func (n *MapExpr) SymbolSequence() []SymbolAction {
	return append(n.Structure.SymbolSequence(), n.Fn.SymbolSequence()...)
}

// Children returns Structure and Fn.
func (n *MapExpr) Children() []ChildInfo {
	return []ChildInfo{{Label: "Structure", Node: n.Structure}, {Label: "Fn", Node: n.Fn}}
}

// DebugDump renders the node label.
func (n *MapExpr) DebugDump() string { return "Map" }

// FilterExpr implements the `filter` iteration-as-expression form.
type FilterExpr struct {
	Structure Expression
	Fn        Expression
}

// NewFilterExpr constructs a FilterExpr node.
func NewFilterExpr(structure, fn Expression) *FilterExpr {
	return &FilterExpr{Structure: structure, Fn: fn}
}

// Evaluate evaluates Structure and Fn, then delegates to value.DoFilter.
func (n *FilterExpr) Evaluate(table *symtab.Table) (*value.Value, error) {
	structure, err := n.Structure.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if !structure.IsStructured() {
		return nil, langerr.User("filter requires Array or Map, got %s", structure.TypeName())
	}
	fn, err := callFunctionValue(n.Fn, table)
	if err != nil {
		return nil, err
	}
	return value.DoFilter(structure, fn)
}

// Execute evaluates and discards the result.
func (n *FilterExpr) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields Structure's sequence then Fn's.
func (n *FilterExpr) SymbolSequence() []SymbolAction {
	return append(n.Structure.SymbolSequence(), n.Fn.SymbolSequence()...)
}

// Children returns Structure and Fn.
func (n *FilterExpr) Children() []ChildInfo {
	return []ChildInfo{{Label: "Structure", Node: n.Structure}, {Label: "Fn", Node: n.Fn}}
}

// DebugDump renders the node label.
func (n *FilterExpr) DebugDump() string { return "Filter" }

// ReduceExpr implements the `reduce` iteration-as-expression form. Init is
// nil when no initial accumulator was supplied (spec.md §4.A's array
// without-init fold).
type ReduceExpr struct {
	Structure Expression
	Fn        Expression
	Init      Expression // nil if absent
}

// NewReduceExpr constructs a ReduceExpr node. init may be nil.
func NewReduceExpr(structure, fn, init Expression) *ReduceExpr {
	return &ReduceExpr{Structure: structure, Fn: fn, Init: init}
}

// Evaluate evaluates Structure, Fn, and (if present) Init, then delegates
// to value.DoReduce.
func (n *ReduceExpr) Evaluate(table *symtab.Table) (*value.Value, error) {
	structure, err := n.Structure.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if !structure.IsStructured() {
		return nil, langerr.User("reduce requires Array or Map, got %s", structure.TypeName())
	}
	fn, err := callFunctionValue(n.Fn, table)
	if err != nil {
		return nil, err
	}
	var init *value.Value
	if n.Init != nil {
		init, err = n.Init.Evaluate(table)
		if err != nil {
			return nil, err
		}
	}
	return value.DoReduce(structure, fn, init)
}

// Execute evaluates and discards the result.
func (n *ReduceExpr) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields Structure's sequence, then Fn's, then Init's if
// present.
func (n *ReduceExpr) SymbolSequence() []SymbolAction {
	seq := append(n.Structure.SymbolSequence(), n.Fn.SymbolSequence()...)
	if n.Init != nil {
		seq = append(seq, n.Init.SymbolSequence()...)
	}
	return seq
}

// Children returns Structure, Fn, and Init (if present).
func (n *ReduceExpr) Children() []ChildInfo {
	children := []ChildInfo{{Label: "Structure", Node: n.Structure}, {Label: "Fn", Node: n.Fn}}
	if n.Init != nil {
		children = append(children, ChildInfo{Label: "Init", Node: n.Init})
	}
	return children
}

// DebugDump renders the node label.
func (n *ReduceExpr) DebugDump() string { return "Reduce" }

// ForeachExpr implements the `foreach` iteration-as-expression form. Always
// evaluates to Null; Fn's result being truthy breaks the loop early.
type ForeachExpr struct {
	Structure Expression
	Fn        Expression
}

// NewForeachExpr constructs a ForeachExpr node.
func NewForeachExpr(structure, fn Expression) *ForeachExpr {
	return &ForeachExpr{Structure: structure, Fn: fn}
}

// Evaluate evaluates Structure and Fn, then delegates to value.Foreach.
func (n *ForeachExpr) Evaluate(table *symtab.Table) (*value.Value, error) {
	structure, err := n.Structure.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if !structure.IsStructured() {
		return nil, langerr.User("foreach requires Array or Map, got %s", structure.TypeName())
	}
	fn, err := callFunctionValue(n.Fn, table)
	if err != nil {
		return nil, err
	}
	return value.Foreach(structure, fn)
}

// Execute evaluates and discards the result.
func (n *ForeachExpr) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields Structure's sequence then Fn's.
func (n *ForeachExpr) SymbolSequence() []SymbolAction {
	return append(n.Structure.SymbolSequence(), n.Fn.SymbolSequence()...)
}

// Children returns Structure and Fn.
func (n *ForeachExpr) Children() []ChildInfo {
	return []ChildInfo{{Label: "Structure", Node: n.Structure}, {Label: "Fn", Node: n.Fn}}
}

// DebugDump renders the node label.
func (n *ForeachExpr) DebugDump() string { return "Foreach" }
