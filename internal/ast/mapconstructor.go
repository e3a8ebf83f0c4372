package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// MapPairExpr is one key/value expression pair in a Map_Constructor.
type MapPairExpr struct {
	Key   Expression
	Value Expression
}

// MapConstructor evaluates each pair's key then value in source order and
// builds a Map value, insert-or-assign with last duplicate winning. Every
// key and value expression is evaluated even when a later pair overwrites
// it — spec.md §9 explicitly calls out preserving this side-effecting
// order.
type MapConstructor struct {
	Pairs []MapPairExpr
}

// NewMapConstructor constructs a MapConstructor node.
func NewMapConstructor(pairs []MapPairExpr) *MapConstructor {
	return &MapConstructor{Pairs: pairs}
}

// Evaluate evaluates each pair's key then value, building the Map with
// insert-or-assign semantics.
func (n *MapConstructor) Evaluate(table *symtab.Table) (*value.Value, error) {
	acc := value.NewOrderedMap()
	for _, p := range n.Pairs {
		k, err := p.Key.Evaluate(table)
		if err != nil {
			return nil, err
		}
		v, err := p.Value.Evaluate(table)
		if err != nil {
			return nil, err
		}
		if k.IsNull() || !k.IsPrimitive() {
			return nil, langerr.User("Map keys must be non-null primitive, got %s", k.TypeName())
		}
		acc.Set(k, v)
	}
	return value.NewMap(acc), nil
}

// Execute evaluates and discards the result.
func (n *MapConstructor) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence concatenates each pair's key sequence then value sequence,
// in source order.
func (n *MapConstructor) SymbolSequence() []SymbolAction {
	var seq []SymbolAction
	for _, p := range n.Pairs {
		seq = append(seq, p.Key.SymbolSequence()...)
		seq = append(seq, p.Value.SymbolSequence()...)
	}
	return seq
}

// Children returns each pair's key and value, labeled.
func (n *MapConstructor) Children() []ChildInfo {
	children := make([]ChildInfo, 0, len(n.Pairs)*2)
	for _, p := range n.Pairs {
		children = append(children, ChildInfo{Label: "Key", Node: p.Key}, ChildInfo{Label: "Value", Node: p.Value})
	}
	return children
}

// DebugDump renders the node label.
func (n *MapConstructor) DebugDump() string { return "Map_Constructor" }
