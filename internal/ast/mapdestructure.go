package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// MapDestructureElement binds Name to the value found under KeyExpr's
// result in the destructured Map (or Null if the key is missing).
type MapDestructureElement struct {
	KeyExpr Expression
	Name    string
}

// MapDestructure evaluates Expr (which must yield a Map); for each element,
// evaluates KeyExpr (must be non-null primitive), looks it up in the Map,
// and binds Name to the value found or Null if absent (spec.md §4.D).
type MapDestructure struct {
	Elements []MapDestructureElement
	Expr     Expression
	Export   bool
}

// NewMapDestructure constructs a MapDestructure node, rejecting duplicate
// bound names (ignoring "_") as an unrecoverable error.
func NewMapDestructure(elements []MapDestructureElement, expr Expression, export bool) (*MapDestructure, error) {
	seen := make(map[string]bool)
	for _, e := range elements {
		if e.Name == "_" {
			continue
		}
		if seen[e.Name] {
			return nil, langerr.Unrecoverable("Duplicate binding name in map destructure: %s", e.Name)
		}
		seen[e.Name] = true
	}
	return &MapDestructure{Elements: elements, Expr: expr, Export: export}, nil
}

// Execute evaluates Expr and each key expression, then binds each name.
func (n *MapDestructure) Execute(table *symtab.Table) (*value.Value, error) {
	v, err := n.Expr.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if v.Tag() != value.TagMap {
		return nil, langerr.User("Map destructure requires a Map, got %s", v.TypeName())
	}
	exports := value.NewOrderedMap()
	for _, elem := range n.Elements {
		key, err := elem.KeyExpr.Evaluate(table)
		if err != nil {
			return nil, err
		}
		if key.IsNull() || !key.IsPrimitive() {
			return nil, langerr.User("Map destructure key must be a non-null primitive, got %s", key.TypeName())
		}
		bound, ok := v.AsMap().Get(key)
		if !ok {
			bound = value.Null()
		}
		if elem.Name == "_" {
			continue
		}
		if err := table.Define(elem.Name, bound); err != nil {
			return nil, err
		}
		if n.Export {
			exports.Set(value.NewString(elem.Name), bound)
		}
	}
	if !n.Export || exports.Len() == 0 {
		return nil, nil
	}
	return value.NewMap(exports), nil
}

// SymbolSequence yields each key expression's sequence followed by a
// Definition of its bound name, in element order.
func (n *MapDestructure) SymbolSequence() []SymbolAction {
	var seq []SymbolAction
	for _, elem := range n.Elements {
		seq = append(seq, elem.KeyExpr.SymbolSequence()...)
		if elem.Name != "_" {
			seq = append(seq, Definition(elem.Name))
		}
	}
	return seq
}

// Children returns Expr followed by each key expression.
func (n *MapDestructure) Children() []ChildInfo {
	children := []ChildInfo{{Label: "Expr", Node: n.Expr}}
	for _, elem := range n.Elements {
		children = append(children, ChildInfo{Label: "Key(" + elem.Name + ")", Node: elem.KeyExpr})
	}
	return children
}

// DebugDump renders the node label.
func (n *MapDestructure) DebugDump() string { return "Map_Destructure" }
