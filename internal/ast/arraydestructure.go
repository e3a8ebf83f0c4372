package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// ArrayDestructure evaluates Expr (which must yield an Array), binds each
// name in Names to the corresponding element, and — if RestName is set —
// binds the remainder to an Array. Without a rest name, the array's length
// must match len(Names) exactly; with one, it must be at least that long
// (spec.md §4.D, §8.1 invariant 8).
type ArrayDestructure struct {
	Names    []string // "_" entries are discarded bindings
	RestName string   // "" if no rest binding
	HasRest  bool
	Expr     Expression
	Export   bool
}

// NewArrayDestructure constructs an ArrayDestructure node, rejecting
// duplicate bound names (ignoring "_") as an unrecoverable error.
func NewArrayDestructure(names []string, restName string, hasRest bool, expr Expression, export bool) (*ArrayDestructure, error) {
	seen := make(map[string]bool)
	check := func(n string) error {
		if n == "_" {
			return nil
		}
		if seen[n] {
			return langerr.Unrecoverable("Duplicate binding name in array destructure: %s", n)
		}
		seen[n] = true
		return nil
	}
	for _, n := range names {
		if err := check(n); err != nil {
			return nil, err
		}
	}
	if hasRest {
		if err := check(restName); err != nil {
			return nil, err
		}
	}
	return &ArrayDestructure{Names: names, RestName: restName, HasRest: hasRest, Expr: expr, Export: export}, nil
}

// Execute evaluates Expr, validates its length, and binds each name.
func (n *ArrayDestructure) Execute(table *symtab.Table) (*value.Value, error) {
	v, err := n.Expr.Evaluate(table)
	if err != nil {
		return nil, err
	}
	if v.Tag() != value.TagArray {
		return nil, langerr.User("Array destructure requires an Array, got %s", v.TypeName())
	}
	elems := v.AsArray()
	if n.HasRest {
		if len(elems) < len(n.Names) {
			return nil, langerr.User("Array destructure with rest requires at least %d elements, got %d", len(n.Names), len(elems))
		}
	} else if len(elems) != len(n.Names) {
		return nil, langerr.User("Array destructure requires exactly %d elements, got %d", len(n.Names), len(elems))
	}

	exports := value.NewOrderedMap()
	bind := func(name string, val *value.Value) error {
		if name == "_" {
			return nil
		}
		if err := table.Define(name, val); err != nil {
			return err
		}
		if n.Export {
			exports.Set(value.NewString(name), val)
		}
		return nil
	}

	for i, name := range n.Names {
		if err := bind(name, elems[i]); err != nil {
			return nil, err
		}
	}
	if n.HasRest {
		rest := append([]*value.Value{}, elems[len(n.Names):]...)
		if err := bind(n.RestName, value.NewArray(rest)); err != nil {
			return nil, err
		}
	}
	if !n.Export || exports.Len() == 0 {
		return nil, nil
	}
	return value.NewMap(exports), nil
}

// SymbolSequence yields Expr's sequence then a Definition for each bound
// name (discarded "_" bindings define nothing).
func (n *ArrayDestructure) SymbolSequence() []SymbolAction {
	seq := n.Expr.SymbolSequence()
	for _, name := range n.Names {
		if name != "_" {
			seq = append(seq, Definition(name))
		}
	}
	if n.HasRest && n.RestName != "_" {
		seq = append(seq, Definition(n.RestName))
	}
	return seq
}

// Children returns Expr.
func (n *ArrayDestructure) Children() []ChildInfo {
	return []ChildInfo{{Label: "Expr", Node: n.Expr}}
}

// DebugDump renders the node label.
func (n *ArrayDestructure) DebugDump() string { return "Array_Destructure" }
