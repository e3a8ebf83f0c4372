package builtins

import (
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installArithmetic registers the thin operator-wrapper built-ins of
// spec.md §4.I: plain 2-ary delegations to the Value ops already
// implemented in internal/value/ops.go.
func installArithmetic(table *symtab.Table) error {
	two := value.MaxOf(2)
	wrappers := map[string]func(a, b *value.Value) (*value.Value, error){
		"plus":   value.Add,
		"minus":  value.Sub,
		"times":  value.Mul,
		"divide": value.Div,
		"mod":    value.Mod,
		"less_than": func(a, b *value.Value) (*value.Value, error) { return value.Lt(a, b) },
		"less_than_or_equal": func(a, b *value.Value) (*value.Value, error) {
			return value.Le(a, b)
		},
		"greater_than": func(a, b *value.Value) (*value.Value, error) { return value.Gt(a, b) },
		"greater_than_or_equal": func(a, b *value.Value) (*value.Value, error) {
			return value.Ge(a, b)
		},
	}
	for name, op := range wrappers {
		op := op
		if err := define(table, name, 2, two, func(args []*value.Value) (*value.Value, error) {
			return op(args[0], args[1])
		}); err != nil {
			return err
		}
	}

	if err := define(table, "equal", 2, two, func(args []*value.Value) (*value.Value, error) {
		return value.Eq(args[0], args[1]), nil
	}); err != nil {
		return err
	}
	return define(table, "not_equal", 2, two, func(args []*value.Value) (*value.Value, error) {
		return value.Ne(args[0], args[1]), nil
	})
}
