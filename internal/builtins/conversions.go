package builtins

import (
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installConversions registers to_int/to_float/to_string/to_pretty_string
// (spec.md §4.A's explicit string-conversion family, §4.I).
func installConversions(table *symtab.Table) error {
	one := value.MaxOf(1)
	if err := define(table, "to_int", 1, one, func(args []*value.Value) (*value.Value, error) {
		return value.ToIntExplicit(args[0])
	}); err != nil {
		return err
	}
	if err := define(table, "to_float", 1, one, func(args []*value.Value) (*value.Value, error) {
		return value.ToFloatExplicit(args[0])
	}); err != nil {
		return err
	}
	if err := define(table, "to_string", 1, one, func(args []*value.Value) (*value.Value, error) {
		return value.NewString(value.ToString(args[0])), nil
	}); err != nil {
		return err
	}
	return define(table, "to_pretty_string", 1, one, func(args []*value.Value) (*value.Value, error) {
		return value.NewString(value.ToPrettyString(args[0])), nil
	})
}
