package builtins

import (
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installTypeTests registers the is_* predicates of spec.md §4.I.
func installTypeTests(table *symtab.Table) error {
	one := value.MaxOf(1)
	tagTests := map[string]value.Tag{
		"is_null":     value.TagNull,
		"is_int":      value.TagInt,
		"is_float":    value.TagFloat,
		"is_bool":     value.TagBool,
		"is_string":   value.TagString,
		"is_array":    value.TagArray,
		"is_map":      value.TagMap,
		"is_function": value.TagFunction,
	}
	for name, tag := range tagTests {
		tag := tag
		if err := define(table, name, 1, one, func(args []*value.Value) (*value.Value, error) {
			return value.NewBool(args[0].Tag() == tag), nil
		}); err != nil {
			return err
		}
	}

	predicates := map[string]func(*value.Value) bool{
		"is_nonnull":   func(v *value.Value) bool { return !v.IsNull() },
		"is_numeric":   func(v *value.Value) bool { return v.IsNumeric() },
		"is_primitive": func(v *value.Value) bool { return v.IsPrimitive() },
		"is_structured": func(v *value.Value) bool {
			return v.IsStructured()
		},
	}
	for name, pred := range predicates {
		pred := pred
		if err := define(table, name, 1, one, func(args []*value.Value) (*value.Value, error) {
			return value.NewBool(pred(args[0])), nil
		}); err != nil {
			return err
		}
	}
	return nil
}
