package builtins

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installCore registers the general-purpose built-ins of spec.md §4.I that
// are not arithmetic wrappers, type tests, or conversions: deep_equal, has,
// len, keys/values, id, nulls, pack_call, try_call, and_then/or_else, and
// assert.
func installCore(table *symtab.Table) error {
	if err := define(table, "deep_equal", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		return value.NewBool(value.DeepEqual(args[0], args[1])), nil
	}); err != nil {
		return err
	}

	if err := define(table, "has", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		return value.Has(args[0], args[1])
	}); err != nil {
		return err
	}

	if err := define(table, "len", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		return value.Len(args[0])
	}); err != nil {
		return err
	}

	if err := define(table, "keys", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		m, err := requireMap(args[0], "keys")
		if err != nil {
			return nil, err
		}
		return value.NewArray(m.Keys()), nil
	}); err != nil {
		return err
	}

	if err := define(table, "values", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		m, err := requireMap(args[0], "values")
		if err != nil {
			return nil, err
		}
		return value.NewArray(m.Values()), nil
	}); err != nil {
		return err
	}

	if err := define(table, "id", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		return args[0], nil
	}); err != nil {
		return err
	}

	if err := define(table, "nulls", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		n, err := requireInt(args[0], "nulls")
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, langerr.User("nulls: n must be non-negative, got %d", n)
		}
		out := make([]*value.Value, n)
		for i := range out {
			out[i] = value.Null()
		}
		return value.NewArray(out), nil
	}); err != nil {
		return err
	}

	if err := define(table, "pack_call", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		fn, err := requireFunction(args[0], "pack_call")
		if err != nil {
			return nil, err
		}
		argsArr, err := requireArray(args[1], "pack_call")
		if err != nil {
			return nil, err
		}
		return fn.Call(argsArr)
	}); err != nil {
		return err
	}

	if err := define(table, "try_call", 2, value.MaxOf(2), tryCall); err != nil {
		return err
	}

	if err := define(table, "and_then", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		if args[0].IsNull() {
			return value.Null(), nil
		}
		fn, err := requireFunction(args[1], "and_then")
		if err != nil {
			return nil, err
		}
		return fn.Call([]*value.Value{args[0]})
	}); err != nil {
		return err
	}

	if err := define(table, "or_else", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		if !args[0].IsNull() {
			return args[0], nil
		}
		fn, err := requireFunction(args[1], "or_else")
		if err != nil {
			return nil, err
		}
		return fn.Call(nil)
	}); err != nil {
		return err
	}

	return define(table, "assert", 1, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		if args[0].Truthy() {
			return value.Null(), nil
		}
		msg := "assertion failed"
		if len(args) == 2 {
			msg = value.ToString(args[1])
		}
		return nil, langerr.User("%s", msg)
	})
}

// tryCall implements try_call(fn, args_array): invokes fn and packages the
// outcome as {ok: true, value} or {ok: false, error: <message>}. Only
// user/recoverable errors are caught; unrecoverable and internal errors
// propagate unchanged (spec.md §4.C, §4.I).
func tryCall(args []*value.Value) (*value.Value, error) {
	fn, err := requireFunction(args[0], "try_call")
	if err != nil {
		return nil, err
	}
	argsArr, err := requireArray(args[1], "try_call")
	if err != nil {
		return nil, err
	}

	result, callErr := fn.Call(argsArr)
	if callErr == nil {
		m := value.NewOrderedMap()
		m.Set(value.NewString("ok"), value.NewBool(true))
		m.Set(value.NewString("value"), result)
		return value.NewMap(m), nil
	}
	if !langerr.IsRecoverable(callErr) {
		return nil, callErr
	}
	m := value.NewOrderedMap()
	m.Set(value.NewString("ok"), value.NewBool(false))
	m.Set(value.NewString("error"), value.NewString(callErr.Error()))
	return value.NewMap(m), nil
}

func requireMap(v *value.Value, name string) (*value.OrderedMap, error) {
	if v.Tag() != value.TagMap {
		return nil, langerr.User("%s requires Map, got %s", name, v.TypeName())
	}
	return v.AsMap(), nil
}

func requireArray(v *value.Value, name string) ([]*value.Value, error) {
	if v.Tag() != value.TagArray {
		return nil, langerr.User("%s requires Array, got %s", name, v.TypeName())
	}
	return v.AsArray(), nil
}

func requireFunction(v *value.Value, name string) (value.Callable, error) {
	if v.Tag() != value.TagFunction {
		return nil, langerr.User("%s requires Function, got %s", name, v.TypeName())
	}
	return v.AsFunction(), nil
}

func requireInt(v *value.Value, name string) (int64, error) {
	if v.Tag() != value.TagInt {
		return 0, langerr.User("%s requires Int, got %s", name, v.TypeName())
	}
	return v.AsInt(), nil
}

func requireString(v *value.Value, name string) (string, error) {
	if v.Tag() != value.TagString {
		return "", langerr.User("%s requires String, got %s", name, v.TypeName())
	}
	return v.AsString(), nil
}
