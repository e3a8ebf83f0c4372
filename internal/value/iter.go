package value

import "github.com/cwbudde/frst/internal/langerr"

// DoMap implements the `map` AST node's operation (spec.md §4.A):
//   - Array: apply fn to each element in order, building a new Array.
//     An empty input returns the same handle (spec.md §9, invariant §8.1.5).
//   - Map: apply fn(k, v) to each entry in key-order; each result must be
//     a Map; intermediates are merged with duplicate-key detection.
func DoMap(structure *Value, fn func(args []*Value) (*Value, error), opName string) (*Value, error) {
	switch structure.tag {
	case TagArray:
		if len(structure.arr) == 0 {
			return structure, nil
		}
		out := make([]*Value, len(structure.arr))
		for i, elem := range structure.arr {
			r, err := fn([]*Value{elem})
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return NewArray(out), nil
	case TagMap:
		if structure.m.Len() == 0 {
			return structure, nil
		}
		acc := NewOrderedMap()
		for _, e := range structure.m.Entries() {
			intermediate, err := fn([]*Value{e.Key, e.Value})
			if err != nil {
				return nil, err
			}
			if intermediate.tag != TagMap {
				return nil, langerr.User("%s with map input requires map intermediates, got %s", opName, intermediate.TypeName())
			}
			for _, ie := range intermediate.m.Entries() {
				if acc.Has(ie.Key) {
					return nil, langerr.User("%s operation key collision with key: %s", opName, ToInternalString(ie.Key, true))
				}
				acc.Set(ie.Key, ie.Value)
			}
		}
		return NewMap(acc), nil
	default:
		langerr.Unreachable("DoMap: unsupported structure tag %v", structure.tag)
		return nil, nil
	}
}

// DoFilter implements the `filter` AST node's operation: retains elements
// (Array) or entries (Map) for which fn's result is truthy.
func DoFilter(structure *Value, fn func(args []*Value) (*Value, error)) (*Value, error) {
	switch structure.tag {
	case TagArray:
		out := make([]*Value, 0, len(structure.arr))
		for _, elem := range structure.arr {
			r, err := fn([]*Value{elem})
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				out = append(out, elem)
			}
		}
		return NewArray(out), nil
	case TagMap:
		acc := NewOrderedMap()
		for _, e := range structure.m.Entries() {
			r, err := fn([]*Value{e.Key, e.Value})
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				acc.Set(e.Key, e.Value)
			}
		}
		return NewMap(acc), nil
	default:
		langerr.Unreachable("DoFilter: unsupported structure tag %v", structure.tag)
		return nil, nil
	}
}

// DoReduce implements the `reduce` AST node's operation.
//   - Array with init: left fold acc = fn(acc, elem).
//   - Array without init: left fold over the tail with the head as init;
//     empty -> Null.
//   - Map: requires init; fold acc = fn(acc, k, v).
func DoReduce(structure *Value, fn func(args []*Value) (*Value, error), init *Value) (*Value, error) {
	switch structure.tag {
	case TagArray:
		elems := structure.arr
		var acc *Value
		if init != nil {
			acc = init
		} else {
			if len(elems) == 0 {
				return Null(), nil
			}
			acc = elems[0]
			elems = elems[1:]
		}
		for _, elem := range elems {
			r, err := fn([]*Value{acc, elem})
			if err != nil {
				return nil, err
			}
			acc = r
		}
		return acc, nil
	case TagMap:
		if init == nil {
			return nil, langerr.User("Map reduction requires init")
		}
		acc := init
		for _, e := range structure.m.Entries() {
			r, err := fn([]*Value{acc, e.Key, e.Value})
			if err != nil {
				return nil, err
			}
			acc = r
		}
		return acc, nil
	default:
		langerr.Unreachable("DoReduce: unsupported structure tag %v", structure.tag)
		return nil, nil
	}
}

// Foreach implements the `foreach` AST node's operation: calls fn for each
// element (Array, arity 1) or entry (Map, arity 2); a truthy result breaks
// the loop early. Always returns Null.
func Foreach(structure *Value, fn func(args []*Value) (*Value, error)) (*Value, error) {
	switch structure.tag {
	case TagArray:
		for _, elem := range structure.arr {
			r, err := fn([]*Value{elem})
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				break
			}
		}
		return Null(), nil
	case TagMap:
		for _, e := range structure.m.Entries() {
			r, err := fn([]*Value{e.Key, e.Value})
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				break
			}
		}
		return Null(), nil
	default:
		langerr.Unreachable("Foreach: unsupported structure tag %v", structure.tag)
		return nil, nil
	}
}

// Index implements indexing for both Array (integer, negative-from-end,
// out-of-range -> Null) and Map (non-null primitive key, missing -> Null).
func Index(structure, idx *Value) (*Value, error) {
	switch structure.tag {
	case TagArray:
		if idx.tag != TagInt {
			return nil, langerr.User("Array index must be Int, got %s", idx.TypeName())
		}
		n := int64(len(structure.arr))
		i := idx.i
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return Null(), nil
		}
		return structure.arr[i], nil
	case TagMap:
		if idx.tag == TagNull || !idx.IsPrimitive() {
			return nil, langerr.User("Map index must be a non-null primitive, got %s", idx.TypeName())
		}
		if v, ok := structure.m.Get(idx); ok {
			return v, nil
		}
		return Null(), nil
	default:
		return nil, langerr.User("Cannot index into %s", structure.TypeName())
	}
}

// Has implements the `has` built-in's contract (spec.md §4.I): Array
// requires an Int index, Map rejects a Null key.
func Has(structure, key *Value) (*Value, error) {
	switch structure.tag {
	case TagArray:
		if key.tag != TagInt {
			return nil, langerr.User("has requires Int index for Array, got %s", key.TypeName())
		}
		n := int64(len(structure.arr))
		i := key.i
		if i < 0 {
			i += n
		}
		return NewBool(i >= 0 && i < n), nil
	case TagMap:
		if key.tag == TagNull {
			return nil, langerr.User("has requires a non-null key for Map")
		}
		return NewBool(structure.m.Has(key)), nil
	default:
		return nil, langerr.User("has requires Array or Map, got %s", structure.TypeName())
	}
}

// Len implements the `len` built-in: Array/Map size, String byte length.
func Len(v *Value) (*Value, error) {
	switch v.tag {
	case TagArray:
		return NewInt(int64(len(v.arr))), nil
	case TagMap:
		return NewInt(int64(v.m.Len())), nil
	case TagString:
		return NewInt(int64(len(v.s))), nil
	default:
		return nil, langerr.User("len requires Array, Map, or String, got %s", v.TypeName())
	}
}
