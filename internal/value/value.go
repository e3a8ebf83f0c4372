// Package value implements the frst evaluator's tagged value model: the
// Null/Int/Float/Bool/String/Array/Map/Function sum type, its algebra
// (arithmetic, comparison, equality, coercions), and the iterative
// operations (map/filter/reduce/foreach) driven by the AST's corresponding
// nodes. See spec.md §3 and §4.A.
package value

import (
	"sync"

	"github.com/cwbudde/frst/internal/langerr"
)

// Tag identifies a Value's variant. The declared order here is the variant
// order used by the map key ordering relation (spec.md §3.2): Null, Int,
// Float, Bool, String, Array, Map, Function. This fixes one of spec.md §9's
// open questions — the tag order is an implementation choice, and this is
// ours, documented once and used consistently.
type Tag int

const (
	TagNull Tag = iota
	TagInt
	TagFloat
	TagBool
	TagString
	TagArray
	TagMap
	TagFunction
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "Null"
	case TagInt:
		return "Int"
	case TagFloat:
		return "Float"
	case TagBool:
		return "Bool"
	case TagString:
		return "String"
	case TagArray:
		return "Array"
	case TagMap:
		return "Map"
	case TagFunction:
		return "Function"
	default:
		return "?"
	}
}

// Value is a shared handle to a tagged union value. Every Value is accessed
// through this handle; assignment never copies, Clone produces a deep copy
// with fresh identity (spec.md §3.1).
type Value struct {
	tag   Tag
	i     int64
	f     float64
	b     bool
	s     string
	arr   []*Value
	m     *OrderedMap
	fn    Callable
}

// nullSingleton is the process-wide null instance (spec.md §3.3).
var nullSingleton = &Value{tag: TagNull}

// Null returns the shared null singleton.
func Null() *Value { return nullSingleton }

// NewInt creates an Int value.
func NewInt(n int64) *Value { return &Value{tag: TagInt, i: n} }

// NewFloat creates a Float value.
func NewFloat(f float64) *Value { return &Value{tag: TagFloat, f: f} }

// NewBool creates a Bool value.
func NewBool(b bool) *Value { return &Value{tag: TagBool, b: b} }

// NewString creates a String value.
func NewString(s string) *Value { return &Value{tag: TagString, s: s} }

// NewFunction creates a Function value wrapping a Callable.
func NewFunction(c Callable) *Value { return &Value{tag: TagFunction, fn: c} }

// NewArray creates an Array value from already-validated elements.
func NewArray(elems []*Value) *Value {
	if elems == nil {
		elems = []*Value{}
	}
	return &Value{tag: TagArray, arr: elems}
}

// NewArrayChecked validates that every element is non-nil before wrapping,
// per the Value::create(raw) constructor family described in spec.md §3.3.
func NewArrayChecked(elems []*Value) (*Value, error) {
	for idx, e := range elems {
		if e == nil {
			return nil, langerr.Internal("nil element at Array index %d", idx)
		}
	}
	return NewArray(elems), nil
}

// NewMap creates a Map value from an OrderedMap that has already had its
// keys validated (the "trusted" constructor variant of spec.md §3.3).
func NewMap(m *OrderedMap) *Value {
	if m == nil {
		m = NewOrderedMap()
	}
	return &Value{tag: TagMap, m: m}
}

// NewMapChecked builds a Map value, validating that every key is
// non-null and primitive (the untrusted constructor variant).
func NewMapChecked(pairs []Pair) (*Value, error) {
	m := NewOrderedMap()
	for _, p := range pairs {
		if err := validateKey(p.Key); err != nil {
			return nil, err
		}
		m.Set(p.Key, p.Value)
	}
	return NewMap(m), nil
}

func validateKey(k *Value) error {
	if k.Tag() == TagNull {
		return langerr.User("Map keys must not be null")
	}
	if !k.IsPrimitive() {
		return langerr.User("Map keys must be primitive, got %s", k.Tag())
	}
	return nil
}

// Pair is a key/value pair used when constructing a Map from untrusted input.
type Pair struct {
	Key   *Value
	Value *Value
}

// Tag returns the value's variant tag.
func (v *Value) Tag() Tag { return v.tag }

// TypeName returns the human-readable type name used in error messages.
func (v *Value) TypeName() string { return v.tag.String() }

// IsPrimitive reports whether v is one of Null/Int/Float/Bool/String.
func (v *Value) IsPrimitive() bool {
	switch v.tag {
	case TagNull, TagInt, TagFloat, TagBool, TagString:
		return true
	default:
		return false
	}
}

// IsStructured reports whether v is an Array or a Map.
func (v *Value) IsStructured() bool {
	return v.tag == TagArray || v.tag == TagMap
}

// IsNumeric reports whether v is Int or Float (explicitly not Bool;
// spec.md §3.1).
func (v *Value) IsNumeric() bool {
	return v.tag == TagInt || v.tag == TagFloat
}

// IsNull reports whether v is the Null variant.
func (v *Value) IsNull() bool { return v.tag == TagNull }

// AsInt returns the raw int64 payload. Callers must have checked Tag()==TagInt.
func (v *Value) AsInt() int64 { return v.i }

// AsFloat returns the raw float64 payload. Callers must have checked
// Tag()==TagFloat.
func (v *Value) AsFloat() float64 { return v.f }

// AsBool returns the raw bool payload. Callers must have checked
// Tag()==TagBool.
func (v *Value) AsBool() bool { return v.b }

// AsString returns the raw string payload. Callers must have checked
// Tag()==TagString.
func (v *Value) AsString() string { return v.s }

// AsArray returns the backing element slice. Callers must have checked
// Tag()==TagArray. The slice must be treated as read-only by callers outside
// this package; structural "mutation" always produces a new Value (spec.md
// §3.3).
func (v *Value) AsArray() []*Value { return v.arr }

// AsMap returns the backing ordered map. Callers must have checked
// Tag()==TagMap.
func (v *Value) AsMap() *OrderedMap { return v.m }

// AsFunction returns the backing callable. Callers must have checked
// Tag()==TagFunction.
func (v *Value) AsFunction() Callable { return v.fn }

// Truthy implements the universal truthiness rule (spec.md §3.1): everything
// is truthy except null and false.
func (v *Value) Truthy() bool {
	switch v.tag {
	case TagNull:
		return false
	case TagBool:
		return v.b
	default:
		return true
	}
}

// Clone produces a deep copy with fresh identity for all contained entities.
// Primitives and nulls re-allocate as new handles; nested structures
// recurse; functions share their callable by pointer but the enclosing
// handle is fresh (spec.md §3.3).
func (v *Value) Clone() *Value {
	switch v.tag {
	case TagNull:
		return &Value{tag: TagNull}
	case TagInt:
		return NewInt(v.i)
	case TagFloat:
		return NewFloat(v.f)
	case TagBool:
		return NewBool(v.b)
	case TagString:
		return NewString(v.s)
	case TagFunction:
		return NewFunction(v.fn)
	case TagArray:
		cloned := make([]*Value, len(v.arr))
		for i, e := range v.arr {
			cloned[i] = e.Clone()
		}
		return NewArray(cloned)
	case TagMap:
		acc := NewOrderedMap()
		for _, e := range v.m.Entries() {
			acc.Set(e.Key.Clone(), e.Value.Clone())
		}
		return NewMap(acc)
	default:
		langerr.Unreachable("Clone: unhandled tag %v", v.tag)
		return nil
	}
}

// mutableCellGuard serializes get/exchange on a single mutable_cell; the
// evaluator itself is single-threaded (spec.md §5) but exchange is naturally
// atomic regardless of caller discipline.
var mutableCellGuard sync.Mutex

// WithCellLock runs f while holding the package-wide mutable_cell guard.
// Exposed for internal/builtins, which implements mutable_cell's get/exchange
// closures.
func WithCellLock(f func()) {
	mutableCellGuard.Lock()
	defer mutableCellGuard.Unlock()
	f()
}
