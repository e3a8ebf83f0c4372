package value

import (
	"math"

	"github.com/cwbudde/frst/internal/langerr"
)

// opErr builds the "Cannot <verb> incompatible types: <lhs> <glyph> <rhs>"
// message shape mandated by spec.md §4.A, grounded on the original's
// op_err helper in value/operators/operators-common.hpp.
func opErr(verb, glyph string, lhs, rhs *Value) error {
	return langerr.User("Cannot %s incompatible types: %s %s %s", verb, lhs.TypeName(), glyph, rhs.TypeName())
}

// Add implements the "+" operator: numeric sum, string concatenation,
// array concatenation, and map union (rhs wins on collision).
func Add(lhs, rhs *Value) (*Value, error) {
	switch {
	case lhs.IsNumeric() && rhs.IsNumeric():
		return numericBinop(lhs, rhs, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	case lhs.tag == TagString && rhs.tag == TagString:
		return NewString(lhs.s + rhs.s), nil
	case lhs.tag == TagArray && rhs.tag == TagArray:
		out := make([]*Value, 0, len(lhs.arr)+len(rhs.arr))
		out = append(out, lhs.arr...)
		out = append(out, rhs.arr...)
		return NewArray(out), nil
	case lhs.tag == TagMap && rhs.tag == TagMap:
		acc := NewOrderedMap()
		for _, e := range lhs.m.Entries() {
			acc.Set(e.Key, e.Value)
		}
		for _, e := range rhs.m.Entries() {
			acc.Set(e.Key, e.Value) // rhs wins on collision
		}
		return NewMap(acc), nil
	default:
		return nil, opErr("add", "+", lhs, rhs)
	}
}

// Sub implements the "-" operator for numeric operands.
func Sub(lhs, rhs *Value) (*Value, error) {
	if !lhs.IsNumeric() || !rhs.IsNumeric() {
		return nil, opErr("subtract", "−", lhs, rhs)
	}
	return numericBinop(lhs, rhs, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
}

// Mul implements the "*" operator for numeric operands.
func Mul(lhs, rhs *Value) (*Value, error) {
	if !lhs.IsNumeric() || !rhs.IsNumeric() {
		return nil, opErr("multiply", "×", lhs, rhs)
	}
	return numericBinop(lhs, rhs, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
}

// Div implements the "/" operator for numeric operands. Float division by
// zero follows IEEE-754 (±Inf/NaN); Int division by zero is guarded with a
// recoverable error, resolving spec.md §9's open question in the direction
// it recommends.
func Div(lhs, rhs *Value) (*Value, error) {
	if !lhs.IsNumeric() || !rhs.IsNumeric() {
		return nil, opErr("divide", "÷", lhs, rhs)
	}
	if lhs.tag == TagInt && rhs.tag == TagInt {
		if rhs.i == 0 {
			return nil, langerr.User("Division by zero")
		}
		return NewInt(lhs.i / rhs.i), nil
	}
	return NewFloat(toF(lhs) / toF(rhs)), nil
}

// Mod implements Int modulus. rhs=0 and INT_MIN%-1 are both recoverable
// errors per spec.md §4.A, grounded on value/operators/modulus.cpp.
func Mod(lhs, rhs *Value) (*Value, error) {
	if lhs.tag != TagInt || rhs.tag != TagInt {
		return nil, opErr("modulus", "%", lhs, rhs)
	}
	if rhs.i == 0 {
		return nil, langerr.User("Modulus by zero")
	}
	if lhs.i == math.MinInt64 && rhs.i == -1 {
		return nil, langerr.User("%d %% %d is invalid", lhs.i, rhs.i)
	}
	return NewInt(lhs.i % rhs.i), nil
}

// Negate implements unary "-".
func Negate(v *Value) (*Value, error) {
	switch v.tag {
	case TagInt:
		return NewInt(-v.i), nil
	case TagFloat:
		return NewFloat(-v.f), nil
	default:
		return nil, langerr.User("Invalid operand for unary -")
	}
}

// Not implements unary logical negation via the truthiness rule.
func Not(v *Value) *Value {
	return NewBool(!v.Truthy())
}

// And implements short-circuiting logical and: returns lhs if falsy, else
// rhsFn's result. rhsFn is only invoked when lhs is truthy.
func And(lhs *Value, rhsFn func() (*Value, error)) (*Value, error) {
	if !lhs.Truthy() {
		return lhs, nil
	}
	return rhsFn()
}

// Or implements short-circuiting logical or: returns lhs if truthy, else
// rhsFn's result.
func Or(lhs *Value, rhsFn func() (*Value, error)) (*Value, error) {
	if lhs.Truthy() {
		return lhs, nil
	}
	return rhsFn()
}

// Eq implements the "==" operator: deep equality for primitives, identity
// for structured/Function values, false across differing tags.
func Eq(lhs, rhs *Value) *Value {
	if lhs.tag != rhs.tag {
		return NewBool(false)
	}
	switch lhs.tag {
	case TagNull:
		return NewBool(true)
	case TagInt:
		return NewBool(lhs.i == rhs.i)
	case TagFloat:
		return NewBool(lhs.f == rhs.f)
	case TagBool:
		return NewBool(lhs.b == rhs.b)
	case TagString:
		return NewBool(lhs.s == rhs.s)
	case TagFunction:
		return NewBool(CallableIdentity(lhs.fn) == CallableIdentity(rhs.fn))
	default:
		return NewBool(SameHandle(lhs, rhs))
	}
}

// Ne implements the "!=" operator as the logical negation of Eq.
func Ne(lhs, rhs *Value) *Value {
	return NewBool(!Eq(lhs, rhs).b)
}

// compareOp is shared by Lt/Le/Gt/Ge.
func compareOp(lhs, rhs *Value) (int, error) {
	if lhs.IsNumeric() && rhs.IsNumeric() {
		a, b := toF(lhs), toF(rhs)
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if lhs.tag == rhs.tag {
		switch lhs.tag {
		case TagString:
			switch {
			case lhs.s < rhs.s:
				return -1, nil
			case lhs.s > rhs.s:
				return 1, nil
			default:
				return 0, nil
			}
		case TagBool:
			if lhs.b == rhs.b {
				return 0, nil
			}
			if !lhs.b {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, opErr("compare", "<>", lhs, rhs)
}

// Lt implements "<".
func Lt(lhs, rhs *Value) (*Value, error) {
	c, err := compareOp(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return NewBool(c < 0), nil
}

// Le implements "<=".
func Le(lhs, rhs *Value) (*Value, error) {
	c, err := compareOp(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return NewBool(c <= 0), nil
}

// Gt implements ">".
func Gt(lhs, rhs *Value) (*Value, error) {
	c, err := compareOp(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return NewBool(c > 0), nil
}

// Ge implements ">=".
func Ge(lhs, rhs *Value) (*Value, error) {
	c, err := compareOp(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return NewBool(c >= 0), nil
}

func toF(v *Value) float64 {
	if v.tag == TagInt {
		return float64(v.i)
	}
	return v.f
}

// numericBinop dispatches to the int or float implementation of a binary
// numeric operator, promoting to Float if either side is Float (spec.md
// §4.A's "add" row, generalized to every arithmetic operator).
func numericBinop(lhs, rhs *Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) *Value {
	if lhs.tag == TagInt && rhs.tag == TagInt {
		return NewInt(intOp(lhs.i, rhs.i))
	}
	return NewFloat(floatOp(toF(lhs), toF(rhs)))
}

// CallableIdentity exposes a stable comparable key for a Callable's
// identity, used by Eq/DeepEqual on Function values.
func CallableIdentity(c Callable) any {
	return c
}
