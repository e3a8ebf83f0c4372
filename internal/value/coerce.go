package value

import (
	"math"
	"strconv"

	"github.com/cwbudde/frst/internal/langerr"
)

// AsNull coerces v to Null; only Null succeeds.
func AsNull(v *Value) (*Value, error) {
	if v.tag == TagNull {
		return v, nil
	}
	return nil, langerr.User("Cannot coerce %s to Null", v.TypeName())
}

// AsIntCoerce coerces v to Int: Int passes through, Float truncates toward
// zero (recoverable if out of Int range), anything else fails.
func AsIntCoerce(v *Value) (*Value, error) {
	switch v.tag {
	case TagInt:
		return v, nil
	case TagFloat:
		if v.f > math.MaxInt64 || v.f < math.MinInt64 {
			return nil, langerr.User("Float %g is out of Int range", v.f)
		}
		return NewInt(int64(v.f)), nil
	default:
		return nil, langerr.User("Cannot coerce %s to Int", v.TypeName())
	}
}

// AsFloatCoerce coerces v to Float: Int converts exactly, Float passes
// through, anything else fails.
func AsFloatCoerce(v *Value) (*Value, error) {
	switch v.tag {
	case TagInt:
		return NewFloat(float64(v.i)), nil
	case TagFloat:
		return v, nil
	default:
		return nil, langerr.User("Cannot coerce %s to Float", v.TypeName())
	}
}

// AsBoolCoerce coerces v to Bool via the (total) truthiness rule.
func AsBoolCoerce(v *Value) *Value {
	return NewBool(v.Truthy())
}

// AsStringCoerce coerces v to String; only String succeeds.
func AsStringCoerce(v *Value) (*Value, error) {
	if v.tag == TagString {
		return v, nil
	}
	return nil, langerr.User("Cannot coerce %s to String", v.TypeName())
}

// ToIntExplicit implements to_int: on String, parses a signed decimal
// integer requiring the whole string to be consumed (no leading '+', no
// whitespace, no hex/exponent); on failure, Null. On Float, truncates
// toward zero; on overflow, a recoverable error. On Int, identity.
// Grounded on value/explicit-conversions.cpp's To_Int_Impl.
func ToIntExplicit(v *Value) (*Value, error) {
	switch v.tag {
	case TagInt:
		return v, nil
	case TagFloat:
		if v.f > math.MaxInt64 || v.f < math.MinInt64 {
			return nil, langerr.User("Float %g is out of Int range", v.f)
		}
		return NewInt(int64(v.f)), nil
	case TagString:
		n, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil || !validSignedDecimal(v.s) {
			return Null(), nil
		}
		return NewInt(n), nil
	default:
		return Null(), nil
	}
}

// validSignedDecimal rejects a leading '+', which strconv.ParseInt accepts
// but spec.md §4.A explicitly disallows for to_int.
func validSignedDecimal(s string) bool {
	return s == "" || s[0] != '+'
}

// ToFloatExplicit implements to_float: parses IEEE-754 decimal (scientific
// notation accepted, leading '+' not accepted); on failure, Null.
func ToFloatExplicit(v *Value) (*Value, error) {
	switch v.tag {
	case TagFloat:
		return v, nil
	case TagInt:
		return NewFloat(float64(v.i)), nil
	case TagString:
		if v.s == "" || v.s[0] == '+' {
			return Null(), nil
		}
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return Null(), nil
		}
		return NewFloat(f), nil
	default:
		return Null(), nil
	}
}
