package builtins

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installJSON registers parse_json and to_json (spec.md §8.3's JSON
// round-trip scenario). parse_json reads with gjson (read-only querying,
// avoiding a hand-rolled decoder); to_json builds the JSON text
// incrementally with sjson's path-based Set, and pretty-prints with
// tidwall/pretty when a second truthy argument asks for indented output.
func installJSON(table *symtab.Table) error {
	if err := define(table, "parse_json", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "parse_json")
		if err != nil {
			return nil, err
		}
		if !gjson.Valid(s) {
			return nil, langerr.User("parse_json: invalid JSON")
		}
		return gjsonToValue(gjson.Parse(s)), nil
	}); err != nil {
		return err
	}

	return define(table, "to_json", 1, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		text, err := valueToJSON(args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 2 && args[1].Truthy() {
			text = string(pretty.Pretty([]byte(text)))
		}
		return value.NewString(text), nil
	})
}

// gjsonToValue converts a gjson.Result into the evaluator's Value model,
// walking object members with ForEach and distinguishing Int from Float by
// whether the raw literal carries a decimal point or exponent. The
// resulting Map orders its keys by the key relation, not by their order in
// the JSON text.
func gjsonToValue(r gjson.Result) *value.Value {
	switch r.Type {
	case gjson.Null:
		return value.Null()
	case gjson.False:
		return value.NewBool(false)
	case gjson.True:
		return value.NewBool(true)
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") {
			if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
				return value.NewInt(n)
			}
		}
		return value.NewFloat(r.Num)
	case gjson.String:
		return value.NewString(r.Str)
	default: // gjson.JSON: array or object
		if r.IsArray() {
			arr := r.Array()
			elems := make([]*value.Value, len(arr))
			for i, e := range arr {
				elems[i] = gjsonToValue(e)
			}
			return value.NewArray(elems)
		}
		m := value.NewOrderedMap()
		r.ForEach(func(key, val gjson.Result) bool {
			m.Set(value.NewString(key.Str), gjsonToValue(val))
			return true
		})
		return value.NewMap(m)
	}
}

// valueToJSON serializes v to JSON text. Non-string Map keys are a
// recoverable error (spec.md §8.3); Function values cannot be serialized.
func valueToJSON(v *value.Value) (string, error) {
	switch v.Tag() {
	case value.TagNull:
		return "null", nil
	case value.TagInt:
		return strconv.FormatInt(v.AsInt(), 10), nil
	case value.TagFloat:
		return strconv.FormatFloat(v.AsFloat(), 'g', -1, 64), nil
	case value.TagBool:
		if v.AsBool() {
			return "true", nil
		}
		return "false", nil
	case value.TagString:
		return jsonQuote(v.AsString()), nil
	case value.TagArray:
		acc := "[]"
		for i, e := range v.AsArray() {
			child, err := valueToJSON(e)
			if err != nil {
				return "", err
			}
			next, err := sjson.SetRaw(acc, "-1", child)
			if err != nil {
				return "", langerr.User("to_json: failed to append element %d: %s", i, err.Error())
			}
			acc = next
		}
		return acc, nil
	case value.TagMap:
		acc := "{}"
		for _, e := range v.AsMap().Entries() {
			if e.Key.Tag() != value.TagString {
				return "", langerr.User("to_json: Map keys must be String, got %s", e.Key.TypeName())
			}
			child, err := valueToJSON(e.Value)
			if err != nil {
				return "", err
			}
			path := escapeSjsonKey(e.Key.AsString())
			next, err := sjson.SetRaw(acc, path, child)
			if err != nil {
				return "", langerr.User("to_json: failed to set key %q: %s", e.Key.AsString(), err.Error())
			}
			acc = next
		}
		return acc, nil
	default:
		return "", langerr.User("to_json: cannot serialize %s", v.TypeName())
	}
}

// escapeSjsonKey escapes sjson path metacharacters ('.', '*', '?') in a
// literal object key so it is treated as one path segment rather than a
// nested path or wildcard pattern.
func escapeSjsonKey(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}

// jsonQuote renders s as a JSON string literal with standard JSON escapes.
func jsonQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				if r < 0x10 {
					b.WriteByte('0')
				}
				b.WriteString(strconv.FormatInt(int64(r), 16))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
