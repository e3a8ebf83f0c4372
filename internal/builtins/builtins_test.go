package builtins

import (
	"testing"

	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

func freshTable(t *testing.T) *symtab.Table {
	t.Helper()
	table := symtab.New()
	if err := Install(table); err != nil {
		t.Fatalf("Install: %v", err)
	}
	return table
}

func call(t *testing.T, table *symtab.Table, name string, args ...*value.Value) *value.Value {
	t.Helper()
	fn, err := table.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	result, err := fn.AsFunction().Call(args)
	if err != nil {
		t.Fatalf("call %s: %v", name, err)
	}
	return result
}

func callErr(t *testing.T, table *symtab.Table, name string, args ...*value.Value) error {
	t.Helper()
	fn, err := table.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	_, callErr := fn.AsFunction().Call(args)
	return callErr
}

func TestInstall_EveryNameBound(t *testing.T) {
	table := freshTable(t)
	names := []string{
		"plus", "minus", "times", "divide", "mod",
		"less_than", "less_than_or_equal", "greater_than", "greater_than_or_equal",
		"equal", "not_equal",
		"deep_equal", "has", "len", "keys", "values", "id", "nulls",
		"pack_call", "try_call", "and_then", "or_else", "assert",
		"is_null", "is_int", "is_float", "is_bool", "is_string", "is_array", "is_map", "is_function",
		"is_nonnull", "is_numeric", "is_primitive", "is_structured",
		"to_int", "to_float", "to_string", "to_pretty_string",
		"mutable_cell", "mformat",
		"parse_json", "to_json",
		"b64_encode", "b64_decode", "b64_urlencode", "b64_urldecode",
		"re",
		"str_upper", "str_lower", "str_title", "str_trim", "str_split", "str_join",
		"str_replace", "str_contains", "str_starts_with", "str_ends_with",
	}
	for _, name := range names {
		if !table.Has(name) {
			t.Errorf("expected builtin %q to be defined", name)
		}
	}
}

func TestArithmetic_Plus(t *testing.T) {
	table := freshTable(t)
	got := call(t, table, "plus", value.NewInt(2), value.NewInt(3))
	if got.AsInt() != 5 {
		t.Fatalf("plus(2,3) = %v, want 5", got.AsInt())
	}
}

func TestCore_DeepEqualAndHasAndLen(t *testing.T) {
	table := freshTable(t)
	arr := value.NewArray([]*value.Value{value.NewInt(1), value.NewInt(2)})
	if !call(t, table, "deep_equal", arr, value.NewArray([]*value.Value{value.NewInt(1), value.NewInt(2)})).AsBool() {
		t.Fatal("expected deep_equal true")
	}
	if !call(t, table, "has", arr, value.NewInt(0)).AsBool() {
		t.Fatal("expected has true")
	}
	if call(t, table, "len", arr).AsInt() != 2 {
		t.Fatal("expected len 2")
	}
}

func TestCore_TryCallCatchesUserError(t *testing.T) {
	table := freshTable(t)
	assertFn, err := table.Lookup("assert")
	if err != nil {
		t.Fatal(err)
	}
	args := value.NewArray([]*value.Value{value.NewBool(false), value.NewString("boom")})
	result := call(t, table, "try_call", value.NewFunction(assertFn.AsFunction()), args)
	m := result.AsMap()
	ok, _ := m.Get(value.NewString("ok"))
	if ok.AsBool() {
		t.Fatal("expected ok=false")
	}
	errVal, _ := m.Get(value.NewString("error"))
	if errVal.AsString() != "boom" {
		t.Fatalf("got error %q, want boom", errVal.AsString())
	}
}

func TestTypeTests(t *testing.T) {
	table := freshTable(t)
	if !call(t, table, "is_int", value.NewInt(1)).AsBool() {
		t.Fatal("expected is_int true")
	}
	if call(t, table, "is_int", value.NewString("x")).AsBool() {
		t.Fatal("expected is_int false")
	}
	if !call(t, table, "is_numeric", value.NewFloat(1.5)).AsBool() {
		t.Fatal("expected is_numeric true")
	}
}

func TestConversions_ToInt(t *testing.T) {
	table := freshTable(t)
	got := call(t, table, "to_int", value.NewString("42"))
	if got.AsInt() != 42 {
		t.Fatalf("to_int(\"42\") = %v, want 42", got.AsInt())
	}
	null := call(t, table, "to_int", value.NewString("nope"))
	if !null.IsNull() {
		t.Fatal("expected Null for unparseable to_int")
	}
}

func TestMutableCell_GetExchange(t *testing.T) {
	table := freshTable(t)
	cell := call(t, table, "mutable_cell", value.NewInt(1))
	m := cell.AsMap()
	get, _ := m.Get(value.NewString("get"))
	exchange, _ := m.Get(value.NewString("exchange"))

	got, err := get.AsFunction().Call(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.AsInt() != 1 {
		t.Fatalf("get() = %v, want 1", got.AsInt())
	}

	prior, err := exchange.AsFunction().Call([]*value.Value{value.NewInt(9)})
	if err != nil {
		t.Fatal(err)
	}
	if prior.AsInt() != 1 {
		t.Fatalf("exchange prior = %v, want 1", prior.AsInt())
	}
	got2, _ := get.AsFunction().Call(nil)
	if got2.AsInt() != 9 {
		t.Fatalf("get() after exchange = %v, want 9", got2.AsInt())
	}
}

func TestFormat_Mformat(t *testing.T) {
	table := freshTable(t)
	m := value.NewOrderedMap()
	m.Set(value.NewString("name"), value.NewString("Ada"))
	got := call(t, table, "mformat", value.NewString("Hello ${name}!"), value.NewMap(m))
	if got.AsString() != "Hello Ada!" {
		t.Fatalf("mformat = %q, want %q", got.AsString(), "Hello Ada!")
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	table := freshTable(t)
	arr := value.NewArray([]*value.Value{value.NewInt(1), value.NewInt(2)})
	m := value.NewOrderedMap()
	m.Set(value.NewString("a"), arr)
	m.Set(value.NewString("b"), value.NewBool(true))
	original := value.NewMap(m)

	text := call(t, table, "to_json", original)
	parsed := call(t, table, "parse_json", text)

	if !call(t, table, "deep_equal", original, parsed).AsBool() {
		t.Fatalf("round-trip mismatch: %s", text.AsString())
	}
}

func TestJSON_NonStringKeyIsRecoverable(t *testing.T) {
	table := freshTable(t)
	m := value.NewOrderedMap()
	m.Set(value.NewInt(1), value.NewString("x"))
	err := callErr(t, table, "to_json", value.NewMap(m))
	if err == nil {
		t.Fatal("expected error for non-string Map key")
	}
}

func TestJSON_InvalidParseIsRecoverable(t *testing.T) {
	table := freshTable(t)
	err := callErr(t, table, "parse_json", value.NewString("not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestBase64_RFC4648Scenarios(t *testing.T) {
	table := freshTable(t)
	if got := call(t, table, "b64_encode", value.NewString("foo")); got.AsString() != "Zm9v" {
		t.Fatalf("b64_encode(foo) = %q, want Zm9v", got.AsString())
	}
	if got := call(t, table, "b64_decode", value.NewString("Zm9v")); got.AsString() != "foo" {
		t.Fatalf("b64_decode(Zm9v) = %q, want foo", got.AsString())
	}
	if got := call(t, table, "b64_urlencode", value.NewString("\xff")); got.AsString() != "_w==" {
		t.Fatalf("b64_urlencode(0xff) = %q, want _w==", got.AsString())
	}
}

func TestRegex_ScanMatchesNamedGroups(t *testing.T) {
	table := freshTable(t)
	reVal, err := table.Lookup("re")
	if err != nil {
		t.Fatal(err)
	}
	scan, ok := reVal.AsMap().Get(value.NewString("scan_matches"))
	if !ok {
		t.Fatal("expected re.scan_matches to be bound")
	}
	result, err := scan.AsFunction().Call([]*value.Value{
		value.NewString("a1 b2"),
		value.NewString(`(?P<letter>[a-z])(?P<digit>\d)`),
	})
	if err != nil {
		t.Fatal(err)
	}
	m := result.AsMap()
	count, _ := m.Get(value.NewString("count"))
	if count.AsInt() != 2 {
		t.Fatalf("count = %v, want 2", count.AsInt())
	}
	matches, _ := m.Get(value.NewString("matches"))
	first := matches.AsArray()[0].AsMap()
	named, _ := first.Get(value.NewString("named"))
	letter, _ := named.AsMap().Get(value.NewString("letter"))
	if letter.AsString() != "a" {
		t.Fatalf("named.letter = %q, want a", letter.AsString())
	}
	digit, _ := named.AsMap().Get(value.NewString("digit"))
	if digit.AsString() != "1" {
		t.Fatalf("named.digit = %q, want 1", digit.AsString())
	}
}

func TestStringOps(t *testing.T) {
	table := freshTable(t)
	if got := call(t, table, "str_upper", value.NewString("abc")); got.AsString() != "ABC" {
		t.Fatalf("str_upper = %q", got.AsString())
	}
	if got := call(t, table, "str_trim", value.NewString("  hi  ")); got.AsString() != "hi" {
		t.Fatalf("str_trim = %q", got.AsString())
	}
	parts := call(t, table, "str_split", value.NewString("a,b,c"), value.NewString(","))
	if len(parts.AsArray()) != 3 {
		t.Fatalf("str_split len = %d, want 3", len(parts.AsArray()))
	}
	joined := call(t, table, "str_join", parts, value.NewString("-"))
	if joined.AsString() != "a-b-c" {
		t.Fatalf("str_join = %q, want a-b-c", joined.AsString())
	}
	if !call(t, table, "str_starts_with", value.NewString("hello"), value.NewString("he")).AsBool() {
		t.Fatal("expected str_starts_with true")
	}
	if !call(t, table, "str_ends_with", value.NewString("hello"), value.NewString("lo")).AsBool() {
		t.Fatal("expected str_ends_with true")
	}
	if !call(t, table, "str_contains", value.NewString("hello"), value.NewString("ell")).AsBool() {
		t.Fatal("expected str_contains true")
	}
}
