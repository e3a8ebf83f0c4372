package ast

import (
	"testing"

	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

func mustNameLookup(t *testing.T, name string) *NameLookup {
	t.Helper()
	n, err := NewNameLookup(name)
	if err != nil {
		t.Fatalf("NewNameLookup(%q): %v", name, err)
	}
	return n
}

func TestIf_Consequent(t *testing.T) {
	n := NewIf(NewLiteral(value.NewBool(true)), NewLiteral(value.NewInt(1)), NewLiteral(value.NewInt(2)))
	v, err := n.Evaluate(symtab.New())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.AsInt() != 1 {
		t.Fatalf("got %v, want 1", v)
	}
}

func TestIf_NoAlternateReturnsNull(t *testing.T) {
	n := NewIf(NewLiteral(value.NewBool(false)), NewLiteral(value.NewInt(1)), nil)
	v, err := n.Evaluate(symtab.New())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !v.IsNull() {
		t.Fatalf("got %v, want Null", v)
	}
}

func TestArrayConstructor(t *testing.T) {
	n := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(1)), NewLiteral(value.NewInt(2))})
	v, err := n.Evaluate(symtab.New())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(v.AsArray()) != 2 {
		t.Fatalf("got %v", v)
	}
}

func TestMapConstructor_DuplicateKeyLastWins(t *testing.T) {
	n := NewMapConstructor([]MapPairExpr{
		{Key: NewLiteral(value.NewString("a")), Value: NewLiteral(value.NewInt(1))},
		{Key: NewLiteral(value.NewString("a")), Value: NewLiteral(value.NewInt(2))},
	})
	v, err := n.Evaluate(symtab.New())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	got, ok := v.AsMap().Get(value.NewString("a"))
	if !ok || got.AsInt() != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestIndex_ArrayNegative(t *testing.T) {
	arr := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(10)), NewLiteral(value.NewInt(20)), NewLiteral(value.NewInt(30))})
	idx := NewIndex(arr, NewLiteral(value.NewInt(-1)))
	v, err := idx.Evaluate(symtab.New())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.AsInt() != 30 {
		t.Fatalf("got %v, want 30", v)
	}
}

func TestIndex_OutOfRangeReturnsNull(t *testing.T) {
	arr := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(10))})
	idx := NewIndex(arr, NewLiteral(value.NewInt(5)))
	v, err := idx.Evaluate(symtab.New())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !v.IsNull() {
		t.Fatalf("got %v, want Null", v)
	}
}

func TestFunctionCall_NonFunctionIsError(t *testing.T) {
	n := NewFunctionCall(NewLiteral(value.NewInt(1)), nil)
	if _, err := n.Evaluate(symtab.New()); err == nil {
		t.Fatal("expected error calling non-function")
	}
}

func TestFunctionCall_Builtin(t *testing.T) {
	table := symtab.New()
	doubler := value.NewBuiltin("double", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		return value.NewInt(args[0].AsInt() * 2), nil
	})
	if err := table.Define("double", value.NewFunction(doubler)); err != nil {
		t.Fatalf("Define: %v", err)
	}
	n := NewFunctionCall(mustNameLookup(t, "double"), []Expression{NewLiteral(value.NewInt(21))})
	v, err := n.Evaluate(table)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.AsInt() != 42 {
		t.Fatalf("got %v, want 42", v)
	}
}

func TestFormatString(t *testing.T) {
	n, err := NewFormatString("Hello ${name}! You owe $$${amount}")
	if err != nil {
		t.Fatalf("NewFormatString: %v", err)
	}
	table := symtab.New()
	_ = table.Define("name", value.NewString("Ada"))
	_ = table.Define("amount", value.NewInt(5))
	v, err := n.Evaluate(table)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.AsString() != "Hello Ada! You owe $5" {
		t.Fatalf("got %q", v.AsString())
	}
}

func TestDefine_RejectsUnderscore(t *testing.T) {
	if _, err := NewDefine("_", NewLiteral(value.NewInt(1)), false); err == nil {
		t.Fatal("expected error defining _")
	}
}

func TestDefine_Export(t *testing.T) {
	n, err := NewDefine("x", NewLiteral(value.NewInt(7)), true)
	if err != nil {
		t.Fatalf("NewDefine: %v", err)
	}
	table := symtab.New()
	exports, err := n.Execute(table)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if exports == nil || exports.Tag() != value.TagMap {
		t.Fatalf("expected export map, got %v", exports)
	}
	got, ok := exports.AsMap().Get(value.NewString("x"))
	if !ok || got.AsInt() != 7 {
		t.Fatalf("export map missing x=7: %v", exports)
	}
	bound, err := table.Lookup("x")
	if err != nil || bound.AsInt() != 7 {
		t.Fatalf("x not bound in table: %v %v", bound, err)
	}
}

func TestArrayDestructure_WithRest(t *testing.T) {
	arr := NewArrayConstructor([]Expression{
		NewLiteral(value.NewInt(10)), NewLiteral(value.NewInt(20)),
		NewLiteral(value.NewInt(30)), NewLiteral(value.NewInt(40)),
	})
	n, err := NewArrayDestructure([]string{"a", "b"}, "rest", true, arr, false)
	if err != nil {
		t.Fatalf("NewArrayDestructure: %v", err)
	}
	table := symtab.New()
	if _, err := n.Execute(table); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	a, _ := table.Lookup("a")
	b, _ := table.Lookup("b")
	rest, _ := table.Lookup("rest")
	if a.AsInt() != 10 || b.AsInt() != 20 {
		t.Fatalf("a=%v b=%v", a, b)
	}
	if len(rest.AsArray()) != 2 || rest.AsArray()[0].AsInt() != 30 || rest.AsArray()[1].AsInt() != 40 {
		t.Fatalf("rest=%v", rest)
	}
}

func TestArrayDestructure_ExactLengthRequired(t *testing.T) {
	arr := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(1))})
	n, err := NewArrayDestructure([]string{"a", "b"}, "", false, arr, false)
	if err != nil {
		t.Fatalf("NewArrayDestructure: %v", err)
	}
	if _, err := n.Execute(symtab.New()); err == nil {
		t.Fatal("expected length-mismatch error")
	}
}

func TestArrayDestructure_RejectsDuplicateNames(t *testing.T) {
	if _, err := NewArrayDestructure([]string{"a", "a"}, "", false, NewLiteral(value.NewInt(1)), false); err == nil {
		t.Fatal("expected duplicate-binding error")
	}
}

func TestMapDestructure(t *testing.T) {
	m := NewMapConstructor([]MapPairExpr{
		{Key: NewLiteral(value.NewString("a")), Value: NewLiteral(value.NewInt(1))},
	})
	n, err := NewMapDestructure([]MapDestructureElement{
		{KeyExpr: NewLiteral(value.NewString("a")), Name: "a"},
		{KeyExpr: NewLiteral(value.NewString("missing")), Name: "m"},
	}, m, false)
	if err != nil {
		t.Fatalf("NewMapDestructure: %v", err)
	}
	table := symtab.New()
	if _, err := n.Execute(table); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	a, _ := table.Lookup("a")
	m2, _ := table.Lookup("m")
	if a.AsInt() != 1 {
		t.Fatalf("a=%v", a)
	}
	if !m2.IsNull() {
		t.Fatalf("m=%v, want Null", m2)
	}
}

func TestMapExpr_Array(t *testing.T) {
	table := symtab.New()
	double := value.NewBuiltin("double", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		return value.NewInt(args[0].AsInt() * 2), nil
	})
	_ = table.Define("double", value.NewFunction(double))
	arr := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(1)), NewLiteral(value.NewInt(2))})
	n := NewMapExpr(arr, mustNameLookup(t, "double"))
	v, err := n.Evaluate(table)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.AsArray()[0].AsInt() != 2 || v.AsArray()[1].AsInt() != 4 {
		t.Fatalf("got %v", v)
	}
}

func TestFilterExpr_Array(t *testing.T) {
	table := symtab.New()
	isEven := value.NewBuiltin("is_even", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		return value.NewBool(args[0].AsInt()%2 == 0), nil
	})
	_ = table.Define("is_even", value.NewFunction(isEven))
	arr := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(1)), NewLiteral(value.NewInt(2)), NewLiteral(value.NewInt(3)), NewLiteral(value.NewInt(4))})
	n := NewFilterExpr(arr, mustNameLookup(t, "is_even"))
	v, err := n.Evaluate(table)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(v.AsArray()) != 2 {
		t.Fatalf("got %v", v)
	}
}

func TestReduceExpr_WithoutInit(t *testing.T) {
	table := symtab.New()
	add := value.NewBuiltin("add", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		return value.Add(args[0], args[1])
	})
	_ = table.Define("add", value.NewFunction(add))
	arr := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(1)), NewLiteral(value.NewInt(2)), NewLiteral(value.NewInt(3))})
	n := NewReduceExpr(arr, mustNameLookup(t, "add"), nil)
	v, err := n.Evaluate(table)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.AsInt() != 6 {
		t.Fatalf("got %v, want 6", v)
	}
}

func TestForeachExpr_BreaksEarly(t *testing.T) {
	table := symtab.New()
	var seen []int64
	stopAtTwo := value.NewBuiltin("stop_at_two", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		seen = append(seen, args[0].AsInt())
		return value.NewBool(args[0].AsInt() == 2), nil
	})
	_ = table.Define("stop_at_two", value.NewFunction(stopAtTwo))
	arr := NewArrayConstructor([]Expression{NewLiteral(value.NewInt(1)), NewLiteral(value.NewInt(2)), NewLiteral(value.NewInt(3))})
	n := NewForeachExpr(arr, mustNameLookup(t, "stop_at_two"))
	v, err := n.Evaluate(table)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !v.IsNull() {
		t.Fatalf("got %v, want Null", v)
	}
	if len(seen) != 2 {
		t.Fatalf("seen=%v, want break after 2 elements", seen)
	}
}

func TestBlock_ScopesDefinesAway(t *testing.T) {
	def, err := NewDefine("x", NewLiteral(value.NewInt(1)), false)
	if err != nil {
		t.Fatalf("NewDefine: %v", err)
	}
	block, err := NewBlock([]Statement{def, mustNameLookup(t, "x")})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	table := symtab.New()
	v, err := block.Evaluate(table)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.AsInt() != 1 {
		t.Fatalf("got %v, want 1", v)
	}
	if table.HasLocal("x") {
		t.Fatal("block's local define leaked into enclosing table")
	}
}
