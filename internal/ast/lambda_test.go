package ast

import (
	"testing"

	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// buildFactorial constructs the AST for:
//
//	fn(n) -> if (n <= 1) { 1 } else { n * self(n - 1) }
//
// matching spec.md §8.2 scenario 4.
func buildFactorial(t *testing.T) *Lambda {
	t.Helper()
	nLookup, err := NewNameLookup("n")
	if err != nil {
		t.Fatalf("NewNameLookup: %v", err)
	}
	cond := NewBinop(nLookup, OpLe, NewLiteral(value.NewInt(1)))

	thenBlock, err := NewBlock([]Statement{NewLiteral(value.NewInt(1))})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}

	selfLookup, err := NewNameLookup("self")
	if err != nil {
		t.Fatalf("NewNameLookup(self): %v", err)
	}
	nMinus1 := NewBinop(nLookup, OpSub, NewLiteral(value.NewInt(1)))
	selfCall := NewFunctionCall(selfLookup, []Expression{nMinus1})
	mulExpr := NewBinop(nLookup, OpMul, selfCall)
	elseBlock, err := NewBlock([]Statement{mulExpr})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}

	ifExpr := NewIf(cond, thenBlock, elseBlock)

	lambda, err := NewLambda([]string{"n"}, "", false, []Statement{ifExpr})
	if err != nil {
		t.Fatalf("NewLambda: %v", err)
	}
	return lambda
}

func TestLambda_SelfRecursion(t *testing.T) {
	lambda := buildFactorial(t)
	root := symtab.New()
	fnVal, err := lambda.Evaluate(root)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if fnVal.Tag() != value.TagFunction {
		t.Fatalf("expected Function, got %s", fnVal.TypeName())
	}

	result, err := fnVal.AsFunction().Call([]*value.Value{value.NewInt(5)})
	if err != nil {
		t.Fatalf("Call(5): %v", err)
	}
	if result.Tag() != value.TagInt || result.AsInt() != 120 {
		t.Fatalf("fact(5) = %v, want 120", result)
	}

	result0, err := fnVal.AsFunction().Call([]*value.Value{value.NewInt(0)})
	if err != nil {
		t.Fatalf("Call(0): %v", err)
	}
	if result0.Tag() != value.TagInt || result0.AsInt() != 1 {
		t.Fatalf("fact(0) = %v, want 1", result0)
	}
}

func TestLambda_CaptureMinimality(t *testing.T) {
	lambda := buildFactorial(t)
	// The factorial body only references its own parameter n and self;
	// neither is a free variable, so the capture set must be empty
	// (spec.md §8.1 invariant 6).
	if len(lambda.Captures) != 0 {
		t.Fatalf("expected empty capture set, got %v", lambda.Captures)
	}
}

func TestLambda_CapturesFreeVariable(t *testing.T) {
	outerLookup, err := NewNameLookup("outer")
	if err != nil {
		t.Fatalf("NewNameLookup: %v", err)
	}
	lambda, err := NewLambda(nil, "", false, []Statement{outerLookup})
	if err != nil {
		t.Fatalf("NewLambda: %v", err)
	}
	if len(lambda.Captures) != 1 || lambda.Captures[0] != "outer" {
		t.Fatalf("expected capture [outer], got %v", lambda.Captures)
	}

	root := symtab.New()
	if err := root.Define("outer", value.NewInt(42)); err != nil {
		t.Fatalf("Define: %v", err)
	}
	fnVal, err := lambda.Evaluate(root)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	result, err := fnVal.AsFunction().Call(nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if result.Tag() != value.TagInt || result.AsInt() != 42 {
		t.Fatalf("result = %v, want 42", result)
	}
}

func TestLambda_RejectsSelfParameter(t *testing.T) {
	if _, err := NewLambda([]string{"self"}, "", false, []Statement{NewLiteral(value.NewInt(1))}); err == nil {
		t.Fatal("expected error for 'self' parameter")
	}
}

func TestLambda_RejectsDuplicateParameter(t *testing.T) {
	if _, err := NewLambda([]string{"a", "a"}, "", false, []Statement{NewLiteral(value.NewInt(1))}); err == nil {
		t.Fatal("expected error for duplicate parameter")
	}
}

func TestLambda_RejectsEmptyBody(t *testing.T) {
	if _, err := NewLambda(nil, "", false, nil); err == nil {
		t.Fatal("expected error for empty body")
	}
}

func TestLambda_Vararg(t *testing.T) {
	varargLookup, err := NewNameLookup("rest")
	if err != nil {
		t.Fatalf("NewNameLookup: %v", err)
	}
	lenCall := &arrayLenExpr{Expr: varargLookup}
	lambda, err := NewLambda(nil, "rest", true, []Statement{lenCall})
	if err != nil {
		t.Fatalf("NewLambda: %v", err)
	}
	root := symtab.New()
	fnVal, err := lambda.Evaluate(root)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	result, err := fnVal.AsFunction().Call([]*value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if result.Tag() != value.TagInt || result.AsInt() != 3 {
		t.Fatalf("result = %v, want 3", result)
	}
}

// arrayLenExpr is a tiny test-only Expression wrapping value.Len, to avoid
// pulling the builtins package into this test.
type arrayLenExpr struct {
	Expr Expression
}

func (e *arrayLenExpr) Evaluate(table *symtab.Table) (*value.Value, error) {
	v, err := e.Expr.Evaluate(table)
	if err != nil {
		return nil, err
	}
	return value.Len(v)
}
func (e *arrayLenExpr) Execute(table *symtab.Table) (*value.Value, error) { return executeExpr(e, table) }
func (e *arrayLenExpr) SymbolSequence() []SymbolAction                   { return e.Expr.SymbolSequence() }
func (e *arrayLenExpr) Children() []ChildInfo                            { return nil }
func (e *arrayLenExpr) DebugDump() string                                { return "len(...)" }
