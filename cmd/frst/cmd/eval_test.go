package cmd

import (
	"testing"

	"github.com/cwbudde/frst/internal/ast"
	"github.com/cwbudde/frst/internal/value"
)

func TestEvalProgram_LastExpressionValue(t *testing.T) {
	def, err := ast.NewDefine("x", ast.NewLiteral(value.NewInt(41)), false)
	if err != nil {
		t.Fatal(err)
	}
	plusCall := &ast.FunctionCall{
		FnExpr: &ast.NameLookup{Name: "plus"},
		Args:   []ast.Expression{&ast.NameLookup{Name: "x"}, ast.NewLiteral(value.NewInt(1))},
	}

	result, err := EvalProgram([]ast.Statement{def, plusCall})
	if err != nil {
		t.Fatal(err)
	}
	if result.AsInt() != 42 {
		t.Fatalf("result = %v, want 42", result.AsInt())
	}
}

func TestEvalProgram_TrailingDefinitionYieldsNil(t *testing.T) {
	def, err := ast.NewDefine("x", ast.NewLiteral(value.NewInt(1)), false)
	if err != nil {
		t.Fatal(err)
	}
	result, err := EvalProgram([]ast.Statement{def})
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Fatalf("result = %v, want nil", result)
	}
}

func TestEvalProgram_PropagatesError(t *testing.T) {
	_, err := EvalProgram([]ast.Statement{&ast.NameLookup{Name: "nonexistent_name"}})
	if err == nil {
		t.Fatal("expected error for undefined name")
	}
}
