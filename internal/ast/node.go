// Package ast implements the frst evaluator's abstract syntax tree: the
// closed set of Statement and Expression node variants, their evaluation
// semantics, and the lambda/closure machinery that captures free
// variables at construction time (spec.md §3.6, §4.D, §4.F, component D+F).
//
// The parser that produces these trees from source text is an external
// collaborator, out of scope per spec.md §1 — nodes here are built
// directly, either by an embedder or (in tests) by hand.
package ast

import "github.com/cwbudde/frst/internal/symtab"
import "github.com/cwbudde/frst/internal/value"

// Statement is the contract every AST node satisfies (spec.md §3.6).
// Executing an expression is defined as evaluating it and discarding the
// result; Execute's return value is non-nil only for Define,
// Array_Destructure, and Map_Destructure nodes with their export modifier
// set, and carries bindings to merge into the enclosing module's export map.
type Statement interface {
	// Execute runs the statement against table, returning a non-nil export
	// Map only for exporting Define/destructure statements.
	Execute(table *symtab.Table) (*value.Value, error)
	// SymbolSequence yields the Definition/Usage actions that occur, in
	// order, during a hypothetical execution of this node. Used by the
	// Lambda static analyzer (spec.md §4.F) and must stay consistent with
	// evaluation order.
	SymbolSequence() []SymbolAction
	// Children returns this node's immediate child nodes, for debug-dump
	// tree formatting. Not semantic.
	Children() []ChildInfo
	// DebugDump renders a diagnostic tree description. Not semantic.
	DebugDump() string
}

// Expression is a Statement that additionally produces a Value.
type Expression interface {
	Statement
	Evaluate(table *symtab.Table) (*value.Value, error)
}

// ChildInfo labels a child node for debug-dump tree formatting.
type ChildInfo struct {
	Label string
	Node  Statement
}

// SymbolAction is one action in a node's symbol_sequence: either a local
// Definition or a Usage of a name.
type SymbolAction struct {
	Name   string
	Define bool // true = Definition, false = Usage
}

// Definition constructs a Definition action.
func Definition(name string) SymbolAction { return SymbolAction{Name: name, Define: true} }

// Usage constructs a Usage action.
func Usage(name string) SymbolAction { return SymbolAction{Name: name, Define: false} }

// executeExpr is the default Execute() behavior shared by every
// Expression-only node: evaluate, discard the result, no export map.
func executeExpr(expr Expression, table *symtab.Table) (*value.Value, error) {
	_, err := expr.Evaluate(table)
	return nil, err
}
