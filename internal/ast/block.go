package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Block groups a sequence of statements into a single Expression: prefix
// statements execute in order, then the mandatory final expression's value
// is returned. A Block opens its own lexical scope (a child symbol table
// failing over to the enclosing one), so names it defines do not leak
// outward — the same shape as a Lambda body, used for `if`/`else` arms
// and other brace-delimited blocks the (out-of-scope) parser produces.
// Not named in spec.md's closed AST node list; added here because the
// parser is an external collaborator and something has to give `{ ... }`
// bodies a lexical scope (see DESIGN.md's Open Question on block scoping).
type Block struct {
	Prefix []Statement
	Final  Expression
}

// NewBlock constructs a Block, rejecting an empty body and requiring the
// final statement to be an Expression — the same discipline as Lambda
// bodies (spec.md §4.F construction step 4).
func NewBlock(stmts []Statement) (*Block, error) {
	if len(stmts) == 0 {
		return nil, langerr.Unrecoverable("block body must not be empty")
	}
	last := stmts[len(stmts)-1]
	final, ok := last.(Expression)
	if !ok {
		return nil, langerr.Unrecoverable("block's final statement must be an expression")
	}
	return &Block{Prefix: stmts[:len(stmts)-1], Final: final}, nil
}

// Evaluate runs the prefix statements against a fresh child scope, then
// evaluates and returns the final expression.
func (b *Block) Evaluate(table *symtab.Table) (*value.Value, error) {
	child := symtab.NewChild(table)
	for _, stmt := range b.Prefix {
		if _, err := stmt.Execute(child); err != nil {
			return nil, err
		}
	}
	return b.Final.Evaluate(child)
}

// Execute evaluates and discards the result.
func (b *Block) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(b, table)
}

// SymbolSequence computes the block's own free-variable usages: names
// Defined within the block are scoped away and never surface to an
// enclosing Lambda's capture analysis; Usages of names not locally defined
// surface upward unchanged, in order.
func (b *Block) SymbolSequence() []SymbolAction {
	defined := make(map[string]bool)
	var out []SymbolAction
	process := func(stmt Statement) {
		for _, a := range stmt.SymbolSequence() {
			if a.Define {
				defined[a.Name] = true
				continue
			}
			if !defined[a.Name] {
				out = append(out, Usage(a.Name))
			}
		}
	}
	for _, stmt := range b.Prefix {
		process(stmt)
	}
	process(b.Final)
	return out
}

// Children returns the prefix statements followed by the final expression.
func (b *Block) Children() []ChildInfo {
	children := make([]ChildInfo, 0, len(b.Prefix)+1)
	for _, s := range b.Prefix {
		children = append(children, ChildInfo{Label: "Stmt", Node: s})
	}
	children = append(children, ChildInfo{Label: "Final", Node: b.Final})
	return children
}

// DebugDump renders the node label.
func (b *Block) DebugDump() string { return "Block" }
