package ast

import (
	"strings"

	"github.com/cwbudde/frst/internal/fmtstring"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// FormatString parses its template at construction time into a fixed
// sequence of literal/placeholder segments (internal/fmtstring, spec.md
// §4.G), then concatenates them at evaluation time, rendering each
// placeholder's looked-up value with the *raw* internal string form
// (strings unquoted) — spec.md §4.D.
type FormatString struct {
	segments []fmtstring.Segment
}

// NewFormatString parses template and constructs a FormatString node. A
// malformed template (unterminated placeholder, invalid/empty placeholder
// name) is an unrecoverable construction-time error.
func NewFormatString(template string) (*FormatString, error) {
	segs, err := fmtstring.Parse(template)
	if err != nil {
		return nil, err
	}
	return &FormatString{segments: segs}, nil
}

// Evaluate concatenates literal segments with each placeholder's looked-up
// value, rendered raw (unquoted).
func (n *FormatString) Evaluate(table *symtab.Table) (*value.Value, error) {
	var b strings.Builder
	for _, seg := range n.segments {
		if !seg.IsPlaceholder {
			b.WriteString(seg.Literal)
			continue
		}
		v, err := table.Lookup(seg.Placeholder)
		if err != nil {
			return nil, err
		}
		b.WriteString(value.ToInternalString(v, false))
	}
	return value.NewString(b.String()), nil
}

// Execute evaluates and discards the result.
func (n *FormatString) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(n, table)
}

// SymbolSequence yields a Usage for each placeholder's name, in order.
func (n *FormatString) SymbolSequence() []SymbolAction {
	var seq []SymbolAction
	for _, seg := range n.segments {
		if seg.IsPlaceholder {
			seq = append(seq, Usage(seg.Placeholder))
		}
	}
	return seq
}

// Children is empty: a format string is a leaf node (its placeholders are
// names, not sub-expressions).
func (n *FormatString) Children() []ChildInfo { return nil }

// DebugDump renders the node label.
func (n *FormatString) DebugDump() string { return "Format_String" }
