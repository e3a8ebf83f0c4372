package builtins

import (
	"strings"

	"github.com/cwbudde/frst/internal/fmtstring"
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installFormat registers mformat(fmt, map): like Format_String (spec.md
// §4.G), but placeholders resolve against a supplied Map with String keys
// instead of a symbol table. A missing or Null value is a recoverable
// error (spec.md §4.I).
func installFormat(table *symtab.Table) error {
	return define(table, "mformat", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		tmpl, err := requireString(args[0], "mformat")
		if err != nil {
			return nil, err
		}
		m, err := requireMap(args[1], "mformat")
		if err != nil {
			return nil, err
		}
		segs, err := fmtstring.Parse(tmpl)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		for _, seg := range segs {
			if !seg.IsPlaceholder {
				b.WriteString(seg.Literal)
				continue
			}
			v, ok := m.Get(value.NewString(seg.Placeholder))
			if !ok || v.IsNull() {
				return nil, langerr.User("mformat: missing value for placeholder %q", seg.Placeholder)
			}
			b.WriteString(value.ToInternalString(v, false))
		}
		return value.NewString(b.String()), nil
	})
}
