package ast

import (
	"strings"
	"weak"

	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Closure is a user closure: a Lambda body bound to a snapshot of its free
// variables at construction time, plus a weak self-reference it injects
// into its own capture table under "self" (spec.md §4.F, component F).
// Closure implements value.Callable.
type Closure struct {
	params      []string
	varargName  string
	hasVararg   bool
	prefix      []Statement
	final       Expression
	captures    *symtab.Table
	reserveHint int
}

// Call implements value.Callable: enforces arity (positional params exact,
// or at-least-params with a vararg collecting the remainder into an
// Array), builds a nested call-scope table failing over to the captures,
// runs the prefix statements in order, and evaluates the final expression.
func (c *Closure) Call(args []*value.Value) (*value.Value, error) {
	maxArgs := value.MaxOf(len(c.params))
	if c.hasVararg {
		maxArgs = nil
	}
	if err := value.CheckArity(c.Name(), value.Arity{Min: len(c.params), Max: maxArgs}, len(args)); err != nil {
		return nil, err
	}

	call := symtab.NewChild(c.captures)
	call.Reserve(c.reserveHint)
	for i, p := range c.params {
		if err := call.Define(p, args[i]); err != nil {
			return nil, err
		}
	}
	if c.hasVararg {
		rest := append([]*value.Value{}, args[len(c.params):]...)
		if err := call.Define(c.varargName, value.NewArray(rest)); err != nil {
			return nil, err
		}
	}

	for _, stmt := range c.prefix {
		if _, err := stmt.Execute(call); err != nil {
			return nil, err
		}
	}
	return c.final.Evaluate(call)
}

// Name implements value.Callable. Closures are anonymous; spec.md §4.E
// only requires named built-ins to report a name in arity errors.
func (c *Closure) Name() string { return "" }

// DebugDump renders a multi-line tree: parameters, captures, and body,
// matching the original's Closure::debug_dump indentation and
// capture-list rendering (spec.md §4.E, supplemented from
// original_source/implementation/cpp).
func (c *Closure) DebugDump() string {
	var b strings.Builder
	b.WriteString("<Closure>")
	if len(c.params) > 0 || c.hasVararg {
		b.WriteString(" (params: ")
		b.WriteString(strings.Join(c.params, ", "))
		if c.hasVararg {
			if len(c.params) > 0 {
				b.WriteString(", ")
			}
			b.WriteString("..." + c.varargName)
		}
		b.WriteString(")")
	}
	captureNames := make([]string, 0, len(c.captures.Names()))
	for _, n := range c.captures.Names() {
		if n != "self" {
			captureNames = append(captureNames, n)
		}
	}
	if len(captureNames) > 0 {
		b.WriteString(" (capturing: ")
		b.WriteString(strings.Join(captureNames, ", "))
		b.WriteString(")")
	}
	for _, stmt := range c.prefix {
		b.WriteString("\n  ")
		b.WriteString(stmt.DebugDump())
	}
	b.WriteString("\n  ")
	b.WriteString(c.final.DebugDump())
	return b.String()
}

// weakSelfCallable holds a weak handle to a Closure, used solely to break
// the ownership cycle of self-recursion (spec.md §3.4, §4.F): the
// closure's capture table holds this under "self", the closure itself is
// never strongly self-referential.
type weakSelfCallable struct {
	ptr weak.Pointer[Closure]
}

func newWeakSelf(c *Closure) *weakSelfCallable {
	return &weakSelfCallable{ptr: weak.Make(c)}
}

// Call promotes the weak handle and delegates. If the closure has already
// been destroyed, promotion fails and a recoverable error is reported —
// this should not happen in practice since a call through "self" only
// occurs from within a still-running invocation of the same closure, but
// the check mirrors the original's promotion-failure path.
func (w *weakSelfCallable) Call(args []*value.Value) (*value.Value, error) {
	c := w.ptr.Value()
	if c == nil {
		return nil, langerr.User("self reference is no longer valid")
	}
	return c.Call(args)
}

// DebugDump implements value.Callable.
func (w *weakSelfCallable) DebugDump() string { return "<weak-self>" }

// Name implements value.Callable.
func (w *weakSelfCallable) Name() string { return "self" }

// promoteWeakSelf implements the promotion step of spec.md §4.F's
// evaluation-time capture resolution: if v is a Function wrapping a weak
// self-reference callable, promote it to a strong reference to the
// underlying Closure before it is captured — this lets a lambda capture an
// already-running recursive function without extending its lifetime
// incorrectly through the weak indirection.
func promoteWeakSelf(v *value.Value) *value.Value {
	if v.Tag() != value.TagFunction {
		return v
	}
	w, ok := v.AsFunction().(*weakSelfCallable)
	if !ok {
		return v
	}
	strong := w.ptr.Value()
	if strong == nil {
		return v
	}
	return value.NewFunction(strong)
}
