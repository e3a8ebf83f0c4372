package ast

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Lambda is the expression form that, at evaluation time, produces a
// Function value wrapping a Closure. Its static analysis — parameter
// validation and free-variable (capture set) computation — runs once, at
// construction time, per spec.md §4.F.
type Lambda struct {
	Params      []string
	VarargName  string
	HasVararg   bool
	Prefix      []Statement
	Final       Expression
	Captures    []string // free variables, in first-occurrence order
	ReserveHint int       // |names_defined_so_far| at construction time
}

// NewLambda performs the five construction-time steps of spec.md §4.F:
// collect the parameter set, reject "self" as a parameter, reject
// duplicate parameters, reject an empty/non-expression-terminated body,
// and walk the body's symbol_sequence to compute the capture set while
// rejecting any local Definition that collides with a parameter or "self".
func NewLambda(params []string, varargName string, hasVararg bool, body []Statement) (*Lambda, error) {
	if len(body) == 0 {
		return nil, langerr.Unrecoverable("lambda body must not be empty")
	}

	paramSet := make(map[string]bool, len(params)+1)
	for _, p := range params {
		if p == "self" {
			return nil, langerr.Unrecoverable(`"self" is reserved and cannot be used as a parameter name`)
		}
		if paramSet[p] {
			return nil, langerr.Unrecoverable("duplicate lambda parameter: %s", p)
		}
		paramSet[p] = true
	}
	if hasVararg {
		if varargName == "self" {
			return nil, langerr.Unrecoverable(`"self" is reserved and cannot be used as a parameter name`)
		}
		if paramSet[varargName] {
			return nil, langerr.Unrecoverable("duplicate lambda parameter: %s", varargName)
		}
		paramSet[varargName] = true
	}

	last := body[len(body)-1]
	finalExpr, ok := last.(Expression)
	if !ok {
		return nil, langerr.Unrecoverable("lambda body's final statement must be an expression")
	}
	prefix := body[:len(body)-1]

	definedSoFar := make(map[string]bool, len(paramSet)+1)
	for p := range paramSet {
		definedSoFar[p] = true
	}
	definedSoFar["self"] = true

	var captureOrder []string
	captureSeen := make(map[string]bool)

	process := func(stmt Statement) error {
		for _, action := range stmt.SymbolSequence() {
			if action.Define {
				if paramSet[action.Name] || action.Name == "self" {
					return langerr.Unrecoverable("lambda body redefines reserved or parameter name: %s", action.Name)
				}
				definedSoFar[action.Name] = true
				continue
			}
			if action.Name == "self" {
				continue
			}
			if !definedSoFar[action.Name] && !captureSeen[action.Name] {
				captureSeen[action.Name] = true
				captureOrder = append(captureOrder, action.Name)
			}
		}
		return nil
	}

	for _, stmt := range prefix {
		if err := process(stmt); err != nil {
			return nil, err
		}
	}
	if err := process(finalExpr); err != nil {
		return nil, err
	}

	return &Lambda{
		Params:      append([]string{}, params...),
		VarargName:  varargName,
		HasVararg:   hasVararg,
		Prefix:      prefix,
		Final:       finalExpr,
		Captures:    captureOrder,
		ReserveHint: len(definedSoFar),
	}, nil
}

// Evaluate implements spec.md §4.F's evaluation-time construction of a
// callable value: resolve captures against table (promoting any weak
// self-reference to strong), build a fresh capture table, construct the
// Closure, and inject its own weak self-reference under "self".
func (l *Lambda) Evaluate(table *symtab.Table) (*value.Value, error) {
	captureTable := symtab.New()
	for _, name := range l.Captures {
		v, err := table.Lookup(name)
		if err != nil {
			return nil, langerr.Unrecoverable("lambda capture %q is not defined: %s", name, err.Error())
		}
		v = promoteWeakSelf(v)
		if err := captureTable.Define(name, v); err != nil {
			return nil, err
		}
	}

	closure := &Closure{
		params:      l.Params,
		varargName:  l.VarargName,
		hasVararg:   l.HasVararg,
		prefix:      l.Prefix,
		final:       l.Final,
		captures:    captureTable,
		reserveHint: l.ReserveHint,
	}

	weakPtr := newWeakSelf(closure)
	if err := captureTable.Define("self", value.NewFunction(weakPtr)); err != nil {
		return nil, err
	}

	return value.NewFunction(closure), nil
}

// Execute evaluates and discards the result.
func (l *Lambda) Execute(table *symtab.Table) (*value.Value, error) {
	return executeExpr(l, table)
}

// SymbolSequence yields a Usage action for every captured free variable.
// A Lambda node never emits Definition actions of its own to an enclosing
// scope — its parameters and locals are entirely self-contained.
func (l *Lambda) SymbolSequence() []SymbolAction {
	seq := make([]SymbolAction, len(l.Captures))
	for i, name := range l.Captures {
		seq[i] = Usage(name)
	}
	return seq
}

// Children returns the prefix statements followed by the final expression.
func (l *Lambda) Children() []ChildInfo {
	children := make([]ChildInfo, 0, len(l.Prefix)+1)
	for _, s := range l.Prefix {
		children = append(children, ChildInfo{Label: "Stmt", Node: s})
	}
	children = append(children, ChildInfo{Label: "Final", Node: l.Final})
	return children
}

// DebugDump renders the node label.
func (l *Lambda) DebugDump() string { return "Lambda" }
