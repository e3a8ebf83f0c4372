// Package builtins implements the injection surface described in spec.md
// §4.I: the standard operators and library functions a fresh symbol table
// needs before user code (or a module) can run. The core evaluator only
// specifies the *contract* each built-in must meet; this package is one
// concrete realization of that contract, grounded on the teacher's
// external-function registration style (internal/interp/external_functions.go)
// and the domain libraries named in SPEC_FULL.md's DOMAIN STACK.
package builtins

import (
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Install injects every built-in named in spec.md §4.I (plus the
// supplemented json/base64/regex/string-ops library surface from
// SPEC_FULL.md) into table. Intended to seed a fresh root table before
// user code or a module runs — see internal/importer, which calls this for
// every module's isolated environment.
func Install(table *symtab.Table) error {
	installers := [](func(*symtab.Table) error){
		installArithmetic,
		installCore,
		installTypeTests,
		installConversions,
		installMutableCell,
		installFormat,
		installJSON,
		installBase64,
		installRegex,
		installStringOps,
	}
	for _, install := range installers {
		if err := install(table); err != nil {
			return err
		}
	}
	return nil
}

// define is a small helper shared by every installer: wraps fn as a
// value.Builtin with the given arity and defines it in table under name.
func define(table *symtab.Table, name string, min int, max *int, fn func(args []*value.Value) (*value.Value, error)) error {
	return table.Define(name, value.NewFunction(value.NewBuiltin(name, min, max, fn)))
}
