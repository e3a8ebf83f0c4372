// Package importer implements module resolution for the frst evaluator:
// dotted-specifier-to-path conversion, search-path iteration, isolated
// per-module evaluation, and export-map caching (spec.md §4.H, component H).
package importer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/frst/internal/ast"
	"github.com/cwbudde/frst/internal/builtins"
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// Parser produces a module's statement sequence from its decoded source
// text. The concrete parser lives outside this module (spec.md §1's
// out-of-scope collaborator); callers supply one to NewImporter.
type Parser func(source string) ([]ast.Statement, error)

// Prelude installs any additional bindings a fresh module environment
// should have beyond the raw built-ins surface, before the module's own
// statements run. The core specifies only that a prelude step occurs
// (spec.md §4.H step 5), not its contents; this default prelude is a no-op
// hook embedders may replace via NewWithPrelude.
type Prelude func(table *symtab.Table) error

// noopPrelude satisfies Prelude when the caller doesn't supply one.
func noopPrelude(*symtab.Table) error { return nil }

// moduleEnvPath reads FROST_MODULE_PATH (spec.md §6), split on ':'. Empty
// segments are dropped.
func moduleEnvPath() []string {
	raw := os.Getenv("FROST_MODULE_PATH")
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ":") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Importer resolves dotted module specifiers to their export Map, caching
// results for the lifetime of the instance (spec.md §8.1's idempotence
// property: repeated import(spec) within one importer returns the same
// handle).
type Importer struct {
	parser     Parser
	prelude    Prelude
	searchPath []string
	envPath    []string
	cache      map[string]*value.Value
}

// New creates a root Importer with the given parser and constructor-supplied
// search path. The environment-derived path (FROST_MODULE_PATH) is appended
// automatically and re-read once at construction time.
func New(parser Parser, searchPath []string) *Importer {
	return NewWithPrelude(parser, searchPath, noopPrelude)
}

// NewWithPrelude is New, with an explicit prelude-installation hook.
func NewWithPrelude(parser Parser, searchPath []string, prelude Prelude) *Importer {
	if prelude == nil {
		prelude = noopPrelude
	}
	return &Importer{
		parser:     parser,
		prelude:    prelude,
		searchPath: append([]string{}, searchPath...),
		envPath:    moduleEnvPath(),
		cache:      make(map[string]*value.Value),
	}
}

// child builds the scoped importer a module's own `import` built-in is
// bound to: search path is [<module's directory>, <env-supplied entries>]
// (spec.md §4.H step 6). It shares nothing else with the parent importer
// (isolated environment, fresh cache) — each module's imports resolve
// independently, matching the isolated-symbol-table contract of step 5.
func (imp *Importer) child(moduleDir string) *Importer {
	return NewWithPrelude(imp.parser, append([]string{moduleDir}, imp.envPath...), imp.prelude)
}

// Import resolves specifier to its export Map, per spec.md §4.H's 8-step
// algorithm.
func (imp *Importer) Import(specifier string) (*value.Value, error) {
	if cached, ok := imp.cache[specifier]; ok {
		return cached, nil
	}

	relPath := strings.ReplaceAll(specifier, ".", string(filepath.Separator)) + ".frst"

	path, err := imp.resolve(relPath)
	if err != nil {
		return nil, err
	}

	source, err := detectAndDecodeFile(path)
	if err != nil {
		return nil, err
	}

	statements, err := imp.parser(source)
	if err != nil {
		return nil, langerr.User("failed to parse module %q (%s): %s", specifier, path, err.Error())
	}

	table := symtab.New()
	if err := builtins.Install(table); err != nil {
		return nil, err
	}
	if err := imp.prelude(table); err != nil {
		return nil, err
	}
	if err := table.Define("imported", value.NewBool(true)); err != nil {
		return nil, err
	}

	childImporter := imp.child(filepath.Dir(path))
	importFn := value.NewBuiltin("import", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		if args[0].Tag() != value.TagString {
			return nil, langerr.User("import requires String, got %s", args[0].TypeName())
		}
		return childImporter.Import(args[0].AsString())
	})
	if err := table.Define("import", value.NewFunction(importFn)); err != nil {
		return nil, err
	}

	exports := value.NewOrderedMap()
	for _, stmt := range statements {
		result, err := stmt.Execute(table)
		if err != nil {
			return nil, err
		}
		if result == nil || result.IsNull() {
			continue
		}
		if result.Tag() != value.TagMap {
			return nil, langerr.Internal("module statement export result must be a Map, got %s", result.TypeName())
		}
		for _, e := range result.AsMap().Entries() {
			exports.Set(e.Key, e.Value)
		}
	}

	exportValue := value.NewMap(exports)
	imp.cache[specifier] = exportValue
	return exportValue, nil
}

// resolve finds the first regular file named relPath across the
// constructor-supplied search path followed by the environment-derived
// path (spec.md §4.H step 3).
func (imp *Importer) resolve(relPath string) (string, error) {
	for _, root := range imp.allSearchPaths() {
		candidate := filepath.Join(root, relPath)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", langerr.User("module %q not found on search path", relPath)
}

func (imp *Importer) allSearchPaths() []string {
	return append(append([]string{}, imp.searchPath...), imp.envPath...)
}
