package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/frst/internal/ast"
	"github.com/cwbudde/frst/internal/builtins"
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// EvalProgram runs a pre-built statement sequence in a fresh root symbol
// table seeded with the built-ins surface, returning the value of the last
// statement executed as an expression (a nil *value.Value, not a Null
// value, if the program's last statement is a definition/destructure, or
// if the program is empty). This is the embedding API
// SPEC_FULL.md names: integration tests and any embedder with its own
// parser call this directly, bypassing the `run`/`repl` CLI stubs.
func EvalProgram(statements []ast.Statement) (*value.Value, error) {
	table := symtab.New()
	if err := builtins.Install(table); err != nil {
		return nil, err
	}

	var last *value.Value
	for _, stmt := range statements {
		if expr, ok := stmt.(ast.Expression); ok {
			v, err := expr.Evaluate(table)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}
		if _, err := stmt.Execute(table); err != nil {
			return nil, err
		}
		last = nil
	}
	return last, nil
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a pre-built AST (embedding API only)",
	Long: `eval has no source-text entry point: the parser is out of scope for this
module (spec.md §1). Build an AST with internal/ast and call
cmd.EvalProgram(statements) from Go directly; this subcommand exists only
to document that boundary for CLI users.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("eval: no source-text parser is wired into this binary; call cmd.EvalProgram from Go instead")
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// topLevelError formats err the way the reference top-level handler does
// (spec.md §7), for CLI callers that want to print evaluator errors
// consistently.
func topLevelError(err error) string {
	return langerr.TopLevelFormat(err)
}
