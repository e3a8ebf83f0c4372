package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a .frst source file",
	Long: `Run a .frst source file.

The source-text parser is an external collaborator (out of scope for this
module): this command documents the boundary rather than implementing it.
Embedders that own a parser should build the AST with internal/ast and
call EvalProgram directly instead of going through this CLI.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("run: no source-text parser is wired into this binary; build the AST with internal/ast and call EvalProgram from Go instead")
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive REPL.

The line editor, highlighter, and completion are external collaborators
(out of scope for this module, spec.md §1); this command documents the
boundary rather than implementing it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("repl: no interactive front-end is wired into this binary")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
}
