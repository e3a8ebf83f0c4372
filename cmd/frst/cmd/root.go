package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "frst",
	Short: "frst core evaluator",
	Long: `frst is a tree-walking evaluator for a small dynamically-typed
scripting language: tagged values, closures with static free-variable
capture, a format-string mini-language, and a dotted-module importer.

This binary exposes the evaluator core only. The source-text parser and
interactive REPL are external collaborators and are not built here; embed
this module's internal/ast package directly to drive evaluation from a
parser of your own.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringP("module-path", "m", "", "colon-separated module search path (also read from FROST_MODULE_PATH)")
}
