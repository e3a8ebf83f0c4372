// Command frst is the thin CLI entry point over the evaluator core. The
// source-text parser and REPL front-end are out of scope (spec.md §1); see
// cmd/frst/cmd for the documented boundary and the EvalProgram embedding API.
package main

import (
	"os"

	"github.com/cwbudde/frst/cmd/frst/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
