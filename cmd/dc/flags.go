package main

import (
	"flag"
	"os"
)

// newFlagSet builds the dc4 CLI's flag set: repeatable -e/-f, plus -x
// accepted and ignored for compatibility with Gavin Howard's bc/dc.
func newFlagSet(exprs, files *stringList) *flag.FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Var(exprs, "e", "evaluate `EXPR` (repeatable)")
	fs.Var(exprs, "expression", "evaluate `EXPR` (repeatable)")
	fs.Var(files, "f", "evaluate `FILE` (repeatable)")
	fs.Var(files, "file", "evaluate `FILE` (repeatable)")
	fs.Bool("x", false, "accepted for compatibility; ignored")
	fs.Bool("extended-register-names", false, "accepted for compatibility; ignored")
	return fs
}
