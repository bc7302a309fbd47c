// Command dc is the CLI front end for the dc4 calculator core: it
// parses arguments, assembles the evaluator's expression/file sources,
// and wires process stdio to it, deliberately kept out of the core so
// package eval stays testable without a process.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/go-dc/dc4/dcerr"
	"github.com/go-dc/dc4/eval"
)

// stringList collects the values of a repeatable flag, in the style
// of the pack's own hand-rolled CLI front ends — no third-party
// flag-parsing library was found anywhere in the retrieved pack to
// ground one on (see DESIGN.md).
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// stdinLineReader implements eval.LineReader over a shared
// *bufio.Reader, so `?` and the bottom-frame program source (when
// stdin itself is the program) read from the same stream.
type stdinLineReader struct {
	r *bufio.Reader
}

func (s *stdinLineReader) ReadLine() ([]byte, error) {
	line, err := s.r.ReadString('\n')
	if len(line) == 0 && err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(line, "\n")), nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var exprs, files stringList
	fs := newFlagSet(&exprs, &files)
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	files = append(files, fs.Args()...)

	stdin := bufio.NewReader(os.Stdin)
	ev := eval.New(os.Stdout, os.Stderr, &stdinLineReader{r: stdin})

	for _, expr := range exprs {
		ev.StartBytes([]byte(expr))
		if code, done := runSource(ev); done {
			return code
		}
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dc: %s: %v\n", path, err)
			return 1
		}
		ev.StartBytes(data)
		if code, done := runSource(ev); done {
			return code
		}
	}
	if len(exprs) == 0 && len(files) == 0 {
		ev.StartReader(stdin)
		if code, done := runSource(ev); done {
			return code
		}
	}
	return 0
}

// runSource runs ev to completion of its current bottom frame,
// reporting a fatal error and requesting process exit if one occurred.
func runSource(ev *eval.Evaluator) (code int, done bool) {
	if err := ev.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if de, ok := err.(*dcerr.Error); ok && !de.Fatal() {
			return 0, false
		}
		return 1, true
	}
	return 0, false
}
