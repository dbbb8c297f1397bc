package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  jijo [--trace] run <program.yml>")
	fmt.Fprintln(w, "  jijo [--trace] <program.yml>")
	fmt.Fprintln(w, "  jijo check <program.yml>")
	fmt.Fprintln(w, "  jijo fmt <program.yml>")
	fmt.Fprintln(w, "  jijo repl")
	fmt.Fprintln(w, "  jijo --version")
}
