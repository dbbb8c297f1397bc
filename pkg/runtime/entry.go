package runtime

import (
	"io"
	"os"
)

// Program is the compiled program's top-level function. It receives the
// implicit starting context and returns the value the host prints.
type Program func(this Value) Value

// Run invokes program exactly once with a Null context and prints its
// result to w. It returns the number of bytes printed.
func Run(program Program, w io.Writer) int {
	if program == nil {
		Fatalf(ErrBug, "missing program entry")
	}
	result := program(Null())
	return Fprint(w, result)
}

// Main is the host entry point: it runs program against standard output
// and terminates the process with status 0.
func Main(program Program) {
	Run(program, os.Stdout)
	os.Exit(0)
}
