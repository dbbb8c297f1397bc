package runtime

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Failure codes, reported as the process exit status.
const (
	ErrType   = 101
	ErrValue  = 102
	ErrMemory = 103
	ErrAssert = 104
	ErrBug    = 105
)

// FatalError describes a reported failure. It only surfaces as a panic when
// the reporter's exit hook returns instead of terminating the process.
type FatalError struct {
	Code    int
	Message string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("ERROR %d: %s", e.Code, e.Message)
}

// Reporter is the single fatal-error path shared by every operator.
type Reporter struct {
	Stderr io.Writer
	Exit   func(code int)
	Stack  func() []byte
}

// DefaultReporter writes to standard error, dumps the goroutine stack and
// terminates the process.
func DefaultReporter() *Reporter {
	return &Reporter{
		Stderr: os.Stderr,
		Exit:   os.Exit,
		Stack:  debug.Stack,
	}
}

var reporter = DefaultReporter()

// SetReporter installs r as the process reporter and returns the previous
// one. A nil r restores the default.
func SetReporter(r *Reporter) *Reporter {
	prev := reporter
	if r == nil {
		r = DefaultReporter()
	}
	reporter = r
	return prev
}

// Fatalf reports an unrecoverable failure and never returns.
func Fatalf(code int, format string, args ...any) {
	r := reporter
	fatal := &FatalError{Code: code, Message: fmt.Sprintf(format, args...)}
	if r.Stderr != nil {
		fmt.Fprintln(r.Stderr, fatal.Error())
		if r.Stack != nil {
			r.Stderr.Write(r.Stack())
		}
	}
	if r.Exit != nil {
		r.Exit(code)
	}
	panic(fatal)
}

// Recover runs fn under a reporter that unwinds instead of exiting and
// returns the failure fn raised, if any. Compiled programs never call this;
// it exists for interactive hosts and tests.
func Recover(stderr io.Writer, fn func()) (fatal *FatalError) {
	prev := SetReporter(&Reporter{Stderr: stderr})
	defer func() {
		SetReporter(prev)
		if r := recover(); r != nil {
			fe, ok := r.(*FatalError)
			if !ok {
				panic(r)
			}
			fatal = fe
		}
	}()
	fn()
	return nil
}
