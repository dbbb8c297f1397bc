package runtime

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func expectFatal(t *testing.T, code int, fn func()) *FatalError {
	t.Helper()
	var stderr bytes.Buffer
	fatal := Recover(&stderr, fn)
	if fatal == nil {
		t.Fatalf("expected fatal error %d, got none", code)
	}
	if fatal.Code != code {
		t.Fatalf("fatal code = %d, want %d (%s)", fatal.Code, code, fatal.Message)
	}
	prefix := fmt.Sprintf("ERROR %d: ", code)
	if !strings.HasPrefix(stderr.String(), prefix) {
		t.Fatalf("stderr = %q, want prefix %q", stderr.String(), prefix)
	}
	return fatal
}

func TestFatalfWritesCodeMessageAndStack(t *testing.T) {
	var stderr bytes.Buffer
	exitCode := -1
	prev := SetReporter(&Reporter{
		Stderr: &stderr,
		Exit:   func(code int) { exitCode = code },
		Stack:  func() []byte { return []byte("goroutine 1 [running]:\n") },
	})
	defer SetReporter(prev)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Fatalf(ErrValue, "bad %s", "thing")
	}()

	if exitCode != ErrValue {
		t.Fatalf("exit code = %d, want %d", exitCode, ErrValue)
	}
	fatal, ok := recovered.(*FatalError)
	if !ok {
		t.Fatalf("expected *FatalError panic, got %#v", recovered)
	}
	if fatal.Message != "bad thing" {
		t.Fatalf("Message = %q, want %q", fatal.Message, "bad thing")
	}
	want := "ERROR 102: bad thing\ngoroutine 1 [running]:\n"
	if stderr.String() != want {
		t.Fatalf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestRecoverRestoresReporter(t *testing.T) {
	before := reporter
	fatal := Recover(&bytes.Buffer{}, func() {
		Fatalf(ErrBug, "boom")
	})
	if fatal == nil || fatal.Code != ErrBug {
		t.Fatalf("expected ErrBug, got %#v", fatal)
	}
	if reporter != before {
		t.Fatalf("reporter was not restored")
	}
	if got := fatal.Error(); got != "ERROR 105: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestRecoverWithoutFailure(t *testing.T) {
	ran := false
	if fatal := Recover(&bytes.Buffer{}, func() { ran = true }); fatal != nil {
		t.Fatalf("unexpected fatal %v", fatal)
	}
	if !ran {
		t.Fatalf("fn was not called")
	}
}

func TestRecoverRepanicsForeignPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "other" {
			t.Fatalf("expected foreign panic to propagate, got %#v", r)
		}
	}()
	Recover(&bytes.Buffer{}, func() { panic("other") })
}

func TestSetReporterNilRestoresDefault(t *testing.T) {
	prev := SetReporter(nil)
	defer SetReporter(prev)
	if reporter == nil || reporter.Exit == nil || reporter.Stderr == nil {
		t.Fatalf("default reporter incomplete: %#v", reporter)
	}
}
