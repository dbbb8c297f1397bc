package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"jijo/runtime-go/pkg/driver"
	"jijo/runtime-go/pkg/runtime"
)

const (
	historyFile = ".jijo_history"
	promptMain  = "jijo> "
)

// lineReader is the part of *liner.State the REPL loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func runRepl(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "jijo repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(stdout, cliToolVersion+" (type :help for commands)")
	session := driver.NewSession(runtime.Null())
	session.Stdout = stdout
	replLoop(ln, session, stdout, stderr)
	return 0
}

func replLoop(in lineReader, session *driver.Session, stdout, stderr io.Writer) {
	for {
		line, err := in.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		if err != nil {
			fmt.Fprintf(stderr, "jijo: %v\n", err)
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		in.AppendHistory(trimmed)
		if strings.HasPrefix(trimmed, ":") {
			if done := handleReplCommand(session, trimmed, stdout); done {
				return
			}
			continue
		}
		evalReplLine(session, trimmed, stdout, stderr)
	}
}

// handleReplCommand handles :help, :regs and :quit.
func handleReplCommand(session *driver.Session, line string, stdout io.Writer) (exit bool) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ":quit", ":q":
		return true
	case ":regs":
		session.Describe(stdout)
	case ":help":
		fmt.Fprintln(stdout, "Enter one instruction per line, e.g. {op: number, dst: x, value: 2}")
		fmt.Fprintln(stdout, "  :regs   list registers")
		fmt.Fprintln(stdout, "  :quit   leave the session")
	default:
		fmt.Fprintln(stdout, "unknown command. Type :help for a list.")
	}
	return false
}

func evalReplLine(session *driver.Session, line string, stdout, stderr io.Writer) {
	in, err := driver.DecodeInstruction(line)
	if err != nil {
		fmt.Fprintf(stderr, "parse error: %v\n", err)
		return
	}
	var dst string
	var stepErr error
	// Failures are already written to stderr by the reporter.
	if fatal := runtime.Recover(stderr, func() { dst, stepErr = session.Step(in) }); fatal != nil {
		return
	}
	if stepErr != nil {
		fmt.Fprintf(stderr, "error: %v\n", stepErr)
		return
	}
	if dst == "" {
		if in.Op == "print" {
			fmt.Fprintln(stdout)
		}
		return
	}
	value, _ := session.Lookup(dst)
	runtime.Fprint(stdout, value)
	fmt.Fprintln(stdout)
}
