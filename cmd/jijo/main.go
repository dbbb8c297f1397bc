package main

import (
	"fmt"
	"io"
	"os"
)

const cliToolVersion = "jijo 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(remaining) == 0 {
		printUsage(stderr)
		return 1
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(remaining[1:], opts, stdout, stderr)
	case "check":
		return runCheck(remaining[1:], stdout, stderr)
	case "fmt":
		return runFmt(remaining[1:], stdout, stderr)
	case "repl":
		return runRepl(remaining[1:], stdout, stderr)
	default:
		return runEntry(remaining, opts, stdout, stderr)
	}
}
