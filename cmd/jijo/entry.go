package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime/debug"
	"strings"

	"jijo/runtime-go/pkg/driver"
	"jijo/runtime-go/pkg/runtime"
)

func loadProgram(path string) (*driver.Program, error) {
	img, err := driver.LoadImage(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("program image %s not found", path)
		}
		return nil, err
	}
	return driver.Compile(img)
}

func runEntry(args []string, opts globalOptions, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "jijo run expects one program image (received %d arguments)\n", len(args))
		return 1
	}
	prog, err := loadProgram(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "jijo: %v\n", err)
		return 1
	}
	prog.Stdout = stdout
	if opts.trace {
		prog.Trace = stderr
	}

	prev := runtime.SetReporter(&runtime.Reporter{
		Stderr: stderr,
		Exit:   os.Exit,
		Stack:  debug.Stack,
	})
	defer runtime.SetReporter(prev)

	runtime.Run(prog.Entry(), stdout)
	return 0
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "jijo check expects at least one program image")
		return 1
	}
	failed := 0
	for _, path := range args {
		prog, err := loadProgram(path)
		if err != nil {
			fmt.Fprintf(stderr, "jijo: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s: ok (%d registers: %s)\n", prog.Name, len(prog.Registers()), strings.Join(prog.Registers(), ", "))
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// runFmt validates each image and rewrites it in canonical form.
func runFmt(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "jijo fmt expects at least one program image")
		return 1
	}
	failed := 0
	for _, path := range args {
		img, err := driver.LoadImage(path)
		if err == nil {
			_, err = driver.Compile(img)
		}
		if err == nil {
			err = driver.WriteImage(img, "")
		}
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = fmt.Errorf("program image %s not found", path)
			}
			fmt.Fprintf(stderr, "jijo: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s: formatted\n", img.Path)
	}
	if failed > 0 {
		return 1
	}
	return 0
}
