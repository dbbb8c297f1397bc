package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"jijo/runtime-go/pkg/runtime"
)

// Entry binds the program to the runtime entry contract.
func (p *Program) Entry() runtime.Program {
	return func(this runtime.Value) runtime.Value {
		return p.Exec(this)
	}
}

// Exec runs the program once with the given context. Running past the last
// instruction yields Void.
func (p *Program) Exec(this runtime.Value) runtime.Value {
	regs := make([]runtime.Value, len(p.registers))
	regs[0] = this

	out := p.stdout()
	for pc := 0; pc < len(p.code); {
		in := &p.code[pc]
		if p.Trace != nil {
			fmt.Fprintf(p.Trace, "%04d %s\n", pc, in.name)
		}
		switch in.op {
		case opJump:
			pc = in.target
			continue
		case opBranch:
			if !runtime.Test(regs[in.args[0]]) {
				pc = in.target
				continue
			}
		case opReturn:
			if len(in.args) == 0 {
				return runtime.Void()
			}
			return regs[in.args[0]]
		default:
			execStep(in, regs, out)
		}
		pc++
	}
	return runtime.Void()
}

// execStep runs a straight-line instruction against regs.
func execStep(in *instruction, regs []runtime.Value, out io.Writer) {
	var result runtime.Value
	switch in.op {
	case opNop:
		return
	case opConst:
		result = in.value
	case opObject:
		result = runtime.NewObject()
	case opArray:
		result = runtime.NewArray()
	case opMove:
		result = regs[in.args[0]]
	case opBinary:
		result = in.binary(regs[in.args[0]], regs[in.args[1]])
	case opUnary:
		result = in.unary(regs[in.args[0]])
	case opGet:
		result = runtime.GetValue(regs[in.args[0]], regs[in.args[1]])
	case opSet:
		result = runtime.SetValue(regs[in.args[0]], regs[in.args[1]], regs[in.args[2]])
	case opPrint:
		result = runtime.Number(float64(runtime.Fprint(out, regs[in.args[0]])))
	case opAssert:
		msg := runtime.Void()
		if len(in.args) > 1 {
			msg = regs[in.args[1]]
		}
		result = runtime.Assert(regs[in.args[0]], msg)
	default:
		runtime.Fatalf(runtime.ErrBug, "instruction %s cannot run here", in.name)
	}
	if in.dst >= 0 {
		regs[in.dst] = result
	}
}

// Session executes instructions one at a time against a persistent register
// file. Control flow instructions are rejected.
type Session struct {
	Stdout io.Writer

	regs   *registerTable
	values []runtime.Value
}

// NewSession starts a session whose ThisRegister holds this.
func NewSession(this runtime.Value) *Session {
	return &Session{regs: newRegisterTable(), values: []runtime.Value{this}}
}

// Step compiles and runs one instruction. It returns the destination
// register name, or "" when the instruction has none. Runtime failures are
// reported through the runtime reporter, not the returned error.
func (s *Session) Step(in Instruction) (string, error) {
	if in.Op == "return" {
		return "", fmt.Errorf("return is not available here")
	}
	compiled, err := compileInstruction(in, s.regs, nil)
	if err != nil {
		return "", err
	}
	for len(s.values) < len(s.regs.names) {
		s.values = append(s.values, runtime.Void())
	}
	out := s.Stdout
	if out == nil {
		out = os.Stdout
	}
	execStep(&compiled, s.values, out)
	if compiled.dst < 0 {
		return "", nil
	}
	return s.regs.names[compiled.dst], nil
}

// Lookup returns the value held by the named register.
func (s *Session) Lookup(name string) (runtime.Value, bool) {
	idx, ok := s.regs.lookup(name)
	if !ok {
		return runtime.Value{}, false
	}
	return s.values[idx], true
}

// Describe renders the register file, one `name = value` line each.
func (s *Session) Describe(w io.Writer) {
	for idx, name := range s.regs.names {
		var b strings.Builder
		runtime.Fprint(&b, s.values[idx])
		fmt.Fprintf(w, "%s = %s (%s)\n", name, b.String(), s.values[idx].Tag())
	}
}
