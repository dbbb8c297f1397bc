package driver

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"jijo/runtime-go/pkg/runtime"
)

// ThisRegister is preloaded with the entry context and cannot be written.
const ThisRegister = "this"

type instruction struct {
	op     opcode
	name   string
	dst    int
	args   []int
	value  runtime.Value
	binary func(runtime.Value, runtime.Value) runtime.Value
	unary  func(runtime.Value) runtime.Value
	target int
}

// Program is a compiled image with registers and jump targets resolved.
type Program struct {
	Name string
	// Stdout receives output of print instructions; nil means os.Stdout.
	Stdout io.Writer
	// Trace, when set, receives one line per executed instruction.
	Trace io.Writer

	code      []instruction
	registers []string
}

type registerTable struct {
	names []string
	index map[string]int
}

func newRegisterTable() *registerTable {
	return &registerTable{
		names: []string{ThisRegister},
		index: map[string]int{ThisRegister: 0},
	}
}

func (r *registerTable) define(name string) int {
	if idx, ok := r.index[name]; ok {
		return idx
	}
	idx := len(r.names)
	r.names = append(r.names, name)
	r.index[name] = idx
	return idx
}

func (r *registerTable) lookup(name string) (int, bool) {
	idx, ok := r.index[name]
	return idx, ok
}

// Compile validates img and resolves its registers and labels.
func Compile(img *Image) (*Program, error) {
	if img == nil {
		return nil, fmt.Errorf("compile: nil image")
	}
	labels := make(map[string]int)
	for idx, in := range img.Code {
		if in.Label == "" {
			continue
		}
		if _, dup := labels[in.Label]; dup {
			return nil, fmt.Errorf("compile: instruction %d: duplicate label %q", idx, in.Label)
		}
		labels[in.Label] = idx
	}

	regs := newRegisterTable()
	for _, in := range img.Code {
		if in.Dst != "" && in.Dst != ThisRegister {
			regs.define(in.Dst)
		}
	}

	prog := &Program{Name: img.Name, code: make([]instruction, 0, len(img.Code))}
	for idx, in := range img.Code {
		compiled, err := compileInstruction(in, regs, labels)
		if err != nil {
			return nil, fmt.Errorf("compile: instruction %d (%s): %w", idx, in.Op, err)
		}
		prog.code = append(prog.code, compiled)
	}
	prog.registers = regs.names
	return prog, nil
}

// compileInstruction lowers one instruction, defining its Dst register on
// demand. A nil labels map means control flow is not available
// (interactive sessions).
func compileInstruction(in Instruction, regs *registerTable, labels map[string]int) (instruction, error) {
	shape, ok := opShapes[in.Op]
	if !ok {
		if in.Op == "" {
			return instruction{}, fmt.Errorf("missing op")
		}
		return instruction{}, fmt.Errorf("unknown op %q", in.Op)
	}
	out := instruction{op: shape.code, name: in.Op, dst: -1, target: -1}

	if len(in.Args) < shape.minArgs || len(in.Args) > shape.maxArgs {
		if shape.minArgs == shape.maxArgs {
			return out, fmt.Errorf("expects %d argument(s), got %d", shape.minArgs, len(in.Args))
		}
		return out, fmt.Errorf("expects %d to %d arguments, got %d", shape.minArgs, shape.maxArgs, len(in.Args))
	}
	for _, arg := range in.Args {
		idx, ok := regs.lookup(arg)
		if !ok {
			return out, fmt.Errorf("undefined register %q", arg)
		}
		out.args = append(out.args, idx)
	}

	switch {
	case in.Dst == ThisRegister:
		return out, fmt.Errorf("register %q is read-only", ThisRegister)
	case in.Dst == "" && shape.dst:
		return out, fmt.Errorf("missing dst")
	}

	if shape.target {
		if labels == nil {
			return out, fmt.Errorf("control flow is not available here")
		}
		idx, ok := labels[in.Target]
		if !ok {
			return out, fmt.Errorf("unknown target %q", in.Target)
		}
		out.target = idx
	}

	switch shape.code {
	case opConst:
		value, err := constantValue(in.Op, in.Value)
		if err != nil {
			return out, err
		}
		out.value = value
	case opBinary:
		fn, ok := binaryOperators[in.Operator]
		if !ok {
			return out, fmt.Errorf("unknown binary operator %q", in.Operator)
		}
		out.binary = fn
	case opUnary:
		fn, ok := unaryOperators[in.Operator]
		if !ok {
			return out, fmt.Errorf("unknown unary operator %q", in.Operator)
		}
		out.unary = fn
	}

	if in.Dst != "" {
		out.dst = regs.define(in.Dst)
	}
	return out, nil
}

// constantValue builds the literal for a constant op. String literals are
// allocated once, so every execution of the instruction yields the same
// buffer.
func constantValue(op, raw string) (runtime.Value, error) {
	switch op {
	case "number":
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return runtime.Value{}, fmt.Errorf("invalid number literal %q", raw)
		}
		return runtime.Number(f), nil
	case "bool":
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return runtime.Value{}, fmt.Errorf("invalid bool literal %q", raw)
		}
		return runtime.Bool(b), nil
	case "string":
		return runtime.NewString(raw), nil
	case "null":
		return runtime.Null(), nil
	default:
		return runtime.Void(), nil
	}
}

// Registers lists register names in slot order; slot 0 is ThisRegister.
func (p *Program) Registers() []string {
	out := make([]string, len(p.registers))
	copy(out, p.registers)
	return out
}

func (p *Program) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}
