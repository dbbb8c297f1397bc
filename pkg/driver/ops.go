package driver

import "jijo/runtime-go/pkg/runtime"

type opcode int

const (
	opNop opcode = iota
	opConst
	opObject
	opArray
	opMove
	opBinary
	opUnary
	opGet
	opSet
	opPrint
	opAssert
	opJump
	opBranch
	opReturn
)

type opShape struct {
	code    opcode
	minArgs int
	maxArgs int
	dst     bool // destination register required
	target  bool
}

var opShapes = map[string]opShape{
	"nop":    {code: opNop},
	"number": {code: opConst, dst: true},
	"string": {code: opConst, dst: true},
	"bool":   {code: opConst, dst: true},
	"null":   {code: opConst, dst: true},
	"void":   {code: opConst, dst: true},
	"object": {code: opObject, dst: true},
	"array":  {code: opArray, dst: true},
	"move":   {code: opMove, minArgs: 1, maxArgs: 1, dst: true},
	"binary": {code: opBinary, minArgs: 2, maxArgs: 2, dst: true},
	"unary":  {code: opUnary, minArgs: 1, maxArgs: 1, dst: true},
	"get":    {code: opGet, minArgs: 2, maxArgs: 2, dst: true},
	"set":    {code: opSet, minArgs: 3, maxArgs: 3},
	"print":  {code: opPrint, minArgs: 1, maxArgs: 1},
	"assert": {code: opAssert, minArgs: 1, maxArgs: 2},
	"jump":   {code: opJump, target: true},
	"branch": {code: opBranch, minArgs: 1, maxArgs: 1, target: true},
	"return": {code: opReturn, maxArgs: 1},
}

var binaryOperators = map[string]func(runtime.Value, runtime.Value) runtime.Value{
	"+":  runtime.Add,
	"-":  runtime.Sub,
	"*":  runtime.Mul,
	"/":  runtime.Div,
	"==": runtime.Equal,
	"!=": runtime.NotEqual,
	"<":  runtime.Less,
	"<=": runtime.LessEqual,
	">":  runtime.Greater,
	">=": runtime.GreaterEqual,
	"&&": runtime.And,
	"||": runtime.Or,
	"is": runtime.Is,
	"^":  runtime.Concat,
}

var unaryOperators = map[string]func(runtime.Value) runtime.Value{
	"-":   runtime.Neg,
	"!":   runtime.Not,
	"[?]": runtime.Length,
}
