package runtime

// Arithmetic follows IEEE-754 double semantics throughout. Division by zero
// yields an infinity or NaN rather than a failure.

func Add(left, right Value) Value {
	checkBinary("+", left, TagNumber, right, TagNumber)
	return Number(left.num + right.num)
}

func Sub(left, right Value) Value {
	checkBinary("-", left, TagNumber, right, TagNumber)
	return Number(left.num - right.num)
}

func Mul(left, right Value) Value {
	checkBinary("*", left, TagNumber, right, TagNumber)
	return Number(left.num * right.num)
}

func Div(left, right Value) Value {
	checkBinary("/", left, TagNumber, right, TagNumber)
	return Number(left.num / right.num)
}

// Neg implements unary minus.
func Neg(operand Value) Value {
	checkUnary("-", operand, TagNumber, "")
	return Number(-1.0 * operand.num)
}
