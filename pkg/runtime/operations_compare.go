package runtime

// Equal is total over every tag pair. Different tags are never equal, Void
// and Null compare by tag alone and Booleans by truthiness. Every other tag
// compares its payload, so strings, objects and arrays are equal only when
// they are the same allocation.
func Equal(left, right Value) Value {
	return Bool(valuesEqual(left, right))
}

func NotEqual(left, right Value) Value {
	return Bool(!valuesEqual(left, right))
}

func valuesEqual(left, right Value) bool {
	if left.tag != right.tag {
		return false
	}
	switch left.tag {
	case TagVoid, TagNull:
		return true
	case TagBoolean:
		return (left.num != 0) == (right.num != 0)
	default:
		return left.identity(right)
	}
}

func Less(left, right Value) Value {
	checkBinary("<", left, TagNumber, right, TagNumber)
	return Bool(left.num < right.num)
}

func LessEqual(left, right Value) Value {
	checkBinary("<=", left, TagNumber, right, TagNumber)
	return Bool(left.num <= right.num)
}

func Greater(left, right Value) Value {
	checkBinary(">", left, TagNumber, right, TagNumber)
	return Bool(left.num > right.num)
}

func GreaterEqual(left, right Value) Value {
	checkBinary(">=", left, TagNumber, right, TagNumber)
	return Bool(left.num >= right.num)
}

//-----------------------------------------------------------------------------
// Logical operators
//-----------------------------------------------------------------------------

func And(left, right Value) Value {
	checkBinary("&&", left, TagBoolean, right, TagBoolean)
	return Bool(left.num != 0 && right.num != 0)
}

func Or(left, right Value) Value {
	checkBinary("||", left, TagBoolean, right, TagBoolean)
	return Bool(left.num != 0 || right.num != 0)
}

func Not(operand Value) Value {
	checkUnary("!", operand, TagBoolean, "")
	return Bool(operand.num == 0)
}

// Is reports whether both operands carry the same tag.
func Is(left, right Value) Value {
	return Bool(left.tag == right.tag)
}

// Test is the type-checked truthiness used by generated branches.
func Test(cond Value) bool {
	checkUnary("if", cond, TagBoolean, "")
	return cond.num != 0
}
