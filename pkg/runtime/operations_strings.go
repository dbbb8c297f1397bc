package runtime

import "math"

// Length implements `[?]`: the character count of a string, or the largest
// key of an array or object (not its element count).
func Length(operand Value) Value {
	switch operand.tag {
	case TagString:
		return Number(float64(len(operand.Str())))
	case TagObject:
		return Number(float64(checkComposite(operand).MaxKey()))
	}
	checkUnary("", operand, TagArray, "[?]")
	return Number(float64(checkComposite(operand).MaxKey()))
}

// Concat implements `^`. Both sources are left untouched; the result is a
// new buffer.
func Concat(left, right Value) Value {
	checkBinary("^", left, TagString, right, TagString)
	a, b := left.Str(), right.Str()
	if len(a) > math.MaxInt-len(b)-1 {
		Fatalf(ErrMemory, "memory allocation error")
	}
	buf := make([]byte, 0, len(a)+len(b))
	buf = append(buf, a...)
	buf = append(buf, b...)
	return NewString(string(buf))
}
