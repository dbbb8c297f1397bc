package runtime

import (
	"math"
	"strings"
)

func checkBinary(op string, left Value, wantLeft Tag, right Value, wantRight Tag) {
	if left.tag != wantLeft || right.tag != wantRight {
		Fatalf(ErrType, "wrong operand types: %s %s %s", left.tag, op, right.tag)
	}
}

func checkUnary(pre string, operand Value, want Tag, post string) {
	if operand.tag == want {
		return
	}
	parts := make([]string, 0, 3)
	if pre != "" {
		parts = append(parts, pre)
	}
	parts = append(parts, operand.tag.String())
	if post != "" {
		parts = append(parts, post)
	}
	Fatalf(ErrType, "wrong operand type: %s", strings.Join(parts, " "))
}

func checkComposite(v Value) *Composite {
	if !v.tag.IsComposite() || v.comp == nil {
		Fatalf(ErrType, "wrong type for composite: %s", v.tag)
	}
	return v.comp
}

// keyOf truncates a numeric index toward zero. NaN, infinities and values
// outside the int range have no key.
func keyOf(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t < math.MinInt || t >= math.MaxInt {
		return 0, false
	}
	return int(t), true
}
