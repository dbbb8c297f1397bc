package runtime

// GetValue implements `s[i]`, `o.f` and `a[i]`. The right operand is
// truncated toward zero before use. Absent keys and out-of-range string
// indexes yield Null.
func GetValue(left, right Value) Value {
	switch left.tag {
	case TagString:
		checkBinary("[", left, TagString, right, TagNumber)
		return charAt(left, right.num)
	case TagObject:
		checkBinary(".", left, TagObject, right, TagNumber)
	default:
		checkBinary("[", left, TagArray, right, TagNumber)
	}
	key, ok := keyOf(right.num)
	if !ok {
		return Null()
	}
	return GetElement(left, key)
}

// SetValue implements field and element assignment and returns the
// assigned value so assignments can be used as expressions.
func SetValue(left, right, val Value) Value {
	switch left.tag {
	case TagObject:
		checkBinary(".", left, TagObject, right, TagNumber)
	case TagArray:
		checkBinary("[", left, TagArray, right, TagNumber)
	default:
		Fatalf(ErrType, "wrong type for composite: %s", left.tag)
	}
	key, ok := keyOf(right.num)
	if !ok {
		Fatalf(ErrValue, "invalid %s key: %s", left.tag, formatNumber(right.num))
	}
	SetElement(left, key, val)
	return val
}

func charAt(str Value, index float64) Value {
	data := str.Str()
	i, ok := keyOf(index)
	if !ok || i < 0 || i >= len(data) {
		return Null()
	}
	return NewString(data[i : i+1])
}
